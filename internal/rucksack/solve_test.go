package rucksack

import (
	"context"
	"errors"
	"testing"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
	"github.com/conneroisu/aoc2022/internal/lines"
	"github.com/conneroisu/aoc2022/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"vJrwpWtwJgWrhcsFMMfFFhFp",
	"jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL",
	"PmmdzqPrVvPwwTWBwg",
	"wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn",
	"ttgJtRGJQctTZtZT",
	"CrZsJsPPZsGzwwsLwLmpwMDw",
}

func TestSolveBadges(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  int
		kinds []string
		lines []int
	}{
		{
			name:  "two groups",
			input: sample,
			want:  70,
		},
		{
			name:  "trailing partial group",
			input: append(sample[:6:6], "abc"),
			want:  70,
			kinds: []string{"incomplete_group"},
			lines: []int{6},
		},
		{
			name:  "group without a common item",
			input: []string{"abc", "def", "ghi", "xyZ", "Zab", "cZd"},
			want:  52,
			kinds: []string{"no_common_item"},
			lines: []int{0},
		},
		{
			name:  "empty input",
			input: nil,
			want:  0,
		},
		{
			name:  "single line",
			input: []string{"abc"},
			want:  0,
			kinds: []string{"incomplete_group"},
			lines: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := puzzle.NewCollector(nil, false)

			got, err := SolveBadges(context.Background(), lines.FromLines(tt.input...), collector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			diags := collector.Diagnostics()
			require.Len(t, diags, len(tt.kinds))
			for i, d := range diags {
				assert.Equal(t, tt.kinds[i], d.Kind)
				assert.Equal(t, tt.lines[i], d.Line)
				assert.True(t, d.HasLine)
			}
		})
	}
}

func TestSolveBadgesStrict(t *testing.T) {
	collector := puzzle.NewCollector(nil, true)

	_, err := SolveBadges(context.Background(), lines.FromLines("abc", "def", "ghi"), collector)
	require.Error(t, err)
	assert.True(t, errors.Is(err, perrors.ErrNoCommonItem))

	var noCommon *NoCommonItemError
	require.True(t, errors.As(err, &noCommon))
	assert.Equal(t, 0, noCommon.Start)
	assert.Equal(t, GroupSize, noCommon.Size)
}

func TestSolveBadgesStrictIncomplete(t *testing.T) {
	collector := puzzle.NewCollector(nil, true)

	_, err := SolveBadges(context.Background(), lines.FromLines("vJrw", "vx"), collector)
	require.Error(t, err)
	assert.True(t, errors.Is(err, perrors.ErrIncompleteGroup))
}

func TestSolveBadgesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SolveBadges(ctx, lines.FromLines(sample[:3]...), puzzle.NewCollector(nil, false))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveCompartments(t *testing.T) {
	collector := puzzle.NewCollector(nil, false)

	input := append(sample[:6:6], "abcdef")
	got, err := SolveCompartments(context.Background(), lines.FromLines(input...), collector)
	require.NoError(t, err)
	assert.Equal(t, 157, got)

	diags := collector.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "no_common_item", diags[0].Kind)
	assert.Equal(t, 6, diags[0].Line)
	assert.Contains(t, diags[0].Message, "both compartments")
}
