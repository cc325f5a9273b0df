package rucksack

import (
	"context"
	"errors"

	"github.com/conneroisu/aoc2022/internal/lines"
	"github.com/conneroisu/aoc2022/internal/puzzle"
)

// SolveBadges sums the priorities of the badge item shared by each group of
// three rucksacks.
func SolveBadges(ctx context.Context, src lines.Reader, diag puzzle.Diagnostics) (int, error) {
	var agg Aggregator

	for g, err := range Groups(src) {
		if err != nil {
			var incomplete *IncompleteGroupError
			if !errors.As(err, &incomplete) {
				return 0, err
			}
			if err := diag.Report(ctx, err); err != nil {
				return 0, err
			}
			continue
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		item, ok := FindCommon(g)
		if !ok {
			if err := diag.Report(ctx, &NoCommonItemError{Start: g.Start, Size: GroupSize}); err != nil {
				return 0, err
			}
		}
		agg.Add(Lookup{Start: g.Start, Item: item, Found: ok})
	}

	return agg.Total(), nil
}

// SolveCompartments sums the priorities of the item found in both halves of
// each rucksack.
func SolveCompartments(ctx context.Context, src lines.Reader, diag puzzle.Diagnostics) (int, error) {
	var agg Aggregator

	for src.Next() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		item, ok := FindDuplicate(src.Line())
		if !ok {
			if err := diag.Report(ctx, &NoCommonItemError{Start: src.Index(), Size: 1}); err != nil {
				return 0, err
			}
		}
		agg.Add(Lookup{Start: src.Index(), Item: item, Found: ok})
	}
	if err := src.Err(); err != nil {
		return 0, err
	}

	return agg.Total(), nil
}
