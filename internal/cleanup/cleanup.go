// Package cleanup compares the section assignments of elf pairs.
package cleanup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
	"github.com/conneroisu/aoc2022/internal/lines"
	"github.com/conneroisu/aoc2022/internal/puzzle"
)

// Assignment is an inclusive range of section IDs.
type Assignment struct {
	Start int
	End   int
}

func (a Assignment) String() string {
	return fmt.Sprintf("%d-%d", a.Start, a.End)
}

// Contains reports whether a covers every section of b.
func (a Assignment) Contains(b Assignment) bool {
	return a.Start <= b.Start && b.End <= a.End
}

// Overlaps reports whether a and b share at least one section.
func (a Assignment) Overlaps(b Assignment) bool {
	return a.Start <= b.End && b.Start <= a.End
}

// Pair is the two assignments of one line.
type Pair [2]Assignment

// FullyContained reports whether one assignment covers the other.
func FullyContained(p Pair) bool {
	return p[0].Contains(p[1]) || p[1].Contains(p[0])
}

// Overlapping reports whether the assignments share any section.
func Overlapping(p Pair) bool {
	return p[0].Overlaps(p[1])
}

func parseAssignment(s string) (Assignment, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Assignment{}, fmt.Errorf("missing '-' in %q", s)
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return Assignment{}, err
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return Assignment{}, err
	}
	if start > end {
		return Assignment{}, fmt.Errorf("range %q is reversed", s)
	}
	return Assignment{Start: start, End: end}, nil
}

// ParsePair reads a line such as "2-4,6-8".
func ParsePair(index int, line string) (Pair, error) {
	first, second, ok := strings.Cut(line, ",")
	if !ok {
		return Pair{}, perrors.ErrLineInvalid(index, line, "expected two assignments")
	}

	var p Pair
	for i, part := range []string{first, second} {
		a, err := parseAssignment(part)
		if err != nil {
			return Pair{}, perrors.ErrLineInvalid(index, line, err.Error())
		}
		p[i] = a
	}
	return p, nil
}

// Solver returns a solver counting the pairs that match. Lines that cannot be
// parsed are reported and skipped.
func Solver(match func(Pair) bool) puzzle.SolverFunc {
	return func(ctx context.Context, src lines.Reader, diag puzzle.Diagnostics) (int, error) {
		count := 0
		for src.Next() {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			p, err := ParsePair(src.Index(), src.Line())
			if err != nil {
				if err := diag.Report(ctx, err); err != nil {
					return 0, err
				}
				continue
			}
			if match(p) {
				count++
			}
		}
		if err := src.Err(); err != nil {
			return 0, err
		}
		return count, nil
	}
}
