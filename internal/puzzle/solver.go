// Package puzzle defines the solver contract, the registry of known puzzles
// and the runner that executes one puzzle against one input.
package puzzle

import (
	"context"
	"fmt"

	"github.com/conneroisu/aoc2022/internal/lines"
)

// Diagnostics receives recoverable problems found while solving. A non-nil
// return value asks the solver to stop and return that error.
type Diagnostics interface {
	Report(ctx context.Context, err error) error
}

// Solver computes the answer of one puzzle part from a single pass over src.
type Solver interface {
	Solve(ctx context.Context, src lines.Reader, diag Diagnostics) (int, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, src lines.Reader, diag Diagnostics) (int, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, src lines.Reader, diag Diagnostics) (int, error) {
	return f(ctx, src, diag)
}

// Puzzle describes one registered puzzle part.
type Puzzle struct {
	Day         int
	Part        int
	Name        string
	Description string
	Solver      Solver
}

// Key returns the canonical identifier, e.g. "day03/part2".
func (p Puzzle) Key() string {
	return Key(p.Day, p.Part)
}

// Key formats a day and part as an identifier.
func Key(day, part int) string {
	return fmt.Sprintf("day%02d/part%d", day, part)
}
