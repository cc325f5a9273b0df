// Package puzzles wires every solved day into a puzzle.Registry.
package puzzles

import (
	"github.com/conneroisu/aoc2022/internal/calories"
	"github.com/conneroisu/aoc2022/internal/cleanup"
	"github.com/conneroisu/aoc2022/internal/puzzle"
	"github.com/conneroisu/aoc2022/internal/rps"
	"github.com/conneroisu/aoc2022/internal/rucksack"
)

// All returns the puzzles in registration order.
func All() []puzzle.Puzzle {
	return []puzzle.Puzzle{
		{
			Day:         1,
			Part:        1,
			Name:        "calorie counting",
			Description: "Calories carried by the best stocked elf",
			Solver:      calories.Solver(1),
		},
		{
			Day:         1,
			Part:        2,
			Name:        "calorie counting",
			Description: "Calories carried by the three best stocked elves",
			Solver:      calories.Solver(3),
		},
		{
			Day:         2,
			Part:        1,
			Name:        "rock paper scissors",
			Description: "Score when the second column is the hand to play",
			Solver:      rps.Solver(rps.AsHand),
		},
		{
			Day:         2,
			Part:        2,
			Name:        "rock paper scissors",
			Description: "Score when the second column is the required outcome",
			Solver:      rps.Solver(rps.AsOutcome),
		},
		{
			Day:         3,
			Part:        1,
			Name:        "rucksack reorganization",
			Description: "Priority of the item in both compartments of each rucksack",
			Solver:      puzzle.SolverFunc(rucksack.SolveCompartments),
		},
		{
			Day:         3,
			Part:        2,
			Name:        "rucksack reorganization",
			Description: "Priority of the badge shared by each group of three elves",
			Solver:      puzzle.SolverFunc(rucksack.SolveBadges),
		},
		{
			Day:         4,
			Part:        1,
			Name:        "camp cleanup",
			Description: "Pairs where one assignment fully contains the other",
			Solver:      cleanup.Solver(cleanup.FullyContained),
		},
		{
			Day:         4,
			Part:        2,
			Name:        "camp cleanup",
			Description: "Pairs whose assignments overlap",
			Solver:      cleanup.Solver(cleanup.Overlapping),
		},
	}
}

// Register adds every puzzle to r.
func Register(r *puzzle.Registry) error {
	for _, p := range All() {
		if err := r.Register(p); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a registry holding every puzzle.
func Default() *puzzle.Registry {
	r := puzzle.NewRegistry()
	for _, p := range All() {
		r.MustRegister(p)
	}
	return r
}
