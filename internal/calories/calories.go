// Package calories totals the food each elf carries.
//
// The input lists one calorie count per line; a blank line ends one elf's
// inventory. The last elf does not need a trailing blank line.
package calories

import (
	"context"
	"strconv"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
	"github.com/conneroisu/aoc2022/internal/lines"
	"github.com/conneroisu/aoc2022/internal/puzzle"
)

// Elf is the inventory of one elf.
type Elf struct {
	Start    int
	Calories []int
}

// Total returns the sum of the elf's calories.
func (e Elf) Total() int {
	total := 0
	for _, c := range e.Calories {
		total += c
	}
	return total
}

// ReadElves walks src and calls fn once per elf. A line that is not a
// non-negative integer ends the walk with a parse error.
func ReadElves(src lines.Reader, fn func(Elf) error) error {
	current := Elf{Start: -1}

	flush := func() error {
		if current.Start < 0 {
			return nil
		}
		elf := current
		current = Elf{Start: -1}
		return fn(elf)
	}

	for src.Next() {
		line := src.Line()
		if line == "" {
			if err := flush(); err != nil {
				return err
			}
			continue
		}

		value, err := strconv.Atoi(line)
		if err != nil || value < 0 {
			return perrors.ErrLineInvalid(src.Index(), line, "expected a calorie count")
		}
		if current.Start < 0 {
			current.Start = src.Index()
		}
		current.Calories = append(current.Calories, value)
	}
	if err := src.Err(); err != nil {
		return err
	}

	return flush()
}

// TopK keeps the k largest values seen so far in descending order.
type TopK struct {
	k      int
	values []int
}

// NewTopK creates a TopK holding at most k values.
func NewTopK(k int) *TopK {
	return &TopK{k: k, values: make([]int, 0, k)}
}

// Add offers v.
func (t *TopK) Add(v int) {
	if t.k <= 0 {
		return
	}
	if len(t.values) == t.k && v <= t.values[len(t.values)-1] {
		return
	}
	if len(t.values) < t.k {
		t.values = append(t.values, v)
	} else {
		t.values[len(t.values)-1] = v
	}
	for i := len(t.values) - 1; i > 0 && t.values[i] > t.values[i-1]; i-- {
		t.values[i], t.values[i-1] = t.values[i-1], t.values[i]
	}
}

// Values returns the kept values, largest first.
func (t *TopK) Values() []int {
	return append([]int(nil), t.values...)
}

// Sum returns the sum of the kept values.
func (t *TopK) Sum() int {
	sum := 0
	for _, v := range t.values {
		sum += v
	}
	return sum
}

// Solver returns a solver summing the totals of the k best stocked elves.
// An input without elves answers 0.
func Solver(k int) puzzle.SolverFunc {
	return func(ctx context.Context, src lines.Reader, _ puzzle.Diagnostics) (int, error) {
		top := NewTopK(k)
		err := ReadElves(src, func(e Elf) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			top.Add(e.Total())
			return nil
		})
		if err != nil {
			return 0, err
		}
		return top.Sum(), nil
	}
}
