package puzzle

import (
	"fmt"
	"sort"
	"sync"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
)

// Registry holds the puzzles known to the CLI keyed by day and part.
type Registry struct {
	puzzles map[string]Puzzle
	mutex   sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[string]Puzzle)}
}

// Register adds a puzzle. Registering the same day and part twice is an error.
func (r *Registry) Register(p Puzzle) error {
	if p.Day < 1 || p.Day > 25 {
		return fmt.Errorf("day %d out of range 1-25", p.Day)
	}
	if p.Part < 1 || p.Part > 2 {
		return fmt.Errorf("part %d out of range 1-2", p.Part)
	}
	if p.Solver == nil {
		return fmt.Errorf("%s: nil solver", p.Key())
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.puzzles[p.Key()]; exists {
		return fmt.Errorf("%s already registered", p.Key())
	}
	r.puzzles[p.Key()] = p
	return nil
}

// MustRegister is Register that panics on error. Used for static wiring.
func (r *Registry) MustRegister(p Puzzle) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Lookup finds the puzzle for day and part.
func (r *Registry) Lookup(day, part int) (Puzzle, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	p, ok := r.puzzles[Key(day, part)]
	if !ok {
		return Puzzle{}, perrors.ErrPuzzleNotFound(day, part)
	}
	return p, nil
}

// Parts returns the registered parts of a day in order.
func (r *Registry) Parts(day int) []Puzzle {
	var parts []Puzzle
	for _, p := range r.All() {
		if p.Day == day {
			parts = append(parts, p)
		}
	}
	return parts
}

// All returns every puzzle sorted by day then part.
func (r *Registry) All() []Puzzle {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	all := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Day != all[j].Day {
			return all[i].Day < all[j].Day
		}
		return all[i].Part < all[j].Part
	})
	return all
}

// Len returns the number of registered puzzles.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.puzzles)
}
