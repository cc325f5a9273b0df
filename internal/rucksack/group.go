package rucksack

import (
	"iter"

	"github.com/conneroisu/aoc2022/internal/lines"
)

// GroupSize is the number of rucksacks carried by one elf group.
const GroupSize = 3

// Group is three consecutive lines. Start is the index of the first one.
type Group struct {
	Start int
	Lines [GroupSize]string
}

// Accumulator buffers lines until a full group is available.
// The zero value is ready to use.
type Accumulator struct {
	buf   [GroupSize]string
	n     int
	start int
	seen  int
}

// Push adds the next line. It returns the completed group and true when
// the line filled the buffer, after which the buffer starts over.
func (a *Accumulator) Push(line string) (Group, bool) {
	if a.n == 0 {
		a.start = a.seen
	}
	a.buf[a.n] = line
	a.n++
	a.seen++

	if a.n < GroupSize {
		return Group{}, false
	}

	g := Group{Start: a.start, Lines: a.buf}
	a.n = 0
	a.buf = [GroupSize]string{}
	return g, true
}

// Pending returns the number of buffered lines.
func (a *Accumulator) Pending() int {
	return a.n
}

// Flush reports the buffered partial group, if any, and empties the buffer.
func (a *Accumulator) Flush() error {
	if a.n == 0 {
		return nil
	}
	err := &IncompleteGroupError{
		Start: a.start,
		Lines: append([]string(nil), a.buf[:a.n]...),
	}
	a.n = 0
	a.buf = [GroupSize]string{}
	return err
}

// Groups consumes src and yields each complete group with a nil error. When
// the input ends with a partial group an *IncompleteGroupError is yielded
// last. A read error from src is yielded and ends the sequence.
func Groups(src lines.Reader) iter.Seq2[Group, error] {
	return func(yield func(Group, error) bool) {
		var acc Accumulator
		for src.Next() {
			if g, ok := acc.Push(src.Line()); ok {
				if !yield(g, nil) {
					return
				}
			}
		}
		if err := src.Err(); err != nil {
			yield(Group{}, err)
			return
		}
		if err := acc.Flush(); err != nil {
			yield(Group{}, err)
		}
	}
}

// Accumulate calls fn for every complete group of src in input order. A
// trailing partial group is returned as an *IncompleteGroupError once all
// complete groups have been handed to fn. An error from fn stops the walk.
func Accumulate(src lines.Reader, fn func(Group) error) error {
	for g, err := range Groups(src) {
		if err != nil {
			return err
		}
		if err := fn(g); err != nil {
			return err
		}
	}
	return nil
}
