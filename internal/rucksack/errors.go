package rucksack

import (
	"fmt"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
)

// IncompleteGroupError is reported when the input ends with one or two
// lines that do not form a full group.
type IncompleteGroupError struct {
	Start int
	Lines []string
}

func (e *IncompleteGroupError) Error() string {
	return fmt.Sprintf("incomplete group starting at line %d: got %d of %d lines",
		e.Start, len(e.Lines), GroupSize)
}

// LineIndex returns the index of the first line of the partial group.
func (e *IncompleteGroupError) LineIndex() int { return e.Start }

func (e *IncompleteGroupError) Unwrap() error { return perrors.ErrIncompleteGroup }

// NoCommonItemError is reported when the lines of a group share no item.
// Size is the number of lines that were compared: GroupSize for badges and
// 1 for the two compartments of a single rucksack.
type NoCommonItemError struct {
	Start int
	Size  int
}

func (e *NoCommonItemError) Error() string {
	if e.Size == 1 {
		return fmt.Sprintf("no item shared by both compartments of line %d", e.Start)
	}
	return fmt.Sprintf("no common item in group starting at line %d", e.Start)
}

// LineIndex returns the index of the first line of the group.
func (e *NoCommonItemError) LineIndex() int { return e.Start }

func (e *NoCommonItemError) Unwrap() error { return perrors.ErrNoCommonItem }
