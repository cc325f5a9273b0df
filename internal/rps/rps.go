// Package rps scores a rock paper scissors strategy guide.
//
// Each line holds the opponent's hand (A, B or C) and a second column
// (X, Y or Z) separated by a single space. The second column is read either
// as the hand to play or as the outcome the round must have.
package rps

import (
	"context"
	"fmt"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
	"github.com/conneroisu/aoc2022/internal/lines"
	"github.com/conneroisu/aoc2022/internal/puzzle"
)

// Hand is one of the three shapes. Its value is the score for playing it.
type Hand int

const (
	Rock     Hand = 1
	Paper    Hand = 2
	Scissors Hand = 3
)

func (h Hand) String() string {
	switch h {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("Hand(%d)", int(h))
	}
}

// Beats returns the hand h wins against.
func (h Hand) Beats() Hand {
	switch h {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// LosesTo returns the hand that wins against h.
func (h Hand) LosesTo() Hand {
	switch h {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// Outcome is the result of a round for the player. Its value is the score.
type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// Play returns the outcome of mine against theirs.
func Play(theirs, mine Hand) Outcome {
	switch {
	case theirs == mine:
		return Draw
	case mine.Beats() == theirs:
		return Win
	default:
		return Loss
	}
}

// Choose returns the hand that produces want against theirs.
func Choose(theirs Hand, want Outcome) Hand {
	switch want {
	case Loss:
		return theirs.Beats()
	case Win:
		return theirs.LosesTo()
	default:
		return theirs
	}
}

// Score returns the points of one round.
func Score(theirs, mine Hand) int {
	return int(mine) + int(Play(theirs, mine))
}

// Strategy turns the second column of a line into the hand to play.
type Strategy func(theirs Hand, column byte) (Hand, bool)

// AsHand reads X, Y and Z as rock, paper and scissors.
func AsHand(_ Hand, column byte) (Hand, bool) {
	switch column {
	case 'X':
		return Rock, true
	case 'Y':
		return Paper, true
	case 'Z':
		return Scissors, true
	}
	return 0, false
}

// AsOutcome reads X, Y and Z as lose, draw and win.
func AsOutcome(theirs Hand, column byte) (Hand, bool) {
	switch column {
	case 'X':
		return Choose(theirs, Loss), true
	case 'Y':
		return Choose(theirs, Draw), true
	case 'Z':
		return Choose(theirs, Win), true
	}
	return 0, false
}

func opponent(column byte) (Hand, bool) {
	switch column {
	case 'A':
		return Rock, true
	case 'B':
		return Paper, true
	case 'C':
		return Scissors, true
	}
	return 0, false
}

// ParseRound reads one line of the guide with the given strategy.
func ParseRound(index int, line string, strategy Strategy) (theirs, mine Hand, err error) {
	if len(line) < 3 {
		return 0, 0, perrors.ErrLineInvalid(index, line, "too short")
	}
	theirs, ok := opponent(line[0])
	if !ok {
		return 0, 0, perrors.ErrLineInvalid(index, line, "invalid opponent hand")
	}
	mine, ok = strategy(theirs, line[2])
	if !ok {
		return 0, 0, perrors.ErrLineInvalid(index, line, "invalid second column")
	}
	return theirs, mine, nil
}

// Solver returns a solver totalling the score of every round. Any malformed
// line fails the run.
func Solver(strategy Strategy) puzzle.SolverFunc {
	return func(ctx context.Context, src lines.Reader, _ puzzle.Diagnostics) (int, error) {
		total := 0
		for src.Next() {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			theirs, mine, err := ParseRound(src.Index(), src.Line(), strategy)
			if err != nil {
				return 0, err
			}
			total += Score(theirs, mine)
		}
		if err := src.Err(); err != nil {
			return 0, err
		}
		return total, nil
	}
}
