package game

import (
	"fmt"

	"github.com/samber/lo"
)

// State is immutable - operations on State always return a new copy
type State struct {
	number         int
	humanPoints    int
	computerPoints int
	turn           Turn
}

// NewState returns the opening state for a starting number: no points, human to move.
func NewState(number int) State {
	return State{number: number, turn: Human}
}

// Restore rebuilds a state from its parts.
func Restore(number, humanPoints, computerPoints int, turn Turn) State {
	return State{
		number:         number,
		humanPoints:    humanPoints,
		computerPoints: computerPoints,
		turn:           turn,
	}
}

func (s State) Number() int         { return s.number }
func (s State) HumanPoints() int    { return s.humanPoints }
func (s State) ComputerPoints() int { return s.computerPoints }
func (s State) Turn() Turn          { return s.turn }

func (s State) String() string {
	return fmt.Sprintf("(%d, human=%d, computer=%d, turn=%s)", s.number, s.humanPoints, s.computerPoints, s.turn)
}

func (s State) IsTerminal() bool  { return IsTerminal(s) }
func (s State) Children() []Child { return GenerateChildren(s) }

// IsTerminal reports whether the number has reached the floor or can no longer
// be divided evenly by any divisor.
func IsTerminal(s State) bool {
	if s.number <= Floor {
		return true
	}
	for _, d := range Divisors {
		if s.number%int(d) == 0 {
			return false
		}
	}
	return true
}

// LegalMoves returns the divisors that evenly divide the number, in ascending order.
func LegalMoves(s State) []Move {
	if IsTerminal(s) {
		return []Move{}
	}
	return lo.Filter(Divisors, func(d Move, _ int) bool {
		return s.number%int(d) == 0
	})
}

// GenerateChildren expands s for lookahead. The mover always gains a point and
// the turn passes to the opponent. Children are ordered by ascending divisor.
func GenerateChildren(s State) []Child {
	moves := LegalMoves(s)
	children := make([]Child, 0, len(moves))
	for _, d := range moves {
		child := State{
			number:         s.number / int(d),
			humanPoints:    s.humanPoints,
			computerPoints: s.computerPoints,
			turn:           s.turn.Other(),
		}
		if s.turn == Human {
			child.humanPoints++
		} else {
			child.computerPoints++
		}
		children = append(children, Child{State: child, Move: d})
	}
	return children
}

// Evaluate scores s from the computer's perspective.
func Evaluate(s State) int {
	return s.computerPoints - s.humanPoints
}

// ApplyMove advances the actual game. Scoring depends on the parity of the new
// number: an even result costs the mover's opponent a point, an odd result earns
// the mover one. The turn is always handed to the computer afterwards.
func ApplyMove(s State, d Move) (State, error) {
	if !lo.Contains(Divisors, d) || s.number <= 0 || s.number%int(d) != 0 {
		return State{}, &InvalidMoveError{Number: s.number, Divisor: d}
	}

	next := State{
		number:         s.number / int(d),
		humanPoints:    s.humanPoints,
		computerPoints: s.computerPoints,
		turn:           Computer,
	}
	even := next.number%2 == 0

	switch {
	case s.turn == Human && even:
		next.computerPoints--
	case s.turn == Human:
		next.humanPoints++
	case even:
		next.humanPoints--
	default:
		next.computerPoints++
	}
	return next, nil
}

// Winner returns the winner of a finished game, Draw on equal points, or "" if
// the game is still in progress.
func Winner(s State) string {
	if !IsTerminal(s) {
		return ""
	}
	switch {
	case s.humanPoints > s.computerPoints:
		return HumanWins
	case s.computerPoints > s.humanPoints:
		return ComputerWins
	default:
		return Draw
	}
}
