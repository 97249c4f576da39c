package game

import (
	"errors"
	"fmt"
)

// Move is a divisor applied to the shared number.
type Move int

// NoMove is returned where no legal move exists (terminal states).
const NoMove Move = 0

// Floor is the largest number that ends the game regardless of divisibility.
const Floor = 10

// Divisors lists the legal moves in the order children are generated.
var Divisors = []Move{2, 3, 4}

type Turn int

const (
	Human Turn = iota
	Computer
)

func (t Turn) String() string {
	switch t {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("turn(%d)", int(t))
	}
}

// Other returns the opponent of t.
func (t Turn) Other() Turn {
	if t == Human {
		return Computer
	}
	return Human
}

const (
	HumanWins    = "human"
	ComputerWins = "computer"
	Draw         = "draw"
)

var ErrInvalidMove = errors.New("invalid move")

// InvalidMoveError reports a divisor that cannot be applied to a number.
type InvalidMoveError struct {
	Number  int
	Divisor Move
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move: cannot divide %d by %d", e.Number, e.Divisor)
}

func (e *InvalidMoveError) Unwrap() error {
	return ErrInvalidMove
}

// Child pairs a state reachable in one move with the divisor that produced it.
type Child struct {
	State State
	Move  Move
}
