package engine

import (
	"context"
	"time"

	"divgame/game"
)

// MaxInvalidMoves bounds how many rejected moves in a row an agent may submit.
const MaxInvalidMoves = 3

// Agent chooses moves for one side of the game.
type Agent interface {
	FindMove(ctx context.Context, state game.State) (game.Move, error)
}

// AgentFunc adapts a function to the Agent interface.
type AgentFunc func(ctx context.Context, state game.State) (game.Move, error)

func (f AgentFunc) FindMove(ctx context.Context, state game.State) (game.Move, error) {
	return f(ctx, state)
}

// Update records one applied move.
type Update struct {
	Step   int
	Player game.Turn
	Move   game.Move
	Before game.State
	State  game.State
}

// Outcome summarizes a finished game.
type Outcome struct {
	Start     int
	Final     game.State
	Winner    string
	Moves     []Update
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
