package player

import (
	"context"
	"errors"

	"divgame/game"
	"divgame/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrNoMove = errors.New("no legal move in a terminal state")

// Computer plays the move found by an exhaustive minimax search.
type Computer struct {
	searcher *searcher.Searcher
	level    zerolog.Level // Level of the per-move search log
}

// NewComputer returns a computer agent. With stats set, search metrics are
// logged at info level instead of debug.
func NewComputer(s *searcher.Searcher, stats bool) *Computer {
	level := zerolog.DebugLevel
	if stats {
		level = zerolog.InfoLevel
	}
	return &Computer{searcher: s, level: level}
}

func (c *Computer) FindMove(ctx context.Context, state game.State) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.NoMove, err
	}
	if game.IsTerminal(state) {
		return game.NoMove, ErrNoMove
	}

	val, move, metric := c.searcher.Search(state)

	log.WithLevel(c.level).
		Int("number", state.Number()).
		Int("move", int(move)).
		Int("value", val).
		Int64("nodes", metric.Nodes).
		Int64("leaves", metric.Leaves).
		Int64("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return move, nil
}
