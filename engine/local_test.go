package engine

import (
	"context"
	"errors"
	"io"
	"testing"

	"divgame/game"
	"divgame/searcher"

	"github.com/stretchr/testify/require"
)

// scripted replays a fixed list of moves and counts how often it was asked.
type scripted struct {
	moves []game.Move
	calls int
}

func (s *scripted) FindMove(ctx context.Context, state game.State) (game.Move, error) {
	if s.calls >= len(s.moves) {
		return game.NoMove, io.EOF
	}
	move := s.moves[s.calls]
	s.calls++
	return move, nil
}

func optimal() Agent {
	s := searcher.NewSearcher()
	return AgentFunc(func(ctx context.Context, state game.State) (game.Move, error) {
		return s.FindNextMove(state), nil
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("game from 12 ends after one human move", func(t *testing.T) {
		human := &scripted{moves: []game.Move{2}}
		e := LocalEngine(12, human, optimal())

		outcome, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Len(t, outcome.Moves, 1)
		require.LessOrEqual(t, len(outcome.Moves), 4)
		require.Equal(t, game.Restore(6, 0, -1, game.Computer), outcome.Final)
		require.Equal(t, game.HumanWins, outcome.Winner)
		require.Equal(t, 12, outcome.Start)
		require.False(t, outcome.EndTime.Before(outcome.StartTime))
	})

	t.Run("game from 24 ends in a draw after the computer replies", func(t *testing.T) {
		human := &scripted{moves: []game.Move{2}}
		e := LocalEngine(24, human, optimal())

		outcome, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, []Update{
			{Step: 1, Player: game.Human, Move: 2, Before: game.NewState(24), State: game.Restore(12, 0, -1, game.Computer)},
			{Step: 2, Player: game.Computer, Move: 2, Before: game.Restore(12, 0, -1, game.Computer), State: game.Restore(6, -1, -1, game.Computer)},
		}, outcome.Moves)
		require.Equal(t, game.Draw, outcome.Winner)
	})

	t.Run("computer keeps the turn after its own move", func(t *testing.T) {
		human := &scripted{moves: []game.Move{2}}
		e := LocalEngine(96, human, optimal())

		outcome, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, 1, human.calls, "Human should only be asked once")
		require.Len(t, outcome.Moves, 3)
		require.Equal(t, game.Computer, outcome.Moves[1].Player)
		require.Equal(t, game.Computer, outcome.Moves[2].Player)
		require.Equal(t, game.Move(2), outcome.Moves[1].Move)
		require.Equal(t, game.Move(3), outcome.Moves[2].Move)
		require.Equal(t, game.Restore(8, -2, -1, game.Computer), outcome.Final)
		require.Equal(t, game.ComputerWins, outcome.Winner)
	})

	t.Run("terminal starting number plays no moves", func(t *testing.T) {
		human := &scripted{}
		e := LocalEngine(9, human, optimal())

		outcome, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Empty(t, outcome.Moves)
		require.Equal(t, game.Draw, outcome.Winner)
		require.Zero(t, human.calls)
	})

	t.Run("observers see every update in order", func(t *testing.T) {
		var seen []int
		human := &scripted{moves: []game.Move{2}}
		e := LocalEngine(24, human, optimal(), WithObserver(func(u Update) {
			seen = append(seen, u.Step)
		}), WithObserver(nil))

		_, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, seen)
	})
}

func TestEngineErrors(t *testing.T) {
	t.Run("invalid move is retried", func(t *testing.T) {
		human := &scripted{moves: []game.Move{5, 2}}
		e := LocalEngine(12, human, optimal())

		outcome, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, 2, human.calls)
		require.Equal(t, game.Move(2), outcome.Moves[0].Move)
	})

	t.Run("too many invalid moves abort the game", func(t *testing.T) {
		human := &scripted{moves: []game.Move{5, 7, 9, 2}}
		e := LocalEngine(12, human, optimal())

		_, err := e.Run(context.Background())

		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.Equal(t, MaxInvalidMoves, human.calls)
		require.Equal(t, game.NewState(12), e.State, "State should not change")
	})

	t.Run("agent failure is returned", func(t *testing.T) {
		e := LocalEngine(12, &scripted{}, optimal())

		_, err := e.Run(context.Background())

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("cancelled context stops the game", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		human := &scripted{moves: []game.Move{2}}
		e := LocalEngine(12, human, optimal())

		_, err := e.Run(ctx)

		require.True(t, errors.Is(err, context.Canceled))
		require.Zero(t, human.calls)
	})

	t.Run("missing agent panics", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(12, nil, optimal())
		})
	})
}
