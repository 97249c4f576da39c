package analysis

import (
	"context"
	"testing"

	"divgame/game"

	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Run("24 favours whoever moves first", func(t *testing.T) {
		r, err := Analyze(context.Background(), 24)

		require.NoError(t, err)
		require.Equal(t, 24, r.Start)
		require.Equal(t, -1, r.HumanValue)
		require.Equal(t, game.Move(3), r.HumanMove)
		require.Equal(t, 1, r.ComputerValue)
		require.Equal(t, game.Move(3), r.ComputerMove)
		require.Equal(t, int64(14), r.Nodes)
	})

	t.Run("self-play uses the real scoring", func(t *testing.T) {
		r, err := Analyze(context.Background(), 24)

		require.NoError(t, err)
		require.Equal(t, game.Restore(8, 0, -1, game.Computer), r.Final)
		require.Equal(t, game.HumanWins, r.Winner)
		require.Equal(t, 1, r.Moves)
	})
}

func TestSweep(t *testing.T) {
	t.Run("keeps the order of the numbers", func(t *testing.T) {
		numbers := []int{24, 12, 20004, 29988}

		reports, err := Sweep(context.Background(), numbers, 2)

		require.NoError(t, err)
		require.Len(t, reports, len(numbers))
		for i, r := range reports {
			require.Equal(t, numbers[i], r.Start)
			require.Contains(t, []string{game.HumanWins, game.ComputerWins, game.Draw}, r.Winner)
			require.True(t, game.IsTerminal(r.Final))
		}
		require.Equal(t, game.Move(2), reports[1].HumanMove)
		require.Equal(t, -1, reports[1].HumanValue)
	})

	t.Run("matches sequential analysis", func(t *testing.T) {
		numbers := []int{36, 48, 96, 144}

		parallel, err := Sweep(context.Background(), numbers, 4)
		require.NoError(t, err)
		sequential, err := Sweep(context.Background(), numbers, 0)
		require.NoError(t, err)

		require.Equal(t, sequential, parallel)
	})

	t.Run("stops on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Sweep(ctx, []int{24, 36}, 2)

		require.ErrorIs(t, err, context.Canceled)
	})
}
