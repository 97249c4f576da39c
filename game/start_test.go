package game

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestStartNumbers(t *testing.T) {
	t.Run("draws sorted distinct multiples of 12 within range", func(t *testing.T) {
		numbers, err := StartNumbers(rand.New(rand.NewSource(7)), 5, 20000, 30000)

		require.NoError(t, err)
		require.Len(t, numbers, 5)
		require.True(t, sort.IntsAreSorted(numbers), "Numbers should be sorted")
		seen := map[int]bool{}
		for _, n := range numbers {
			require.Zero(t, n%12, "%d should be divisible by 12", n)
			require.GreaterOrEqual(t, n, 20000)
			require.LessOrEqual(t, n, 30000)
			require.False(t, seen[n], "%d drawn twice", n)
			seen[n] = true
		}
	})

	t.Run("same seed draws the same numbers", func(t *testing.T) {
		a, err := StartNumbers(rand.New(rand.NewSource(42)), 5, 20000, 30000)
		require.NoError(t, err)
		b, err := StartNumbers(rand.New(rand.NewSource(42)), 5, 20000, 30000)
		require.NoError(t, err)

		require.Equal(t, a, b)
	})

	t.Run("takes every multiple when the range is exactly large enough", func(t *testing.T) {
		numbers, err := StartNumbers(rand.New(rand.NewSource(1)), 3, 13, 48)

		require.NoError(t, err)
		require.Equal(t, []int{24, 36, 48}, numbers)
	})

	t.Run("fails when the range is too small", func(t *testing.T) {
		_, err := StartNumbers(rand.New(rand.NewSource(1)), 4, 13, 48)
		require.Error(t, err)
	})

	t.Run("fails on bad arguments", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		_, err := StartNumbers(rng, 0, 1, 100)
		require.Error(t, err)
		_, err = StartNumbers(rng, 1, 100, 1)
		require.Error(t, err)
		_, err = StartNumbers(rng, 1, 0, 100)
		require.Error(t, err)
	})
}
