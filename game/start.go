package game

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// StartStep is the divisibility every starting number needs so that all
// divisors are legal on the first move.
const StartStep = 12

// StartNumbers draws count distinct multiples of StartStep from [lo, hi] and
// returns them sorted.
func StartNumbers(rng *rand.Rand, count, lo, hi int) ([]int, error) {
	if count <= 0 {
		return nil, fmt.Errorf("cannot draw %d starting numbers", count)
	}
	if lo < 1 || lo > hi {
		return nil, fmt.Errorf("invalid starting number range [%d, %d]", lo, hi)
	}

	first := (lo + StartStep - 1) / StartStep
	last := hi / StartStep
	available := last - first + 1
	if available < count {
		return nil, fmt.Errorf("range [%d, %d] holds %d multiples of %d, need %d", lo, hi, max(available, 0), StartStep, count)
	}

	seen := make(map[int]struct{}, count)
	numbers := make([]int, 0, count)
	for len(numbers) < count {
		n := (first + rng.Intn(available)) * StartStep
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers, nil
}
