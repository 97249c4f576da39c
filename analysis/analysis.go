package analysis

import (
	"context"
	"fmt"

	"divgame/engine"
	"divgame/game"
	"divgame/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Report describes one starting number under perfect play from both sides.
type Report struct {
	Start int
	// Minimax value and best opening when the human moves first, as in a real game.
	HumanValue int
	HumanMove  game.Move
	// Minimax value and best opening if the computer moved first.
	ComputerValue int
	ComputerMove  game.Move
	Nodes         int64
	// Result of actually playing the game with the searcher on both sides.
	Final  game.State
	Winner string
	Moves  int
}

// Sweep analyzes every starting number, running up to goroutines analyses at once.
// Reports keep the order of numbers.
func Sweep(ctx context.Context, numbers []int, goroutines int) ([]Report, error) {
	if goroutines < 1 {
		goroutines = 1
	}
	reports := make([]Report, len(numbers))

	log.Info().Msgf("starting analysis of %d numbers on %d goroutines...", len(numbers), goroutines)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(goroutines)
	for i, n := range numbers {
		i, n := i, n
		g.Go(func() error {
			r, err := Analyze(ctx, n)
			if err != nil {
				return fmt.Errorf("analyzing %d: %w", n, err)
			}
			reports[i] = r
			log.Debug().Msgf("analyzed %d: value %d, winner %s", n, r.HumanValue, r.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msg("completed analysis")
	return reports, nil
}

// Analyze searches both openings of start and plays it out with the searcher
// choosing moves for both players.
func Analyze(ctx context.Context, start int) (Report, error) {
	s := searcher.NewSearcher(searcher.WithMetrics())

	humanVal, humanMove, humanMetric := s.Search(game.NewState(start))
	computerVal, computerMove, computerMetric := s.Search(game.Restore(start, 0, 0, game.Computer))

	selfPlay := engine.AgentFunc(func(ctx context.Context, state game.State) (game.Move, error) {
		return s.FindNextMove(state), nil
	})
	outcome, err := engine.LocalEngine(start, selfPlay, selfPlay).Run(ctx)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Start:         start,
		HumanValue:    humanVal,
		HumanMove:     humanMove,
		ComputerValue: computerVal,
		ComputerMove:  computerMove,
		Nodes:         humanMetric.Nodes + computerMetric.Nodes,
		Final:         outcome.Final,
		Winner:        outcome.Winner,
		Moves:         len(outcome.Moves),
	}, nil
}
