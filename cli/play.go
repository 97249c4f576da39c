package cli

import (
	"context"
	"fmt"

	"divgame/display"
	"divgame/engine"
	"divgame/game"
	"divgame/player"
	"divgame/searcher"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *App) newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game against the computer",
		Args:  cobra.NoArgs,
		RunE:  a.runPlay,
	}
}

func (a *App) runPlay(cmd *cobra.Command, args []string) error {
	candidates, err := a.startNumbers()
	if err != nil {
		return err
	}

	in, closer, err := a.newReader(a.stdout, a.stderr)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer closer.Close()

	start, err := player.ChooseStart(in, a.stdout, candidates)
	if err != nil {
		return err
	}

	options := []searcher.Option{searcher.WithGoroutines(a.cfg.goroutines)}
	if a.cfg.stats {
		options = append(options, searcher.WithMetrics())
	}
	computer := player.NewComputer(searcher.NewSearcher(options...), a.cfg.stats)
	human := player.NewHuman(in, a.stdout)

	e := engine.LocalEngine(start, a.announce(human), a.announce(computer),
		engine.WithObserver(func(u engine.Update) {
			if u.Player == game.Computer {
				fmt.Fprint(a.stdout, display.ComputerMove(u))
			}
		}))

	outcome, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprint(a.stdout, display.GameOver(outcome))
	log.Info().Dur("duration", outcome.Duration).Int("moves", len(outcome.Moves)).Msg("game finished")
	return nil
}

// announce prints the number and score before the agent moves.
func (a *App) announce(agent engine.Agent) engine.Agent {
	return engine.AgentFunc(func(ctx context.Context, state game.State) (game.Move, error) {
		fmt.Fprint(a.stdout, display.Status(state))
		return agent.FindMove(ctx, state)
	})
}
