package cli

import (
	"fmt"

	"divgame/analysis"
	"divgame/display"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (a *App) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Solve starting numbers with the computer playing both sides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers := a.cfg.numbers
			if len(numbers) == 0 {
				var err error
				numbers, err = a.startNumbers()
				if err != nil {
					return err
				}
			}

			reports, err := analysis.Sweep(cmd.Context(), lo.Uniq(numbers), max(a.cfg.goroutines, 1))
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, display.Styles.Bold.Render("start   human-first   computer-first   self-play"))
			for _, r := range reports {
				fmt.Fprintf(a.stdout, "%-7d %+3d by %d      %+3d by %d         %s in %d moves, H %d C %d\n",
					r.Start, r.HumanValue, r.HumanMove, r.ComputerValue, r.ComputerMove,
					r.Winner, r.Moves, r.Final.HumanPoints(), r.Final.ComputerPoints())
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&a.cfg.numbers, "numbers", nil, "starting numbers to analyze instead of random candidates")
	return cmd
}
