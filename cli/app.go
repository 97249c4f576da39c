// Package cli provides the command-line interface of the divisor game.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"divgame/game"
	"divgame/meta"
	"divgame/player"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

// Version is set at build time.
var Version = "dev"

// ReaderFactory opens the line reader used for human input.
type ReaderFactory func(stdout, stderr io.Writer) (player.LineReader, io.Closer, error)

type config struct {
	candidates int
	min        int
	max        int
	seed       uint64
	logLevel   string
	stats      bool
	goroutines int
	numbers    []int
}

// App represents the CLI application.
type App struct {
	root      *cobra.Command
	stdout    io.Writer
	stderr    io.Writer
	newReader ReaderFactory
	cfg       config
}

func New() *App {
	app := &App{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newReader: readlineReader,
	}

	app.root = &cobra.Command{
		Use:   "divgame",
		Short: "Divide a shared number by 2, 3 or 4 against a minimax opponent",
		Long: `divgame starts from a number divisible by 12. Players take turns dividing it
by 2, 3 or 4 until it drops to 10 or below or no divisor fits. The computer
searches the whole game tree with alpha-beta pruning.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setupLogging,
		RunE:              app.runPlay,
	}

	flags := app.root.PersistentFlags()
	flags.IntVar(&app.cfg.candidates, "candidates", meta.CANDIDATES, "number of starting numbers to offer")
	flags.IntVar(&app.cfg.min, "min", meta.MIN_START, "smallest starting number")
	flags.IntVar(&app.cfg.max, "max", meta.MAX_START, "largest starting number")
	flags.Uint64Var(&app.cfg.seed, "seed", 0, "random seed for starting numbers (0 picks one from the clock)")
	flags.StringVar(&app.cfg.logLevel, "log-level", meta.LOG_LEVEL, "log level (debug, info, warn, error)")
	flags.BoolVar(&app.cfg.stats, "stats", false, "log search statistics for every computer move")
	flags.IntVar(&app.cfg.goroutines, "goroutines", meta.GO_ROUTINES, "goroutines for the search")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newPlayCmd(),
		app.newAnalyzeCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithReader replaces the readline prompt, mostly for tests.
func (a *App) WithReader(factory ReaderFactory) *App {
	a.newReader = factory
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) setupLogging(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(a.cfg.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.cfg.logLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	return nil
}

func (a *App) startNumbers() ([]int, error) {
	seed := a.cfg.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Msgf("drawing starting numbers with seed %d", seed)
	return game.StartNumbers(rand.New(rand.NewSource(seed)), a.cfg.candidates, a.cfg.min, a.cfg.max)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "divgame version %s\n", Version)
		},
	}
}

func readlineReader(stdout, stderr io.Writer) (player.LineReader, io.Closer, error) {
	l, err := readline.NewEx(&readline.Config{
		Stdout:    stdout,
		Stderr:    stderr,
		EOFPrompt: "exit",
	})
	if err != nil {
		return nil, nil, err
	}
	return l, l, nil
}
