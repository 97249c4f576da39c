package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"divgame/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithObserver registers a callback invoked after every applied move.
func WithObserver(observe func(Update)) Option {
	return func(e *Engine) {
		if observe != nil {
			e.observers = append(e.observers, observe)
		}
	}
}

type Engine struct {
	State     game.State
	start     int
	agents    [2]Agent // Indexed by game.Turn
	observers []func(Update)
}

// LocalEngine sets up a game from a starting number with the human to move.
func LocalEngine(start int, human, computer Agent, options ...Option) *Engine {
	if human == nil || computer == nil {
		panic("both agents are required")
	}

	e := &Engine{
		State: game.NewState(start),
		start: start,
	}
	e.agents[game.Human] = human
	e.agents[game.Computer] = computer
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays until the state is terminal. Whose move it is gets read from the
// state on every iteration.
func (e *Engine) Run(ctx context.Context) (Outcome, error) {
	outcome := Outcome{Start: e.start, StartTime: time.Now()}

	log.Info().Msgf("game started from %d", e.start)

	step := 1
	for !game.IsTerminal(e.State) {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		update, err := e.step(ctx, step)
		if err != nil {
			return outcome, err
		}
		outcome.Moves = append(outcome.Moves, update)
		for _, observe := range e.observers {
			observe(update)
		}
		step++
	}

	outcome.Final = e.State
	outcome.Winner = game.Winner(e.State)
	outcome.EndTime = time.Now()
	outcome.Duration = outcome.EndTime.Sub(outcome.StartTime)

	log.Info().Msgf("game over after %d moves: %s, winner: %s", len(outcome.Moves), e.State, outcome.Winner)
	return outcome, nil
}

// step asks the agent to move until it submits a legal divisor, then applies it.
func (e *Engine) step(ctx context.Context, step int) (Update, error) {
	player := e.State.Turn()
	agent := e.agents[player]

	for attempt := 1; ; attempt++ {
		move, err := agent.FindMove(ctx, e.State)
		if err != nil {
			return Update{}, fmt.Errorf("%s failed to move: %w", player, err)
		}

		next, err := game.ApplyMove(e.State, move)
		if errors.Is(err, game.ErrInvalidMove) {
			if attempt >= MaxInvalidMoves {
				return Update{}, fmt.Errorf("%s submitted %d invalid moves: %w", player, attempt, err)
			}
			log.Warn().Err(err).Msgf("%s move rejected, asking again", player)
			continue
		}
		if err != nil {
			return Update{}, err
		}

		u := Update{
			Step:   step,
			Player: player,
			Move:   move,
			Before: e.State,
			State:  next,
		}
		log.Debug().Msgf("step %d: %s divided %d by %d -> %s", step, player, e.State.Number(), move, next)

		e.State = next
		return u, nil
	}
}
