package player

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"divgame/game"

	"github.com/samber/lo"
)

const (
	DivisorPrompt   = "Divide by (2/3/4): "
	MsgNotInteger   = "Please enter an integer."
	MsgIllegal      = "Illegal divisor."
	MsgNotDivisible = "The number is not divisible by the chosen divisor."
)

// LineReader reads one line of user input after showing a prompt.
// *readline.Instance satisfies it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Human asks a person for divisors until one is legal for the current number.
type Human struct {
	in  LineReader
	out io.Writer
}

func NewHuman(in LineReader, out io.Writer) *Human {
	return &Human{in: in, out: out}
}

func (h *Human) FindMove(ctx context.Context, state game.State) (game.Move, error) {
	h.in.SetPrompt(DivisorPrompt)
	for {
		if err := ctx.Err(); err != nil {
			return game.NoMove, err
		}

		line, err := h.in.Readline()
		if err != nil {
			return game.NoMove, err
		}

		d, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(h.out, MsgNotInteger)
			continue
		}

		move := game.Move(d)
		if !lo.Contains(game.Divisors, move) {
			fmt.Fprintln(h.out, MsgIllegal)
			continue
		}
		if !lo.Contains(game.LegalMoves(state), move) {
			fmt.Fprintln(h.out, MsgNotDivisible)
			continue
		}
		return move, nil
	}
}
