package searcher

import (
	"math"

	"divgame/game"
)

// Search window bounds standing in for -infinity and +infinity.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// Minimax searches the game tree below state with alpha-beta pruning. The
// computer maximizes Evaluate, the human minimizes it. Among equally good
// moves the first in ascending-divisor order is kept. A terminal state yields
// its evaluation and game.NoMove.
func Minimax(state game.State, alpha, beta int) (int, game.Move) {
	return alphaBeta(state, alpha, beta, noCounter{})
}

// counter receives search events; the metrics collector implements it.
type counter interface {
	AddNode()
	AddLeaf()
	AddCutoff()
}

type noCounter struct{}

func (noCounter) AddNode()   {}
func (noCounter) AddLeaf()   {}
func (noCounter) AddCutoff() {}
