package searcher

import (
	"divgame/game"

	"golang.org/x/sync/errgroup"
)

type Option func(s *Searcher)

// Searcher runs exhaustive minimax searches from a game state.
type Searcher struct {
	goroutines int
	pruning    bool
	metrics    Collector
}

// WithGoroutines evaluates the root's children concurrently on up to n goroutines.
func WithGoroutines(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

// WithoutPruning disables alpha-beta cutoffs.
func WithoutPruning() Option {
	return func(s *Searcher) {
		s.pruning = false
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		goroutines: 1,
		pruning:    true,
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Search returns the minimax value of state, the best move for the side to
// move and the metrics of the search (zero unless WithMetrics is set).
func (s *Searcher) Search(state game.State) (int, game.Move, SearchMetric) {
	s.metrics.Start(s.goroutines, s.pruning)

	var val int
	var move game.Move
	if s.goroutines > 1 && !game.IsTerminal(state) {
		val, move = s.searchRoot(state)
	} else {
		val, move = s.search(state)
	}

	return val, move, s.metrics.Complete()
}

// FindNextMove returns the best move for the side to move, or game.NoMove if
// the state is terminal.
func (s *Searcher) FindNextMove(state game.State) game.Move {
	_, move, _ := s.Search(state)
	return move
}

func (s *Searcher) search(state game.State) (int, game.Move) {
	if s.pruning {
		return alphaBeta(state, NegInf, PosInf, s.metrics)
	}
	return fullMinimax(state, s.metrics)
}

// searchRoot evaluates every child of the root independently with a full
// window and reduces the results in ascending-divisor order.
func (s *Searcher) searchRoot(state game.State) (int, game.Move) {
	s.metrics.AddNode()
	children := game.GenerateChildren(state)
	values := make([]int, len(children))

	var g errgroup.Group
	g.SetLimit(s.goroutines)
	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			values[i], _ = s.search(child.State)
			return nil
		})
	}
	_ = g.Wait() // Workers never fail

	maximizing := state.Turn() == game.Computer
	bestVal, bestMove := PosInf, game.NoMove
	if maximizing {
		bestVal = NegInf
	}
	for i, val := range values {
		if (maximizing && val > bestVal) || (!maximizing && val < bestVal) {
			bestVal, bestMove = val, children[i].Move
		}
	}
	return bestVal, bestMove
}
