package searcher

import (
	"divgame/game"
)

func alphaBeta(state game.State, alpha, beta int, c counter) (int, game.Move) {
	c.AddNode()
	if game.IsTerminal(state) {
		c.AddLeaf()
		return game.Evaluate(state), game.NoMove
	}

	if state.Turn() == game.Computer { // Maximizing player
		bestVal, bestMove := NegInf, game.NoMove
		for _, child := range game.GenerateChildren(state) {
			val, _ := alphaBeta(child.State, alpha, beta, c)
			if val > bestVal {
				bestVal, bestMove = val, child.Move
			}
			alpha = max(alpha, bestVal)
			if beta <= alpha {
				c.AddCutoff()
				break
			}
		}
		return bestVal, bestMove
	}

	// Minimizing player
	bestVal, bestMove := PosInf, game.NoMove
	for _, child := range game.GenerateChildren(state) {
		val, _ := alphaBeta(child.State, alpha, beta, c)
		if val < bestVal {
			bestVal, bestMove = val, child.Move
		}
		beta = min(beta, bestVal)
		if beta <= alpha {
			c.AddCutoff()
			break
		}
	}
	return bestVal, bestMove
}

// fullMinimax visits every node. It keeps the same tie-breaking as alphaBeta
// and serves as the reference the pruned search must agree with.
func fullMinimax(state game.State, c counter) (int, game.Move) {
	c.AddNode()
	if game.IsTerminal(state) {
		c.AddLeaf()
		return game.Evaluate(state), game.NoMove
	}

	maximizing := state.Turn() == game.Computer
	bestVal, bestMove := PosInf, game.NoMove
	if maximizing {
		bestVal = NegInf
	}
	for _, child := range game.GenerateChildren(state) {
		val, _ := fullMinimax(child.State, c)
		if (maximizing && val > bestVal) || (!maximizing && val < bestVal) {
			bestVal, bestMove = val, child.Move
		}
	}
	return bestVal, bestMove
}
