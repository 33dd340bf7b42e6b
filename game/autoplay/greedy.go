package autoplay

import (
	"github.com/patchank/assemblage/game/engine"
)

// GreedyStrategy maximizes the immediate board value of each move.
// Takes are judged by the best placement the card would allow. Ties keep the
// first option found, so the strategy is deterministic.
type GreedyStrategy struct{}

// Name returns the strategy name
func (s *GreedyStrategy) Name() string {
	return StrategyGreedy
}

// NextMove picks the take or placement with the highest board value
func (s *GreedyStrategy) NextMove(e engine.Engine, state *engine.GameState) (engine.Move, error) {
	playerID := state.CurrentPlayer()

	if state.PendingCard == nil {
		takes := engine.AvailableTakes(state)
		if len(takes) == 0 {
			return engine.Move{}, ErrNoMove
		}
		best, bestValue, found := takes[0], 0, false
		for _, t := range takes {
			_, value, ok := s.bestPlacement(e, state, playerID, t.Card)
			if ok && (!found || value > bestValue) {
				best, bestValue, found = t, value, true
			}
		}
		return engine.TakeMove(best.RowIndex, best.Side), nil
	}

	c, _, ok := s.bestPlacement(e, state, playerID, state.PendingCard.Card)
	if !ok {
		return engine.Move{}, ErrNoMove
	}
	return c.move(), nil
}

// bestPlacement evaluates every legal placement of card on the player's board
func (s *GreedyStrategy) bestPlacement(e engine.Engine, state *engine.GameState, playerID string, card engine.CardInstance) (candidate, int, bool) {
	board, _ := state.Board(playerID)
	if board == nil {
		return candidate{}, 0, false
	}

	var best candidate
	bestValue, found := 0, false
	for _, c := range candidates(e, state, playerID, card.Code) {
		value := boardValue(e, withPlacement(*board, card, c))
		if !found || value > bestValue {
			best, bestValue, found = c, value, true
		}
	}
	return best, bestValue, found
}

// boardValue is the board's current score plus weight for its largest
// complete ensemble, the part of the size bonus it is racing for
func boardValue(e engine.Engine, board engine.PlayerBoard) int {
	scores := e.ScoreBoards([]engine.PlayerBoard{board})
	return scores[0].Subtotal + 2*scores[0].LargestComplete
}

// withPlacement returns a copy of board with card placed at c
func withPlacement(board engine.PlayerBoard, card engine.CardInstance, c candidate) engine.PlayerBoard {
	pc := engine.PlacedCard{Card: card, Row: c.placement.Row, Col: c.placement.Col, Rotation: c.rotation}
	ensembles := make([]engine.Ensemble, len(board.Ensembles), len(board.Ensembles)+1)
	copy(ensembles, board.Ensembles)

	if c.placement.NewEnsemble {
		ensembles = append(ensembles, engine.Ensemble{ID: card.ID, Cards: []engine.PlacedCard{pc}})
	} else {
		target := ensembles[c.placement.EnsembleIndex]
		cards := make([]engine.PlacedCard, len(target.Cards), len(target.Cards)+1)
		copy(cards, target.Cards)
		target.Cards = append(cards, pc)
		ensembles[c.placement.EnsembleIndex] = target
	}
	return engine.PlayerBoard{PlayerID: board.PlayerID, Ensembles: ensembles}
}
