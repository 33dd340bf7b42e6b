package autoplay

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/patchank/assemblage/game/engine"
)

// ErrNoMove is returned by a strategy that finds nothing legal to do
var ErrNoMove = errors.New("no legal move available")

// Strategy decides the next move for the current player
type Strategy interface {
	Name() string
	NextMove(e engine.Engine, state *engine.GameState) (engine.Move, error)
}

// Strategy names accepted by NewStrategy
const (
	StrategyRandom = "random"
	StrategyGreedy = "greedy"
)

// NewStrategy creates a strategy by name
func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case StrategyRandom:
		return NewRandomStrategy(rng), nil
	case StrategyGreedy:
		return &GreedyStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
}

// candidate is a placement together with the rotation it was found for
type candidate struct {
	rotation  engine.Rotation
	placement engine.Placement
}

func (c candidate) move() engine.Move {
	if c.placement.NewEnsemble {
		return engine.PlaceNewMove(c.rotation, c.placement.Row, c.placement.Col)
	}
	return engine.PlaceOnMove(c.placement.EnsembleIndex, c.rotation, c.placement.Row, c.placement.Col)
}

// candidates lists every legal placement of a card for the player, all rotations
func candidates(e engine.Engine, state *engine.GameState, playerID, code string) []candidate {
	var out []candidate
	for _, r := range engine.Rotations {
		for _, p := range e.ValidPlacements(state.Boards, playerID, code, r) {
			out = append(out, candidate{rotation: r, placement: p})
		}
	}
	return out
}

// RandomStrategy picks uniformly among legal takes and placements
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy creates a random strategy. A nil rng uses a fixed seed.
func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &RandomStrategy{rng: rng}
}

// Name returns the strategy name
func (s *RandomStrategy) Name() string {
	return StrategyRandom
}

// NextMove picks a random legal move
func (s *RandomStrategy) NextMove(e engine.Engine, state *engine.GameState) (engine.Move, error) {
	if state.PendingCard == nil {
		takes := engine.AvailableTakes(state)
		if len(takes) == 0 {
			return engine.Move{}, ErrNoMove
		}
		t := takes[s.rng.Intn(len(takes))]
		return engine.TakeMove(t.RowIndex, t.Side), nil
	}

	options := candidates(e, state, state.PendingCard.PlayerID, state.PendingCard.Card.Code)
	if len(options) == 0 {
		return engine.Move{}, ErrNoMove
	}
	return options[s.rng.Intn(len(options))].move(), nil
}
