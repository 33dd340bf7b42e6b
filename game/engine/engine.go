package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Setup
	CreateInitialState(players []Player) (*GameState, error)

	// Moves
	ApplyMove(state *GameState, move Move, playerID string) (*GameState, error)

	// Queries
	ValidPlacements(boards []PlayerBoard, playerID, code string, rotation Rotation) []Placement
	ScoreBoards(boards []PlayerBoard) []BoardScore
	Catalog() *Catalog
	Rules() Rules
}

// GameEngine implements the Engine interface.
// It owns its random source and is not safe for concurrent use.
type GameEngine struct {
	catalog *Catalog
	rules   Rules
	rng     *rand.Rand
}

// NewEngine creates a game engine for the given catalog and rules.
// A nil rng is replaced by a time-seeded source.
func NewEngine(catalog *Catalog, rules Rules, rng *rand.Rand) (*GameEngine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("new engine: catalog cannot be nil")
	}
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	if total := catalog.TotalCount(); total != rules.LayoutSize() {
		return nil, fmt.Errorf("new engine: catalog prints %d cards for a %dx%d layout: %w",
			total, rules.Rows, rules.Cols, ErrCatalogSize)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GameEngine{catalog: catalog, rules: rules, rng: rng}, nil
}

// NewEngineWithDefaults creates an engine for the printed deck and rules
func NewEngineWithDefaults(rng *rand.Rand) *GameEngine {
	e, err := NewEngine(StandardCatalog(), DefaultRules(), rng)
	if err != nil {
		panic(err)
	}
	return e
}

// Catalog returns the card table the engine plays with
func (e *GameEngine) Catalog() *Catalog {
	return e.catalog
}

// Rules returns the table parameters
func (e *GameEngine) Rules() Rules {
	return e.rules
}

// CreateInitialState deals a fresh layout for the given players.
// Players are seated by join order; ties keep the given order.
func (e *GameEngine) CreateInitialState(players []Player) (*GameState, error) {
	if len(players) < e.rules.MinPlayers || len(players) > e.rules.MaxPlayers {
		return nil, fmt.Errorf("create game with %d players (want %d-%d): %w",
			len(players), e.rules.MinPlayers, e.rules.MaxPlayers, ErrInvalidPlayerCount)
	}

	seated := make([]Player, len(players))
	copy(seated, players)
	seen := make(map[string]bool, len(seated))
	for _, p := range seated {
		if p.ID == "" {
			return nil, fmt.Errorf("create game: empty player id: %w", ErrInvalidPlayer)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("create game: duplicate player id %q: %w", p.ID, ErrInvalidPlayer)
		}
		seen[p.ID] = true
	}
	sort.SliceStable(seated, func(i, j int) bool {
		return seated[i].JoinOrder < seated[j].JoinOrder
	})

	deck, err := BuildDeck(e.catalog, e.rules.LayoutSize(), e.rng)
	if err != nil {
		return nil, err
	}
	layout, err := NewLayout(deck, e.rules.Rows, e.rules.Cols)
	if err != nil {
		return nil, err
	}

	state := &GameState{
		Phase:     PhasePlaying,
		Layout:    layout,
		TurnOrder: make([]string, len(seated)),
		Boards:    make([]PlayerBoard, len(seated)),
	}
	for i, p := range seated {
		state.TurnOrder[i] = p.ID
		state.Boards[i] = PlayerBoard{PlayerID: p.ID, Ensembles: []Ensemble{}}
	}
	if e.rules.RandomFirstPlayer {
		state.CurrentTurnIndex = e.rng.Intn(len(seated))
	}
	return state, nil
}

// ValidPlacements enumerates every legal cell for a card on the player's board:
// each ensemble's bounding box grown by one cell, then the new-ensemble option
func (e *GameEngine) ValidPlacements(boards []PlayerBoard, playerID, code string, rotation Rotation) []Placement {
	var board *PlayerBoard
	for i := range boards {
		if boards[i].PlayerID == playerID {
			board = &boards[i]
			break
		}
	}
	if board == nil {
		return nil
	}

	var out []Placement
	for ei, ens := range board.Ensembles {
		minR, maxR, minC, maxC := bounds(ens.Cards)
		for r := minR - 1; r <= maxR+1; r++ {
			for c := minC - 1; c <= maxC+1; c++ {
				if e.catalog.CanPlace(ens.Cards, code, rotation, r, c) {
					out = append(out, Placement{EnsembleIndex: ei, Row: r, Col: c})
				}
			}
		}
	}
	return append(out, Placement{NewEnsemble: true, Row: NewEnsembleRow, Col: NewEnsembleColumn})
}

// ScoreBoards scores the boards with the engine's size bonus
func (e *GameEngine) ScoreBoards(boards []PlayerBoard) []BoardScore {
	return e.catalog.ScoreBoards(boards, e.rules.SizeBonus)
}

// bounds returns the bounding box of the cards, or the origin when empty
func bounds(cards []PlacedCard) (minR, maxR, minC, maxC int) {
	for i, pc := range cards {
		if i == 0 || pc.Row < minR {
			minR = pc.Row
		}
		if i == 0 || pc.Row > maxR {
			maxR = pc.Row
		}
		if i == 0 || pc.Col < minC {
			minC = pc.Col
		}
		if i == 0 || pc.Col > maxC {
			maxC = pc.Col
		}
	}
	return minR, maxR, minC, maxC
}
