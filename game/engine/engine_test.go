package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *GameEngine {
	t.Helper()
	e, err := NewEngine(StandardCatalog(), DefaultRules(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	return e
}

func twoPlayers() []Player {
	return []Player{{ID: "ann", JoinOrder: 0}, {ID: "bob", JoinOrder: 1}}
}

// handState builds a playing state around a known layout with empty boards
func handState(layout Layout, players ...string) *GameState {
	boards := make([]PlayerBoard, len(players))
	for i, p := range players {
		boards[i] = PlayerBoard{PlayerID: p, Ensembles: []Ensemble{}}
	}
	return &GameState{
		Phase:     PhasePlaying,
		Layout:    layout,
		TurnOrder: players,
		Boards:    boards,
	}
}

func rowOf(cards ...CardInstance) []*CardInstance {
	row := make([]*CardInstance, len(cards))
	for i := range cards {
		row[i] = &cards[i]
	}
	return row
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, DefaultRules(), e.Rules())
	assert.Equal(t, 48, e.Catalog().TotalCount())

	var _ Engine = e
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	short := DefaultRules()
	short.Rows, short.Cols = 2, 6
	_, err := NewEngine(StandardCatalog(), short, nil)
	assert.ErrorIs(t, err, ErrCatalogSize)

	broken := DefaultRules()
	broken.MaxPlayers = 1
	_, err = NewEngine(StandardCatalog(), broken, nil)
	assert.Error(t, err)

	_, err = NewEngine(nil, DefaultRules(), nil)
	assert.Error(t, err)
}

func TestValidateRules(t *testing.T) {
	assert.NoError(t, ValidateRules(DefaultRules()))

	tests := []struct {
		name   string
		mutate func(r *Rules)
	}{
		{"zero rows", func(r *Rules) { r.Rows = 0 }},
		{"zero cols", func(r *Rules) { r.Cols = 0 }},
		{"single player minimum", func(r *Rules) { r.MinPlayers = 1 }},
		{"five player maximum", func(r *Rules) { r.MaxPlayers = 5 }},
		{"max below min", func(r *Rules) { r.MinPlayers, r.MaxPlayers = 3, 2 }},
		{"negative bonus", func(r *Rules) { r.SizeBonus = -1 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rules := DefaultRules()
			test.mutate(&rules)
			assert.Error(t, ValidateRules(rules))

			_, err := NewEngine(StandardCatalog(), rules, nil)
			assert.Error(t, err)
		})
	}
}

func TestCreateInitialStateHonoursPlayerBounds(t *testing.T) {
	rules := DefaultRules()
	rules.MinPlayers, rules.MaxPlayers = 3, 3
	e, err := NewEngine(StandardCatalog(), rules, nil)
	require.NoError(t, err)

	_, err = e.CreateInitialState(twoPlayers())
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)

	players := append(twoPlayers(), Player{ID: "cat", JoinOrder: 2})
	_, err = e.CreateInitialState(players)
	assert.NoError(t, err)

	players = append(players, Player{ID: "dan", JoinOrder: 3})
	_, err = e.CreateInitialState(players)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)
}

func TestNewEngineWithDefaults(t *testing.T) {
	e := NewEngineWithDefaults(nil)
	state, err := e.CreateInitialState(twoPlayers())
	require.NoError(t, err)
	assert.Equal(t, 48, state.Layout.Remaining())
}

func TestCreateInitialState(t *testing.T) {
	e := newTestEngine(t)
	players := []Player{{ID: "cat", JoinOrder: 2}, {ID: "ann", JoinOrder: 0}, {ID: "bob", JoinOrder: 1}}

	state, err := e.CreateInitialState(players)
	require.NoError(t, err)

	assert.Equal(t, PhasePlaying, state.Phase)
	assert.Equal(t, []string{"ann", "bob", "cat"}, state.TurnOrder)
	assert.Equal(t, 0, state.CurrentTurnIndex)
	assert.Nil(t, state.PendingCard)
	assert.Nil(t, state.Scores)
	assert.Empty(t, state.WinnerPlayerID)

	require.Len(t, state.Layout, DefaultRows)
	for _, row := range state.Layout {
		assert.Len(t, row, DefaultCols)
	}
	assert.Equal(t, 48, state.Layout.Remaining())

	require.Len(t, state.Boards, 3)
	for i, b := range state.Boards {
		assert.Equal(t, state.TurnOrder[i], b.PlayerID)
		assert.Empty(t, b.Ensembles)
	}

	// Caller's slice keeps its order
	assert.Equal(t, "cat", players[0].ID)
}

func TestCreateInitialStateErrors(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name     string
		players  []Player
		expected error
	}{
		{"no players", nil, ErrInvalidPlayerCount},
		{"one player", []Player{{ID: "ann"}}, ErrInvalidPlayerCount},
		{"five players", []Player{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}, ErrInvalidPlayerCount},
		{"empty id", []Player{{ID: "ann"}, {ID: ""}}, ErrInvalidPlayer},
		{"duplicate id", []Player{{ID: "ann"}, {ID: "ann", JoinOrder: 1}}, ErrInvalidPlayer},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := e.CreateInitialState(test.players)
			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestCreateInitialStateDeterministic(t *testing.T) {
	a, err := NewEngine(StandardCatalog(), DefaultRules(), rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	b, err := NewEngine(StandardCatalog(), DefaultRules(), rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	sa, err := a.CreateInitialState(twoPlayers())
	require.NoError(t, err)
	sb, err := b.CreateInitialState(twoPlayers())
	require.NoError(t, err)
	assert.Equal(t, sa, sb)
}

func TestCreateInitialStateRandomFirstPlayer(t *testing.T) {
	rules := DefaultRules()
	rules.RandomFirstPlayer = true

	seen := make(map[int]bool)
	for seed := int64(0); seed < 40; seed++ {
		e, err := NewEngine(StandardCatalog(), rules, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		state, err := e.CreateInitialState(twoPlayers())
		require.NoError(t, err)
		require.True(t, state.CurrentTurnIndex >= 0 && state.CurrentTurnIndex < 2)
		seen[state.CurrentTurnIndex] = true
	}
	assert.Len(t, seen, 2, "both seats should be drawn as first player")
}

func TestValidPlacements(t *testing.T) {
	e := newTestEngine(t)
	boards := []PlayerBoard{
		{PlayerID: "ann", Ensembles: []Ensemble{ensembleOf(placed("A", 0, 0, Rotation180))}},
		{PlayerID: "bob", Ensembles: []Ensemble{}},
	}

	assert.Equal(t, []Placement{
		{EnsembleIndex: 0, Row: 0, Col: 1},
		{NewEnsemble: true, Row: 0, Col: 0},
	}, e.ValidPlacements(boards, "ann", "A", Rotation0))

	assert.Equal(t, []Placement{{NewEnsemble: true}}, e.ValidPlacements(boards, "bob", "K", Rotation0))
	assert.Nil(t, e.ValidPlacements(boards, "cat", "A", Rotation0))
}

func TestValidPlacementsAreAccepted(t *testing.T) {
	e := newTestEngine(t)
	a1, a2 := cardOf("A", 1), cardOf("A", 2)
	state := handState(Layout{rowOf(cardOf("B", 9))}, "ann", "bob")
	state.Boards[0].Ensembles = []Ensemble{{ID: a1.ID, Cards: []PlacedCard{{Card: a1, Rotation: Rotation180}}}}
	state.PendingCard = &PendingCard{PlayerID: "ann", Card: a2}

	for _, r := range Rotations {
		for _, p := range e.ValidPlacements(state.Boards, "ann", a2.Code, r) {
			move := PlaceOnMove(p.EnsembleIndex, r, p.Row, p.Col)
			if p.NewEnsemble {
				move = PlaceNewMove(r, p.Row, p.Col)
			}
			_, err := e.ApplyMove(state, move, "ann")
			assert.NoError(t, err, "placement %+v rotated %d", p, r)
		}
	}
}
