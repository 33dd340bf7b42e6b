package engine

// CardCategory groups card codes by shape
type CardCategory string

const (
	CategoryPoint    CardCategory = "point"
	CategoryLine     CardCategory = "line"
	CategoryTriangle CardCategory = "triangle"
	CategorySquare   CardCategory = "square"
)

// Valid reports whether c is one of the four known categories
func (c CardCategory) Valid() bool {
	switch c {
	case CategoryPoint, CategoryLine, CategoryTriangle, CategorySquare:
		return true
	}
	return false
}

// DefaultPoints returns the point value printed on cards of this category
func (c CardCategory) DefaultPoints() int {
	switch c {
	case CategoryPoint:
		return 1
	case CategoryLine:
		return 2
	case CategoryTriangle:
		return 3
	case CategorySquare:
		return 4
	}
	return 0
}

// Phase is the lifecycle stage of a game
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// Rotation is a clockwise card orientation in degrees
type Rotation int

const (
	Rotation0   Rotation = 0
	Rotation90  Rotation = 90
	Rotation180 Rotation = 180
	Rotation270 Rotation = 270
)

// Rotations lists every legal orientation in clockwise order
var Rotations = []Rotation{Rotation0, Rotation90, Rotation180, Rotation270}

// Valid reports whether r is a quarter turn
func (r Rotation) Valid() bool {
	switch r {
	case Rotation0, Rotation90, Rotation180, Rotation270:
		return true
	}
	return false
}

// Side selects an open end of a layout row
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Valid reports whether s is left or right
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Validation constants
const (
	DefaultRows       = 4
	DefaultCols       = 12
	MinPlayers        = 2
	MaxPlayers        = 4
	DefaultSizeBonus  = 50
	NewEnsembleRow    = 0
	NewEnsembleColumn = 0
)

// CardDefinition describes a logical card type, not an individual copy
type CardDefinition struct {
	Code     string       `json:"code"`
	Category CardCategory `json:"category"`
	Points   int          `json:"points"`
	Count    int          `json:"count"`
}

// CardInstance is one physical copy of a card
type CardInstance struct {
	ID       string       `json:"id"`
	Code     string       `json:"code"`
	Category CardCategory `json:"category"`
	Points   int          `json:"points"`
}

// SideCounts holds connection points per edge in the base orientation
type SideCounts struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// PlacedCard is a card pinned to a player's private board
type PlacedCard struct {
	Card     CardInstance `json:"card"`
	Row      int          `json:"row"`
	Col      int          `json:"col"`
	Rotation Rotation     `json:"rotation"`
}

// Ensemble is one connected group of placed cards with its own coordinate space
type Ensemble struct {
	ID    string       `json:"id"`
	Cards []PlacedCard `json:"placed_cards"`
}

// PlayerBoard holds one player's ensembles
type PlayerBoard struct {
	PlayerID  string     `json:"player_id"`
	Ensembles []Ensemble `json:"ensembles"`
}

// PendingCard is a taken card waiting to be placed
type PendingCard struct {
	PlayerID string       `json:"player_id"`
	Card     CardInstance `json:"card"`
}

// Player identifies a participant and their seating order
type Player struct {
	ID        string `json:"id"`
	JoinOrder int    `json:"join_order"`
}

// GameState represents the complete game state.
//
// States are values: ApplyMove never changes the state it was given and the
// returned state shares every substructure the move did not touch.
type GameState struct {
	Phase            Phase          `json:"phase"`
	Layout           Layout         `json:"layout"`
	TurnOrder        []string       `json:"turn_order"`
	CurrentTurnIndex int            `json:"current_turn_index"`
	Boards           []PlayerBoard  `json:"boards"`
	PendingCard      *PendingCard   `json:"pending_card"`
	Scores           map[string]int `json:"scores,omitempty"`
	WinnerPlayerID   string         `json:"winner_player_id,omitempty"`
}

// CurrentPlayer returns the id of the player whose turn it is, or "" when
// the turn index does not point into the turn order
func (gs *GameState) CurrentPlayer() string {
	if gs.CurrentTurnIndex < 0 || gs.CurrentTurnIndex >= len(gs.TurnOrder) {
		return ""
	}
	return gs.TurnOrder[gs.CurrentTurnIndex]
}

// IsFinished returns whether the game is over
func (gs *GameState) IsFinished() bool {
	return gs.Phase == PhaseFinished
}

// Board returns the board of the given player and its index, or -1 if absent
func (gs *GameState) Board(playerID string) (*PlayerBoard, int) {
	for i := range gs.Boards {
		if gs.Boards[i].PlayerID == playerID {
			return &gs.Boards[i], i
		}
	}
	return nil, -1
}

// MoveType tags the Move variant
type MoveType string

const (
	MoveTake  MoveType = "take"
	MovePlace MoveType = "place"
)

// Move is a tagged variant: a take from the layout or a placement of the pending card.
// Take uses RowIndex and Side; Place uses Rotation, Row, Col and either NewEnsemble
// or EnsembleIndex.
type Move struct {
	Type          MoveType `json:"type"`
	RowIndex      int      `json:"row_index,omitempty"`
	Side          Side     `json:"side,omitempty"`
	Rotation      Rotation `json:"rotation,omitempty"`
	Row           int      `json:"row,omitempty"`
	Col           int      `json:"col,omitempty"`
	NewEnsemble   bool     `json:"new_ensemble,omitempty"`
	EnsembleIndex int      `json:"ensemble_index,omitempty"`
}

// TakeMove builds a move taking the outermost card of a row
func TakeMove(row int, side Side) Move {
	return Move{Type: MoveTake, RowIndex: row, Side: side}
}

// PlaceNewMove builds a move starting a new ensemble with the pending card
func PlaceNewMove(rotation Rotation, row, col int) Move {
	return Move{Type: MovePlace, Rotation: rotation, Row: row, Col: col, NewEnsemble: true}
}

// PlaceOnMove builds a move attaching the pending card to an existing ensemble
func PlaceOnMove(ensembleIndex int, rotation Rotation, row, col int) Move {
	return Move{Type: MovePlace, Rotation: rotation, Row: row, Col: col, EnsembleIndex: ensembleIndex}
}

// Placement is one legal destination for a card
type Placement struct {
	EnsembleIndex int  `json:"ensemble_index"`
	NewEnsemble   bool `json:"new_ensemble,omitempty"`
	Row           int  `json:"row"`
	Col           int  `json:"col"`
}
