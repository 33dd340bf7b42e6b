package engine

import "errors"

// Errors returned by engine operations. Operations wrap them with context;
// match with errors.Is.
var (
	ErrWrongPhase           = errors.New("game is not in playing phase")
	ErrNotYourTurn          = errors.New("it is not this player's turn")
	ErrPendingCardExists    = errors.New("current player must place their pending card first")
	ErrNoPendingCard        = errors.New("no pending card to place for this player")
	ErrInvalidRow           = errors.New("invalid row index")
	ErrRowEmpty             = errors.New("selected row has no cards left")
	ErrInvalidEnsembleIndex = errors.New("invalid ensemble index")
	ErrIllegalPlacement     = errors.New("invalid placement: cell occupied or connection counts do not match")
	ErrInvalidPlayerCount   = errors.New("invalid player count")
	ErrInvalidPlayer        = errors.New("invalid player")
	ErrInvalidRotation      = errors.New("invalid rotation")
	ErrInvalidSide          = errors.New("invalid side")
	ErrUnknownMove          = errors.New("unknown move type")
	ErrInvalidTurnIndex     = errors.New("turn index outside the turn order")

	// ErrCatalogSize is a configuration error: the catalog does not fill the layout.
	ErrCatalogSize = errors.New("card catalog does not match layout size")
	// ErrInvalidCatalog reports a malformed card definition.
	ErrInvalidCatalog = errors.New("invalid card catalog")
)
