package engine

import "fmt"

// Rules holds the table parameters a game is played with
type Rules struct {
	Rows              int  `json:"rows"`
	Cols              int  `json:"cols"`
	MinPlayers        int  `json:"min_players"`
	MaxPlayers        int  `json:"max_players"`
	SizeBonus         int  `json:"size_bonus"`
	RandomFirstPlayer bool `json:"random_first_player"`
}

// DefaultRules returns the printed rules: a 4x12 layout for 2 to 4 players
func DefaultRules() Rules {
	return Rules{
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		MinPlayers: MinPlayers,
		MaxPlayers: MaxPlayers,
		SizeBonus:  DefaultSizeBonus,
	}
}

// LayoutSize returns the number of cells in the shared layout
func (r Rules) LayoutSize() int {
	return r.Rows * r.Cols
}

// ValidateRules validates a rules value for playability
func ValidateRules(r Rules) error {
	if r.Rows < 1 || r.Cols < 1 {
		return fmt.Errorf("rules validation: layout must be at least 1x1, got %dx%d", r.Rows, r.Cols)
	}
	if r.MinPlayers < MinPlayers {
		return fmt.Errorf("rules validation: min_players must be at least %d, got %d", MinPlayers, r.MinPlayers)
	}
	if r.MaxPlayers > MaxPlayers {
		return fmt.Errorf("rules validation: max_players must not exceed %d, got %d", MaxPlayers, r.MaxPlayers)
	}
	if r.MaxPlayers < r.MinPlayers {
		return fmt.Errorf("rules validation: max_players (%d) must not be below min_players (%d)", r.MaxPlayers, r.MinPlayers)
	}
	if r.SizeBonus < 0 {
		return fmt.Errorf("rules validation: size_bonus must not be negative, got %d", r.SizeBonus)
	}
	return nil
}
