package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/patchank/assemblage/game/engine"
)

var (
	ErrRuleSetNotFound    = errors.New("rule set not found")
	ErrInvalidRuleSet     = errors.New("invalid rule set")
	ErrInvalidRuleSetName = errors.New("rule set name must be a plain file name")
)

// StandardName is the id of the built-in printed rule set
const StandardName = "standard"

// CardSpec is one card definition in a rule set file
type CardSpec struct {
	Code     string              `json:"code"`
	Category engine.CardCategory `json:"category"`
	Points   *int                `json:"points,omitempty"`
	Count    int                 `json:"count"`
	Sides    engine.SideCounts   `json:"sides"`
}

// points returns the card's points, the category default when unset
func (c CardSpec) points() int {
	if c.Points == nil {
		return c.Category.DefaultPoints()
	}
	return *c.Points
}

// RuleSet is a playable table: layout rules plus the card table that fills it
type RuleSet struct {
	Name          string                       `json:"name"`
	Description   string                       `json:"description"`
	Rules         engine.Rules                 `json:"rules"`
	Cards         []CardSpec                   `json:"cards"`
	SideOverrides map[string]engine.SideCounts `json:"side_overrides,omitempty"`
}

// RuleSetInfo summarizes a rule set for listings
type RuleSetInfo struct {
	Filename    string `json:"filename,omitempty"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Codes       int    `json:"codes"`
	BuiltIn     bool   `json:"built_in,omitempty"`
}

// Catalog freezes the rule set's cards into an engine catalog.
// Side overrides are applied in code order.
func (rs *RuleSet) Catalog() (*engine.Catalog, error) {
	b := engine.NewCatalogBuilder()
	for _, card := range rs.Cards {
		b.Add(engine.CardDefinition{
			Code:     card.Code,
			Category: card.Category,
			Points:   card.points(),
			Count:    card.Count,
		}, card.Sides)
	}

	codes := make([]string, 0, len(rs.SideOverrides))
	for code := range rs.SideOverrides {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		b.OverrideSides(code, rs.SideOverrides[code])
	}
	return b.Build()
}

// Info summarizes the rule set under the given id
func (rs *RuleSet) Info(id string) *RuleSetInfo {
	return &RuleSetInfo{
		ID:          id,
		Name:        rs.Name,
		Description: rs.Description,
		Rows:        rs.Rules.Rows,
		Cols:        rs.Rules.Cols,
		Codes:       len(rs.Cards),
	}
}

// ValidateRuleSet validates a rule set for correctness and playability
func ValidateRuleSet(rs *RuleSet) error {
	if rs.Name == "" {
		return fmt.Errorf("rule set validation: name is required")
	}
	if rs.Description == "" {
		return fmt.Errorf("rule set validation: description is required")
	}
	if err := engine.ValidateRules(rs.Rules); err != nil {
		return fmt.Errorf("rule set validation: %w", err)
	}

	catalog, err := rs.Catalog()
	if err != nil {
		return fmt.Errorf("rule set validation: %w", err)
	}
	if total := catalog.TotalCount(); total != rs.Rules.LayoutSize() {
		return fmt.Errorf("rule set validation: cards total %d but layout %dx%d has %d cells: %w",
			total, rs.Rules.Rows, rs.Rules.Cols, rs.Rules.LayoutSize(), engine.ErrCatalogSize)
	}
	return nil
}

// StandardRuleSet returns the printed game: the 48-card deck on a 4x12 layout
func StandardRuleSet() *RuleSet {
	catalog := engine.StandardCatalog()
	rs := &RuleSet{
		Name:        "Standard",
		Description: "The printed 48-card deck on a 4x12 layout for 2 to 4 players",
		Rules:       engine.DefaultRules(),
	}
	for _, def := range catalog.Definitions() {
		rs.Cards = append(rs.Cards, CardSpec{
			Code:     def.Code,
			Category: def.Category,
			Count:    def.Count,
			Sides:    catalog.BaseSides(def.Code),
		})
	}
	return rs
}

// LoadFile reads and validates a single rule set file
func LoadFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrRuleSetNotFound)
		}
		return nil, fmt.Errorf("failed to read rule set file: %w", err)
	}
	return parseRuleSet(data)
}

func parseRuleSet(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("%w: failed to parse rule set: %v", ErrInvalidRuleSet, err)
	}
	if err := ValidateRuleSet(&rs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleSet, err)
	}
	return &rs, nil
}
