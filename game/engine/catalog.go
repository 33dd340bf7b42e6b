package engine

import (
	"fmt"
	"sort"
)

// Catalog is the immutable card table: definitions and base geometry per code.
// A Catalog is safe to share between engines and goroutines once built.
type Catalog struct {
	definitions []CardDefinition
	byCode      map[string]CardDefinition
	sides       map[string]SideCounts
}

// CatalogBuilder assembles a Catalog. Geometry overrides are only possible here;
// Build freezes the table.
type CatalogBuilder struct {
	definitions []CardDefinition
	sides       map[string]SideCounts
	errs        []error
}

// NewCatalogBuilder creates an empty builder
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{sides: make(map[string]SideCounts)}
}

// Add registers a card definition with its base-orientation side counts.
// Points are taken as given, zero included.
func (b *CatalogBuilder) Add(def CardDefinition, sides SideCounts) *CatalogBuilder {
	if _, exists := b.sides[def.Code]; exists {
		b.errs = append(b.errs, fmt.Errorf("%w: duplicate code %q", ErrInvalidCatalog, def.Code))
		return b
	}
	b.definitions = append(b.definitions, def)
	b.sides[def.Code] = sides
	return b
}

// OverrideSides replaces the geometry of an already added code
func (b *CatalogBuilder) OverrideSides(code string, sides SideCounts) *CatalogBuilder {
	if _, exists := b.sides[code]; !exists {
		b.errs = append(b.errs, fmt.Errorf("%w: cannot override sides of unknown code %q", ErrInvalidCatalog, code))
		return b
	}
	b.sides[code] = sides
	return b
}

// Build validates the collected definitions and returns the frozen catalog
func (b *CatalogBuilder) Build() (*Catalog, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	if len(b.definitions) == 0 {
		return nil, fmt.Errorf("%w: no card definitions", ErrInvalidCatalog)
	}

	c := &Catalog{
		definitions: make([]CardDefinition, len(b.definitions)),
		byCode:      make(map[string]CardDefinition, len(b.definitions)),
		sides:       make(map[string]SideCounts, len(b.sides)),
	}
	copy(c.definitions, b.definitions)

	for _, def := range c.definitions {
		if def.Code == "" {
			return nil, fmt.Errorf("%w: card code is required", ErrInvalidCatalog)
		}
		if !def.Category.Valid() {
			return nil, fmt.Errorf("%w: code %q has unknown category %q", ErrInvalidCatalog, def.Code, def.Category)
		}
		if def.Count < 1 {
			return nil, fmt.Errorf("%w: code %q must have a positive count, got %d", ErrInvalidCatalog, def.Code, def.Count)
		}
		if def.Points < 0 {
			return nil, fmt.Errorf("%w: code %q has negative points", ErrInvalidCatalog, def.Code)
		}
		s := b.sides[def.Code]
		if s.Top < 0 || s.Right < 0 || s.Bottom < 0 || s.Left < 0 {
			return nil, fmt.Errorf("%w: code %q has negative side counts", ErrInvalidCatalog, def.Code)
		}
		c.byCode[def.Code] = def
		c.sides[def.Code] = s
	}

	sort.SliceStable(c.definitions, func(i, j int) bool {
		return c.definitions[i].Code < c.definitions[j].Code
	})
	return c, nil
}

// Definitions returns a copy of the card definitions sorted by code
func (c *Catalog) Definitions() []CardDefinition {
	out := make([]CardDefinition, len(c.definitions))
	copy(out, c.definitions)
	return out
}

// Definition looks up a card definition by code
func (c *Catalog) Definition(code string) (CardDefinition, bool) {
	def, ok := c.byCode[code]
	return def, ok
}

// BaseSides returns the side counts of a code in base orientation.
// Unknown codes have no connection points.
func (c *Catalog) BaseSides(code string) SideCounts {
	return c.sides[code]
}

// TotalCount returns the number of physical cards the catalog prints
func (c *Catalog) TotalCount() int {
	total := 0
	for _, def := range c.definitions {
		total += def.Count
	}
	return total
}

// StandardCatalog returns the printed 48-card deck
func StandardCatalog() *Catalog {
	b := NewCatalogBuilder()
	for _, e := range standardCards {
		b.Add(CardDefinition{
			Code:     e.code,
			Category: e.category,
			Points:   e.category.DefaultPoints(),
			Count:    e.count,
		}, e.sides)
	}
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("standard catalog: %v", err))
	}
	return c
}

var standardCards = []struct {
	code     string
	category CardCategory
	count    int
	sides    SideCounts
}{
	{"A", CategoryPoint, 16, SideCounts{Left: 1}},
	{"B", CategoryLine, 5, SideCounts{Right: 1, Left: 1}},
	{"C", CategoryLine, 6, SideCounts{Left: 2}},
	{"D", CategoryTriangle, 4, SideCounts{Top: 1, Bottom: 1, Left: 1}},
	{"E", CategoryTriangle, 4, SideCounts{Right: 1, Left: 2}},
	{"F", CategoryTriangle, 2, SideCounts{Left: 3}},
	{"G", CategorySquare, 2, SideCounts{Top: 1, Right: 1, Bottom: 1, Left: 1}},
	{"H", CategorySquare, 3, SideCounts{Top: 1, Bottom: 1, Left: 2}},
	{"I", CategorySquare, 2, SideCounts{Right: 2, Left: 2}},
	{"J", CategorySquare, 2, SideCounts{Right: 1, Left: 3}},
	{"K", CategorySquare, 2, SideCounts{Left: 4}},
}
