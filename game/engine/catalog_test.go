package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cardOf builds a card instance of a standard code with a readable id
func cardOf(code string, n int) CardInstance {
	def, _ := StandardCatalog().Definition(code)
	return CardInstance{
		ID:       fmt.Sprintf("%s-%d", code, n),
		Code:     code,
		Category: def.Category,
		Points:   def.Points,
	}
}

// placed pins a standard card to a board cell
func placed(code string, row, col int, rotation Rotation) PlacedCard {
	return PlacedCard{Card: cardOf(code, row*100+col), Row: row, Col: col, Rotation: rotation}
}

// zeroCatalog adds a blank "Z" card with no connection points to the standard codes
func zeroCatalog(t *testing.T) *Catalog {
	t.Helper()
	b := NewCatalogBuilder()
	for _, def := range StandardCatalog().Definitions() {
		b.Add(def, StandardCatalog().BaseSides(def.Code))
	}
	b.Add(CardDefinition{Code: "Z", Category: CategoryPoint, Points: 1, Count: 1}, SideCounts{})
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func TestStandardCatalog(t *testing.T) {
	c := StandardCatalog()

	assert.Equal(t, 48, c.TotalCount())

	expected := map[string]struct {
		category CardCategory
		count    int
		points   int
	}{
		"A": {CategoryPoint, 16, 1},
		"B": {CategoryLine, 5, 2},
		"C": {CategoryLine, 6, 2},
		"D": {CategoryTriangle, 4, 3},
		"E": {CategoryTriangle, 4, 3},
		"F": {CategoryTriangle, 2, 3},
		"G": {CategorySquare, 2, 4},
		"H": {CategorySquare, 3, 4},
		"I": {CategorySquare, 2, 4},
		"J": {CategorySquare, 2, 4},
		"K": {CategorySquare, 2, 4},
	}

	defs := c.Definitions()
	require.Len(t, defs, len(expected))
	for _, def := range defs {
		want, ok := expected[def.Code]
		require.True(t, ok, "unexpected code %s", def.Code)
		assert.Equal(t, want.category, def.Category, def.Code)
		assert.Equal(t, want.count, def.Count, def.Code)
		assert.Equal(t, want.points, def.Points, def.Code)
	}

	// Connection points grow with the category
	assert.Equal(t, 1, c.BaseSides("A").Total())
	assert.Equal(t, 2, c.BaseSides("B").Total())
	assert.Equal(t, 3, c.BaseSides("F").Total())
	assert.Equal(t, 4, c.BaseSides("K").Total())
}

func TestCatalogDefinitionsAreCopies(t *testing.T) {
	c := StandardCatalog()
	defs := c.Definitions()
	defs[0].Count = 999

	def, ok := c.Definition(defs[0].Code)
	require.True(t, ok)
	assert.NotEqual(t, 999, def.Count)
}

func TestCatalogBuilder(t *testing.T) {
	t.Run("points taken as given", func(t *testing.T) {
		c, err := NewCatalogBuilder().
			Add(CardDefinition{Code: "T", Category: CategoryTriangle, Count: 1}, SideCounts{Top: 3}).
			Add(CardDefinition{Code: "X", Category: CategoryPoint, Points: 7, Count: 1}, SideCounts{}).
			Build()
		require.NoError(t, err)

		def, _ := c.Definition("T")
		assert.Equal(t, 0, def.Points)
		def, _ = c.Definition("X")
		assert.Equal(t, 7, def.Points)
	})

	t.Run("standard cards carry category points", func(t *testing.T) {
		c := StandardCatalog()
		for _, def := range c.Definitions() {
			assert.Equal(t, def.Category.DefaultPoints(), def.Points, def.Code)
		}
	})

	t.Run("override sides before build", func(t *testing.T) {
		c, err := NewCatalogBuilder().
			Add(CardDefinition{Code: "A", Category: CategoryPoint, Count: 1}, SideCounts{Left: 1}).
			OverrideSides("A", SideCounts{Top: 1}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, SideCounts{Top: 1}, c.BaseSides("A"))
	})

	tests := []struct {
		name    string
		builder *CatalogBuilder
	}{
		{"empty", NewCatalogBuilder()},
		{"duplicate code", NewCatalogBuilder().
			Add(CardDefinition{Code: "A", Category: CategoryPoint, Count: 1}, SideCounts{}).
			Add(CardDefinition{Code: "A", Category: CategoryPoint, Count: 1}, SideCounts{})},
		{"override unknown code", NewCatalogBuilder().
			Add(CardDefinition{Code: "A", Category: CategoryPoint, Count: 1}, SideCounts{}).
			OverrideSides("Q", SideCounts{})},
		{"unknown category", NewCatalogBuilder().
			Add(CardDefinition{Code: "A", Category: "hexagon", Count: 1}, SideCounts{})},
		{"zero count", NewCatalogBuilder().
			Add(CardDefinition{Code: "A", Category: CategoryPoint}, SideCounts{})},
		{"missing code", NewCatalogBuilder().
			Add(CardDefinition{Category: CategoryPoint, Count: 1}, SideCounts{})},
		{"negative sides", NewCatalogBuilder().
			Add(CardDefinition{Code: "A", Category: CategoryPoint, Count: 1}, SideCounts{Left: -1})},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.builder.Build()
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}
