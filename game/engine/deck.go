package engine

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// BuildDeck expands the catalog into one instance per printed copy and shuffles
// them uniformly. The catalog must print exactly size cards.
func BuildDeck(catalog *Catalog, size int, rng *rand.Rand) ([]CardInstance, error) {
	if total := catalog.TotalCount(); total != size {
		return nil, fmt.Errorf("build deck: catalog prints %d cards for %d cells: %w", total, size, ErrCatalogSize)
	}

	deck := make([]CardInstance, 0, size)
	for _, def := range catalog.Definitions() {
		for i := 0; i < def.Count; i++ {
			id, err := uuid.NewRandomFromReader(rng)
			if err != nil {
				return nil, fmt.Errorf("build deck: generate card id: %w", err)
			}
			deck = append(deck, CardInstance{
				ID:       id.String(),
				Code:     def.Code,
				Category: def.Category,
				Points:   def.Points,
			})
		}
	}

	shuffle(deck, rng)
	return deck, nil
}

// shuffle is a Fisher-Yates shuffle
func shuffle(deck []CardInstance, rng *rand.Rand) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}
