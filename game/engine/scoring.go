package engine

// EnsembleScore is the scoring breakdown of one connected group on a board
type EnsembleScore struct {
	EnsembleIndex int    `json:"ensemble_index"`
	EnsembleID    string `json:"ensemble_id"`
	Size          int    `json:"size"`
	Points        int    `json:"points"`
	Complete      bool   `json:"complete"`
	Score         int    `json:"score"`
}

// BoardScore is the scoring breakdown of one player's board
type BoardScore struct {
	PlayerID        string          `json:"player_id"`
	Ensembles       []EnsembleScore `json:"ensembles"`
	Subtotal        int             `json:"subtotal"`
	LargestComplete int             `json:"largest_complete"`
	Bonus           int             `json:"bonus"`
	Total           int             `json:"total"`
}

// points returns the printed value of a card, preferring the catalog entry
func (c *Catalog) points(card CardInstance) int {
	if def, ok := c.byCode[card.Code]; ok {
		return def.Points
	}
	return card.Points
}

// ScoreBoard scores each ensemble of a board without the size bonus.
// Completeness is judged per connected component, recomputed from the cards.
func (c *Catalog) ScoreBoard(board PlayerBoard) BoardScore {
	bs := BoardScore{PlayerID: board.PlayerID}
	for i, ens := range board.Ensembles {
		for _, component := range ConnectedComponents(ens.Cards) {
			es := EnsembleScore{
				EnsembleIndex: i,
				EnsembleID:    ens.ID,
				Size:          len(component),
				Complete:      c.IsComplete(component),
			}
			for _, pc := range component {
				es.Points += c.points(pc.Card)
			}
			if es.Complete {
				es.Score = es.Points
				if es.Size > bs.LargestComplete {
					bs.LargestComplete = es.Size
				}
			} else {
				es.Score = -es.Points
			}
			bs.Subtotal += es.Score
			bs.Ensembles = append(bs.Ensembles, es)
		}
	}
	bs.Total = bs.Subtotal
	return bs
}

// ScoreBoards scores every board and splits the size bonus among the players
// holding the largest complete ensemble. The remainder of the split is dropped
// and nobody receives the bonus when no ensemble is complete.
func (c *Catalog) ScoreBoards(boards []PlayerBoard, bonus int) []BoardScore {
	results := make([]BoardScore, len(boards))
	maxComplete := 0
	for i, b := range boards {
		results[i] = c.ScoreBoard(b)
		if results[i].LargestComplete > maxComplete {
			maxComplete = results[i].LargestComplete
		}
	}
	if maxComplete == 0 {
		return results
	}

	var winners []int
	for i := range results {
		if results[i].LargestComplete == maxComplete {
			winners = append(winners, i)
		}
	}
	share := bonus / len(winners)
	for _, i := range winners {
		results[i].Bonus = share
		results[i].Total += share
	}
	return results
}

// Scores flattens board scores into the per-player totals stored on a finished game
func Scores(results []BoardScore) map[string]int {
	scores := make(map[string]int, len(results))
	for _, r := range results {
		scores[r.PlayerID] = r.Total
	}
	return scores
}
