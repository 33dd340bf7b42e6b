package engine

// cellMap indexes placed cards by coordinate
func cellMap(cards []PlacedCard) map[cell]PlacedCard {
	m := make(map[cell]PlacedCard, len(cards))
	for _, pc := range cards {
		m[cell{pc.Row, pc.Col}] = pc
	}
	return m
}

// CanPlace reports whether a card of the given code and rotation may join the
// existing cards at (row, col). Every occupied neighbour must face the new card
// with exactly as many connection points as the new card faces it, and at least
// one of those matches must be nonzero. The first card of an ensemble may take
// any rotation.
func (c *Catalog) CanPlace(existing []PlacedCard, code string, rotation Rotation, row, col int) bool {
	cells := cellMap(existing)
	if _, occupied := cells[cell{row, col}]; occupied {
		return false
	}
	if len(existing) == 0 {
		return true
	}

	sides := c.RotatedSides(code, rotation)
	adjacent := false
	connected := false
	for _, d := range neighborOffsets {
		neighbor, ok := cells[cell{row + d.row, col + d.col}]
		if !ok {
			continue
		}
		adjacent = true
		ours := facing(sides, d)
		if ours != c.SideFacing(neighbor, row, col) {
			return false
		}
		if ours > 0 {
			connected = true
		}
	}
	return adjacent && connected
}

// ConnectedComponents partitions cards into orthogonally connected groups.
// Components are discovered in input order.
func ConnectedComponents(cards []PlacedCard) [][]PlacedCard {
	if len(cards) == 0 {
		return nil
	}
	cells := cellMap(cards)
	visited := make(map[cell]bool, len(cards))
	var components [][]PlacedCard

	for _, start := range cards {
		origin := cell{start.Row, start.Col}
		if visited[origin] {
			continue
		}
		visited[origin] = true
		stack := []cell{origin}
		var component []PlacedCard

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, cells[cur])

			for _, d := range neighborOffsets {
				next := cell{cur.row + d.row, cur.col + d.col}
				if _, ok := cells[next]; ok && !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}
		components = append(components, component)
	}
	return components
}

// IsComplete reports whether every nonzero side of every card in the component
// meets a neighbour whose facing side has the same count
func (c *Catalog) IsComplete(component []PlacedCard) bool {
	cells := cellMap(component)
	for _, pc := range component {
		sides := c.RotatedSides(pc.Card.Code, pc.Rotation)
		for _, d := range neighborOffsets {
			n := facing(sides, d)
			if n == 0 {
				continue
			}
			neighbor, ok := cells[cell{pc.Row + d.row, pc.Col + d.col}]
			if !ok {
				return false
			}
			if facing(c.RotatedSides(neighbor.Card.Code, neighbor.Rotation), opposite(d)) != n {
				return false
			}
		}
	}
	return true
}
