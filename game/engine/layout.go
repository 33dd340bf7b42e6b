package engine

import "fmt"

// Layout is the shared face-up grid. A nil cell is empty.
type Layout [][]*CardInstance

// NewLayout fills a rows x cols grid from the deck in row-major order
func NewLayout(deck []CardInstance, rows, cols int) (Layout, error) {
	if len(deck) != rows*cols {
		return nil, fmt.Errorf("new layout: %d cards for %dx%d grid: %w", len(deck), rows, cols, ErrCatalogSize)
	}
	layout := make(Layout, rows)
	for r := 0; r < rows; r++ {
		layout[r] = make([]*CardInstance, cols)
		for c := 0; c < cols; c++ {
			card := deck[r*cols+c]
			layout[r][c] = &card
		}
	}
	return layout, nil
}

// TakeFromEnd removes the outermost card of a row on the given side.
// The receiver is not modified; the returned layout shares every row but the touched one.
func (l Layout) TakeFromEnd(row int, side Side) (Layout, CardInstance, error) {
	if row < 0 || row >= len(l) {
		return nil, CardInstance{}, fmt.Errorf("take from row %d: %w", row, ErrInvalidRow)
	}
	if !side.Valid() {
		return nil, CardInstance{}, fmt.Errorf("take from row %d: side %q: %w", row, side, ErrInvalidSide)
	}

	col := l.endColumn(row, side)
	if col < 0 {
		return nil, CardInstance{}, fmt.Errorf("take from row %d: %w", row, ErrRowEmpty)
	}

	card := *l[row][col]
	next := make(Layout, len(l))
	copy(next, l)
	next[row] = make([]*CardInstance, len(l[row]))
	copy(next[row], l[row])
	next[row][col] = nil
	return next, card, nil
}

// Peek returns the card a take from this row and side would yield
func (l Layout) Peek(row int, side Side) (CardInstance, bool) {
	if row < 0 || row >= len(l) {
		return CardInstance{}, false
	}
	col := l.endColumn(row, side)
	if col < 0 {
		return CardInstance{}, false
	}
	return *l[row][col], true
}

// endColumn returns the first occupied column scanning from side, or -1
func (l Layout) endColumn(row int, side Side) int {
	cells := l[row]
	if side == SideLeft {
		for c := 0; c < len(cells); c++ {
			if cells[c] != nil {
				return c
			}
		}
		return -1
	}
	for c := len(cells) - 1; c >= 0; c-- {
		if cells[c] != nil {
			return c
		}
	}
	return -1
}

// HasRemainingCards reports whether any cell is occupied
func (l Layout) HasRemainingCards() bool {
	return l.Remaining() > 0
}

// Remaining counts occupied cells
func (l Layout) Remaining() int {
	n := 0
	for _, row := range l {
		for _, c := range row {
			if c != nil {
				n++
			}
		}
	}
	return n
}

// TakeOption is one legal take for the current player
type TakeOption struct {
	RowIndex int          `json:"row_index"`
	Side     Side         `json:"side"`
	Card     CardInstance `json:"card"`
}

// AvailableTakes lists the legal takes in the current state. Rows holding a single
// card yield only the left option. Nothing is available once a card is pending or
// the game is over.
func AvailableTakes(state *GameState) []TakeOption {
	if state.Phase != PhasePlaying || state.PendingCard != nil {
		return nil
	}
	var opts []TakeOption
	for r := range state.Layout {
		left := state.Layout.endColumn(r, SideLeft)
		if left < 0 {
			continue
		}
		opts = append(opts, TakeOption{RowIndex: r, Side: SideLeft, Card: *state.Layout[r][left]})
		right := state.Layout.endColumn(r, SideRight)
		if right != left {
			opts = append(opts, TakeOption{RowIndex: r, Side: SideRight, Card: *state.Layout[r][right]})
		}
	}
	return opts
}
