package engine

import (
	"fmt"
	"sort"
)

// ApplyMove validates a move for the given player and returns the next state.
// The given state is never modified; on error it remains the current state.
func (e *GameEngine) ApplyMove(state *GameState, move Move, playerID string) (*GameState, error) {
	if state == nil {
		return nil, fmt.Errorf("apply move: state cannot be nil")
	}
	if state.Phase != PhasePlaying {
		return nil, fmt.Errorf("apply %s: %w", move.Type, ErrWrongPhase)
	}
	if state.CurrentTurnIndex < 0 || state.CurrentTurnIndex >= len(state.TurnOrder) {
		return nil, fmt.Errorf("apply %s: index %d with %d players: %w",
			move.Type, state.CurrentTurnIndex, len(state.TurnOrder), ErrInvalidTurnIndex)
	}
	if current := state.CurrentPlayer(); playerID != current {
		return nil, fmt.Errorf("apply %s by %q (turn of %q): %w", move.Type, playerID, current, ErrNotYourTurn)
	}

	switch move.Type {
	case MoveTake:
		return e.applyTake(state, playerID, move.RowIndex, move.Side)
	case MovePlace:
		return e.applyPlace(state, playerID, move)
	}
	return nil, fmt.Errorf("apply move %q: %w", move.Type, ErrUnknownMove)
}

func (e *GameEngine) applyTake(state *GameState, playerID string, row int, side Side) (*GameState, error) {
	if state.PendingCard != nil {
		return nil, fmt.Errorf("apply take: %w", ErrPendingCardExists)
	}
	layout, card, err := state.Layout.TakeFromEnd(row, side)
	if err != nil {
		return nil, fmt.Errorf("apply take: %w", err)
	}

	next := *state
	next.Layout = layout
	next.PendingCard = &PendingCard{PlayerID: playerID, Card: card}
	return &next, nil
}

func (e *GameEngine) applyPlace(state *GameState, playerID string, move Move) (*GameState, error) {
	if state.PendingCard == nil || state.PendingCard.PlayerID != playerID {
		return nil, fmt.Errorf("apply place: %w", ErrNoPendingCard)
	}
	if !move.Rotation.Valid() {
		return nil, fmt.Errorf("apply place: rotation %d: %w", move.Rotation, ErrInvalidRotation)
	}
	_, bi := state.Board(playerID)
	if bi < 0 {
		return nil, fmt.Errorf("apply place: no board for %q: %w", playerID, ErrInvalidPlayer)
	}

	board := state.Boards[bi]
	placed := PlacedCard{
		Card:     state.PendingCard.Card,
		Row:      move.Row,
		Col:      move.Col,
		Rotation: move.Rotation,
	}

	var ensembles []Ensemble
	if move.NewEnsemble {
		ensembles = make([]Ensemble, len(board.Ensembles), len(board.Ensembles)+1)
		copy(ensembles, board.Ensembles)
		ensembles = append(ensembles, Ensemble{ID: placed.Card.ID, Cards: []PlacedCard{placed}})
	} else {
		ei := move.EnsembleIndex
		if ei < 0 || ei >= len(board.Ensembles) {
			return nil, fmt.Errorf("apply place: ensemble %d of %d: %w", ei, len(board.Ensembles), ErrInvalidEnsembleIndex)
		}
		target := board.Ensembles[ei]
		if !e.catalog.CanPlace(target.Cards, placed.Card.Code, placed.Rotation, placed.Row, placed.Col) {
			return nil, fmt.Errorf("apply place: %s at (%d,%d) rotated %d on ensemble %d: %w",
				placed.Card.Code, placed.Row, placed.Col, placed.Rotation, ei, ErrIllegalPlacement)
		}
		cards := make([]PlacedCard, len(target.Cards), len(target.Cards)+1)
		copy(cards, target.Cards)
		target.Cards = append(cards, placed)

		ensembles = make([]Ensemble, len(board.Ensembles))
		copy(ensembles, board.Ensembles)
		ensembles[ei] = target
	}

	next := *state
	next.Boards = make([]PlayerBoard, len(state.Boards))
	copy(next.Boards, state.Boards)
	next.Boards[bi] = PlayerBoard{PlayerID: board.PlayerID, Ensembles: ensembles}
	next.PendingCard = nil
	next.CurrentTurnIndex = (state.CurrentTurnIndex + 1) % len(state.TurnOrder)

	if !next.Layout.HasRemainingCards() {
		e.finish(&next)
	}
	return &next, nil
}

// finish scores a completed game and names the winner
func (e *GameEngine) finish(state *GameState) {
	state.Scores = Scores(e.ScoreBoards(state.Boards))
	state.WinnerPlayerID = Winner(state.TurnOrder, state.Scores)
	state.Phase = PhaseFinished
}

// Winner returns the highest scoring player. Ties go to the earliest seat.
func Winner(turnOrder []string, scores map[string]int) string {
	if len(turnOrder) == 0 {
		return ""
	}
	ranked := make([]string, len(turnOrder))
	copy(ranked, turnOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked[0]
}
