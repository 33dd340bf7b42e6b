package autoplay

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/patchank/assemblage/game/engine"
)

// ErrMoveLimit stops a game whose strategies keep playing past the layout size
var ErrMoveLimit = errors.New("move limit reached before the game finished")

// TurnRecord is one applied move
type TurnRecord struct {
	Turn     int                 `json:"turn"`
	PlayerID string              `json:"player_id"`
	Move     engine.Move         `json:"move"`
	Card     engine.CardInstance `json:"card"`
}

// Result is the outcome of a played game
type Result struct {
	Final  *engine.GameState   `json:"final"`
	Turns  []TurnRecord        `json:"turns"`
	Scores []engine.BoardScore `json:"scores,omitempty"`
}

// Runner drives a game to completion through Engine.ApplyMove
type Runner struct {
	engine     engine.Engine
	fallback   Strategy
	strategies map[string]Strategy
	logger     logrus.FieldLogger
}

// NewRunner creates a runner where every player uses the given strategy
func NewRunner(e engine.Engine, strategy Strategy, logger logrus.FieldLogger) *Runner {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Runner{
		engine:     e,
		fallback:   strategy,
		strategies: make(map[string]Strategy),
		logger:     logger,
	}
}

// SetStrategy assigns a strategy to one player
func (r *Runner) SetStrategy(playerID string, s Strategy) {
	r.strategies[playerID] = s
}

func (r *Runner) strategyFor(playerID string) Strategy {
	if s, ok := r.strategies[playerID]; ok {
		return s
	}
	return r.fallback
}

// Play applies strategy moves until the game finishes. Cancellation is checked
// between moves. On error the result holds the last good state and the turns
// played so far.
func (r *Runner) Play(ctx context.Context, state *engine.GameState) (*Result, error) {
	res := &Result{Final: state}
	limit := 2*r.engine.Rules().LayoutSize() + 1

	for !res.Final.IsFinished() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if len(res.Turns) >= limit {
			return res, ErrMoveLimit
		}

		cur := res.Final
		playerID := cur.CurrentPlayer()
		strategy := r.strategyFor(playerID)
		log := r.logger.WithFields(logrus.Fields{
			"turn":     len(res.Turns) + 1,
			"player":   playerID,
			"strategy": strategy.Name(),
		})

		move, err := strategy.NextMove(r.engine, cur)
		if err != nil {
			return res, fmt.Errorf("turn %d: %s strategy for %s: %w", len(res.Turns)+1, strategy.Name(), playerID, err)
		}
		next, err := r.engine.ApplyMove(cur, move, playerID)
		if err != nil {
			log.WithError(err).Warn("Strategy produced an illegal move")
			return res, fmt.Errorf("turn %d: %w", len(res.Turns)+1, err)
		}

		record := TurnRecord{Turn: len(res.Turns) + 1, PlayerID: playerID, Move: move}
		if next.PendingCard != nil {
			record.Card = next.PendingCard.Card
		} else if cur.PendingCard != nil {
			record.Card = cur.PendingCard.Card
		}
		res.Turns = append(res.Turns, record)
		res.Final = next

		log.WithFields(logrus.Fields{
			"move": move.Type,
			"card": record.Card.Code,
		}).Debug("Applied move")
	}

	res.Scores = r.engine.ScoreBoards(res.Final.Boards)
	r.logger.WithFields(logrus.Fields{
		"winner": res.Final.WinnerPlayerID,
		"turns":  len(res.Turns),
	}).Info("Game finished")
	return res, nil
}
