package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/gridgames/internal/entity"
	"github.com/rocketscienceinc/gridgames/internal/gridline"
	"github.com/rocketscienceinc/gridgames/internal/reversi"
	"golang.org/x/exp/rand"
)

var ErrUnknownGameKind = errors.New("unknown game kind")

type BotService interface {
	ChooseMove(game *entity.Game) (int, error)
}

type botService struct {
	logger   *slog.Logger
	profiles gridline.Profiles
	rnd      *rand.Rand
}

// NewBotService returns the AI player of one session. rnd feeds the random fallback of
// larger grid-line boards and must not be shared between goroutines.
func NewBotService(logger *slog.Logger, profiles gridline.Profiles, rnd *rand.Rand) BotService {
	return &botService{
		logger:   logger,
		profiles: profiles,
		rnd:      rnd,
	}
}

// ChooseMove picks the AI cell for the current position without changing the game.
func (that *botService) ChooseMove(game *entity.Game) (int, error) {
	log := that.logger.With("method", "ChooseMove", "gameID", game.ID, "kind", game.Kind)
	started := time.Now()

	var (
		cell int
		err  error
	)

	switch game.Kind {
	case entity.KindGridLine:
		cell, err = that.chooseGridLine(game)
	case entity.KindReversi:
		cell, err = reversi.BestMove(game.Board, game.AIMark)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGameKind, game.Kind)
	}

	if err != nil {
		return 0, fmt.Errorf("bot failed to choose a move: %w", err)
	}

	log.Debug("bot chose a move", "cell", cell, "elapsed", time.Since(started))

	return cell, nil
}

func (that *botService) chooseGridLine(game *entity.Game) (int, error) {
	engine, err := gridline.NewEngine(game.Size(), game.RunLength)
	if err != nil {
		return 0, err
	}

	config := that.profiles.SearchConfig(game.Size(), game.Difficulty)

	return engine.BestMove(game.Board, game.AIMark, config, that.rnd)
}
