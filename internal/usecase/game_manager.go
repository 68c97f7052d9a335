package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

type bot interface {
	ChooseMove(game *entity.Game) (int, error)
}

// GameManager is one single-player session against the AI. It holds at most one game
// and must be used by one goroutine at a time.
type GameManager struct {
	logger *slog.Logger
	bot    bot

	defaultDifficulty entity.Difficulty
	defaultSize       int

	game  *entity.Game
	rules rules
}

type Option func(*GameManager)

// WithDefaultSize sets the grid-line board size used when a new game asks for none.
func WithDefaultSize(size int) Option {
	return func(that *GameManager) {
		that.defaultSize = size
	}
}

func NewGameManager(logger *slog.Logger, bot bot, defaultDifficulty entity.Difficulty, options ...Option) *GameManager {
	manager := &GameManager{
		logger: logger,
		bot:    bot,

		defaultDifficulty: defaultDifficulty,
	}

	for _, option := range options {
		option(manager)
	}

	return manager
}

// NewGame replaces the current game with a fresh one built from opts.
func (that *GameManager) NewGame(opts entity.GameOptions) (*entity.State, error) {
	log := that.logger.With("method", "NewGame")

	if opts.Kind != entity.KindReversi && opts.Size == 0 && that.defaultSize > 0 {
		opts.Size = that.defaultSize
	}

	opts, err := opts.Normalize(that.defaultDifficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize options: %w", err)
	}

	gameRules, err := rulesFor(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to set up rules: %w", err)
	}

	that.rules = gameRules
	that.game = entity.NewGame(uuid.NewString(), opts, gameRules.NewBoard())

	log.Info("game created", "gameID", that.game.ID, "kind", opts.Kind, "size", opts.Size,
		"runLength", opts.RunLength, "difficulty", opts.Difficulty, "humanMark", opts.HumanMark)

	return that.snapshot(), nil
}

// SubmitMove plays cell for mark when it is mark's turn.
func (that *GameManager) SubmitMove(cell int, mark entity.Mark) (*entity.State, error) {
	if err := that.checkTurn(mark); err != nil {
		return that.snapshotOrNil(), err
	}

	if err := that.play(entity.Move{Cell: cell, Mark: mark}); err != nil {
		return that.snapshot(), fmt.Errorf("failed make turn: %w", err)
	}

	return that.snapshot(), nil
}

// RequestAIMove lets the AI play aiMark. In reversi an AI without a flipping move passes:
// the turn goes back to the human and ErrNoLegalMove is returned with the new state.
func (that *GameManager) RequestAIMove(aiMark entity.Mark) (*entity.State, error) {
	log := that.logger.With("method", "RequestAIMove")

	if err := that.checkTurn(aiMark); err != nil {
		return that.snapshotOrNil(), err
	}

	if aiMark != that.game.AIMark {
		return that.snapshot(), fmt.Errorf("%w: %s is played by the human", apperror.ErrNotYourTurn, aiMark)
	}

	cell, err := that.bot.ChooseMove(that.game)
	if errors.Is(err, apperror.ErrNoLegalMove) && that.game.Kind == entity.KindReversi {
		that.game.RecordPass(aiMark)
		log.Info("AI passes", "gameID", that.game.ID, "mark", aiMark)

		return that.snapshot(), apperror.ErrNoLegalMove
	}

	if err != nil {
		return that.snapshot(), fmt.Errorf("failed to choose AI move: %w", err)
	}

	if err = that.play(entity.Move{Cell: cell, Mark: aiMark}); err != nil {
		return that.snapshot(), fmt.Errorf("failed to play AI move: %w", err)
	}

	return that.snapshot(), nil
}

// Pass gives the turn away. Only reversi knows passes, and only when mark cannot flip anything.
func (that *GameManager) Pass(mark entity.Mark) (*entity.State, error) {
	if err := that.checkTurn(mark); err != nil {
		return that.snapshotOrNil(), err
	}

	if that.game.Kind != entity.KindReversi {
		return that.snapshot(), fmt.Errorf("%w: passing is not allowed in %s", apperror.ErrIllegalMove, that.game.Kind)
	}

	if moves := that.rules.LegalMoves(that.game.Board, mark); len(moves) > 0 {
		return that.snapshot(), fmt.Errorf("%w: %s still has %d legal moves", apperror.ErrIllegalMove, mark, len(moves))
	}

	that.game.RecordPass(mark)
	that.logger.Info("player passes", "method", "Pass", "gameID", that.game.ID, "mark", mark)

	return that.snapshot(), nil
}

func (that *GameManager) State() (*entity.State, error) {
	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	return that.snapshot(), nil
}

// checkTurn rejects calls before a game exists, after it has ended and out of turn.
func (that *GameManager) checkTurn(mark entity.Mark) error {
	if that.game == nil {
		return apperror.ErrGameIsNotStarted
	}

	if that.rules.Classify(that.game.Board).IsFinished() {
		return apperror.ErrGameFinished
	}

	if mark != that.game.Turn {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.game.Turn)
	}

	return nil
}

func (that *GameManager) play(move entity.Move) error {
	log := that.logger.With("method", "play", "gameID", that.game.ID)

	flipped, err := that.rules.Apply(that.game.Board, move)
	if err != nil {
		return err
	}

	that.game.RecordMove(move, flipped)

	if outcome := that.rules.Classify(that.game.Board); outcome.IsFinished() {
		log.Info("game finished", "outcome", outcome.String())
	}

	return nil
}

func (that *GameManager) snapshotOrNil() *entity.State {
	if that.game == nil {
		return nil
	}

	return that.snapshot()
}

// snapshot recomputes the outcome and adds the kind specific extras.
func (that *GameManager) snapshot() *entity.State {
	state := that.game.Snapshot(that.rules.Classify(that.game.Board))
	state.Score = that.rules.Score(that.game.Board)

	if state.Turn != "" {
		state.LegalMoves = that.rules.LegalMoves(that.game.Board, state.Turn)
	}

	return state
}
