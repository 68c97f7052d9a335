package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

var (
	errUnknownAction    = errors.New("unknown action")
	errMalformedMessage = errors.New("malformed message")
	errCellRequired     = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, c *client, payload *Payload) error {
	log := that.logger.With("method", "handleNewGame")

	var opts entity.GameOptions
	if payload.Options != nil {
		opts = *payload.Options
	}

	state, err := c.session.NewGame(opts)
	if err != nil {
		log.Info("failed to create game", "error", err)
		return sendErrorResponse(c.conn, actionNewGame, nil, err)
	}

	if err = sendMessage(c.conn, actionNewGame, ResponsePayload{Game: state}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("game created", "gameID", state.ID)

	return that.playAI(ctx, c, state)
}

func (that *Server) handleGameTurn(ctx context.Context, c *client, payload *Payload) error {
	log := that.logger.With("method", "handleGameTurn")

	if payload.Cell == nil {
		log.Info("cell is missing in payload")
		return sendErrorResponse(c.conn, actionTurn, nil, errCellRequired)
	}

	current, err := c.session.State()
	if err != nil {
		return sendErrorResponse(c.conn, actionTurn, nil, err)
	}

	state, err := c.session.SubmitMove(*payload.Cell, current.HumanMark)
	if err != nil {
		log.Info("failed to make turn", "gameID", current.ID, "cell", *payload.Cell, "error", err)
		return sendErrorResponse(c.conn, actionTurn, state, err)
	}

	if err = sendMessage(c.conn, actionTurn, ResponsePayload{Game: state, Cell: payload.Cell}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return that.playAI(ctx, c, state)
}

func (that *Server) handlePass(ctx context.Context, c *client, _ *Payload) error {
	current, err := c.session.State()
	if err != nil {
		return sendErrorResponse(c.conn, actionPass, nil, err)
	}

	state, err := c.session.Pass(current.HumanMark)
	if err != nil {
		return sendErrorResponse(c.conn, actionPass, state, err)
	}

	if err = sendMessage(c.conn, actionPass, ResponsePayload{Game: state}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return that.playAI(ctx, c, state)
}

func (that *Server) handleState(_ context.Context, c *client, _ *Payload) error {
	state, err := c.session.State()
	if err != nil {
		return sendErrorResponse(c.conn, actionState, nil, err)
	}

	return sendMessage(c.conn, actionState, ResponsePayload{Game: state})
}

// playAI answers with the AI move when the AI is to move. A reversi AI without
// a legal move passes, which is reported as a game:ai message without a cell.
func (that *Server) playAI(ctx context.Context, c *client, state *entity.State) error {
	log := that.logger.With("method", "playAI", "gameID", state.ID)

	if state.Outcome.IsFinished() || state.Turn != state.AIMark {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("server is shutting down: %w", err)
	}

	if err := sendMessage(c.conn, actionThinking, ResponsePayload{Game: state}); err != nil {
		return fmt.Errorf("failed to send thinking event: %w", err)
	}

	next, err := c.session.RequestAIMove(state.AIMark)
	if errors.Is(err, apperror.ErrNoLegalMove) && next != nil && next.Passed {
		log.Info("AI passed")
		return sendMessage(c.conn, actionAIMove, ResponsePayload{Game: next})
	}

	if err != nil {
		log.Error("failed to make AI turn", "error", err)
		return sendErrorResponse(c.conn, actionAIMove, next, err)
	}

	return sendMessage(c.conn, actionAIMove, ResponsePayload{Game: next, Cell: next.LastMove})
}
