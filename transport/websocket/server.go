package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	shutdownWait   = 5 * time.Second
)

// Session is the game a single connection plays.
type Session interface {
	NewGame(opts entity.GameOptions) (*entity.State, error)
	SubmitMove(cell int, mark entity.Mark) (*entity.State, error)
	RequestAIMove(aiMark entity.Mark) (*entity.State, error)
	Pass(mark entity.Mark) (*entity.State, error)
	State() (*entity.State, error)
}

// SessionFactory builds a fresh session for every new connection.
type SessionFactory func() Session

type handler func(ctx context.Context, c *client, payload *Payload) error

type client struct {
	conn    *websocket.Conn
	session Session
}

type Server struct {
	logger     *slog.Logger
	newSession SessionFactory
	upgrader   websocket.Upgrader

	handlers map[string]handler
}

func New(logger *slog.Logger, newSession SessionFactory) *Server {
	server := &Server{
		logger:     logger,
		newSession: newSession,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handler),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionTurn] = server.handleGameTurn
	server.handlers[actionPass] = server.handlePass
	server.handlers[actionState] = server.handleState

	return server
}

// Handler serves the websocket endpoint at /ws.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket and serves one session on it.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	c := &client{
		conn:    conn,
		session: that.newSession(),
	}

	if err = that.handleMessages(ctx, c); err != nil {
		log.Error("error handling messages", "error", err)
	}

	log.Info("WebSocket connection closed", "remote", conn.RemoteAddr().String())
}

// handleMessages - processes messages from the client until it goes away.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages")

	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, body, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return fmt.Errorf("failed to read message: %w", err)
			}
			return nil
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)

			if err = sendErrorResponse(c.conn, actionError, nil, errMalformedMessage); err != nil {
				return err
			}
			continue
		}

		if err = that.dispatch(ctx, c, &message); err != nil {
			return err
		}
	}
}

// dispatch runs the handler for the message action. Only write failures end the connection.
func (that *Server) dispatch(ctx context.Context, c *client, message *Message) error {
	log := that.logger.With("method", "dispatch", "action", message.Action)

	handle, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action")
		return sendErrorResponse(c.conn, message.Action, nil, fmt.Errorf("%w: %q", errUnknownAction, message.Action))
	}

	payload, err := decodePayload(message)
	if err != nil {
		log.Error("failed to decode payload", "error", err)
		return sendErrorResponse(c.conn, message.Action, nil, errMalformedMessage)
	}

	return handle(ctx, c, payload)
}
