package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/gridgames/internal/config"
	"github.com/rocketscienceinc/gridgames/internal/entity"
	"github.com/rocketscienceinc/gridgames/internal/gridline"
	"github.com/rocketscienceinc/gridgames/internal/service"
	"github.com/rocketscienceinc/gridgames/internal/usecase"
	"github.com/rocketscienceinc/gridgames/transport/rest"
	"github.com/rocketscienceinc/gridgames/transport/terminal"
	"github.com/rocketscienceinc/gridgames/transport/websocket"
	"golang.org/x/exp/rand"
)

var ErrInvalidConfig = errors.New("invalid config")

// RunApp - runs the HTTP and WebSocket servers until a signal arrives or one of them fails.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	sessions, err := NewSessionFactory(logger, conf)
	if err != nil {
		return err
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, logger, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, func() websocket.Session {
			return sessions()
		})
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// RunTerminal plays one game on in and out.
func RunTerminal(ctx context.Context, logger *slog.Logger, conf *config.Config, opts entity.GameOptions, in io.Reader, out io.Writer) error {
	ctx, cancel := withSignals(ctx, logger.With("component", "terminal"))
	defer cancel()

	sessions, err := NewSessionFactory(logger, conf)
	if err != nil {
		return err
	}

	if err = terminal.New(logger, sessions(), in, out).Run(ctx, opts); err != nil {
		return fmt.Errorf("terminal game failed: %w", err)
	}

	return nil
}

// NewSessionFactory validates the grid-line settings once and returns a constructor for
// independent sessions, each with its own random source.
func NewSessionFactory(logger *slog.Logger, conf *config.Config) (func() *usecase.GameManager, error) {
	difficulty := entity.Difficulty(conf.GridLine.DefaultDifficulty)
	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: default difficulty %q", ErrInvalidConfig, conf.GridLine.DefaultDifficulty)
	}

	if conf.GridLine.DefaultSize != 0 && conf.GridLine.DefaultSize < entity.MinGridSize {
		return nil, fmt.Errorf("%w: default size %d", ErrInvalidConfig, conf.GridLine.DefaultSize)
	}

	profiles := searchProfiles(conf.GridLine.Profiles)
	seed := conf.GridLine.RandomSeed

	return func() *usecase.GameManager {
		rnd := rand.New(rand.NewSource(sessionSeed(seed)))
		bot := service.NewBotService(logger, profiles, rnd)

		return usecase.NewGameManager(logger, bot, difficulty, usecase.WithDefaultSize(conf.GridLine.DefaultSize))
	}, nil
}

// searchProfiles converts the configured table, or falls back to the built-in one when it is empty.
func searchProfiles(configured []config.SearchProfile) gridline.Profiles {
	if len(configured) == 0 {
		return gridline.DefaultProfiles()
	}

	profiles := make(gridline.Profiles, 0, len(configured))
	for _, profile := range configured {
		profiles = append(profiles, gridline.Profile{
			Size:                  profile.Size,
			Easy:                  profile.Easy,
			Medium:                profile.Medium,
			Hard:                  profile.Hard,
			RandomMoveProbability: profile.RandomMoveProbability,
		})
	}

	return profiles
}

// sessionSeed keeps a configured seed for reproducible games and uses the clock otherwise.
func sessionSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}

	return uint64(time.Now().UnixNano())
}

func withSignals(ctx context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
