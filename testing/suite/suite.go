package suite

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/gridgames/internal/gridline"
	"github.com/rocketscienceinc/gridgames/internal/service"
	"golang.org/x/exp/rand"
)

const (
	maxWaitDuration = 30 * time.Second
	seed            = 42
)

type Suite struct {
	*testing.T
	Logger   *slog.Logger
	Rand     *rand.Rand
	Profiles gridline.Profiles
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Rand:     rand.New(rand.NewSource(seed)),
		Profiles: gridline.DefaultProfiles(),
	}
}

// Bot returns an AI player drawing from the suite's seeded random source.
func (that *Suite) Bot() service.BotService {
	return service.NewBotService(that.Logger, that.Profiles, that.Rand)
}

// Serve starts handler on a local test server that is closed with the test.
func (that *Suite) Serve(handler http.Handler) *httptest.Server {
	that.Helper()

	server := httptest.NewServer(handler)
	that.Cleanup(server.Close)

	return server
}

// Dial opens a websocket client connection to path on server.
func (that *Suite) Dial(ctx context.Context, server *httptest.Server, path string) *websocket.Conn {
	that.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + path

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		that.Fatalf("could not dial %s: %v", url, err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	that.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}
