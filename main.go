package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	app "github.com/rocketscienceinc/gridgames/internal"
	"github.com/rocketscienceinc/gridgames/internal/config"
	"github.com/rocketscienceinc/gridgames/internal/entity"
	"github.com/urfave/cli/v3"
)

const defaultConfigFile = "config.yml"

// main - is the entry point of the application. It loads .env, then runs the chosen command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "gridgames",
		Usage: "play grid-line games and reversi against the computer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: defaultConfigFile,
				Usage: "config file, looked up in the XDG config dirs when missing",
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP ping server and the websocket game server",
				Action: serve,
			},
			{
				Name:  "play",
				Usage: "play one game in the terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Value: string(entity.KindGridLine), Usage: "gridline or reversi"},
					&cli.IntFlag{Name: "size", Usage: "board size of a grid-line game"},
					&cli.IntFlag{Name: "run-length", Usage: "marks in a row needed to win"},
					&cli.StringFlag{Name: "difficulty", Usage: "easy, medium or hard"},
					&cli.StringFlag{Name: "mark", Usage: "your mark: X or O, green or white"},
				},
				Action: play,
			},
		},
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	conf := initConfig(cmd.String("config"))
	logger := initLogger(conf)

	if err := app.RunApp(ctx, logger, conf); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

func play(ctx context.Context, cmd *cli.Command) error {
	conf := initConfig(cmd.String("config"))
	if conf.LogLevel != "debug" {
		conf.LogLevel = "warn"
	}
	logger := initLogger(conf)

	opts := entity.GameOptions{
		Kind:       entity.Kind(cmd.String("kind")),
		Size:       cmd.Int("size"),
		RunLength:  cmd.Int("run-length"),
		Difficulty: entity.Difficulty(cmd.String("difficulty")),
		HumanMark:  entity.Mark(cmd.String("mark")),
	}

	if err := app.RunTerminal(ctx, logger, conf, opts, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("play failed: %w", err)
	}

	return nil
}

// initialize config.
func initConfig(name string) *config.Config {
	return config.MustLoad(config.ResolvePath(name))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
