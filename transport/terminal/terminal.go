// Package terminal plays one game session over a line based text interface.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

const helpText = `commands:
  new [gridline|reversi] [size] [run] [easy|medium|hard]   start a new game
  move <cell> | move <row> <col>                           place your mark
  pass                                                     pass when you cannot flip (reversi)
  show                                                     print the board
  help                                                     print this help
  quit                                                     leave
`

var (
	errUsage          = errors.New("usage")
	errUnknownCommand = errors.New("unknown command")
)

type Session interface {
	NewGame(opts entity.GameOptions) (*entity.State, error)
	SubmitMove(cell int, mark entity.Mark) (*entity.State, error)
	RequestAIMove(aiMark entity.Mark) (*entity.State, error)
	Pass(mark entity.Mark) (*entity.State, error)
	State() (*entity.State, error)
}

type Terminal struct {
	logger  *slog.Logger
	session Session

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, session Session, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		logger:  logger,
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run starts a game with opts and reads commands until quit, end of input or ctx is done.
func (that *Terminal) Run(ctx context.Context, opts entity.GameOptions) error {
	log := that.logger.With("method", "Run")

	if err := that.newGame(opts); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.print("type help for the list of commands\n> ")

	for that.in.Scan() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("terminal stopped: %w", err)
		}

		fields := strings.Fields(that.in.Text())
		if len(fields) > 0 {
			if fields[0] == "quit" || fields[0] == "exit" {
				that.print("bye\n")
				return nil
			}

			if err := that.execute(fields[0], fields[1:]); err != nil {
				log.Debug("command failed", "command", fields[0], "error", err)
				that.print("error: %v\n", err)
			}
		}

		that.print("> ")
	}

	if err := that.in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *Terminal) execute(command string, args []string) error {
	switch command {
	case "new":
		opts, err := parseOptions(args)
		if err != nil {
			return err
		}
		return that.newGame(opts)
	case "move", "m":
		return that.move(args)
	case "pass":
		return that.pass()
	case "show":
		return that.show()
	case "help", "?":
		that.print(helpText)
		return nil
	default:
		return fmt.Errorf("%w %q, type help", errUnknownCommand, command)
	}
}

func (that *Terminal) newGame(opts entity.GameOptions) error {
	state, err := that.session.NewGame(opts)
	if err != nil {
		return err
	}

	that.print("new %s game %dx%d", state.Kind, state.Size, state.Size)
	if state.Kind == entity.KindGridLine {
		that.print(", %d in a row, %s", state.RunLength, state.Difficulty)
	}
	that.print(", you play %s\n", state.HumanMark)

	render(that.out, state)

	return that.playAI(state)
}

func (that *Terminal) move(args []string) error {
	current, err := that.session.State()
	if err != nil {
		return err
	}

	cell, err := parseCell(args, current.Size)
	if err != nil {
		return err
	}

	state, err := that.session.SubmitMove(cell, current.HumanMark)
	if err != nil {
		return err
	}

	render(that.out, state)

	return that.playAI(state)
}

func (that *Terminal) pass() error {
	current, err := that.session.State()
	if err != nil {
		return err
	}

	state, err := that.session.Pass(current.HumanMark)
	if err != nil {
		return err
	}

	that.print("you pass\n")

	return that.playAI(state)
}

func (that *Terminal) show() error {
	state, err := that.session.State()
	if err != nil {
		return err
	}

	render(that.out, state)

	return nil
}

// playAI lets the AI answer when it is its turn and prints the result.
func (that *Terminal) playAI(state *entity.State) error {
	if state.Outcome.IsFinished() || state.Turn != state.AIMark {
		return nil
	}

	that.print("AI is thinking...\n")

	next, err := that.session.RequestAIMove(state.AIMark)
	if errors.Is(err, apperror.ErrNoLegalMove) && next != nil && next.Passed {
		that.print("AI passes\n")
		render(that.out, next)
		return nil
	}

	if err != nil {
		return fmt.Errorf("AI failed to move: %w", err)
	}

	that.print("AI plays %s\n", cellName(*next.LastMove, next.Size))
	render(that.out, next)

	return nil
}

func (that *Terminal) print(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

// parseOptions reads new game arguments in any order: a kind, a difficulty, then the size and run length as numbers.
func parseOptions(args []string) (entity.GameOptions, error) {
	var opts entity.GameOptions
	var numbers []int

	for _, arg := range args {
		switch {
		case entity.Kind(arg) == entity.KindGridLine || entity.Kind(arg) == entity.KindReversi:
			opts.Kind = entity.Kind(arg)
		case entity.Difficulty(arg).IsValid():
			opts.Difficulty = entity.Difficulty(arg)
		default:
			n, err := strconv.Atoi(arg)
			if err != nil {
				return entity.GameOptions{}, fmt.Errorf("%w: new [kind] [size] [run] [difficulty], got %q", errUsage, arg)
			}
			numbers = append(numbers, n)
		}
	}

	if len(numbers) > 2 {
		return entity.GameOptions{}, fmt.Errorf("%w: new takes at most a size and a run length", errUsage)
	}
	if len(numbers) > 0 {
		opts.Size = numbers[0]
	}
	if len(numbers) > 1 {
		opts.RunLength = numbers[1]
	}

	return opts, nil
}

// parseCell accepts a cell index or a row and column pair.
func parseCell(args []string, size int) (int, error) {
	switch len(args) {
	case 1:
		cell, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: move <cell>, got %q", errUsage, args[0])
		}
		return cell, nil
	case 2:
		row, rowErr := strconv.Atoi(args[0])
		col, colErr := strconv.Atoi(args[1])
		if rowErr != nil || colErr != nil {
			return 0, fmt.Errorf("%w: move <row> <col>, got %q", errUsage, strings.Join(args, " "))
		}
		if row < 0 || row >= size || col < 0 || col >= size {
			return 0, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
		}
		return row*size + col, nil
	default:
		return 0, fmt.Errorf("%w: move <cell> or move <row> <col>", errUsage)
	}
}
