package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrCellOccupied     = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrInvalidCell      = fmt.Errorf("%w: invalid cell index", ErrIllegalMove)
	ErrNoLegalMove      = errors.New("no legal move")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidOptions   = errors.New("invalid game options")
	ErrMalformedBoard   = errors.New("malformed board")
)
