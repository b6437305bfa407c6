package apperror

import "errors"

var (
	ErrOutOfBounds   = errors.New("position is out of bounds")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrPoolExhausted = errors.New("no free icon left")
	ErrBoardFull     = errors.New("no empty cell left on board")
	ErrAgentNotFound = errors.New("agent not found")
	ErrWrongClass    = errors.New("operation not allowed for this agent class")
	ErrInvalidClass  = errors.New("unknown agent class")
	ErrEmptyName     = errors.New("agent name is empty")
)

var ErrIconMismatch = errors.New("icon does not belong to agent")
