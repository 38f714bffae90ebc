package errors

import "errors"

// Contract violations. The core panics with one of these wrapped, boundary layers
// return them as plain errors.
var (
	ErrIndexOutOfRange = errors.New("index must be between 0 and 63")
	ErrIndexOrder      = errors.New("first index must not be greater than second index")
	ErrInvalidSquare   = errors.New("pieces must form a square")
	ErrUnknownPlayer   = errors.New("player is unknown at the game board")
	ErrSamePlayer      = errors.New("both players must be different")
	ErrNilCollaborator = errors.New("required collaborator is nil")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrCellOccupied    = errors.New("cell is not empty")
	ErrGameNotStarted  = errors.New("game is not started")
	ErrGameOver        = errors.New("game is over")
	ErrPlayerNotActive = errors.New("player is not active")
	ErrNotHumanTurn    = errors.New("active player is not controlled by a human")
	ErrNoEmptyCell     = errors.New("no empty cell left on the board")
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrUnknownKind     = errors.New("unknown player kind")
	ErrPublishFailed   = errors.New("publish event failed")
	ErrInternal        = errors.New("internal error")
)
