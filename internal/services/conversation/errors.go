package conversation

import "errors"

var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilPlayerRepo  = errors.New("player repository cannot be nil")
	ErrNilDialogRepo  = errors.New("dialog repository cannot be nil")
	ErrNilGameService = errors.New("game service cannot be nil")
	ErrNilClock       = errors.New("clock cannot be nil")
)
