package game

import "errors"

var (
	// ErrInvalidGuess is returned when the guess text is not an integer.
	// The session is left untouched.
	ErrInvalidGuess = errors.New("guess is not an integer")

	// ErrGuessOutOfRange is returned when the guess is outside the guessing
	// range. The session is left untouched.
	ErrGuessOutOfRange = errors.New("guess is out of range")

	ErrNilInput           = errors.New("input cannot be nil")
	ErrNilConfig          = errors.New("config cannot be nil")
	ErrNilSecretGenerator = errors.New("secret generator cannot be nil")
	ErrNilHintGenerator   = errors.New("hint generator cannot be nil")
	ErrNilUUIDGenerator   = errors.New("UUID generator cannot be nil")
	ErrNilClock           = errors.New("clock cannot be nil")
	ErrNilSession         = errors.New("session cannot be nil")
)
