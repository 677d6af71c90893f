package models

import (
	"time"
)

// GameSession represents one round of the guessing game
type GameSession struct {
	// ID is the unique identifier for this session
	ID string

	// PlayerID is the player this session belongs to
	PlayerID int64

	// Secret is the number the player is trying to guess, fixed for the session
	Secret int

	// Attempts counts validated guesses only
	Attempts int

	// StartedAt is when the session was created
	StartedAt time.Time
}
