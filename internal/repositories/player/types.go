package player

import (
	"time"

	"github.com/kavdeev/skorovanka/internal/models"
)

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID int64
}

// CreatePlayerInput contains parameters for registering a player
type CreatePlayerInput struct {
	PlayerID  int64
	Nickname  string
	CreatedAt time.Time
}

// IncrementStatsInput contains the stat deltas for a solved round.
// Deltas are additive and must not be negative.
type IncrementStatsInput struct {
	PlayerID  int64
	WinsDelta int
	XPDelta   int
}

// MarkTrainingCompletedInput contains parameters for completing training
type MarkTrainingCompletedInput struct {
	PlayerID int64
}

// TopPlayerOutput contains the result of a top player lookup
type TopPlayerOutput struct {
	// Player is nil when no players are registered
	Player *models.Player
}
