package player

import (
	"context"

	"github.com/kavdeev/skorovanka/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kavdeev/skorovanka/internal/repositories/player Repository

// Repository defines the interface for player data persistence.
// Every operation is atomic with respect to a single player record.
type Repository interface {
	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// CreatePlayer registers a new player. It fails with ErrPlayerExists if a
	// record for the ID already exists, nicknames are immutable after that.
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*models.Player, error)

	// IncrementStats adds the given deltas to a player's wins and XP counters
	IncrementStats(ctx context.Context, input *IncrementStatsInput) error

	// MarkTrainingCompleted flips the training flag, idempotent and one-way
	MarkTrainingCompleted(ctx context.Context, input *MarkTrainingCompletedInput) error

	// TopPlayer returns the player with the most wins, ties broken by XP.
	// The output carries a nil player when nobody is registered yet.
	TopPlayer(ctx context.Context) (*TopPlayerOutput, error)
}
