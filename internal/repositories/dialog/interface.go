package dialog

import (
	"context"

	"github.com/kavdeev/skorovanka/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kavdeev/skorovanka/internal/repositories/dialog Repository

// Repository defines the interface for conversation state persistence.
// One dialog record per player, keyed by the Telegram user ID, holding the
// current state and the in-flight game session together.
type Repository interface {
	// GetDialog retrieves the dialog for a player
	GetDialog(ctx context.Context, input *GetDialogInput) (*models.Dialog, error)

	// SaveDialog persists a dialog, overwriting any previous record
	SaveDialog(ctx context.Context, input *SaveDialogInput) error

	// DeleteDialog removes the dialog for a player
	DeleteDialog(ctx context.Context, input *DeleteDialogInput) error
}
