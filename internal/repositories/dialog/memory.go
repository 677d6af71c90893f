package dialog

import (
	"context"
	"errors"
	"sync"

	"github.com/kavdeev/skorovanka/internal/models"
)

// memoryRepository implements the Repository interface in process memory.
// Suitable for a single-instance deployment or tests; state does not survive
// a restart.
type memoryRepository struct {
	mu      sync.RWMutex
	dialogs map[int64]*models.Dialog
}

// NewMemory creates a new in-memory dialog repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		dialogs: make(map[int64]*models.Dialog),
	}
}

// GetDialog retrieves the dialog for a player
func (r *memoryRepository) GetDialog(ctx context.Context, input *GetDialogInput) (*models.Dialog, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.dialogs[input.PlayerID]
	if !ok {
		return nil, ErrDialogNotFound
	}

	copied := *d
	if d.Session != nil {
		session := *d.Session
		copied.Session = &session
	}
	return &copied, nil
}

// SaveDialog persists a dialog
func (r *memoryRepository) SaveDialog(ctx context.Context, input *SaveDialogInput) error {
	if input == nil || input.Dialog == nil {
		return errors.New("input and dialog cannot be nil")
	}

	if input.Dialog.PlayerID == 0 {
		return errors.New("dialog player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *input.Dialog
	if input.Dialog.Session != nil {
		session := *input.Dialog.Session
		copied.Session = &session
	}
	r.dialogs[input.Dialog.PlayerID] = &copied

	return nil
}

// DeleteDialog removes the dialog for a player
func (r *memoryRepository) DeleteDialog(ctx context.Context, input *DeleteDialogInput) error {
	if input == nil || input.PlayerID == 0 {
		return errors.New("input and player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.dialogs, input.PlayerID)
	return nil
}
