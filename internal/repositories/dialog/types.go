package dialog

import "github.com/kavdeev/skorovanka/internal/models"

// GetDialogInput contains parameters for retrieving a dialog
type GetDialogInput struct {
	PlayerID int64
}

// SaveDialogInput contains parameters for saving a dialog
type SaveDialogInput struct {
	Dialog *models.Dialog
}

// DeleteDialogInput contains parameters for deleting a dialog
type DeleteDialogInput struct {
	PlayerID int64
}
