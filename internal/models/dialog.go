package models

import (
	"time"
)

// Dialog is the pending conversation record for one player. The game session
// lives inside the dialog so that state and session always change together.
type Dialog struct {
	// PlayerID is the Telegram user ID this dialog belongs to
	PlayerID int64

	// State is the current conversation state
	State ConversationState

	// Session is the active game session, nil outside of StateInGame
	Session *GameSession

	// UpdatedAt is when the dialog last changed
	UpdatedAt time.Time
}
