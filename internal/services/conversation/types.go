package conversation

import (
	"github.com/kavdeev/skorovanka/internal/common/clock"
	"github.com/kavdeev/skorovanka/internal/repositories/dialog"
	"github.com/kavdeev/skorovanka/internal/repositories/player"
	"github.com/kavdeev/skorovanka/internal/services/game"
)

// Config holds configuration for the conversation service
type Config struct {
	// PlayerRepo persists player stats
	PlayerRepo player.Repository

	// DialogRepo persists per-player conversation state
	DialogRepo dialog.Repository

	// GameService owns the secret number lifecycle and guess evaluation
	GameService game.Service

	// Clock supplies dialog timestamps
	Clock clock.Clock
}

// HandleMessageInput contains one inbound message
type HandleMessageInput struct {
	// PlayerID is the Telegram user ID of the sender
	PlayerID int64

	// Text is the raw message text
	Text string
}

// HandleMessageOutput contains the replies for one inbound message
type HandleMessageOutput struct {
	// Replies are sent in order, each as its own message
	Replies []string

	// ShowMenu asks the transport to attach the main menu keyboard
	ShowMenu bool
}
