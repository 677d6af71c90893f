package models

import (
	"time"
)

// Player represents a registered participant
type Player struct {
	// ID is the Telegram user ID of the player
	ID int64

	// Nickname is the display name chosen at registration, immutable afterwards
	Nickname string

	// Wins is the cumulative number of solved rounds
	Wins int

	// XP is the cumulative experience awarded for solved rounds
	XP int

	// CompletedTraining records whether the player has been through the tutorial prompt
	CompletedTraining bool

	// CreatedAt is when the player registered
	CreatedAt time.Time
}
