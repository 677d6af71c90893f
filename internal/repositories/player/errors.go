package player

import "errors"

var (
	// ErrPlayerNotFound is returned when a player is not found
	ErrPlayerNotFound = errors.New("player not found")

	// ErrPlayerExists is returned when creating a player that is already registered
	ErrPlayerExists = errors.New("player already exists")

	// ErrNegativeDelta is returned when a stat increment would go backwards
	ErrNegativeDelta = errors.New("stat deltas cannot be negative")
)
