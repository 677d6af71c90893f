package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/kavdeev/skorovanka/internal/services/game Service

// Service defines the interface for game engine operations
type Service interface {
	// StartSession begins a new round with a fresh random secret
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// EvaluateGuess checks a raw guess against the session's secret
	EvaluateGuess(ctx context.Context, input *EvaluateGuessInput) (*EvaluateGuessOutput, error)
}
