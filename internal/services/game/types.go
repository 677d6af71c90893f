package game

import (
	"github.com/kavdeev/skorovanka/internal/common/clock"
	"github.com/kavdeev/skorovanka/internal/common/uuid"
	"github.com/kavdeev/skorovanka/internal/hints"
	"github.com/kavdeev/skorovanka/internal/models"
	"github.com/kavdeev/skorovanka/internal/secret"
)

// Config holds configuration for the game service
type Config struct {
	// SecretGenerator draws the secret number for new sessions
	SecretGenerator secret.Generator

	// HintGenerator produces the assist statements about the secret
	HintGenerator *hints.Generator

	// UUIDGenerator assigns session IDs
	UUIDGenerator uuid.UUID

	// Clock supplies session timestamps
	Clock clock.Clock

	// MaxSecret is the upper bound of the guessing range, defaults to 1000
	MaxSecret int

	// HintXPThreshold caps hints to players below this XP, defaults to 1000
	HintXPThreshold int

	// HintEveryAttempts spaces out in-game hints, defaults to every 3rd attempt
	HintEveryAttempts int
}

// GuessResult classifies the outcome of a validated guess
type GuessResult string

const (
	// ResultWin means the guess matched the secret
	ResultWin GuessResult = "win"

	// ResultTooLow means the guess was below the secret
	ResultTooLow GuessResult = "too_low"

	// ResultTooHigh means the guess was above the secret
	ResultTooHigh GuessResult = "too_high"
)

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	PlayerID int64

	// WithHint asks for an opening hint, used for the tutorial round
	WithHint bool
}

// StartSessionOutput contains the new session
type StartSessionOutput struct {
	Session *models.GameSession

	// Hint is set only when the input asked for one
	Hint string
}

// EvaluateGuessInput contains parameters for evaluating a guess
type EvaluateGuessInput struct {
	// Session is the player's active session, its attempt counter is advanced
	// in place on a validated guess
	Session *models.GameSession

	// Text is the raw message text to parse as a guess
	Text string

	// PlayerXP is the player's stored XP, used to gate assist hints
	PlayerXP int
}

// EvaluateGuessOutput contains the outcome of a validated guess
type EvaluateGuessOutput struct {
	Result GuessResult

	// Attempts is the session's attempt count after this guess
	Attempts int

	// XPAwarded is the score for the round, set only on ResultWin
	XPAwarded int

	// Hint carries the rate-limited assist, set only for low-XP players on
	// every configured attempt
	Hint string
}
