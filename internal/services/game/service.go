package game

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/kavdeev/skorovanka/internal/models"
)

const (
	defaultMaxSecret         = 1000
	defaultHintXPThreshold   = 1000
	defaultHintEveryAttempts = 3

	// maxXPAward is the score for a first-guess win before decay
	maxXPAward = 100
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SecretGenerator == nil {
		return nil, ErrNilSecretGenerator
	}

	if cfg.HintGenerator == nil {
		return nil, ErrNilHintGenerator
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.MaxSecret == 0 {
		cfg.MaxSecret = defaultMaxSecret
	}

	if cfg.HintXPThreshold == 0 {
		cfg.HintXPThreshold = defaultHintXPThreshold
	}

	if cfg.HintEveryAttempts == 0 {
		cfg.HintEveryAttempts = defaultHintEveryAttempts
	}

	return &service{
		config: cfg,
	}, nil
}

// StartSession begins a new round with a fresh random secret and zero attempts
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session := &models.GameSession{
		ID:        s.config.UUIDGenerator.NewUUID(),
		PlayerID:  input.PlayerID,
		Secret:    s.config.SecretGenerator.Draw(s.config.MaxSecret),
		Attempts:  0,
		StartedAt: s.config.Clock.Now(),
	}

	out := &StartSessionOutput{
		Session: session,
	}

	if input.WithHint {
		out.Hint = s.config.HintGenerator.ForSecret(session.Secret)
	}

	return out, nil
}

// EvaluateGuess parses and checks a raw guess against the session's secret.
// Invalid or out-of-range input fails without touching the session; a
// validated guess is the only thing that advances the attempt counter.
func (s *service) EvaluateGuess(ctx context.Context, input *EvaluateGuessInput) (*EvaluateGuessOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Session == nil {
		return nil, ErrNilSession
	}

	guess, err := strconv.Atoi(strings.TrimSpace(input.Text))
	if err != nil {
		return nil, ErrInvalidGuess
	}

	if guess < 1 || guess > s.config.MaxSecret {
		return nil, ErrGuessOutOfRange
	}

	session := input.Session
	session.Attempts++

	out := &EvaluateGuessOutput{
		Attempts: session.Attempts,
	}

	switch {
	case guess == session.Secret:
		out.Result = ResultWin
		out.XPAwarded = Score(session.Attempts)
	case guess < session.Secret:
		out.Result = ResultTooLow
	default:
		out.Result = ResultTooHigh
	}

	if out.Result != ResultWin && s.hintDue(input.PlayerXP, session.Attempts) {
		out.Hint = s.config.HintGenerator.ForSecret(session.Secret)
	}

	return out, nil
}

// hintDue rate-limits the in-game assist to low-progress players
func (s *service) hintDue(playerXP, attempts int) bool {
	return playerXP < s.config.HintXPThreshold && attempts%s.config.HintEveryAttempts == 0
}

// Score converts an attempt count into the XP award for a win. The award
// decays logarithmically with attempts and never drops below 1.
func Score(attempts int) int {
	xp := int(float64(maxXPAward) / math.Log(float64(attempts)+1))
	if xp < 1 {
		return 1
	}
	return xp
}
