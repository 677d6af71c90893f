package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/kavdeev/skorovanka/internal/common/clock/mocks"
	uuidMocks "github.com/kavdeev/skorovanka/internal/common/uuid/mocks"
	"github.com/kavdeev/skorovanka/internal/hints"
	"github.com/kavdeev/skorovanka/internal/models"
	secretMocks "github.com/kavdeev/skorovanka/internal/secret/mocks"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSecret *secretMocks.MockGenerator
	mockUUID   *uuidMocks.MockUUID
	mockClock  *clockMocks.MockClock
	service    Service
	ctx        context.Context

	testTime      time.Time
	testPlayerID  int64
	testSessionID string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSecret = secretMocks.NewMockGenerator(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testPlayerID = 1001
	s.testSessionID = "test-session-id"

	svc, err := New(&Config{
		SecretGenerator: s.mockSecret,
		HintGenerator:   hints.New(&hints.Config{Seed: 1}),
		UUIDGenerator:   s.mockUUID,
		Clock:           s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) session(secret, attempts int) *models.GameSession {
	return &models.GameSession{
		ID:        s.testSessionID,
		PlayerID:  s.testPlayerID,
		Secret:    secret,
		Attempts:  attempts,
		StartedAt: s.testTime,
	}
}

func (s *GameServiceTestSuite) TestNewRequiresDependencies() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.Require().ErrorIs(err, ErrNilSecretGenerator)
}

func (s *GameServiceTestSuite) TestStartSession() {
	s.mockSecret.EXPECT().Draw(1000).Return(737)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	out, err := s.service.StartSession(s.ctx, &StartSessionInput{
		PlayerID: s.testPlayerID,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Session)

	s.Equal(s.testSessionID, out.Session.ID)
	s.Equal(s.testPlayerID, out.Session.PlayerID)
	s.Equal(737, out.Session.Secret)
	s.Equal(0, out.Session.Attempts)
	s.Equal(s.testTime, out.Session.StartedAt)
	s.Empty(out.Hint)
}

func (s *GameServiceTestSuite) TestStartSessionWithHint() {
	s.mockSecret.EXPECT().Draw(1000).Return(737)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	out, err := s.service.StartSession(s.ctx, &StartSessionInput{
		PlayerID: s.testPlayerID,
		WithHint: true,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Hint)
	s.Contains(hints.Candidates(737), out.Hint)
}

func (s *GameServiceTestSuite) TestNilInputRejected() {
	_, err := s.service.StartSession(s.ctx, nil)
	s.Require().ErrorIs(err, ErrNilInput)

	_, err = s.service.EvaluateGuess(s.ctx, nil)
	s.Require().ErrorIs(err, ErrNilInput)

	_, err = s.service.EvaluateGuess(s.ctx, &EvaluateGuessInput{Text: "500"})
	s.Require().ErrorIs(err, ErrNilSession)
}

func (s *GameServiceTestSuite) TestEvaluateGuessInvalidInput() {
	session := s.session(500, 0)

	_, err := s.service.EvaluateGuess(s.ctx, &EvaluateGuessInput{
		Session: session,
		Text:    "abc",
	})
	s.Require().ErrorIs(err, ErrInvalidGuess)
	s.Equal(0, session.Attempts)
}

func (s *GameServiceTestSuite) TestEvaluateGuessOutOfRange() {
	session := s.session(500, 0)

	for _, text := range []string{"0", "1001", "-5"} {
		_, err := s.service.EvaluateGuess(s.ctx, &EvaluateGuessInput{
			Session: session,
			Text:    text,
		})
		s.Require().ErrorIs(err, ErrGuessOutOfRange, "guess %q", text)
	}
	s.Equal(0, session.Attempts)
}

func (s *GameServiceTestSuite) TestEvaluateGuessTooLow() {
	session := s.session(500, 0)

	out, err := s.service.EvaluateGuess(s.ctx, &EvaluateGuessInput{
		Session:  session,
		Text:     "250",
		PlayerXP: 0,
	})
	s.Require().NoError(err)

	s.Equal(ResultTooLow, out.Result)
	s.Equal(1, out.Attempts)
	s.Equal(1, session.Attempts)
	s.Zero(out.XPAwarded)
	s.Empty(out.Hint)
}

func (s *GameServiceTestSuite) TestEvaluateGuessTooHigh() {
	session := s.session(500, 0)

	out, err := s.service.EvaluateGuess(s.ctx, &EvaluateGuessInput{
		Session:  session,
		Text:     "750",
		PlayerXP: 0,
	})
	s.Require().NoError(err)

	s.Equal(ResultTooHigh, out.Result)
	s.Equal(1, out.Attempts)
}

func (s *GameServiceTestSuite) TestEvaluateGuessTrimsWhitespace() {
	session := s.session(500, 0)

	out, err := s.service.EvaluateGuess(s.ctx, &EvaluateGuessInput{
		Session: session,
		Text:    "  500  ",
	})
	s.Require().NoError(err)
	s.Equal(ResultWin, out.Result)
}

func (s *GameServiceTestSuite) TestEvaluateGuessWin() {
	session := s.session(500, 2)

	out, err := s.service.EvaluateGuess(s.ctx, &EvaluateGuessInput{
		Session:  session,
		Text:     "500",
		PlayerXP: 0,
	})
	s.Require().NoError(err)

	s.Equal(ResultWin, out.Result)
	s.Equal(3, out.Attempts)
	s.Equal(Score(3), out.XPAwarded)
	// A win never carries an assist, even on a hint attempt
	s.Empty(out.Hint)
}

func (s *GameServiceTestSuite) TestEvaluateGuessHintForLowXPPlayer() {
	session := s.session(500, 2)

	// Third validated attempt, player below the XP threshold
	out, err := s.service.EvaluateGuess(s.ctx, &EvaluateGuessInput{
		Session:  session,
		Text:     "100",
		PlayerXP: 999,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Hint)
	s.Contains(hints.Candidates(500), out.Hint)
}

func (s *GameServiceTestSuite) TestEvaluateGuessNoHintForSeasonedPlayer() {
	session := s.session(500, 2)

	out, err := s.service.EvaluateGuess(s.ctx, &EvaluateGuessInput{
		Session:  session,
		Text:     "100",
		PlayerXP: 1000,
	})
	s.Require().NoError(err)
	s.Empty(out.Hint)
}

func (s *GameServiceTestSuite) TestEvaluateGuessNoHintOffCadence() {
	session := s.session(500, 0)

	for _, text := range []string{"100", "200"} {
		out, err := s.service.EvaluateGuess(s.ctx, &EvaluateGuessInput{
			Session:  session,
			Text:     text,
			PlayerXP: 0,
		})
		s.Require().NoError(err)
		s.Empty(out.Hint, "attempt %d", session.Attempts)
	}
}

func TestScoreFirstAttempt(t *testing.T) {
	// 100 / ln(2), floored
	if got := Score(1); got != 144 {
		t.Fatalf("Score(1) = %d, want 144", got)
	}
}

func TestScoreMonotone(t *testing.T) {
	prev := Score(1)
	for attempts := 2; attempts <= 1000; attempts++ {
		cur := Score(attempts)
		if cur > prev {
			t.Fatalf("Score(%d) = %d exceeds Score(%d) = %d", attempts, cur, attempts-1, prev)
		}
		if cur < 1 {
			t.Fatalf("Score(%d) = %d, want >= 1", attempts, cur)
		}
		prev = cur
	}
}

func TestScoreNeverBelowOne(t *testing.T) {
	for _, attempts := range []int{1, 10, 1000, 1 << 30, 1 << 62} {
		if got := Score(attempts); got < 1 {
			t.Fatalf("Score(%d) = %d, want >= 1", attempts, got)
		}
	}
}
