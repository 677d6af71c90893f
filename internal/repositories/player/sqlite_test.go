package player

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	db      *sql.DB
	repo    Repository
	testNow time.Time
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	db, err := sql.Open("sqlite3", ":memory:")
	s.Require().NoError(err)
	s.db = db

	repo, err := NewSQLite(&SQLiteConfig{
		DB: db,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) TestCreateAndGetPlayer() {
	_, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		PlayerID:  1001,
		Nickname:  "Alex",
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)

	p, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: 1001,
	})
	s.Require().NoError(err)

	s.Equal(int64(1001), p.ID)
	s.Equal("Alex", p.Nickname)
	s.Equal(0, p.Wins)
	s.Equal(0, p.XP)
	s.False(p.CompletedTraining)
	s.Equal(s.testNow.Unix(), p.CreatedAt.Unix())
}

func (s *SQLiteRepositoryTestSuite) TestGetPlayerNotFound() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: 404,
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestCreatePlayerDuplicateRejected() {
	_, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		PlayerID:  1001,
		Nickname:  "Alex",
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)

	_, err = s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		PlayerID:  1001,
		Nickname:  "Mallory",
		CreatedAt: s.testNow,
	})
	s.Require().ErrorIs(err, ErrPlayerExists)

	p, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: 1001,
	})
	s.Require().NoError(err)
	s.Equal("Alex", p.Nickname)
}

func (s *SQLiteRepositoryTestSuite) TestIncrementStatsAccumulates() {
	_, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		PlayerID:  1001,
		Nickname:  "Alex",
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)

	for i := 0; i < 2; i++ {
		err = s.repo.IncrementStats(context.Background(), &IncrementStatsInput{
			PlayerID:  1001,
			WinsDelta: 1,
			XPDelta:   10,
		})
		s.Require().NoError(err)
	}

	p, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: 1001,
	})
	s.Require().NoError(err)
	s.Equal(2, p.Wins)
	s.Equal(20, p.XP)
}

func (s *SQLiteRepositoryTestSuite) TestIncrementStatsUnknownPlayer() {
	err := s.repo.IncrementStats(context.Background(), &IncrementStatsInput{
		PlayerID:  404,
		WinsDelta: 1,
		XPDelta:   10,
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestMarkTrainingCompletedIdempotent() {
	_, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		PlayerID:  1001,
		Nickname:  "Alex",
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)

	for i := 0; i < 2; i++ {
		err = s.repo.MarkTrainingCompleted(context.Background(), &MarkTrainingCompletedInput{
			PlayerID: 1001,
		})
		s.Require().NoError(err)
	}

	p, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: 1001,
	})
	s.Require().NoError(err)
	s.True(p.CompletedTraining)
}

func (s *SQLiteRepositoryTestSuite) TestTopPlayerEmpty() {
	out, err := s.repo.TopPlayer(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Nil(out.Player)
}

func (s *SQLiteRepositoryTestSuite) TestTopPlayerOrdering() {
	seed := []struct {
		id   int64
		nick string
		wins int
		xp   int
	}{
		{1, "low", 1, 500},
		{2, "high", 5, 10},
		{3, "tied", 5, 40},
	}

	for _, p := range seed {
		_, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
			PlayerID:  p.id,
			Nickname:  p.nick,
			CreatedAt: s.testNow,
		})
		s.Require().NoError(err)

		err = s.repo.IncrementStats(context.Background(), &IncrementStatsInput{
			PlayerID:  p.id,
			WinsDelta: p.wins,
			XPDelta:   p.xp,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.TopPlayer(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(out.Player)
	s.Equal("tied", out.Player.Nickname)
}
