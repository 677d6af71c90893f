package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kavdeev/skorovanka/internal/models"
)

// sqliteSchema mirrors the Redis layout: one row per player keyed by the
// Telegram user ID
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS players (
	id                 INTEGER PRIMARY KEY,
	nickname           TEXT    NOT NULL,
	wins               INTEGER NOT NULL DEFAULT 0,
	xp                 INTEGER NOT NULL DEFAULT 0,
	completed_training INTEGER NOT NULL DEFAULT 0,
	created_at         TIMESTAMP NOT NULL
)`

// SQLiteConfig holds configuration for the SQLite player repository
type SQLiteConfig struct {
	// Open database handle, the repository does not own its lifecycle
	DB *sql.DB
}

// sqliteRepository implements the Repository interface on database/sql
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed player repository and ensures the
// players table exists
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	if _, err := cfg.DB.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create players table: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// GetPlayer retrieves a player by ID
func (r *sqliteRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, nickname, wins, xp, completed_training, created_at FROM players WHERE id = ?`,
		input.PlayerID)

	return scanPlayer(row)
}

// CreatePlayer registers a new player. The primary key makes duplicate
// registrations lose the race: INSERT OR IGNORE leaves zero rows affected
// when the record already exists.
func (r *sqliteRepository) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	if input.Nickname == "" {
		return nil, errors.New("nickname cannot be empty")
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO players (id, nickname, wins, xp, completed_training, created_at) VALUES (?, ?, 0, 0, 0, ?)`,
		input.PlayerID, input.Nickname, input.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	if affected == 0 {
		return nil, ErrPlayerExists
	}

	return &models.Player{
		ID:        input.PlayerID,
		Nickname:  input.Nickname,
		CreatedAt: input.CreatedAt,
	}, nil
}

// IncrementStats adds the deltas to the player's counters in a single UPDATE,
// so there is no read-modify-write window and no partial mutation
func (r *sqliteRepository) IncrementStats(ctx context.Context, input *IncrementStatsInput) error {
	if input == nil || input.PlayerID == 0 {
		return errors.New("input and player ID cannot be empty")
	}

	if input.WinsDelta < 0 || input.XPDelta < 0 {
		return ErrNegativeDelta
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE players SET wins = wins + ?, xp = xp + ? WHERE id = ?`,
		input.WinsDelta, input.XPDelta, input.PlayerID)
	if err != nil {
		return fmt.Errorf("failed to increment stats: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to increment stats: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// MarkTrainingCompleted flips the training flag to true
func (r *sqliteRepository) MarkTrainingCompleted(ctx context.Context, input *MarkTrainingCompletedInput) error {
	if input == nil || input.PlayerID == 0 {
		return errors.New("input and player ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE players SET completed_training = 1 WHERE id = ?`,
		input.PlayerID)
	if err != nil {
		return fmt.Errorf("failed to mark training completed: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark training completed: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// TopPlayer returns the player with the most wins, ties broken by XP
func (r *sqliteRepository) TopPlayer(ctx context.Context) (*TopPlayerOutput, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, nickname, wins, xp, completed_training, created_at FROM players ORDER BY wins DESC, xp DESC LIMIT 1`)

	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			return &TopPlayerOutput{}, nil
		}
		return nil, err
	}

	return &TopPlayerOutput{Player: p}, nil
}

func scanPlayer(row *sql.Row) (*models.Player, error) {
	var p models.Player
	var completed int

	err := row.Scan(&p.ID, &p.Nickname, &p.Wins, &p.XP, &completed, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}

	p.CompletedTraining = completed == 1
	return &p, nil
}
