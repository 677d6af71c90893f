package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kavdeev/skorovanka/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "player:"
	playerIDsKey    = "players"

	fieldNickname          = "nickname"
	fieldWins              = "wins"
	fieldXP                = "xp"
	fieldCompletedTraining = "completed_training"
	fieldCreatedAt         = "created_at"
)

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
// Each player is a hash so that stat increments stay atomic.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	// HGetAll returns an empty map for a missing key
	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	return playerFromHash(input.PlayerID, fields)
}

// CreatePlayer registers a new player in Redis. HSetNX on the nickname field
// decides the winner when duplicate registrations race: the first writer
// creates the record, everyone else gets ErrPlayerExists.
func (r *redisRepository) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	if input.Nickname == "" {
		return nil, errors.New("nickname cannot be empty")
	}

	key := playerKey(input.PlayerID)

	created, err := r.client.HSetNX(ctx, key, fieldNickname, input.Nickname).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	if !created {
		return nil, ErrPlayerExists
	}

	pipe := r.client.Pipeline()
	pipe.HSetNX(ctx, key, fieldWins, 0)
	pipe.HSetNX(ctx, key, fieldXP, 0)
	pipe.HSetNX(ctx, key, fieldCompletedTraining, 0)
	pipe.HSetNX(ctx, key, fieldCreatedAt, input.CreatedAt.Unix())
	pipe.SAdd(ctx, playerIDsKey, input.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize player: %w", err)
	}

	return &models.Player{
		ID:        input.PlayerID,
		Nickname:  input.Nickname,
		CreatedAt: input.CreatedAt,
	}, nil
}

// IncrementStats adds the deltas to the player's counters using HIncrBy, so
// concurrent wins accumulate instead of overwriting each other
func (r *redisRepository) IncrementStats(ctx context.Context, input *IncrementStatsInput) error {
	if input == nil || input.PlayerID == 0 {
		return errors.New("input and player ID cannot be empty")
	}

	if input.WinsDelta < 0 || input.XPDelta < 0 {
		return ErrNegativeDelta
	}

	key := playerKey(input.PlayerID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check player: %w", err)
	}
	if exists == 0 {
		return ErrPlayerNotFound
	}

	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, key, fieldWins, int64(input.WinsDelta))
	pipe.HIncrBy(ctx, key, fieldXP, int64(input.XPDelta))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment stats: %w", err)
	}

	return nil
}

// MarkTrainingCompleted flips the training flag to true
func (r *redisRepository) MarkTrainingCompleted(ctx context.Context, input *MarkTrainingCompletedInput) error {
	if input == nil || input.PlayerID == 0 {
		return errors.New("input and player ID cannot be empty")
	}

	key := playerKey(input.PlayerID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check player: %w", err)
	}
	if exists == 0 {
		return ErrPlayerNotFound
	}

	if err := r.client.HSet(ctx, key, fieldCompletedTraining, 1).Err(); err != nil {
		return fmt.Errorf("failed to mark training completed: %w", err)
	}

	return nil
}

// TopPlayer returns the player with the most wins, ties broken by XP
func (r *redisRepository) TopPlayer(ctx context.Context) (*TopPlayerOutput, error) {
	ids, err := r.client.SMembers(ctx, playerIDsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs: %w", err)
	}

	if len(ids) == 0 {
		return &TopPlayerOutput{}, nil
	}

	// Fetch all player hashes in one round trip
	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.MapStringStringCmd, len(ids))
	for _, id := range ids {
		commands[id] = pipe.HGetAll(ctx, playerKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	var top *models.Player
	for id, cmd := range commands {
		fields, err := cmd.Result()
		if err != nil || len(fields) == 0 {
			// Player was removed between SMembers and the fetch
			continue
		}

		playerID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse player ID %q: %w", id, err)
		}

		p, err := playerFromHash(playerID, fields)
		if err != nil {
			return nil, err
		}

		if top == nil || p.Wins > top.Wins || (p.Wins == top.Wins && p.XP > top.XP) {
			top = p
		}
	}

	return &TopPlayerOutput{Player: top}, nil
}

func playerKey(id int64) string {
	return fmt.Sprintf("%s%d", playerKeyPrefix, id)
}

func playerFromHash(id int64, fields map[string]string) (*models.Player, error) {
	wins, err := strconv.Atoi(fields[fieldWins])
	if err != nil {
		return nil, fmt.Errorf("failed to parse wins for player %d: %w", id, err)
	}

	xp, err := strconv.Atoi(fields[fieldXP])
	if err != nil {
		return nil, fmt.Errorf("failed to parse xp for player %d: %w", id, err)
	}

	createdAt, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at for player %d: %w", id, err)
	}

	return &models.Player{
		ID:                id,
		Nickname:          fields[fieldNickname],
		Wins:              wins,
		XP:                xp,
		CompletedTraining: fields[fieldCompletedTraining] == "1",
		CreatedAt:         time.Unix(createdAt, 0).UTC(),
	}, nil
}
