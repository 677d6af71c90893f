package dialog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kavdeev/skorovanka/internal/models"
	"github.com/redis/go-redis/v9"
)

const dialogKeyPrefix = "dialog:"

// ErrDialogNotFound is returned when a player has no dialog record yet
var ErrDialogNotFound = errors.New("dialog not found")

// Config holds configuration for the Redis dialog repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed dialog repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetDialog retrieves the dialog for a player from Redis
func (r *redisRepository) GetDialog(ctx context.Context, input *GetDialogInput) (*models.Dialog, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	dialogJSON, err := r.client.Get(ctx, dialogKey(input.PlayerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDialogNotFound
		}
		return nil, fmt.Errorf("failed to get dialog: %w", err)
	}

	var d models.Dialog
	if err := json.Unmarshal([]byte(dialogJSON), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dialog: %w", err)
	}

	return &d, nil
}

// SaveDialog persists a dialog to Redis as a single JSON value, so the state
// and the session never diverge
func (r *redisRepository) SaveDialog(ctx context.Context, input *SaveDialogInput) error {
	if input == nil || input.Dialog == nil {
		return errors.New("input and dialog cannot be nil")
	}

	if input.Dialog.PlayerID == 0 {
		return errors.New("dialog player ID cannot be empty")
	}

	dialogJSON, err := json.Marshal(input.Dialog)
	if err != nil {
		return fmt.Errorf("failed to marshal dialog: %w", err)
	}

	if err := r.client.Set(ctx, dialogKey(input.Dialog.PlayerID), dialogJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save dialog: %w", err)
	}

	return nil
}

// DeleteDialog removes the dialog for a player from Redis
func (r *redisRepository) DeleteDialog(ctx context.Context, input *DeleteDialogInput) error {
	if input == nil || input.PlayerID == 0 {
		return errors.New("input and player ID cannot be empty")
	}

	if err := r.client.Del(ctx, dialogKey(input.PlayerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete dialog: %w", err)
	}

	return nil
}

func dialogKey(id int64) string {
	return fmt.Sprintf("%s%d", dialogKeyPrefix, id)
}
