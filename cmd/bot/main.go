package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kavdeev/skorovanka/internal/common/clock"
	"github.com/kavdeev/skorovanka/internal/common/uuid"
	"github.com/kavdeev/skorovanka/internal/handlers/telegram"
	"github.com/kavdeev/skorovanka/internal/hints"
	"github.com/kavdeev/skorovanka/internal/repositories/dialog"
	"github.com/kavdeev/skorovanka/internal/repositories/player"
	"github.com/kavdeev/skorovanka/internal/secret"
	"github.com/kavdeev/skorovanka/internal/services/conversation"
	"github.com/kavdeev/skorovanka/internal/services/game"
)

func main() {
	_ = godotenv.Load()

	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Human-readable output for development, JSON by default
	if getEnv("LOG_FORMAT", "json") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN environment variable is required")
	}

	// Initialize the stores. Redis is the default; SQLite covers single-node
	// deployments without a Redis instance.
	var playerRepo player.Repository
	var dialogRepo dialog.Repository

	switch backend := getEnv("STORE_BACKEND", "redis"); backend {
	case "sqlite":
		dsn := getEnv("SQLITE_PATH", "skorovanka.db")
		db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
		if err != nil {
			log.Fatal().Err(err).Str("path", dsn).Msg("failed to open SQLite database")
		}

		playerRepo, err = player.NewSQLite(&player.SQLiteConfig{DB: db})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create player repository")
		}

		// Dialogs are transient, process memory is enough on a single node
		dialogRepo = dialog.NewMemory()

		log.Info().Str("path", dsn).Msg("using SQLite store")

	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}

		var err error
		playerRepo, err = player.NewRedis(&player.Config{RedisClient: redisClient})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create player repository")
		}

		dialogRepo, err = dialog.NewRedis(&dialog.Config{RedisClient: redisClient})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create dialog repository")
		}

		log.Info().Str("addr", redisClient.Options().Addr).Msg("using Redis store")

	default:
		log.Fatal().Str("backend", backend).Msg("unknown STORE_BACKEND")
	}

	// Initialize the game engine
	gameSvc, err := game.New(&game.Config{
		SecretGenerator: secret.New(&secret.Config{}),
		HintGenerator:   hints.New(&hints.Config{}),
		UUIDGenerator:   uuid.New(),
		Clock:           clock.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game service")
	}

	// Initialize the conversation state machine
	convSvc, err := conversation.New(&conversation.Config{
		PlayerRepo:  playerRepo,
		DialogRepo:  dialogRepo,
		GameService: gameSvc,
		Clock:       clock.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create conversation service")
	}

	// Initialize the Telegram bot
	bot, err := telegram.New(&telegram.Config{
		Token:        token,
		Conversation: convSvc,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Telegram bot")
	}

	bot.Start()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
	log.Info().Msg("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
