package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/kavdeev/skorovanka/internal/services/conversation"
)

// Bot represents the Telegram bot instance. It is a thin adapter: every
// inbound message goes straight to the conversation service and every reply
// comes straight back out.
type Bot struct {
	api          *tgbotapi.BotAPI
	conversation conversation.Service
	config       *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Telegram bot token
	Token string

	// Conversation service that drives the game flow
	Conversation conversation.Service

	// PollTimeout is the long-polling timeout in seconds, defaults to 30
	PollTimeout int
}

// New creates a new Telegram bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Conversation == nil {
		return nil, errors.New("conversation service cannot be nil")
	}

	if cfg.PollTimeout == 0 {
		cfg.PollTimeout = 30
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram session: %w", err)
	}

	return &Bot{
		api:          api,
		conversation: cfg.Conversation,
		config:       cfg,
	}, nil
}

// Start begins long polling for updates
func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.config.PollTimeout

	updates := b.api.GetUpdatesChan(u)
	go b.run(updates)

	log.Info().Str("username", b.api.Self.UserName).Msg("bot is now polling for updates")
}

// Stop halts long polling. In-flight messages finish on their own.
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) run(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil || update.Message.From == nil {
			continue
		}
		b.handleMessage(update.Message)
	}
}

// handleMessage feeds one inbound message through the state machine and
// sends the replies back to the chat
func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	out, err := b.conversation.HandleMessage(context.Background(), &conversation.HandleMessageInput{
		PlayerID: msg.From.ID,
		Text:     msg.Text,
	})
	if err != nil {
		log.Error().Err(err).Int64("player_id", msg.From.ID).Msg("failed to handle message")
		return
	}

	for i, text := range out.Replies {
		reply := tgbotapi.NewMessage(msg.Chat.ID, text)

		// Attach the menu keyboard to the last reply only
		if out.ShowMenu && i == len(out.Replies)-1 {
			reply.ReplyMarkup = mainMenuKeyboard()
		}

		if _, err := b.api.Send(reply); err != nil {
			log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("failed to send reply")
		}
	}
}

// mainMenuKeyboard renders the three menu actions the core understands
func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(conversation.ButtonProfile),
			tgbotapi.NewKeyboardButton(conversation.ButtonPlay),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(conversation.ButtonRating),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}
