package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kavdeev/skorovanka/internal/common/clock"
	"github.com/kavdeev/skorovanka/internal/models"
	"github.com/kavdeev/skorovanka/internal/repositories/dialog"
	"github.com/kavdeev/skorovanka/internal/repositories/player"
	"github.com/kavdeev/skorovanka/internal/services/game"
)

// transitionFunc handles one inbound message for one conversation state
type transitionFunc func(ctx context.Context, d *models.Dialog, text string) (*HandleMessageOutput, error)

// service implements the Service interface
type service struct {
	playerRepo  player.Repository
	dialogRepo  dialog.Repository
	gameService game.Service
	clock       clock.Clock

	// transitions is the state machine: one handler per conversation state,
	// picked by a single dispatch point in HandleMessage
	transitions map[models.ConversationState]transitionFunc

	// locks serializes message handling per player so concurrent messages
	// from the same identity cannot double-count attempts or wins
	locks sync.Map
}

// New creates a new conversation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.DialogRepo == nil {
		return nil, ErrNilDialogRepo
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &service{
		playerRepo:  cfg.PlayerRepo,
		dialogRepo:  cfg.DialogRepo,
		gameService: cfg.GameService,
		clock:       cfg.Clock,
	}

	s.transitions = map[models.ConversationState]transitionFunc{
		models.StateAwaitingNickname:       s.handleNickname,
		models.StateAwaitingTrainingChoice: s.handleTrainingChoice,
		models.StateInGame:                 s.handleGuess,
		models.StateInMenu:                 s.handleMenu,
	}

	return s, nil
}

// HandleMessage processes one inbound message for a player
func (s *service) HandleMessage(ctx context.Context, input *HandleMessageInput) (*HandleMessageOutput, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	mu := s.lockFor(input.PlayerID)
	mu.Lock()
	defer mu.Unlock()

	text := strings.TrimSpace(input.Text)

	// The registration trigger works from any state and resets the dialog,
	// dropping an in-flight session if there was one
	if text == CommandStart {
		return s.handleStart(ctx, input.PlayerID)
	}

	d, err := s.dialogRepo.GetDialog(ctx, &dialog.GetDialogInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, dialog.ErrDialogNotFound) {
			// First contact bootstraps the dialog
			return s.handleStart(ctx, input.PlayerID)
		}
		return nil, fmt.Errorf("failed to load dialog: %w", err)
	}

	handle, ok := s.transitions[d.State]
	if !ok {
		// Unknown state in the store, restart the conversation
		return s.handleStart(ctx, input.PlayerID)
	}

	return handle(ctx, d, text)
}

// handleStart is the entry point for a brand-new identity and for /start.
// A registered player lands in the menu, everyone else is asked for a
// nickname first.
func (s *service) handleStart(ctx context.Context, playerID int64) (*HandleMessageOutput, error) {
	d := &models.Dialog{PlayerID: playerID}

	p, err := s.playerRepo.GetPlayer(ctx, &player.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if !errors.Is(err, player.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to look up player: %w", err)
		}

		if err := s.saveState(ctx, d, models.StateAwaitingNickname, nil); err != nil {
			return nil, err
		}
		return &HandleMessageOutput{
			Replies: []string{replyAskNickname},
		}, nil
	}

	if err := s.saveState(ctx, d, models.StateInMenu, nil); err != nil {
		return nil, err
	}
	return &HandleMessageOutput{
		Replies:  []string{fmt.Sprintf(fmtGreeting, p.Nickname)},
		ShowMenu: true,
	}, nil
}

// handleNickname registers the player under the submitted nickname
func (s *service) handleNickname(ctx context.Context, d *models.Dialog, text string) (*HandleMessageOutput, error) {
	if text == "" {
		// Reject and re-prompt, state unchanged
		return &HandleMessageOutput{
			Replies: []string{replyNicknameEmpty},
		}, nil
	}

	_, err := s.playerRepo.CreatePlayer(ctx, &player.CreatePlayerInput{
		PlayerID:  d.PlayerID,
		Nickname:  text,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, player.ErrPlayerExists) {
			// Lost a duplicate registration race, the earlier nickname stands
			existing, err := s.playerRepo.GetPlayer(ctx, &player.GetPlayerInput{
				PlayerID: d.PlayerID,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to look up player: %w", err)
			}

			if err := s.saveState(ctx, d, models.StateInMenu, nil); err != nil {
				return nil, err
			}
			return &HandleMessageOutput{
				Replies:  []string{fmt.Sprintf(fmtGreeting, existing.Nickname)},
				ShowMenu: true,
			}, nil
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	if err := s.saveState(ctx, d, models.StateAwaitingTrainingChoice, nil); err != nil {
		return nil, err
	}
	return &HandleMessageOutput{
		Replies: []string{
			fmt.Sprintf(fmtGreeting, text),
			replyAskTraining,
		},
	}, nil
}

// handleTrainingChoice reacts to the yes/no tutorial prompt. Either answer
// completes training; yes additionally starts a session with an opening hint.
func (s *service) handleTrainingChoice(ctx context.Context, d *models.Dialog, text string) (*HandleMessageOutput, error) {
	token := strings.ToLower(text)

	switch {
	case affirmativeTokens[token]:
		if err := s.markTrainingCompleted(ctx, d.PlayerID); err != nil {
			return nil, err
		}

		out, err := s.gameService.StartSession(ctx, &game.StartSessionInput{
			PlayerID: d.PlayerID,
			WithHint: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to start session: %w", err)
		}

		if err := s.saveState(ctx, d, models.StateInGame, out.Session); err != nil {
			return nil, err
		}
		return &HandleMessageOutput{
			Replies: []string{fmt.Sprintf(fmtTrainingIntro, out.Hint)},
		}, nil

	case negativeTokens[token]:
		if err := s.markTrainingCompleted(ctx, d.PlayerID); err != nil {
			return nil, err
		}

		if err := s.saveState(ctx, d, models.StateInMenu, nil); err != nil {
			return nil, err
		}
		return &HandleMessageOutput{
			Replies:  []string{replyTrainingDeclined},
			ShowMenu: true,
		}, nil

	default:
		return &HandleMessageOutput{
			Replies: []string{replyAskYesNo},
		}, nil
	}
}

// handleMenu reacts to the three menu buttons; anything else re-prompts
func (s *service) handleMenu(ctx context.Context, d *models.Dialog, text string) (*HandleMessageOutput, error) {
	switch text {
	case ButtonPlay:
		if _, err := s.playerRepo.GetPlayer(ctx, &player.GetPlayerInput{PlayerID: d.PlayerID}); err != nil {
			if errors.Is(err, player.ErrPlayerNotFound) {
				return &HandleMessageOutput{
					Replies: []string{replyNotRegistered},
				}, nil
			}
			return nil, fmt.Errorf("failed to look up player: %w", err)
		}

		out, err := s.gameService.StartSession(ctx, &game.StartSessionInput{
			PlayerID: d.PlayerID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to start session: %w", err)
		}

		if err := s.saveState(ctx, d, models.StateInGame, out.Session); err != nil {
			return nil, err
		}
		return &HandleMessageOutput{
			Replies: []string{replyGameStart},
		}, nil

	case ButtonProfile:
		p, err := s.playerRepo.GetPlayer(ctx, &player.GetPlayerInput{PlayerID: d.PlayerID})
		if err != nil {
			if errors.Is(err, player.ErrPlayerNotFound) {
				return &HandleMessageOutput{
					Replies: []string{replyNotRegistered},
				}, nil
			}
			return nil, fmt.Errorf("failed to look up player: %w", err)
		}

		return &HandleMessageOutput{
			Replies: []string{fmt.Sprintf(fmtProfile, p.ID, p.Nickname, p.Wins, p.XP)},
		}, nil

	case ButtonRating:
		top, err := s.playerRepo.TopPlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get top player: %w", err)
		}

		if top.Player == nil {
			return &HandleMessageOutput{
				Replies: []string{replyRatingEmpty},
			}, nil
		}
		return &HandleMessageOutput{
			Replies: []string{fmt.Sprintf(fmtTopPlayer, top.Player.Nickname, top.Player.Wins, top.Player.XP)},
		}, nil

	default:
		return &HandleMessageOutput{
			Replies:  []string{replyUseMenu},
			ShowMenu: true,
		}, nil
	}
}

// handleGuess delegates to the game engine and reacts to the outcome
func (s *service) handleGuess(ctx context.Context, d *models.Dialog, text string) (*HandleMessageOutput, error) {
	if d.Session == nil {
		// Session lost, fall back to the menu
		if err := s.saveState(ctx, d, models.StateInMenu, nil); err != nil {
			return nil, err
		}
		return &HandleMessageOutput{
			Replies:  []string{replyUseMenu},
			ShowMenu: true,
		}, nil
	}

	playerXP := 0
	p, err := s.playerRepo.GetPlayer(ctx, &player.GetPlayerInput{PlayerID: d.PlayerID})
	if err != nil && !errors.Is(err, player.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}
	if err == nil {
		playerXP = p.XP
	}

	out, err := s.gameService.EvaluateGuess(ctx, &game.EvaluateGuessInput{
		Session:  d.Session,
		Text:     text,
		PlayerXP: playerXP,
	})
	if err != nil {
		// Validation failures re-prompt without touching the dialog
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			return &HandleMessageOutput{
				Replies: []string{replyAskInteger},
			}, nil
		case errors.Is(err, game.ErrGuessOutOfRange):
			return &HandleMessageOutput{
				Replies: []string{replyOutOfRange},
			}, nil
		}
		return nil, fmt.Errorf("failed to evaluate guess: %w", err)
	}

	if out.Result == game.ResultWin {
		secret := d.Session.Secret

		if err := s.playerRepo.IncrementStats(ctx, &player.IncrementStatsInput{
			PlayerID:  d.PlayerID,
			WinsDelta: 1,
			XPDelta:   out.XPAwarded,
		}); err != nil {
			return nil, fmt.Errorf("failed to credit win: %w", err)
		}

		if err := s.saveState(ctx, d, models.StateInMenu, nil); err != nil {
			return nil, err
		}
		return &HandleMessageOutput{
			Replies:  []string{fmt.Sprintf(fmtWin, secret, out.Attempts, out.XPAwarded)},
			ShowMenu: true,
		}, nil
	}

	reply := replyGuessLower
	if out.Result == game.ResultTooLow {
		reply = replyGuessHigher
	}

	replies := []string{reply}
	if out.Hint != "" {
		replies = append(replies, fmt.Sprintf(fmtAssistHint, out.Hint))
	}

	// The attempt counter advanced, persist the session
	if err := s.saveState(ctx, d, models.StateInGame, d.Session); err != nil {
		return nil, err
	}
	return &HandleMessageOutput{
		Replies: replies,
	}, nil
}

func (s *service) markTrainingCompleted(ctx context.Context, playerID int64) error {
	err := s.playerRepo.MarkTrainingCompleted(ctx, &player.MarkTrainingCompletedInput{
		PlayerID: playerID,
	})
	if err != nil {
		return fmt.Errorf("failed to mark training completed: %w", err)
	}
	return nil
}

// saveState writes the state and session together as one dialog record
func (s *service) saveState(ctx context.Context, d *models.Dialog, state models.ConversationState, session *models.GameSession) error {
	d.State = state
	d.Session = session
	d.UpdatedAt = s.clock.Now()

	if err := s.dialogRepo.SaveDialog(ctx, &dialog.SaveDialogInput{Dialog: d}); err != nil {
		return fmt.Errorf("failed to save dialog: %w", err)
	}
	return nil
}

func (s *service) lockFor(playerID int64) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(playerID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
