package conversation

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/kavdeev/skorovanka/internal/services/conversation Service

// Service defines the interface for the conversation state machine. The
// transport hands every inbound message here and sends back whatever comes
// out; all game flow decisions happen behind this interface.
type Service interface {
	// HandleMessage processes one inbound message for a player and returns
	// the replies to send
	HandleMessage(ctx context.Context, input *HandleMessageInput) (*HandleMessageOutput, error)
}
