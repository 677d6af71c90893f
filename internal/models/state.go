package models

// ConversationState is the phase of dialogue a player is currently in
type ConversationState string

const (
	// StateAwaitingNickname means the player has been prompted for a nickname
	StateAwaitingNickname ConversationState = "awaiting_nickname"

	// StateAwaitingTrainingChoice means the player is being asked whether to take the tutorial
	StateAwaitingTrainingChoice ConversationState = "awaiting_training_choice"

	// StateInGame means the player has an active game session
	StateInGame ConversationState = "in_game"

	// StateInMenu means the player is at the main menu
	StateInMenu ConversationState = "in_menu"
)
