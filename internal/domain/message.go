package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry of a workspace conversation. Messages are
// immutable once created and the slice order is the conversation order.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// LlmMessage is the wire shape sent to the model: role and content only.
type LlmMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func NewChatMessage(role Role, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
