package service

import (
	"github.com/google/uuid"

	"github.com/s21platform/chat-service/internal/model"
)

// ViewState is what the UI renders for the active conversation.
type ViewState struct {
	ConversationID *uuid.UUID        `json:"conversation_id,omitempty"`
	Pending        bool              `json:"pending"`
	Messages       model.MessageList `json:"messages"`
	HasMore        bool              `json:"has_more"`
	UnreadCount    int               `json:"unread_count"`
	NewMessages    bool              `json:"new_messages"`
	Draft          string            `json:"draft,omitempty"`
}
