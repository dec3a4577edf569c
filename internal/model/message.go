package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OptimisticIDPrefix marks locally assigned message ids shown to the user
// before the row is confirmed by the storage layer. A message keeps such an
// id only between send intent and confirmation or rollback.
const OptimisticIDPrefix = "pending:"

type MessageList []Message

type Message struct {
	ID             string     `db:"id" json:"id"`
	ConversationID uuid.UUID  `db:"conversation_id" json:"conversation_id"`
	SenderID       uuid.UUID  `db:"sender_id" json:"sender_id"`
	Content        string     `db:"content" json:"content"`
	IdempotencyKey string     `db:"idempotency_key" json:"-"`
	SentAt         time.Time  `db:"sent_at" json:"sent_at"`
	ReadAt         *time.Time `db:"read_at" json:"read_at,omitempty"`
}

func NewOptimisticID() string {
	return OptimisticIDPrefix + uuid.NewString()
}

func IsOptimisticID(id string) bool {
	return strings.HasPrefix(id, OptimisticIDPrefix)
}

// Confirmed reports whether the message carries a storage-assigned id.
func (m Message) Confirmed() bool {
	return !IsOptimisticID(m.ID)
}
