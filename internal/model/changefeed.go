package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessagesTable = "messages"

	OpInsert = "insert"
	OpUpdate = "update"
)

// ChangeEvent is a row-level change delivered by the storage changefeed.
// The payload carries the full row after the change.
type ChangeEvent struct {
	Table string  `json:"table"`
	Op    string  `json:"op"`
	Row   Message `json:"row"`
}

// ReadEvent is pushed to the conversation channel once a read-receipt batch
// has been persisted.
type ReadEvent struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	ReaderID       uuid.UUID `json:"reader_id"`
	ReadAt         time.Time `json:"read_at"`
}
