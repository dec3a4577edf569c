//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/chat-service/internal/model"
)

type DBRepo interface {
	InsertMessage(ctx context.Context, conversationID, senderID uuid.UUID, content, idempotencyKey string) (*model.Message, error)
	UpdateMessagesReadAt(ctx context.Context, conversationID, excludeSenderID uuid.UUID, readAt time.Time) (int64, error)
	QueryMessages(ctx context.Context, conversationID uuid.UUID, before *time.Time, limit uint64) (model.MessageList, error)
	InsertConversation(ctx context.Context, participantOne, participantTwo uuid.UUID) (*model.Conversation, error)
	GetConversationByParticipants(ctx context.Context, participantOne, participantTwo uuid.UUID) (*model.Conversation, error)
	DeleteConversation(ctx context.Context, conversationID uuid.UUID) error
	GetConversationPreviews(ctx context.Context, userID uuid.UUID) (model.ConversationPreviewList, error)
}

type BadgeSynchronizer interface {
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	Adjust(ctx context.Context, userID uuid.UUID, delta int64) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type EventPublisher interface {
	Publish(ctx context.Context, channel string, data interface{}) error
}
