//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/chat-service/internal/model"
	"github.com/s21platform/chat-service/internal/service"
)

type ChatEngine interface {
	Open(ctx context.Context, selfID, otherID uuid.UUID) (*service.ViewState, error)
	Close(selfID uuid.UUID)
	View(selfID uuid.UUID) (*service.ViewState, error)
	Send(ctx context.Context, selfID uuid.UUID, content string) (*model.Message, error)
	LoadOlder(ctx context.Context, selfID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, selfID uuid.UUID, force bool) (int, error)
	SetViewport(ctx context.Context, selfID uuid.UUID, atBottom bool) error
	UnreadCount(ctx context.Context, selfID uuid.UUID) (int64, error)
	Previews(ctx context.Context, selfID uuid.UUID) (model.ConversationPreviewList, error)
	CanSubscribe(selfID, conversationID uuid.UUID) bool
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, conversationID string) (string, int64, error)
}
