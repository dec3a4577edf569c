package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-service/internal/config"
	"github.com/s21platform/chat-service/internal/model"
)

// ProfileUpdatedEvent mirrors the payload published by the user service
// whenever a profile changes.
type ProfileUpdatedEvent struct {
	UUID       string `json:"uuid"`
	Nickname   string `json:"nickname"`
	AvatarLink string `json:"avatar_link"`
}

type Handle struct {
	dbRepo DBRepo
}

func New(dbRepo DBRepo) *Handle {
	return &Handle{dbRepo: dbRepo}
}

// Handler keeps the local participant projection in sync with the user
// service. It never fails the consumer: a bad payload is logged and skipped.
func (h *Handle) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handler")

	var event ProfileUpdatedEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal profile event: %v", err))
		return
	}

	userID, err := uuid.Parse(event.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse user uuid: %v", err))
		return
	}

	participant := &model.Participant{
		ID:        userID,
		Nickname:  event.Nickname,
		AvatarURL: event.AvatarLink,
	}
	if err := h.dbRepo.UpsertUser(ctx, participant); err != nil {
		logger.Error(fmt.Sprintf("failed to upsert user: %v", err))
	}
}
