package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/chat-service/internal/model"
	"github.com/s21platform/chat-service/internal/pkg/retry"
)

// Resolver handles first-contact sends: it creates the conversation row for
// a participant pair, or finds the one a concurrent creator won the race
// with. Races are fully absorbed, both callers end up on the same row.
type Resolver struct {
	repo   DBRepo
	policy retry.Policy
}

func NewResolver(repo DBRepo, policy retry.Policy) *Resolver {
	return &Resolver{
		repo:   repo,
		policy: policy,
	}
}

// ResolveOrCreate returns the conversation for the pair and whether this
// call created it. A known conversation short-circuits without touching
// storage.
func (r *Resolver) ResolveOrCreate(ctx context.Context, selfID, otherID uuid.UUID, known *model.Conversation) (*model.Conversation, bool, error) {
	if known != nil {
		return known, false, nil
	}

	var created *model.Conversation
	err := r.policy.Do(ctx, retry.Storage, func(ctx context.Context) error {
		conversation, err := r.repo.InsertConversation(ctx, selfID, otherID)
		if err != nil {
			return err
		}
		created = conversation
		return nil
	})
	if err == nil {
		return created, true, nil
	}

	if errors.Is(err, model.ErrConversationExists) {
		existing, lookupErr := r.repo.GetConversationByParticipants(ctx, selfID, otherID)
		if lookupErr != nil {
			return nil, false, fmt.Errorf("failed to look up conversation after duplicate signal: %v", lookupErr)
		}
		if existing != nil {
			return existing, false, nil
		}
		// A duplicate signal with no retrievable row: re-raise instead
		// of guessing.
		return nil, false, err
	}

	return nil, false, err
}
