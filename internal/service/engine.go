package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/s21platform/chat-service/internal/model"
	"github.com/s21platform/chat-service/internal/pkg/retry"
)

// Engine owns the per-user conversation sessions and routes changefeed
// events into them. One session per user is active at a time; opening a
// different conversation tears the previous session down first, so events
// and late responses for it are discarded rather than applied.
type Engine struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	repo      DBRepo
	badge     BadgeSynchronizer
	publisher EventPublisher
	validator ContentValidator
	resolver  *Resolver
	policy    retry.Policy
	pageSize  uint64
}

func NewEngine(repo DBRepo, badge BadgeSynchronizer, publisher EventPublisher, validator ContentValidator, policy retry.Policy, pageSize uint64) *Engine {
	return &Engine{
		sessions:  make(map[uuid.UUID]*Session),
		repo:      repo,
		badge:     badge,
		publisher: publisher,
		validator: validator,
		resolver:  NewResolver(repo, policy),
		policy:    policy,
		pageSize:  pageSize,
	}
}

// Open activates the conversation view between selfID and otherID,
// replacing the user's previous session. The new session is registered
// before its history is seeded, so no concurrent insert falls into the gap
// between the seed query and changefeed delivery.
func (e *Engine) Open(ctx context.Context, selfID, otherID uuid.UUID) (*ViewState, error) {
	if selfID == otherID {
		return nil, fmt.Errorf("cannot open a conversation with yourself")
	}

	session := newSession(selfID, otherID, sessionDeps{
		pageSize:  e.pageSize,
		policy:    e.policy,
		repo:      e.repo,
		resolver:  e.resolver,
		badge:     e.badge,
		publisher: e.publisher,
		validator: e.validator,
	})

	conversation, err := e.repo.GetConversationByParticipants(ctx, selfID, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve conversation: %v", err)
	}
	if conversation != nil {
		session.bind(conversation)
	}

	// Register before seeding so rows inserted while the history query runs
	// reach the session through Dispatch instead of being lost.
	e.mu.Lock()
	if previous, ok := e.sessions[selfID]; ok {
		previous.Close()
	}
	e.sessions[selfID] = session
	e.mu.Unlock()

	if conversation != nil {
		if err := e.seed(ctx, session); err != nil {
			session.Close()
			e.mu.Lock()
			if e.sessions[selfID] == session {
				delete(e.sessions, selfID)
			}
			e.mu.Unlock()
			return nil, err
		}
	}

	return session.View(), nil
}

func (e *Engine) seed(ctx context.Context, session *Session) error {
	page, err := e.repo.QueryMessages(ctx, session.ConversationID(), nil, e.pageSize)
	if err != nil {
		return fmt.Errorf("failed to load conversation window: %v", err)
	}

	chronological := make([]model.Message, len(page))
	for i, m := range page {
		chronological[len(page)-1-i] = m
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	// Rows dispatched while the query was in flight are already in the
	// window; the merge gate skips the overlap and slots the rest in order.
	for _, m := range chronological {
		session.window.Merge(m)
	}
	session.cursor.Reset()
	if uint64(len(page)) < e.pageSize {
		session.cursor.Exhaust()
	}
	if len(chronological) > 0 {
		session.cursor.Advance(chronological[0].SentAt)
	}

	return nil
}

// Close tears down the user's active session, e.g. when the chat view is
// left entirely.
func (e *Engine) Close(selfID uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if session, ok := e.sessions[selfID]; ok {
		session.Close()
		delete(e.sessions, selfID)
	}
}

func (e *Engine) session(selfID uuid.UUID) (*Session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	session, ok := e.sessions[selfID]
	if !ok {
		return nil, fmt.Errorf("no active conversation view")
	}
	return session, nil
}

func (e *Engine) Send(ctx context.Context, selfID uuid.UUID, content string) (*model.Message, error) {
	session, err := e.session(selfID)
	if err != nil {
		return nil, err
	}
	return session.Send(ctx, content)
}

func (e *Engine) LoadOlder(ctx context.Context, selfID uuid.UUID) (int, error) {
	session, err := e.session(selfID)
	if err != nil {
		return 0, err
	}
	return session.LoadOlder(ctx)
}

func (e *Engine) MarkRead(ctx context.Context, selfID uuid.UUID, force bool) (int, error) {
	session, err := e.session(selfID)
	if err != nil {
		return 0, err
	}
	return session.MarkRead(ctx, force)
}

func (e *Engine) SetViewport(ctx context.Context, selfID uuid.UUID, atBottom bool) error {
	session, err := e.session(selfID)
	if err != nil {
		return err
	}
	return session.SetViewport(ctx, atBottom)
}

func (e *Engine) View(selfID uuid.UUID) (*ViewState, error) {
	session, err := e.session(selfID)
	if err != nil {
		return nil, err
	}
	return session.View(), nil
}

func (e *Engine) UnreadCount(ctx context.Context, selfID uuid.UUID) (int64, error) {
	return e.badge.Count(ctx, selfID)
}

func (e *Engine) Previews(ctx context.Context, selfID uuid.UUID) (model.ConversationPreviewList, error) {
	return e.repo.GetConversationPreviews(ctx, selfID)
}

// CanSubscribe reports whether the user's active session is bound to the
// given conversation channel.
func (e *Engine) CanSubscribe(selfID, conversationID uuid.UUID) bool {
	session, err := e.session(selfID)
	if err != nil {
		return false
	}
	return session.ConversationID() == conversationID
}

// Dispatch routes a changefeed event to every session currently viewing the
// affected conversation. Events for tables or conversations nobody views
// are dropped.
func (e *Engine) Dispatch(ctx context.Context, event model.ChangeEvent) {
	if event.Table != model.MessagesTable {
		return
	}

	e.mu.RLock()
	targets := make([]*Session, 0, 1)
	for _, session := range e.sessions {
		if session.ConversationID() == event.Row.ConversationID {
			targets = append(targets, session)
		}
	}
	e.mu.RUnlock()

	for _, session := range targets {
		switch event.Op {
		case model.OpInsert:
			session.HandleInsert(ctx, event.Row)
		case model.OpUpdate:
			session.HandleUpdate(ctx, event.Row)
		}
	}
}
