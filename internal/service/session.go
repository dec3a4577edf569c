package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-service/internal/config"
	"github.com/s21platform/chat-service/internal/model"
	"github.com/s21platform/chat-service/internal/pkg/idempotency"
	"github.com/s21platform/chat-service/internal/pkg/retry"
	"github.com/s21platform/chat-service/internal/store"
)

type ContentValidator interface {
	ValidateContent(content string) error
}

// Session is the single logical actor behind one open conversation view.
// Four independent asynchronous sources converge on it: the send pipeline,
// the changefeed, backward pagination, and read-receipt persistence. The
// session lock serializes their access to the window; each source suspends
// on I/O outside the lock and re-checks the session state before applying
// its result, so late responses for a closed session are discarded.
type Session struct {
	mu sync.Mutex

	selfID  uuid.UUID
	otherID uuid.UUID

	// conversationID is uuid.Nil while the conversation is pending, i.e.
	// no first message has been sent by either side yet.
	conversationID uuid.UUID
	conversation   *model.Conversation

	window  *store.Store
	cursor  store.Cursor
	loading bool

	atBottom    bool
	newMessages bool
	draft       string

	closed bool

	pageSize uint64
	policy   retry.Policy

	repo      DBRepo
	resolver  *Resolver
	badge     BadgeSynchronizer
	publisher EventPublisher
	validator ContentValidator
}

func newSession(selfID, otherID uuid.UUID, deps sessionDeps) *Session {
	return &Session{
		selfID:    selfID,
		otherID:   otherID,
		window:    store.New(selfID),
		atBottom:  true,
		pageSize:  deps.pageSize,
		policy:    deps.policy,
		repo:      deps.repo,
		resolver:  deps.resolver,
		badge:     deps.badge,
		publisher: deps.publisher,
		validator: deps.validator,
	}
}

type sessionDeps struct {
	pageSize  uint64
	policy    retry.Policy
	repo      DBRepo
	resolver  *Resolver
	badge     BadgeSynchronizer
	publisher EventPublisher
	validator ContentValidator
}

func (s *Session) pending() bool {
	return s.conversationID == uuid.Nil
}

// Close tears the session down. In-flight operations observe the flag when
// they resume and drop their results instead of applying them.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *Session) ConversationID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversationID
}

// bind attaches the resolved conversation so changefeed routing starts
// delivering its rows, before any history has been loaded.
func (s *Session) bind(conversation *model.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversation = conversation
	s.conversationID = conversation.ID
}

func (s *Session) View() *ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := &ViewState{
		Pending:     s.pending(),
		Messages:    s.window.Messages(),
		HasMore:     s.cursor.HasMore,
		UnreadCount: s.window.UnreadCount(),
		NewMessages: s.newMessages,
		Draft:       s.draft,
	}
	if !s.pending() {
		id := s.conversationID
		view.ConversationID = &id
	}

	return view
}

// SetViewport records whether the viewer sits at the bottom of the
// transcript. Reaching the bottom admits any deferred unread batch.
func (s *Session) SetViewport(ctx context.Context, atBottom bool) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.atBottom = atBottom
	admit := atBottom && s.newMessages
	s.mu.Unlock()

	if admit {
		_, err := s.MarkRead(ctx, false)
		return err
	}

	return nil
}

// Send runs one logical send. The optimistic entry is visible and the
// compose field cleared before any network call; on terminal failure the
// entry is removed and the draft restored so nothing has to be retyped.
func (s *Session) Send(ctx context.Context, content string) (*model.Message, error) {
	if err := s.validator.ValidateContent(content); err != nil {
		return nil, err
	}

	key := idempotency.NewKey(s.selfID.String())
	optimistic := model.Message{
		ID:             model.NewOptimisticID(),
		SenderID:       s.selfID,
		Content:        content,
		IdempotencyKey: key,
		SentAt:         time.Now(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, fmt.Errorf("conversation view is closed")
	}
	wasPending := s.pending()
	known := s.conversation
	optimistic.ConversationID = s.conversationID
	s.window.Append(optimistic)
	s.draft = ""
	s.mu.Unlock()

	createdNew := false
	if wasPending {
		conversation, created, err := s.resolver.ResolveOrCreate(ctx, s.selfID, s.otherID, nil)
		if err != nil {
			// The optimistic entry must never be sent against a
			// conversation id that was never created.
			s.rollbackSend(optimistic.ID, content)
			return nil, err
		}
		createdNew = created
		known = conversation

		s.mu.Lock()
		if !s.closed {
			s.conversationID = conversation.ID
			s.conversation = conversation
		}
		s.mu.Unlock()
	}

	var confirmed *model.Message
	err := s.policy.Do(ctx, retry.Storage, func(ctx context.Context) error {
		record, err := s.repo.InsertMessage(ctx, known.ID, s.selfID, content, key)
		if err != nil {
			return err
		}
		confirmed = record
		return nil
	})
	if err != nil {
		s.rollbackSend(optimistic.ID, content)
		if createdNew {
			s.cleanupOrphanedConversation(ctx, known.ID)
		}
		return nil, err
	}

	s.mu.Lock()
	if !s.closed {
		s.window.Replace(optimistic.ID, *confirmed)
	}
	s.mu.Unlock()

	if err := s.publisher.Publish(ctx, confirmed.ConversationID.String(), model.ChangeEvent{
		Table: model.MessagesTable,
		Op:    model.OpInsert,
		Row:   *confirmed,
	}); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to publish message: %v", err))
	}

	return confirmed, nil
}

func (s *Session) rollbackSend(optimisticID, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.window.Remove(optimisticID)
	s.draft = content
}

// cleanupOrphanedConversation is advisory: an empty conversation left behind
// by a failed first send is a tolerable residual, so its own failure is
// logged and never escalated.
func (s *Session) cleanupOrphanedConversation(ctx context.Context, conversationID uuid.UUID) {
	if err := s.repo.DeleteConversation(ctx, conversationID); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to clean up orphaned conversation %s: %v", conversationID, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.conversationID = uuid.Nil
	s.conversation = nil
}

// LoadOlder fetches the next history page below the cursor and prepends it.
// Guarded against overlapping calls; returns the number of rows added.
func (s *Session) LoadOlder(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.closed || s.pending() || !s.cursor.HasMore || s.loading {
		s.mu.Unlock()
		return 0, nil
	}
	s.loading = true
	before := s.cursor.Before()
	conversationID := s.conversationID
	s.mu.Unlock()

	page, err := s.repo.QueryMessages(ctx, conversationID, before, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		return 0, fmt.Errorf("failed to load older messages: %v", err)
	}
	if s.closed || s.conversationID != conversationID {
		// Late result for a view that is no longer active.
		return 0, nil
	}

	if uint64(len(page)) < s.pageSize {
		s.cursor.Exhaust()
	}
	if len(page) == 0 {
		return 0, nil
	}

	chronological := make([]model.Message, len(page))
	for i, m := range page {
		chronological[len(page)-1-i] = m
	}

	added := s.window.PrependHistory(chronological)
	s.cursor.Advance(chronological[0].SentAt)

	return added, nil
}

// MarkRead applies the read-receipt admission policy and, once admitted,
// marks the unread batch optimistically, persists it, and rolls both the
// window and the badge back if persistence fails.
func (s *Session) MarkRead(ctx context.Context, force bool) (int, error) {
	s.mu.Lock()
	if s.closed || s.pending() {
		s.mu.Unlock()
		return 0, nil
	}
	if !force && !s.atBottom {
		if s.window.UnreadCount() > 0 {
			s.newMessages = true
		}
		s.mu.Unlock()
		return 0, nil
	}

	readAt := time.Now()
	snapshot, marked := s.window.MarkReadLocally(readAt)
	s.newMessages = false
	if marked == 0 {
		s.mu.Unlock()
		return 0, nil
	}
	conversationID := s.conversationID
	s.mu.Unlock()

	if err := s.badge.Adjust(ctx, s.selfID, -int64(marked)); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("failed to adjust unread badge: %v", err))
	}

	err := s.policy.Do(ctx, retry.Storage, func(ctx context.Context) error {
		_, err := s.repo.UpdateMessagesReadAt(ctx, conversationID, s.selfID, readAt)
		return err
	})
	if err != nil {
		// The optimistic read state must not silently diverge from the
		// persisted truth: restore the window, re-arm the indicator and
		// drop the adjusted cache so the next read refetches the
		// persisted aggregate.
		s.mu.Lock()
		if !s.closed && s.conversationID == conversationID {
			s.window.Rollback(snapshot)
			s.newMessages = true
		}
		s.mu.Unlock()
		if invErr := s.badge.Invalidate(ctx, s.selfID); invErr != nil {
			logger := logger_lib.FromContext(ctx, config.KeyLogger)
			logger.Warn(fmt.Sprintf("failed to invalidate unread badge: %v", invErr))
		}
		return 0, fmt.Errorf("failed to persist read receipts: %v", err)
	}

	if err := s.badge.Invalidate(ctx, s.selfID); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("failed to invalidate unread badge: %v", err))
	}

	if err := s.publisher.Publish(ctx, conversationID.String(), model.ReadEvent{
		ConversationID: conversationID,
		ReaderID:       s.selfID,
		ReadAt:         readAt,
	}); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to publish read event: %v", err))
	}

	return marked, nil
}

// HandleInsert merges a row-inserted changefeed event into the window. The
// merge gate drops rows already present, including a row whose optimistic
// twin was just confirmed.
func (s *Session) HandleInsert(ctx context.Context, row model.Message) {
	s.mu.Lock()
	if s.closed || s.pending() || row.ConversationID != s.conversationID {
		s.mu.Unlock()
		return
	}

	merged := s.window.Merge(row)
	fromOther := row.SenderID != s.selfID
	atBottom := s.atBottom
	if merged && fromOther && !atBottom {
		s.newMessages = true
	}
	s.mu.Unlock()

	if !merged || !fromOther {
		return
	}

	if atBottom {
		if _, err := s.MarkRead(ctx, false); err != nil {
			logger := logger_lib.FromContext(ctx, config.KeyLogger)
			logger.Warn(fmt.Sprintf("failed to mark incoming message read: %v", err))
		}
		return
	}

	// Scrolled up: the row stays unread, so the cached badge total is stale.
	if err := s.badge.Invalidate(ctx, s.selfID); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("failed to invalidate unread badge: %v", err))
	}
}

// HandleUpdate overwrites the matching row in place, e.g. when the other
// side marked our message read. Never reorders.
func (s *Session) HandleUpdate(_ context.Context, row model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.pending() || row.ConversationID != s.conversationID {
		return
	}

	s.window.Overwrite(row)
}
