package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/s21platform/chat-service/internal/config"
	"github.com/s21platform/chat-service/internal/model"
)

const pqUniqueViolation = "23505"

var messageColumns = []string{
	"id",
	"conversation_id",
	"sender_id",
	"content",
	"idempotency_key",
	"sent_at",
	"read_at",
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// InsertMessage persists one logical send. The unique index on
// (conversation_id, idempotency_key) absorbs a retried request that already
// succeeded: on conflict the previously stored row is returned so the caller
// never double-records the send.
func (r *Repository) InsertMessage(ctx context.Context, conversationID, senderID uuid.UUID, content, idempotencyKey string) (*model.Message, error) {
	query, args, err := sq.Insert("messages").
		Columns("conversation_id", "sender_id", "content", "idempotency_key").
		Values(conversationID, senderID, content, idempotencyKey).
		Suffix("ON CONFLICT (conversation_id, idempotency_key) DO NOTHING RETURNING " + strings.Join(messageColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.connection.GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return r.getMessageByIdempotencyKey(ctx, conversationID, idempotencyKey)
	}
	if err != nil {
		return nil, err
	}

	return &message, nil
}

func (r *Repository) getMessageByIdempotencyKey(ctx context.Context, conversationID uuid.UUID, idempotencyKey string) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{
			"conversation_id": conversationID,
			"idempotency_key": idempotencyKey,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.connection.GetContext(ctx, &message, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deduplicated message: %v", err)
	}

	return &message, nil
}

// UpdateMessagesReadAt stamps read_at on every unread row of the conversation
// not authored by excludeSenderID. The read_at IS NULL condition makes the
// update safe to repeat.
func (r *Repository) UpdateMessagesReadAt(ctx context.Context, conversationID, excludeSenderID uuid.UUID, readAt time.Time) (int64, error) {
	query, args, err := sq.Update("messages").
		Set("read_at", readAt).
		Where(sq.Eq{"conversation_id": conversationID}).
		Where(sq.NotEq{"sender_id": excludeSenderID}).
		Where(sq.Eq{"read_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return affected, nil
}

// QueryMessages returns up to limit rows newest-first, strictly older than
// before when a cursor is given.
func (r *Repository) QueryMessages(ctx context.Context, conversationID uuid.UUID, before *time.Time, limit uint64) (model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("sent_at DESC").
		Limit(limit)

	if before != nil {
		queryBuilder = queryBuilder.Where(sq.Lt{"sent_at": *before})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.connection.SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// InsertConversation creates the row for an unordered participant pair. The
// uq_conversations_pair index (LEAST/GREATEST over the participants) turns a
// creation race into model.ErrConversationExists.
func (r *Repository) InsertConversation(ctx context.Context, participantOne, participantTwo uuid.UUID) (*model.Conversation, error) {
	query, args, err := sq.Insert("conversations").
		Columns("participant_one_id", "participant_two_id").
		Values(participantOne, participantTwo).
		Suffix("RETURNING id, participant_one_id, participant_two_id, created_at, last_message_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.connection.GetContext(ctx, &conversation, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, fmt.Errorf("%w: %v", model.ErrConversationExists, err)
		}
		return nil, err
	}

	return &conversation, nil
}

// GetConversationByParticipants matches either participant ordering and
// returns nil without error when no row exists.
func (r *Repository) GetConversationByParticipants(ctx context.Context, participantOne, participantTwo uuid.UUID) (*model.Conversation, error) {
	query, args, err := sq.Select("id", "participant_one_id", "participant_two_id", "created_at", "last_message_at").
		From("conversations").
		Where(sq.Or{
			sq.Eq{"participant_one_id": participantOne, "participant_two_id": participantTwo},
			sq.Eq{"participant_one_id": participantTwo, "participant_two_id": participantOne},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.connection.GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

// DeleteConversation removes an orphaned conversation left behind by a failed
// first send. The NOT EXISTS guard keeps a conversation that received a
// message in the meantime.
func (r *Repository) DeleteConversation(ctx context.Context, conversationID uuid.UUID) error {
	query, args, err := sq.Delete("conversations").
		Where(sq.Eq{"id": conversationID}).
		Where("NOT EXISTS (SELECT 1 FROM messages WHERE messages.conversation_id = conversations.id)").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %v", err)
	}

	return nil
}

// GetGlobalUnreadCount is the authoritative unread aggregate across all of
// the user's conversations.
func (r *Repository) GetGlobalUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("messages m").
		Join("conversations c ON m.conversation_id = c.id").
		Where(sq.Or{
			sq.Eq{"c.participant_one_id": userID},
			sq.Eq{"c.participant_two_id": userID},
		}).
		Where(sq.NotEq{"m.sender_id": userID}).
		Where(sq.Eq{"m.read_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.connection.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %v", err)
	}

	return count, nil
}

func (r *Repository) GetConversationPreviews(ctx context.Context, userID uuid.UUID) (model.ConversationPreviewList, error) {
	query, args, err := sq.Select(
		"c.id AS conversation_id",
		"u.id AS companion_id",
		"u.nickname AS companion_nickname",
		"u.avatar_url AS companion_avatar_url",
		"(SELECT content FROM messages m2 WHERE m2.conversation_id = c.id ORDER BY m2.sent_at DESC LIMIT 1) AS last_message_content",
		"(SELECT sent_at FROM messages m2 WHERE m2.conversation_id = c.id ORDER BY m2.sent_at DESC LIMIT 1) AS last_message_timestamp",
	).
		Column(sq.Expr("(SELECT COUNT(*) FROM messages m3 WHERE m3.conversation_id = c.id AND m3.sender_id <> ? AND m3.read_at IS NULL) AS unread_count", userID)).
		From("conversations c").
		Join("users u ON u.id = CASE WHEN c.participant_one_id = ? THEN c.participant_two_id ELSE c.participant_one_id END", userID).
		Where(sq.Or{
			sq.Eq{"c.participant_one_id": userID},
			sq.Eq{"c.participant_two_id": userID},
		}).
		OrderBy("last_message_timestamp DESC NULLS LAST").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var previews model.ConversationPreviewList
	err = r.connection.SelectContext(ctx, &previews, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation previews: %v", err)
	}

	return previews, nil
}

// UpsertUser maintains the local participant projection fed by the user
// topic.
func (r *Repository) UpsertUser(ctx context.Context, participant *model.Participant) error {
	query, args, err := sq.Insert("users").
		Columns("id", "nickname", "avatar_url").
		Values(participant.ID, participant.Nickname, participant.AvatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname, avatar_url = EXCLUDED.avatar_url").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)

	return err
}
