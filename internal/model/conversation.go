package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	ParticipantOneID uuid.UUID  `db:"participant_one_id" json:"participant_one_id"`
	ParticipantTwoID uuid.UUID  `db:"participant_two_id" json:"participant_two_id"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	LastMessageAt    *time.Time `db:"last_message_at" json:"last_message_at,omitempty"`
}

// Other returns the participant that is not userID.
func (c Conversation) Other(userID uuid.UUID) uuid.UUID {
	if c.ParticipantOneID == userID {
		return c.ParticipantTwoID
	}
	return c.ParticipantOneID
}

// Participant is the denormalized display projection of a chat user,
// maintained locally from the user topic.
type Participant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Nickname  string    `db:"nickname" json:"nickname"`
	AvatarURL string    `db:"avatar_url" json:"avatar_url"`
}

type ConversationPreviewList []ConversationPreview

type ConversationPreview struct {
	ConversationID       uuid.UUID  `db:"conversation_id" json:"conversation_id"`
	CompanionID          uuid.UUID  `db:"companion_id" json:"companion_id"`
	CompanionNickname    string     `db:"companion_nickname" json:"companion_nickname"`
	CompanionAvatarURL   string     `db:"companion_avatar_url" json:"companion_avatar_url"`
	LastMessageContent   *string    `db:"last_message_content" json:"last_message_content,omitempty"`
	LastMessageTimestamp *time.Time `db:"last_message_timestamp" json:"last_message_timestamp,omitempty"`
	UnreadCount          int64      `db:"unread_count" json:"unread_count"`
}
