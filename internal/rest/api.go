package rest

// Request and response shapes of the chat synchronization HTTP surface.

type Error struct {
	Error string `json:"error"`
}

type OpenConversationRequest struct {
	CompanionUuid string `json:"companion_uuid"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type SendMessageResponse struct {
	MessageId string `json:"message_id"`
	SentAt    string `json:"sent_at"`
}

type MarkReadRequest struct {
	Force bool `json:"force"`
}

type MarkReadResponse struct {
	MarkedCount int `json:"marked_count"`
}

type SetViewportRequest struct {
	AtBottom bool `json:"at_bottom"`
}

type LoadOlderResponse struct {
	LoadedCount int  `json:"loaded_count"`
	HasMore     bool `json:"has_more"`
}

type Message struct {
	Uuid             string  `json:"uuid"`
	ConversationUuid string  `json:"conversation_uuid,omitempty"`
	SenderUuid       string  `json:"sender_uuid"`
	Content          string  `json:"content"`
	SentAt           string  `json:"sent_at"`
	ReadAt           *string `json:"read_at,omitempty"`
	Confirmed        bool    `json:"confirmed"`
}

type ConversationViewResponse struct {
	ConversationUuid *string   `json:"conversation_uuid,omitempty"`
	Pending          bool      `json:"pending"`
	Messages         []Message `json:"messages"`
	HasMore          bool      `json:"has_more"`
	UnreadCount      int       `json:"unread_count"`
	NewMessages      bool      `json:"new_messages"`
	Draft            string    `json:"draft,omitempty"`
}

type ConversationPreview struct {
	ConversationUuid     string  `json:"conversation_uuid"`
	CompanionUuid        string  `json:"companion_uuid"`
	CompanionNickname    string  `json:"companion_nickname"`
	CompanionAvatarUrl   string  `json:"companion_avatar_url,omitempty"`
	LastMessageContent   *string `json:"last_message_content,omitempty"`
	LastMessageTimestamp *string `json:"last_message_timestamp,omitempty"`
	UnreadCount          int64   `json:"unread_count"`
}

type GetConversationPreviewsResponse struct {
	Conversations []ConversationPreview `json:"conversations"`
}

type GetUnreadBadgeResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

type GetConnectAccessTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type GetSubscribeTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Channel   string `json:"channel"`
}
