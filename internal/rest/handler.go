package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-service/internal/config"
	"github.com/s21platform/chat-service/internal/model"
	"github.com/s21platform/chat-service/internal/service"
)

type Handler struct {
	engine       ChatEngine
	jwtGenerator JWTGenerator
}

func New(engine ChatEngine, jwtGenerator JWTGenerator) *Handler {
	return &Handler{
		engine:       engine,
		jwtGenerator: jwtGenerator,
	}
}

// AttachRoutes mounts the chat synchronization surface on the router. The
// view endpoints operate on the caller's single active conversation view.
func (h *Handler) AttachRoutes(router chi.Router) {
	router.Route("/chat", func(r chi.Router) {
		r.Post("/view", h.OpenConversation)
		r.Get("/view", h.GetView)
		r.Delete("/view", h.CloseConversation)
		r.Post("/view/messages", h.SendMessage)
		r.Post("/view/history", h.LoadOlderMessages)
		r.Post("/view/read", h.MarkRead)
		r.Put("/view/viewport", h.SetViewport)
		r.Get("/unread", h.GetUnreadBadge)
		r.Get("/conversations", h.GetConversationPreviews)
		r.Get("/access-token", h.GetConnectAccessToken)
		r.Get("/subscribe-token/{conversationId}", h.GetSubscribeToken)
	})
}

func (h *Handler) OpenConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("OpenConversation")

	var req OpenConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	companionID, err := uuid.Parse(req.CompanionUuid)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse companion uuid: %v", err))
		h.writeError(w, "invalid companion uuid", http.StatusBadRequest)
		return
	}

	view, err := h.engine.Open(r.Context(), selfID, companionID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open conversation view: %v", err))
		h.writeError(w, fmt.Sprintf("failed to open conversation view: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, viewResponse(view), http.StatusOK)
}

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetView")

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	view, err := h.engine.View(selfID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation view: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversation view: %v", err), http.StatusNotFound)
		return
	}

	h.writeJSON(w, viewResponse(view), http.StatusOK)
}

func (h *Handler) CloseConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CloseConversation")

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	h.engine.Close(selfID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	message, err := h.engine.Send(r.Context(), selfID, req.Content)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), http.StatusUnprocessableEntity)
		return
	}

	response := SendMessageResponse{
		MessageId: message.ID,
		SentAt:    message.SentAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) LoadOlderMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LoadOlderMessages")

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	loaded, err := h.engine.LoadOlder(r.Context(), selfID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load older messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to load older messages: %v", err), http.StatusInternalServerError)
		return
	}

	view, err := h.engine.View(selfID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation view: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversation view: %v", err), http.StatusNotFound)
		return
	}

	response := LoadOlderResponse{
		LoadedCount: loaded,
		HasMore:     view.HasMore,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkRead")

	var req MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	marked, err := h.engine.MarkRead(r.Context(), selfID, req.Force)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to mark messages read: %v", err))
		h.writeError(w, fmt.Sprintf("failed to mark messages read: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, MarkReadResponse{MarkedCount: marked}, http.StatusOK)
}

func (h *Handler) SetViewport(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetViewport")

	var req SetViewportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	if err := h.engine.SetViewport(r.Context(), selfID, req.AtBottom); err != nil {
		logger.Error(fmt.Sprintf("failed to update viewport: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update viewport: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetUnreadBadge(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUnreadBadge")

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	count, err := h.engine.UnreadCount(r.Context(), selfID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get unread badge: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get unread badge: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, GetUnreadBadgeResponse{UnreadCount: count}, http.StatusOK)
}

func (h *Handler) GetConversationPreviews(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationPreviews")

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	previews, err := h.engine.Previews(r.Context(), selfID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation previews: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversation previews: %v", err), http.StatusInternalServerError)
		return
	}

	conversations := make([]ConversationPreview, len(previews))
	for i, preview := range previews {
		var lastMessageTimestamp *string
		if preview.LastMessageTimestamp != nil {
			timestamp := preview.LastMessageTimestamp.Format(time.RFC3339)
			lastMessageTimestamp = &timestamp
		}

		conversations[i] = ConversationPreview{
			ConversationUuid:     preview.ConversationID.String(),
			CompanionUuid:        preview.CompanionID.String(),
			CompanionNickname:    preview.CompanionNickname,
			CompanionAvatarUrl:   preview.CompanionAvatarURL,
			LastMessageContent:   preview.LastMessageContent,
			LastMessageTimestamp: lastMessageTimestamp,
			UnreadCount:          preview.UnreadCount,
		}
	}

	h.writeJSON(w, GetConversationPreviewsResponse{Conversations: conversations}, http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(selfID.String())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	response := GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	selfID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	conversationID, err := uuid.Parse(chi.URLParam(r, "conversationId"))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse conversation uuid: %v", err))
		h.writeError(w, "invalid conversation uuid", http.StatusBadRequest)
		return
	}

	if !h.engine.CanSubscribe(selfID, conversationID) {
		logger.Error("user is not a participant of the conversation")
		h.writeError(w, "user is not a participant of the conversation", http.StatusForbidden)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(selfID.String(), conversationID.String())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	response := GetSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   conversationID.String(),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) callerID(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface) (uuid.UUID, bool) {
	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return uuid.Nil, false
	}

	selfID, err := uuid.Parse(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse user uuid: %v", err))
		h.writeError(w, "invalid user uuid", http.StatusUnauthorized)
		return uuid.Nil, false
	}

	return selfID, true
}

func viewResponse(view *service.ViewState) ConversationViewResponse {
	var conversationUuid *string
	if view.ConversationID != nil {
		id := view.ConversationID.String()
		conversationUuid = &id
	}

	messages := make([]Message, len(view.Messages))
	for i, m := range view.Messages {
		messages[i] = messageResponse(m)
	}

	return ConversationViewResponse{
		ConversationUuid: conversationUuid,
		Pending:          view.Pending,
		Messages:         messages,
		HasMore:          view.HasMore,
		UnreadCount:      view.UnreadCount,
		NewMessages:      view.NewMessages,
		Draft:            view.Draft,
	}
}

func messageResponse(m model.Message) Message {
	var readAt *string
	if m.ReadAt != nil {
		timestamp := m.ReadAt.Format(time.RFC3339)
		readAt = &timestamp
	}

	conversationUuid := ""
	if m.ConversationID != uuid.Nil {
		conversationUuid = m.ConversationID.String()
	}

	return Message{
		Uuid:             m.ID,
		ConversationUuid: conversationUuid,
		SenderUuid:       m.SenderID.String(),
		Content:          m.Content,
		SentAt:           m.SentAt.Format(time.RFC3339),
		ReadAt:           readAt,
		Confirmed:        m.Confirmed(),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}
