package handlers

import (
	"context"

	"github.com/janhq/furniture-api/internal/domain/conversation"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/requests"
)

// ConversationHandler relays chat turns.
type ConversationHandler struct {
	service *conversation.Service
}

// NewConversationHandler creates a new conversation handler.
func NewConversationHandler(service *conversation.Service) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// HandleTurn converts the request DTO and runs one turn.
func (h *ConversationHandler) HandleTurn(ctx context.Context, req requests.ConversationRequest) conversation.Result {
	history := make([]conversation.HistoryEntry, 0, len(req.ConversationHistory))
	for _, entry := range req.ConversationHistory {
		history = append(history, conversation.HistoryEntry(entry))
	}
	return h.service.HandleTurn(ctx, conversation.Turn{
		UserMessage: req.Message(),
		History:     history,
		CurrentStep: req.Step(),
		Data:        req.ConversationData,
	})
}
