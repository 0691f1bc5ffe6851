package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/wire"

	"github.com/janhq/furniture-api/internal/interfaces/httpserver/requests"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Furniture    *FurnitureHandler
	Conversation *ConversationHandler
	Agent        *AgentHandler
	Validate     *validator.Validate
}

// NewProvider creates a new handler provider.
func NewProvider(furniture *FurnitureHandler, conv *ConversationHandler, agentHandler *AgentHandler) *Provider {
	return &Provider{
		Furniture:    furniture,
		Conversation: conv,
		Agent:        agentHandler,
		Validate:     requests.NewValidator(),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewFurnitureHandler,
	NewConversationHandler,
	NewAgentHandler,
	NewProvider,
)
