package handlers

import (
	"context"

	"github.com/janhq/furniture-api/internal/domain/agent"
)

// AgentHandler runs the furniture selection agent.
type AgentHandler struct {
	service *agent.Service
}

// NewAgentHandler creates a new agent handler.
func NewAgentHandler(service *agent.Service) *AgentHandler {
	return &AgentHandler{service: service}
}

// Run selects furniture for housePrompt.
func (h *AgentHandler) Run(ctx context.Context, housePrompt string) agent.Result {
	return h.service.SelectFurniture(ctx, housePrompt)
}
