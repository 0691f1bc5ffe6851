// Package responses contains HTTP response DTOs for the furniture API.
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janhq/furniture-api/internal/domain/agent"
	"github.com/janhq/furniture-api/internal/domain/conversation"
)

// ErrorResponse is returned for malformed requests.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message"`
}

// MessageResponse is the root banner.
type MessageResponse struct {
	Message string `json:"message" example:"Furniture API Server"`
}

// ConversationResponse is the body of POST /api/conversation.
type ConversationResponse struct {
	Status      string  `json:"status" example:"success"`
	AIResponse  *string `json:"ai_response,omitempty"`
	AdvanceStep bool    `json:"advance_step"`
	Message     string  `json:"message,omitempty"`
}

// AgentResponse is the body of POST /api/run-agent.
type AgentResponse struct {
	Status          string  `json:"status" example:"complete"`
	SelectedIndices *[]int  `json:"selected_indices,omitempty"`
	AIReasoning     *string `json:"ai_reasoning,omitempty"`
	Message         string  `json:"message,omitempty"`
}

// NewConversationResponse maps a turn result to its wire shape.
func NewConversationResponse(result conversation.Result) ConversationResponse {
	resp := ConversationResponse{
		Status:      result.Status,
		AdvanceStep: result.AdvanceStep(),
	}
	if result.Status == conversation.StatusSuccess {
		reply := result.Reply
		resp.AIResponse = &reply
		return resp
	}
	resp.Message = result.Message
	return resp
}

// NewAgentResponse maps an agent result to its wire shape.
func NewAgentResponse(result agent.Result) AgentResponse {
	if result.Status != agent.StatusComplete {
		return AgentResponse{Status: result.Status, Message: result.Message}
	}
	indices := result.Selection.Indices
	if indices == nil {
		indices = []int{}
	}
	reasoning := result.Selection.Reasoning
	return AgentResponse{
		Status:          result.Status,
		SelectedIndices: &indices,
		AIReasoning:     &reasoning,
	}
}

// BadRequest writes a 400 with the error envelope.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Status: "error", Message: message})
}
