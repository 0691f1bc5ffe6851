package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janhq/furniture-api/internal/interfaces/httpserver/handlers"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/requests"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/responses"
)

// RegisterAssistantRoutes registers the model-backed routes.
func RegisterAssistantRoutes(router gin.IRoutes, provider *handlers.Provider) {
	router.POST("/conversation", handleConversation(provider))
	router.POST("/run-agent", runAgent(provider))
}

// handleConversation godoc
// @Summary      Relay a conversation turn
// @Description  Sends the user message with step guidance to the model and returns its reply.
// @Description  Provider failures are reported with status "error" and HTTP 200.
// @Tags         Assistant API
// @Accept       json
// @Produce      json
// @Param        request body requests.ConversationRequest true "Conversation turn"
// @Success      200 {object} responses.ConversationResponse
// @Failure      400 {object} responses.ErrorResponse
// @Router       /api/conversation [post]
func handleConversation(provider *handlers.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ConversationRequest
		if !bind(c, provider, &req) {
			return
		}
		result := provider.Conversation.HandleTurn(c.Request.Context(), req)
		c.JSON(http.StatusOK, responses.NewConversationResponse(result))
	}
}

// runAgent godoc
// @Summary      Run the furniture selection agent
// @Description  Asks the model to pick 8-12 catalog items for the described space.
// @Description  An unparseable answer falls back to a fixed selection with status "complete".
// @Tags         Assistant API
// @Accept       json
// @Produce      json
// @Param        request body requests.HousePromptRequest true "Space description"
// @Success      200 {object} responses.AgentResponse
// @Failure      400 {object} responses.ErrorResponse
// @Router       /api/run-agent [post]
func runAgent(provider *handlers.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.HousePromptRequest
		if !bind(c, provider, &req) {
			return
		}
		result := provider.Agent.Run(c.Request.Context(), req.Prompt())
		c.JSON(http.StatusOK, responses.NewAgentResponse(result))
	}
}
