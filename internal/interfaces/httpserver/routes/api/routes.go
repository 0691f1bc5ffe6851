package api

import (
	"github.com/gin-gonic/gin"

	"github.com/janhq/furniture-api/internal/interfaces/httpserver/handlers"
)

// Routes registers the /api endpoints.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes creates the /api route group.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{handlers: handlerProvider}
}

// Register mounts every /api route on engine.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/api")
	RegisterFurnitureRoutes(group, r.handlers.Furniture, r.handlers)
	RegisterAssistantRoutes(group, r.handlers)
}
