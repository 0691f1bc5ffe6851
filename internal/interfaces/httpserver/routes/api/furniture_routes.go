package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janhq/furniture-api/internal/interfaces/httpserver/handlers"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/requests"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/responses"
)

// RegisterFurnitureRoutes registers the catalog routes.
func RegisterFurnitureRoutes(router gin.IRoutes, handler *handlers.FurnitureHandler, provider *handlers.Provider) {
	router.GET("/furniture", listFurniture(handler))
	router.POST("/selected-furniture", selectedFurniture(handler, provider))
}

// listFurniture godoc
// @Summary      List furniture
// @Description  Returns the full 16-item catalog in fixed order.
// @Tags         Furniture API
// @Produce      json
// @Success      200 {array} catalog.Item
// @Router       /api/furniture [get]
func listFurniture(handler *handlers.FurnitureHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.List())
	}
}

// selectedFurniture godoc
// @Summary      Look up selected furniture
// @Description  Returns the items at the given catalog positions, in request order. Unknown positions are skipped.
// @Tags         Furniture API
// @Accept       json
// @Produce      json
// @Param        request body requests.SelectedFurnitureRequest true "Catalog positions"
// @Success      200 {array} catalog.SelectedItem
// @Failure      400 {object} responses.ErrorResponse
// @Router       /api/selected-furniture [post]
func selectedFurniture(handler *handlers.FurnitureHandler, provider *handlers.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.SelectedFurnitureRequest
		if !bind(c, provider, &req) {
			return
		}
		c.JSON(http.StatusOK, handler.Selected(req.SelectedIndices))
	}
}

// bind decodes and validates the JSON body, writing a 400 on failure.
// Decoder errors are attached to the context for the request log only.
func bind(c *gin.Context, provider *handlers.Provider, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(err)
		responses.BadRequest(c, requests.MessageInvalidBody)
		return false
	}
	if err := provider.Validate.Struct(req); err != nil {
		_ = c.Error(err)
		responses.BadRequest(c, requests.Describe(err))
		return false
	}
	return true
}
