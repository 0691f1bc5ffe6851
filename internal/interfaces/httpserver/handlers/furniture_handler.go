package handlers

import (
	"github.com/janhq/furniture-api/internal/domain/catalog"
)

// FurnitureHandler serves catalog reads.
type FurnitureHandler struct {
	catalog *catalog.Catalog
}

// NewFurnitureHandler creates a new furniture handler.
func NewFurnitureHandler(cat *catalog.Catalog) *FurnitureHandler {
	return &FurnitureHandler{catalog: cat}
}

// List returns the full catalog.
func (h *FurnitureHandler) List() []catalog.Item {
	return h.catalog.List()
}

// Selected returns the items addressed by indices, skipping unknown ones.
func (h *FurnitureHandler) Selected(indices []int) []catalog.SelectedItem {
	return h.catalog.SelectByIndices(indices)
}
