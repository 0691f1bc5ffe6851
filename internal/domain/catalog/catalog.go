package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCatalog is returned when no items are supplied.
var ErrEmptyCatalog = errors.New("catalog has no items")

// Catalog is the read-only, process-wide furniture list.
type Catalog struct {
	items []Item
}

// New validates items and builds a Catalog from a private copy of them.
func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, item := range items {
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	owned := make([]Item, len(items))
	copy(owned, items)
	return &Catalog{items: owned}, nil
}

func validateItem(item Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return errors.New("name is required")
	}
	if item.Price < 0 {
		return fmt.Errorf("price must be non-negative, got %d", item.Price)
	}
	p := item.Properties
	for key, value := range map[string]string{
		"type":       p.Type,
		"style":      p.Style,
		"material":   p.Material,
		"color":      p.Color,
		"dimensions": p.Dimensions,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("property %q is required", key)
		}
	}
	return nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// List returns the items in catalog order. Callers get their own copy.
func (c *Catalog) List() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Contains reports whether index addresses a catalog item.
func (c *Catalog) Contains(index int) bool {
	return index >= 0 && index < len(c.items)
}

// SelectByIndices returns the addressed items in the order of indices.
// Out-of-range indices are skipped; duplicates are kept.
func (c *Catalog) SelectByIndices(indices []int) []SelectedItem {
	selected := make([]SelectedItem, 0, len(indices))
	for _, index := range indices {
		if !c.Contains(index) {
			continue
		}
		selected = append(selected, SelectedItem{
			Item:          c.items[index],
			OriginalIndex: index,
		})
	}
	return selected
}

// Listing renders one line per item for model prompts:
//
//	0: Mid-Century Sofa ($799) - A compact brown 2-seater ... Style: mid-century modern
func (c *Catalog) Listing() string {
	var b strings.Builder
	for i, item := range c.items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d: %s ($%d) - %s Style: %s",
			i, item.Name, item.Price, item.Description, item.Properties.Style)
	}
	return b.String()
}
