package catalog

// Properties describes a furniture item. Field order is the wire order.
type Properties struct {
	Type       string `json:"type" yaml:"type" jsonschema:"required"`
	Style      string `json:"style" yaml:"style" jsonschema:"required"`
	Material   string `json:"material" yaml:"material" jsonschema:"required"`
	Color      string `json:"color" yaml:"color" jsonschema:"required"`
	Dimensions string `json:"dimensions" yaml:"dimensions" jsonschema:"required"`
}

// Item is one catalog entry, identified by its position in the catalog.
type Item struct {
	Name        string     `json:"name" yaml:"name" jsonschema:"required"`
	Price       int        `json:"price" yaml:"price" jsonschema:"required,minimum=0"`
	Properties  Properties `json:"properties" yaml:"properties" jsonschema:"required"`
	Description string     `json:"description" yaml:"description" jsonschema:"required"`
}

// SelectedItem is an Item together with its catalog position.
type SelectedItem struct {
	Item
	OriginalIndex int `json:"original_index" jsonschema:"required,minimum=0"`
}
