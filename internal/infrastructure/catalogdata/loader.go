package catalogdata

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/janhq/furniture-api/internal/domain/catalog"
)

//go:embed furniture.yaml
var furnitureYAML []byte

type document struct {
	Items []catalog.Item `yaml:"items"`
}

// Load builds the catalog from the embedded furniture.yaml.
func Load() (*catalog.Catalog, error) {
	return Parse(furnitureYAML)
}

// Parse builds a catalog from a YAML document with a top-level "items" list.
// Unknown keys are rejected.
func Parse(data []byte) (*catalog.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	cat, err := catalog.New(doc.Items)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}

// MustLoad is Load for tests and tools where the embedded data is known good.
func MustLoad() *catalog.Catalog {
	cat, err := Load()
	if err != nil {
		panic(err)
	}
	return cat
}
