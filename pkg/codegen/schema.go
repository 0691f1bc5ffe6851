package codegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/invopop/jsonschema"

	"github.com/janhq/furniture-api/internal/domain/catalog"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/requests"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/responses"
)

// apiTypes are the wire types published as JSON Schema, keyed by file stem.
var apiTypes = map[string]any{
	"furniture-item":             catalog.Item{},
	"selected-furniture-item":    catalog.SelectedItem{},
	"conversation-request":       requests.ConversationRequest{},
	"conversation-response":      responses.ConversationResponse{},
	"selected-furniture-request": requests.SelectedFurnitureRequest{},
	"house-prompt-request":       requests.HousePromptRequest{},
	"agent-response":             responses.AgentResponse{},
	"error-response":             responses.ErrorResponse{},
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		ExpandedStruct:            true,
	}
}

// Names returns the schema names in sorted order.
func Names() []string {
	names := make([]string, 0, len(apiTypes))
	for name := range apiTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema reflects the named API type.
func Schema(name string) (*jsonschema.Schema, error) {
	typ, ok := apiTypes[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}
	schema := newReflector().Reflect(typ)
	schema.Title = name
	return schema, nil
}

// MarshalSchema renders the named schema as indented JSON.
func MarshalSchema(name string) ([]byte, error) {
	schema, err := Schema(name)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(schema, "", "  ")
}

// GenerateJSONSchema writes one <name>.schema.json per API type into outputDir.
func GenerateJSONSchema(outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	written := make([]string, 0, len(apiTypes))
	for _, name := range Names() {
		data, err := MarshalSchema(name)
		if err != nil {
			return written, fmt.Errorf("marshal %s schema: %w", name, err)
		}
		path := filepath.Join(outputDir, name+".schema.json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
