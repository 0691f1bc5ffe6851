package codegen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFurnitureItem(t *testing.T) {
	data, err := MarshalSchema("furniture-item")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"name", "price", "properties", "description"} {
		assert.Contains(t, props, key)
	}
	assert.ElementsMatch(t, []any{"name", "price", "properties", "description"}, doc["required"])
}

func TestSchemaUnknown(t *testing.T) {
	_, err := Schema("nope")
	assert.Error(t, err)
}

func TestGenerateJSONSchema(t *testing.T) {
	dir := t.TempDir()

	written, err := GenerateJSONSchema(dir)
	require.NoError(t, err)
	assert.Len(t, written, len(Names()))

	_, err = os.Stat(filepath.Join(dir, "agent-response.schema.json"))
	assert.NoError(t, err)
}
