package catalogdata

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/furniture-api/internal/domain/catalog"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	require.Equal(t, 16, cat.Len())

	items := cat.List()
	assert.Equal(t, "Mid-Century Sofa", items[0].Name)
	assert.Equal(t, 799, items[0].Price)
	assert.Equal(t, "Platform Bed Frame", items[15].Name)
	assert.Equal(t, "natural pine", items[15].Properties.Color)

	for i, item := range items {
		assert.NotEmpty(t, item.Name, "item %d", i)
		assert.GreaterOrEqual(t, item.Price, 0, "item %d", i)
		assert.NotEmpty(t, item.Properties.Type, "item %d", i)
		assert.NotEmpty(t, item.Properties.Style, "item %d", i)
		assert.NotEmpty(t, item.Properties.Material, "item %d", i)
		assert.NotEmpty(t, item.Properties.Color, "item %d", i)
		assert.NotEmpty(t, item.Properties.Dimensions, "item %d", i)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`
items:
  - name: Stool
    price: 10
    weight: 3
    properties: {type: stool, style: plain, material: wood, color: red, dimensions: 1x1x1 in}
    description: small
`))
	assert.Error(t, err)
}

func TestParseRejectsEmptyCatalog(t *testing.T) {
	_, err := Parse([]byte("items: []\n"))
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestParseRejectsInvalidItem(t *testing.T) {
	_, err := Parse([]byte(`
items:
  - name: Stool
    price: -1
    properties: {type: stool, style: plain, material: wood, color: red, dimensions: 1x1x1 in}
    description: small
`))
	assert.Error(t, err)
}

func TestEmbeddedListingHead(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	want := []string{
		"0: Mid-Century Sofa ($799) - A compact brown 2-seater with tufted cushions and wooden legs. Style: mid-century modern",
		"1: Beige Armchair ($349) - Comfortable beige armchair with clean lines and wide arms. Style: contemporary",
	}
	got := strings.Split(cat.Listing(), "\n")
	require.Len(t, got, 16)
	if diff := cmp.Diff(want, got[:2]); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}
