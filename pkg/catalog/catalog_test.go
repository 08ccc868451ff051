package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gift-recommender-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `[
  {
    "_id": {"$oid": "65f0c0ffee0000000000abcd"},
    "name": "ساعة يد نسائية",
    "description": "ساعة أنيقة بسوار جلد",
    "price": 750,
    "tags": ["watches", "accessories"],
    "occasion": "birthday",
    "season": ["spring", "summer"],
    "targetGender": "female",
    "ageGroup": "teen"
  },
  {
    "id": "0b7d8a5e-3c1f-4f0a-9d43-7d2a3a2b1c11",
    "name": "كتاب طبخ",
    "description": "وصفات مصرية",
    "price": 120,
    "tags": "books",
    "subCategory": "cooking"
  },
  {
    "id": 42,
    "name": "mug"
  }
]`

func TestParseProducts(t *testing.T) {
	products, err := ParseProducts([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, products, 3)

	watch := products[0]
	assert.Equal(t, "ساعة يد نسائية", watch.Name)
	assert.Equal(t, entity.StringList{"watches", "accessories"}, watch.Tags)
	assert.Equal(t, entity.StringList{"birthday"}, watch.Occasion)
	assert.Equal(t, "female", watch.TargetGender)
	assert.Equal(t, uuid.NewSHA1(catalogNamespace, []byte("65f0c0ffee0000000000abcd")), watch.Id)

	book := products[1]
	assert.Equal(t, "0b7d8a5e-3c1f-4f0a-9d43-7d2a3a2b1c11", book.Id.String())
	assert.Equal(t, entity.StringList{"books"}, book.Tags)
	assert.Equal(t, "cooking", book.SubCategory)

	assert.Equal(t, uuid.NewSHA1(catalogNamespace, []byte("42")), products[2].Id)
}

func TestParseProducts_LoosePrices(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  float64
	}{
		{"number", `250`, 250},
		{"numeric string", `"250"`, 250},
		{"thousands separator", `"1,200.5"`, 1200.5},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := ParseProducts([]byte(`[{"id": 1, "name": "شنطة", "price": ` + tt.price + `}]`))
			require.NoError(t, err)
			require.Len(t, products, 1)
			assert.InDelta(t, tt.want, products[0].Price, 1e-9)
		})
	}
}

func TestDecodeProducts_SkipsBadRecords(t *testing.T) {
	raw := `[
	  {"id": 1, "name": "ساعة", "price": "250"},
	  {"id": 2, "name": "شنطة", "price": "غالي"},
	  {"id": 3, "name": "كتاب", "price": {"amount": 5}},
	  "not a record",
	  {"id": 5, "name": "برفان", "price": 900}
	]`

	products, skipped, err := DecodeProducts([]byte(raw))
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "ساعة", products[0].Name)
	assert.Equal(t, 250.0, products[0].Price)
	assert.Equal(t, "برفان", products[1].Name)
	assert.Equal(t, uuid.NewSHA1(catalogNamespace, []byte("5")), products[1].Id)

	require.Len(t, skipped, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{skipped[0].Index, skipped[1].Index, skipped[2].Index})

	kept, err := ParseProducts([]byte(raw))
	require.NoError(t, err)
	assert.Len(t, kept, 2)
}

func TestParseProducts_StableIds(t *testing.T) {
	a, err := ParseProducts([]byte(sampleCatalog))
	require.NoError(t, err)
	b, err := ParseProducts([]byte(sampleCatalog))
	require.NoError(t, err)
	assert.Equal(t, a[0].Id, b[0].Id)
}

func TestParseProducts_Invalid(t *testing.T) {
	_, err := ParseProducts([]byte(`{"name": "not an array"}`))
	assert.Error(t, err)
}

func TestFileSource_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	src := NewFileSource(path)
	products, err := src.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)

	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "one"}]`), 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	products, err = src.All(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "one", products[0].Name)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).All(context.Background())
	assert.Error(t, err)
}

func TestStaticSource(t *testing.T) {
	src := StaticSource{{Name: "a"}, {Name: "b"}}
	products, err := src.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.All(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	empty, err := StaticSource(nil).All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
