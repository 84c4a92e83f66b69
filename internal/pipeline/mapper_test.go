package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapColumnsShopifyBulk(t *testing.T) {
	headers := []string{
		"Top Row", "Handle", "Title", "Body (HTML)", "Vendor", "Product Category",
		"Tags", "Image Src", "Image Position", "Variant Price", "Variant Compare At Price",
		"Variant Inventory Qty", "Status",
	}
	cm := MapColumns(headers)

	assert.Equal(t, "Top Row", cm[FieldTopRow])
	assert.Equal(t, "Handle", cm[FieldHandle])
	assert.Equal(t, "Title", cm[FieldTitle])
	assert.Equal(t, "Body (HTML)", cm[FieldDescription])
	assert.Equal(t, "Vendor", cm[FieldVendor])
	assert.Equal(t, "Product Category", cm[FieldCategory])
	assert.Equal(t, "Tags", cm[FieldTags])
	assert.Equal(t, "Image Src", cm[FieldImage])
	assert.Equal(t, "Variant Price", cm[FieldPrice])
	assert.Equal(t, "Variant Compare At Price", cm[FieldComparePrice])
	assert.Equal(t, "Variant Inventory Qty", cm[FieldQuantity])
	assert.Equal(t, "Status", cm[FieldStatus])
}

func TestMapColumnsExclusions(t *testing.T) {
	t.Run("price never maps to compare or cost columns", func(t *testing.T) {
		cm := MapColumns([]string{"Compare At Price", "Item Cost Price", "Price"})
		assert.Equal(t, "Price", cm[FieldPrice])
	})

	t.Run("image skips position and alt columns", func(t *testing.T) {
		cm := MapColumns([]string{"Image Position", "Image Alt Text", "Image"})
		assert.Equal(t, "Image", cm[FieldImage])
	})

	t.Run("title skips option and seo columns", func(t *testing.T) {
		cm := MapColumns([]string{"Option1 Title", "SEO Title", "Title"})
		assert.Equal(t, "Title", cm[FieldTitle])
	})
}

func TestMapColumnsPriority(t *testing.T) {
	// "Variant Price" outranks a plain "Price" column regardless of
	// header order.
	cm := MapColumns([]string{"Price", "Variant Price"})
	assert.Equal(t, "Variant Price", cm[FieldPrice])
}

func TestMapColumnsCaseInsensitive(t *testing.T) {
	cm := MapColumns([]string{"  TITLE  ", "ASIN", "price"})
	assert.Equal(t, "  TITLE  ", cm[FieldTitle], "mapped value keeps the original header string")
	assert.Equal(t, "ASIN", cm[FieldASIN])
	assert.Equal(t, "price", cm[FieldPrice])
}

func TestMapColumnsUnmapped(t *testing.T) {
	cm := MapColumns([]string{"foo", "bar", "baz"})
	for field, header := range cm {
		assert.Empty(t, header, "field %s should be unmapped", field)
	}
}

func TestMapColumnsDropshipExport(t *testing.T) {
	headers := []string{"Product Name", "Source URL", "Source Price", "ASIN", "Supplier", "Keywords"}
	cm := MapColumns(headers)

	assert.Equal(t, "Product Name", cm[FieldTitle])
	assert.Equal(t, "Source Price", cm[FieldPrice])
	assert.Equal(t, "ASIN", cm[FieldASIN])
	assert.Equal(t, "Supplier", cm[FieldVendor])
	assert.Equal(t, "Keywords", cm[FieldTags])
}
