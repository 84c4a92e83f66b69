package shopify

import (
	"testing"

	"cmdcenter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToShopify(t *testing.T) {
	tr := NewTransformer()

	p := &models.Product{
		Title:        "Blue Widget Pro",
		ASIN:         "B012345678",
		Price:        19.99,
		ComparePrice: 29.99,
		SellPrice:    33.98,
		Image:        "https://cdn.example.com/w.jpg",
		Description:  "A detailed description over thirty characters.",
		Vendor:       "Acme",
		Category:     "Widgets",
		Tags:         "widget, blue",
		Status:       "Active",
		Quantity:     42,
		Handle:       "blue-widget-pro",
		GateCount:    5,
	}

	out := tr.ToShopify(p)

	assert.Equal(t, "Blue Widget Pro", out.Title)
	assert.Equal(t, "Acme", out.Vendor)
	assert.Equal(t, "Widgets", out.ProductType)
	assert.Equal(t, "blue-widget-pro", out.Handle)
	assert.Equal(t, "active", out.Status)

	require.Len(t, out.Variants, 1)
	assert.Equal(t, "33.98", out.Variants[0].Price, "push uses the derived sell price")
	assert.Equal(t, "29.99", out.Variants[0].CompareAtPrice)
	assert.Equal(t, "B012345678", out.Variants[0].Barcode)

	require.Len(t, out.Images, 1)
	assert.Equal(t, "https://cdn.example.com/w.jpg", out.Images[0].Src)
}

func TestToShopifyDraftWhenNotReady(t *testing.T) {
	tr := NewTransformer()

	p := &models.Product{Title: "Half Ready Widget", Status: "Active", GateCount: 3}
	assert.Equal(t, "draft", tr.ToShopify(p).Status)
}

func TestToShopifyFallsBackToRawPrice(t *testing.T) {
	tr := NewTransformer()

	p := &models.Product{Title: "Unpriced Widget", Price: 12.5}
	out := tr.ToShopify(p)
	assert.Equal(t, "12.50", out.Variants[0].Price)
}

func TestToShopifyOmitsEmptyImage(t *testing.T) {
	tr := NewTransformer()

	p := &models.Product{Title: "Imageless Widget"}
	assert.Empty(t, tr.ToShopify(p).Images)
}
