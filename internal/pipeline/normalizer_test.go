package pipeline

import (
	"testing"

	"cmdcenter/internal/logger"
	"cmdcenter/internal/models"
	"cmdcenter/internal/tabular"

	"github.com/stretchr/testify/assert"
)

func newTestProcessor() *Processor {
	return New(nil, logger.New("error"))
}

func TestNormalizeTopRowFilter(t *testing.T) {
	p := newTestProcessor()
	headers := []string{"Top Row", "Handle", "Title"}
	cm := MapColumns(headers)

	rows := []tabular.Row{
		{"Top Row": "TRUE", "Handle": "widget-a", "Title": "Widget A"},
		{"Top Row": "FALSE", "Handle": "widget-a", "Title": "Widget A variant"},
		{"Top Row": "1", "Handle": "widget-b", "Title": "Widget B"},
		{"Top Row": "yes", "Handle": "widget-c", "Title": "Widget C"},
		{"Top Row": "", "Handle": "widget-d", "Title": "Widget D"},
	}

	products, removed := p.normalizeRows(rows, cm)
	assert.Len(t, products, 3)
	assert.Equal(t, 2, removed)
}

func TestNormalizeDedup(t *testing.T) {
	p := newTestProcessor()

	t.Run("asin dedup ignores quoting and case", func(t *testing.T) {
		headers := []string{"Title", "ASIN"}
		cm := MapColumns(headers)
		rows := []tabular.Row{
			{"Title": "First listing", "ASIN": `"b012345678"`},
			{"Title": "Second listing", "ASIN": "B012345678"},
		}
		products, removed := p.normalizeRows(rows, cm)
		assert.Len(t, products, 1)
		assert.Equal(t, 1, removed)
		assert.Equal(t, "B012345678", products[0].ASIN)
		assert.Equal(t, "First listing", products[0].Title)
	})

	t.Run("handle dedup when no asin", func(t *testing.T) {
		headers := []string{"Title", "Handle"}
		cm := MapColumns(headers)
		rows := []tabular.Row{
			{"Title": "Widget row one", "Handle": "widget"},
			{"Title": "Widget row two", "Handle": "widget"},
			{"Title": "Gadget row", "Handle": "gadget"},
		}
		products, removed := p.normalizeRows(rows, cm)
		assert.Len(t, products, 2)
		assert.Equal(t, 1, removed)
	})

	t.Run("asin dedup outranks fresh handle", func(t *testing.T) {
		headers := []string{"Title", "ASIN", "Handle"}
		cm := MapColumns(headers)
		rows := []tabular.Row{
			{"Title": "Original", "ASIN": "B012345678", "Handle": "original"},
			{"Title": "Relisted", "ASIN": "B012345678", "Handle": "relisted"},
		}
		products, removed := p.normalizeRows(rows, cm)
		assert.Len(t, products, 1)
		assert.Equal(t, 1, removed)
	})
}

func TestNormalizeStructurallyEmptyRows(t *testing.T) {
	p := newTestProcessor()
	headers := []string{"Title", "ASIN", "Handle", "Price"}
	cm := MapColumns(headers)

	rows := []tabular.Row{
		{"Title": "", "ASIN": "", "Handle": "", "Price": "9.99"},
		{"Title": "Real product", "ASIN": "", "Handle": "", "Price": "9.99"},
	}
	products, removed := p.normalizeRows(rows, cm)
	assert.Len(t, products, 1)
	assert.Equal(t, 1, removed)
}

func TestNormalizeFieldExtraction(t *testing.T) {
	p := newTestProcessor()
	headers := []string{
		"Title", "ASIN", "Variant Price", "Compare At Price", "Image Src",
		"Body (HTML)", "Vendor", "Product Category", "Tags", "Status", "Variant Inventory Qty",
	}
	cm := MapColumns(headers)

	rows := []tabular.Row{{
		"Title":                 `"Premium Wall Mount"`,
		"ASIN":                  "b0abcdef12",
		"Variant Price":         "$19.99",
		"Compare At Price":      "USD 29.99",
		"Image Src":             "https://cdn.example.com/mount.jpg",
		"Body (HTML)":           "<p>Heavy duty mount rated for fifty pounds of load.</p>",
		"Vendor":                "Acme",
		"Product Category":      "Home Improvement",
		"Tags":                  "mount, wall",
		"Status":                "Active",
		"Variant Inventory Qty": "42",
	}}

	products, removed := p.normalizeRows(rows, cm)
	assert.Equal(t, 0, removed)
	assert.Len(t, products, 1)

	prod := products[0]
	assert.Equal(t, "Premium Wall Mount", prod.Title)
	assert.Equal(t, "B0ABCDEF12", prod.ASIN)
	assert.Equal(t, 19.99, prod.Price)
	assert.Equal(t, 29.99, prod.ComparePrice)
	assert.Equal(t, "https://cdn.example.com/mount.jpg", prod.Image)
	assert.Equal(t, "Heavy duty mount rated for fifty pounds of load.", prod.Description)
	assert.Equal(t, "Acme", prod.Vendor)
	assert.Equal(t, "Home Improvement", prod.Category)
	assert.Equal(t, "mount, wall", prod.Tags)
	assert.Equal(t, "Active", prod.Status)
	assert.Equal(t, 42, prod.Quantity)
	assert.Equal(t, models.StockInStock, prod.StockStatus)
	assert.Equal(t, 5, prod.GateCount)
}

func TestNormalizeDefaults(t *testing.T) {
	p := newTestProcessor()
	headers := []string{"Title", "Price", "Image", "Quantity", "Vendor", "Category"}
	cm := MapColumns(headers)

	rows := []tabular.Row{{
		"Title":    "Bare Minimum Product",
		"Price":    "not a number",
		"Image":    "/relative/path.jpg",
		"Quantity": "lots",
		"Vendor":   "",
		"Category": "",
	}}

	products, _ := p.normalizeRows(rows, cm)
	prod := products[0]

	assert.Equal(t, 0.0, prod.Price, "unparseable price defaults to zero")
	assert.Empty(t, prod.Image, "relative image URLs are discarded")
	assert.Equal(t, 999, prod.Quantity, "unparseable quantity defaults to 999")
	assert.Equal(t, "Unknown", prod.Vendor)
	assert.Equal(t, "General", prod.Category)
	assert.Equal(t, "Active", prod.Status)
	assert.Equal(t, models.StockUnknown, prod.StockStatus)
}

func TestNormalizeTitleFallbacks(t *testing.T) {
	p := newTestProcessor()
	headers := []string{"Title", "ASIN"}
	cm := MapColumns(headers)

	t.Run("asin-backed fallback", func(t *testing.T) {
		rows := []tabular.Row{{"Title": "", "ASIN": "B012345678"}}
		products, _ := p.normalizeRows(rows, cm)
		assert.Equal(t, "Amazon Product B012345678", products[0].Title)
		assert.Equal(t, models.GatePass, products[0].Gates.Title)
	})

	t.Run("unknown product fallback", func(t *testing.T) {
		// An 11-char code extracts no ASIN, so the row needs a handle
		// to avoid the structurally-empty drop.
		headers := []string{"Title", "ASIN", "Handle"}
		cm := MapColumns(headers)
		rows := []tabular.Row{{"Title": "", "ASIN": "B0123456789", "Handle": "mystery-item"}}
		products, _ := p.normalizeRows(rows, cm)
		assert.Equal(t, "Unknown Product", products[0].Title)
		assert.Equal(t, models.GateFail, products[0].Gates.Title)
		assert.Equal(t, models.GateFail, products[0].Gates.ASIN)
	})
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"19.99", 19.99},
		{"$19.99", 19.99},
		{"USD 1,299.00", 1299.00},
		{"", 0},
		{"free", 0},
		{"-5", 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parsePrice(tt.input), "input %q", tt.input)
	}
}
