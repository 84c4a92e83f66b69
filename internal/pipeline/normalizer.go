package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"cmdcenter/internal/models"
	"cmdcenter/internal/tabular"
)

const (
	defaultVendor   = "Unknown"
	defaultCategory = "General"
	defaultStatus   = "Active"
	defaultQuantity = 999

	maxVendorLen   = 30
	maxCategoryLen = 40
)

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// topRowTrue are the values that keep a row when a top-row/primary-
// variant column is mapped; anything else drops the row.
var topRowTrue = map[string]bool{"true": true, "1": true, "yes": true}

// normalizeRows walks the raw rows once, in order, applying the column
// map, the top-row filter and ASIN/handle dedup, and builds a scored
// canonical product per surviving row. Returns the products and the
// number of removed rows.
func (p *Processor) normalizeRows(rows []tabular.Row, cm ColumnMap) ([]*models.Product, int) {
	seenASIN := make(map[string]bool)
	seenHandle := make(map[string]bool)

	var products []*models.Product
	removed := 0

	for _, row := range rows {
		// Bulk exports repeat a product per variant; only the row
		// flagged as the top/primary variant survives.
		if col := cm[FieldTopRow]; col != "" {
			if !topRowTrue[strings.ToLower(strings.TrimSpace(row[col]))] {
				removed++
				continue
			}
		}

		title := strings.Trim(strings.TrimSpace(cell(row, cm, FieldTitle)), `"'`)
		asin := ExtractASIN(cell(row, cm, FieldASIN))
		handle := strings.TrimSpace(cell(row, cm, FieldHandle))

		if title == "" && asin == "" && handle == "" {
			removed++
			continue
		}

		// ASIN dedup takes precedence: a row with a fresh handle but a
		// seen ASIN is still a duplicate.
		if asin != "" && seenASIN[asin] {
			removed++
			continue
		}
		if asin == "" && handle != "" && seenHandle[handle] {
			removed++
			continue
		}
		if asin != "" {
			seenASIN[asin] = true
		}
		if handle != "" {
			seenHandle[handle] = true
		}

		products = append(products, p.buildProduct(row, cm, title, asin, handle))
	}

	return products, removed
}

func (p *Processor) buildProduct(row tabular.Row, cm ColumnMap, title, asin, handle string) *models.Product {
	if title == "" {
		if asin != "" {
			title = "Amazon Product " + asin
		} else {
			title = fallbackTitle
		}
	}

	image := strings.TrimSpace(cell(row, cm, FieldImage))
	if !strings.HasPrefix(image, "http") {
		// Relative or partially-qualified URLs are useless downstream.
		image = ""
	}

	prod := &models.Product{
		Title:        title,
		ASIN:         asin,
		Handle:       handle,
		Price:        parsePrice(cell(row, cm, FieldPrice)),
		ComparePrice: parsePrice(cell(row, cm, FieldComparePrice)),
		Image:        image,
		Description:  p.cleaner.Clean(cell(row, cm, FieldDescription)),
		Vendor:       capped(valueOr(cell(row, cm, FieldVendor), defaultVendor), maxVendorLen),
		Category:     capped(valueOr(cell(row, cm, FieldCategory), defaultCategory), maxCategoryLen),
		Tags:         strings.TrimSpace(cell(row, cm, FieldTags)),
		Status:       valueOr(cell(row, cm, FieldStatus), defaultStatus),
		Quantity:     parseQuantity(cell(row, cm, FieldQuantity)),
		StockStatus:  models.StockUnknown,
	}
	p.gates.Evaluate(prod)
	return prod
}

// cell pulls the raw value feeding a canonical field, or "" when the
// field is unmapped.
func cell(row tabular.Row, cm ColumnMap, field Field) string {
	col := cm[field]
	if col == "" {
		return ""
	}
	return row[col]
}

// parsePrice strips everything but digits and dots before parsing.
// Dirty or absent values become 0; data quality is signaled through
// the price gate, never by failing the row.
func parsePrice(raw string) float64 {
	cleaned := nonPriceChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseQuantity(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return defaultQuantity
	}
	return v
}

func valueOr(raw, fallback string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return fallback
}

func capped(s string, max int) string {
	if len(s) > max {
		return strings.TrimSpace(s[:max])
	}
	return s
}
