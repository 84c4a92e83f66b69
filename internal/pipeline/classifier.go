package pipeline

import (
	"strings"

	"cmdcenter/internal/tabular"
)

// Format is the detected source of an uploaded file.
type Format string

const (
	FormatShopifyBulk Format = "shopify_bulk"
	FormatShopify     Format = "shopify"
	FormatDropship    Format = "dropship"
	FormatEbay        Format = "ebay_file_exchange"
	FormatGenericCSV  Format = "generic_csv"
	FormatASINList    Format = "asin_list"
	FormatUnknown     Format = "unknown"
)

// Label returns the display name shown in import summaries.
func (f Format) Label() string {
	switch f {
	case FormatShopifyBulk:
		return "Shopify bulk export"
	case FormatShopify:
		return "Shopify export"
	case FormatDropship:
		return "Dropship tool export"
	case FormatEbay:
		return "eBay File Exchange"
	case FormatGenericCSV:
		return "Generic CSV"
	case FormatASINList:
		return "ASIN list"
	default:
		return "Unknown format"
	}
}

// asinListSampleRows and asinListThreshold control bare ASIN-list
// detection: files of at most asinListMaxCols columns whose sample
// contains more than asinListThreshold ASIN-shaped cells are treated
// as identifier lists regardless of their headers. The numbers are
// load-bearing for compatibility; do not widen them.
const (
	asinListSampleRows = 30
	asinListThreshold  = 10
	asinListMaxCols    = 4
)

// Classify picks a known source format from the header line alone.
// First match wins; unknown is a normal outcome, not an error.
func Classify(headers []string) Format {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), "_", " ")
	}
	joined := strings.Join(lowered, " ")

	has := func(name string) bool {
		for _, h := range lowered {
			if strings.Contains(h, name) {
				return true
			}
		}
		return false
	}
	hasAny := func(names ...string) bool {
		for _, n := range names {
			if has(n) {
				return true
			}
		}
		return false
	}

	switch {
	case has("top row") && has("handle") && strings.Contains(joined, "image src"):
		return FormatShopifyBulk
	case has("handle") && has("title") && strings.Contains(joined, "image"):
		return FormatShopify
	case strings.Contains(joined, "autods") || strings.Contains(joined, "dsers") ||
		(has("source url") && has("source price")):
		return FormatDropship
	case has("action") && (has("itemid") || has("category")):
		return FormatEbay
	case hasAny("title", "name", "product") && hasAny("price", "cost", "sku"):
		return FormatGenericCSV
	}
	return FormatUnknown
}

// LooksLikeASINList reports whether the file is a bare list of product
// identifiers rather than a structured table. Checked by the
// orchestrator before header classification, which it overrides.
func LooksLikeASINList(headers []string, rows []tabular.Row) bool {
	if len(headers) == 0 || len(headers) > asinListMaxCols {
		return false
	}

	hits := 0
	for i, row := range rows {
		if i >= asinListSampleRows {
			break
		}
		for _, h := range headers {
			cell := strings.TrimSpace(row[h])
			if cell == "" {
				continue
			}
			if strings.Contains(cell, "/dp/") {
				hits++
				continue
			}
			if IsASIN(strings.ToUpper(strings.Trim(cell, `"'`))) {
				hits++
			}
		}
	}
	return hits > asinListThreshold
}
