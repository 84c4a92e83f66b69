package pipeline

import "strings"

// Field is one of the canonical product fields the mapper can resolve.
type Field string

const (
	FieldTitle        Field = "title"
	FieldASIN         Field = "asin"
	FieldPrice        Field = "price"
	FieldComparePrice Field = "comparePrice"
	FieldImage        Field = "image"
	FieldDescription  Field = "description"
	FieldVendor       Field = "vendor"
	FieldCategory     Field = "category"
	FieldTags         Field = "tags"
	FieldStatus       Field = "status"
	FieldQuantity     Field = "quantity"
	FieldHandle       Field = "handle"
	FieldTopRow       Field = "topRow"
)

// ColumnMap assigns each canonical field the original header string
// that supplies it, or "" when no header matched. Built once per file
// and reused for every row.
type ColumnMap map[Field]string

// matchRule is one candidate substring with the substrings that
// disqualify a header even when the candidate is present.
type matchRule struct {
	contains string
	excludes []string
}

// fieldRules is the prioritized rule table per canonical field. Order
// matters: the first candidate that hits any header wins the field.
// None of these lists is exhaustive; a miss just leaves the field
// unmapped and downstream defaults take over.
var fieldRules = map[Field][]matchRule{
	FieldTitle: {
		{contains: "title", excludes: []string{"option", "meta", "alt", "seo"}},
		{contains: "product name"},
		{contains: "item name"},
		{contains: "name", excludes: []string{"file", "vendor", "brand", "column"}},
		{contains: "product", excludes: []string{"id", "type", "category", "url", "code"}},
	},
	FieldASIN: {
		{contains: "asin"},
		{contains: "amazon id"},
	},
	FieldPrice: {
		{contains: "variant price"},
		{contains: "sale price"},
		{contains: "source price"},
		{contains: "price", excludes: []string{"compare", "cost", "retail", "msrp", "old"}},
	},
	FieldComparePrice: {
		{contains: "compare at price"},
		{contains: "compare price"},
		{contains: "compare"},
		{contains: "msrp"},
		{contains: "retail price"},
		{contains: "original price"},
		{contains: "list price"},
	},
	FieldImage: {
		{contains: "image src"},
		{contains: "image url"},
		{contains: "main image"},
		{contains: "image", excludes: []string{"position", "width", "height", "alt"}},
		{contains: "photo"},
		{contains: "picture"},
	},
	FieldDescription: {
		{contains: "body (html)"},
		{contains: "body html"},
		{contains: "description", excludes: []string{"short", "meta", "seo"}},
		{contains: "body"},
		{contains: "details"},
	},
	FieldVendor: {
		{contains: "vendor"},
		{contains: "brand"},
		{contains: "manufacturer"},
		{contains: "supplier"},
	},
	FieldCategory: {
		{contains: "product category"},
		{contains: "product type"},
		{contains: "category", excludes: []string{"id", "tree"}},
		{contains: "type", excludes: []string{"file", "mime", "weight"}},
		{contains: "department"},
	},
	FieldTags: {
		{contains: "tags"},
		{contains: "keywords"},
		{contains: "labels"},
	},
	FieldStatus: {
		{contains: "status", excludes: []string{"inventory", "order", "sync", "stock"}},
		{contains: "published", excludes: []string{"scope", "at"}},
	},
	FieldQuantity: {
		{contains: "variant inventory qty"},
		{contains: "inventory qty"},
		{contains: "quantity"},
		{contains: "qty"},
		{contains: "stock", excludes: []string{"status"}},
		{contains: "inventory", excludes: []string{"policy", "tracker", "management"}},
	},
	FieldHandle: {
		{contains: "handle"},
		{contains: "slug"},
		{contains: "sku"},
		{contains: "model"},
	},
	FieldTopRow: {
		{contains: "top row"},
		{contains: "main variant"},
		{contains: "is primary"},
	},
}

// MapColumns resolves every canonical field against the file's headers.
// Matching is case- and whitespace-insensitive; mapped values are
// always original header strings.
func MapColumns(headers []string) ColumnMap {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	cm := make(ColumnMap, len(fieldRules))
	for field, rules := range fieldRules {
		cm[field] = matchHeader(lowered, headers, rules)
	}
	return cm
}

func matchHeader(lowered, original []string, rules []matchRule) string {
	for _, rule := range rules {
		for i, h := range lowered {
			if h == rule.contains {
				return original[i]
			}
			if strings.Contains(h, rule.contains) && !containsAny(h, rule.excludes) {
				return original[i]
			}
		}
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
