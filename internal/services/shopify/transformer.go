package shopify

import (
	"fmt"
	"strings"

	"cmdcenter/internal/models"
)

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// ToShopify converts a scored canonical product into the push payload.
// The variant price is the derived sell price, not the sourced cost;
// records that never went through pricing fall back to the raw price.
func (t *Transformer) ToShopify(p *models.Product) *Product {
	price := p.SellPrice
	if price == 0 {
		price = p.Price
	}

	variant := Variant{
		Price:             fmt.Sprintf("%.2f", price),
		Barcode:           p.ASIN,
		InventoryQuantity: p.Quantity,
	}
	if p.ComparePrice > 0 {
		variant.CompareAtPrice = fmt.Sprintf("%.2f", p.ComparePrice)
	}

	out := &Product{
		Title:       p.Title,
		BodyHTML:    p.Description,
		Vendor:      p.Vendor,
		ProductType: p.Category,
		Handle:      p.Handle,
		Status:      pushStatus(p),
		Tags:        p.Tags,
		Variants:    []Variant{variant},
	}
	if p.Image != "" {
		out.Images = []Image{{Src: p.Image}}
	}
	return out
}

// pushStatus maps the record's lifecycle status onto Shopify's
// active/draft vocabulary. Anything not fully listing-ready goes up as
// a draft.
func pushStatus(p *models.Product) string {
	if p.GateCount == 5 && strings.EqualFold(p.Status, "active") {
		return "active"
	}
	return "draft"
}
