package shopify

// Product is the payload shape the Shopify Admin API accepts when
// creating or updating a product.
type Product struct {
	ID          int64     `json:"id,omitempty"`
	Title       string    `json:"title"`
	BodyHTML    string    `json:"body_html,omitempty"`
	Vendor      string    `json:"vendor,omitempty"`
	ProductType string    `json:"product_type,omitempty"`
	Handle      string    `json:"handle,omitempty"`
	Status      string    `json:"status,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
	Images      []Image   `json:"images,omitempty"`
}

// Variant carries the sell-side pricing for the single default variant
// the push creates.
type Variant struct {
	Price             string `json:"price"`
	CompareAtPrice    string `json:"compare_at_price,omitempty"`
	Sku               string `json:"sku,omitempty"`
	Barcode           string `json:"barcode,omitempty"`
	InventoryQuantity int    `json:"inventory_quantity,omitempty"`
}

type Image struct {
	Src string `json:"src"`
}

// ProductResponse wraps the single-product envelope the API returns.
type ProductResponse struct {
	Product Product `json:"product"`
}
