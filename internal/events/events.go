package events

import "time"

// Event types flowing through the product-events topic.
const (
	TypeImportCompleted = "import.completed"
	TypeProductUpdated  = "product.updated"
	TypePushRequested   = "push.requested"
)

type Event struct {
	Type      string                 `json:"type"`
	ImportID  string                 `json:"import_id,omitempty"`
	ProductID string                 `json:"product_id,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}
