package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GateStatus is the outcome of a single listing-readiness gate.
type GateStatus string

const (
	GatePass GateStatus = "pass"
	GateWarn GateStatus = "warn"
	GateFail GateStatus = "fail"
)

// Gates holds the five listing-readiness checks applied to every product.
type Gates struct {
	Title       GateStatus `json:"title"`
	Image       GateStatus `json:"image"`
	Price       GateStatus `json:"price"`
	ASIN        GateStatus `json:"asin"`
	Description GateStatus `json:"description"`
}

// Statuses returns the gate outcomes keyed by gate name.
func (g Gates) Statuses() map[string]GateStatus {
	return map[string]GateStatus{
		"title":       g.Title,
		"image":       g.Image,
		"price":       g.Price,
		"asin":        g.ASIN,
		"description": g.Description,
	}
}

type StockStatus string

const (
	StockInStock    StockStatus = "IN_STOCK"
	StockOutOfStock StockStatus = "OUT_OF_STOCK"
	StockUnknown    StockStatus = "UNKNOWN"
)

// Product is the canonical record produced by the ingestion pipeline.
// Gates and GateCount are derived and recomputed after every mutation;
// SellPrice/Profit/ProfitPercent are computed once and kept until a
// caller explicitly forces a reprice.
type Product struct {
	ID            string      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ImportID      string      `json:"import_id" gorm:"index"`
	Title         string      `json:"title" gorm:"not null"`
	ASIN          string      `json:"asin" gorm:"index"`
	Price         float64     `json:"price" gorm:"type:decimal(10,2)"`
	ComparePrice  float64     `json:"compare_price" gorm:"type:decimal(10,2)"`
	SellPrice     float64     `json:"sell_price" gorm:"type:decimal(10,2)"`
	Profit        float64     `json:"profit" gorm:"type:decimal(10,2)"`
	ProfitPercent float64     `json:"profit_percent" gorm:"type:decimal(10,1)"`
	Image         string      `json:"image"`
	Description   string      `json:"description"`
	Vendor        string      `json:"vendor"`
	Category      string      `json:"category"`
	Tags          string      `json:"tags"`
	Status        string      `json:"status" gorm:"default:Active"`
	Quantity      int         `json:"quantity"`
	Handle        string      `json:"handle"`
	StockStatus   StockStatus `json:"stock_status" gorm:"default:UNKNOWN"`
	Gates         Gates       `json:"gates" gorm:"serializer:json"`
	GateCount     int         `json:"gate_count"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
