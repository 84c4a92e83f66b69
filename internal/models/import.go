package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Import is the stored summary of one processed upload.
type Import struct {
	ID               string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Filename         string    `json:"filename" gorm:"not null"`
	Format           string    `json:"format"`
	TotalRows        int       `json:"total_rows"`
	TotalCols        int       `json:"total_cols"`
	UniqueProducts   int       `json:"unique_products"`
	RemovedRows      int       `json:"removed_rows"`
	RemovedCols      int       `json:"removed_cols"`
	Passed           int       `json:"passed"`
	Failed           int       `json:"failed"`
	Warned           int       `json:"warned"`
	DetectedFeatures []string  `json:"detected_features" gorm:"serializer:json"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	CreatedAt        time.Time `json:"created_at"`
}

func (i *Import) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
