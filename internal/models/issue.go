package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Issue records a gate that did not pass for an imported product.
type Issue struct {
	ID          string     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID   string     `json:"product_id" gorm:"not null;index"`
	Gate        string     `json:"gate" gorm:"not null"`
	Severity    string     `json:"severity" gorm:"not null"`
	Explanation string     `json:"explanation" gorm:"not null"`
	IsResolved  bool       `json:"is_resolved" gorm:"default:false"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

var gateExplanations = map[string]string{
	"title":       "Title is missing, too short, or still the generated placeholder",
	"image":       "Image is missing or not an absolute http(s) URL",
	"price":       "Price could not be parsed or is zero",
	"asin":        "ASIN is missing or does not match the 10-character shape",
	"description": "Description is missing or too short to list",
}

// IssuesFor builds issue rows for every gate on p that is not passing.
func IssuesFor(p *Product) []Issue {
	var issues []Issue
	for gate, status := range p.Gates.Statuses() {
		if status == GatePass {
			continue
		}
		severity := "ERROR"
		if status == GateWarn {
			severity = "WARNING"
		}
		explanation := gateExplanations[gate]
		if explanation == "" {
			explanation = fmt.Sprintf("Gate %s did not pass", gate)
		}
		issues = append(issues, Issue{
			ProductID:   p.ID,
			Gate:        gate,
			Severity:    severity,
			Explanation: explanation,
		})
	}
	return issues
}
