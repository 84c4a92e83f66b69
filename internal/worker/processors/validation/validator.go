package validation

import (
	"fmt"

	"cmdcenter/internal/config"
	"cmdcenter/internal/logger"
	"cmdcenter/internal/models"
	"cmdcenter/internal/pipeline"

	"gorm.io/gorm"
)

// Validator re-scores stored products and keeps their issue rows in
// sync with the current gate outcomes.
type Validator struct {
	config *config.Config
	logger *logger.Logger
	gates  *pipeline.GateEvaluator
}

func New(cfg *config.Config, logger *logger.Logger) *Validator {
	return &Validator{
		config: cfg,
		logger: logger,
		gates:  pipeline.NewGateEvaluator(cfg.MarkupFactor),
	}
}

// Revalidate reloads a product, re-derives its gates and gate count,
// and replaces its unresolved issues. Pricing is left alone: a record
// priced once stays priced.
func (v *Validator) Revalidate(db *gorm.DB, productID string) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("load product %s: %w", productID, err)
	}

	v.gates.Evaluate(&product)

	if err := db.Save(&product).Error; err != nil {
		return nil, fmt.Errorf("save product %s: %w", productID, err)
	}

	if err := v.syncIssues(db, &product); err != nil {
		return nil, err
	}

	v.logger.Debug("Revalidated product %s: %d/5 gates pass", product.ID, product.GateCount)
	return &product, nil
}

func (v *Validator) syncIssues(db *gorm.DB, product *models.Product) error {
	if err := db.Where("product_id = ? AND is_resolved = ?", product.ID, false).
		Delete(&models.Issue{}).Error; err != nil {
		return fmt.Errorf("clear issues for %s: %w", product.ID, err)
	}

	issues := models.IssuesFor(product)
	if len(issues) == 0 {
		return nil
	}
	if err := db.Create(&issues).Error; err != nil {
		return fmt.Errorf("record issues for %s: %w", product.ID, err)
	}
	return nil
}
