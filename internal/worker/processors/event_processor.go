package processors

import (
	"fmt"

	"cmdcenter/internal/config"
	"cmdcenter/internal/database"
	"cmdcenter/internal/events"
	"cmdcenter/internal/logger"
	"cmdcenter/internal/models"
	"cmdcenter/internal/services/shopify"
	"cmdcenter/internal/worker/processors/export"
	"cmdcenter/internal/worker/processors/validation"
)

type EventProcessor struct {
	config      *config.Config
	logger      *logger.Logger
	db          *database.Database
	validator   *validation.Validator
	exporter    *export.Exporter
	shopify     *shopify.Client
	transformer *shopify.Transformer
}

func NewEventProcessor(cfg *config.Config, logger *logger.Logger, db *database.Database) *EventProcessor {
	return &EventProcessor{
		config:      cfg,
		logger:      logger,
		db:          db,
		validator:   validation.New(cfg, logger),
		exporter:    export.New(cfg, logger),
		shopify:     shopify.NewClient(cfg.ShopifyShopDomain, cfg.ShopifyAccessToken, logger),
		transformer: shopify.NewTransformer(),
	}
}

func (ep *EventProcessor) Process(event events.Event) error {
	ep.logger.Debug("Processing %s event", event.Type)

	switch event.Type {
	case events.TypeImportCompleted:
		return ep.exportImportFeed(event.ImportID)
	case events.TypeProductUpdated:
		_, err := ep.validator.Revalidate(ep.db.DB, event.ProductID)
		return err
	case events.TypePushRequested:
		return ep.pushProduct(event.ProductID)
	default:
		ep.logger.Warn("Ignoring unknown event type %q", event.Type)
		return nil
	}
}

func (ep *EventProcessor) exportImportFeed(importID string) error {
	var products []*models.Product
	if err := ep.db.DB.Where("import_id = ?", importID).Find(&products).Error; err != nil {
		return fmt.Errorf("load products for import %s: %w", importID, err)
	}
	if len(products) == 0 {
		ep.logger.Warn("Import %s has no products to export", importID)
		return nil
	}

	_, err := ep.exporter.ExportFeed(importID, products)
	return err
}

func (ep *EventProcessor) pushProduct(productID string) error {
	if !ep.shopify.Configured() {
		ep.logger.Warn("Shopify push skipped: no shop credentials configured")
		return nil
	}

	var product models.Product
	if err := ep.db.DB.First(&product, "id = ?", productID).Error; err != nil {
		return fmt.Errorf("load product %s: %w", productID, err)
	}

	created, err := ep.shopify.CreateProduct(ep.transformer.ToShopify(&product))
	if err != nil {
		return fmt.Errorf("push product %s: %w", productID, err)
	}

	ep.logger.Info("Pushed product %s to Shopify as %d", productID, created.ID)
	return nil
}
