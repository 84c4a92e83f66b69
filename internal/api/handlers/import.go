package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"cmdcenter/internal/config"
	"cmdcenter/internal/events"
	"cmdcenter/internal/logger"
	"cmdcenter/internal/models"
	"cmdcenter/internal/pipeline"
	"cmdcenter/internal/tabular"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ImportHandler struct {
	db        *gorm.DB
	logger    *logger.Logger
	config    *config.Config
	processor *pipeline.Processor
	producer  *events.Producer
}

func NewImportHandler(db *gorm.DB, logger *logger.Logger, cfg *config.Config, processor *pipeline.Processor, producer *events.Producer) *ImportHandler {
	return &ImportHandler{
		db:        db,
		logger:    logger,
		config:    cfg,
		processor: processor,
		producer:  producer,
	}
}

// Create accepts a multipart spreadsheet/CSV upload, runs the full
// ingestion pipeline and persists the report, its products and the
// gate issues. Dirty data never fails the request; only an unreadable
// file does.
func (h *ImportHandler) Create(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}
	defer file.Close()

	maxBytes := int64(h.config.MaxUploadMB) << 20
	if header.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("File exceeds %dMB limit", h.config.MaxUploadMB),
		})
		return
	}

	table, err := tabular.Parse(header.Filename, file)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	report := h.processor.Process(table.Headers, table.Rows)

	imp := &models.Import{
		Filename:         header.Filename,
		Format:           string(report.Format),
		TotalRows:        report.TotalRows,
		TotalCols:        report.TotalCols,
		UniqueProducts:   report.UniqueProducts,
		RemovedRows:      report.RemovedRows,
		RemovedCols:      report.RemovedCols,
		Passed:           report.Passed,
		Failed:           report.Failed,
		Warned:           report.Warned,
		DetectedFeatures: report.DetectedFeatures,
		ProcessingTimeMs: report.ProcessingTimeMs,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(imp).Error; err != nil {
			return err
		}
		for _, product := range report.Products {
			product.ImportID = imp.ID
			if err := tx.Create(product).Error; err != nil {
				return err
			}
			if issues := models.IssuesFor(product); len(issues) > 0 {
				if err := tx.Create(&issues).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		h.logger.Error("Failed to persist import %s: %v", header.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save import"})
		return
	}

	if h.producer != nil {
		_ = h.producer.Publish(context.Background(), events.Event{
			Type:     events.TypeImportCompleted,
			ImportID: imp.ID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":   imp,
		"report": report,
	})
}

func (h *ImportHandler) List(c *gin.Context) {
	var imports []models.Import

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset := (page - 1) * limit

	query := h.db.Model(&models.Import{}).Order("created_at DESC")

	var total int64
	query.Count(&total)

	if err := query.Offset(offset).Limit(limit).Find(&imports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch imports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": imports,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *ImportHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var imp models.Import
	if err := h.db.First(&imp, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Import not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch import"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": imp})
}
