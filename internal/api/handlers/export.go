package handlers

import (
	"fmt"
	"net/http"

	"cmdcenter/internal/logger"
	"cmdcenter/internal/models"
	"cmdcenter/internal/worker/processors/export"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExportHandler struct {
	db       *gorm.DB
	logger   *logger.Logger
	exporter *export.Exporter
}

func NewExportHandler(db *gorm.DB, logger *logger.Logger, exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{
		db:       db,
		logger:   logger,
		exporter: exporter,
	}
}

// Feed streams the scored products of one import as a flat feed file,
// CSV by default or XLSX with ?format=xlsx.
func (h *ExportHandler) Feed(c *gin.Context) {
	importID := c.Param("id")

	var imp models.Import
	if err := h.db.First(&imp, "id = ?", importID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Import not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch import"})
		return
	}

	var products []*models.Product
	if err := h.db.Where("import_id = ?", importID).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=feed_%s.xlsx", importID))
		if err := h.exporter.WriteXLSX(c.Writer, products); err != nil {
			h.logger.Error("Failed to write XLSX feed for %s: %v", importID, err)
		}
	default:
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=feed_%s.csv", importID))
		if err := h.exporter.WriteCSV(c.Writer, products); err != nil {
			h.logger.Error("Failed to write CSV feed for %s: %v", importID, err)
		}
	}
}
