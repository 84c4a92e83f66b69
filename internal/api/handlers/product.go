package handlers

import (
	"context"
	"net/http"
	"strconv"

	"cmdcenter/internal/events"
	"cmdcenter/internal/logger"
	"cmdcenter/internal/models"
	"cmdcenter/internal/pipeline"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductHandler struct {
	db       *gorm.DB
	logger   *logger.Logger
	gates    *pipeline.GateEvaluator
	producer *events.Producer
}

func NewProductHandler(db *gorm.DB, logger *logger.Logger, gates *pipeline.GateEvaluator, producer *events.Producer) *ProductHandler {
	return &ProductHandler{
		db:       db,
		logger:   logger,
		gates:    gates,
		producer: producer,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product

	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset := (page - 1) * limit

	// Filters
	importID := c.Query("import_id")
	search := c.Query("search")

	query := h.db.Model(&models.Product{})

	if importID != "" {
		query = query.Where("import_id = ?", importID)
	}

	// Gate-outcome buckets: ready (5/5), failed (<3), warned (rest).
	switch c.Query("readiness") {
	case "ready":
		query = query.Where("gate_count = ?", 5)
	case "failed":
		query = query.Where("gate_count < ?", 3)
	case "warned":
		query = query.Where("gate_count >= ? AND gate_count < ?", 3, 5)
	}

	if search != "" {
		query = query.Where("title LIKE ? OR asin LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	if err := query.Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.gates.Evaluate(&product)

	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// Update mutates a product in place and re-derives gates and gate
// count. Derived pricing stays as-is: an edit never silently reprices.
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.gates.Evaluate(&product)

	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	if h.producer != nil {
		_ = h.producer.Publish(context.Background(), events.Event{
			Type:      events.TypeProductUpdated,
			ProductID: product.ID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// Reprice forces a fresh sellPrice/profit derivation from the current
// price, overriding the compute-once guard.
func (h *ProductHandler) Reprice(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	h.gates.EnsurePricing(&product, true)
	h.gates.Evaluate(&product)

	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// Push queues a product for the Shopify push worker.
func (h *ProductHandler) Push(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	if h.producer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Event producer not configured"})
		return
	}

	if err := h.producer.Publish(context.Background(), events.Event{
		Type:      events.TypePushRequested,
		ProductID: product.ID,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue push"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"data": product, "queued": true})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
