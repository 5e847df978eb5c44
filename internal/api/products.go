package api

import (
	"net/http"

	"resto-pricer/internal/models"

	"github.com/gin-gonic/gin"
)

type productRequest struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category"`
	CostPrice    float64  `json:"cost_price"`
	OfflinePrice *float64 `json:"offline_price"`
	OnlinePrice  *float64 `json:"online_price"`
	Active       *bool    `json:"active"`
}

func (h *APIHandler) ListProducts(c *gin.Context) {
	var products []models.Product
	query := h.db.Where("company_id = ?", companyID(c))
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("name").Find(&products).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *APIHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product := models.Product{
		CompanyID:    companyID(c),
		Name:         req.Name,
		Category:     req.Category,
		CostPrice:    req.CostPrice,
		OfflinePrice: req.OfflinePrice,
		OnlinePrice:  req.OnlinePrice,
		Active:       true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if err := h.db.Create(&product).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *APIHandler) GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var product models.Product
	if err := h.db.Where("company_id = ?", companyID(c)).First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *APIHandler) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var product models.Product
	if err := h.db.Where("company_id = ?", companyID(c)).First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	product.Name = req.Name
	product.Category = req.Category
	product.CostPrice = req.CostPrice
	product.OfflinePrice = req.OfflinePrice
	product.OnlinePrice = req.OnlinePrice
	if req.Active != nil {
		product.Active = *req.Active
	}
	if err := h.db.Save(&product).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *APIHandler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result := h.db.Where("company_id = ?", companyID(c)).Delete(&models.Product{}, id)
	if result.Error != nil {
		fail(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
