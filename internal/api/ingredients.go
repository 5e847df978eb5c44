package api

import (
	"net/http"
	"strconv"

	"resto-pricer/internal/models"

	"github.com/gin-gonic/gin"
)

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

type ingredientRequest struct {
	Name        string  `json:"name" binding:"required"`
	Unit        string  `json:"unit"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Supplier    string  `json:"supplier"`
}

func (h *APIHandler) ListIngredients(c *gin.Context) {
	var ingredients []models.Ingredient
	query := h.db.Where("company_id = ?", companyID(c))
	if name := c.Query("search"); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if err := query.Order("name").Find(&ingredients).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *APIHandler) CreateIngredient(c *gin.Context) {
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ingredient := models.Ingredient{
		CompanyID:   companyID(c),
		Name:        req.Name,
		Unit:        req.Unit,
		CostPerUnit: req.CostPerUnit,
		Supplier:    req.Supplier,
	}
	if err := h.db.Create(&ingredient).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ingredient": ingredient})
}

func (h *APIHandler) GetIngredient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var ingredient models.Ingredient
	if err := h.db.Where("company_id = ?", companyID(c)).First(&ingredient, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": ingredient})
}

// UpdateIngredient edits descriptive fields. Price changes go through
// UpdateIngredientPrice so the history log stays complete.
func (h *APIHandler) UpdateIngredient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var ingredient models.Ingredient
	if err := h.db.Where("company_id = ?", companyID(c)).First(&ingredient, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}
	ingredient.Name = req.Name
	if req.Unit != "" {
		ingredient.Unit = req.Unit
	}
	ingredient.Supplier = req.Supplier
	if err := h.db.Save(&ingredient).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": ingredient})
}

func (h *APIHandler) DeleteIngredient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result := h.db.Where("company_id = ?", companyID(c)).Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		fail(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type priceUpdateRequest struct {
	NewPrice float64 `json:"new_price" binding:"required"`
	Reason   string  `json:"reason"`
}

func (h *APIHandler) UpdateIngredientPrice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req priceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.history.UpdatePrice(companyID(c), id, req.NewPrice, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	if entry == nil {
		c.JSON(http.StatusOK, gin.H{"message": "price unchanged"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"change": entry})
}

func (h *APIHandler) IngredientHistory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rows, err := h.history.History(companyID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": rows})
}

func (h *APIHandler) IngredientInsights(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	insights, err := h.history.Insights(companyID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	if insights == nil {
		// no recorded changes yet: nothing to analyze
		c.JSON(http.StatusOK, gin.H{"insights": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
