package api

import (
	"net/http"

	"resto-pricer/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *APIHandler) ListCompetitors(c *gin.Context) {
	competitors, err := h.competitors.List(companyID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"competitors": competitors})
}

func (h *APIHandler) CreateCompetitor(c *gin.Context) {
	var req services.CompetitorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	competitor, err := h.competitors.Create(companyID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"competitor": competitor})
}

func (h *APIHandler) GetCompetitor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	competitor, err := h.competitors.Get(companyID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"competitor": competitor})
}

func (h *APIHandler) UpdateCompetitor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req services.CompetitorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	competitor, err := h.competitors.Update(companyID(c), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"competitor": competitor})
}

func (h *APIHandler) DeleteCompetitor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.competitors.Delete(companyID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type competitorProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"required"`
}

func (h *APIHandler) AddCompetitorProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req competitorProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.competitors.AddProduct(companyID(c), id, req.Name, req.Category, req.Price)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *APIHandler) CompareCompetitors(c *gin.Context) {
	comparisons, err := h.competitors.Compare(companyID(c), c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comparisons": comparisons})
}

func (h *APIHandler) MarketInsights(c *gin.Context) {
	insights, err := h.competitors.MarketInsights(companyID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

func (h *APIHandler) SyncCompetitor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	synced, err := services.SyncOneCompetitor(h.competitors, h.feedClient, companyID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": synced})
}

func (h *APIHandler) SyncAllCompetitors(c *gin.Context) {
	synced, err := services.SyncCompetitorFeed(h.competitors, h.feedClient, companyID(c))
	if err != nil && synced == 0 {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": synced})
}
