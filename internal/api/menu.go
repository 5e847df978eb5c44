package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *APIHandler) SimulateMenu(c *gin.Context) {
	first := c.DefaultQuery("first", "soup")
	second := c.DefaultQuery("second", "main")
	price, err := strconv.ParseFloat(c.DefaultQuery("price", "25"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}
	topN, _ := strconv.Atoi(c.DefaultQuery("top", "5"))

	report, err := h.menu.Simulate(companyID(c), first, second, price, topN)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// MenuRecommendations returns only the statistics and price points, without
// the full combination list.
func (h *APIHandler) MenuRecommendations(c *gin.Context) {
	first := c.DefaultQuery("first", "soup")
	second := c.DefaultQuery("second", "main")
	price, err := strconv.ParseFloat(c.DefaultQuery("price", "25"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}

	report, err := h.menu.Simulate(companyID(c), first, second, price, 5)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"statistics":     report.Statistics,
		"recommendation": report.Recommendation,
		"top":            report.Top,
	})
}
