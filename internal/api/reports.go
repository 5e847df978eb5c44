package api

import (
	"net/http"
	"strconv"

	"resto-pricer/internal/services"

	"github.com/gin-gonic/gin"
)

// PricingReport streams the xlsx pricing report: current competitor
// comparisons plus a menu simulation over the requested pools.
func (h *APIHandler) PricingReport(c *gin.Context) {
	comparisons, err := h.competitors.Compare(companyID(c), c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}

	price, err := strconv.ParseFloat(c.DefaultQuery("price", "25"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}
	report, err := h.menu.Simulate(companyID(c),
		c.DefaultQuery("first", "soup"), c.DefaultQuery("second", "main"), price, 5)
	if err != nil {
		fail(c, err)
		return
	}

	file, err := services.BuildPricingReport(comparisons, report)
	if err != nil {
		fail(c, err)
		return
	}
	buf, err := file.WriteToBuffer()
	if err != nil {
		fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pricing-report.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
