package api

import (
	"net/http"

	"resto-pricer/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

func (h *APIHandler) ListSettings(c *gin.Context) {
	var settings []models.Setting
	if err := h.db.Where("company_id = ?", companyID(c)).Find(&settings).Error; err != nil {
		fail(c, err)
		return
	}
	out := make(map[string]interface{}, len(settings))
	for i := range settings {
		out[settings[i].Key] = settings[i].Value()
	}
	c.JSON(http.StatusOK, gin.H{"settings": out})
}

type settingRequest struct {
	Value interface{} `json:"value" binding:"required"`
}

// PutSetting upserts one per-company setting; the value's JSON type selects
// the stored variant.
func (h *APIHandler) PutSetting(c *gin.Context) {
	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting := models.Setting{
		CompanyID: companyID(c),
		Key:       c.Param("key"),
	}
	if err := setting.SetValue(req.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"kind", "number_value", "text_value", "bool_value", "updated_at",
		}),
	}).Create(&setting).Error
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": setting.Key, "value": setting.Value()})
}
