package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resto-pricer/internal/models"
	"resto-pricer/internal/pricing"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const insightsCacheTTL = 10 * time.Minute

// HistoryService owns the append-only price change log and the insights
// derived from it. The redis client is optional: a nil client simply disables
// caching and every read computes from the database.
type HistoryService struct {
	db  *gorm.DB
	rdb *redis.Client
	ctx context.Context
}

func NewHistoryService(db *gorm.DB, rdb *redis.Client) *HistoryService {
	return &HistoryService{db: db, rdb: rdb, ctx: context.Background()}
}

// UpdatePrice sets a new unit cost on an ingredient and appends the change to
// its history in one transaction. A no-op price is not recorded.
func (s *HistoryService) UpdatePrice(companyID, ingredientID uint, newPrice float64, reason string) (*models.PriceHistory, error) {
	var ingredient models.Ingredient
	err := s.db.Where("company_id = ?", companyID).First(&ingredient, ingredientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredient: %w", err)
	}
	if ingredient.CostPerUnit == newPrice {
		return nil, nil
	}

	changePercent := 0.0
	if ingredient.CostPerUnit != 0 {
		changePercent = (newPrice - ingredient.CostPerUnit) / ingredient.CostPerUnit * 100
	}
	if reason == "" {
		reason = "manual"
	}
	entry := &models.PriceHistory{
		IngredientID:       ingredient.ID,
		OldPrice:           ingredient.CostPerUnit,
		NewPrice:           newPrice,
		PriceChange:        newPrice - ingredient.CostPerUnit,
		PriceChangePercent: changePercent,
		Reason:             reason,
		RecordedAt:         time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ingredient).Update("cost_per_unit", newPrice).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record price change: %w", err)
	}

	s.invalidateInsights(ingredient.ID)
	return entry, nil
}

// History returns the ingredient's price log, most-recent first.
func (s *HistoryService) History(companyID, ingredientID uint) ([]models.PriceHistory, error) {
	if _, err := s.ingredient(companyID, ingredientID); err != nil {
		return nil, err
	}
	var rows []models.PriceHistory
	err := s.db.Where("ingredient_id = ?", ingredientID).
		Order("recorded_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load price history: %w", err)
	}
	return rows, nil
}

// Insights computes the derived price analysis for an ingredient, serving a
// cached copy when one is warm. A nil result with a nil error means the
// ingredient has no recorded changes yet — an expected state, not a failure.
func (s *HistoryService) Insights(companyID, ingredientID uint) (*pricing.Insights, error) {
	if cached := s.cachedInsights(ingredientID); cached != nil {
		return cached, nil
	}

	ingredient, err := s.ingredient(companyID, ingredientID)
	if err != nil {
		return nil, err
	}
	rows, err := s.History(companyID, ingredientID)
	if err != nil {
		return nil, err
	}

	insights := pricing.ComputeInsights(ingredient.ID, ingredient.CostPerUnit, historyEntries(rows), time.Now())
	if insights != nil {
		s.cacheInsights(ingredientID, insights)
	}
	return insights, nil
}

func (s *HistoryService) ingredient(companyID, ingredientID uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.Where("company_id = ?", companyID).First(&ingredient, ingredientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredient: %w", err)
	}
	return &ingredient, nil
}

func insightsCacheKey(ingredientID uint) string {
	return fmt.Sprintf("insights:ingredient:%d", ingredientID)
}

func (s *HistoryService) cachedInsights(ingredientID uint) *pricing.Insights {
	if s.rdb == nil {
		return nil
	}
	data, err := s.rdb.Get(s.ctx, insightsCacheKey(ingredientID)).Bytes()
	if err != nil {
		return nil
	}
	var insights pricing.Insights
	if err := json.Unmarshal(data, &insights); err != nil {
		return nil
	}
	return &insights
}

func (s *HistoryService) cacheInsights(ingredientID uint, insights *pricing.Insights) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(insights)
	if err != nil {
		return
	}
	s.rdb.Set(s.ctx, insightsCacheKey(ingredientID), data, insightsCacheTTL)
}

func (s *HistoryService) invalidateInsights(ingredientID uint) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(s.ctx, insightsCacheKey(ingredientID))
}
