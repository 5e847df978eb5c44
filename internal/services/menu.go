package services

import (
	"fmt"

	"resto-pricer/internal/models"
	"resto-pricer/internal/pricing"

	"gorm.io/gorm"
)

// Setting keys a tenant can use to override the pricing policy.
const (
	SettingEconomicCostMax = "economic_cost_max"
	SettingMediumCostMax   = "medium_cost_max"
	SettingExcellentMargin = "excellent_margin"
)

// MenuService simulates fixed two-item menus (e.g. one soup plus one main)
// over the product catalog.
type MenuService struct {
	db     *gorm.DB
	policy pricing.Policy
}

func NewMenuService(db *gorm.DB, policy pricing.Policy) *MenuService {
	return &MenuService{db: db, policy: policy}
}

// SimulationReport bundles everything the menu screen needs from one run.
type SimulationReport struct {
	SellingPrice   float64                `json:"selling_price"`
	Combinations   []pricing.Combination  `json:"combinations"`
	Statistics     pricing.Statistics     `json:"statistics"`
	Recommendation pricing.Recommendation `json:"recommendation"`
	Top            []pricing.Combination  `json:"top"`
}

// Simulate enumerates and prices every menu pairing products of the two
// categories, then reduces the results. Empty pools yield an empty but valid
// report.
func (s *MenuService) Simulate(companyID uint, firstCategory, secondCategory string, sellingPrice float64, topN int) (*SimulationReport, error) {
	first, err := s.pool(companyID, firstCategory)
	if err != nil {
		return nil, err
	}
	second, err := s.pool(companyID, secondCategory)
	if err != nil {
		return nil, err
	}

	combinations := pricing.Simulate(first, second, sellingPrice)
	stats := pricing.ReduceStatistics(combinations, s.PolicyFor(companyID))

	if topN <= 0 {
		topN = 5
	}
	return &SimulationReport{
		SellingPrice:   sellingPrice,
		Combinations:   combinations,
		Statistics:     stats,
		Recommendation: pricing.RecommendPricing(stats.CostMean),
		Top:            pricing.TopN(combinations, topN, false),
	}, nil
}

// PolicyFor starts from the configured defaults and applies any per-company
// setting overrides.
func (s *MenuService) PolicyFor(companyID uint) pricing.Policy {
	policy := s.policy

	var settings []models.Setting
	keys := []string{SettingEconomicCostMax, SettingMediumCostMax, SettingExcellentMargin}
	if err := s.db.Where("company_id = ? AND `key` IN ?", companyID, keys).Find(&settings).Error; err != nil {
		return policy
	}
	for i := range settings {
		value, ok := settings[i].Number()
		if !ok {
			continue
		}
		switch settings[i].Key {
		case SettingEconomicCostMax:
			policy.EconomicCostMax = value
		case SettingMediumCostMax:
			policy.MediumCostMax = value
		case SettingExcellentMargin:
			policy.ExcellentMargin = value
		}
	}
	return policy
}

func (s *MenuService) pool(companyID uint, category string) ([]pricing.ProductQuote, error) {
	var products []models.Product
	err := s.db.Where("company_id = ? AND category = ? AND active = ?", companyID, category, true).
		Order("name").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load %q pool: %w", category, err)
	}
	return quotesFromProducts(products), nil
}
