package services

import (
	"errors"
	"fmt"
	"time"

	"resto-pricer/internal/models"
	"resto-pricer/internal/pricing"

	"gorm.io/gorm"
)

type CompetitorService struct {
	db *gorm.DB
}

func NewCompetitorService(db *gorm.DB) *CompetitorService {
	return &CompetitorService{db: db}
}

type CompetitorInput struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category"`
	PriceRange string `json:"price_range"`
	IsActive   *bool  `json:"is_active"`
}

func (s *CompetitorService) Create(companyID uint, in CompetitorInput) (*models.Competitor, error) {
	competitor := &models.Competitor{
		CompanyID:  companyID,
		Name:       in.Name,
		Category:   in.Category,
		PriceRange: in.PriceRange,
		IsActive:   true,
	}
	if competitor.Category == "" {
		competitor.Category = "restaurant"
	}
	if competitor.PriceRange == "" {
		competitor.PriceRange = "medium"
	}
	if in.IsActive != nil {
		competitor.IsActive = *in.IsActive
	}
	if err := s.db.Create(competitor).Error; err != nil {
		return nil, fmt.Errorf("failed to create competitor: %w", err)
	}
	return competitor, nil
}

func (s *CompetitorService) Update(companyID, competitorID uint, in CompetitorInput) (*models.Competitor, error) {
	competitor, err := s.Get(companyID, competitorID)
	if err != nil {
		return nil, err
	}
	competitor.Name = in.Name
	if in.Category != "" {
		competitor.Category = in.Category
	}
	if in.PriceRange != "" {
		competitor.PriceRange = in.PriceRange
	}
	if in.IsActive != nil {
		competitor.IsActive = *in.IsActive
	}
	if err := s.db.Save(competitor).Error; err != nil {
		return nil, fmt.Errorf("failed to update competitor: %w", err)
	}
	return competitor, nil
}

func (s *CompetitorService) Get(companyID, competitorID uint) (*models.Competitor, error) {
	var competitor models.Competitor
	err := s.db.Preload("Products").
		Where("company_id = ?", companyID).
		First(&competitor, competitorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load competitor: %w", err)
	}
	return &competitor, nil
}

func (s *CompetitorService) List(companyID uint) ([]models.Competitor, error) {
	var competitors []models.Competitor
	err := s.db.Preload("Products").
		Where("company_id = ?", companyID).
		Order("name").
		Find(&competitors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list competitors: %w", err)
	}
	return competitors, nil
}

// Delete removes a competitor and, through the cascade, every product
// observed for it.
func (s *CompetitorService) Delete(companyID, competitorID uint) error {
	competitor, err := s.Get(companyID, competitorID)
	if err != nil {
		return err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("competitor_id = ?", competitor.ID).Delete(&models.CompetitorProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(competitor).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete competitor: %w", err)
	}
	return nil
}

// AddProduct records one observed competitor price.
func (s *CompetitorService) AddProduct(companyID, competitorID uint, name, category string, price float64) (*models.CompetitorProduct, error) {
	competitor, err := s.Get(companyID, competitorID)
	if err != nil {
		return nil, err
	}
	product := &models.CompetitorProduct{
		CompetitorID: competitor.ID,
		Name:         name,
		Category:     category,
		Price:        price,
		ObservedAt:   time.Now(),
	}
	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to add competitor product: %w", err)
	}
	return product, nil
}

// UpsertObservation refreshes a competitor product price by name, creating
// the row on first sight. Used by the external feed sync.
func (s *CompetitorService) UpsertObservation(companyID, competitorID uint, name, category string, price float64, observedAt time.Time) error {
	competitor, err := s.Get(companyID, competitorID)
	if err != nil {
		return err
	}
	var product models.CompetitorProduct
	err = s.db.Where("competitor_id = ? AND name = ?", competitor.ID, name).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		product = models.CompetitorProduct{
			CompetitorID: competitor.ID,
			Name:         name,
			Category:     category,
			Price:        price,
			ObservedAt:   observedAt,
		}
		return s.db.Create(&product).Error
	}
	if err != nil {
		return fmt.Errorf("failed to look up competitor product: %w", err)
	}
	product.Category = category
	product.Price = price
	product.ObservedAt = observedAt
	return s.db.Save(&product).Error
}

// Compare matches the company's catalog against every active competitor's
// observed products. Comparisons are computed fresh per call and never
// persisted.
func (s *CompetitorService) Compare(companyID uint, category string) ([]pricing.Comparison, error) {
	products, err := s.activeProducts(companyID)
	if err != nil {
		return nil, err
	}
	competitors, err := s.activeCompetitors(companyID)
	if err != nil {
		return nil, err
	}
	return pricing.MatchProducts(quotesFromProducts(products), competitorQuotes(competitors), category), nil
}

// MarketInsights reduces the current comparisons into a market position
// summary.
func (s *CompetitorService) MarketInsights(companyID uint) (pricing.MarketInsights, error) {
	comparisons, err := s.Compare(companyID, "")
	if err != nil {
		return pricing.MarketInsights{}, err
	}
	competitors, err := s.activeCompetitors(companyID)
	if err != nil {
		return pricing.MarketInsights{}, err
	}
	infos := make([]pricing.CompetitorInfo, len(competitors))
	tracked := 0
	for i, c := range competitors {
		infos[i] = pricing.CompetitorInfo{Name: c.Name, Category: c.Category}
		tracked += len(c.Products)
	}
	return pricing.ComputeMarketInsights(comparisons, infos, tracked), nil
}

func (s *CompetitorService) activeProducts(companyID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("company_id = ? AND active = ?", companyID, true).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func (s *CompetitorService) activeCompetitors(companyID uint) ([]models.Competitor, error) {
	var competitors []models.Competitor
	err := s.db.Preload("Products").
		Where("company_id = ? AND is_active = ?", companyID, true).
		Find(&competitors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load competitors: %w", err)
	}
	return competitors, nil
}
