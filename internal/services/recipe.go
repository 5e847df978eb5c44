package services

import (
	"errors"
	"fmt"

	"resto-pricer/internal/models"
	"resto-pricer/internal/pricing"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist inside the caller's
// tenant.
var ErrNotFound = errors.New("record not found")

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// IngredientLineInput is one submitted recipe line. When IngredientID is set
// and no cost is given, the cost is snapshotted from the ingredient's current
// unit cost.
type IngredientLineInput struct {
	IngredientID *uint   `json:"ingredient_id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Cost         float64 `json:"cost"`
}

type RecipeInput struct {
	Name         string                `json:"name" binding:"required"`
	Category     string                `json:"category"`
	Servings     int                   `json:"servings"`
	SellingPrice *float64              `json:"selling_price"`
	Ingredients  []IngredientLineInput `json:"ingredients"`
}

// Create stores a recipe with freshly computed derived fields.
func (s *RecipeService) Create(companyID uint, in RecipeInput) (*models.Recipe, error) {
	lines, err := s.resolveLines(companyID, in.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		CompanyID:    companyID,
		Name:         in.Name,
		Category:     in.Category,
		Servings:     in.Servings,
		SellingPrice: in.SellingPrice,
		Ingredients:  lines,
	}
	if err := s.applyDerived(recipe); err != nil {
		return nil, err
	}
	if err := s.db.Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// Update replaces the recipe's fields and ingredient lines, recomputing the
// derived cost fields in the same transaction so they are never stale.
func (s *RecipeService) Update(companyID, recipeID uint, in RecipeInput) (*models.Recipe, error) {
	recipe, err := s.Get(companyID, recipeID)
	if err != nil {
		return nil, err
	}

	lines, err := s.resolveLines(companyID, in.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe.Name = in.Name
	recipe.Category = in.Category
	recipe.Servings = in.Servings
	recipe.SellingPrice = in.SellingPrice
	recipe.Ingredients = lines
	if err := s.applyDerived(recipe); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Save(recipe).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return recipe, nil
}

func (s *RecipeService) Get(companyID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Preload("Ingredients").
		Where("company_id = ?", companyID).
		First(&recipe, recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return &recipe, nil
}

func (s *RecipeService) List(companyID uint, category string) ([]models.Recipe, error) {
	query := s.db.Preload("Ingredients").Where("company_id = ?", companyID)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var recipes []models.Recipe
	if err := query.Order("name").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

func (s *RecipeService) Delete(companyID, recipeID uint) error {
	result := s.db.Where("company_id = ?", companyID).Delete(&models.Recipe{}, recipeID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// resolveLines turns submitted lines into recipe snapshots, filling name and
// cost from the ingredient catalog when a line references one.
func (s *RecipeService) resolveLines(companyID uint, inputs []IngredientLineInput) ([]models.RecipeIngredient, error) {
	lines := make([]models.RecipeIngredient, len(inputs))
	for i, in := range inputs {
		line := models.RecipeIngredient{
			IngredientID: in.IngredientID,
			Name:         in.Name,
			Quantity:     in.Quantity,
			Unit:         in.Unit,
			Cost:         in.Cost,
		}
		if in.IngredientID != nil {
			var ingredient models.Ingredient
			err := s.db.Where("company_id = ?", companyID).First(&ingredient, *in.IngredientID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("ingredient %d: %w", *in.IngredientID, ErrNotFound)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to load ingredient %d: %w", *in.IngredientID, err)
			}
			if line.Name == "" {
				line.Name = ingredient.Name
			}
			if line.Unit == "" {
				line.Unit = ingredient.Unit
			}
			if line.Cost == 0 {
				line.Cost = ingredient.CostPerUnit * in.Quantity
			}
		}
		lines[i] = line
	}
	return lines, nil
}

// applyDerived recomputes TotalCost, CostPerServing and ProfitMargin from the
// current lines.
func (s *RecipeService) applyDerived(recipe *models.Recipe) error {
	cost, err := pricing.ComputeRecipeCost(ingredientLines(recipe.Ingredients), recipe.Servings)
	if err != nil {
		return fmt.Errorf("recipe %q: %w", recipe.Name, err)
	}
	recipe.TotalCost = cost.TotalCost
	recipe.CostPerServing = cost.CostPerServing
	recipe.ProfitMargin = pricing.Margin(cost.CostPerServing, recipe.SellingPrice)
	return nil
}
