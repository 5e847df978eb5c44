package models

import (
	"time"

	"gorm.io/gorm"
)

// Company is the tenant every other record is scoped to
type Company struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Currency  string         `json:"currency" gorm:"default:'RON'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// User represents a platform user belonging to one company
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	CompanyID    uint           `json:"company_id" gorm:"not null;index"`
	Company      Company        `json:"-" gorm:"foreignKey:CompanyID"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Name         string         `json:"name"`
	Role         string         `json:"role" gorm:"default:'staff'"` // admin, staff
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// Ingredient is a purchasable raw material with its current unit cost
type Ingredient struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	CompanyID   uint           `json:"company_id" gorm:"not null;index"`
	Name        string         `json:"name" gorm:"not null;index"`
	Unit        string         `json:"unit" gorm:"default:'kg'"`
	CostPerUnit float64        `json:"cost_per_unit"`
	Supplier    string         `json:"supplier"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// PriceHistory records one ingredient price change. Rows are append-only:
// they are never updated or deleted once written.
type PriceHistory struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	IngredientID       uint       `json:"ingredient_id" gorm:"not null;index"`
	Ingredient         Ingredient `json:"-" gorm:"foreignKey:IngredientID"`
	OldPrice           float64    `json:"old_price"`
	NewPrice           float64    `json:"new_price"`
	PriceChange        float64    `json:"price_change"`
	PriceChangePercent float64    `json:"price_change_percent"`
	Reason             string     `json:"reason"` // manual, supplier_update, import
	RecordedAt         time.Time  `json:"recorded_at" gorm:"index"`
}

// Recipe is a dish with its ingredient lines and derived cost metrics.
// TotalCost, CostPerServing and ProfitMargin are recomputed on every
// mutation, never stored stale.
type Recipe struct {
	ID             uint               `json:"id" gorm:"primaryKey"`
	CompanyID      uint               `json:"company_id" gorm:"not null;index"`
	Name           string             `json:"name" gorm:"not null"`
	Category       string             `json:"category" gorm:"index"`
	Servings       int                `json:"servings" gorm:"not null;default:1"`
	SellingPrice   *float64           `json:"selling_price"`
	TotalCost      float64            `json:"total_cost"`
	CostPerServing float64            `json:"cost_per_serving"`
	ProfitMargin   *float64           `json:"profit_margin"`
	Ingredients    []RecipeIngredient `json:"ingredients" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `json:"-" gorm:"index"`
}

// RecipeIngredient is one ingredient line inside a recipe snapshot. The name
// and cost are copied at attach time so later ingredient edits do not
// silently rewrite old recipes.
type RecipeIngredient struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	RecipeID     uint    `json:"recipe_id" gorm:"not null;index"`
	IngredientID *uint   `json:"ingredient_id" gorm:"index"`
	Name         string  `json:"name" gorm:"not null"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Cost         float64 `json:"cost"`
}

// Product is a sellable catalog item with per-channel prices
type Product struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	CompanyID    uint           `json:"company_id" gorm:"not null;index"`
	Name         string         `json:"name" gorm:"not null;index"`
	Category     string         `json:"category" gorm:"index"`
	CostPrice    float64        `json:"cost_price"`
	OfflinePrice *float64       `json:"offline_price"`
	OnlinePrice  *float64       `json:"online_price"`
	Active       bool           `json:"active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// Competitor is a tracked competitor business
type Competitor struct {
	ID         uint                `json:"id" gorm:"primaryKey"`
	CompanyID  uint                `json:"company_id" gorm:"not null;index"`
	Name       string              `json:"name" gorm:"not null"`
	Category   string              `json:"category" gorm:"default:'restaurant'"` // restaurant, delivery, both
	PriceRange string              `json:"price_range" gorm:"default:'medium'"`  // budget, medium, premium
	IsActive   bool                `json:"is_active" gorm:"default:true"`
	Products   []CompetitorProduct `json:"products,omitempty" gorm:"foreignKey:CompetitorID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// CompetitorProduct is one externally observed competitor price. Rows are
// removed together with their competitor when tracking stops.
type CompetitorProduct struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompetitorID uint      `json:"competitor_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Category     string    `json:"category" gorm:"index"`
	Price        float64   `json:"price"`
	ObservedAt   time.Time `json:"observed_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
