package pricing

import "errors"

// ErrInvalidInput is returned for malformed or out-of-range input, e.g. a
// recipe with zero servings.
var ErrInvalidInput = errors.New("invalid input")

// IngredientLine is one ingredient's contribution to a recipe cost.
type IngredientLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Cost     float64 `json:"cost"`
}

// RecipeCost holds the derived cost fields of a recipe.
type RecipeCost struct {
	TotalCost      float64 `json:"total_cost"`
	CostPerServing float64 `json:"cost_per_serving"`
}

// ComputeRecipeCost sums the ingredient lines and divides by servings.
// An empty line list is a valid recipe with zero cost (recipes are commonly
// created before ingredients are attached); servings must be positive.
func ComputeRecipeCost(lines []IngredientLine, servings int) (RecipeCost, error) {
	if servings <= 0 {
		return RecipeCost{}, ErrInvalidInput
	}
	costs := make([]float64, len(lines))
	for i, line := range lines {
		costs[i] = line.Cost
	}
	total := Sum(costs)
	return RecipeCost{
		TotalCost:      total,
		CostPerServing: total / float64(servings),
	}, nil
}

// Margin computes the profit margin percent for one serving. It returns nil
// when the selling price is absent or zero: a recipe without a price has no
// margin, and that is an expected state, not an error.
func Margin(costPerServing float64, sellingPrice *float64) *float64 {
	if sellingPrice == nil || *sellingPrice == 0 {
		return nil
	}
	m := (*sellingPrice - costPerServing) / *sellingPrice * 100
	return &m
}

// ProductQuote is a catalog product snapshot with its per-channel prices,
// used both for menu simulation and competitor matching.
type ProductQuote struct {
	ID           uint     `json:"id,omitempty"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Cost         float64  `json:"cost"`
	OfflinePrice *float64 `json:"offline_price,omitempty"`
	OnlinePrice  *float64 `json:"online_price,omitempty"`
}

// ReferencePrice is the product's standalone price: offline first, falling
// back to online, falling back to raw cost.
func (p ProductQuote) ReferencePrice() float64 {
	if p.OfflinePrice != nil {
		return *p.OfflinePrice
	}
	if p.OnlinePrice != nil {
		return *p.OnlinePrice
	}
	return p.Cost
}

// MenuCalculation is the cost breakdown of one priced menu.
type MenuCalculation struct {
	Price          float64 `json:"price"`
	ProductCost    float64 `json:"product_cost"`
	PackagingCost  float64 `json:"packaging_cost"`
	Commission     float64 `json:"commission"`
	TotalCost      float64 `json:"total_cost"`
	Profit         float64 `json:"profit"`
	MarginPercent  float64 `json:"margin_percent"`
	ReferencePrice float64 `json:"reference_price"`
	Savings        float64 `json:"savings"`
	IsValid        bool    `json:"is_valid"`
}

// OfflineMenuPrice prices a menu sold at the counter. The offline channel
// carries no packaging cost and no commission, and offline pricing is not
// constrained by a minimum margin, so the result is always valid.
func OfflineMenuPrice(sellingPrice float64, products []ProductQuote) MenuCalculation {
	costs := make([]float64, len(products))
	reference := 0.0
	for i, p := range products {
		costs[i] = p.Cost
		reference += p.ReferencePrice()
	}
	productCost := Sum(costs)
	totalCost := productCost // +0 packaging +0 commission
	profit := sellingPrice - totalCost

	margin := 0.0
	if productCost != 0 {
		margin = profit / productCost * 100
	}

	return MenuCalculation{
		Price:          sellingPrice,
		ProductCost:    productCost,
		PackagingCost:  0,
		Commission:     0,
		TotalCost:      totalCost,
		Profit:         profit,
		MarginPercent:  margin,
		ReferencePrice: reference,
		Savings:        reference - sellingPrice,
		IsValid:        true,
	}
}
