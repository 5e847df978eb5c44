package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestComputeRecipeCost(t *testing.T) {
	tests := []struct {
		name        string
		lines       []IngredientLine
		servings    int
		wantTotal   float64
		wantPerServ float64
		wantErr     bool
	}{
		{
			name: "sums ingredient lines",
			lines: []IngredientLine{
				{Name: "flour", Quantity: 0.5, Unit: "kg", Cost: 2.5},
				{Name: "tomatoes", Quantity: 0.3, Unit: "kg", Cost: 1.8},
				{Name: "mozzarella", Quantity: 0.2, Unit: "kg", Cost: 6.2},
			},
			servings:    2,
			wantTotal:   10.5,
			wantPerServ: 5.25,
		},
		{
			name:        "empty recipe costs zero",
			lines:       nil,
			servings:    4,
			wantTotal:   0,
			wantPerServ: 0,
		},
		{
			name:     "zero servings rejected",
			lines:    []IngredientLine{{Name: "flour", Cost: 2.5}},
			servings: 0,
			wantErr:  true,
		},
		{
			name:     "negative servings rejected",
			servings: -3,
			wantErr:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeRecipeCost(tc.lines, tc.servings)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tc.wantTotal, got.TotalCost, 1e-9)
			assert.InDelta(t, tc.wantPerServ, got.CostPerServing, 1e-9)
			// per-serving times servings reproduces the total
			assert.InDelta(t, got.TotalCost, got.CostPerServing*float64(tc.servings), 1e-9)
		})
	}
}

func TestMargin(t *testing.T) {
	assert.Nil(t, Margin(5, nil))
	assert.Nil(t, Margin(5, floatPtr(0)))

	m := Margin(5, floatPtr(20))
	if assert.NotNil(t, m) {
		assert.InDelta(t, 75, *m, 1e-9)
	}

	// monotonically increasing in the selling price for fixed cost
	prev := -1000.0
	for _, price := range []float64{6, 8, 12, 20, 50} {
		m := Margin(5, &price)
		if assert.NotNil(t, m) {
			assert.Greater(t, *m, prev)
			prev = *m
		}
	}
}

func TestOfflineMenuPrice(t *testing.T) {
	products := []ProductQuote{
		{Name: "Ciorba de burta", Category: "soup", Cost: 5.23, OfflinePrice: floatPtr(14)},
		{Name: "Sarmale", Category: "main", Cost: 15.12, OfflinePrice: floatPtr(28)},
	}

	calc := OfflineMenuPrice(25, products)

	assert.InDelta(t, 20.35, calc.ProductCost, 1e-9)
	assert.Zero(t, calc.PackagingCost)
	assert.Zero(t, calc.Commission)
	assert.InDelta(t, 20.35, calc.TotalCost, 1e-9)
	assert.InDelta(t, 4.65, calc.Profit, 1e-9)
	assert.InDelta(t, 22.85, calc.MarginPercent, 0.01)
	assert.InDelta(t, 42, calc.ReferencePrice, 1e-9)
	assert.InDelta(t, 17, calc.Savings, 1e-9)
	assert.True(t, calc.IsValid)
}

func TestOfflineMenuPriceZeroCost(t *testing.T) {
	// zero product cost must not divide by zero
	calc := OfflineMenuPrice(10, nil)
	assert.Zero(t, calc.MarginPercent)
	assert.InDelta(t, 10, calc.Profit, 1e-9)
	assert.True(t, calc.IsValid)
}

func TestReferencePriceFallback(t *testing.T) {
	tests := []struct {
		name    string
		product ProductQuote
		want    float64
	}{
		{"offline wins", ProductQuote{Cost: 3, OfflinePrice: floatPtr(10), OnlinePrice: floatPtr(12)}, 10},
		{"online when no offline", ProductQuote{Cost: 3, OnlinePrice: floatPtr(12)}, 12},
		{"cost as last resort", ProductQuote{Cost: 3}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.product.ReferencePrice())
		})
	}
}
