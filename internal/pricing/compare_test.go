package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchProducts(t *testing.T) {
	ours := []ProductQuote{
		{Name: "Pizza Margherita", Category: "pizza", OfflinePrice: floatPtr(30)},
		{Name: "Ciorba de burta", Category: "soup", OfflinePrice: floatPtr(18)},
		{Name: "Tiramisu", Category: "dessert", OfflinePrice: floatPtr(15)},
	}
	theirs := []CompetitorQuote{
		{CompetitorName: "Trattoria Uno", Name: "pizza margherita xl", Category: "pizza", Price: 33},
		{CompetitorName: "La Mama", Name: "Margherita", Category: "pizza", Price: 28},
		{CompetitorName: "La Mama", Name: "Ciorba", Category: "soup", Price: 16},
		// same name, wrong category: must not match
		{CompetitorName: "La Mama", Name: "Tiramisu", Category: "drinks", Price: 12},
	}

	comparisons := MatchProducts(ours, theirs, "")

	if !assert.Len(t, comparisons, 2) {
		return
	}
	assert.Equal(t, "Pizza Margherita", comparisons[0].ProductName)
	assert.Len(t, comparisons[0].CompetitorPrices, 2)
	assert.Equal(t, "Ciorba de burta", comparisons[1].ProductName)

	// category filter narrows our side
	pizzaOnly := MatchProducts(ours, theirs, "pizza")
	assert.Len(t, pizzaOnly, 1)
	assert.Equal(t, "Pizza Margherita", pizzaOnly[0].ProductName)
}

func TestMatchProductsContainmentBothDirections(t *testing.T) {
	ours := []ProductQuote{{Name: "Burger", Category: "main", OfflinePrice: floatPtr(20)}}
	theirs := []CompetitorQuote{
		{CompetitorName: "A", Name: "Cheese Burger Deluxe", Category: "main", Price: 22},
	}

	// their name contains ours
	assert.Len(t, MatchProducts(ours, theirs, ""), 1)

	// ours contains theirs
	ours[0].Name = "Cheese Burger Deluxe XXL"
	theirs[0].Name = "burger deluxe"
	assert.Len(t, MatchProducts(ours, theirs, ""), 1)
}

func TestBuildComparison(t *testing.T) {
	our := ProductQuote{Name: "Pizza", Category: "pizza", OfflinePrice: floatPtr(30)}
	matches := []CompetitorQuote{
		{CompetitorName: "Uno", Price: 40},
		{CompetitorName: "Due", Price: 20},
	}

	cmp := BuildComparison(our, matches)

	assert.InDelta(t, 30, cmp.OurPrice, 1e-9)
	assert.InDelta(t, 30, cmp.MarketAverage, 1e-9)
	assert.Equal(t, PositionAverage, cmp.Position)
	assert.InDelta(t, -10, cmp.CompetitorPrices[0].Difference, 1e-9)
	assert.InDelta(t, -25, cmp.CompetitorPrices[0].DifferencePercent, 1e-9)
	assert.InDelta(t, 10, cmp.CompetitorPrices[1].Difference, 1e-9)
	assert.InDelta(t, 50, cmp.CompetitorPrices[1].DifferencePercent, 1e-9)
}

func TestBuildComparisonPositionBand(t *testing.T) {
	our := func(price float64) ProductQuote {
		return ProductQuote{Name: "Pizza", OfflinePrice: &price}
	}
	matches := []CompetitorQuote{{CompetitorName: "Uno", Price: 100}}

	tests := []struct {
		name     string
		ourPrice float64
		want     string
	}{
		{"price equal to market is average", 100, PositionAverage},
		{"band edges are inclusive of average", 95, PositionAverage},
		{"upper band edge", 105, PositionAverage},
		{"below the band", 94.9, PositionBelow},
		{"above the band", 105.1, PositionAbove},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildComparison(our(tc.ourPrice), matches).Position)
		})
	}
}

func TestBuildComparisonPriceFallback(t *testing.T) {
	matches := []CompetitorQuote{{CompetitorName: "Uno", Price: 10}}

	cmp := BuildComparison(ProductQuote{Name: "X", Cost: 7, OnlinePrice: floatPtr(12)}, matches)
	assert.InDelta(t, 12, cmp.OurPrice, 1e-9)

	cmp = BuildComparison(ProductQuote{Name: "X", Cost: 7}, matches)
	assert.InDelta(t, 7, cmp.OurPrice, 1e-9)
}

func TestComputeMarketInsights(t *testing.T) {
	comparisons := []Comparison{
		{OurPrice: 10, MarketAverage: 12, Position: PositionBelow},
		{OurPrice: 22, MarketAverage: 20, Position: PositionAbove},
		{OurPrice: 15, MarketAverage: 15, Position: PositionAverage},
		{OurPrice: 9, MarketAverage: 11, Position: PositionBelow},
	}
	competitors := []CompetitorInfo{
		{Name: "Uno", Category: "restaurant"},
		{Name: "Due", Category: "restaurant"},
		{Name: "Glovo Ghost", Category: "delivery"},
	}

	insights := ComputeMarketInsights(comparisons, competitors, 17)

	assert.Equal(t, 4, insights.TotalComparisons)
	assert.InDelta(t, 50, insights.PriceAdvantage, 1e-9)
	assert.InDelta(t, -0.5, insights.AvgPriceDifference, 1e-9)
	assert.Equal(t, map[string]int{"restaurant": 2, "delivery": 1}, insights.CompetitorsByType)
	assert.Equal(t, 17, insights.ProductsTracked)
}

func TestComputeMarketInsightsNoComparisons(t *testing.T) {
	insights := ComputeMarketInsights(nil, []CompetitorInfo{{Name: "Uno", Category: "both"}}, 0)
	assert.Zero(t, insights.PriceAdvantage)
	assert.Zero(t, insights.AvgPriceDifference)
	assert.Equal(t, 1, insights.CompetitorsByType["both"])
}
