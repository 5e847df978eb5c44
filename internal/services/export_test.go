package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-pricer/internal/pricing"
)

func TestBuildPricingReport(t *testing.T) {
	comparisons := []pricing.Comparison{
		{
			ProductName:   "Margherita",
			OurPrice:      28,
			MarketAverage: 30,
			Position:      pricing.PositionBelow,
			CompetitorPrices: []pricing.CompetitorPrice{
				{CompetitorName: "Bistro Nord", Price: 32},
				{CompetitorName: "La Piazza", Price: 28},
			},
		},
	}
	report := &SimulationReport{
		SellingPrice: 25,
		Statistics: pricing.Statistics{
			TotalCombinations: 4,
			CostMean:          12.5,
			ProfitableCount:   2,
		},
		Recommendation: pricing.RecommendPricing(12.5),
	}

	f, err := BuildPricingReport(comparisons, report)
	require.NoError(t, err)

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Price Comparison")
	assert.Contains(t, sheets, "Menu Statistics")
	assert.NotContains(t, sheets, "Sheet1")

	name, err := f.GetCellValue("Price Comparison", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Margherita", name)

	count, err := f.GetCellValue("Price Comparison", "E2")
	require.NoError(t, err)
	assert.Equal(t, "2", count)

	metric, err := f.GetCellValue("Menu Statistics", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Combinations", metric)

	combos, err := f.GetCellValue("Menu Statistics", "B3")
	require.NoError(t, err)
	assert.Equal(t, "4", combos)
}

func TestBuildPricingReportWithoutSimulation(t *testing.T) {
	f, err := BuildPricingReport(nil, nil)
	require.NoError(t, err)

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Price Comparison")
	assert.NotContains(t, sheets, "Menu Statistics")
}
