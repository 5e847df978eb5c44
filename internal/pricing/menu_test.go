package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumerateCombinations(t *testing.T) {
	soups := []ProductQuote{{Name: "A"}, {Name: "B"}}
	mains := []ProductQuote{{Name: "C"}, {Name: "D"}}

	pairs := EnumerateCombinations(soups, mains)

	if !assert.Len(t, pairs, 4) {
		return
	}
	names := make([][2]string, len(pairs))
	for i, p := range pairs {
		names[i] = [2]string{p[0].Name, p[1].Name}
	}
	assert.Equal(t, [][2]string{{"A", "C"}, {"A", "D"}, {"B", "C"}, {"B", "D"}}, names)

	assert.Empty(t, EnumerateCombinations(nil, mains))
	assert.Empty(t, EnumerateCombinations(soups, nil))
}

func TestSimulatePricesEachCombination(t *testing.T) {
	soups := []ProductQuote{{Name: "A", Cost: 4}, {Name: "B", Cost: 6}}
	mains := []ProductQuote{{Name: "C", Cost: 10}}

	combinations := Simulate(soups, mains, 30)

	if !assert.Len(t, combinations, 2) {
		return
	}
	assert.InDelta(t, 14, combinations[0].TotalCost, 1e-9)
	assert.InDelta(t, 16, combinations[0].Profit, 1e-9)
	assert.InDelta(t, 16, combinations[1].TotalCost, 1e-9)
	assert.InDelta(t, 14, combinations[1].Profit, 1e-9)
}

func TestReduceStatisticsEmpty(t *testing.T) {
	stats := ReduceStatistics(nil, DefaultPolicy())
	assert.Equal(t, Statistics{}, stats)
	assert.Zero(t, stats.TotalCombinations)
}

func TestReduceStatistics(t *testing.T) {
	combo := func(cost, profit, margin float64) Combination {
		return Combination{MenuCalculation: MenuCalculation{
			TotalCost:     cost,
			Profit:        profit,
			MarginPercent: margin,
		}}
	}
	combinations := []Combination{
		combo(12, 18, 150), // economic, profitable
		combo(15, 15, 100), // medium (boundary), profitable
		combo(19.99, 5, 25),
		combo(20, 2, 10), // premium (boundary)
		combo(26, -1, -3.8),
	}

	stats := ReduceStatistics(combinations, DefaultPolicy())

	assert.Equal(t, 5, stats.TotalCombinations)
	assert.InDelta(t, 12, stats.CostMin, 1e-9)
	assert.InDelta(t, 26, stats.CostMax, 1e-9)
	assert.InDelta(t, 18.598, stats.CostMean, 0.001)
	assert.InDelta(t, 7.8, stats.AvgProfit, 1e-9)
	assert.InDelta(t, -3.8, stats.MarginMin, 1e-9)
	assert.InDelta(t, 150, stats.MarginMax, 1e-9)
	assert.Equal(t, 2, stats.ProfitableCount)
	assert.Equal(t, 1, stats.EconomicCount)
	assert.Equal(t, 2, stats.MediumCount)
	assert.Equal(t, 2, stats.PremiumCount)
}

func TestReduceStatisticsCustomPolicy(t *testing.T) {
	combinations := []Combination{
		{MenuCalculation: MenuCalculation{TotalCost: 30, MarginPercent: 60}},
	}
	policy := Policy{EconomicCostMax: 35, MediumCostMax: 50, ExcellentMargin: 50}

	stats := ReduceStatistics(combinations, policy)

	assert.Equal(t, 1, stats.EconomicCount)
	assert.Equal(t, 1, stats.ProfitableCount)
}

func TestRecommendPricing(t *testing.T) {
	rec := RecommendPricing(10)

	assert.InDelta(t, 22, rec.Conservative.Price, 1e-9)
	assert.InDelta(t, 120, rec.Conservative.MarginPercent, 1e-9)
	assert.InDelta(t, 20, rec.Optimal.Price, 1e-9)
	assert.InDelta(t, 100, rec.Optimal.MarginPercent, 1e-9)
	assert.InDelta(t, 18, rec.Competitive.Price, 1e-9)
	assert.InDelta(t, 80, rec.Competitive.MarginPercent, 1e-9)
}

func TestTopN(t *testing.T) {
	combo := func(name string, margin float64) Combination {
		return Combination{
			First:           ProductQuote{Name: name},
			MenuCalculation: MenuCalculation{MarginPercent: margin},
		}
	}
	combinations := []Combination{
		combo("a", 40),
		combo("b", 90),
		combo("c", 40), // equal margin to "a": must stay after it
		combo("d", 10),
	}

	top := TopN(combinations, 3, false)
	if assert.Len(t, top, 3) {
		assert.Equal(t, "b", top[0].First.Name)
		assert.Equal(t, "a", top[1].First.Name)
		assert.Equal(t, "c", top[2].First.Name)
	}

	bottom := TopN(combinations, 2, true)
	if assert.Len(t, bottom, 2) {
		assert.Equal(t, "d", bottom[0].First.Name)
		assert.Equal(t, "a", bottom[1].First.Name)
	}

	// n larger than the input returns everything, input untouched
	all := TopN(combinations, 10, false)
	assert.Len(t, all, 4)
	assert.Equal(t, "a", combinations[0].First.Name)
}
