package pricing

import "sort"

// Policy carries the tenant-configurable business thresholds so the
// computations stay independent of any particular pricing policy.
type Policy struct {
	EconomicCostMax float64 `json:"economic_cost_max"`
	MediumCostMax   float64 `json:"medium_cost_max"`
	ExcellentMargin float64 `json:"excellent_margin"`
}

// DefaultPolicy returns the platform defaults.
func DefaultPolicy() Policy {
	return Policy{
		EconomicCostMax: 15,
		MediumCostMax:   20,
		ExcellentMargin: 100,
	}
}

// Combination is one enumerated two-item menu with its cost breakdown.
type Combination struct {
	First  ProductQuote `json:"first"`
	Second ProductQuote `json:"second"`
	MenuCalculation
}

// EnumerateCombinations builds the Cartesian product of two product pools,
// one combination per pair. Either pool being empty yields an empty result,
// not an error.
func EnumerateCombinations(poolA, poolB []ProductQuote) [][2]ProductQuote {
	pairs := make([][2]ProductQuote, 0, len(poolA)*len(poolB))
	for _, a := range poolA {
		for _, b := range poolB {
			pairs = append(pairs, [2]ProductQuote{a, b})
		}
	}
	return pairs
}

// PriceCombination prices one menu at the offline counter price.
func PriceCombination(sellingPrice float64, products []ProductQuote) MenuCalculation {
	return OfflineMenuPrice(sellingPrice, products)
}

// Simulate enumerates and prices every two-item menu from the pools at the
// given selling price.
func Simulate(poolA, poolB []ProductQuote, sellingPrice float64) []Combination {
	pairs := EnumerateCombinations(poolA, poolB)
	combinations := make([]Combination, len(pairs))
	for i, pair := range pairs {
		combinations[i] = Combination{
			First:           pair[0],
			Second:          pair[1],
			MenuCalculation: PriceCombination(sellingPrice, pair[:]),
		}
	}
	return combinations
}

// Statistics is the aggregate reduction over a set of menu combinations.
type Statistics struct {
	TotalCombinations int     `json:"total_combinations"`
	CostMin           float64 `json:"cost_min"`
	CostMax           float64 `json:"cost_max"`
	CostMean          float64 `json:"cost_mean"`
	AvgProfit         float64 `json:"avg_profit"`
	MarginMin         float64 `json:"margin_min"`
	MarginMax         float64 `json:"margin_max"`
	MarginMean        float64 `json:"margin_mean"`
	ProfitableCount   int     `json:"profitable_count"`
	EconomicCount     int     `json:"economic_count"`
	MediumCount       int     `json:"medium_count"`
	PremiumCount      int     `json:"premium_count"`
}

// ReduceStatistics reduces combinations into distribution statistics. An
// empty input returns the explicit zero record so no NaN ever reaches a
// caller.
func ReduceStatistics(combinations []Combination, policy Policy) Statistics {
	stats := Statistics{TotalCombinations: len(combinations)}
	if len(combinations) == 0 {
		return stats
	}

	costs := make([]float64, len(combinations))
	profits := make([]float64, len(combinations))
	margins := make([]float64, len(combinations))
	for i, c := range combinations {
		costs[i] = c.TotalCost
		profits[i] = c.Profit
		margins[i] = c.MarginPercent

		if c.MarginPercent >= policy.ExcellentMargin {
			stats.ProfitableCount++
		}
		switch {
		case c.TotalCost < policy.EconomicCostMax:
			stats.EconomicCount++
		case c.TotalCost < policy.MediumCostMax:
			stats.MediumCount++
		default:
			stats.PremiumCount++
		}
	}

	stats.CostMin, _ = Min(costs)
	stats.CostMax, _ = Max(costs)
	stats.CostMean, _ = Mean(costs)
	stats.AvgProfit, _ = Mean(profits)
	stats.MarginMin, _ = Min(margins)
	stats.MarginMax, _ = Max(margins)
	stats.MarginMean, _ = Mean(margins)
	return stats
}

// PricePoint is one recommended price with its implied margin.
type PricePoint struct {
	Price         float64 `json:"price"`
	MarginPercent float64 `json:"margin_percent"`
}

// Recommendation offers three price points around the mean combination cost.
type Recommendation struct {
	Conservative PricePoint `json:"conservative"`
	Optimal      PricePoint `json:"optimal"`
	Competitive  PricePoint `json:"competitive"`
}

// RecommendPricing derives fixed-multiplier price points from the mean cost.
func RecommendPricing(avgCost float64) Recommendation {
	return Recommendation{
		Conservative: PricePoint{Price: avgCost * 2.2, MarginPercent: 120},
		Optimal:      PricePoint{Price: avgCost * 2.0, MarginPercent: 100},
		Competitive:  PricePoint{Price: avgCost * 1.8, MarginPercent: 80},
	}
}

// TopN returns the n combinations with the best (or worst, when ascending)
// margins. The sort is stable so equal-margin combinations keep their input
// order.
func TopN(combinations []Combination, n int, ascending bool) []Combination {
	if n < 0 {
		n = 0
	}
	sorted := make([]Combination, len(combinations))
	copy(sorted, combinations)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].MarginPercent < sorted[j].MarginPercent
		}
		return sorted[i].MarginPercent > sorted[j].MarginPercent
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
