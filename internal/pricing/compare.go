package pricing

import "strings"

// Market positions relative to the matched competitor average.
const (
	PositionBelow   = "below"
	PositionAverage = "average"
	PositionAbove   = "above"
)

// positionBand is the fraction around the market average inside which a price
// counts as average rather than materially different.
const positionBand = 0.05

// CompetitorQuote is one externally observed competitor product price.
type CompetitorQuote struct {
	CompetitorID   uint    `json:"competitor_id"`
	CompetitorName string  `json:"competitor_name"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
}

// CompetitorPrice is one competitor's price next to ours.
type CompetitorPrice struct {
	CompetitorName    string  `json:"competitor_name"`
	Price             float64 `json:"price"`
	Difference        float64 `json:"difference"`
	DifferencePercent float64 `json:"difference_percent"`
}

// Comparison is the market view of a single product, computed fresh from
// current snapshots and never persisted.
type Comparison struct {
	ProductName      string            `json:"product_name"`
	OurPrice         float64           `json:"our_price"`
	CompetitorPrices []CompetitorPrice `json:"competitor_prices"`
	MarketAverage    float64           `json:"market_average"`
	Position         string            `json:"our_position"`
}

// MatchProducts compares our catalog against observed competitor products.
// When category is non-empty only our products in that category are
// considered. A competitor product matches when it shares the category and
// either name contains the other, case-insensitively. Products with no match
// are silently excluded: absence of a comparison is not an error.
func MatchProducts(ours []ProductQuote, theirs []CompetitorQuote, category string) []Comparison {
	comparisons := make([]Comparison, 0, len(ours))
	for _, product := range ours {
		if category != "" && product.Category != category {
			continue
		}
		var matches []CompetitorQuote
		for _, cq := range theirs {
			if cq.Category == product.Category && namesMatch(product.Name, cq.Name) {
				matches = append(matches, cq)
			}
		}
		if len(matches) == 0 {
			continue
		}
		comparisons = append(comparisons, BuildComparison(product, matches))
	}
	return comparisons
}

func namesMatch(ours, theirs string) bool {
	a := strings.ToLower(ours)
	b := strings.ToLower(theirs)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// BuildComparison positions one product against its matched competitor
// prices. Our price falls back offline → online → cost, whichever is first
// set.
func BuildComparison(our ProductQuote, matches []CompetitorQuote) Comparison {
	ourPrice := our.ReferencePrice()

	prices := make([]CompetitorPrice, len(matches))
	matchPrices := make([]float64, len(matches))
	for i, m := range matches {
		diff := ourPrice - m.Price
		diffPercent := 0.0
		if m.Price != 0 {
			diffPercent = diff / m.Price * 100
		}
		prices[i] = CompetitorPrice{
			CompetitorName:    m.CompetitorName,
			Price:             m.Price,
			Difference:        diff,
			DifferencePercent: diffPercent,
		}
		matchPrices[i] = m.Price
	}

	marketAverage, err := Mean(matchPrices)
	if err != nil {
		marketAverage = 0
	}

	position := PositionAverage
	switch {
	case ourPrice < marketAverage*(1-positionBand):
		position = PositionBelow
	case ourPrice > marketAverage*(1+positionBand):
		position = PositionAbove
	}

	return Comparison{
		ProductName:      our.Name,
		OurPrice:         ourPrice,
		CompetitorPrices: prices,
		MarketAverage:    marketAverage,
		Position:         position,
	}
}

// CompetitorInfo is the slice of a competitor record the market summary needs.
type CompetitorInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// MarketInsights summarizes where the company stands across all comparisons.
type MarketInsights struct {
	TotalComparisons   int            `json:"total_comparisons"`
	PriceAdvantage     float64        `json:"price_advantage"`
	AvgPriceDifference float64        `json:"avg_price_difference"`
	CompetitorsByType  map[string]int `json:"competitors_by_type"`
	ProductsTracked    int            `json:"products_tracked"`
}

// ComputeMarketInsights reduces per-product comparisons into a market summary.
func ComputeMarketInsights(comparisons []Comparison, competitors []CompetitorInfo, productsTracked int) MarketInsights {
	byType := make(map[string]int)
	for _, c := range competitors {
		byType[c.Category]++
	}

	insights := MarketInsights{
		TotalComparisons:  len(comparisons),
		CompetitorsByType: byType,
		ProductsTracked:   productsTracked,
	}
	if len(comparisons) == 0 {
		return insights
	}

	below := 0
	diffs := make([]float64, len(comparisons))
	for i, c := range comparisons {
		if c.Position == PositionBelow {
			below++
		}
		diffs[i] = c.OurPrice - c.MarketAverage
	}
	insights.PriceAdvantage = float64(below) / float64(len(comparisons)) * 100
	insights.AvgPriceDifference, _ = Mean(diffs)
	return insights
}
