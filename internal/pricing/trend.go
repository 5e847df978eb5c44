package pricing

import (
	"math"
	"time"
)

// Trend classifies an ingredient's recent price direction.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

const (
	// trendWindow is how many recent changes the classification looks at.
	trendWindow = 5
	// trendThreshold separates a real trend from noise, in percentage points.
	trendThreshold = 2.0
)

// HistoryEntry is one recorded price change. Lists handed to this package
// are ordered most-recent first.
type HistoryEntry struct {
	OldPrice      float64   `json:"old_price"`
	NewPrice      float64   `json:"new_price"`
	Change        float64   `json:"price_change"`
	ChangePercent float64   `json:"price_change_percent"`
	Reason        string    `json:"reason,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// ClassifyTrend looks at the mean change percent of the last trendWindow
// entries. History shorter than the window is classified on what exists;
// empty history is stable.
func ClassifyTrend(entries []HistoryEntry) Trend {
	if len(entries) == 0 {
		return TrendStable
	}
	window := entries
	if len(window) > trendWindow {
		window = window[:trendWindow]
	}
	changes := make([]float64, len(window))
	for i, e := range window {
		changes[i] = e.ChangePercent
	}
	mean, _ := Mean(changes)
	switch {
	case mean > trendThreshold:
		return TrendIncreasing
	case mean < -trendThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// Insights is the derived price analysis of one ingredient. It has no
// independent lifecycle: it is recomputed on demand from the full history.
type Insights struct {
	IngredientID         uint      `json:"ingredient_id"`
	CurrentPrice         float64   `json:"current_price"`
	Trend                Trend     `json:"trend"`
	TotalChangePercent   float64   `json:"total_change_percent"`
	AverageMonthlyChange float64   `json:"average_monthly_change"`
	HighestPrice         float64   `json:"highest_price"`
	HighestAt            time.Time `json:"highest_price_date"`
	LowestPrice          float64   `json:"lowest_price"`
	LowestAt             time.Time `json:"lowest_price_date"`
}

// ComputeInsights analyzes an ingredient's price history, ordered most-recent
// first. It returns nil when the history is empty: a price cannot be analyzed
// without at least one recorded change. now anchors the months-span
// computation so results stay reproducible.
func ComputeInsights(ingredientID uint, currentPrice float64, entries []HistoryEntry, now time.Time) *Insights {
	if len(entries) == 0 {
		return nil
	}

	oldest := entries[len(entries)-1]
	totalChange := 0.0
	if oldest.OldPrice != 0 {
		totalChange = (currentPrice - oldest.OldPrice) / oldest.OldPrice * 100
	}

	days := now.Sub(oldest.RecordedAt).Hours() / 24
	months := int(math.Ceil(days / 30))
	if months < 1 {
		months = 1
	}

	highest, highestAt := extremum(currentPrice, entries, now, func(a, b float64) bool { return a > b })
	lowest, lowestAt := extremum(currentPrice, entries, now, func(a, b float64) bool { return a < b })

	return &Insights{
		IngredientID:         ingredientID,
		CurrentPrice:         currentPrice,
		Trend:                ClassifyTrend(entries),
		TotalChangePercent:   totalChange,
		AverageMonthlyChange: totalChange / float64(months),
		HighestPrice:         highest,
		HighestAt:            highestAt,
		LowestPrice:          lowest,
		LowestAt:             lowestAt,
	}
}

// extremum scans the current price plus every entry's old and new price, then
// dates the result with the first entry in the (most-recent-first) list that
// carries the extreme value. When only the current price does, the extreme is
// dated now.
func extremum(currentPrice float64, entries []HistoryEntry, now time.Time, better func(a, b float64) bool) (float64, time.Time) {
	best := currentPrice
	for _, e := range entries {
		if better(e.OldPrice, best) {
			best = e.OldPrice
		}
		if better(e.NewPrice, best) {
			best = e.NewPrice
		}
	}
	for _, e := range entries {
		if e.OldPrice == best || e.NewPrice == best {
			return best, e.RecordedAt
		}
	}
	return best, now
}
