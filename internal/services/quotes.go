// Package services holds the CRUD and orchestration layer: it fetches
// records with gorm, hands plain snapshots to the pricing package, and
// persists whatever the caller wants kept. All tenant scoping is explicit —
// every entry point takes the company ID resolved by the API layer.
package services

import (
	"resto-pricer/internal/models"
	"resto-pricer/internal/pricing"
)

func quoteFromProduct(p models.Product) pricing.ProductQuote {
	return pricing.ProductQuote{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Cost:         p.CostPrice,
		OfflinePrice: p.OfflinePrice,
		OnlinePrice:  p.OnlinePrice,
	}
}

func quotesFromProducts(products []models.Product) []pricing.ProductQuote {
	quotes := make([]pricing.ProductQuote, len(products))
	for i, p := range products {
		quotes[i] = quoteFromProduct(p)
	}
	return quotes
}

func competitorQuotes(competitors []models.Competitor) []pricing.CompetitorQuote {
	var quotes []pricing.CompetitorQuote
	for _, c := range competitors {
		for _, p := range c.Products {
			quotes = append(quotes, pricing.CompetitorQuote{
				CompetitorID:   c.ID,
				CompetitorName: c.Name,
				Name:           p.Name,
				Category:       p.Category,
				Price:          p.Price,
			})
		}
	}
	return quotes
}

func historyEntries(rows []models.PriceHistory) []pricing.HistoryEntry {
	entries := make([]pricing.HistoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = pricing.HistoryEntry{
			OldPrice:      row.OldPrice,
			NewPrice:      row.NewPrice,
			Change:        row.PriceChange,
			ChangePercent: row.PriceChangePercent,
			Reason:        row.Reason,
			RecordedAt:    row.RecordedAt,
		}
	}
	return entries
}

func ingredientLines(rows []models.RecipeIngredient) []pricing.IngredientLine {
	lines := make([]pricing.IngredientLine, len(rows))
	for i, row := range rows {
		lines[i] = pricing.IngredientLine{
			Name:     row.Name,
			Quantity: row.Quantity,
			Unit:     row.Unit,
			Cost:     row.Cost,
		}
	}
	return lines
}
