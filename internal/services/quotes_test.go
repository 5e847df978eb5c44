package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resto-pricer/internal/models"
)

func TestQuotesFromProducts(t *testing.T) {
	offline := 25.0
	products := []models.Product{
		{ID: 1, Name: "Tomato Soup", Category: "soup", CostPrice: 5.2, OfflinePrice: &offline},
		{ID: 2, Name: "Steak", Category: "main", CostPrice: 18.0},
	}

	quotes := quotesFromProducts(products)

	assert.Len(t, quotes, 2)
	assert.Equal(t, uint(1), quotes[0].ID)
	assert.Equal(t, "Tomato Soup", quotes[0].Name)
	assert.Equal(t, 5.2, quotes[0].Cost)
	assert.Equal(t, &offline, quotes[0].OfflinePrice)
	assert.Nil(t, quotes[1].OfflinePrice)
	assert.Nil(t, quotes[1].OnlinePrice)
}

func TestCompetitorQuotesFlattens(t *testing.T) {
	competitors := []models.Competitor{
		{
			ID:   7,
			Name: "Bistro Nord",
			Products: []models.CompetitorProduct{
				{Name: "Soup of the Day", Category: "soup", Price: 6.5},
				{Name: "Ribeye", Category: "main", Price: 32.0},
			},
		},
		{ID: 8, Name: "No Menu Yet"},
	}

	quotes := competitorQuotes(competitors)

	assert.Len(t, quotes, 2)
	assert.Equal(t, uint(7), quotes[0].CompetitorID)
	assert.Equal(t, "Bistro Nord", quotes[1].CompetitorName)
	assert.Equal(t, 32.0, quotes[1].Price)
}

func TestHistoryEntries(t *testing.T) {
	now := time.Now()
	rows := []models.PriceHistory{
		{OldPrice: 10, NewPrice: 11, PriceChange: 1, PriceChangePercent: 10, Reason: "supplier", RecordedAt: now},
	}

	entries := historyEntries(rows)

	assert.Len(t, entries, 1)
	assert.Equal(t, 10.0, entries[0].OldPrice)
	assert.Equal(t, 11.0, entries[0].NewPrice)
	assert.Equal(t, 10.0, entries[0].ChangePercent)
	assert.Equal(t, "supplier", entries[0].Reason)
	assert.Equal(t, now, entries[0].RecordedAt)
}

func TestIngredientLines(t *testing.T) {
	rows := []models.RecipeIngredient{
		{Name: "Flour", Quantity: 0.5, Unit: "kg", Cost: 1.2},
		{Name: "Eggs", Quantity: 3, Unit: "pcs", Cost: 1.8},
	}

	lines := ingredientLines(rows)

	assert.Len(t, lines, 2)
	assert.Equal(t, "Flour", lines[0].Name)
	assert.Equal(t, 1.8, lines[1].Cost)
}
