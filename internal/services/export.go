package services

import (
	"fmt"

	"resto-pricer/internal/pricing"

	"github.com/xuri/excelize/v2"
)

// BuildPricingReport renders comparisons and menu statistics into an xlsx
// workbook. It is pure over its inputs so callers decide whether to stream or
// store the result.
func BuildPricingReport(comparisons []pricing.Comparison, report *SimulationReport) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeComparisonSheet(f, headerStyle, comparisons); err != nil {
		return nil, err
	}
	if report != nil {
		if err := writeMenuSheet(f, headerStyle, report); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeComparisonSheet(f *excelize.File, headerStyle int, comparisons []pricing.Comparison) error {
	const sheet = "Price Comparison"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	// replace the default sheet
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Product", "Our Price", "Market Average", "Position", "Competitors"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, cmp := range comparisons {
		values := []interface{}{
			cmp.ProductName,
			cmp.OurPrice,
			cmp.MarketAverage,
			cmp.Position,
			len(cmp.CompetitorPrices),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func writeMenuSheet(f *excelize.File, headerStyle int, report *SimulationReport) error {
	const sheet = "Menu Statistics"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	stats := report.Statistics
	rows := [][2]interface{}{
		{"Selling price", report.SellingPrice},
		{"Combinations", stats.TotalCombinations},
		{"Cost min", stats.CostMin},
		{"Cost max", stats.CostMax},
		{"Cost mean", stats.CostMean},
		{"Average profit", stats.AvgProfit},
		{"Margin min", stats.MarginMin},
		{"Margin max", stats.MarginMax},
		{"Margin mean", stats.MarginMean},
		{"Profitable combinations", stats.ProfitableCount},
		{"Economic tier", stats.EconomicCount},
		{"Medium tier", stats.MediumCount},
		{"Premium tier", stats.PremiumCount},
		{"Recommended (conservative)", report.Recommendation.Conservative.Price},
		{"Recommended (optimal)", report.Recommendation.Optimal.Price},
		{"Recommended (competitive)", report.Recommendation.Competitive.Price},
	}

	f.SetCellValue(sheet, "A1", "Metric")
	f.SetCellValue(sheet, "B1", "Value")
	f.SetCellStyle(sheet, "A1", "B1", headerStyle)
	for i, row := range rows {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		f.SetCellValue(sheet, cellA, row[0])
		f.SetCellValue(sheet, cellB, row[1])
	}
	return nil
}
