package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"resto-pricer/internal/config"
	"resto-pricer/internal/database"
	"resto-pricer/internal/pricing"
	"resto-pricer/internal/services"

	"github.com/joho/godotenv"
)

var (
	dbURL        = flag.String("db", "", "database connection string (defaults to DATABASE_URL)")
	companyIDArg = flag.Uint("company", 0, "company id to analyze (required)")
	firstPool    = flag.String("first", "soup", "category of the first menu item")
	secondPool   = flag.String("second", "main", "category of the second menu item")
	sellingPrice = flag.Float64("price", 25, "menu selling price")
	topN         = flag.Int("top", 10, "how many best combinations to report")
	outputFile   = flag.String("output", "menu_analysis.json", "output file path")
	verbose      = flag.Bool("verbose", false, "print every combination")
)

func main() {
	flag.Parse()
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if *companyIDArg == 0 {
		log.Fatal("-company is required")
	}

	cfg := config.Load()
	if *dbURL != "" {
		cfg.DatabaseURL = *dbURL
	}

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	policy := pricing.Policy{
		EconomicCostMax: cfg.EconomicCostMax,
		MediumCostMax:   cfg.MediumCostMax,
		ExcellentMargin: cfg.ExcellentMargin,
	}
	menu := services.NewMenuService(db, policy)

	report, err := menu.Simulate(uint(*companyIDArg), *firstPool, *secondPool, *sellingPrice, *topN)
	if err != nil {
		log.Fatal("Simulation failed:", err)
	}

	stats := report.Statistics
	fmt.Printf("Menu simulation: %s x %s @ %.2f\n", *firstPool, *secondPool, *sellingPrice)
	fmt.Printf("  combinations: %d\n", stats.TotalCombinations)
	fmt.Printf("  cost:   min %.2f / mean %.2f / max %.2f\n", stats.CostMin, stats.CostMean, stats.CostMax)
	fmt.Printf("  margin: min %.1f%% / mean %.1f%% / max %.1f%%\n", stats.MarginMin, stats.MarginMean, stats.MarginMax)
	fmt.Printf("  profitable: %d  tiers: %d economic / %d medium / %d premium\n",
		stats.ProfitableCount, stats.EconomicCount, stats.MediumCount, stats.PremiumCount)
	fmt.Printf("  recommended price: %.2f conservative / %.2f optimal / %.2f competitive\n",
		report.Recommendation.Conservative.Price,
		report.Recommendation.Optimal.Price,
		report.Recommendation.Competitive.Price)

	if *verbose {
		for _, combo := range report.Combinations {
			fmt.Printf("  %-25s + %-25s cost %.2f margin %.1f%%\n",
				combo.First.Name, combo.Second.Name, combo.TotalCost, combo.MarginPercent)
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode report:", err)
	}
	if err := os.WriteFile(*outputFile, data, 0644); err != nil {
		log.Fatal("Failed to write report:", err)
	}
	log.Printf("Report written to %s", *outputFile)
}
