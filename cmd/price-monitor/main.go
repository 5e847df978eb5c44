package main

import (
	"flag"
	"log"
	"time"

	"resto-pricer/internal/config"
	"resto-pricer/internal/database"
	"resto-pricer/internal/models"
	"resto-pricer/internal/pricing"
	"resto-pricer/internal/services"
	"resto-pricer/internal/services/feed"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var (
	dbURL    = flag.String("db", "", "database connection string (defaults to DATABASE_URL)")
	interval = flag.Int("interval", 3600, "monitor interval in seconds")
	once     = flag.Bool("once", false, "run a single cycle and exit")
	syncFeed = flag.Bool("sync-feed", true, "refresh competitor observations from the feed each cycle")
)

func main() {
	flag.Parse()
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if *dbURL != "" {
		cfg.DatabaseURL = *dbURL
	}

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	history := services.NewHistoryService(db, nil)
	competitors := services.NewCompetitorService(db)
	feedClient := feed.NewClient(cfg.FeedURL, cfg.FeedAPIKey)

	for {
		runCycle(db, history, competitors, feedClient)
		if *once {
			return
		}
		time.Sleep(time.Duration(*interval) * time.Second)
	}
}

func runCycle(db *gorm.DB, history *services.HistoryService, competitors *services.CompetitorService, feedClient *feed.Client) {
	start := time.Now()
	log.Println("Starting monitor cycle")

	var companies []models.Company
	if err := db.Find(&companies).Error; err != nil {
		log.Printf("Failed to list companies: %v", err)
		return
	}

	for _, company := range companies {
		if *syncFeed && feedClient.Configured() {
			synced, err := services.SyncCompetitorFeed(competitors, feedClient, company.ID)
			if err != nil {
				log.Printf("[%s] feed sync finished with errors: %v", company.Name, err)
			}
			if synced > 0 {
				log.Printf("[%s] refreshed %d competitor observations", company.Name, synced)
			}
		}
		scanTrends(db, history, company)
	}

	log.Printf("Cycle finished in %s", time.Since(start).Round(time.Millisecond))
}

// scanTrends reports every ingredient whose recent price changes classify as
// increasing, so rising costs surface before they eat the margin.
func scanTrends(db *gorm.DB, history *services.HistoryService, company models.Company) {
	var ingredients []models.Ingredient
	if err := db.Where("company_id = ?", company.ID).Find(&ingredients).Error; err != nil {
		log.Printf("[%s] failed to list ingredients: %v", company.Name, err)
		return
	}

	for _, ingredient := range ingredients {
		insights, err := history.Insights(company.ID, ingredient.ID)
		if err != nil {
			log.Printf("[%s] %s: %v", company.Name, ingredient.Name, err)
			continue
		}
		if insights == nil {
			continue // no recorded changes yet
		}
		if insights.Trend == pricing.TrendIncreasing {
			log.Printf("[%s] ALERT %s trending up: %.2f now, %+.1f%% total, %+.1f%%/month",
				company.Name, ingredient.Name,
				insights.CurrentPrice, insights.TotalChangePercent, insights.AverageMonthlyChange)
		}
	}
}
