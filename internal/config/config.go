package config

import (
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	Port        string
	Environment string

	// External competitor price feed
	FeedURL    string
	FeedAPIKey string

	// Pricing policy defaults; tenants may override per-company via settings
	EconomicCostMax float64
	MediumCostMax   float64
	ExcellentMargin float64
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "root:resto@tcp(127.0.0.1:3306)/resto_pricer?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisURL:    getEnv("REDIS_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		FeedURL:    getEnv("FEED_URL", ""),
		FeedAPIKey: getEnv("FEED_API_KEY", ""),

		EconomicCostMax: getEnvFloat("ECONOMIC_COST_MAX", 15),
		MediumCostMax:   getEnvFloat("MEDIUM_COST_MAX", 20),
		ExcellentMargin: getEnvFloat("EXCELLENT_MARGIN", 100),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
