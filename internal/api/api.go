package api

import (
	"errors"
	"net/http"

	"resto-pricer/internal/config"
	"resto-pricer/internal/services"
	"resto-pricer/internal/services/feed"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type APIHandler struct {
	db          *gorm.DB
	cfg         *config.Config
	recipes     *services.RecipeService
	history     *services.HistoryService
	competitors *services.CompetitorService
	menu        *services.MenuService
	feedClient  *feed.Client
}

func SetupRoutes(r *gin.RouterGroup, db *gorm.DB, rdb *redis.Client, cfg *config.Config, policyMenu *services.MenuService) *APIHandler {
	handler := &APIHandler{
		db:          db,
		cfg:         cfg,
		recipes:     services.NewRecipeService(db),
		history:     services.NewHistoryService(db, rdb),
		competitors: services.NewCompetitorService(db),
		menu:        policyMenu,
		feedClient:  feed.NewClient(cfg.FeedURL, cfg.FeedAPIKey),
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.GET("/me", AuthRequired(cfg.JWTSecret), handler.CurrentUser)
	}

	protected := r.Group("")
	protected.Use(AuthRequired(cfg.JWTSecret))

	ingredients := protected.Group("/ingredients")
	{
		ingredients.GET("", handler.ListIngredients)
		ingredients.POST("", handler.CreateIngredient)
		ingredients.GET("/:id", handler.GetIngredient)
		ingredients.PUT("/:id", handler.UpdateIngredient)
		ingredients.DELETE("/:id", AdminOnly(), handler.DeleteIngredient)
		ingredients.PUT("/:id/price", handler.UpdateIngredientPrice)
		ingredients.GET("/:id/history", handler.IngredientHistory)
		ingredients.GET("/:id/insights", handler.IngredientInsights)
	}

	recipes := protected.Group("/recipes")
	{
		recipes.GET("", handler.ListRecipes)
		recipes.POST("", handler.CreateRecipe)
		recipes.GET("/:id", handler.GetRecipe)
		recipes.PUT("/:id", handler.UpdateRecipe)
		recipes.DELETE("/:id", AdminOnly(), handler.DeleteRecipe)
	}

	products := protected.Group("/products")
	{
		products.GET("", handler.ListProducts)
		products.POST("", handler.CreateProduct)
		products.GET("/:id", handler.GetProduct)
		products.PUT("/:id", handler.UpdateProduct)
		products.DELETE("/:id", AdminOnly(), handler.DeleteProduct)
	}

	competitors := protected.Group("/competitors")
	{
		competitors.GET("", handler.ListCompetitors)
		competitors.POST("", handler.CreateCompetitor)
		competitors.GET("/compare", handler.CompareCompetitors)
		competitors.GET("/insights", handler.MarketInsights)
		competitors.POST("/sync", handler.SyncAllCompetitors)
		competitors.GET("/:id", handler.GetCompetitor)
		competitors.PUT("/:id", handler.UpdateCompetitor)
		competitors.DELETE("/:id", AdminOnly(), handler.DeleteCompetitor)
		competitors.POST("/:id/products", handler.AddCompetitorProduct)
		competitors.POST("/:id/sync", handler.SyncCompetitor)
	}

	menu := protected.Group("/menu")
	{
		menu.GET("/simulate", handler.SimulateMenu)
		menu.GET("/recommendations", handler.MenuRecommendations)
	}

	protected.GET("/reports/pricing", handler.PricingReport)

	settings := protected.Group("/settings")
	{
		settings.GET("", handler.ListSettings)
		settings.PUT("/:key", AdminOnly(), handler.PutSetting)
	}

	return handler
}

// fail maps service errors onto HTTP statuses with a uniform body.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, services.ErrNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
