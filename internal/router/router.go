// internal/router/router.go
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/promolink/affiliate-backend/internal/catalog"
	"github.com/promolink/affiliate-backend/internal/config"
	"github.com/promolink/affiliate-backend/internal/handlers"
	"github.com/promolink/affiliate-backend/internal/middleware"
	"github.com/promolink/affiliate-backend/internal/models"
	"github.com/promolink/affiliate-backend/internal/services"
)

func Initialize(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *gin.Engine {
	// Catalog collaborator, with the product-by-id path cached in redis
	catalogClient := catalog.NewClient(cfg.Catalog)
	cacheTTL := time.Duration(cfg.Catalog.CacheTTL) * time.Second
	productCache := catalog.NewProductCache(catalogClient, rdb, cacheTTL)

	// cachedCatalog keeps campaign lookups on the raw client while product
	// lookups go through the cache.
	cat := cachedCatalog{
		ProductGetter: productCache,
		client:        catalogClient,
	}

	// Initialize services
	linkService := services.NewLinkService(db)
	financeService := services.NewFinanceService(db)
	hotlinkService := services.NewHotlinkService(linkService, financeService, productCache, cfg.Catalog.MaxConcurrent)
	campaignService := services.NewCampaignService(cat, cfg.Catalog.MaxConcurrent)
	productService := services.NewProductService(catalogClient)
	payoutService := services.NewPayoutService(db, cfg)
	couponService := services.NewCouponService(db)

	// Initialize handlers
	linkHandler := handlers.NewLinkHandler(linkService)
	hotlinkHandler := handlers.NewHotlinkHandler(hotlinkService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	productHandler := handlers.NewProductHandler(productService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	payoutHandler := handlers.NewPayoutHandler(payoutService)
	couponHandler := handlers.NewCouponHandler(couponService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		links := v1.Group("/links")
		{
			links.POST("", linkHandler.CreateLink)
			links.GET("", linkHandler.GetLinks)
			links.GET("/:id", linkHandler.GetLink)
			links.DELETE("/:id", linkHandler.ExpireLink)
			links.POST("/:id/restore", linkHandler.RestoreLink)
			links.POST("/:id/click", linkHandler.TrackClick)
		}

		v1.GET("/hotlinks", hotlinkHandler.GetHotlinks)
		v1.GET("/products", productHandler.GetProducts)

		campaigns := v1.Group("/campaigns")
		{
			campaigns.GET("", campaignHandler.GetCampaigns)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
		}

		finance := v1.Group("/finance")
		{
			finance.GET("/records", financeHandler.GetRecords)
			finance.GET("/summary", financeHandler.GetSummary)
		}

		payouts := v1.Group("/payouts")
		{
			payouts.GET("", payoutHandler.GetPayouts)
			payouts.GET("/balance", payoutHandler.GetBalance)
			payouts.POST("", middleware.PayoutRateLimit(), payoutHandler.RequestPayout)
		}

		v1.GET("/coupons", couponHandler.GetCoupons)
	}

	return r
}

type cachedCatalog struct {
	catalog.ProductGetter
	client *catalog.Client
}

func (c cachedCatalog) GetCampaign(ctx context.Context, id uint) (*models.Campaign, error) {
	return c.client.GetCampaign(ctx, id)
}
