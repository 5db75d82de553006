package routes

import (
	"time"

	"github.com/fajara33/rd-company/internal/config"
	"github.com/fajara33/rd-company/internal/presentation/http/handler"
	"github.com/fajara33/rd-company/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Dashboard   *handler.DashboardHandler
	Inventory   *handler.InventoryHandler
	POS         *handler.POSHandler
	Transaction *handler.TransactionHandler
	Attendance  *handler.AttendanceHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		v1.GET("/dashboard/summary", h.Dashboard.GetSummary)

		stock := v1.Group("/stock")
		{
			stock.GET("", h.Inventory.List)
			stock.POST("", h.Inventory.Create)
			stock.GET("/categories", h.Inventory.ListCategories)
			stock.POST("/:id/adjust", h.Inventory.Adjust)
		}

		pos := v1.Group("/pos")
		{
			pos.GET("/laundry/services", h.POS.ListLaundryServices)
			pos.GET("/laundry/price-suggestion", h.POS.SuggestPrice)
			pos.POST("/laundry", h.POS.LaundryCheckout)
			pos.POST("/retail", h.POS.RetailCheckout)
			pos.POST("/konter", h.POS.KonterCheckout)
		}

		v1.GET("/transactions", h.Transaction.List)

		attendance := v1.Group("/attendance")
		{
			attendance.GET("", h.Attendance.List)
			attendance.POST("", h.Attendance.Create)
		}
	}

	return router
}
