package routes

import (
	"time"

	"github.com/colorikids/retail-api/internal/config"
	domainRepo "github.com/colorikids/retail-api/internal/domain/repository"
	"github.com/colorikids/retail-api/internal/presentation/http/handler"
	"github.com/colorikids/retail-api/internal/presentation/http/middleware"
	"github.com/colorikids/retail-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Customer  *handler.CustomerHandler
	Order     *handler.OrderHandler
	Register  *handler.RegisterHandler
	Treasury  *handler.TreasuryHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerPublicRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	// Storefront catalog
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/products", h.Product.ListPublic)
		catalog.GET("/products/:slug", h.Product.GetBySlug)
		catalog.GET("/categories", h.Category.List)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	registerPOSRoutes(protected, h, deps)
	registerAdminRoutes(protected, h)
}

// registerPOSRoutes wires the register and sale workflow, available to
// cashiers and admins.
func registerPOSRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	pos := protected.Group("")
	pos.Use(middleware.RequireRole("CAIXA", "ADMIN"))

	idempotency := middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}

	registers := pos.Group("/registers")
	{
		registers.POST("/open", h.Register.Open)
		registers.GET("/current", h.Register.Current)
		registers.GET("", h.Register.List)
		registers.GET("/:id", h.Register.Get)
		registers.GET("/:id/summary", h.Register.Summary)
		registers.POST("/:id/close", middleware.Idempotency(idempotency), h.Register.Close)
		registers.POST("/:id/transactions", h.Register.AddTransaction)
	}

	orders := pos.Group("/orders")
	{
		orders.POST("", middleware.IdempotencyRequired(idempotency), h.Order.Create)
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/cancel", h.Order.Cancel)
		orders.GET("/:id/pix", h.Order.PixCharge)
	}

	printer := pos.Group("/print")
	{
		printer.GET("/status", h.Printer.Status)
		printer.POST("/test", h.Printer.Test)
		printer.POST("/receipt", h.Printer.PrintReceipt)
	}
}

// registerAdminRoutes wires the back-office surface, restricted to admins.
func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("")
	admin.Use(middleware.RequireRole("ADMIN"))

	products := admin.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", h.Product.Create)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	categories := admin.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}

	customers := admin.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	users := admin.Group("/users")
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.POST("", h.User.Create)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	treasury := admin.Group("/treasury")
	{
		treasury.GET("/transactions", h.Treasury.List)
		treasury.GET("/transactions/:id", h.Treasury.Get)
		treasury.POST("/transactions", h.Treasury.Create)
		treasury.POST("/transactions/:id/correct", h.Treasury.Correct)
		treasury.GET("/summary", h.Treasury.Summary)
	}

	admin.GET("/receivables", h.Order.ListReceivables)
	admin.POST("/receivables/:orderID/settle", h.Order.SettleReceivable)

	admin.GET("/settings", h.Settings.Get)
	admin.PUT("/settings", h.Settings.Update)
	admin.GET("/dashboard", h.Dashboard.Stats)
}
