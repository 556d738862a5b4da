package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	appcache "github.com/avpratap/riqueza-backend/cache"
	"github.com/avpratap/riqueza-backend/config"
	"github.com/avpratap/riqueza-backend/controllers"
	"github.com/avpratap/riqueza-backend/middleware"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/repository"
	"github.com/avpratap/riqueza-backend/services"
)

// Setup wires repositories, services and controllers onto a gin engine.
// redisClient may be nil; the guest cart then runs without its cache.
func Setup(cfg config.Config, db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	contactRepo := repository.NewContactRepository(db)

	var guestCache appcache.GuestCartCache = appcache.NoopGuestCartCache{}
	if redisClient != nil {
		guestCache = appcache.NewRedisGuestCartCache(redisClient, cfg.GuestCartTTL, logger)
	}

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	var sender services.SMSSender
	if twilio, err := services.NewTwilioSender(cfg); err == nil {
		sender = twilio
	} else {
		logger.Warn("falling back to dev SMS sender", zap.Error(err))
		sender = services.NewLogSender(logger)
	}
	otpService := services.NewOTPService(otpRepo, sender, cfg.OTPExpiry, logger)
	authService := services.NewAuthService(userRepo, otpService, tokens, logger)
	identityService := services.NewGuestIdentityService(userRepo, logger)
	cartService := services.NewCartService(cartRepo, logger)
	guestCartService := services.NewGuestCartService(cartService, identityService, guestCache, logger)
	transferService := services.NewCartTransferService(cartRepo, userRepo, guestCache, logger)
	orderService := services.NewOrderService(db, orderRepo, identityService, guestCache, logger)
	productService := services.NewProductService(productRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, contactRepo, logger)
	contactService := services.NewContactService(contactRepo, logger)

	authCtl := controllers.NewAuthController(authService, otpService, logger)
	cartCtl := controllers.NewCartController(cartService, logger)
	guestCartCtl := controllers.NewGuestCartController(guestCartService, logger)
	transferCtl := controllers.NewCartTransferController(transferService, logger)
	orderCtl := controllers.NewOrderController(orderService, logger)
	productCtl := controllers.NewProductController(productService, logger)
	reviewCtl := controllers.NewReviewController(reviewService, logger)
	contactCtl := controllers.NewContactController(contactService, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidators()
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", controllers.GuestSessionHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	otpLimiter := middleware.NewRateLimiter(rate.Every(time.Minute/5), 5)
	requireAuth := middleware.RequireAuth(tokens, userRepo, logger)
	requireAdmin := middleware.RequireRole(models.RoleAdmin)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/send-otp", otpLimiter.Middleware(), authCtl.SendOTP)
		auth.POST("/verify-otp", otpLimiter.Middleware(), authCtl.VerifyOTP)
		auth.POST("/signup", authCtl.Signup)
		auth.POST("/login", authCtl.Login)
		auth.GET("/profile", requireAuth, authCtl.Profile)
		auth.PUT("/profile", requireAuth, authCtl.UpdateProfile)
	}

	products := api.Group("/products")
	{
		products.GET("", productCtl.List)
		products.GET("/featured", productCtl.ListFeatured)
		products.GET("/:idOrSlug", productCtl.Get)
		products.POST("", requireAuth, requireAdmin, productCtl.Create)
		products.PUT("/:idOrSlug", requireAuth, requireAdmin, productCtl.Update)
		products.DELETE("/:idOrSlug", requireAuth, requireAdmin, productCtl.Deactivate)
	}

	accessories := api.Group("/accessories")
	{
		accessories.GET("", productCtl.ListAccessories)
		accessories.GET("/:id", productCtl.GetAccessory)
		accessories.POST("", requireAuth, requireAdmin, productCtl.CreateAccessory)
		accessories.PUT("/:id", requireAuth, requireAdmin, productCtl.UpdateAccessory)
		accessories.DELETE("/:id", requireAuth, requireAdmin, productCtl.DeactivateAccessory)
	}

	cart := api.Group("/cart", requireAuth)
	{
		cart.GET("", cartCtl.Get)
		cart.GET("/summary", cartCtl.Summary)
		cart.POST("/add", cartCtl.Add)
		cart.PUT("/items/:itemId/quantity", cartCtl.UpdateQuantity)
		cart.PUT("/items/:itemId/increment", cartCtl.Increment)
		cart.PUT("/items/:itemId/decrement", cartCtl.Decrement)
		cart.DELETE("/items/:itemId", cartCtl.Remove)
		cart.DELETE("/clear", cartCtl.Clear)
	}

	api.POST("/cart-transfer/transfer", requireAuth, transferCtl.Transfer)

	guestCart := api.Group("/guest-cart")
	{
		guestCart.GET("", guestCartCtl.Get)
		guestCart.GET("/summary", guestCartCtl.Summary)
		guestCart.POST("/add", guestCartCtl.Add)
		guestCart.PUT("/items/:itemId/quantity", guestCartCtl.UpdateQuantity)
		guestCart.PUT("/items/:itemId/increment", guestCartCtl.Increment)
		guestCart.PUT("/items/:itemId/decrement", guestCartCtl.Decrement)
		guestCart.DELETE("/items/:itemId", guestCartCtl.Remove)
		guestCart.DELETE("/clear", guestCartCtl.Clear)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", requireAuth, orderCtl.Create)
		orders.GET("", requireAuth, orderCtl.List)
		orders.GET("/:orderId", requireAuth, orderCtl.Get)
		orders.GET("/number/:orderNumber", requireAuth, orderCtl.GetByNumber)
		orders.GET("/:orderId/history", requireAuth, orderCtl.History)
		orders.POST("/:orderId/cancel", requireAuth, orderCtl.Cancel)
		orders.PUT("/:orderId/status", requireAuth, requireAdmin, orderCtl.UpdateStatus)
	}

	guestOrders := api.Group("/guest-orders")
	{
		guestOrders.POST("", orderCtl.CreateGuest)
		guestOrders.GET("/my-orders", orderCtl.ListGuest)
		guestOrders.GET("/number/:orderNumber", orderCtl.GetGuestByNumber)
		guestOrders.GET("/:orderId", orderCtl.GetGuest)
	}

	api.GET("/user-activities/:email", requireAuth, requireAdmin, contactCtl.Activities)

	admin := api.Group("/admin", requireAuth, requireAdmin)
	{
		admin.GET("/orders", orderCtl.ListAll)
		admin.GET("/orders/statistics", orderCtl.Statistics)
		admin.GET("/contact", contactCtl.List)
		admin.PUT("/contact/:id/status", contactCtl.UpdateStatus)
		admin.DELETE("/contact/:id", contactCtl.Delete)
		admin.GET("/reviews", reviewCtl.List)
		admin.DELETE("/reviews/:id", reviewCtl.Delete)
	}

	reviews := api.Group("/reviews")
	{
		reviews.POST("", reviewCtl.Submit)
		reviews.GET("/product/:productId", reviewCtl.ForProduct)
	}

	api.POST("/contact", contactCtl.Submit)

	return router
}
