package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/timsachnhabe/bookstore-api/internal/cache"
	"github.com/timsachnhabe/bookstore-api/internal/config"
	"github.com/timsachnhabe/bookstore-api/internal/database"
	"github.com/timsachnhabe/bookstore-api/internal/handler"
	"github.com/timsachnhabe/bookstore-api/internal/middleware"
	"github.com/timsachnhabe/bookstore-api/internal/repository"
	"github.com/timsachnhabe/bookstore-api/internal/seed"
	"github.com/timsachnhabe/bookstore-api/internal/service"
	"github.com/timsachnhabe/bookstore-api/internal/utils"
)

// main is the application entrypoint for the Tim Sach Nha Be bookstore API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting bookstore api")

	if cfg.Mongo.URI == "" {
		// Misconfiguration, not a crash: connection attempts will fail and
		// retry forever while the API stays reachable.
		log.Error().Msg("SERVER_URI_MONGODB is not set, store connection will never succeed")
	}
	utils.ConfigureJWT(cfg.JWTSecret)

	// 3. Create context for process lifetime
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 4. Start the store connection manager; on the first successful
	// connection it runs the one-time sample seed. Neither blocks the
	// HTTP surface below.
	var mgr *database.Manager
	mgr = database.NewManager(database.ManagerConfig{
		Dial:              database.MongoDialer(cfg.Mongo),
		RetryDelay:        cfg.Mongo.RetryDelay,
		HeartbeatInterval: cfg.Mongo.HeartbeatInterval,
		PingTimeout:       cfg.Mongo.SelectionTimeout,
		OnFirstConnect: func(ctx context.Context) {
			go bootstrap(ctx, mgr)
		},
	})
	mgr.Start(ctx)

	// 5. Connect to Redis (optional cache; never blocks startup)
	var productCache *cache.ProductCache
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable - product cache disabled")
		} else {
			defer redisClient.Close()
			productCache = cache.NewProductCache(redisClient)
			log.Info().Msg("redis connected successfully")
		}
	}

	// 6. Initialize repositories
	catalogRepo := repository.NewCatalogRepository(mgr)
	productRepo := repository.NewProductRepository(mgr)
	userRepo := repository.NewUserRepository(mgr)
	orderRepo := repository.NewOrderRepository(mgr)
	invoiceRepo := repository.NewInvoiceRepository(mgr)
	couponRepo := repository.NewCouponRepository(mgr)
	reviewRepo := repository.NewReviewRepository(mgr)

	// 7. Initialize services
	authSvc := service.NewAuthService(userRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo, userRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, orderRepo, userRepo)

	// 8. Initialize handlers
	handlers := &Handlers{
		Health:  handler.NewHealthHandler(mgr, cfg.BaseURL),
		Auth:    handler.NewAuthHandler(authSvc),
		Catalog: handler.NewCatalogHandler(catalogRepo),
		Product: handler.NewProductHandler(productRepo, productCache),
		Order:   handler.NewOrderHandler(orderSvc, orderRepo),
		Invoice: handler.NewInvoiceHandler(invoiceSvc, invoiceRepo),
		Coupon:  handler.NewCouponHandler(couponRepo),
		Review:  handler.NewReviewHandler(reviewRepo),
		User:    handler.NewUserHandler(userRepo),
	}

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.ErrorMiddleware())
	setupRoutes(router, handlers)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("url", cfg.BaseURL).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// 13. Stop the connect loop and release the store connection
	cancel()
	if err := mgr.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Store shutdown failed")
	}
	<-mgr.Done()

	log.Info().Msg("Server exited")
}

// bootstrap runs the emptiness-gated sample seed. A failure leaves the store
// partially seeded; the process keeps serving requests either way.
func bootstrap(ctx context.Context, mgr *database.Manager) {
	store, err := mgr.GetStore()
	if err != nil {
		log.Error().Err(err).Msg("Bootstrap aborted, store not connected")
		return
	}
	if err := seed.NewSeeder(store).SeedIfEmpty(ctx); err != nil {
		log.Error().Err(err).Msg("Sample seed failed")
	}
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Product *handler.ProductHandler
	Order   *handler.OrderHandler
	Invoice *handler.InvoiceHandler
	Coupon  *handler.CouponHandler
	Review  *handler.ReviewHandler
	User    *handler.UserHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	jwtMw := middleware.NewJWTMiddleware()

	router.GET("/", handlers.Health.GetInfo)
	router.GET("/health", handlers.Health.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static("/api-docs", "./public/api-docs")

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}

	catalog := router.Group("/api/catalog")
	{
		catalog.GET("", handlers.Catalog.List)
		catalog.POST("", jwtMw.Handle(), jwtMw.RequireAdmin(), handlers.Catalog.Create)
	}

	products := router.Group("/api/products")
	{
		products.GET("", handlers.Product.List)
		products.GET("/:isbn", handlers.Product.GetByISBN)
		products.POST("", jwtMw.Handle(), jwtMw.RequireAdmin(), handlers.Product.Create)
		products.PUT("/:isbn", jwtMw.Handle(), jwtMw.RequireAdmin(), handlers.Product.Update)
		products.DELETE("/:isbn", jwtMw.Handle(), jwtMw.RequireAdmin(), handlers.Product.Delete)
	}

	reviews := router.Group("/api/reviews")
	{
		reviews.GET("/:isbn", handlers.Review.ListByBook)
		reviews.POST("", jwtMw.Handle(), handlers.Review.Create)
	}

	orders := router.Group("/api/orders")
	orders.Use(jwtMw.Handle())
	{
		orders.POST("", handlers.Order.Create)
		orders.GET("", handlers.Order.ListMine)
		orders.GET("/all", jwtMw.RequireAdmin(), handlers.Order.ListAll)
		orders.GET("/:id", handlers.Order.Get)
		orders.PUT("/:id/status", jwtMw.RequireAdmin(), handlers.Order.UpdateStatus)
	}

	invoices := router.Group("/api/invoices")
	invoices.Use(jwtMw.Handle())
	{
		invoices.POST("", jwtMw.RequireAdmin(), handlers.Invoice.Create)
		invoices.GET("", jwtMw.RequireAdmin(), handlers.Invoice.List)
		invoices.GET("/order/:orderId", handlers.Invoice.GetByOrder)
	}

	coupons := router.Group("/api/coupons")
	{
		coupons.GET("", handlers.Coupon.List)
		coupons.GET("/:promoId", handlers.Coupon.Get)
		coupons.POST("", jwtMw.Handle(), jwtMw.RequireAdmin(), handlers.Coupon.Create)
	}

	users := router.Group("/api/users")
	users.Use(jwtMw.Handle())
	{
		users.GET("", jwtMw.RequireAdmin(), handlers.User.List)
		users.GET("/me", handlers.User.Me)
		users.PUT("/me", handlers.User.UpdateMe)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
