package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-booking/config"
	"go-booking/controllers"
	"go-booking/middleware"
	"go-booking/repositories"
	"go-booking/repositories/memstore"
	"go-booking/routes"
	"go-booking/services"
	"go-booking/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)
	utils.TokenTTL = cfg.TokenTTL

	// Initialize EmailService
	emailService, err := utils.NewEmailService(cfg.Email)
	if err != nil {
		log.Fatalf("Email setup failed: %v", err)
	}
	log.Printf("Email provider: %s", emailService.Provider())

	stores, ping, cleanup := openStores(cfg)
	defer cleanup()

	var cache services.ShopListingCache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := utils.ConnectRedis(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Printf("Warning: Redis connection failed, shop listing cache disabled: %v", err)
		} else {
			defer client.Close()
			cache = utils.NewShopListingCache(client, cfg.ShopCacheTTL)
		}
	}

	// Initialize services and controllers
	reports := services.NewReportService(stores, cache)
	handlers := routes.Controllers{
		Auth:      controllers.NewAuthController(services.NewAuthService(stores, utils.GenerateJWT, cfg.AdminSecretKey)),
		Shops:     controllers.NewShopController(services.NewShopService(stores, cache), reports),
		Catalog:   controllers.NewCatalogController(services.NewCatalogService(stores, cache)),
		Bookings:  controllers.NewBookingController(services.NewBookingService(stores, emailService, cfg.Location)),
		Reviews:   controllers.NewReviewController(services.NewReviewService(stores, cache)),
		Dashboard: controllers.NewDashboardController(reports),
		Health:    controllers.NewHealthController(cfg.StoreDriver, ping),
	}

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, handlers)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Strict(routes.AuthPaths...)
	handler := middleware.LoggingMiddleware(middleware.CORS(cfg.CORSAllowedOrigins)(limiter.Middleware(router)))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Server is running on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received, shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}

// openStores connects the configured store driver and returns the stores,
// a health ping (nil for memory) and a cleanup func
func openStores(cfg *config.Config) (services.Stores, func(context.Context) error, func()) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Println("Using in-memory store; data is lost on restart")
		mem := memstore.New()
		return services.Stores{
			Users:    mem.Users,
			Admins:   mem.Admins,
			Shops:    mem.Shops,
			Services: mem.Services,
			Bookings: mem.Bookings,
			Reviews:  mem.Reviews,
		}, nil, func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect to MongoDB
	client, err := utils.ConnectDB(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB connection error: %v", err)
	}
	db := client.Database(cfg.DBName)
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("MongoDB index setup failed: %v", err)
	}

	stores := services.Stores{
		Users:    repositories.NewUserRepository(db),
		Admins:   repositories.NewAdminRepository(db),
		Shops:    repositories.NewShopRepository(db),
		Services: repositories.NewServiceRepository(db, cfg.MongoTransactions),
		Bookings: repositories.NewBookingRepository(db),
		Reviews:  repositories.NewReviewRepository(db),
	}
	ping := func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) }
	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println(err)
		}
	}
	return stores, ping, cleanup
}

