package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "rently-backend/internal/api/http"
	"rently-backend/internal/cache"
	"rently-backend/internal/config"
	"rently-backend/internal/fanout"
	"rently-backend/internal/jobs"
	"rently-backend/internal/logger"
	"rently-backend/internal/repository"
	"rently-backend/internal/repository/postgres"
	"rently-backend/internal/scheduler"
	"rently-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rently Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Optional Redis cache in front of the analytics summary
	var analyticsRepo repository.AnalyticsRepository = store.AnalyticsRepository
	if cfg.Redis.Addr != "" {
		rdb, err := cache.Connect(cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, analytics caching disabled", "error", err)
		} else {
			defer rdb.Close()
			ttl := time.Duration(cfg.Analytics.SummaryCacheSecs) * time.Second
			analyticsRepo = cache.NewCachedAnalyticsRepository(store.AnalyticsRepository, rdb, ttl)
			logger.Info("Analytics summary caching enabled", "addr", cfg.Redis.Addr, "ttl", ttl)
		}
	}

	// Fanout hub for live tenant updates
	hub := fanout.NewHub()

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SMTP)
	ledger := service.NewAvailabilityLedger(store.InventoryRepository)
	alertSvc := service.NewAlertService(
		store.AlertRepository,
		store.BookingRepository,
		store.PaymentRepository,
		store.InventoryRepository,
		hub,
		cfg.Alerts,
	)
	analyticsSvc := service.NewAnalyticsService(analyticsRepo, store.InventoryRepository, cfg.Analytics)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.RentalRepository,
		store.CustomerRepository,
		store.InventoryRepository,
		ledger,
		analyticsSvc,
		alertSvc,
		hub,
		emailSvc,
	)
	rentalSvc := service.NewRentalService(store.RentalRepository)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.RentalRepository, alertSvc)
	inventorySvc := service.NewInventoryService(store.InventoryRepository, alertSvc)
	customerSvc := service.NewCustomerService(store.CustomerRepository, alertSvc)
	tenantSvc := service.NewTenantService(store.TenantRepository)

	// Initialize HTTP handlers
	router := httpapi.NewRouter(&httpapi.Handlers{
		Tenant:    httpapi.NewTenantHandler(tenantSvc),
		Inventory: httpapi.NewInventoryHandler(inventorySvc),
		Customer:  httpapi.NewCustomerHandler(customerSvc),
		Booking:   httpapi.NewBookingHandler(bookingSvc),
		Rental:    httpapi.NewRentalHandler(rentalSvc),
		Payment:   httpapi.NewPaymentHandler(paymentSvc),
		Analytics: httpapi.NewAnalyticsHandler(analyticsSvc),
		Alert:     httpapi.NewAlertHandler(alertSvc),
		Stream:    httpapi.NewStreamHandler(hub),
	})

	// Run the alert scan in-process alongside the API
	jobRunner := jobs.NewJobRunner(alertSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
