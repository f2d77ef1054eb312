package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"rently-backend/internal/config"
	"rently-backend/internal/fanout"
	"rently-backend/internal/jobs"
	"rently-backend/internal/logger"
	"rently-backend/internal/repository/postgres"
	"rently-backend/internal/scheduler"
	"rently-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'alert-scan')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rently Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// The standalone runner has no live subscribers; alerts raised here are
	// picked up by clients on their next poll.
	hub := fanout.NewHub()
	alertSvc := service.NewAlertService(
		store.AlertRepository,
		store.BookingRepository,
		store.PaymentRepository,
		store.InventoryRepository,
		hub,
		cfg.Alerts,
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(alertSvc, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	cronScheduler.Stop()
}

func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "alert-scan":
		jobRunner.ScanAlerts()
	default:
		logger.Error("Unknown job name", "job", jobName)
		os.Exit(1)
	}
}
