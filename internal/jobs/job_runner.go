package jobs

import (
	"context"

	"rently-backend/internal/config"
	"rently-backend/internal/logger"
	"rently-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	alerts service.AlertService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(alerts service.AlertService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		alerts: alerts,
		config: cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// ScanAlerts runs one pass of the tenant alert sweep
func (jr *JobRunner) ScanAlerts() {
	jr.runWithRecovery("ScanAlerts", func() {
		ctx := context.Background()

		raised, err := jr.alerts.Scan(ctx)
		if err != nil {
			logger.Error("Alert scan failed", "error", err)
			return
		}

		logger.Info("Alert scan finished", "alerts_raised", raised)
	})
}
