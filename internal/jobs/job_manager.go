package jobs

import (
	"fmt"
	"log/slog"
)

// Config holds the job schedules.
type Config struct {
	OutboxSchedule  string
	OutboxBatchSize int
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(publishOutboxHandler outboxPublisher, cfg Config, logger *slog.Logger) (*JobManager, error) {
	relay, err := NewOutboxRelayJob(publishOutboxHandler, cfg.OutboxSchedule, cfg.OutboxBatchSize, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox relay job: %w", err)
	}
	return &JobManager{outboxRelayJob: relay}, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
