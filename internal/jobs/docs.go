// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes committed order events from the outbox
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(publishOutboxHandler, jobs.Config{
//		OutboxSchedule:  "@every 1s",
//		OutboxBatchSize: 100,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules accept six-field cron expressions (seconds first) and descriptors such
// as "@every 5s". A run that is still in progress when the next tick fires is
// skipped, so batches never overlap.
//
// # Error Handling
//
// A failed relay run is logged and retried on the next tick. Messages stay in the
// outbox until a publish succeeds.
package jobs
