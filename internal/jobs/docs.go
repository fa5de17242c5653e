// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish pending order events to Kafka
// 2. TokenCleanupJob - Runs every hour to delete expired access tokens
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewOutboxRelayJob(relayHandler, 100, serverMetrics.OutboxRelayed, logger),
//		jobs.NewTokenCleanupJob(purgeHandler, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and retried on the next tick. The outbox relay
// marks messages sent only after the broker accepted them, so a failed
// tick leaves the batch for the next one.
package jobs
