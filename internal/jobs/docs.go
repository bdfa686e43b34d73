// Package jobs provides scheduled background tasks for the fulfillment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes pending outbox messages to Kafka, by default every five seconds
// 2. SettlementJob - settles the previous day's delivered COD shipments, by default at 00:30
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewOutboxRelayJob(&relayHandler, "*/5 * * * * *", 100, logger),
//		jobs.NewSettlementJob(&settleHandler, "0 30 0 * * *", time.UTC, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs log failures and wait for the next tick. The relay keeps unsent messages in the
// outbox, so a failed tick is retried by the next one. A relay tick that is still running
// when the next one fires is skipped.
package jobs
