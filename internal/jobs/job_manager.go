package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	settlementJob  *SettlementJob
}

// NewJobManager creates a job manager over the given jobs.
func NewJobManager(outboxRelayJob *OutboxRelayJob, settlementJob *SettlementJob) *JobManager {
	return &JobManager{
		outboxRelayJob: outboxRelayJob,
		settlementJob:  settlementJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.settlementJob.Start(); err != nil {
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start settlement job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementJob.Stop()
	jm.outboxRelayJob.Stop()
}
