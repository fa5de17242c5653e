package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob  *OutboxRelayJob
	tokenCleanupJob *TokenCleanupJob
}

// NewJobManager wires the jobs. A nil outboxRelayJob leaves events in the
// outbox until a process with a broker configured relays them.
func NewJobManager(outboxRelayJob *OutboxRelayJob, tokenCleanupJob *TokenCleanupJob) *JobManager {
	return &JobManager{
		outboxRelayJob:  outboxRelayJob,
		tokenCleanupJob: tokenCleanupJob,
	}
}

func (jm *JobManager) jobs() []job {
	all := make([]job, 0, 2)
	if jm.outboxRelayJob != nil {
		all = append(all, jm.outboxRelayJob)
	}
	if jm.tokenCleanupJob != nil {
		all = append(all, jm.tokenCleanupJob)
	}
	return all
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	started := make([]job, 0)
	for _, j := range jm.jobs() {
		if err := j.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, s := range started {
				s.Stop()
			}
			return fmt.Errorf("failed to start %T: %w", j, err)
		}
		started = append(started, j)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs() {
		j.Stop()
	}
}
