package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes pending order events every second. A tick that
// is still running when the next one fires is skipped, so batches never
// overlap within one process; across processes SKIP LOCKED keeps them apart.
type OutboxRelayJob struct {
	handler   outboxRelayer
	batchSize int
	relayed   prometheus.Counter
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the job. relayed may be nil.
func NewOutboxRelayJob(
	handler outboxRelayer,
	batchSize int,
	relayed prometheus.Counter,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		relayed:   relayed,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start schedules the relay to run every second.
func (j *OutboxRelayJob) Start() error {
	if _, err := commands.NewRelayOutboxCommand(j.batchSize); err != nil {
		return err
	}

	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)",
		"batch_size", j.batchSize)
	return nil
}

// RunOnce relays a single batch and returns how many messages went out.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return 0
	}

	relayed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return 0
	}

	if relayed > 0 {
		if j.relayed != nil {
			j.relayed.Add(float64(relayed))
		}
		j.logger.DebugContext(ctx, "Outbox messages relayed", "count", relayed)
	}
	return relayed
}

// Stop waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
