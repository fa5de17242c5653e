package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type tokenPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredTokensCommand) (int64, error)
}

// TokenCleanupJob deletes expired access tokens once an hour.
type TokenCleanupJob struct {
	handler tokenPurger
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewTokenCleanupJob(handler tokenPurger, logger *slog.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "token_cleanup_job"),
	}
}

func (j *TokenCleanupJob) Start() error {
	_, err := j.cron.AddFunc("@every 1h", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token cleanup job started (running every hour)")
	return nil
}

func (j *TokenCleanupJob) RunOnce(ctx context.Context) int64 {
	removed, err := j.handler.Handle(ctx, commands.NewPurgeExpiredTokensCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Token cleanup job failed", "error", err)
		return 0
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired access tokens removed", "count", removed)
	}
	return removed
}

func (j *TokenCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Token cleanup job stopped")
}
