package commands

import (
	"context"
	"time"
)

// PurgeExpiredTokensCommandHandler deletes expired access tokens.
type PurgeExpiredTokensCommandHandler struct {
	uowFactory AccessTokenUoWFactory
}

func NewPurgeExpiredTokensCommandHandler(uowFactory AccessTokenUoWFactory) PurgeExpiredTokensCommandHandler {
	return PurgeExpiredTokensCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many tokens were removed.
func (h PurgeExpiredTokensCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredTokensCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.AccessTokenRepository().DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
