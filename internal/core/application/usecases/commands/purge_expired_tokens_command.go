package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrPurgeExpiredTokensCommandIsNotConstructed = errors.New(
	"PurgeExpiredTokensCommand must be created via NewPurgeExpiredTokensCommand constructor",
)

// PurgeExpiredTokensCommand removes access tokens that can no longer authenticate.
type PurgeExpiredTokensCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeExpiredTokensCommand() PurgeExpiredTokensCommand {
	return PurgeExpiredTokensCommand{guard: guard.NewConstructorGuard()}
}

func (c PurgeExpiredTokensCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredTokensCommandIsNotConstructed)
}
