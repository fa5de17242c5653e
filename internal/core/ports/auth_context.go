package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/identity"
)

// AuthContext resolves a bearer credential to the calling identity.
// Unknown or expired credentials yield errs.UnauthenticatedError.
type AuthContext interface {
	Resolve(ctx context.Context, credential string) (identity.Identity, error)
}

// AccessTokenRepository maintains the token table behind AuthContext.
type AccessTokenRepository interface {
	// DeleteExpired removes tokens that expired before now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
