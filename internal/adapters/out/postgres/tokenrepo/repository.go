package tokenrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/identity"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

var errTokenExpired = errors.New("token expired")

// GormAccessTokenRepository implements AuthContext on top of the
// access_tokens table and purges expired tokens.
type GormAccessTokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormAccessTokenRepository(db *gorm.DB) *GormAccessTokenRepository {
	return &GormAccessTokenRepository{
		db:  db,
		now: time.Now,
	}
}

// Resolve looks the credential up. Unknown, expired or malformed tokens all
// produce errs.UnauthenticatedError.
func (r *GormAccessTokenRepository) Resolve(ctx context.Context, credential string) (identity.Identity, error) {
	token := strings.TrimSpace(credential)
	if token == "" {
		return identity.Identity{}, errs.NewUnauthenticatedError()
	}

	var dto AccessTokenDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return identity.Identity{}, errs.NewUnauthenticatedError()
		}
		return identity.Identity{}, err
	}

	if !dto.ExpiresAt.After(r.now()) {
		return identity.Identity{}, errs.NewUnauthenticatedErrorWithCause(errTokenExpired)
	}

	kind, err := identity.ParseKind(dto.Kind)
	if err != nil {
		return identity.Identity{}, errs.NewUnauthenticatedErrorWithCause(err)
	}
	subjectID, err := kernel.UUIDFromBytes(dto.SubjectID[:])
	if err != nil {
		return identity.Identity{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	return identity.NewIdentity(kind, subjectID)
}

// DeleteExpired removes tokens whose expiry is not after now.
func (r *GormAccessTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&AccessTokenDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Issue stores a token for the given identity. Tokens are minted by the
// account system; Issue exists for seeding and tests.
func (r *GormAccessTokenRepository) Issue(ctx context.Context, token string, id identity.Identity, expiresAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(token) == "" {
		return errs.NewValueIsRequiredError("token")
	}

	return r.db.WithContext(ctx).Create(&AccessTokenDTO{
		Token:     token,
		Kind:      id.Kind().String(),
		SubjectID: id.SubjectID().Bytes(),
		ExpiresAt: expiresAt.UTC(),
	}).Error
}
