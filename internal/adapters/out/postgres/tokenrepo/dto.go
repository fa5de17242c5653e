// Package tokenrepo resolves bearer tokens to caller identities.
package tokenrepo

import (
	"time"

	"github.com/google/uuid"
)

// AccessTokenDTO maps an opaque token to the identity it authenticates.
type AccessTokenDTO struct {
	Token     string    `gorm:"primaryKey"`
	Kind      string    `gorm:"not null"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (AccessTokenDTO) TableName() string {
	return "access_tokens"
}
