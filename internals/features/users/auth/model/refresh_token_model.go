// file: internals/features/users/auth/model/refresh_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type RefreshTokenModel struct {
	RefreshTokenID     uuid.UUID `json:"refresh_token_id" gorm:"column:refresh_token_id;type:uuid;default:gen_random_uuid();primaryKey"`
	RefreshTokenUserID uuid.UUID `json:"refresh_token_user_id" gorm:"column:refresh_token_user_id;type:uuid;not null;index:idx_refresh_tokens_user"`

	// simpan HASH token (bukan plaintext)
	RefreshTokenHash []byte `json:"-" gorm:"column:refresh_token_hash;type:bytea;not null"`

	RefreshTokenExpiresAt time.Time  `json:"refresh_token_expires_at" gorm:"column:refresh_token_expires_at;type:timestamptz;not null"`
	RefreshTokenRevokedAt *time.Time `json:"refresh_token_revoked_at,omitempty" gorm:"column:refresh_token_revoked_at;type:timestamptz"`

	RefreshTokenUserAgent *string `json:"refresh_token_user_agent,omitempty" gorm:"column:refresh_token_user_agent"`
	RefreshTokenIP        *string `json:"refresh_token_ip,omitempty" gorm:"column:refresh_token_ip;type:inet"`

	RefreshTokenCreatedAt time.Time `json:"refresh_token_created_at" gorm:"column:refresh_token_created_at;type:timestamptz;autoCreateTime"`
	RefreshTokenUpdatedAt time.Time `json:"refresh_token_updated_at" gorm:"column:refresh_token_updated_at;type:timestamptz;autoUpdateTime"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
