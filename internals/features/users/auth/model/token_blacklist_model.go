// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Access token yang sudah dilogout masuk sini sampai expiry-nya lewat;
// scheduler pembersih tinggal hard-delete baris yang kadaluarsa.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID      `json:"token_blacklist_id" gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TokenBlacklistToken     string         `json:"token_blacklist_token" gorm:"column:token_blacklist_token;type:text;not null;uniqueIndex:uq_token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time      `json:"token_blacklist_expired_at" gorm:"column:token_blacklist_expired_at;type:timestamptz;not null"`
	TokenBlacklistCreatedAt time.Time      `json:"token_blacklist_created_at" gorm:"column:token_blacklist_created_at;autoCreateTime"`
	TokenBlacklistDeletedAt gorm.DeletedAt `json:"token_blacklist_deleted_at,omitempty" gorm:"column:token_blacklist_deleted_at;index"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklist" }
