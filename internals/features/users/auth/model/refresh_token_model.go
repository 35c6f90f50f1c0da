package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel lưu HASH của refresh token (không lưu raw)
type RefreshTokenModel struct {
	ID        uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;not null;index"`
	Token     string    `json:"-" gorm:"column:token;type:text;not null;uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at" gorm:"column:expires_at;type:timestamptz;not null"`
	UserAgent *string   `json:"user_agent,omitempty" gorm:"column:user_agent;type:text"`
	IP        *string   `json:"ip,omitempty" gorm:"column:ip;type:varchar(64)"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
