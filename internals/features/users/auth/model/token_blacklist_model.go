package model

import (
	"time"
)

// TokenBlacklistModel: access token bị thu hồi khi logout,
// giữ đến khi hết hạn rồi scheduler dọn.
type TokenBlacklistModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Token     string    `json:"-" gorm:"column:token;type:text;not null;index"`
	ExpiredAt time.Time `json:"expired_at" gorm:"column:expired_at;type:timestamptz;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
