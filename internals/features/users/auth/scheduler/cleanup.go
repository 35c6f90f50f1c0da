package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "trungtam_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler dọn token blacklist + refresh token hết hạn
// mỗi giờ một lần.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where("expired_at < NOW()").Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[ERROR] dọn blacklist thất bại: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] đã dọn %d token blacklist hết hạn", res.RowsAffected)
			}

			res = db.Where("expires_at < NOW()").Delete(&authModel.RefreshTokenModel{})
			if res.Error != nil {
				log.Printf("[ERROR] dọn refresh token thất bại: %v", res.Error)
			}
		}
	}()
}
