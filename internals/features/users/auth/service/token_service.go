package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"trungtam_backend/internals/configs"
	authModel "trungtam_backend/internals/features/users/auth/model"
	userModel "trungtam_backend/internals/features/users/user/model"
)

const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

// ========================== ISSUE ==========================

// IssueAccessToken: HS256, claims tối thiểu (sub, role, name, exp, iat)
func IssueAccessToken(u *userModel.UserModel, now time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET trống")
	}
	claims := jwt.MapClaims{
		"sub":  u.UserID.String(),
		"role": u.UserRole,
		"name": u.UserName,
		"iat":  now.Unix(),
		"exp":  now.Add(AccessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

func IssueRefreshToken(userID uuid.UUID, now time.Time) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET trống")
	}
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTRefreshSecret))
}

// ========================== REFRESH STORE ==========================

// ComputeRefreshHash: HMAC-SHA256 của raw token — DB chỉ giữ hash
func ComputeRefreshHash(raw, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

func StoreRefreshToken(db *gorm.DB, userID uuid.UUID, raw string, now time.Time, userAgent, ip *string) error {
	return db.Create(&authModel.RefreshTokenModel{
		UserID:    userID,
		Token:     ComputeRefreshHash(raw, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(RefreshTTL),
		UserAgent: userAgent,
		IP:        ip,
	}).Error
}

// VerifyStoredRefreshToken: parse + check chữ ký + check hash có trong DB
func VerifyStoredRefreshToken(db *gorm.DB, raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token không hợp lệ")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("refresh token không hợp lệ")
	}

	h := ComputeRefreshHash(raw, configs.JWTRefreshSecret)
	var count int64
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("token = ? AND expires_at > NOW()", h).
		Count(&count).Error; err != nil {
		return uuid.Nil, err
	}
	if count == 0 {
		return uuid.Nil, errors.New("refresh token không được hệ thống ghi nhận")
	}
	return userID, nil
}

// RotateRefreshToken xoá hash cũ (token chỉ dùng một lần)
func RotateRefreshToken(db *gorm.DB, raw string) error {
	h := ComputeRefreshHash(raw, configs.JWTRefreshSecret)
	return db.Where("token = ?", h).Delete(&authModel.RefreshTokenModel{}).Error
}

// ========================== BLACKLIST ==========================

func BlacklistAccessToken(db *gorm.DB, raw string) error {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	expiredAt := time.Now().Add(AccessTTL)
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     raw,
		ExpiredAt: expiredAt,
	}).Error
}
