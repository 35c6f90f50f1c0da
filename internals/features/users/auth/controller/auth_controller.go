package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trungtam_backend/internals/configs"
	authDto "trungtam_backend/internals/features/users/auth/dto"
	authService "trungtam_backend/internals/features/users/auth/service"
	userDto "trungtam_backend/internals/features/users/user/dto"
	userModel "trungtam_backend/internals/features/users/user/model"
	helper "trungtam_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

/* ==========================
   POST /api/auth/register
========================== */
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req authDto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// email phải chưa tồn tại
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&userModel.UserModel{}).
		Where("user_email = ?", req.Email).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Email đã được sử dụng")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tạo được tài khoản")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: &hashed,
		UserRole:     req.Role,
		UserPhone:    req.Phone,
		UserIsActive: true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		log.Printf("[ERROR] register: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Không tạo được tài khoản")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tạo tài khoản thành công", userDto.FromModel(&user))
}

/* ==========================
   POST /api/auth/login
========================== */
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email hoặc mật khẩu không đúng")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	if user.UserPassword == nil || !authService.CheckPassword(*user.UserPassword, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Email hoặc mật khẩu không đúng")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Tài khoản đã bị khoá")
	}

	return ctl.issueSession(c, &user)
}

/* ==========================
   POST /api/auth/login-google
========================== */
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Đăng nhập Google chưa được bật")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Google ID Token không hợp lệ")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không đọc được ID Token")
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))

	var user userModel.UserModel
	err = ctl.DB.WithContext(c.UserContext()).First(&user, "user_email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// tài khoản Google mới → mặc định role phụ huynh, admin gán lại sau
		user = userModel.UserModel{
			UserName:     claimSet.Name,
			UserEmail:    email,
			UserRole:     userModel.RoleParent,
			UserIsActive: true,
		}
		if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Không tạo được tài khoản")
		}
	} else if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Tài khoản đã bị khoá")
	}

	return ctl.issueSession(c, &user)
}

/* ==========================
   POST /api/auth/refresh-token
========================== */
func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Không có refresh token")
	}

	userID, err := authService.VerifyStoredRefreshToken(ctl.DB, refreshCookie)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token không hợp lệ")
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Không tìm thấy người dùng")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Tài khoản đã bị khoá")
	}

	// ROTATE: hash cũ chỉ dùng một lần
	if err := authService.RotateRefreshToken(ctl.DB, refreshCookie); err != nil {
		log.Printf("[refresh] xoá hash cũ thất bại: %v", err)
	}

	return ctl.issueSession(c, &user)
}

/* ==========================
   POST /api/auth/logout
========================== */
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if raw != "" {
		if err := authService.BlacklistAccessToken(ctl.DB, raw); err != nil {
			log.Printf("[logout] blacklist thất bại: %v", err)
		}
	}
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		_ = authService.RotateRefreshToken(ctl.DB, refreshCookie)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.Success(c, "Đăng xuất thành công", nil)
}

/* ==========================
   helpers
========================== */

// issueSession: cấp access + refresh, lưu hash refresh, set cookie.
// Ghi DB xong mới trả response (không có ghi nền).
func (ctl *AuthController) issueSession(c *fiber.Ctx, user *userModel.UserModel) error {
	now := time.Now().UTC()

	access, err := authService.IssueAccessToken(user, now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tạo được access token")
	}
	refresh, err := authService.IssueRefreshToken(user.UserID, now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tạo được refresh token")
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	if err := authService.StoreRefreshToken(ctl.DB, user.UserID, refresh, now, &ua, &ip); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không lưu được phiên đăng nhập")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(authService.RefreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		Path:     "/api/auth",
	})

	return helper.Success(c, "Đăng nhập thành công", authDto.LoginResponse{
		AccessToken: access,
		User:        userDto.FromModel(user),
	})
}
