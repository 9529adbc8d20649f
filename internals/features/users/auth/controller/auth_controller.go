// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authDTO "schoolku_backend/internals/features/users/auth/dto"
	authModel "schoolku_backend/internals/features/users/auth/model"
	uModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ===================== LOGIN ===================== */

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user uModel.UserModel
	err := ctrl.DB.
		Where("user_name = ? OR user_email = ?", req.Identifier, req.Identifier).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// pesan sengaja sama dengan password salah
			return helper.Error(c, fiber.StatusUnauthorized, "Identifier atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Identifier atau password salah")
	}

	access, err := signAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := ctrl.issueRefreshToken(c, user.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	return helper.Success(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authDTO.NewUserResponse(&user),
	})
}

/* ===================== REFRESH ===================== */

// POST /api/auth/refresh — rotasi: token lama direvoke, keluar token baru
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash := hashRefreshToken(req.RefreshToken)
	var stored authModel.RefreshTokenModel
	err := ctrl.DB.
		Where("refresh_token_hash = ? AND refresh_token_revoked_at IS NULL", hash).
		First(&stored).Error
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}
	if time.Now().After(stored.RefreshTokenExpiresAt) {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token kadaluarsa")
	}

	var user uModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", stored.RefreshTokenUserID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&stored).
		Update("refresh_token_revoked_at", now).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal merotasi token")
	}

	access, err := signAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := ctrl.issueRefreshToken(c, user.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	return helper.Success(c, "Token diperbarui", authDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authDTO.NewUserResponse(&user),
	})
}

/* ===================== LOGOUT ===================== */

// POST /api/a/auth/logout — access token masuk blacklist sampai expiry
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw, ok := c.Locals("rawToken").(string)
	if !ok || raw == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Token tidak ditemukan di request")
	}

	expiredAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(raw, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiredAt: expiredAt,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helper.Success(c, "Logout berhasil", nil)
}

/* ===================== ME ===================== */

// GET /api/a/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	uid, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Tidak ada sesi aktif")
	}
	var user uModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", uid).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.Success(c, "Profil user", authDTO.NewUserResponse(&user))
}

/* ===================== INTERNAL ===================== */

func signAccessToken(u *uModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func (ctrl *AuthController) issueRefreshToken(c *fiber.Ctx, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	plain := hex.EncodeToString(buf)

	ua := c.Get("User-Agent")
	ip := c.IP()
	stored := authModel.RefreshTokenModel{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      hashRefreshToken(plain),
		RefreshTokenExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if ua != "" {
		stored.RefreshTokenUserAgent = &ua
	}
	if ip != "" {
		stored.RefreshTokenIP = &ip
	}
	if err := ctrl.DB.Create(&stored).Error; err != nil {
		return "", err
	}
	return plain, nil
}

func hashRefreshToken(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	return sum[:]
}
