package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// AuthHandler handler HTTP modul autentikasi
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler membuat AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login login pengguna
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrLoginFail) {
			response.Error(c, http.StatusUnauthorized, 11001, "username atau kata sandi salah")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Refresh menukar refresh token dengan pasangan token baru
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRefreshTokenInvalid) {
			response.Error(c, http.StatusUnauthorized, 11002, "refresh token tidak valid")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout logout pengguna: token aktif masuk blacklist
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me profil pengguna yang sedang login
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11004, "pengguna tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ChangePassword ganti kata sandi pengguna yang sedang login
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrOldPasswordWrong):
			response.BadRequest(c, 11003, "kata sandi lama salah")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11004, "pengguna tidak ditemukan")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
