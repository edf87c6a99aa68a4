package handler

import (
	"github.com/gin-gonic/gin"

	"sipesantren/backend/pkg/jwt"
	"sipesantren/backend/pkg/response"
)

// MustGetUserID mengambil user_id dari context Gin.
// Jika middleware JWT tidak menginjeksinya, tulis respons 401 dan
// kembalikan false; pemanggil cukup return saat ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "belum terautentikasi")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "belum terautentikasi")
		return "", false
	}
	return s, true
}

// MustGetClaims mengambil klaim JWT utuh dari context Gin
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "belum terautentikasi")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, "belum terautentikasi")
		return nil, false
	}
	return claims, true
}
