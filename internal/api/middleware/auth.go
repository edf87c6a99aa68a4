package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/pkg/jwt"
	"sipesantren/backend/pkg/redis"
	"sipesantren/backend/pkg/response"
)

// JWTAuth middleware autentikasi JWT.
// Mengambil dan memvalidasi access token dari Authorization: Bearer <token>,
// lalu memeriksa blacklist di Redis. rdb nil berarti pemeriksaan blacklist
// dilewati (mode degradasi).
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "header autentikasi tidak ada")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "format header autentikasi tidak valid")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token tidak valid atau sudah kedaluwarsa")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "jenis token tidak valid")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "token sudah tidak berlaku")
				c.Abort()
				return
			}
		}

		// Injeksi info pengguna ke context
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth middleware otorisasi role.
// Memeriksa apakah pengguna memiliki salah satu role yang diizinkan.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "belum terautentikasi")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "tidak berhak mengakses sumber daya ini")
		c.Abort()
	}
}
