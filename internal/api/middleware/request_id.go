package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen batas panjang Request-ID dari luar, menahan injeksi log
const requestIDMaxLen = 64

// RequestID middleware ID pelacakan request.
// Membaca header X-Request-ID; jika kosong atau terlalu panjang,
// dibuatkan UUID baru. Hasilnya masuk ke context dan header respons.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
