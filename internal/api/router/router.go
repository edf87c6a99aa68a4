package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sipesantren/backend/config"
	"sipesantren/backend/internal/api/handler"
	"sipesantren/backend/internal/api/middleware"
	"sipesantren/backend/internal/model"
	"sipesantren/backend/pkg/jwt"
	"sipesantren/backend/pkg/redis"
)

// Setup menginisialisasi dan mengembalikan engine router Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	adminOnly := middleware.RoleAuth(model.RoleAdmin)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Modul autentikasi (tanpa autentikasi, dengan rate limit)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Rute yang memerlukan autentikasi
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// Modul pengguna (khusus admin)
			users := authorized.Group("/users", adminOnly)
			{
				users.GET("", h.User.List)
				users.POST("", h.User.Create)
				users.PUT("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
			}

			// Modul santri
			santri := authorized.Group("/santri")
			{
				santri.GET("", h.Santri.List)
				santri.GET("/:id", h.Santri.Get)
				santri.POST("", h.Santri.Create)
				santri.PUT("/:id", h.Santri.Update)
				santri.DELETE("/:id", adminOnly, h.Santri.Delete)
			}

			// Modul mata pelajaran
			mapel := authorized.Group("/mapel")
			{
				mapel.GET("", h.Mapel.List)
				mapel.POST("", h.Mapel.Create)
				mapel.PUT("/:id", h.Mapel.Update)
				mapel.PUT("/:id/kategori", h.Mapel.UpdateKategori)
				mapel.DELETE("/:id", adminOnly, h.Mapel.Delete)
			}

			// Modul nilai
			nilai := authorized.Group("/nilai")
			{
				nilai.GET("", h.Nilai.List)
				nilai.POST("", h.Nilai.Create)
				nilai.PUT("/:id", h.Nilai.Update)
				nilai.DELETE("/:id", h.Nilai.Delete)
			}

			// Modul absensi
			absensi := authorized.Group("/absensi")
			{
				absensi.GET("/rekap", h.Absensi.Rekap)
				absensi.POST("", h.Absensi.Create)
				absensi.PUT("/:id", h.Absensi.Update)
				absensi.DELETE("/:id", h.Absensi.Delete)
			}

			// Modul ekstrakurikuler
			ekskul := authorized.Group("/ekskul")
			{
				ekskul.GET("", h.Ekskul.List)
				ekskul.POST("", h.Ekskul.Create)
				ekskul.DELETE("/:id", adminOnly, h.Ekskul.Delete)
				ekskul.POST("/nilai", h.Ekskul.CreateNilai)
				ekskul.DELETE("/nilai/:id", h.Ekskul.DeleteNilai)
			}

			// Modul wali kelas
			waliKelas := authorized.Group("/wali-kelas")
			{
				waliKelas.GET("", h.WaliKelas.List)
				waliKelas.PUT("", adminOnly, h.WaliKelas.Set)
				waliKelas.DELETE("/:kelas", adminOnly, h.WaliKelas.Delete)
			}

			// Modul raport
			raport := authorized.Group("/raport")
			{
				raport.GET("/:santriID/data", h.Raport.GetData)
				raport.POST("/:santriID/generate", h.Raport.Generate)
			}

			// Modul kesiswaan
			pelanggaran := authorized.Group("/pelanggaran")
			{
				pelanggaran.GET("", h.Pelanggaran.List)
				pelanggaran.POST("", h.Pelanggaran.Create)
				pelanggaran.DELETE("/:id", h.Pelanggaran.Delete)
			}
			kesehatan := authorized.Group("/kesehatan")
			{
				kesehatan.GET("", h.Kesehatan.List)
				kesehatan.POST("", h.Kesehatan.Create)
				kesehatan.DELETE("/:id", h.Kesehatan.Delete)
			}

			// Modul keuangan (khusus admin)
			keuangan := authorized.Group("/keuangan", adminOnly)
			{
				keuangan.GET("/pembayaran", h.Keuangan.ListPembayaran)
				keuangan.POST("/pembayaran", h.Keuangan.CreatePembayaran)
				keuangan.DELETE("/pembayaran/:id", h.Keuangan.DeletePembayaran)

				keuangan.GET("/pengeluaran", h.Keuangan.ListPengeluaran)
				keuangan.POST("/pengeluaran", h.Keuangan.CreatePengeluaran)
				keuangan.DELETE("/pengeluaran/:id", h.Keuangan.DeletePengeluaran)

				keuangan.GET("/donasi", h.Keuangan.ListDonasi)
				keuangan.POST("/donasi", h.Keuangan.CreateDonasi)
				keuangan.DELETE("/donasi/:id", h.Keuangan.DeleteDonasi)
			}

			// Modul pengaturan sekolah & kalender akademik
			pengaturan := authorized.Group("/pengaturan")
			{
				pengaturan.GET("", h.Pengaturan.Get)
				pengaturan.PUT("", adminOnly, h.Pengaturan.Update)
				pengaturan.POST("/kalender/import", adminOnly, h.Pengaturan.ImportKalender)
				pengaturan.GET("/libur", h.Pengaturan.ListLibur)
				pengaturan.POST("/libur", adminOnly, h.Pengaturan.CreateLibur)
				pengaturan.DELETE("/libur/:id", adminOnly, h.Pengaturan.DeleteLibur)
			}

			// Modul ekspor Excel
			export := authorized.Group("/export")
			{
				export.GET("/santri", h.Export.Santri)
				export.GET("/nilai", h.Export.Nilai)
				export.GET("/absensi", h.Export.Absensi)
				export.GET("/pelanggaran", h.Export.Pelanggaran)
				export.GET("/kesehatan", h.Export.Kesehatan)
				export.GET("/pembayaran", adminOnly, h.Export.Pembayaran)
				export.GET("/pengeluaran", adminOnly, h.Export.Pengeluaran)
				export.GET("/donasi", adminOnly, h.Export.Donasi)
				export.GET("/users", adminOnly, h.Export.Users)
			}
		}
	}

	return r
}
