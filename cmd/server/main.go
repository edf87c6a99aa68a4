package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"sipesantren/backend/config"
	"sipesantren/backend/internal/api/handler"
	"sipesantren/backend/internal/api/router"
	"sipesantren/backend/internal/repository"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/database"
	"sipesantren/backend/pkg/jwt"
	applogger "sipesantren/backend/pkg/logger"
	"sipesantren/backend/pkg/redis"
)

func main() {
	// 1. Muat konfigurasi
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "gagal memuat konfigurasi: %v\n", err)
		os.Exit(1)
	}

	// 2. Inisialisasi logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gagal menginisialisasi logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("aplikasi sedang dimulai...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Koneksi database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("koneksi database gagal", zap.Error(err))
	}

	// 3.1 Jalankan migrasi database
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("gagal mengambil sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migrasi database gagal", zap.Error(err))
	}

	// 4. Koneksi Redis (opsional: gagal berarti mode degradasi,
	//    blacklist token dan rate limit nonaktif)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("koneksi Redis gagal, blacklist token dinonaktifkan", zap.Error(err))
		rdb = nil
	}

	// 5. Inisialisasi pengelola JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Injeksi dependensi: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. Inisialisasi router
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Jalankan HTTP server (dengan graceful shutdown)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // generate raport + ekspor bisa lama
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server berjalan", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server bermasalah", zap.Error(err))
		}
	}()

	// 9. Tunggu sinyal sistem, lalu matikan dengan rapi
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("menerima sinyal berhenti, memulai graceful shutdown...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown server bermasalah", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server berhenti")
}
