package service

import (
	"go.uber.org/zap"

	"sipesantren/backend/config"
	"sipesantren/backend/internal/repository"
	"sipesantren/backend/pkg/jwt"
	"sipesantren/backend/pkg/redis"
)

// Service pintu masuk agregat seluruh layanan
type Service struct {
	Auth        AuthService
	User        UserService
	Santri      SantriService
	Mapel       MapelService
	Nilai       NilaiService
	Absensi     AbsensiService
	Ekskul      EkskulService
	WaliKelas   WaliKelasService
	Raport      RaportService
	Export      ExportService
	Pelanggaran PelanggaranService
	Kesehatan   KesehatanService
	Keuangan    KeuanganService
	Pengaturan  PengaturanService
	Kalender    KalenderService
}

// NewService membuat agregat Service. rdb boleh nil: fitur yang
// bergantung Redis berjalan dalam mode degradasi.
func NewService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, rdb, logger),
		User:        NewUserService(repo, logger),
		Santri:      NewSantriService(repo, logger),
		Mapel:       NewMapelService(repo, logger),
		Nilai:       NewNilaiService(repo, logger),
		Absensi:     NewAbsensiService(repo, logger),
		Ekskul:      NewEkskulService(repo, logger),
		WaliKelas:   NewWaliKelasService(repo, logger),
		Raport:      NewRaportService(cfg, repo, logger),
		Export:      NewExportService(repo, logger),
		Pelanggaran: NewPelanggaranService(repo, logger),
		Kesehatan:   NewKesehatanService(repo, logger),
		Keuangan:    NewKeuanganService(repo, logger),
		Pengaturan:  NewPengaturanService(cfg, repo, logger),
		Kalender:    NewKalenderService(repo, logger),
	}
}
