package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sipesantren/backend/config"
	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/model"
	"sipesantren/backend/internal/repository"
)

// PengaturanService pengaturan identitas sekolah (baris singleton).
// Get selalu mengembalikan data lengkap: nilai kosong diisi fallback
// dari konfigurasi supaya kop dokumen tidak pernah kosong.
type PengaturanService interface {
	Get(ctx context.Context) (*dto.PengaturanResponse, error)
	Update(ctx context.Context, req *dto.UpdatePengaturanRequest) (*dto.PengaturanResponse, error)
}

type pengaturanService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPengaturanService membuat PengaturanService
func NewPengaturanService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) PengaturanService {
	return &pengaturanService{cfg: cfg, repo: repo, logger: logger}
}

func (s *pengaturanService) Get(ctx context.Context) (*dto.PengaturanResponse, error) {
	resp := s.fallback()

	pengaturan, err := s.repo.Pengaturan.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		s.logger.Error("gagal memuat pengaturan sekolah", zap.Error(err))
		return nil, err
	}

	timpaPengaturan(resp, pengaturan)
	return resp, nil
}

func (s *pengaturanService) Update(ctx context.Context, req *dto.UpdatePengaturanRequest) (*dto.PengaturanResponse, error) {
	pengaturan, err := s.repo.Pengaturan.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		pengaturan = &model.PengaturanSekolah{}
	}

	if req.NamaSekolah != nil {
		pengaturan.NamaSekolah = *req.NamaSekolah
	}
	if req.Alamat != nil {
		pengaturan.Alamat = *req.Alamat
	}
	if req.Kota != nil {
		pengaturan.Kota = *req.Kota
	}
	if req.LogoKiriURL != nil {
		pengaturan.LogoKiriURL = *req.LogoKiriURL
	}
	if req.LogoKananURL != nil {
		pengaturan.LogoKananURL = *req.LogoKananURL
	}
	if req.NamaKepala != nil {
		pengaturan.NamaKepala = *req.NamaKepala
	}
	if req.JabatanKepala != nil {
		pengaturan.JabatanKepala = *req.JabatanKepala
	}

	if err := s.repo.Pengaturan.Upsert(ctx, pengaturan); err != nil {
		s.logger.Error("gagal menyimpan pengaturan sekolah", zap.Error(err))
		return nil, err
	}

	resp := s.fallback()
	timpaPengaturan(resp, pengaturan)
	return resp, nil
}

func (s *pengaturanService) fallback() *dto.PengaturanResponse {
	return &dto.PengaturanResponse{
		NamaSekolah:   s.cfg.Sekolah.Nama,
		Kota:          s.cfg.Sekolah.Kota,
		JabatanKepala: "Pimpinan Pondok",
	}
}

func timpaPengaturan(resp *dto.PengaturanResponse, pengaturan *model.PengaturanSekolah) {
	if pengaturan.NamaSekolah != "" {
		resp.NamaSekolah = pengaturan.NamaSekolah
	}
	if pengaturan.Alamat != "" {
		resp.Alamat = pengaturan.Alamat
	}
	if pengaturan.Kota != "" {
		resp.Kota = pengaturan.Kota
	}
	resp.LogoKiriURL = pengaturan.LogoKiriURL
	resp.LogoKananURL = pengaturan.LogoKananURL
	if pengaturan.NamaKepala != "" {
		resp.NamaKepala = pengaturan.NamaKepala
	}
	if pengaturan.JabatanKepala != "" {
		resp.JabatanKepala = pengaturan.JabatanKepala
	}
}
