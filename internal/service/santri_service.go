package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/model"
	"sipesantren/backend/internal/repository"
)

// ── Galat modul santri ──

var (
	ErrSantriNotFound = errors.New("santri tidak ditemukan")
)

// SantriService pengelolaan biodata santri
type SantriService interface {
	Create(ctx context.Context, req *dto.CreateSantriRequest) (*dto.SantriResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SantriResponse, error)
	List(ctx context.Context, req *dto.ListSantriRequest) ([]dto.SantriResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateSantriRequest) (*dto.SantriResponse, error)
	Delete(ctx context.Context, id string) error
}

type santriService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSantriService membuat SantriService
func NewSantriService(repo *repository.Repository, logger *zap.Logger) SantriService {
	return &santriService{repo: repo, logger: logger}
}

func (s *santriService) Create(ctx context.Context, req *dto.CreateSantriRequest) (*dto.SantriResponse, error) {
	santri := &model.Santri{
		Nama:         req.Nama,
		NIS:          req.NIS,
		NISN:         req.NISN,
		NIK:          req.NIK,
		Kelas:        req.Kelas,
		Tingkatan:    req.Tingkatan,
		JenisKelamin: req.JenisKelamin,
		TempatLahir:  req.TempatLahir,
		Alamat:       req.Alamat,
		NamaWali:     req.NamaWali,
		TeleponWali:  req.TeleponWali,
	}
	if req.TanggalLahir != "" {
		t, err := time.Parse("2006-01-02", req.TanggalLahir)
		if err == nil {
			santri.TanggalLahir = &t
		}
	}

	if err := s.repo.Santri.Create(ctx, santri); err != nil {
		s.logger.Error("gagal menyimpan santri", zap.Error(err))
		return nil, err
	}

	resp := toSantriResponse(santri)
	return &resp, nil
}

func (s *santriService) GetByID(ctx context.Context, id string) (*dto.SantriResponse, error) {
	santri, err := s.repo.Santri.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	resp := toSantriResponse(santri)
	return &resp, nil
}

func (s *santriService) List(ctx context.Context, req *dto.ListSantriRequest) ([]dto.SantriResponse, int64, error) {
	santri, total, err := s.repo.Santri.List(ctx, repository.SantriFilter{
		Kelas:     req.Kelas,
		Tingkatan: req.Tingkatan,
		Keyword:   req.Keyword,
		Offset:    req.GetOffset(),
		Limit:     req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("gagal memuat daftar santri", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]dto.SantriResponse, 0, len(santri))
	for i := range santri {
		resp = append(resp, toSantriResponse(&santri[i]))
	}
	return resp, total, nil
}

func (s *santriService) Update(ctx context.Context, id string, req *dto.UpdateSantriRequest) (*dto.SantriResponse, error) {
	santri, err := s.repo.Santri.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	if req.Nama != nil {
		santri.Nama = *req.Nama
	}
	if req.NIS != nil {
		santri.NIS = *req.NIS
	}
	if req.NISN != nil {
		santri.NISN = *req.NISN
	}
	if req.NIK != nil {
		santri.NIK = *req.NIK
	}
	if req.Kelas != nil {
		santri.Kelas = *req.Kelas
	}
	if req.Tingkatan != nil {
		santri.Tingkatan = *req.Tingkatan
	}
	if req.JenisKelamin != nil {
		santri.JenisKelamin = *req.JenisKelamin
	}
	if req.TempatLahir != nil {
		santri.TempatLahir = *req.TempatLahir
	}
	if req.TanggalLahir != nil {
		if *req.TanggalLahir == "" {
			santri.TanggalLahir = nil
		} else if t, perr := time.Parse("2006-01-02", *req.TanggalLahir); perr == nil {
			santri.TanggalLahir = &t
		}
	}
	if req.Alamat != nil {
		santri.Alamat = *req.Alamat
	}
	if req.NamaWali != nil {
		santri.NamaWali = *req.NamaWali
	}
	if req.TeleponWali != nil {
		santri.TeleponWali = *req.TeleponWali
	}

	if err := s.repo.Santri.Update(ctx, santri); err != nil {
		s.logger.Error("gagal memperbarui santri", zap.String("santri_id", id), zap.Error(err))
		return nil, err
	}

	resp := toSantriResponse(santri)
	return &resp, nil
}

func (s *santriService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Santri.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSantriNotFound
		}
		return err
	}
	return s.repo.Santri.Delete(ctx, id)
}
