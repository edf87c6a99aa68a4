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

// ── Galat modul nilai ──

var (
	ErrNilaiNotFound = errors.New("nilai tidak ditemukan")
)

// NilaiService pengelolaan nilai santri
type NilaiService interface {
	Create(ctx context.Context, req *dto.CreateNilaiRequest) (*dto.NilaiResponse, error)
	List(ctx context.Context, req *dto.ListNilaiRequest) ([]dto.NilaiResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateNilaiRequest) (*dto.NilaiResponse, error)
	Delete(ctx context.Context, id string) error
}

type nilaiService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNilaiService membuat NilaiService
func NewNilaiService(repo *repository.Repository, logger *zap.Logger) NilaiService {
	return &nilaiService{repo: repo, logger: logger}
}

func (s *nilaiService) Create(ctx context.Context, req *dto.CreateNilaiRequest) (*dto.NilaiResponse, error) {
	if _, err := s.repo.Santri.GetByID(ctx, req.SantriID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	nilai := &model.Nilai{
		SantriID:      req.SantriID,
		MataPelajaran: req.MataPelajaran,
		JenisNilai:    req.JenisNilai,
		Nilai:         req.Nilai,
		Semester:      req.Semester,
		TahunAjaran:   req.TahunAjaran,
	}
	if req.Tanggal != "" {
		if t, err := time.Parse("2006-01-02", req.Tanggal); err == nil {
			nilai.Tanggal = &t
		}
	}

	if err := s.repo.Nilai.Create(ctx, nilai); err != nil {
		s.logger.Error("gagal menyimpan nilai", zap.Error(err))
		return nil, err
	}
	return toNilaiResponse(nilai), nil
}

func (s *nilaiService) List(ctx context.Context, req *dto.ListNilaiRequest) ([]dto.NilaiResponse, error) {
	nilai, err := s.repo.Nilai.List(ctx, repository.NilaiFilter{
		SantriID:    req.SantriID,
		Kelas:       req.Kelas,
		JenisNilai:  req.JenisNilai,
		Semester:    req.Semester,
		TahunAjaran: req.TahunAjaran,
	})
	if err != nil {
		s.logger.Error("gagal memuat daftar nilai", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.NilaiResponse, 0, len(nilai))
	for i := range nilai {
		resp = append(resp, *toNilaiResponse(&nilai[i]))
	}
	return resp, nil
}

func (s *nilaiService) Update(ctx context.Context, id string, req *dto.UpdateNilaiRequest) (*dto.NilaiResponse, error) {
	nilai, err := s.repo.Nilai.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNilaiNotFound
		}
		return nil, err
	}

	if req.Nilai != nil {
		nilai.Nilai = *req.Nilai
	}
	if req.Tanggal != nil {
		if t, perr := time.Parse("2006-01-02", *req.Tanggal); perr == nil {
			nilai.Tanggal = &t
		}
	}

	if err := s.repo.Nilai.Update(ctx, nilai); err != nil {
		s.logger.Error("gagal memperbarui nilai", zap.String("nilai_id", id), zap.Error(err))
		return nil, err
	}
	return toNilaiResponse(nilai), nil
}

func (s *nilaiService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Nilai.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNilaiNotFound
		}
		return err
	}
	return s.repo.Nilai.Delete(ctx, id)
}

func toNilaiResponse(nilai *model.Nilai) *dto.NilaiResponse {
	resp := &dto.NilaiResponse{
		ID:            nilai.NilaiID,
		SantriID:      nilai.SantriID,
		MataPelajaran: nilai.MataPelajaran,
		JenisNilai:    nilai.JenisNilai,
		Nilai:         nilai.Nilai,
		Semester:      nilai.Semester,
		TahunAjaran:   nilai.TahunAjaran,
	}
	if nilai.Santri != nil {
		resp.NamaSantri = nilai.Santri.Nama
	}
	if nilai.Tanggal != nil {
		resp.Tanggal = nilai.Tanggal.Format("2006-01-02")
	}
	return resp
}
