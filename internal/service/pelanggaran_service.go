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

// ── Galat modul pelanggaran ──

var (
	ErrPelanggaranNotFound = errors.New("pelanggaran tidak ditemukan")
)

// PelanggaranService pencatatan pelanggaran santri
type PelanggaranService interface {
	Create(ctx context.Context, req *dto.CreatePelanggaranRequest) (*dto.PelanggaranResponse, error)
	List(ctx context.Context, santriID string) ([]dto.PelanggaranResponse, error)
	Delete(ctx context.Context, id string) error
}

type pelanggaranService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPelanggaranService membuat PelanggaranService
func NewPelanggaranService(repo *repository.Repository, logger *zap.Logger) PelanggaranService {
	return &pelanggaranService{repo: repo, logger: logger}
}

func (s *pelanggaranService) Create(ctx context.Context, req *dto.CreatePelanggaranRequest) (*dto.PelanggaranResponse, error) {
	if _, err := s.repo.Santri.GetByID(ctx, req.SantriID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, err
	}

	pelanggaran := &model.Pelanggaran{
		SantriID:   req.SantriID,
		Jenis:      req.Jenis,
		Poin:       req.Poin,
		Tanggal:    tanggal,
		Keterangan: req.Keterangan,
	}
	if err := s.repo.Pelanggaran.Create(ctx, pelanggaran); err != nil {
		s.logger.Error("gagal menyimpan pelanggaran", zap.Error(err))
		return nil, err
	}
	return toPelanggaranResponse(pelanggaran), nil
}

func (s *pelanggaranService) List(ctx context.Context, santriID string) ([]dto.PelanggaranResponse, error) {
	pelanggaran, err := s.repo.Pelanggaran.List(ctx, santriID)
	if err != nil {
		s.logger.Error("gagal memuat daftar pelanggaran", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.PelanggaranResponse, 0, len(pelanggaran))
	for i := range pelanggaran {
		resp = append(resp, *toPelanggaranResponse(&pelanggaran[i]))
	}
	return resp, nil
}

func (s *pelanggaranService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Pelanggaran.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPelanggaranNotFound
		}
		return err
	}
	return s.repo.Pelanggaran.Delete(ctx, id)
}

func toPelanggaranResponse(pelanggaran *model.Pelanggaran) *dto.PelanggaranResponse {
	resp := &dto.PelanggaranResponse{
		ID:         pelanggaran.PelanggaranID,
		SantriID:   pelanggaran.SantriID,
		Jenis:      pelanggaran.Jenis,
		Poin:       pelanggaran.Poin,
		Tanggal:    pelanggaran.Tanggal.Format("2006-01-02"),
		Keterangan: pelanggaran.Keterangan,
	}
	if pelanggaran.Santri != nil {
		resp.NamaSantri = pelanggaran.Santri.Nama
	}
	return resp
}
