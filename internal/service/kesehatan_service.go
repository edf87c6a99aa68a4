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

// ── Galat modul kesehatan ──

var (
	ErrKesehatanNotFound = errors.New("riwayat kesehatan tidak ditemukan")
)

// KesehatanService pencatatan riwayat kesehatan santri
type KesehatanService interface {
	Create(ctx context.Context, req *dto.CreateKesehatanRequest) (*dto.KesehatanResponse, error)
	List(ctx context.Context, santriID string) ([]dto.KesehatanResponse, error)
	Delete(ctx context.Context, id string) error
}

type kesehatanService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewKesehatanService membuat KesehatanService
func NewKesehatanService(repo *repository.Repository, logger *zap.Logger) KesehatanService {
	return &kesehatanService{repo: repo, logger: logger}
}

func (s *kesehatanService) Create(ctx context.Context, req *dto.CreateKesehatanRequest) (*dto.KesehatanResponse, error) {
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

	riwayat := &model.RiwayatKesehatan{
		SantriID:   req.SantriID,
		Keluhan:    req.Keluhan,
		Diagnosis:  req.Diagnosis,
		Penanganan: req.Penanganan,
		Tanggal:    tanggal,
	}
	if err := s.repo.Kesehatan.Create(ctx, riwayat); err != nil {
		s.logger.Error("gagal menyimpan riwayat kesehatan", zap.Error(err))
		return nil, err
	}
	return toKesehatanResponse(riwayat), nil
}

func (s *kesehatanService) List(ctx context.Context, santriID string) ([]dto.KesehatanResponse, error) {
	riwayat, err := s.repo.Kesehatan.List(ctx, santriID)
	if err != nil {
		s.logger.Error("gagal memuat riwayat kesehatan", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.KesehatanResponse, 0, len(riwayat))
	for i := range riwayat {
		resp = append(resp, *toKesehatanResponse(&riwayat[i]))
	}
	return resp, nil
}

func (s *kesehatanService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Kesehatan.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrKesehatanNotFound
		}
		return err
	}
	return s.repo.Kesehatan.Delete(ctx, id)
}

func toKesehatanResponse(riwayat *model.RiwayatKesehatan) *dto.KesehatanResponse {
	resp := &dto.KesehatanResponse{
		ID:         riwayat.KesehatanID,
		SantriID:   riwayat.SantriID,
		Keluhan:    riwayat.Keluhan,
		Diagnosis:  riwayat.Diagnosis,
		Penanganan: riwayat.Penanganan,
		Tanggal:    riwayat.Tanggal.Format("2006-01-02"),
	}
	if riwayat.Santri != nil {
		resp.NamaSantri = riwayat.Santri.Nama
	}
	return resp
}
