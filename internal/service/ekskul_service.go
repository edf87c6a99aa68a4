package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/model"
	"sipesantren/backend/internal/repository"
)

// ── Galat modul ekstrakurikuler ──

var (
	ErrEkskulNotFound      = errors.New("kegiatan ekstrakurikuler tidak ditemukan")
	ErrNilaiEkskulNotFound = errors.New("nilai ekstrakurikuler tidak ditemukan")
)

// EkskulService pengelolaan kegiatan ekstrakurikuler dan nilainya
type EkskulService interface {
	Create(ctx context.Context, req *dto.CreateEkskulRequest) (*dto.EkskulResponse, error)
	List(ctx context.Context) ([]dto.EkskulResponse, error)
	Delete(ctx context.Context, id string) error

	CreateNilai(ctx context.Context, req *dto.CreateNilaiEkskulRequest) error
	DeleteNilai(ctx context.Context, id string) error
}

type ekskulService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEkskulService membuat EkskulService
func NewEkskulService(repo *repository.Repository, logger *zap.Logger) EkskulService {
	return &ekskulService{repo: repo, logger: logger}
}

func (s *ekskulService) Create(ctx context.Context, req *dto.CreateEkskulRequest) (*dto.EkskulResponse, error) {
	ekskul := &model.Ekstrakurikuler{
		Nama:    req.Nama,
		Pembina: req.Pembina,
	}
	if err := s.repo.Ekskul.Create(ctx, ekskul); err != nil {
		s.logger.Error("gagal menyimpan kegiatan ekstrakurikuler", zap.Error(err))
		return nil, err
	}
	return &dto.EkskulResponse{ID: ekskul.EkskulID, Nama: ekskul.Nama, Pembina: ekskul.Pembina}, nil
}

func (s *ekskulService) List(ctx context.Context) ([]dto.EkskulResponse, error) {
	ekskul, err := s.repo.Ekskul.List(ctx)
	if err != nil {
		s.logger.Error("gagal memuat daftar ekstrakurikuler", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.EkskulResponse, 0, len(ekskul))
	for _, e := range ekskul {
		resp = append(resp, dto.EkskulResponse{ID: e.EkskulID, Nama: e.Nama, Pembina: e.Pembina})
	}
	return resp, nil
}

func (s *ekskulService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Ekskul.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEkskulNotFound
		}
		return err
	}
	return s.repo.Ekskul.Delete(ctx, id)
}

// ── Nilai ekstrakurikuler ──

func (s *ekskulService) CreateNilai(ctx context.Context, req *dto.CreateNilaiEkskulRequest) error {
	if _, err := s.repo.Santri.GetByID(ctx, req.SantriID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSantriNotFound
		}
		return err
	}
	if _, err := s.repo.Ekskul.GetByID(ctx, req.EkskulID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEkskulNotFound
		}
		return err
	}

	nilai := &model.NilaiEkstrakurikuler{
		SantriID:    req.SantriID,
		EkskulID:    req.EkskulID,
		Nilai:       req.Nilai,
		Semester:    req.Semester,
		TahunAjaran: req.TahunAjaran,
	}
	if err := s.repo.Ekskul.CreateNilai(ctx, nilai); err != nil {
		s.logger.Error("gagal menyimpan nilai ekstrakurikuler", zap.Error(err))
		return err
	}
	return nil
}

func (s *ekskulService) DeleteNilai(ctx context.Context, id string) error {
	return s.repo.Ekskul.DeleteNilai(ctx, id)
}
