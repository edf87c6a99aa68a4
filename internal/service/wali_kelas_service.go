package service

import (
	"context"

	"go.uber.org/zap"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/model"
	"sipesantren/backend/internal/repository"
)

// WaliKelasService penetapan wali kelas (satu kelas satu wali)
type WaliKelasService interface {
	Set(ctx context.Context, req *dto.SetWaliKelasRequest) (*dto.WaliKelasResponse, error)
	List(ctx context.Context) ([]dto.WaliKelasResponse, error)
	Delete(ctx context.Context, kelas string) error
}

type waliKelasService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWaliKelasService membuat WaliKelasService
func NewWaliKelasService(repo *repository.Repository, logger *zap.Logger) WaliKelasService {
	return &waliKelasService{repo: repo, logger: logger}
}

// Set menetapkan (atau mengganti) wali untuk satu kelas
func (s *waliKelasService) Set(ctx context.Context, req *dto.SetWaliKelasRequest) (*dto.WaliKelasResponse, error) {
	wali := &model.WaliKelas{
		Kelas:    req.Kelas,
		NamaGuru: req.NamaGuru,
		NIP:      req.NIP,
	}
	if err := s.repo.WaliKelas.Upsert(ctx, wali); err != nil {
		s.logger.Error("gagal menetapkan wali kelas", zap.String("kelas", req.Kelas), zap.Error(err))
		return nil, err
	}
	return &dto.WaliKelasResponse{Kelas: wali.Kelas, NamaGuru: wali.NamaGuru, NIP: wali.NIP}, nil
}

func (s *waliKelasService) List(ctx context.Context) ([]dto.WaliKelasResponse, error) {
	wali, err := s.repo.WaliKelas.List(ctx)
	if err != nil {
		s.logger.Error("gagal memuat daftar wali kelas", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.WaliKelasResponse, 0, len(wali))
	for _, w := range wali {
		resp = append(resp, dto.WaliKelasResponse{Kelas: w.Kelas, NamaGuru: w.NamaGuru, NIP: w.NIP})
	}
	return resp, nil
}

func (s *waliKelasService) Delete(ctx context.Context, kelas string) error {
	return s.repo.WaliKelas.Delete(ctx, kelas)
}
