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

// ── Galat modul mata pelajaran ──

var (
	ErrMapelNotFound = errors.New("mata pelajaran tidak ditemukan")
)

// MapelService pengelolaan mata pelajaran dan kategorinya
type MapelService interface {
	Create(ctx context.Context, req *dto.CreateMapelRequest) (*dto.MapelResponse, error)
	List(ctx context.Context, kelas string) ([]dto.MapelResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateMapelRequest) (*dto.MapelResponse, error)
	// UpdateKategori memindahkan kategori dalam satu siklus atomik dan
	// mengembalikan keadaan otoritatif hasil simpan
	UpdateKategori(ctx context.Context, id string, req *dto.UpdateKategoriRequest) (*dto.MapelResponse, error)
	Delete(ctx context.Context, id string) error
}

type mapelService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMapelService membuat MapelService
func NewMapelService(repo *repository.Repository, logger *zap.Logger) MapelService {
	return &mapelService{repo: repo, logger: logger}
}

func (s *mapelService) Create(ctx context.Context, req *dto.CreateMapelRequest) (*dto.MapelResponse, error) {
	mapel := &model.MataPelajaran{
		Nama:     req.Nama,
		Kelas:    req.Kelas,
		Kategori: req.Kategori,
	}
	if err := s.repo.MataPelajaran.Create(ctx, mapel); err != nil {
		s.logger.Error("gagal menyimpan mata pelajaran", zap.Error(err))
		return nil, err
	}
	return toMapelResponse(mapel), nil
}

func (s *mapelService) List(ctx context.Context, kelas string) ([]dto.MapelResponse, error) {
	mapel, err := s.repo.MataPelajaran.List(ctx, kelas)
	if err != nil {
		s.logger.Error("gagal memuat daftar mata pelajaran", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.MapelResponse, 0, len(mapel))
	for i := range mapel {
		resp = append(resp, *toMapelResponse(&mapel[i]))
	}
	return resp, nil
}

func (s *mapelService) Update(ctx context.Context, id string, req *dto.UpdateMapelRequest) (*dto.MapelResponse, error) {
	mapel, err := s.repo.MataPelajaran.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMapelNotFound
		}
		return nil, err
	}

	if req.Nama != nil {
		mapel.Nama = *req.Nama
	}
	if req.Kelas != nil {
		mapel.Kelas = *req.Kelas
	}

	if err := s.repo.MataPelajaran.Update(ctx, mapel); err != nil {
		s.logger.Error("gagal memperbarui mata pelajaran", zap.String("mapel_id", id), zap.Error(err))
		return nil, err
	}
	return toMapelResponse(mapel), nil
}

// UpdateKategori menyimpan kategori baru lalu membaca ulang barisnya.
// Kategori kosong berarti mapel kembali tak berkategori (bucket umum).
func (s *mapelService) UpdateKategori(ctx context.Context, id string, req *dto.UpdateKategoriRequest) (*dto.MapelResponse, error) {
	if err := s.repo.MataPelajaran.UpdateKategori(ctx, id, req.Kategori); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMapelNotFound
		}
		s.logger.Error("gagal memindahkan kategori", zap.String("mapel_id", id), zap.Error(err))
		return nil, err
	}

	mapel, err := s.repo.MataPelajaran.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMapelResponse(mapel), nil
}

func (s *mapelService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.MataPelajaran.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMapelNotFound
		}
		return err
	}
	return s.repo.MataPelajaran.Delete(ctx, id)
}

func toMapelResponse(mapel *model.MataPelajaran) *dto.MapelResponse {
	kategori := mapel.Kategori
	if kategori == "" {
		kategori = model.KategoriUmum
	}
	return &dto.MapelResponse{
		ID:       mapel.MapelID,
		Nama:     mapel.Nama,
		Kelas:    mapel.Kelas,
		Kategori: kategori,
	}
}
