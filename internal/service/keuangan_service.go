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

// ── Galat modul keuangan ──

var (
	ErrPembayaranNotFound = errors.New("pembayaran tidak ditemukan")
)

// KeuanganService pencatatan keuangan: pembayaran santri, pengeluaran
// operasional, dan donasi masuk
type KeuanganService interface {
	CreatePembayaran(ctx context.Context, req *dto.CreatePembayaranRequest) (*dto.PembayaranResponse, error)
	ListPembayaran(ctx context.Context, santriID, keyword, tahun string) ([]dto.PembayaranResponse, error)
	DeletePembayaran(ctx context.Context, id string) error

	CreatePengeluaran(ctx context.Context, req *dto.CreatePengeluaranRequest) (*dto.PengeluaranResponse, error)
	ListPengeluaran(ctx context.Context) ([]dto.PengeluaranResponse, error)
	DeletePengeluaran(ctx context.Context, id string) error

	CreateDonasi(ctx context.Context, req *dto.CreateDonasiRequest) (*dto.DonasiResponse, error)
	ListDonasi(ctx context.Context) ([]dto.DonasiResponse, error)
	DeleteDonasi(ctx context.Context, id string) error
}

type keuanganService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewKeuanganService membuat KeuanganService
func NewKeuanganService(repo *repository.Repository, logger *zap.Logger) KeuanganService {
	return &keuanganService{repo: repo, logger: logger}
}

// ── Pembayaran ──

func (s *keuanganService) CreatePembayaran(ctx context.Context, req *dto.CreatePembayaranRequest) (*dto.PembayaranResponse, error) {
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

	status := req.Status
	if status == "" {
		status = model.PembayaranLunas
	}

	pembayaran := &model.Pembayaran{
		SantriID: req.SantriID,
		Jenis:    req.Jenis,
		Bulan:    req.Bulan,
		Tahun:    req.Tahun,
		Nominal:  req.Nominal,
		Status:   status,
		Tanggal:  tanggal,
	}
	if err := s.repo.Keuangan.CreatePembayaran(ctx, pembayaran); err != nil {
		s.logger.Error("gagal menyimpan pembayaran", zap.Error(err))
		return nil, err
	}
	return toPembayaranResponse(pembayaran), nil
}

func (s *keuanganService) ListPembayaran(ctx context.Context, santriID, keyword, tahun string) ([]dto.PembayaranResponse, error) {
	pembayaran, err := s.repo.Keuangan.ListPembayaran(ctx, repository.PembayaranFilter{
		SantriID: santriID,
		Keyword:  keyword,
		Tahun:    tahun,
	})
	if err != nil {
		s.logger.Error("gagal memuat riwayat pembayaran", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.PembayaranResponse, 0, len(pembayaran))
	for i := range pembayaran {
		resp = append(resp, *toPembayaranResponse(&pembayaran[i]))
	}
	return resp, nil
}

func (s *keuanganService) DeletePembayaran(ctx context.Context, id string) error {
	if _, err := s.repo.Keuangan.GetPembayaranByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPembayaranNotFound
		}
		return err
	}
	return s.repo.Keuangan.DeletePembayaran(ctx, id)
}

// ── Pengeluaran ──

func (s *keuanganService) CreatePengeluaran(ctx context.Context, req *dto.CreatePengeluaranRequest) (*dto.PengeluaranResponse, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, err
	}

	pengeluaran := &model.Pengeluaran{
		Keperluan:  req.Keperluan,
		Nominal:    req.Nominal,
		Tanggal:    tanggal,
		Keterangan: req.Keterangan,
	}
	if err := s.repo.Keuangan.CreatePengeluaran(ctx, pengeluaran); err != nil {
		s.logger.Error("gagal menyimpan pengeluaran", zap.Error(err))
		return nil, err
	}
	return &dto.PengeluaranResponse{
		ID:         pengeluaran.PengeluaranID,
		Keperluan:  pengeluaran.Keperluan,
		Nominal:    pengeluaran.Nominal,
		Tanggal:    pengeluaran.Tanggal.Format("2006-01-02"),
		Keterangan: pengeluaran.Keterangan,
	}, nil
}

func (s *keuanganService) ListPengeluaran(ctx context.Context) ([]dto.PengeluaranResponse, error) {
	pengeluaran, err := s.repo.Keuangan.ListPengeluaran(ctx)
	if err != nil {
		s.logger.Error("gagal memuat daftar pengeluaran", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.PengeluaranResponse, 0, len(pengeluaran))
	for _, p := range pengeluaran {
		resp = append(resp, dto.PengeluaranResponse{
			ID:         p.PengeluaranID,
			Keperluan:  p.Keperluan,
			Nominal:    p.Nominal,
			Tanggal:    p.Tanggal.Format("2006-01-02"),
			Keterangan: p.Keterangan,
		})
	}
	return resp, nil
}

func (s *keuanganService) DeletePengeluaran(ctx context.Context, id string) error {
	return s.repo.Keuangan.DeletePengeluaran(ctx, id)
}

// ── Donasi ──

func (s *keuanganService) CreateDonasi(ctx context.Context, req *dto.CreateDonasiRequest) (*dto.DonasiResponse, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, err
	}

	donasi := &model.Donasi{
		Donatur:    req.Donatur,
		Nominal:    req.Nominal,
		Tanggal:    tanggal,
		Keterangan: req.Keterangan,
	}
	if err := s.repo.Keuangan.CreateDonasi(ctx, donasi); err != nil {
		s.logger.Error("gagal menyimpan donasi", zap.Error(err))
		return nil, err
	}
	return &dto.DonasiResponse{
		ID:         donasi.DonasiID,
		Donatur:    donasi.Donatur,
		Nominal:    donasi.Nominal,
		Tanggal:    donasi.Tanggal.Format("2006-01-02"),
		Keterangan: donasi.Keterangan,
	}, nil
}

func (s *keuanganService) ListDonasi(ctx context.Context) ([]dto.DonasiResponse, error) {
	donasi, err := s.repo.Keuangan.ListDonasi(ctx)
	if err != nil {
		s.logger.Error("gagal memuat daftar donasi", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.DonasiResponse, 0, len(donasi))
	for _, d := range donasi {
		resp = append(resp, dto.DonasiResponse{
			ID:         d.DonasiID,
			Donatur:    d.Donatur,
			Nominal:    d.Nominal,
			Tanggal:    d.Tanggal.Format("2006-01-02"),
			Keterangan: d.Keterangan,
		})
	}
	return resp, nil
}

func (s *keuanganService) DeleteDonasi(ctx context.Context, id string) error {
	return s.repo.Keuangan.DeleteDonasi(ctx, id)
}

func toPembayaranResponse(pembayaran *model.Pembayaran) *dto.PembayaranResponse {
	resp := &dto.PembayaranResponse{
		ID:       pembayaran.PembayaranID,
		SantriID: pembayaran.SantriID,
		Jenis:    pembayaran.Jenis,
		Bulan:    pembayaran.Bulan,
		Tahun:    pembayaran.Tahun,
		Nominal:  pembayaran.Nominal,
		Status:   pembayaran.Status,
		Tanggal:  pembayaran.Tanggal.Format("2006-01-02"),
	}
	if pembayaran.Santri != nil {
		resp.NamaSantri = pembayaran.Santri.Nama
	}
	return resp
}
