package repository

import (
	"context"

	"gorm.io/gorm"

	"sipesantren/backend/internal/model"
)

// PembayaranFilter filter riwayat pembayaran
type PembayaranFilter struct {
	SantriID string
	Keyword  string // cocok sebagian terhadap nama santri / jenis pembayaran
	Tahun    string
}

// KeuanganRepository akses data keuangan (pembayaran, pengeluaran, donasi)
type KeuanganRepository interface {
	CreatePembayaran(ctx context.Context, pembayaran *model.Pembayaran) error
	GetPembayaranByID(ctx context.Context, id string) (*model.Pembayaran, error)
	ListPembayaran(ctx context.Context, filter PembayaranFilter) ([]model.Pembayaran, error)
	UpdatePembayaran(ctx context.Context, pembayaran *model.Pembayaran) error
	DeletePembayaran(ctx context.Context, id string) error

	CreatePengeluaran(ctx context.Context, pengeluaran *model.Pengeluaran) error
	ListPengeluaran(ctx context.Context) ([]model.Pengeluaran, error)
	DeletePengeluaran(ctx context.Context, id string) error

	CreateDonasi(ctx context.Context, donasi *model.Donasi) error
	ListDonasi(ctx context.Context) ([]model.Donasi, error)
	DeleteDonasi(ctx context.Context, id string) error
}

type keuanganRepo struct {
	db *gorm.DB
}

// NewKeuanganRepo membuat KeuanganRepository
func NewKeuanganRepo(db *gorm.DB) KeuanganRepository {
	return &keuanganRepo{db: db}
}

// ── Pembayaran ──

func (r *keuanganRepo) CreatePembayaran(ctx context.Context, pembayaran *model.Pembayaran) error {
	return r.db.WithContext(ctx).Create(pembayaran).Error
}

func (r *keuanganRepo) GetPembayaranByID(ctx context.Context, id string) (*model.Pembayaran, error) {
	var pembayaran model.Pembayaran
	err := r.db.WithContext(ctx).
		Preload("Santri").
		Where("pembayaran_id = ?", id).
		First(&pembayaran).Error
	if err != nil {
		return nil, err
	}
	return &pembayaran, nil
}

func (r *keuanganRepo) ListPembayaran(ctx context.Context, filter PembayaranFilter) ([]model.Pembayaran, error) {
	q := r.db.WithContext(ctx).Model(&model.Pembayaran{}).Preload("Santri")

	if filter.SantriID != "" {
		q = q.Where("pembayaran.santri_id = ?", filter.SantriID)
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		q = q.Joins("JOIN santri ON santri.santri_id = pembayaran.santri_id").
			Where("santri.nama ILIKE ? OR pembayaran.jenis ILIKE ?", kw, kw)
	}
	if filter.Tahun != "" {
		q = q.Where("pembayaran.tahun = ?", filter.Tahun)
	}

	var pembayaran []model.Pembayaran
	err := q.Order("pembayaran.tanggal DESC").Find(&pembayaran).Error
	return pembayaran, err
}

func (r *keuanganRepo) UpdatePembayaran(ctx context.Context, pembayaran *model.Pembayaran) error {
	return r.db.WithContext(ctx).Save(pembayaran).Error
}

func (r *keuanganRepo) DeletePembayaran(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("pembayaran_id = ?", id).
		Delete(&model.Pembayaran{}).Error
}

// ── Pengeluaran ──

func (r *keuanganRepo) CreatePengeluaran(ctx context.Context, pengeluaran *model.Pengeluaran) error {
	return r.db.WithContext(ctx).Create(pengeluaran).Error
}

func (r *keuanganRepo) ListPengeluaran(ctx context.Context) ([]model.Pengeluaran, error) {
	var pengeluaran []model.Pengeluaran
	err := r.db.WithContext(ctx).Order("tanggal DESC").Find(&pengeluaran).Error
	return pengeluaran, err
}

func (r *keuanganRepo) DeletePengeluaran(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("pengeluaran_id = ?", id).
		Delete(&model.Pengeluaran{}).Error
}

// ── Donasi ──

func (r *keuanganRepo) CreateDonasi(ctx context.Context, donasi *model.Donasi) error {
	return r.db.WithContext(ctx).Create(donasi).Error
}

func (r *keuanganRepo) ListDonasi(ctx context.Context) ([]model.Donasi, error) {
	var donasi []model.Donasi
	err := r.db.WithContext(ctx).Order("tanggal DESC").Find(&donasi).Error
	return donasi, err
}

func (r *keuanganRepo) DeleteDonasi(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("donasi_id = ?", id).
		Delete(&model.Donasi{}).Error
}
