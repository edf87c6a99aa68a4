package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sipesantren/backend/internal/model"
)

// AbsensiRepository akses data absensi
type AbsensiRepository interface {
	Create(ctx context.Context, absensi *model.Absensi) error
	GetByID(ctx context.Context, id string) (*model.Absensi, error)
	ListBySantriInRange(ctx context.Context, santriID string, mulai, sampai time.Time) ([]model.Absensi, error)
	ListByKelasInRange(ctx context.Context, kelas, tingkatan string, mulai, sampai time.Time) ([]model.Absensi, error)
	Update(ctx context.Context, absensi *model.Absensi) error
	Delete(ctx context.Context, id string) error
}

type absensiRepo struct {
	db *gorm.DB
}

// NewAbsensiRepo membuat AbsensiRepository
func NewAbsensiRepo(db *gorm.DB) AbsensiRepository {
	return &absensiRepo{db: db}
}

func (r *absensiRepo) Create(ctx context.Context, absensi *model.Absensi) error {
	return r.db.WithContext(ctx).Create(absensi).Error
}

func (r *absensiRepo) GetByID(ctx context.Context, id string) (*model.Absensi, error) {
	var absensi model.Absensi
	err := r.db.WithContext(ctx).
		Where("absensi_id = ?", id).
		First(&absensi).Error
	if err != nil {
		return nil, err
	}
	return &absensi, nil
}

// ListBySantriInRange memuat absensi satu santri di rentang tanggal inklusif
func (r *absensiRepo) ListBySantriInRange(ctx context.Context, santriID string, mulai, sampai time.Time) ([]model.Absensi, error) {
	var absensi []model.Absensi
	err := r.db.WithContext(ctx).
		Where("santri_id = ? AND tanggal >= ? AND tanggal <= ?", santriID, mulai, sampai).
		Order("tanggal ASC").
		Find(&absensi).Error
	return absensi, err
}

func (r *absensiRepo) ListByKelasInRange(ctx context.Context, kelas, tingkatan string, mulai, sampai time.Time) ([]model.Absensi, error) {
	q := r.db.WithContext(ctx).Model(&model.Absensi{}).
		Preload("Santri").
		Joins("JOIN santri ON santri.santri_id = absensi.santri_id").
		Where("absensi.tanggal >= ? AND absensi.tanggal <= ?", mulai, sampai)

	if kelas != "" {
		q = q.Where("santri.kelas = ?", kelas)
	}
	if tingkatan != "" {
		q = q.Where("santri.tingkatan = ?", tingkatan)
	}

	var absensi []model.Absensi
	err := q.Order("absensi.tanggal ASC").Find(&absensi).Error
	return absensi, err
}

func (r *absensiRepo) Update(ctx context.Context, absensi *model.Absensi) error {
	return r.db.WithContext(ctx).Save(absensi).Error
}

func (r *absensiRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("absensi_id = ?", id).
		Delete(&model.Absensi{}).Error
}
