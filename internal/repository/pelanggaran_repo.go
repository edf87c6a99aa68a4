package repository

import (
	"context"

	"gorm.io/gorm"

	"sipesantren/backend/internal/model"
)

// PelanggaranRepository akses data pelanggaran
type PelanggaranRepository interface {
	Create(ctx context.Context, pelanggaran *model.Pelanggaran) error
	GetByID(ctx context.Context, id string) (*model.Pelanggaran, error)
	List(ctx context.Context, santriID string) ([]model.Pelanggaran, error)
	Update(ctx context.Context, pelanggaran *model.Pelanggaran) error
	Delete(ctx context.Context, id string) error
}

type pelanggaranRepo struct {
	db *gorm.DB
}

// NewPelanggaranRepo membuat PelanggaranRepository
func NewPelanggaranRepo(db *gorm.DB) PelanggaranRepository {
	return &pelanggaranRepo{db: db}
}

func (r *pelanggaranRepo) Create(ctx context.Context, pelanggaran *model.Pelanggaran) error {
	return r.db.WithContext(ctx).Create(pelanggaran).Error
}

func (r *pelanggaranRepo) GetByID(ctx context.Context, id string) (*model.Pelanggaran, error) {
	var pelanggaran model.Pelanggaran
	err := r.db.WithContext(ctx).
		Where("pelanggaran_id = ?", id).
		First(&pelanggaran).Error
	if err != nil {
		return nil, err
	}
	return &pelanggaran, nil
}

func (r *pelanggaranRepo) List(ctx context.Context, santriID string) ([]model.Pelanggaran, error) {
	q := r.db.WithContext(ctx).Preload("Santri")
	if santriID != "" {
		q = q.Where("santri_id = ?", santriID)
	}

	var pelanggaran []model.Pelanggaran
	err := q.Order("tanggal DESC").Find(&pelanggaran).Error
	return pelanggaran, err
}

func (r *pelanggaranRepo) Update(ctx context.Context, pelanggaran *model.Pelanggaran) error {
	return r.db.WithContext(ctx).Save(pelanggaran).Error
}

func (r *pelanggaranRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("pelanggaran_id = ?", id).
		Delete(&model.Pelanggaran{}).Error
}
