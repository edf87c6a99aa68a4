package repository

import (
	"context"

	"gorm.io/gorm"

	"sipesantren/backend/internal/model"
)

// KesehatanRepository akses data riwayat kesehatan
type KesehatanRepository interface {
	Create(ctx context.Context, riwayat *model.RiwayatKesehatan) error
	GetByID(ctx context.Context, id string) (*model.RiwayatKesehatan, error)
	List(ctx context.Context, santriID string) ([]model.RiwayatKesehatan, error)
	Update(ctx context.Context, riwayat *model.RiwayatKesehatan) error
	Delete(ctx context.Context, id string) error
}

type kesehatanRepo struct {
	db *gorm.DB
}

// NewKesehatanRepo membuat KesehatanRepository
func NewKesehatanRepo(db *gorm.DB) KesehatanRepository {
	return &kesehatanRepo{db: db}
}

func (r *kesehatanRepo) Create(ctx context.Context, riwayat *model.RiwayatKesehatan) error {
	return r.db.WithContext(ctx).Create(riwayat).Error
}

func (r *kesehatanRepo) GetByID(ctx context.Context, id string) (*model.RiwayatKesehatan, error) {
	var riwayat model.RiwayatKesehatan
	err := r.db.WithContext(ctx).
		Where("kesehatan_id = ?", id).
		First(&riwayat).Error
	if err != nil {
		return nil, err
	}
	return &riwayat, nil
}

func (r *kesehatanRepo) List(ctx context.Context, santriID string) ([]model.RiwayatKesehatan, error) {
	q := r.db.WithContext(ctx).Preload("Santri")
	if santriID != "" {
		q = q.Where("santri_id = ?", santriID)
	}

	var riwayat []model.RiwayatKesehatan
	err := q.Order("tanggal DESC").Find(&riwayat).Error
	return riwayat, err
}

func (r *kesehatanRepo) Update(ctx context.Context, riwayat *model.RiwayatKesehatan) error {
	return r.db.WithContext(ctx).Save(riwayat).Error
}

func (r *kesehatanRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("kesehatan_id = ?", id).
		Delete(&model.RiwayatKesehatan{}).Error
}
