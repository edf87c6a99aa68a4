package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sipesantren/backend/internal/model"
)

// PengaturanRepository akses pengaturan sekolah (baris singleton)
type PengaturanRepository interface {
	Get(ctx context.Context) (*model.PengaturanSekolah, error)
	Upsert(ctx context.Context, pengaturan *model.PengaturanSekolah) error
}

type pengaturanRepo struct {
	db *gorm.DB
}

// NewPengaturanRepo membuat PengaturanRepository
func NewPengaturanRepo(db *gorm.DB) PengaturanRepository {
	return &pengaturanRepo{db: db}
}

func (r *pengaturanRepo) Get(ctx context.Context) (*model.PengaturanSekolah, error) {
	var pengaturan model.PengaturanSekolah
	err := r.db.WithContext(ctx).
		Where("pengaturan_id = ?", 1).
		First(&pengaturan).Error
	if err != nil {
		return nil, err
	}
	return &pengaturan, nil
}

func (r *pengaturanRepo) Upsert(ctx context.Context, pengaturan *model.PengaturanSekolah) error {
	pengaturan.PengaturanID = 1
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pengaturan_id"}},
			UpdateAll: true,
		}).
		Create(pengaturan).Error
}
