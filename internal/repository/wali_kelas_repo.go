package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sipesantren/backend/internal/model"
)

// WaliKelasRepository akses data wali kelas
type WaliKelasRepository interface {
	GetByKelas(ctx context.Context, kelas string) (*model.WaliKelas, error)
	List(ctx context.Context) ([]model.WaliKelas, error)
	Upsert(ctx context.Context, wali *model.WaliKelas) error
	Delete(ctx context.Context, kelas string) error
}

type waliKelasRepo struct {
	db *gorm.DB
}

// NewWaliKelasRepo membuat WaliKelasRepository
func NewWaliKelasRepo(db *gorm.DB) WaliKelasRepository {
	return &waliKelasRepo{db: db}
}

func (r *waliKelasRepo) GetByKelas(ctx context.Context, kelas string) (*model.WaliKelas, error) {
	var wali model.WaliKelas
	err := r.db.WithContext(ctx).
		Where("kelas = ?", kelas).
		First(&wali).Error
	if err != nil {
		return nil, err
	}
	return &wali, nil
}

func (r *waliKelasRepo) List(ctx context.Context) ([]model.WaliKelas, error) {
	var wali []model.WaliKelas
	err := r.db.WithContext(ctx).Order("kelas ASC").Find(&wali).Error
	return wali, err
}

// Upsert satu kelas satu wali: insert baru atau timpa nama guru lama
func (r *waliKelasRepo) Upsert(ctx context.Context, wali *model.WaliKelas) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kelas"}},
			DoUpdates: clause.AssignmentColumns([]string{"nama_guru", "nip", "updated_at"}),
		}).
		Create(wali).Error
}

func (r *waliKelasRepo) Delete(ctx context.Context, kelas string) error {
	return r.db.WithContext(ctx).
		Where("kelas = ?", kelas).
		Delete(&model.WaliKelas{}).Error
}
