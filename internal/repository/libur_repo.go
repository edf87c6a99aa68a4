package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sipesantren/backend/internal/model"
)

// LiburRepository akses data libur akademik
type LiburRepository interface {
	Create(ctx context.Context, libur *model.LiburAkademik) error
	ListInRange(ctx context.Context, mulai, sampai time.Time) ([]model.LiburAkademik, error)
	UpsertBatch(ctx context.Context, libur []model.LiburAkademik) (int, error)
	Delete(ctx context.Context, id string) error
}

type liburRepo struct {
	db *gorm.DB
}

// NewLiburRepo membuat LiburRepository
func NewLiburRepo(db *gorm.DB) LiburRepository {
	return &liburRepo{db: db}
}

func (r *liburRepo) Create(ctx context.Context, libur *model.LiburAkademik) error {
	return r.db.WithContext(ctx).Create(libur).Error
}

func (r *liburRepo) ListInRange(ctx context.Context, mulai, sampai time.Time) ([]model.LiburAkademik, error) {
	var libur []model.LiburAkademik
	err := r.db.WithContext(ctx).
		Where("tanggal >= ? AND tanggal <= ?", mulai, sampai).
		Order("tanggal ASC").
		Find(&libur).Error
	return libur, err
}

// UpsertBatch menyimpan hasil impor ICS; entri dengan pasangan
// (tanggal, nama) yang sudah ada dilewati, bukan digandakan.
func (r *liburRepo) UpsertBatch(ctx context.Context, libur []model.LiburAkademik) (int, error) {
	if len(libur) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tanggal"}, {Name: "nama"}},
			DoNothing: true,
		}).
		Create(&libur)
	return int(res.RowsAffected), res.Error
}

func (r *liburRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("libur_id = ?", id).
		Delete(&model.LiburAkademik{}).Error
}
