package repository

import (
	"context"

	"gorm.io/gorm"

	"sipesantren/backend/internal/model"
)

// SantriFilter filter pencarian santri
type SantriFilter struct {
	Kelas     string
	Tingkatan string
	Keyword   string // cocok sebagian terhadap nama / NIS
	Offset    int
	Limit     int
}

// SantriRepository akses data santri
type SantriRepository interface {
	Create(ctx context.Context, santri *model.Santri) error
	GetByID(ctx context.Context, id string) (*model.Santri, error)
	List(ctx context.Context, filter SantriFilter) ([]model.Santri, int64, error)
	ListByKelas(ctx context.Context, kelas, tingkatan string) ([]model.Santri, error)
	Update(ctx context.Context, santri *model.Santri) error
	Delete(ctx context.Context, id string) error
}

type santriRepo struct {
	db *gorm.DB
}

// NewSantriRepo membuat SantriRepository
func NewSantriRepo(db *gorm.DB) SantriRepository {
	return &santriRepo{db: db}
}

func (r *santriRepo) Create(ctx context.Context, santri *model.Santri) error {
	return r.db.WithContext(ctx).Create(santri).Error
}

func (r *santriRepo) GetByID(ctx context.Context, id string) (*model.Santri, error) {
	var santri model.Santri
	err := r.db.WithContext(ctx).
		Where("santri_id = ?", id).
		First(&santri).Error
	if err != nil {
		return nil, err
	}
	return &santri, nil
}

func (r *santriRepo) List(ctx context.Context, filter SantriFilter) ([]model.Santri, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Santri{})

	if filter.Kelas != "" {
		q = q.Where("kelas = ?", filter.Kelas)
	}
	if filter.Tingkatan != "" {
		q = q.Where("tingkatan = ?", filter.Tingkatan)
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		q = q.Where("nama ILIKE ? OR nis ILIKE ?", kw, kw)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var santri []model.Santri
	err := q.Order("nama ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&santri).Error
	return santri, total, err
}

func (r *santriRepo) ListByKelas(ctx context.Context, kelas, tingkatan string) ([]model.Santri, error) {
	q := r.db.WithContext(ctx)
	if kelas != "" {
		q = q.Where("kelas = ?", kelas)
	}
	if tingkatan != "" {
		q = q.Where("tingkatan = ?", tingkatan)
	}

	var santri []model.Santri
	err := q.Order("nama ASC").Find(&santri).Error
	return santri, err
}

func (r *santriRepo) Update(ctx context.Context, santri *model.Santri) error {
	return r.db.WithContext(ctx).Save(santri).Error
}

func (r *santriRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("santri_id = ?", id).
		Delete(&model.Santri{}).Error
}
