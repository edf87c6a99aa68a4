package repository

import (
	"context"

	"gorm.io/gorm"

	"sipesantren/backend/internal/model"
)

// MataPelajaranRepository akses data mata pelajaran
type MataPelajaranRepository interface {
	Create(ctx context.Context, mapel *model.MataPelajaran) error
	GetByID(ctx context.Context, id string) (*model.MataPelajaran, error)
	List(ctx context.Context, kelas string) ([]model.MataPelajaran, error)
	Update(ctx context.Context, mapel *model.MataPelajaran) error
	UpdateKategori(ctx context.Context, id, kategori string) error
	Delete(ctx context.Context, id string) error
}

type mataPelajaranRepo struct {
	db *gorm.DB
}

// NewMataPelajaranRepo membuat MataPelajaranRepository
func NewMataPelajaranRepo(db *gorm.DB) MataPelajaranRepository {
	return &mataPelajaranRepo{db: db}
}

func (r *mataPelajaranRepo) Create(ctx context.Context, mapel *model.MataPelajaran) error {
	return r.db.WithContext(ctx).Create(mapel).Error
}

func (r *mataPelajaranRepo) GetByID(ctx context.Context, id string) (*model.MataPelajaran, error) {
	var mapel model.MataPelajaran
	err := r.db.WithContext(ctx).
		Where("mapel_id = ?", id).
		First(&mapel).Error
	if err != nil {
		return nil, err
	}
	return &mapel, nil
}

func (r *mataPelajaranRepo) List(ctx context.Context, kelas string) ([]model.MataPelajaran, error) {
	q := r.db.WithContext(ctx)
	if kelas != "" {
		q = q.Where("kelas = ?", kelas)
	}

	var mapel []model.MataPelajaran
	err := q.Order("nama ASC").Find(&mapel).Error
	return mapel, err
}

func (r *mataPelajaranRepo) Update(ctx context.Context, mapel *model.MataPelajaran) error {
	return r.db.WithContext(ctx).Save(mapel).Error
}

func (r *mataPelajaranRepo) UpdateKategori(ctx context.Context, id, kategori string) error {
	res := r.db.WithContext(ctx).
		Model(&model.MataPelajaran{}).
		Where("mapel_id = ?", id).
		Update("kategori", kategori)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mataPelajaranRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("mapel_id = ?", id).
		Delete(&model.MataPelajaran{}).Error
}
