package repository

import (
	"context"

	"gorm.io/gorm"

	"sipesantren/backend/internal/model"
)

// EkskulRepository akses data ekstrakurikuler dan nilainya
type EkskulRepository interface {
	Create(ctx context.Context, ekskul *model.Ekstrakurikuler) error
	GetByID(ctx context.Context, id string) (*model.Ekstrakurikuler, error)
	List(ctx context.Context) ([]model.Ekstrakurikuler, error)
	Update(ctx context.Context, ekskul *model.Ekstrakurikuler) error
	Delete(ctx context.Context, id string) error

	CreateNilai(ctx context.Context, nilai *model.NilaiEkstrakurikuler) error
	ListNilaiBySantri(ctx context.Context, santriID, semester, tahunAjaran string) ([]model.NilaiEkstrakurikuler, error)
	DeleteNilai(ctx context.Context, id string) error
}

type ekskulRepo struct {
	db *gorm.DB
}

// NewEkskulRepo membuat EkskulRepository
func NewEkskulRepo(db *gorm.DB) EkskulRepository {
	return &ekskulRepo{db: db}
}

func (r *ekskulRepo) Create(ctx context.Context, ekskul *model.Ekstrakurikuler) error {
	return r.db.WithContext(ctx).Create(ekskul).Error
}

func (r *ekskulRepo) GetByID(ctx context.Context, id string) (*model.Ekstrakurikuler, error) {
	var ekskul model.Ekstrakurikuler
	err := r.db.WithContext(ctx).
		Where("ekskul_id = ?", id).
		First(&ekskul).Error
	if err != nil {
		return nil, err
	}
	return &ekskul, nil
}

func (r *ekskulRepo) List(ctx context.Context) ([]model.Ekstrakurikuler, error) {
	var ekskul []model.Ekstrakurikuler
	err := r.db.WithContext(ctx).Order("nama ASC").Find(&ekskul).Error
	return ekskul, err
}

func (r *ekskulRepo) Update(ctx context.Context, ekskul *model.Ekstrakurikuler) error {
	return r.db.WithContext(ctx).Save(ekskul).Error
}

func (r *ekskulRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("ekskul_id = ?", id).
		Delete(&model.Ekstrakurikuler{}).Error
}

// ── Nilai ekstrakurikuler ──

func (r *ekskulRepo) CreateNilai(ctx context.Context, nilai *model.NilaiEkstrakurikuler) error {
	return r.db.WithContext(ctx).Create(nilai).Error
}

// ListNilaiBySantri memuat nilai ekskul satu santri berikut kegiatannya
func (r *ekskulRepo) ListNilaiBySantri(ctx context.Context, santriID, semester, tahunAjaran string) ([]model.NilaiEkstrakurikuler, error) {
	var nilai []model.NilaiEkstrakurikuler
	err := r.db.WithContext(ctx).
		Preload("Ekstrakurikuler").
		Where("santri_id = ? AND semester = ? AND tahun_ajaran = ?", santriID, semester, tahunAjaran).
		Order("created_at ASC").
		Find(&nilai).Error
	return nilai, err
}

func (r *ekskulRepo) DeleteNilai(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("nilai_ekskul_id = ?", id).
		Delete(&model.NilaiEkstrakurikuler{}).Error
}
