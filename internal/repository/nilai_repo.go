package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sipesantren/backend/internal/model"
)

// NilaiFilter filter daftar nilai untuk listing dan ekspor
type NilaiFilter struct {
	SantriID    string
	Kelas       string // lewat join ke santri
	JenisNilai  string
	Semester    string
	TahunAjaran string
}

// NilaiRepository akses data nilai
type NilaiRepository interface {
	Create(ctx context.Context, nilai *model.Nilai) error
	GetByID(ctx context.Context, id string) (*model.Nilai, error)
	List(ctx context.Context, filter NilaiFilter) ([]model.Nilai, error)
	ListUASBySantri(ctx context.Context, santriID, semester, tahunAjaran string) ([]model.Nilai, error)
	Update(ctx context.Context, nilai *model.Nilai) error
	Delete(ctx context.Context, id string) error
}

type nilaiRepo struct {
	db *gorm.DB
}

// NewNilaiRepo membuat NilaiRepository
func NewNilaiRepo(db *gorm.DB) NilaiRepository {
	return &nilaiRepo{db: db}
}

func (r *nilaiRepo) Create(ctx context.Context, nilai *model.Nilai) error {
	if nilai.Tanggal == nil {
		now := time.Now()
		nilai.Tanggal = &now
	}
	return r.db.WithContext(ctx).Create(nilai).Error
}

func (r *nilaiRepo) GetByID(ctx context.Context, id string) (*model.Nilai, error) {
	var nilai model.Nilai
	err := r.db.WithContext(ctx).
		Where("nilai_id = ?", id).
		First(&nilai).Error
	if err != nil {
		return nil, err
	}
	return &nilai, nil
}

func (r *nilaiRepo) List(ctx context.Context, filter NilaiFilter) ([]model.Nilai, error) {
	q := r.db.WithContext(ctx).Model(&model.Nilai{}).Preload("Santri")

	if filter.SantriID != "" {
		q = q.Where("santri_id = ?", filter.SantriID)
	}
	if filter.Kelas != "" {
		q = q.Joins("JOIN santri ON santri.santri_id = nilai.santri_id").
			Where("santri.kelas = ?", filter.Kelas)
	}
	if filter.JenisNilai != "" {
		q = q.Where("jenis_nilai = ?", filter.JenisNilai)
	}
	if filter.Semester != "" {
		q = q.Where("semester = ?", filter.Semester)
	}
	if filter.TahunAjaran != "" {
		q = q.Where("tahun_ajaran = ?", filter.TahunAjaran)
	}

	var nilai []model.Nilai
	err := q.Order("nilai.created_at ASC").Find(&nilai).Error
	return nilai, err
}

// ListUASBySantri memuat nilai UAS satu santri pada semester + tahun ajaran
// tertentu, urut sesuai waktu input (dipertahankan sampai ke dokumen raport).
func (r *nilaiRepo) ListUASBySantri(ctx context.Context, santriID, semester, tahunAjaran string) ([]model.Nilai, error) {
	var nilai []model.Nilai
	err := r.db.WithContext(ctx).
		Where("santri_id = ? AND jenis_nilai = ? AND semester = ? AND tahun_ajaran = ?",
			santriID, model.JenisNilaiUAS, semester, tahunAjaran).
		Order("created_at ASC").
		Find(&nilai).Error
	return nilai, err
}

func (r *nilaiRepo) Update(ctx context.Context, nilai *model.Nilai) error {
	return r.db.WithContext(ctx).Save(nilai).Error
}

func (r *nilaiRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("nilai_id = ?", id).
		Delete(&model.Nilai{}).Error
}
