package model

// Ekstrakurikuler tabel ekstrakurikuler, kegiatan ekskul
type Ekstrakurikuler struct {
	EkskulID string `gorm:"column:ekskul_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"ekskul_id"`
	Nama     string `gorm:"type:varchar(150);not null" json:"nama"`
	Pembina  string `gorm:"type:varchar(150)"          json:"pembina"`
	SoftDeleteModel
}

// TableName nama tabel
func (Ekstrakurikuler) TableName() string { return "ekstrakurikuler" }

// NilaiEkstrakurikuler tabel nilai_ekstrakurikuler, nilai kualitatif per semester
type NilaiEkstrakurikuler struct {
	NilaiEkskulID string `gorm:"column:nilai_ekskul_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"nilai_ekskul_id"`
	SantriID      string `gorm:"type:uuid;not null"        json:"santri_id"`
	EkskulID      string `gorm:"column:ekskul_id;type:uuid;not null" json:"ekskul_id"`
	Nilai         string `gorm:"type:varchar(30);not null" json:"nilai"`
	Semester      string `gorm:"type:varchar(10);not null" json:"semester"`
	TahunAjaran   string `gorm:"type:varchar(10);not null" json:"tahun_ajaran"`
	SoftDeleteModel

	Ekstrakurikuler *Ekstrakurikuler `gorm:"foreignKey:EkskulID;references:EkskulID" json:"ekstrakurikuler,omitempty"`
}

// TableName nama tabel
func (NilaiEkstrakurikuler) TableName() string { return "nilai_ekstrakurikuler" }
