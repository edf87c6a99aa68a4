package model

import "time"

// JenisNilaiUAS satu-satunya jenis nilai yang masuk raport
const JenisNilaiUAS = "UAS"

// Nilai tabel nilai, nilai numerik 0-100 per mata pelajaran
type Nilai struct {
	NilaiID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"nilai_id"`
	SantriID      string     `gorm:"type:uuid;not null"          json:"santri_id"`
	MataPelajaran string     `gorm:"type:varchar(150);not null"  json:"mata_pelajaran"`
	JenisNilai    string     `gorm:"type:varchar(20);not null"   json:"jenis_nilai"` // UAS | UTS | harian
	Nilai         float64    `gorm:"type:numeric(5,2);not null"  json:"nilai"`
	Semester      string     `gorm:"type:varchar(10);not null"   json:"semester"` // Ganjil | Genap
	TahunAjaran   string     `gorm:"type:varchar(10);not null"   json:"tahun_ajaran"`
	Tanggal       *time.Time `gorm:"type:date"                   json:"tanggal,omitempty"`
	SoftDeleteModel

	Santri *Santri `gorm:"foreignKey:SantriID;references:SantriID" json:"santri,omitempty"`
}

// TableName nama tabel
func (Nilai) TableName() string { return "nilai" }
