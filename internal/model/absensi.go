package model

import "time"

// Status kehadiran. Hanya status selain hadir yang direkap di raport.
const (
	AbsensiHadir = "hadir"
	AbsensiSakit = "sakit"
	AbsensiIzin  = "izin"
	AbsensiAlpa  = "alpa"
)

// Absensi tabel absensi: satu baris per santri per tanggal
type Absensi struct {
	AbsensiID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"absensi_id"`
	SantriID   string    `gorm:"type:uuid;not null"        json:"santri_id"`
	Tanggal    time.Time `gorm:"type:date;not null"        json:"tanggal"`
	Status     string    `gorm:"type:varchar(10);not null" json:"status"`
	Keterangan string    `gorm:"type:text"                 json:"keterangan"`
	SoftDeleteModel

	Santri *Santri `gorm:"foreignKey:SantriID;references:SantriID" json:"santri,omitempty"`
}

// TableName nama tabel
func (Absensi) TableName() string { return "absensi" }
