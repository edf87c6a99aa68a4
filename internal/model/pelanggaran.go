package model

import "time"

// Pelanggaran tabel pelanggaran, catatan pelanggaran santri berikut poin
type Pelanggaran struct {
	PelanggaranID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"pelanggaran_id"`
	SantriID      string    `gorm:"type:uuid;not null"         json:"santri_id"`
	Jenis         string    `gorm:"type:varchar(150);not null" json:"jenis"`
	Poin          int       `gorm:"not null;default:0"         json:"poin"`
	Tanggal       time.Time `gorm:"type:date;not null"         json:"tanggal"`
	Keterangan    string    `gorm:"type:text"                  json:"keterangan"`
	SoftDeleteModel

	Santri *Santri `gorm:"foreignKey:SantriID;references:SantriID" json:"santri,omitempty"`
}

// TableName nama tabel
func (Pelanggaran) TableName() string { return "pelanggaran" }
