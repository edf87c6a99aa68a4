package model

import "time"

// RiwayatKesehatan tabel riwayat_kesehatan, catatan kesehatan santri
type RiwayatKesehatan struct {
	KesehatanID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"kesehatan_id"`
	SantriID    string    `gorm:"type:uuid;not null" json:"santri_id"`
	Keluhan     string    `gorm:"type:text;not null" json:"keluhan"`
	Diagnosis   string    `gorm:"type:text"          json:"diagnosis"`
	Penanganan  string    `gorm:"type:text"          json:"penanganan"`
	Tanggal     time.Time `gorm:"type:date;not null" json:"tanggal"`
	SoftDeleteModel

	Santri *Santri `gorm:"foreignKey:SantriID;references:SantriID" json:"santri,omitempty"`
}

// TableName nama tabel
func (RiwayatKesehatan) TableName() string { return "riwayat_kesehatan" }
