package model

import "time"

// PengaturanSekolah tabel pengaturan_sekolah, singleton (pengaturan_id selalu 1).
// Jika baris belum ada, layanan memakai fallback bawaan supaya kop dokumen
// tetap bisa dirender.
type PengaturanSekolah struct {
	PengaturanID  int       `gorm:"primaryKey;default:1"  json:"pengaturan_id"`
	NamaSekolah   string    `gorm:"type:varchar(200)"     json:"nama_sekolah"`
	Alamat        string    `gorm:"type:text"             json:"alamat"`
	Kota          string    `gorm:"type:varchar(100)"     json:"kota"`
	LogoKiriURL   string    `gorm:"type:text"             json:"logo_kiri_url"`
	LogoKananURL  string    `gorm:"type:text"             json:"logo_kanan_url"`
	NamaKepala    string    `gorm:"type:varchar(150)"     json:"nama_kepala"`
	JabatanKepala string    `gorm:"type:varchar(100)"     json:"jabatan_kepala"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName nama tabel
func (PengaturanSekolah) TableName() string { return "pengaturan_sekolah" }
