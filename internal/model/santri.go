package model

import "time"

// Santri tabel santri, biodata santri
type Santri struct {
	SantriID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"santri_id"`
	Nama         string     `gorm:"type:varchar(150);not null" json:"nama"`
	NIS          string     `gorm:"column:nis;type:varchar(30)"  json:"nis"`
	NISN         string     `gorm:"column:nisn;type:varchar(30)" json:"nisn"`
	NIK          string     `gorm:"column:nik;type:varchar(30)"  json:"nik"`
	Kelas        string     `gorm:"type:varchar(50)"             json:"kelas"`
	Tingkatan    string     `gorm:"type:varchar(50)"             json:"tingkatan"`
	JenisKelamin string     `gorm:"type:varchar(20)"             json:"jenis_kelamin"`
	TempatLahir  string     `gorm:"type:varchar(100)"            json:"tempat_lahir"`
	TanggalLahir *time.Time `gorm:"type:date"                    json:"tanggal_lahir,omitempty"`
	Alamat       string     `gorm:"type:text"                    json:"alamat"`
	NamaWali     string     `gorm:"type:varchar(150)"            json:"nama_wali"`
	TeleponWali  string     `gorm:"type:varchar(30)"             json:"telepon_wali"`
	SoftDeleteModel
}

// TableName nama tabel
func (Santri) TableName() string { return "santri" }
