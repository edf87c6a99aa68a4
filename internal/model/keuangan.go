package model

import "time"

// Status pembayaran
const (
	PembayaranLunas      = "lunas"
	PembayaranBelumLunas = "belum_lunas"
)

// Pembayaran tabel pembayaran, pembayaran santri (SPP, pendaftaran, dst.)
type Pembayaran struct {
	PembayaranID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"pembayaran_id"`
	SantriID     string    `gorm:"type:uuid;not null"         json:"santri_id"`
	Jenis        string    `gorm:"type:varchar(100);not null" json:"jenis"`
	Bulan        string    `gorm:"type:varchar(20)"           json:"bulan"`
	Tahun        string    `gorm:"type:varchar(10)"           json:"tahun"`
	Nominal      int64     `gorm:"not null;default:0"         json:"nominal"`
	Status       string    `gorm:"type:varchar(20);not null;default:'lunas'" json:"status"`
	Tanggal      time.Time `gorm:"type:date;not null"         json:"tanggal"`
	SoftDeleteModel

	Santri *Santri `gorm:"foreignKey:SantriID;references:SantriID" json:"santri,omitempty"`
}

// TableName nama tabel
func (Pembayaran) TableName() string { return "pembayaran" }

// Pengeluaran tabel pengeluaran, pengeluaran operasional pesantren
type Pengeluaran struct {
	PengeluaranID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"pengeluaran_id"`
	Keperluan     string    `gorm:"type:varchar(200);not null" json:"keperluan"`
	Nominal       int64     `gorm:"not null;default:0"         json:"nominal"`
	Tanggal       time.Time `gorm:"type:date;not null"         json:"tanggal"`
	Keterangan    string    `gorm:"type:text"                  json:"keterangan"`
	SoftDeleteModel
}

// TableName nama tabel
func (Pengeluaran) TableName() string { return "pengeluaran" }

// Donasi tabel donasi, donasi masuk
type Donasi struct {
	DonasiID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"donasi_id"`
	Donatur    string    `gorm:"type:varchar(150);not null" json:"donatur"`
	Nominal    int64     `gorm:"not null;default:0"         json:"nominal"`
	Tanggal    time.Time `gorm:"type:date;not null"         json:"tanggal"`
	Keterangan string    `gorm:"type:text"                  json:"keterangan"`
	SoftDeleteModel
}

// TableName nama tabel
func (Donasi) TableName() string { return "donasi" }
