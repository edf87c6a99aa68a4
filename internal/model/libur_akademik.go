package model

import "time"

// Sumber entri libur akademik
const (
	LiburSumberManual = "manual"
	LiburSumberICS    = "ics"
)

// LiburAkademik tabel libur_akademik, hari libur untuk anotasi rekap absensi.
// Bisa diisi manual atau diimpor dari feed iCalendar kalender akademik.
type LiburAkademik struct {
	LiburID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"libur_id"`
	Nama      string    `gorm:"type:varchar(200);not null" json:"nama"`
	Tanggal   time.Time `gorm:"type:date;not null"         json:"tanggal"`
	Sumber    string    `gorm:"type:varchar(20);not null;default:'manual'" json:"sumber"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName nama tabel
func (LiburAkademik) TableName() string { return "libur_akademik" }
