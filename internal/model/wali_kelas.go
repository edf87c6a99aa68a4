package model

// WaliKelas tabel wali_kelas: satu wali per kelas, dicari lewat kelas santri
type WaliKelas struct {
	WaliKelasID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"wali_kelas_id"`
	Kelas       string `gorm:"type:varchar(50);not null;uniqueIndex" json:"kelas"`
	NamaGuru    string `gorm:"type:varchar(150);not null"            json:"nama_guru"`
	NIP         string `gorm:"column:nip;type:varchar(30)"           json:"nip"`
	BaseModel
}

// TableName nama tabel
func (WaliKelas) TableName() string { return "wali_kelas" }
