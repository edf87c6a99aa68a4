package model

// Kategori mata pelajaran pada raport.
// String kosong berarti belum dikategorikan dan jatuh ke bucket "umum".
const (
	KategoriKepesantrenan = "kepesantrenan"
	KategoriKekhususan    = "kekhususan"
	KategoriUmum          = "umum"
)

// MataPelajaran tabel mata_pelajaran.
// Kategori menjadi kunci klasifikasi nilai raport; pencocokan dengan
// tabel nilai dilakukan lewat NAMA mata pelajaran, bukan foreign key.
type MataPelajaran struct {
	MapelID  string `gorm:"column:mapel_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"mapel_id"`
	Nama     string `gorm:"type:varchar(150);not null" json:"nama"`
	Kelas    string `gorm:"type:varchar(50)"           json:"kelas"`
	Kategori string `gorm:"type:varchar(30);not null;default:''" json:"kategori"`
	SoftDeleteModel
}

// TableName nama tabel
func (MataPelajaran) TableName() string { return "mata_pelajaran" }
