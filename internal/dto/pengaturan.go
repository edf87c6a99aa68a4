package dto

// ── Modul pengaturan sekolah & kalender akademik ──

// UpdatePengaturanRequest pembaruan pengaturan sekolah
type UpdatePengaturanRequest struct {
	NamaSekolah   *string `json:"nama_sekolah"   binding:"omitempty,max=200"`
	Alamat        *string `json:"alamat"`
	Kota          *string `json:"kota"           binding:"omitempty,max=100"`
	LogoKiriURL   *string `json:"logo_kiri_url"  binding:"omitempty,url"`
	LogoKananURL  *string `json:"logo_kanan_url" binding:"omitempty,url"`
	NamaKepala    *string `json:"nama_kepala"    binding:"omitempty,max=150"`
	JabatanKepala *string `json:"jabatan_kepala" binding:"omitempty,max=100"`
}

// PengaturanResponse pengaturan sekolah (dengan fallback terisi)
type PengaturanResponse struct {
	NamaSekolah   string `json:"nama_sekolah"`
	Alamat        string `json:"alamat"`
	Kota          string `json:"kota"`
	LogoKiriURL   string `json:"logo_kiri_url"`
	LogoKananURL  string `json:"logo_kanan_url"`
	NamaKepala    string `json:"nama_kepala"`
	JabatanKepala string `json:"jabatan_kepala"`
}

// ImportKalenderRequest impor libur akademik dari feed iCalendar
type ImportKalenderRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// ImportKalenderResponse hasil impor kalender
type ImportKalenderResponse struct {
	TotalEvent     int `json:"total_event"`
	TotalTersimpan int `json:"total_tersimpan"`
}

// CreateLiburRequest penambahan libur akademik manual
type CreateLiburRequest struct {
	Nama    string `json:"nama"    binding:"required,max=200"`
	Tanggal string `json:"tanggal" binding:"required,datetime=2006-01-02"`
}

// LiburResponse satu entri libur akademik
type LiburResponse struct {
	ID      string `json:"id"`
	Nama    string `json:"nama"`
	Tanggal string `json:"tanggal"`
	Sumber  string `json:"sumber"`
}
