package dto

// ── Modul raport ──

// RaportRequest parameter agregasi data raport
type RaportRequest struct {
	Semester    string `form:"semester"     binding:"required,oneof=Ganjil Genap"`
	TahunAjaran string `form:"tahun_ajaran" binding:"required"` // "YYYY/YYYY"
}

// NilaiRaportRow satu baris tabel nilai pada raport
type NilaiRaportRow struct {
	No            int     `json:"no"`
	MataPelajaran string  `json:"mata_pelajaran"`
	Nilai         float64 `json:"nilai"`
	Predikat      string  `json:"predikat"`
}

// EkskulRaportRow satu baris tabel ekstrakurikuler
type EkskulRaportRow struct {
	No       int    `json:"no"`
	Kegiatan string `json:"kegiatan"`
	Nilai    string `json:"nilai"`
}

// RekapAbsensi rekap ketidakhadiran dalam rentang semester
type RekapAbsensi struct {
	Sakit int `json:"sakit"`
	Izin  int `json:"izin"`
	Alpa  int `json:"alpa"`
}

// SekolahInfo identitas sekolah pada kop raport (sudah termasuk fallback)
type SekolahInfo struct {
	Nama          string `json:"nama"`
	Alamat        string `json:"alamat"`
	Kota          string `json:"kota"`
	LogoKiriURL   string `json:"logo_kiri_url,omitempty"`
	LogoKananURL  string `json:"logo_kanan_url,omitempty"`
	NamaKepala    string `json:"nama_kepala"`
	JabatanKepala string `json:"jabatan_kepala"`
}

// RaportData hasil agregasi lengkap untuk satu santri satu semester.
// Struktur ini juga menjadi payload dasar editor: penyuntingan bersifat
// lapisan tambahan (overlay) di atasnya, bukan mengubah hasil agregasi.
type RaportData struct {
	Santri        SantriResponse    `json:"santri"`
	WaliKelas     string            `json:"wali_kelas,omitempty"`
	Sekolah       SekolahInfo       `json:"sekolah"`
	Semester      string            `json:"semester"`
	TahunAjaran   string            `json:"tahun_ajaran"`
	PeriodeMulai  string            `json:"periode_mulai"`  // "2006-01-02"
	PeriodeSampai string            `json:"periode_sampai"` // "2006-01-02"
	Kepesantrenan []NilaiRaportRow  `json:"kepesantrenan"`
	Kekhususan    []NilaiRaportRow  `json:"kekhususan"`
	Umum          []NilaiRaportRow  `json:"umum"`
	Ekskul        []EkskulRaportRow `json:"ekstrakurikuler"`
	Absensi       RekapAbsensi      `json:"absensi"`
}

// PrestasiEntry entri prestasi yang diisi pengguna saat penyuntingan.
// Tidak pernah dipersistenkan; hidup hanya di payload generate.
type PrestasiEntry struct {
	Nama       string `json:"nama"       binding:"required"`
	Keterangan string `json:"keterangan"`
}

// GenerateRaportRequest payload pembuatan dokumen raport.
// Semua field selain semester/tahun adalah overlay opsional di atas
// hasil agregasi; kosong berarti memakai nilai dasar.
type GenerateRaportRequest struct {
	Semester          string          `json:"semester"     binding:"required,oneof=Ganjil Genap"`
	TahunAjaran       string          `json:"tahun_ajaran" binding:"required"`
	Prestasi          []PrestasiEntry `json:"prestasi"`
	CatatanWaliKelas  string          `json:"catatan_wali_kelas"`
	TanggapanOrangTua string          `json:"tanggapan_orang_tua"`
	NamaOrangTua      string          `json:"nama_orang_tua"`
	NamaWaliKelas     string          `json:"nama_wali_kelas"`
	NamaKepala        string          `json:"nama_kepala"`
	JabatanKepala     string          `json:"jabatan_kepala"`
	LogoKiriURL       string          `json:"logo_kiri_url"`
	LogoKananURL      string          `json:"logo_kanan_url"`
}
