package dto

// ── Modul mata pelajaran ──

// CreateMapelRequest pembuatan mata pelajaran
type CreateMapelRequest struct {
	Nama     string `json:"nama"     binding:"required,min=2,max=150"`
	Kelas    string `json:"kelas"    binding:"omitempty,max=50"`
	Kategori string `json:"kategori" binding:"omitempty,oneof=kepesantrenan kekhususan"`
}

// UpdateMapelRequest pembaruan mata pelajaran (partial)
type UpdateMapelRequest struct {
	Nama  *string `json:"nama"  binding:"omitempty,min=2,max=150"`
	Kelas *string `json:"kelas" binding:"omitempty,max=50"`
}

// UpdateKategoriRequest pemindahan kategori mata pelajaran.
// Satu siklus request/response atomik: server menyimpan lalu
// mengembalikan keadaan otoritatif; klien menerapkan respons server.
type UpdateKategoriRequest struct {
	Kategori string `json:"kategori" binding:"omitempty,oneof=kepesantrenan kekhususan"`
}

// MapelResponse informasi mata pelajaran
type MapelResponse struct {
	ID       string `json:"id"`
	Nama     string `json:"nama"`
	Kelas    string `json:"kelas"`
	Kategori string `json:"kategori"`
}

// ── Modul nilai ──

// CreateNilaiRequest input nilai
type CreateNilaiRequest struct {
	SantriID      string  `json:"santri_id"      binding:"required,uuid"`
	MataPelajaran string  `json:"mata_pelajaran" binding:"required"`
	JenisNilai    string  `json:"jenis_nilai"    binding:"required,oneof=UAS UTS harian"`
	Nilai         float64 `json:"nilai"          binding:"min=0,max=100"`
	Semester      string  `json:"semester"       binding:"required,oneof=Ganjil Genap"`
	TahunAjaran   string  `json:"tahun_ajaran"   binding:"required"`
	Tanggal       string  `json:"tanggal"        binding:"omitempty,datetime=2006-01-02"`
}

// UpdateNilaiRequest pembaruan nilai (partial)
type UpdateNilaiRequest struct {
	Nilai   *float64 `json:"nilai"   binding:"omitempty,min=0,max=100"`
	Tanggal *string  `json:"tanggal" binding:"omitempty,datetime=2006-01-02"`
}

// ListNilaiRequest filter daftar nilai
type ListNilaiRequest struct {
	SantriID    string `form:"santri_id"    binding:"omitempty,uuid"`
	Kelas       string `form:"kelas"`
	JenisNilai  string `form:"jenis_nilai"  binding:"omitempty,oneof=UAS UTS harian"`
	Semester    string `form:"semester"     binding:"omitempty,oneof=Ganjil Genap"`
	TahunAjaran string `form:"tahun_ajaran"`
}

// NilaiResponse informasi nilai
type NilaiResponse struct {
	ID            string  `json:"id"`
	SantriID      string  `json:"santri_id"`
	NamaSantri    string  `json:"nama_santri,omitempty"`
	MataPelajaran string  `json:"mata_pelajaran"`
	JenisNilai    string  `json:"jenis_nilai"`
	Nilai         float64 `json:"nilai"`
	Semester      string  `json:"semester"`
	TahunAjaran   string  `json:"tahun_ajaran"`
	Tanggal       string  `json:"tanggal,omitempty"`
}

// ── Modul absensi ──

// CreateAbsensiRequest pencatatan kehadiran
type CreateAbsensiRequest struct {
	SantriID   string `json:"santri_id"  binding:"required,uuid"`
	Tanggal    string `json:"tanggal"    binding:"required,datetime=2006-01-02"`
	Status     string `json:"status"     binding:"required,oneof=hadir sakit izin alpa"`
	Keterangan string `json:"keterangan"`
}

// UpdateAbsensiRequest pembaruan status kehadiran
type UpdateAbsensiRequest struct {
	Status     *string `json:"status"     binding:"omitempty,oneof=hadir sakit izin alpa"`
	Keterangan *string `json:"keterangan"`
}

// AbsensiResponse informasi absensi
type AbsensiResponse struct {
	ID         string `json:"id"`
	SantriID   string `json:"santri_id"`
	NamaSantri string `json:"nama_santri,omitempty"`
	Tanggal    string `json:"tanggal"`
	Status     string `json:"status"`
	Keterangan string `json:"keterangan"`
}

// RekapAbsensiRow rekap kehadiran satu santri dalam satu periode
type RekapAbsensiRow struct {
	SantriID   string `json:"santri_id"`
	NamaSantri string `json:"nama_santri"`
	Hadir      int    `json:"hadir"`
	Sakit      int    `json:"sakit"`
	Izin       int    `json:"izin"`
	Alpa       int    `json:"alpa"`
}

// RekapAbsensiKelasResponse rekap kehadiran satu kelas satu bulan,
// berikut hari libur pada bulan itu sebagai anotasi
type RekapAbsensiKelasResponse struct {
	Kelas     string            `json:"kelas"`
	Tingkatan string            `json:"tingkatan"`
	Bulan     int               `json:"bulan"`
	Tahun     int               `json:"tahun"`
	Libur     []LiburResponse   `json:"libur"`
	Rekap     []RekapAbsensiRow `json:"rekap"`
}

// ── Modul ekstrakurikuler ──

// CreateEkskulRequest pembuatan kegiatan ekskul
type CreateEkskulRequest struct {
	Nama    string `json:"nama"    binding:"required,min=2,max=150"`
	Pembina string `json:"pembina" binding:"omitempty,max=150"`
}

// CreateNilaiEkskulRequest input nilai ekskul
type CreateNilaiEkskulRequest struct {
	SantriID    string `json:"santri_id"    binding:"required,uuid"`
	EkskulID    string `json:"ekskul_id"    binding:"required,uuid"`
	Nilai       string `json:"nilai"        binding:"required,max=30"`
	Semester    string `json:"semester"     binding:"required,oneof=Ganjil Genap"`
	TahunAjaran string `json:"tahun_ajaran" binding:"required"`
}

// EkskulResponse informasi kegiatan ekskul
type EkskulResponse struct {
	ID      string `json:"id"`
	Nama    string `json:"nama"`
	Pembina string `json:"pembina"`
}

// ── Modul wali kelas ──

// SetWaliKelasRequest penetapan wali untuk satu kelas
type SetWaliKelasRequest struct {
	Kelas    string `json:"kelas"     binding:"required,max=50"`
	NamaGuru string `json:"nama_guru" binding:"required,min=2,max=150"`
	NIP      string `json:"nip"       binding:"omitempty,max=30"`
}

// WaliKelasResponse informasi wali kelas
type WaliKelasResponse struct {
	Kelas    string `json:"kelas"`
	NamaGuru string `json:"nama_guru"`
	NIP      string `json:"nip"`
}
