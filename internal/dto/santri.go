package dto

// ── Modul santri ──

// CreateSantriRequest pendaftaran santri baru
type CreateSantriRequest struct {
	Nama         string `json:"nama"          binding:"required,min=2,max=150"`
	NIS          string `json:"nis"           binding:"omitempty,max=30"`
	NISN         string `json:"nisn"          binding:"omitempty,max=30"`
	NIK          string `json:"nik"           binding:"omitempty,max=30"`
	Kelas        string `json:"kelas"         binding:"omitempty,max=50"`
	Tingkatan    string `json:"tingkatan"     binding:"omitempty,max=50"`
	JenisKelamin string `json:"jenis_kelamin" binding:"omitempty,oneof=L P"`
	TempatLahir  string `json:"tempat_lahir"`
	TanggalLahir string `json:"tanggal_lahir" binding:"omitempty,datetime=2006-01-02"`
	Alamat       string `json:"alamat"`
	NamaWali     string `json:"nama_wali"`
	TeleponWali  string `json:"telepon_wali"`
}

// UpdateSantriRequest pembaruan biodata santri (partial)
type UpdateSantriRequest struct {
	Nama         *string `json:"nama"          binding:"omitempty,min=2,max=150"`
	NIS          *string `json:"nis"`
	NISN         *string `json:"nisn"`
	NIK          *string `json:"nik"`
	Kelas        *string `json:"kelas"`
	Tingkatan    *string `json:"tingkatan"`
	JenisKelamin *string `json:"jenis_kelamin" binding:"omitempty,oneof=L P"`
	TempatLahir  *string `json:"tempat_lahir"`
	TanggalLahir *string `json:"tanggal_lahir" binding:"omitempty,datetime=2006-01-02"`
	Alamat       *string `json:"alamat"`
	NamaWali     *string `json:"nama_wali"`
	TeleponWali  *string `json:"telepon_wali"`
}

// ListSantriRequest parameter pencarian santri
type ListSantriRequest struct {
	Kelas     string `form:"kelas"`
	Tingkatan string `form:"tingkatan"`
	Keyword   string `form:"keyword"`
	PaginationRequest
}

// SantriResponse biodata santri
type SantriResponse struct {
	ID           string `json:"id"`
	Nama         string `json:"nama"`
	NIS          string `json:"nis"`
	NISN         string `json:"nisn"`
	NIK          string `json:"nik"`
	Kelas        string `json:"kelas"`
	Tingkatan    string `json:"tingkatan"`
	JenisKelamin string `json:"jenis_kelamin"`
	TempatLahir  string `json:"tempat_lahir"`
	TanggalLahir string `json:"tanggal_lahir,omitempty"`
	Alamat       string `json:"alamat"`
	NamaWali     string `json:"nama_wali"`
	TeleponWali  string `json:"telepon_wali"`
}
