package dto

// ── Modul pelanggaran ──

// CreatePelanggaranRequest pencatatan pelanggaran
type CreatePelanggaranRequest struct {
	SantriID   string `json:"santri_id"  binding:"required,uuid"`
	Jenis      string `json:"jenis"      binding:"required,max=150"`
	Poin       int    `json:"poin"       binding:"min=0"`
	Tanggal    string `json:"tanggal"    binding:"required,datetime=2006-01-02"`
	Keterangan string `json:"keterangan"`
}

// PelanggaranResponse informasi pelanggaran
type PelanggaranResponse struct {
	ID         string `json:"id"`
	SantriID   string `json:"santri_id"`
	NamaSantri string `json:"nama_santri,omitempty"`
	Jenis      string `json:"jenis"`
	Poin       int    `json:"poin"`
	Tanggal    string `json:"tanggal"`
	Keterangan string `json:"keterangan"`
}

// ── Modul kesehatan ──

// CreateKesehatanRequest pencatatan riwayat kesehatan
type CreateKesehatanRequest struct {
	SantriID   string `json:"santri_id"  binding:"required,uuid"`
	Keluhan    string `json:"keluhan"    binding:"required"`
	Diagnosis  string `json:"diagnosis"`
	Penanganan string `json:"penanganan"`
	Tanggal    string `json:"tanggal"    binding:"required,datetime=2006-01-02"`
}

// KesehatanResponse informasi riwayat kesehatan
type KesehatanResponse struct {
	ID         string `json:"id"`
	SantriID   string `json:"santri_id"`
	NamaSantri string `json:"nama_santri,omitempty"`
	Keluhan    string `json:"keluhan"`
	Diagnosis  string `json:"diagnosis"`
	Penanganan string `json:"penanganan"`
	Tanggal    string `json:"tanggal"`
}
