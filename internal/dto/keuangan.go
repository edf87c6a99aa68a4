package dto

// ── Modul keuangan ──

// CreatePembayaranRequest pencatatan pembayaran santri
type CreatePembayaranRequest struct {
	SantriID string `json:"santri_id" binding:"required,uuid"`
	Jenis    string `json:"jenis"     binding:"required,max=100"` // SPP, pendaftaran, dst.
	Bulan    string `json:"bulan"     binding:"omitempty,max=20"`
	Tahun    string `json:"tahun"     binding:"omitempty,max=10"`
	Nominal  int64  `json:"nominal"   binding:"required,min=1"`
	Status   string `json:"status"    binding:"omitempty,oneof=lunas belum_lunas"`
	Tanggal  string `json:"tanggal"   binding:"required,datetime=2006-01-02"`
}

// PembayaranResponse informasi pembayaran
type PembayaranResponse struct {
	ID         string `json:"id"`
	SantriID   string `json:"santri_id"`
	NamaSantri string `json:"nama_santri,omitempty"`
	Jenis      string `json:"jenis"`
	Bulan      string `json:"bulan"`
	Tahun      string `json:"tahun"`
	Nominal    int64  `json:"nominal"`
	Status     string `json:"status"`
	Tanggal    string `json:"tanggal"`
}

// CreatePengeluaranRequest pencatatan pengeluaran
type CreatePengeluaranRequest struct {
	Keperluan  string `json:"keperluan" binding:"required,max=200"`
	Nominal    int64  `json:"nominal"   binding:"required,min=1"`
	Tanggal    string `json:"tanggal"   binding:"required,datetime=2006-01-02"`
	Keterangan string `json:"keterangan"`
}

// PengeluaranResponse informasi pengeluaran
type PengeluaranResponse struct {
	ID         string `json:"id"`
	Keperluan  string `json:"keperluan"`
	Nominal    int64  `json:"nominal"`
	Tanggal    string `json:"tanggal"`
	Keterangan string `json:"keterangan"`
}

// CreateDonasiRequest pencatatan donasi masuk
type CreateDonasiRequest struct {
	Donatur    string `json:"donatur" binding:"required,max=150"`
	Nominal    int64  `json:"nominal" binding:"required,min=1"`
	Tanggal    string `json:"tanggal" binding:"required,datetime=2006-01-02"`
	Keterangan string `json:"keterangan"`
}

// DonasiResponse informasi donasi
type DonasiResponse struct {
	ID         string `json:"id"`
	Donatur    string `json:"donatur"`
	Nominal    int64  `json:"nominal"`
	Tanggal    string `json:"tanggal"`
	Keterangan string `json:"keterangan"`
}
