package handler

import "sipesantren/backend/internal/service"

// Handler pintu masuk agregat seluruh handler
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Santri      *SantriHandler
	Mapel       *MapelHandler
	Nilai       *NilaiHandler
	Absensi     *AbsensiHandler
	Ekskul      *EkskulHandler
	WaliKelas   *WaliKelasHandler
	Raport      *RaportHandler
	Export      *ExportHandler
	Pelanggaran *PelanggaranHandler
	Kesehatan   *KesehatanHandler
	Keuangan    *KeuanganHandler
	Pengaturan  *PengaturanHandler
}

// NewHandler membuat agregat Handler
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		Santri:      NewSantriHandler(svc.Santri),
		Mapel:       NewMapelHandler(svc.Mapel),
		Nilai:       NewNilaiHandler(svc.Nilai),
		Absensi:     NewAbsensiHandler(svc.Absensi),
		Ekskul:      NewEkskulHandler(svc.Ekskul),
		WaliKelas:   NewWaliKelasHandler(svc.WaliKelas),
		Raport:      NewRaportHandler(svc.Raport),
		Export:      NewExportHandler(svc.Export),
		Pelanggaran: NewPelanggaranHandler(svc.Pelanggaran),
		Kesehatan:   NewKesehatanHandler(svc.Kesehatan),
		Keuangan:    NewKeuanganHandler(svc.Keuangan),
		Pengaturan:  NewPengaturanHandler(svc.Pengaturan, svc.Kalender),
	}
}
