package repository

import "gorm.io/gorm"

// Repository pintu masuk agregat seluruh repository
type Repository struct {
	User          UserRepository
	Santri        SantriRepository
	MataPelajaran MataPelajaranRepository
	Nilai         NilaiRepository
	Absensi       AbsensiRepository
	Ekskul        EkskulRepository
	WaliKelas     WaliKelasRepository
	Pengaturan    PengaturanRepository
	Pelanggaran   PelanggaranRepository
	Kesehatan     KesehatanRepository
	Keuangan      KeuanganRepository
	Libur         LiburRepository
}

// NewRepository membuat agregat Repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:          NewUserRepo(db),
		Santri:        NewSantriRepo(db),
		MataPelajaran: NewMataPelajaranRepo(db),
		Nilai:         NewNilaiRepo(db),
		Absensi:       NewAbsensiRepo(db),
		Ekskul:        NewEkskulRepo(db),
		WaliKelas:     NewWaliKelasRepo(db),
		Pengaturan:    NewPengaturanRepo(db),
		Pelanggaran:   NewPelanggaranRepo(db),
		Kesehatan:     NewKesehatanRepo(db),
		Keuangan:      NewKeuanganRepo(db),
		Libur:         NewLiburRepo(db),
	}
}
