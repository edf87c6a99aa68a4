package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sipesantren/backend/config"
	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/model"
	"sipesantren/backend/internal/repository"
)

// ── Galat modul raport ──

var (
	ErrRaportSantriNotFound = errors.New("santri tidak ditemukan")
	ErrRaportGenerateFail   = errors.New("gagal membuat dokumen raport")
)

// Tahun ajaran default ketika input tidak bisa diparse. Kebijakan lama
// "dokumen harus selalu bisa dibuat" dipertahankan, tetapi fallback kini
// eksplisit dan tercatat di log level warning.
const (
	tahunAjaranDefaultMulai = 2024
	tahunAjaranDefaultAkhir = 2025
)

// RaportService pipeline pembuatan raport:
// agregasi → klasifikasi → (overlay editor) → format → emit.
//
// Catatan desain:
//   - GetData mengembalikan hasil agregasi murni; penyuntingan di editor
//     adalah overlay di payload Generate, sehingga "reset" cukup memanggil
//     GetData ulang dan hasilnya identik selama data tidak berubah.
//   - Generate selalu mengagregasi ulang dari database, lalu menimpa
//     bagian-bagian yang di-overlay. Data parsial dirender dengan
//     placeholder, tidak pernah menggagalkan pembuatan dokumen.
//   - Kegagalan serialisasi Excel merambat ke pemanggil tanpa retry.
type RaportService interface {
	// GetData mengagregasi data raport satu santri satu semester
	GetData(ctx context.Context, santriID string, req *dto.RaportRequest) (*dto.RaportData, error)
	// Generate membuat dokumen raport .xlsx
	Generate(ctx context.Context, santriID string, req *dto.GenerateRaportRequest) (*bytes.Buffer, string, error)
}

type raportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRaportService membuat RaportService
func NewRaportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) RaportService {
	return &raportService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── GetData ──────────────────────

func (s *raportService) GetData(ctx context.Context, santriID string, req *dto.RaportRequest) (*dto.RaportData, error) {
	santri, err := s.repo.Santri.GetByID(ctx, santriID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRaportSantriNotFound
		}
		s.logger.Error("gagal memuat santri", zap.String("santri_id", santriID), zap.Error(err))
		return nil, err
	}

	mulai, sampai := s.periodeSemester(req.Semester, req.TahunAjaran)

	// Kueri-kueri berikut saling independen; tidak ada urutan yang
	// dipentingkan di antara mereka.
	absensi, err := s.repo.Absensi.ListBySantriInRange(ctx, santriID, mulai, sampai)
	if err != nil {
		s.logger.Error("gagal memuat absensi", zap.Error(err))
		return nil, err
	}

	mapel, err := s.repo.MataPelajaran.List(ctx, santri.Kelas)
	if err != nil {
		s.logger.Error("gagal memuat mata pelajaran", zap.Error(err))
		return nil, err
	}

	nilai, err := s.repo.Nilai.ListUASBySantri(ctx, santriID, req.Semester, req.TahunAjaran)
	if err != nil {
		s.logger.Error("gagal memuat nilai", zap.Error(err))
		return nil, err
	}

	nilaiEkskul, err := s.repo.Ekskul.ListNilaiBySantri(ctx, santriID, req.Semester, req.TahunAjaran)
	if err != nil {
		s.logger.Error("gagal memuat nilai ekstrakurikuler", zap.Error(err))
		return nil, err
	}

	// Wali kelas: nil jika kelas kosong atau belum ditetapkan
	namaWaliKelas := ""
	if santri.Kelas != "" {
		wali, err := s.repo.WaliKelas.GetByKelas(ctx, santri.Kelas)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("gagal memuat wali kelas", zap.Error(err))
			return nil, err
		}
		if wali != nil {
			namaWaliKelas = wali.NamaGuru
		}
	}

	hasil := Klasifikasikan(nilai, NewLookupKlasifikator(mapel))

	data := &dto.RaportData{
		Santri:        toSantriResponse(santri),
		WaliKelas:     namaWaliKelas,
		Sekolah:       s.infoSekolah(ctx),
		Semester:      req.Semester,
		TahunAjaran:   req.TahunAjaran,
		PeriodeMulai:  mulai.Format("2006-01-02"),
		PeriodeSampai: sampai.Format("2006-01-02"),
		Kepesantrenan: barisNilai(hasil.Kepesantrenan),
		Kekhususan:    barisNilai(hasil.Kekhususan),
		Umum:          barisNilai(hasil.Umum),
		Ekskul:        barisEkskul(nilaiEkskul),
		Absensi:       rekapAbsensi(absensi),
	}

	return data, nil
}

// ────────────────────── Generate ──────────────────────

func (s *raportService) Generate(ctx context.Context, santriID string, req *dto.GenerateRaportRequest) (*bytes.Buffer, string, error) {
	data, err := s.GetData(ctx, santriID, &dto.RaportRequest{
		Semester:    req.Semester,
		TahunAjaran: req.TahunAjaran,
	})
	if err != nil {
		return nil, "", err
	}

	// Overlay dari editor menimpa hasil agregasi tanpa mengubahnya
	if req.NamaWaliKelas != "" {
		data.WaliKelas = req.NamaWaliKelas
	}
	if req.NamaKepala != "" {
		data.Sekolah.NamaKepala = req.NamaKepala
	}
	if req.JabatanKepala != "" {
		data.Sekolah.JabatanKepala = req.JabatanKepala
	}
	if req.LogoKiriURL != "" {
		data.Sekolah.LogoKiriURL = req.LogoKiriURL
	}
	if req.LogoKananURL != "" {
		data.Sekolah.LogoKananURL = req.LogoKananURL
	}

	buf, err := buatDokumenRaport(data, req)
	if err != nil {
		s.logger.Error("gagal menulis dokumen raport", zap.Error(err))
		return nil, "", ErrRaportGenerateFail
	}

	filename := fmt.Sprintf("Raport-%s-%s.xlsx", data.Santri.Nama, data.Semester)
	return buf, filename, nil
}

// ── Periode semester ──

// periodeSemester menghitung rentang tanggal inklusif satu semester:
// Ganjil = 1 Juli s.d. 31 Desember tahun awal,
// Genap  = 1 Januari s.d. 30 Juni tahun akhir.
func (s *raportService) periodeSemester(semester, tahunAjaran string) (time.Time, time.Time) {
	awal, akhir, err := parseTahunAjaran(tahunAjaran)
	if err != nil {
		s.logger.Warn("format tahun ajaran tidak valid, memakai default",
			zap.String("tahun_ajaran", tahunAjaran),
			zap.Int("default_mulai", tahunAjaranDefaultMulai),
			zap.Int("default_akhir", tahunAjaranDefaultAkhir),
		)
		awal, akhir = tahunAjaranDefaultMulai, tahunAjaranDefaultAkhir
	}

	if semester == "Genap" {
		return time.Date(akhir, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(akhir, time.June, 30, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(awal, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(awal, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// parseTahunAjaran memecah "2024/2025" menjadi (2024, 2025)
func parseTahunAjaran(tahunAjaran string) (int, int, error) {
	parts := strings.Split(tahunAjaran, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("tahun ajaran %q tidak berformat YYYY/YYYY", tahunAjaran)
	}
	awal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("tahun awal %q bukan angka", parts[0])
	}
	akhir, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("tahun akhir %q bukan angka", parts[1])
	}
	return awal, akhir, nil
}

// ── Pembentuk baris ──

// barisNilai memetakan nilai ke baris raport, urutan input dipertahankan.
// Nilai tepat 0 berarti "belum ada nilai": predikat dikosongkan dan
// renderer dokumen membiarkan sel angka kosong.
func barisNilai(nilai []model.Nilai) []dto.NilaiRaportRow {
	rows := make([]dto.NilaiRaportRow, 0, len(nilai))
	for i, n := range nilai {
		predikat := NilaiKePredikat(n.Nilai)
		if n.Nilai == 0 {
			predikat = ""
		}
		rows = append(rows, dto.NilaiRaportRow{
			No:            i + 1,
			MataPelajaran: n.MataPelajaran,
			Nilai:         n.Nilai,
			Predikat:      predikat,
		})
	}
	return rows
}

func barisEkskul(nilai []model.NilaiEkstrakurikuler) []dto.EkskulRaportRow {
	rows := make([]dto.EkskulRaportRow, 0, len(nilai))
	for i, n := range nilai {
		kegiatan := ""
		if n.Ekstrakurikuler != nil {
			kegiatan = n.Ekstrakurikuler.Nama
		}
		rows = append(rows, dto.EkskulRaportRow{
			No:       i + 1,
			Kegiatan: kegiatan,
			Nilai:    n.Nilai,
		})
	}
	return rows
}

// rekapAbsensi menghitung ketidakhadiran; status hadir tidak direkap
func rekapAbsensi(absensi []model.Absensi) dto.RekapAbsensi {
	var rekap dto.RekapAbsensi
	for _, a := range absensi {
		switch a.Status {
		case model.AbsensiSakit:
			rekap.Sakit++
		case model.AbsensiIzin:
			rekap.Izin++
		case model.AbsensiAlpa:
			rekap.Alpa++
		}
	}
	return rekap
}

// ── Info sekolah ──

// infoSekolah memuat pengaturan sekolah dengan fallback bawaan.
// Baris pengaturan yang belum ada dicatat sebagai warning, bukan galat.
func (s *raportService) infoSekolah(ctx context.Context) dto.SekolahInfo {
	info := dto.SekolahInfo{
		Nama:          s.cfg.Sekolah.Nama,
		Kota:          s.cfg.Sekolah.Kota,
		JabatanKepala: "Pimpinan Pondok",
	}

	pengaturan, err := s.repo.Pengaturan.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("pengaturan sekolah belum diisi, memakai default konfigurasi")
		} else {
			s.logger.Warn("gagal memuat pengaturan sekolah, memakai default konfigurasi", zap.Error(err))
		}
		return info
	}

	if pengaturan.NamaSekolah != "" {
		info.Nama = pengaturan.NamaSekolah
	}
	if pengaturan.Alamat != "" {
		info.Alamat = pengaturan.Alamat
	}
	if pengaturan.Kota != "" {
		info.Kota = pengaturan.Kota
	}
	info.LogoKiriURL = pengaturan.LogoKiriURL
	info.LogoKananURL = pengaturan.LogoKananURL
	if pengaturan.NamaKepala != "" {
		info.NamaKepala = pengaturan.NamaKepala
	}
	if pengaturan.JabatanKepala != "" {
		info.JabatanKepala = pengaturan.JabatanKepala
	}

	return info
}

func toSantriResponse(santri *model.Santri) dto.SantriResponse {
	resp := dto.SantriResponse{
		ID:           santri.SantriID,
		Nama:         santri.Nama,
		NIS:          santri.NIS,
		NISN:         santri.NISN,
		NIK:          santri.NIK,
		Kelas:        santri.Kelas,
		Tingkatan:    santri.Tingkatan,
		JenisKelamin: santri.JenisKelamin,
		TempatLahir:  santri.TempatLahir,
		Alamat:       santri.Alamat,
		NamaWali:     santri.NamaWali,
		TeleponWali:  santri.TeleponWali,
	}
	if santri.TanggalLahir != nil {
		resp.TanggalLahir = santri.TanggalLahir.Format("2006-01-02")
	}
	return resp
}
