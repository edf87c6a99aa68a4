package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"sipesantren/backend/internal/repository"
)

// ── Galat modul ekspor ──

var (
	ErrExportBulanInvalid = errors.New("bulan harus di antara 1-12")
	ErrExportGenerateFail = errors.New("gagal membuat file Excel")
)

// ExportService ekspor tabular ke Excel.
//
// Semua ekspor mengikuti pola yang sama: query baris → skema kolom tetap
// → baris header bergaya → baris data → buffer. Urutan dan judul kolom
// adalah bagian kontrak eksternal (konsumen membaca file di spreadsheet
// viewer, bukan lewat API) sehingga tidak boleh berubah diam-diam.
type ExportService interface {
	ExportSantri(ctx context.Context, kelas, tingkatan string) (*bytes.Buffer, string, error)
	ExportNilai(ctx context.Context, filter repository.NilaiFilter) (*bytes.Buffer, string, error)
	ExportAbsensi(ctx context.Context, kelas, tingkatan string, bulan int, tahun int) (*bytes.Buffer, string, error)
	ExportPelanggaran(ctx context.Context) (*bytes.Buffer, string, error)
	ExportKesehatan(ctx context.Context) (*bytes.Buffer, string, error)
	ExportPembayaran(ctx context.Context, keyword string) (*bytes.Buffer, string, error)
	ExportPengeluaran(ctx context.Context) (*bytes.Buffer, string, error)
	ExportDonasi(ctx context.Context) (*bytes.Buffer, string, error)
	ExportUsers(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService membuat ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ── Penulis tabel bersama ──

// tulisTabel menulis satu sheet dengan baris header bergaya dan baris
// data berborder, lalu menserialisasikan workbook ke buffer
func tulisTabel(sheet string, headers []string, widths []float64, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	borderTipis := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    borderTipis,
	})
	if err != nil {
		return nil, err
	}
	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: borderTipis,
	})
	if err != nil {
		return nil, err
	}

	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, cell(col, 1), h)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheet, "A1", cell(lastCol, 1), headerStyle)

	for r, row := range rows {
		for c, v := range row {
			col, _ := excelize.ColumnNumberToName(c + 1)
			f.SetCellValue(sheet, cell(col, r+2), v)
		}
		f.SetCellStyle(sheet, cell("A", r+2), cell(lastCol, r+2), rowStyle)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func formatTanggal(t time.Time) string {
	return t.Format("02-01-2006")
}

func formatTanggalPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTanggal(*t)
}

// ── Ekspor per modul ──

func (s *exportService) ExportSantri(ctx context.Context, kelas, tingkatan string) (*bytes.Buffer, string, error) {
	santri, err := s.repo.Santri.ListByKelas(ctx, kelas, tingkatan)
	if err != nil {
		s.logger.Error("gagal memuat data santri untuk ekspor", zap.Error(err))
		return nil, "", err
	}

	headers := []string{"No", "Nama", "NIS", "NISN", "NIK", "Kelas", "Tingkatan", "Jenis Kelamin", "Tempat Lahir", "Tanggal Lahir", "Nama Wali", "Telepon Wali", "Alamat"}
	widths := []float64{5, 30, 15, 15, 20, 12, 12, 14, 18, 14, 25, 16, 40}

	rows := make([][]interface{}, 0, len(santri))
	for i, st := range santri {
		rows = append(rows, []interface{}{
			i + 1, st.Nama, st.NIS, st.NISN, st.NIK, st.Kelas, st.Tingkatan,
			st.JenisKelamin, st.TempatLahir, formatTanggalPtr(st.TanggalLahir),
			st.NamaWali, st.TeleponWali, st.Alamat,
		})
	}

	buf, err := tulisTabel("Data Santri", headers, widths, rows)
	if err != nil {
		s.logger.Error("gagal menulis ekspor santri", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := "Data_Santri.xlsx"
	if kelas != "" {
		filename = fmt.Sprintf("Data_Santri_%s.xlsx", kelas)
	}
	return buf, filename, nil
}

func (s *exportService) ExportNilai(ctx context.Context, filter repository.NilaiFilter) (*bytes.Buffer, string, error) {
	nilai, err := s.repo.Nilai.List(ctx, filter)
	if err != nil {
		s.logger.Error("gagal memuat nilai untuk ekspor", zap.Error(err))
		return nil, "", err
	}

	headers := []string{"No", "Nama Santri", "Mata Pelajaran", "Jenis", "Nilai", "Predikat", "Semester", "Tahun Ajaran", "Tanggal"}
	widths := []float64{5, 30, 25, 10, 10, 10, 12, 14, 14}

	rows := make([][]interface{}, 0, len(nilai))
	for i, n := range nilai {
		nama := ""
		if n.Santri != nil {
			nama = n.Santri.Nama
		}
		rows = append(rows, []interface{}{
			i + 1, nama, n.MataPelajaran, n.JenisNilai, n.Nilai,
			NilaiKePredikat(n.Nilai), n.Semester, n.TahunAjaran, formatTanggalPtr(n.Tanggal),
		})
	}

	buf, err := tulisTabel("Data Nilai", headers, widths, rows)
	if err != nil {
		s.logger.Error("gagal menulis ekspor nilai", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "Data_Nilai.xlsx", nil
}

func (s *exportService) ExportAbsensi(ctx context.Context, kelas, tingkatan string, bulan, tahun int) (*bytes.Buffer, string, error) {
	if bulan < 1 || bulan > 12 {
		return nil, "", ErrExportBulanInvalid
	}

	mulai := time.Date(tahun, time.Month(bulan), 1, 0, 0, 0, 0, time.UTC)
	sampai := mulai.AddDate(0, 1, -1)

	absensi, err := s.repo.Absensi.ListByKelasInRange(ctx, kelas, tingkatan, mulai, sampai)
	if err != nil {
		s.logger.Error("gagal memuat absensi untuk ekspor", zap.Error(err))
		return nil, "", err
	}

	headers := []string{"No", "Nama Santri", "Kelas", "Tanggal", "Status", "Keterangan"}
	widths := []float64{5, 30, 12, 14, 12, 40}

	rows := make([][]interface{}, 0, len(absensi))
	for i, a := range absensi {
		nama, kelasSantri := "", ""
		if a.Santri != nil {
			nama = a.Santri.Nama
			kelasSantri = a.Santri.Kelas
		}
		rows = append(rows, []interface{}{
			i + 1, nama, kelasSantri, formatTanggal(a.Tanggal), a.Status, a.Keterangan,
		})
	}

	buf, err := tulisTabel("Absensi", headers, widths, rows)
	if err != nil {
		s.logger.Error("gagal menulis ekspor absensi", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("Absensi_%s_%s_%s_%d.xlsx", kelas, tingkatan, namaBulan[bulan-1], tahun)
	return buf, filename, nil
}

func (s *exportService) ExportPelanggaran(ctx context.Context) (*bytes.Buffer, string, error) {
	pelanggaran, err := s.repo.Pelanggaran.List(ctx, "")
	if err != nil {
		s.logger.Error("gagal memuat pelanggaran untuk ekspor", zap.Error(err))
		return nil, "", err
	}

	headers := []string{"No", "Nama Santri", "Jenis Pelanggaran", "Poin", "Tanggal", "Keterangan"}
	widths := []float64{5, 30, 30, 8, 14, 40}

	rows := make([][]interface{}, 0, len(pelanggaran))
	for i, p := range pelanggaran {
		nama := ""
		if p.Santri != nil {
			nama = p.Santri.Nama
		}
		rows = append(rows, []interface{}{
			i + 1, nama, p.Jenis, p.Poin, formatTanggal(p.Tanggal), p.Keterangan,
		})
	}

	buf, err := tulisTabel("Pelanggaran", headers, widths, rows)
	if err != nil {
		s.logger.Error("gagal menulis ekspor pelanggaran", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "Data_Pelanggaran.xlsx", nil
}

func (s *exportService) ExportKesehatan(ctx context.Context) (*bytes.Buffer, string, error) {
	riwayat, err := s.repo.Kesehatan.List(ctx, "")
	if err != nil {
		s.logger.Error("gagal memuat riwayat kesehatan untuk ekspor", zap.Error(err))
		return nil, "", err
	}

	headers := []string{"No", "Nama Santri", "Keluhan", "Diagnosis", "Penanganan", "Tanggal"}
	widths := []float64{5, 30, 30, 25, 30, 14}

	rows := make([][]interface{}, 0, len(riwayat))
	for i, rk := range riwayat {
		nama := ""
		if rk.Santri != nil {
			nama = rk.Santri.Nama
		}
		rows = append(rows, []interface{}{
			i + 1, nama, rk.Keluhan, rk.Diagnosis, rk.Penanganan, formatTanggal(rk.Tanggal),
		})
	}

	buf, err := tulisTabel("Riwayat Kesehatan", headers, widths, rows)
	if err != nil {
		s.logger.Error("gagal menulis ekspor kesehatan", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "Riwayat_Kesehatan.xlsx", nil
}

func (s *exportService) ExportPembayaran(ctx context.Context, keyword string) (*bytes.Buffer, string, error) {
	pembayaran, err := s.repo.Keuangan.ListPembayaran(ctx, repository.PembayaranFilter{Keyword: keyword})
	if err != nil {
		s.logger.Error("gagal memuat pembayaran untuk ekspor", zap.Error(err))
		return nil, "", err
	}

	headers := []string{"No", "Nama Santri", "Jenis Pembayaran", "Bulan", "Tahun", "Nominal", "Status", "Tanggal"}
	widths := []float64{5, 30, 22, 12, 10, 16, 14, 14}

	rows := make([][]interface{}, 0, len(pembayaran))
	for i, p := range pembayaran {
		nama := ""
		if p.Santri != nil {
			nama = p.Santri.Nama
		}
		rows = append(rows, []interface{}{
			i + 1, nama, p.Jenis, p.Bulan, p.Tahun, p.Nominal, p.Status, formatTanggal(p.Tanggal),
		})
	}

	buf, err := tulisTabel("Riwayat Pembayaran", headers, widths, rows)
	if err != nil {
		s.logger.Error("gagal menulis ekspor pembayaran", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	suffix := keyword
	if suffix == "" {
		suffix = "Semua"
	}
	return buf, fmt.Sprintf("Riwayat_Pembayaran_%s.xlsx", suffix), nil
}

func (s *exportService) ExportPengeluaran(ctx context.Context) (*bytes.Buffer, string, error) {
	pengeluaran, err := s.repo.Keuangan.ListPengeluaran(ctx)
	if err != nil {
		s.logger.Error("gagal memuat pengeluaran untuk ekspor", zap.Error(err))
		return nil, "", err
	}

	headers := []string{"No", "Keperluan", "Nominal", "Tanggal", "Keterangan"}
	widths := []float64{5, 35, 16, 14, 40}

	rows := make([][]interface{}, 0, len(pengeluaran))
	for i, p := range pengeluaran {
		rows = append(rows, []interface{}{
			i + 1, p.Keperluan, p.Nominal, formatTanggal(p.Tanggal), p.Keterangan,
		})
	}

	buf, err := tulisTabel("Pengeluaran", headers, widths, rows)
	if err != nil {
		s.logger.Error("gagal menulis ekspor pengeluaran", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "Data_Pengeluaran.xlsx", nil
}

func (s *exportService) ExportDonasi(ctx context.Context) (*bytes.Buffer, string, error) {
	donasi, err := s.repo.Keuangan.ListDonasi(ctx)
	if err != nil {
		s.logger.Error("gagal memuat donasi untuk ekspor", zap.Error(err))
		return nil, "", err
	}

	headers := []string{"No", "Donatur", "Nominal", "Tanggal", "Keterangan"}
	widths := []float64{5, 30, 16, 14, 40}

	rows := make([][]interface{}, 0, len(donasi))
	for i, d := range donasi {
		rows = append(rows, []interface{}{
			i + 1, d.Donatur, d.Nominal, formatTanggal(d.Tanggal), d.Keterangan,
		})
	}

	buf, err := tulisTabel("Donasi", headers, widths, rows)
	if err != nil {
		s.logger.Error("gagal menulis ekspor donasi", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "Data_Donasi.xlsx", nil
}

func (s *exportService) ExportUsers(ctx context.Context) (*bytes.Buffer, string, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("gagal memuat pengguna untuk ekspor", zap.Error(err))
		return nil, "", err
	}

	headers := []string{"No", "Nama", "Username", "Role"}
	widths := []float64{5, 30, 20, 12}

	rows := make([][]interface{}, 0, len(users))
	for i, u := range users {
		rows = append(rows, []interface{}{i + 1, u.Nama, u.Username, u.Role})
	}

	buf, err := tulisTabel("Pengguna", headers, widths, rows)
	if err != nil {
		s.logger.Error("gagal menulis ekspor pengguna", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "Data_Pengguna.xlsx", nil
}
