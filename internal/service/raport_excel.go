package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"sipesantren/backend/internal/dto"
)

// ── Formatter dokumen raport ──
//
// Pemetaan deterministik data terstruktur → grid Excel bergaya:
//   - kop sekolah (baris judul di-merge)
//   - blok info santri dua kolom
//   - tabel nilai dengan header dua baris (ANGKA/PREDIKAT) dan satu
//     sub-tabel per kategori yang tidak kosong
//   - tabel ekstrakurikuler (placeholder strip jika kosong)
//   - tabel prestasi (hanya dirender bila ada isinya)
//   - rekap ketidakhadiran tiga baris
//   - dua kotak teks bebas dengan word-wrap
//   - blok tanda tangan dengan tanggal berformat lokal Indonesia
//
// Semua sel terisi diberi border tipis; label bagian dicetak tebal;
// header rata tengah. Tidak ada logika bisnis selain penempatan layout.

const sheetRaport = "Raport"

// garisTandaTangan placeholder nama penanda tangan yang belum diisi
const garisTandaTangan = "..............................."

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// tanggalIndonesia memformat "{hari} {NamaBulan} {tahun}"
func tanggalIndonesia(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()-1], t.Year())
}

// nilaiSel mengembalikan isi sel angka; 0 berarti belum ada nilai → kosong
func nilaiSel(nilai float64) interface{} {
	if nilai == 0 {
		return ""
	}
	return nilai
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// raportStyles kumpulan style ID yang dipakai formatter
type raportStyles struct {
	judul      int // bold 14, center
	subJudul   int // bold, center
	header     int // bold, center, border
	label      int // bold, border
	labelPolos int // bold tanpa border (blok info)
	isi        int // border
	isiTengah  int // border, center
	kotakWrap  int // border, word-wrap, rata atas
	tengah     int // center tanpa border
}

func buatRaportStyles(f *excelize.File) (*raportStyles, error) {
	borderTipis := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	var s raportStyles
	var err error

	if s.judul, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return nil, err
	}
	if s.subJudul, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return nil, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    borderTipis,
	}); err != nil {
		return nil, err
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: borderTipis,
	}); err != nil {
		return nil, err
	}
	if s.labelPolos, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
	}); err != nil {
		return nil, err
	}
	if s.isi, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: borderTipis,
	}); err != nil {
		return nil, err
	}
	if s.isiTengah, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    borderTipis,
	}); err != nil {
		return nil, err
	}
	if s.kotakWrap, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    borderTipis,
	}); err != nil {
		return nil, err
	}
	if s.tengah, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return nil, err
	}

	return &s, nil
}

// buatDokumenRaport menata payload raport menjadi workbook dan
// menserialisasikannya ke buffer
func buatDokumenRaport(data *dto.RaportData, req *dto.GenerateRaportRequest) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetRaport)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetRaport, "A", "A", 6)
	f.SetColWidth(sheetRaport, "B", "B", 36)
	f.SetColWidth(sheetRaport, "C", "C", 14)
	f.SetColWidth(sheetRaport, "D", "D", 14)

	st, err := buatRaportStyles(f)
	if err != nil {
		return nil, err
	}

	// 1. Kop
	f.SetCellValue(sheetRaport, "A1", data.Sekolah.Nama)
	f.MergeCell(sheetRaport, "A1", "D1")
	f.SetCellStyle(sheetRaport, "A1", "D1", st.judul)

	f.SetCellValue(sheetRaport, "A2", data.Sekolah.Alamat)
	f.MergeCell(sheetRaport, "A2", "D2")
	f.SetCellStyle(sheetRaport, "A2", "D2", st.tengah)

	f.SetCellValue(sheetRaport, "A3", "LAPORAN HASIL BELAJAR SANTRI")
	f.MergeCell(sheetRaport, "A3", "D3")
	f.SetCellStyle(sheetRaport, "A3", "D3", st.subJudul)

	f.SetCellValue(sheetRaport, "A4",
		fmt.Sprintf("Semester %s Tahun Ajaran %s", data.Semester, data.TahunAjaran))
	f.MergeCell(sheetRaport, "A4", "D4")
	f.SetCellStyle(sheetRaport, "A4", "D4", st.tengah)

	// 2. Blok info santri (dua kolom label-nilai)
	info := [][4]string{
		{"Nama", data.Santri.Nama, "Kelas", data.Santri.Kelas},
		{"NIS", data.Santri.NIS, "Tingkatan", data.Santri.Tingkatan},
		{"NISN", data.Santri.NISN, "Wali Kelas", data.WaliKelas},
	}
	row := 6
	for _, baris := range info {
		f.SetCellValue(sheetRaport, cell("A", row), baris[0])
		f.SetCellStyle(sheetRaport, cell("A", row), cell("A", row), st.labelPolos)
		f.SetCellValue(sheetRaport, cell("B", row), ": "+baris[1])
		f.SetCellValue(sheetRaport, cell("C", row), baris[2])
		f.SetCellStyle(sheetRaport, cell("C", row), cell("C", row), st.labelPolos)
		f.SetCellValue(sheetRaport, cell("D", row), ": "+baris[3])
		row++
	}
	row++

	// 3. Tabel nilai: header dua baris
	f.SetCellValue(sheetRaport, cell("A", row), "NO")
	f.MergeCell(sheetRaport, cell("A", row), cell("A", row+1))
	f.SetCellValue(sheetRaport, cell("B", row), "MATA PELAJARAN")
	f.MergeCell(sheetRaport, cell("B", row), cell("B", row+1))
	f.SetCellValue(sheetRaport, cell("C", row), "NILAI")
	f.MergeCell(sheetRaport, cell("C", row), cell("D", row))
	f.SetCellValue(sheetRaport, cell("C", row+1), "ANGKA")
	f.SetCellValue(sheetRaport, cell("D", row+1), "PREDIKAT")
	f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row+1), st.header)
	row += 2

	// Sub-tabel per kategori; kategori kosong dilewati seluruhnya
	kategori := []struct {
		label string
		rows  []dto.NilaiRaportRow
	}{
		{"A. Kepesantrenan", data.Kepesantrenan},
		{"B. Kekhususan", data.Kekhususan},
		{"C. Umum", data.Umum},
	}
	for _, kat := range kategori {
		if len(kat.rows) == 0 {
			continue
		}

		f.SetCellValue(sheetRaport, cell("A", row), kat.label)
		f.MergeCell(sheetRaport, cell("A", row), cell("D", row))
		f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.label)
		row++

		for _, baris := range kat.rows {
			f.SetCellValue(sheetRaport, cell("A", row), baris.No)
			f.SetCellValue(sheetRaport, cell("B", row), baris.MataPelajaran)
			f.SetCellValue(sheetRaport, cell("C", row), nilaiSel(baris.Nilai))
			f.SetCellValue(sheetRaport, cell("D", row), baris.Predikat)
			f.SetCellStyle(sheetRaport, cell("A", row), cell("A", row), st.isiTengah)
			f.SetCellStyle(sheetRaport, cell("B", row), cell("B", row), st.isi)
			f.SetCellStyle(sheetRaport, cell("C", row), cell("D", row), st.isiTengah)
			row++
		}
	}
	row++

	// 4. Tabel ekstrakurikuler
	f.SetCellValue(sheetRaport, cell("A", row), "EKSTRAKURIKULER")
	f.MergeCell(sheetRaport, cell("A", row), cell("D", row))
	f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.label)
	row++

	f.SetCellValue(sheetRaport, cell("A", row), "NO")
	f.SetCellValue(sheetRaport, cell("B", row), "KEGIATAN")
	f.SetCellValue(sheetRaport, cell("C", row), "NILAI")
	f.MergeCell(sheetRaport, cell("C", row), cell("D", row))
	f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.header)
	row++

	if len(data.Ekskul) == 0 {
		// placeholder satu baris strip
		f.SetCellValue(sheetRaport, cell("A", row), "-")
		f.SetCellValue(sheetRaport, cell("B", row), "-")
		f.SetCellValue(sheetRaport, cell("C", row), "-")
		f.MergeCell(sheetRaport, cell("C", row), cell("D", row))
		f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.isiTengah)
		row++
	} else {
		for _, baris := range data.Ekskul {
			f.SetCellValue(sheetRaport, cell("A", row), baris.No)
			f.SetCellValue(sheetRaport, cell("B", row), baris.Kegiatan)
			f.SetCellValue(sheetRaport, cell("C", row), baris.Nilai)
			f.MergeCell(sheetRaport, cell("C", row), cell("D", row))
			f.SetCellStyle(sheetRaport, cell("A", row), cell("A", row), st.isiTengah)
			f.SetCellStyle(sheetRaport, cell("B", row), cell("B", row), st.isi)
			f.SetCellStyle(sheetRaport, cell("C", row), cell("D", row), st.isiTengah)
			row++
		}
	}
	row++

	// 5. Tabel prestasi: hanya dirender jika ada minimal satu entri
	if len(req.Prestasi) > 0 {
		f.SetCellValue(sheetRaport, cell("A", row), "PRESTASI")
		f.MergeCell(sheetRaport, cell("A", row), cell("D", row))
		f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.label)
		row++

		f.SetCellValue(sheetRaport, cell("A", row), "NO")
		f.SetCellValue(sheetRaport, cell("B", row), "PRESTASI")
		f.SetCellValue(sheetRaport, cell("C", row), "KETERANGAN")
		f.MergeCell(sheetRaport, cell("C", row), cell("D", row))
		f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.header)
		row++

		for i, prestasi := range req.Prestasi {
			f.SetCellValue(sheetRaport, cell("A", row), i+1)
			f.SetCellValue(sheetRaport, cell("B", row), prestasi.Nama)
			f.SetCellValue(sheetRaport, cell("C", row), prestasi.Keterangan)
			f.MergeCell(sheetRaport, cell("C", row), cell("D", row))
			f.SetCellStyle(sheetRaport, cell("A", row), cell("A", row), st.isiTengah)
			f.SetCellStyle(sheetRaport, cell("B", row), cell("D", row), st.isi)
			row++
		}
		row++
	}

	// 6. Rekap ketidakhadiran
	f.SetCellValue(sheetRaport, cell("A", row), "KETIDAKHADIRAN")
	f.MergeCell(sheetRaport, cell("A", row), cell("B", row))
	f.SetCellStyle(sheetRaport, cell("A", row), cell("B", row), st.label)
	row++

	ketidakhadiran := []struct {
		label  string
		jumlah int
	}{
		{"Sakit", data.Absensi.Sakit},
		{"Izin", data.Absensi.Izin},
		{"Tanpa Keterangan", data.Absensi.Alpa},
	}
	for _, k := range ketidakhadiran {
		f.SetCellValue(sheetRaport, cell("A", row), k.label)
		f.MergeCell(sheetRaport, cell("A", row), cell("A", row))
		f.SetCellValue(sheetRaport, cell("B", row), fmt.Sprintf("%d hari", k.jumlah))
		f.SetCellStyle(sheetRaport, cell("A", row), cell("A", row), st.isi)
		f.SetCellStyle(sheetRaport, cell("B", row), cell("B", row), st.isiTengah)
		row++
	}
	row++

	// 7. Kotak catatan wali kelas dan tanggapan orang tua
	for _, kotak := range []struct {
		label string
		isi   string
	}{
		{"Catatan Wali Kelas", req.CatatanWaliKelas},
		{"Tanggapan Orang Tua/Wali", req.TanggapanOrangTua},
	} {
		f.SetCellValue(sheetRaport, cell("A", row), kotak.label)
		f.MergeCell(sheetRaport, cell("A", row), cell("D", row))
		f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.labelPolos)
		row++

		f.SetCellValue(sheetRaport, cell("A", row), kotak.isi)
		f.MergeCell(sheetRaport, cell("A", row), cell("D", row+2))
		f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row+2), st.kotakWrap)
		row += 4
	}

	// 8. Blok tanda tangan
	f.SetCellValue(sheetRaport, cell("C", row),
		fmt.Sprintf("%s, %s", data.Sekolah.Kota, tanggalIndonesia(time.Now())))
	f.MergeCell(sheetRaport, cell("C", row), cell("D", row))
	f.SetCellStyle(sheetRaport, cell("C", row), cell("D", row), st.tengah)
	row++

	f.SetCellValue(sheetRaport, cell("A", row), "Orang Tua/Wali")
	f.MergeCell(sheetRaport, cell("A", row), cell("B", row))
	f.SetCellValue(sheetRaport, cell("C", row), "Wali Kelas")
	f.MergeCell(sheetRaport, cell("C", row), cell("D", row))
	f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.tengah)
	row += 4 // ruang tanda tangan

	namaOrangTua := req.NamaOrangTua
	if namaOrangTua == "" {
		namaOrangTua = garisTandaTangan
	}
	namaWali := data.WaliKelas
	if namaWali == "" {
		namaWali = garisTandaTangan
	}
	f.SetCellValue(sheetRaport, cell("A", row), namaOrangTua)
	f.MergeCell(sheetRaport, cell("A", row), cell("B", row))
	f.SetCellValue(sheetRaport, cell("C", row), namaWali)
	f.MergeCell(sheetRaport, cell("C", row), cell("D", row))
	f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.tengah)
	row += 2

	f.SetCellValue(sheetRaport, cell("A", row), "Mengetahui,")
	f.MergeCell(sheetRaport, cell("A", row), cell("D", row))
	f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.tengah)
	row++

	f.SetCellValue(sheetRaport, cell("A", row), data.Sekolah.JabatanKepala)
	f.MergeCell(sheetRaport, cell("A", row), cell("D", row))
	f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.tengah)
	row += 4

	namaKepala := data.Sekolah.NamaKepala
	if namaKepala == "" {
		namaKepala = garisTandaTangan
	}
	f.SetCellValue(sheetRaport, cell("A", row), namaKepala)
	f.MergeCell(sheetRaport, cell("A", row), cell("D", row))
	f.SetCellStyle(sheetRaport, cell("A", row), cell("D", row), st.tengah)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
