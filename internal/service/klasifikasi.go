package service

import (
	"strings"

	"sipesantren/backend/internal/model"
)

// ── Klasifikasi kategori nilai raport ──
//
// Catatan desain:
//   - Dulu ada dua jalur klasifikasi yang bisa saling bertentangan:
//     lookup kategori dari tabel mata_pelajaran vs. pencocokan substring
//     terhadap daftar nama hardcoded di jalur preview lama. Keduanya kini
//     disatukan di balik satu interface; jalur lookup adalah sumber
//     kebenaran, jalur legacy dipertahankan hanya untuk kompatibilitas
//     preview lama dan diberi nama yang jelas.
//   - Partisi bersifat murni: urutan input dipertahankan, setiap nilai
//     masuk tepat satu bucket.

// HasilKlasifikasi hasil partisi nilai ke tiga bucket kategori
type HasilKlasifikasi struct {
	Kepesantrenan []model.Nilai
	Kekhususan    []model.Nilai
	Umum          []model.Nilai
}

// Klasifikator memetakan nama mata pelajaran ke kategori raport
type Klasifikator interface {
	Kategori(namaMapel string) string
}

// Klasifikasikan mempartisi nilai ke bucket kategori sesuai klasifikator.
// Kategori selain kepesantrenan/kekhususan (termasuk tidak dikenal) jatuh
// ke bucket umum.
func Klasifikasikan(nilai []model.Nilai, k Klasifikator) HasilKlasifikasi {
	var hasil HasilKlasifikasi
	for _, n := range nilai {
		switch k.Kategori(n.MataPelajaran) {
		case model.KategoriKepesantrenan:
			hasil.Kepesantrenan = append(hasil.Kepesantrenan, n)
		case model.KategoriKekhususan:
			hasil.Kekhususan = append(hasil.Kekhususan, n)
		default:
			hasil.Umum = append(hasil.Umum, n)
		}
	}
	return hasil
}

// ── Klasifikator lookup (sumber kebenaran) ──

// LookupKlasifikator klasifikasi berdasarkan kolom kategori tabel
// mata_pelajaran, dicocokkan lewat nama
type LookupKlasifikator struct {
	kategori map[string]string // nama mapel → kategori
}

// NewLookupKlasifikator membangun peta nama→kategori dari daftar mapel
func NewLookupKlasifikator(mapel []model.MataPelajaran) *LookupKlasifikator {
	m := make(map[string]string, len(mapel))
	for _, mp := range mapel {
		m[mp.Nama] = mp.Kategori
	}
	return &LookupKlasifikator{kategori: m}
}

// Kategori mengembalikan kategori mapel; string kosong jika tidak dikenal
func (k *LookupKlasifikator) Kategori(namaMapel string) string {
	return k.kategori[namaMapel]
}

// ── Klasifikator legacy (jalur preview lama) ──

// Daftar nama mapel hardcoded jalur preview lama. Bisa tidak sinkron
// dengan tabel mata_pelajaran kalau mapel diganti nama.
var (
	legacyKepesantrenan = []string{
		"Al-Qur'an", "Tahfidz", "Hadits", "Fiqih", "Aqidah Akhlak",
		"Bahasa Arab", "Nahwu", "Shorof", "Sejarah Kebudayaan Islam",
	}
	legacyKekhususan = []string{
		"Kitab Kuning", "Tilawah", "Qiraah", "Khat", "Muhadharah",
	}
)

// LegacyKlasifikator klasifikasi dengan pencocokan substring dua arah
// (case-insensitive) terhadap daftar nama hardcoded
type LegacyKlasifikator struct{}

// Kategori mencocokkan nama mapel terhadap daftar legacy
func (LegacyKlasifikator) Kategori(namaMapel string) string {
	if cocokDaftar(namaMapel, legacyKepesantrenan) {
		return model.KategoriKepesantrenan
	}
	if cocokDaftar(namaMapel, legacyKekhususan) {
		return model.KategoriKekhususan
	}
	return ""
}

// cocokDaftar true jika nama mengandung salah satu entri daftar atau
// sebaliknya (substring dua arah, tanpa memperhatikan kapitalisasi)
func cocokDaftar(nama string, daftar []string) bool {
	n := strings.ToLower(strings.TrimSpace(nama))
	if n == "" {
		return false
	}
	for _, d := range daftar {
		dl := strings.ToLower(d)
		if strings.Contains(n, dl) || strings.Contains(dl, n) {
			return true
		}
	}
	return false
}

// ── Predikat ──

// NilaiKePredikat mengonversi nilai numerik 0-100 ke predikat huruf.
// Batas band inklusif di sisi atas: 90→A, 80→B, 70→C, 60→D, sisanya E.
// Nilai tepat 0 tetap menghasilkan "E" di sini; perlakuan khusus
// "0 berarti belum ada nilai" ditangani renderer baris tabel.
func NilaiKePredikat(nilai float64) string {
	switch {
	case nilai >= 90:
		return "A"
	case nilai >= 80:
		return "B"
	case nilai >= 70:
		return "C"
	case nilai >= 60:
		return "D"
	default:
		return "E"
	}
}
