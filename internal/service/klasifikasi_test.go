package service

import (
	"testing"

	"sipesantren/backend/internal/model"
)

// ── Pengujian NilaiKePredikat ──

func TestNilaiKePredikat_BatasBand(t *testing.T) {
	kasus := []struct {
		nilai    float64
		predikat string
	}{
		{100, "A"},
		{90, "A"}, // batas bawah band A inklusif
		{89.99, "B"},
		{80, "B"},
		{79.5, "C"},
		{70, "C"},
		{69, "D"},
		{60, "D"},
		{59.99, "E"},
		{30, "E"},
		{0, "E"},
	}

	for _, k := range kasus {
		if got := NilaiKePredikat(k.nilai); got != k.predikat {
			t.Errorf("NilaiKePredikat(%v): diharapkan %q, dapat %q", k.nilai, k.predikat, got)
		}
	}
}

// ── Pengujian Klasifikasikan ──

func TestKlasifikasikan_PartisiLengkap(t *testing.T) {
	mapel := []model.MataPelajaran{
		{Nama: "Fiqih", Kategori: model.KategoriKepesantrenan},
		{Nama: "Tilawah", Kategori: model.KategoriKekhususan},
		{Nama: "Matematika", Kategori: model.KategoriUmum},
	}
	nilai := []model.Nilai{
		{MataPelajaran: "Fiqih", Nilai: 85},
		{MataPelajaran: "Matematika", Nilai: 78},
		{MataPelajaran: "Tilawah", Nilai: 90},
		{MataPelajaran: "Biologi", Nilai: 70}, // tidak terdaftar di tabel mapel
	}

	hasil := Klasifikasikan(nilai, NewLookupKlasifikator(mapel))

	if len(hasil.Kepesantrenan) != 1 || hasil.Kepesantrenan[0].MataPelajaran != "Fiqih" {
		t.Errorf("bucket kepesantrenan salah: %+v", hasil.Kepesantrenan)
	}
	if len(hasil.Kekhususan) != 1 || hasil.Kekhususan[0].MataPelajaran != "Tilawah" {
		t.Errorf("bucket kekhususan salah: %+v", hasil.Kekhususan)
	}
	// mapel tidak dikenal jatuh ke umum, bukan hilang
	if len(hasil.Umum) != 2 {
		t.Fatalf("bucket umum diharapkan 2 entri, dapat %d", len(hasil.Umum))
	}

	total := len(hasil.Kepesantrenan) + len(hasil.Kekhususan) + len(hasil.Umum)
	if total != len(nilai) {
		t.Errorf("partisi harus total: input %d, output %d", len(nilai), total)
	}
}

func TestKlasifikasikan_UrutanDipertahankan(t *testing.T) {
	mapel := []model.MataPelajaran{
		{Nama: "Nahwu", Kategori: model.KategoriKepesantrenan},
		{Nama: "Shorof", Kategori: model.KategoriKepesantrenan},
		{Nama: "Hadits", Kategori: model.KategoriKepesantrenan},
	}
	nilai := []model.Nilai{
		{MataPelajaran: "Shorof"},
		{MataPelajaran: "Hadits"},
		{MataPelajaran: "Nahwu"},
	}

	hasil := Klasifikasikan(nilai, NewLookupKlasifikator(mapel))

	urutan := []string{"Shorof", "Hadits", "Nahwu"}
	if len(hasil.Kepesantrenan) != len(urutan) {
		t.Fatalf("diharapkan %d entri, dapat %d", len(urutan), len(hasil.Kepesantrenan))
	}
	for i, nama := range urutan {
		if hasil.Kepesantrenan[i].MataPelajaran != nama {
			t.Errorf("urutan indeks %d: diharapkan %q, dapat %q", i, nama, hasil.Kepesantrenan[i].MataPelajaran)
		}
	}
}

func TestKlasifikasikan_KosongAman(t *testing.T) {
	hasil := Klasifikasikan(nil, NewLookupKlasifikator(nil))
	if len(hasil.Kepesantrenan)+len(hasil.Kekhususan)+len(hasil.Umum) != 0 {
		t.Errorf("input kosong harus menghasilkan bucket kosong: %+v", hasil)
	}
}

// ── Pengujian LookupKlasifikator ──

func TestLookupKlasifikator_KategoriKosong(t *testing.T) {
	k := NewLookupKlasifikator([]model.MataPelajaran{
		{Nama: "Bahasa Indonesia", Kategori: ""},
	})

	if got := k.Kategori("Bahasa Indonesia"); got != "" {
		t.Errorf("mapel tanpa kategori: diharapkan string kosong, dapat %q", got)
	}
	if got := k.Kategori("Tidak Ada"); got != "" {
		t.Errorf("mapel tidak dikenal: diharapkan string kosong, dapat %q", got)
	}
}

// ── Pengujian LegacyKlasifikator ──

func TestLegacyKlasifikator_SubstringDuaArah(t *testing.T) {
	k := LegacyKlasifikator{}

	kasus := []struct {
		nama     string
		kategori string
	}{
		{"Fiqih", model.KategoriKepesantrenan},
		{"FIQIH", model.KategoriKepesantrenan},                // tanpa memperhatikan kapitalisasi
		{"Bahasa Arab Lanjutan", model.KategoriKepesantrenan}, // nama mengandung entri daftar
		{"Tahfidz", model.KategoriKepesantrenan},
		{"Kitab", model.KategoriKekhususan}, // entri daftar mengandung nama
		{"Kitab Kuning", model.KategoriKekhususan},
		{"Muhadharah", model.KategoriKekhususan},
		{"Matematika", ""},
		{"IPA", ""},
		{"", ""},   // nama kosong tidak boleh cocok dengan apa pun
		{"  ", ""}, // begitu juga nama spasi saja
	}

	for _, c := range kasus {
		if got := k.Kategori(c.nama); got != c.kategori {
			t.Errorf("Kategori(%q): diharapkan %q, dapat %q", c.nama, c.kategori, got)
		}
	}
}
