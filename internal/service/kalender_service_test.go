package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/model"
	"sipesantren/backend/internal/repository"
)

// ── Penyiapan pengujian ──

func setupTestKalenderService() (KalenderService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewKalenderService(repo, zap.NewNop())
	return svc, repo
}

// buatICS merangkai konten iCalendar dari baris-baris event
func buatICS(events ...string) string {
	baris := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Kalender Akademik//ID",
	}
	baris = append(baris, events...)
	baris = append(baris, "END:VCALENDAR", "")
	return strings.Join(baris, "\r\n")
}

// ── parseLiburICS ──

func TestParseLiburICS_EventSatuHari(t *testing.T) {
	konten := buatICS(
		"BEGIN:VEVENT",
		"UID:evt-1",
		"DTSTAMP:20250101T000000Z",
		"SUMMARY:Hari Santri",
		"DTSTART;VALUE=DATE:20251022",
		"DTEND;VALUE=DATE:20251023",
		"END:VEVENT",
	)

	libur, err := parseLiburICS(strings.NewReader(konten))
	if err != nil {
		t.Fatalf("parse harus sukses: %v", err)
	}
	if len(libur) != 1 {
		t.Fatalf("diharapkan 1 entri, dapat %d", len(libur))
	}
	if libur[0].Nama != "Hari Santri" || libur[0].Sumber != model.LiburSumberICS {
		t.Errorf("entri libur salah: %+v", libur[0])
	}
	if !libur[0].Tanggal.Equal(time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("tanggal salah: %v", libur[0].Tanggal)
	}
}

func TestParseLiburICS_EventMultiHari(t *testing.T) {
	// DTEND eksklusif: 16-19 Maret berarti 3 hari libur
	konten := buatICS(
		"BEGIN:VEVENT",
		"UID:evt-2",
		"DTSTAMP:20250101T000000Z",
		"SUMMARY:Libur Awal Ramadhan",
		"DTSTART;VALUE=DATE:20250316",
		"DTEND;VALUE=DATE:20250319",
		"END:VEVENT",
	)

	libur, err := parseLiburICS(strings.NewReader(konten))
	if err != nil {
		t.Fatalf("parse harus sukses: %v", err)
	}
	if len(libur) != 3 {
		t.Fatalf("diharapkan 3 entri, dapat %d", len(libur))
	}
	for i, l := range libur {
		mau := time.Date(2025, 3, 16+i, 0, 0, 0, 0, time.UTC)
		if !l.Tanggal.Equal(mau) {
			t.Errorf("entri %d: diharapkan %v, dapat %v", i, mau, l.Tanggal)
		}
		if l.Nama != "Libur Awal Ramadhan" {
			t.Errorf("entri %d: nama salah %q", i, l.Nama)
		}
	}
}

func TestParseLiburICS_TanpaSummaryDilewati(t *testing.T) {
	konten := buatICS(
		"BEGIN:VEVENT",
		"UID:evt-3",
		"DTSTAMP:20250101T000000Z",
		"DTSTART;VALUE=DATE:20250317",
		"DTEND;VALUE=DATE:20250318",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:evt-4",
		"DTSTAMP:20250101T000000Z",
		"SUMMARY:Isra Mikraj",
		"DTSTART;VALUE=DATE:20250127",
		"DTEND;VALUE=DATE:20250128",
		"END:VEVENT",
	)

	libur, err := parseLiburICS(strings.NewReader(konten))
	if err != nil {
		t.Fatalf("parse harus sukses: %v", err)
	}
	if len(libur) != 1 || libur[0].Nama != "Isra Mikraj" {
		t.Errorf("event tanpa SUMMARY harus dilewati: %+v", libur)
	}
}

func TestParseLiburICS_EventBerjamJadiSatuHari(t *testing.T) {
	// DTSTART/DTEND dengan komponen jam di hari yang sama tetap
	// menghasilkan satu hari libur, bukan nol
	konten := buatICS(
		"BEGIN:VEVENT",
		"UID:evt-6",
		"DTSTAMP:20250101T000000Z",
		"SUMMARY:Peringatan Maulid",
		"DTSTART:20250905T080000Z",
		"DTEND:20250905T170000Z",
		"END:VEVENT",
	)

	libur, err := parseLiburICS(strings.NewReader(konten))
	if err != nil {
		t.Fatalf("parse harus sukses: %v", err)
	}
	if len(libur) != 1 {
		t.Fatalf("event berjam satu hari diharapkan 1 entri, dapat %d", len(libur))
	}
	if !libur[0].Tanggal.Equal(time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("tanggal salah: %v", libur[0].Tanggal)
	}
}

func TestParseLiburICS_TanpaDtendJadiSatuHari(t *testing.T) {
	konten := buatICS(
		"BEGIN:VEVENT",
		"UID:evt-5",
		"DTSTAMP:20250101T000000Z",
		"SUMMARY:Maulid Nabi",
		"DTSTART;VALUE=DATE:20250905",
		"END:VEVENT",
	)

	libur, err := parseLiburICS(strings.NewReader(konten))
	if err != nil {
		t.Fatalf("parse harus sukses: %v", err)
	}
	if len(libur) != 1 {
		t.Fatalf("DTEND hilang berarti event satu hari, dapat %d entri", len(libur))
	}
}

// ── ImportKalender ──

func TestKalenderService_ImportKalender_Success(t *testing.T) {
	svc, repo := setupTestKalenderService()

	konten := buatICS(
		"BEGIN:VEVENT",
		"UID:evt-1",
		"DTSTAMP:20250101T000000Z",
		"SUMMARY:Hari Santri",
		"DTSTART;VALUE=DATE:20251022",
		"DTEND;VALUE=DATE:20251023",
		"END:VEVENT",
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(konten))
	}))
	defer srv.Close()

	result, err := svc.ImportKalender(context.Background(), &dto.ImportKalenderRequest{URL: srv.URL})
	if err != nil {
		t.Fatalf("ImportKalender harus sukses: %v", err)
	}
	if result.TotalEvent != 1 || result.TotalTersimpan != 1 {
		t.Errorf("hasil impor salah: %+v", result)
	}

	// impor ulang feed yang sama tidak menggandakan entri
	result, err = svc.ImportKalender(context.Background(), &dto.ImportKalenderRequest{URL: srv.URL})
	if err != nil {
		t.Fatalf("impor ulang harus sukses: %v", err)
	}
	if result.TotalEvent != 1 || result.TotalTersimpan != 0 {
		t.Errorf("impor ulang tidak boleh menggandakan: %+v", result)
	}

	libur, _ := repo.Libur.ListInRange(context.Background(),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	if len(libur) != 1 {
		t.Errorf("diharapkan 1 entri tersimpan, dapat %d", len(libur))
	}
}

func TestKalenderService_ImportKalender_FetchFail(t *testing.T) {
	svc, _ := setupTestKalenderService()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := svc.ImportKalender(context.Background(), &dto.ImportKalenderRequest{URL: srv.URL})
	if !errors.Is(err, ErrKalenderFetchFail) {
		t.Errorf("diharapkan ErrKalenderFetchFail, dapat: %v", err)
	}
}

func TestKalenderService_ImportKalender_ParseFail(t *testing.T) {
	svc, _ := setupTestKalenderService()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ini bukan konten iCalendar"))
	}))
	defer srv.Close()

	_, err := svc.ImportKalender(context.Background(), &dto.ImportKalenderRequest{URL: srv.URL})
	if !errors.Is(err, ErrKalenderParseFail) {
		t.Errorf("diharapkan ErrKalenderParseFail, dapat: %v", err)
	}
}

// ── Libur manual ──

func TestKalenderService_CreateLibur_SumberManual(t *testing.T) {
	svc, _ := setupTestKalenderService()

	result, err := svc.CreateLibur(context.Background(), "Haflah Akhirussanah",
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("CreateLibur harus sukses: %v", err)
	}
	if result.Sumber != model.LiburSumberManual {
		t.Errorf("sumber diharapkan manual, dapat %q", result.Sumber)
	}
	if result.Tanggal != "2025-06-15" {
		t.Errorf("tanggal salah: %q", result.Tanggal)
	}
}

func TestKalenderService_ListLibur_DalamRentang(t *testing.T) {
	svc, repo := setupTestKalenderService()
	ctx := context.Background()

	_ = repo.Libur.Create(ctx, &model.LiburAkademik{
		Nama: "HUT RI", Tanggal: time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC), Sumber: model.LiburSumberManual,
	})
	_ = repo.Libur.Create(ctx, &model.LiburAkademik{
		Nama: "Tahun Baru", Tanggal: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Sumber: model.LiburSumberManual,
	})

	result, err := svc.ListLibur(ctx,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ListLibur harus sukses: %v", err)
	}
	if len(result) != 1 || result[0].Nama != "HUT RI" {
		t.Errorf("filter rentang salah: %+v", result)
	}
}
