//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sipesantren/backend/internal/model"
	"sipesantren/backend/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=sipesantren password=sipesantren_password dbname=sipesantren_test sslmode=disable TimeZone=Asia/Jakarta"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tidak bisa terhubung ke database pengujian: %v\n", err)
		os.Exit(1)
	}

	// migrasi otomatis skema tabel pengujian
	err = testDB.AutoMigrate(
		&model.User{},
		&model.Santri{},
		&model.MataPelajaran{},
		&model.Nilai{},
		&model.Absensi{},
		&model.Ekstrakurikuler{},
		&model.NilaiEkstrakurikuler{},
		&model.WaliKelas{},
		&model.PengaturanSekolah{},
		&model.Pelanggaran{},
		&model.RiwayatKesehatan{},
		&model.Pembayaran{},
		&model.Pengeluaran{},
		&model.Donasi{},
		&model.LiburAkademik{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate gagal: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestSantri membuat satu santri pengujian dan mengembalikan fungsi pembersih
func setupTestSantri(t *testing.T) (*model.Santri, func()) {
	t.Helper()
	ctx := context.Background()

	santri := &model.Santri{
		Nama:      fmt.Sprintf("Santri Uji %d", time.Now().UnixNano()),
		NIS:       fmt.Sprintf("NIS%d", time.Now().UnixNano()),
		Kelas:     "1A",
		Tingkatan: "Wustha",
	}
	if err := testDB.WithContext(ctx).Create(santri).Error; err != nil {
		t.Fatalf("membuat santri gagal: %v", err)
	}

	cleanup := func() {
		testDB.Unscoped().Where("santri_id = ?", santri.SantriID).Delete(&model.Santri{})
	}
	return santri, cleanup
}

// ═══════════════════════════════════════════════════════════
// Test: Santri Soft Delete
// ═══════════════════════════════════════════════════════════

func TestSantri_SoftDelete(t *testing.T) {
	santri, cleanup := setupTestSantri(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	if err := repo.Santri.Delete(ctx, santri.SantriID); err != nil {
		t.Fatalf("soft delete gagal: %v", err)
	}

	// kueri biasa tidak boleh menemukan
	if _, err := repo.Santri.GetByID(ctx, santri.SantriID); err == nil {
		t.Fatal("setelah soft delete santri tidak boleh ditemukan")
	}

	// kueri Unscoped masih menemukan
	var found model.Santri
	if err := testDB.Unscoped().Where("santri_id = ?", santri.SantriID).First(&found).Error; err != nil {
		t.Fatalf("kueri Unscoped harus menemukan: %v", err)
	}
	if found.DeletedAt.Time.IsZero() {
		t.Error("DeletedAt seharusnya sudah terisi")
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Santri List Filter & Pagination
// ═══════════════════════════════════════════════════════════

func TestSantri_List_FilterKelas(t *testing.T) {
	santri, cleanup := setupTestSantri(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	list, total, err := repo.Santri.List(ctx, repository.SantriFilter{
		Keyword: santri.NIS,
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("List gagal: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Errorf("diharapkan 1 santri, dapat total=%d len=%d", total, len(list))
	}
	if list[0].SantriID != santri.SantriID {
		t.Errorf("ID tidak cocok: %s vs %s", list[0].SantriID, santri.SantriID)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Nilai UAS Query
// ═══════════════════════════════════════════════════════════

func TestNilai_ListUASBySantri(t *testing.T) {
	santri, cleanup := setupTestSantri(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	nilaiUAS := &model.Nilai{
		SantriID:      santri.SantriID,
		MataPelajaran: "Fiqih",
		JenisNilai:    model.JenisNilaiUAS,
		Semester:      "Ganjil",
		TahunAjaran:   "2024/2025",
		Nilai:         85,
	}
	nilaiUTS := &model.Nilai{
		SantriID:      santri.SantriID,
		MataPelajaran: "Fiqih",
		JenisNilai:    "UTS",
		Semester:      "Ganjil",
		TahunAjaran:   "2024/2025",
		Nilai:         70,
	}
	for _, n := range []*model.Nilai{nilaiUAS, nilaiUTS} {
		if err := repo.Nilai.Create(ctx, n); err != nil {
			t.Fatalf("membuat nilai gagal: %v", err)
		}
	}
	defer testDB.Unscoped().Where("santri_id = ?", santri.SantriID).Delete(&model.Nilai{})

	list, err := repo.Nilai.ListUASBySantri(ctx, santri.SantriID, "Ganjil", "2024/2025")
	if err != nil {
		t.Fatalf("ListUASBySantri gagal: %v", err)
	}
	if len(list) != 1 || list[0].JenisNilai != model.JenisNilaiUAS {
		t.Errorf("hanya nilai UAS yang boleh ikut, dapat: %+v", list)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Libur UpsertBatch Dedup
// ═══════════════════════════════════════════════════════════

func TestLibur_UpsertBatch_Dedup(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	nama := fmt.Sprintf("Libur Uji %d", time.Now().UnixNano())
	batch := []model.LiburAkademik{{
		Nama:    nama,
		Tanggal: time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC),
		Sumber:  model.LiburSumberICS,
	}}
	defer testDB.Unscoped().Where("nama = ?", nama).Delete(&model.LiburAkademik{})

	inserted, err := repo.Libur.UpsertBatch(ctx, batch)
	if err != nil {
		t.Fatalf("UpsertBatch gagal: %v", err)
	}
	if inserted != 1 {
		t.Errorf("diharapkan 1 entri baru, dapat %d", inserted)
	}

	// batch yang sama tidak menggandakan entri
	inserted, err = repo.Libur.UpsertBatch(ctx, batch)
	if err != nil {
		t.Fatalf("UpsertBatch ulang gagal: %v", err)
	}
	if inserted != 0 {
		t.Errorf("batch ulang tidak boleh menambah entri, dapat %d", inserted)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Pengaturan Singleton Upsert
// ═══════════════════════════════════════════════════════════

func TestPengaturan_Upsert_Singleton(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	defer testDB.Unscoped().Where("pengaturan_id = ?", 1).Delete(&model.PengaturanSekolah{})

	if err := repo.Pengaturan.Upsert(ctx, &model.PengaturanSekolah{
		NamaSekolah: "Pondok Pesantren Uji",
	}); err != nil {
		t.Fatalf("Upsert pertama gagal: %v", err)
	}

	// upsert kedua menimpa baris yang sama, bukan menambah baris baru
	if err := repo.Pengaturan.Upsert(ctx, &model.PengaturanSekolah{
		NamaSekolah: "Pondok Pesantren Uji Baru",
	}); err != nil {
		t.Fatalf("Upsert kedua gagal: %v", err)
	}

	var count int64
	testDB.Model(&model.PengaturanSekolah{}).Count(&count)
	if count != 1 {
		t.Errorf("pengaturan harus satu baris, dapat %d", count)
	}

	got, err := repo.Pengaturan.Get(ctx)
	if err != nil {
		t.Fatalf("Get gagal: %v", err)
	}
	if got.NamaSekolah != "Pondok Pesantren Uji Baru" {
		t.Errorf("nama sekolah tidak terbarui: %q", got.NamaSekolah)
	}
}
