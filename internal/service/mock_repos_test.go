package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"sipesantren/backend/internal/model"
	"sipesantren/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock SantriRepository ──

type mockSantriRepo struct {
	santri map[string]*model.Santri
	urutan []string // menjaga urutan insert supaya hasil List deterministik
}

func newMockSantriRepo() *mockSantriRepo {
	return &mockSantriRepo{santri: make(map[string]*model.Santri)}
}

func (m *mockSantriRepo) Create(_ context.Context, santri *model.Santri) error {
	if santri.SantriID == "" {
		santri.SantriID = fmt.Sprintf("santri-%d", len(m.santri)+1)
	}
	m.santri[santri.SantriID] = santri
	m.urutan = append(m.urutan, santri.SantriID)
	return nil
}

func (m *mockSantriRepo) GetByID(_ context.Context, id string) (*model.Santri, error) {
	if s, ok := m.santri[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSantriRepo) List(_ context.Context, filter repository.SantriFilter) ([]model.Santri, int64, error) {
	var cocok []model.Santri
	for _, id := range m.urutan {
		s, ok := m.santri[id]
		if !ok {
			continue
		}
		if filter.Kelas != "" && s.Kelas != filter.Kelas {
			continue
		}
		if filter.Tingkatan != "" && s.Tingkatan != filter.Tingkatan {
			continue
		}
		if filter.Keyword != "" {
			kw := strings.ToLower(filter.Keyword)
			if !strings.Contains(strings.ToLower(s.Nama), kw) && !strings.Contains(strings.ToLower(s.NIS), kw) {
				continue
			}
		}
		cocok = append(cocok, *s)
	}

	total := int64(len(cocok))
	if filter.Offset >= len(cocok) {
		return nil, total, nil
	}
	cocok = cocok[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(cocok) {
		cocok = cocok[:filter.Limit]
	}
	return cocok, total, nil
}

func (m *mockSantriRepo) ListByKelas(_ context.Context, kelas, tingkatan string) ([]model.Santri, error) {
	var result []model.Santri
	for _, id := range m.urutan {
		s, ok := m.santri[id]
		if !ok {
			continue
		}
		if kelas != "" && s.Kelas != kelas {
			continue
		}
		if tingkatan != "" && s.Tingkatan != tingkatan {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSantriRepo) Update(_ context.Context, santri *model.Santri) error {
	m.santri[santri.SantriID] = santri
	return nil
}

func (m *mockSantriRepo) Delete(_ context.Context, id string) error {
	delete(m.santri, id)
	return nil
}

// ── Mock MataPelajaranRepository ──

type mockMapelRepo struct {
	mapel  map[string]*model.MataPelajaran
	urutan []string
}

func newMockMapelRepo() *mockMapelRepo {
	return &mockMapelRepo{mapel: make(map[string]*model.MataPelajaran)}
}

func (m *mockMapelRepo) Create(_ context.Context, mapel *model.MataPelajaran) error {
	if mapel.MapelID == "" {
		mapel.MapelID = "mapel-" + mapel.Nama
	}
	m.mapel[mapel.MapelID] = mapel
	m.urutan = append(m.urutan, mapel.MapelID)
	return nil
}

func (m *mockMapelRepo) GetByID(_ context.Context, id string) (*model.MataPelajaran, error) {
	if mp, ok := m.mapel[id]; ok {
		return mp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMapelRepo) List(_ context.Context, kelas string) ([]model.MataPelajaran, error) {
	var result []model.MataPelajaran
	for _, id := range m.urutan {
		mp, ok := m.mapel[id]
		if !ok {
			continue
		}
		if kelas != "" && mp.Kelas != kelas {
			continue
		}
		result = append(result, *mp)
	}
	return result, nil
}

func (m *mockMapelRepo) Update(_ context.Context, mapel *model.MataPelajaran) error {
	m.mapel[mapel.MapelID] = mapel
	return nil
}

func (m *mockMapelRepo) UpdateKategori(_ context.Context, id, kategori string) error {
	mp, ok := m.mapel[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	mp.Kategori = kategori
	return nil
}

func (m *mockMapelRepo) Delete(_ context.Context, id string) error {
	delete(m.mapel, id)
	return nil
}

// ── Mock NilaiRepository ──

type mockNilaiRepo struct {
	nilai []*model.Nilai
}

func newMockNilaiRepo() *mockNilaiRepo {
	return &mockNilaiRepo{}
}

func (m *mockNilaiRepo) Create(_ context.Context, nilai *model.Nilai) error {
	if nilai.NilaiID == "" {
		nilai.NilaiID = fmt.Sprintf("nilai-%d", len(m.nilai)+1)
	}
	m.nilai = append(m.nilai, nilai)
	return nil
}

func (m *mockNilaiRepo) GetByID(_ context.Context, id string) (*model.Nilai, error) {
	for _, n := range m.nilai {
		if n.NilaiID == id {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNilaiRepo) List(_ context.Context, filter repository.NilaiFilter) ([]model.Nilai, error) {
	var result []model.Nilai
	for _, n := range m.nilai {
		if filter.SantriID != "" && n.SantriID != filter.SantriID {
			continue
		}
		if filter.Kelas != "" && (n.Santri == nil || n.Santri.Kelas != filter.Kelas) {
			continue
		}
		if filter.JenisNilai != "" && n.JenisNilai != filter.JenisNilai {
			continue
		}
		if filter.Semester != "" && n.Semester != filter.Semester {
			continue
		}
		if filter.TahunAjaran != "" && n.TahunAjaran != filter.TahunAjaran {
			continue
		}
		result = append(result, *n)
	}
	return result, nil
}

func (m *mockNilaiRepo) ListUASBySantri(_ context.Context, santriID, semester, tahunAjaran string) ([]model.Nilai, error) {
	var result []model.Nilai
	for _, n := range m.nilai {
		if n.SantriID != santriID || n.JenisNilai != model.JenisNilaiUAS {
			continue
		}
		if n.Semester != semester || n.TahunAjaran != tahunAjaran {
			continue
		}
		result = append(result, *n)
	}
	return result, nil
}

func (m *mockNilaiRepo) Update(_ context.Context, nilai *model.Nilai) error {
	for i, n := range m.nilai {
		if n.NilaiID == nilai.NilaiID {
			m.nilai[i] = nilai
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockNilaiRepo) Delete(_ context.Context, id string) error {
	for i, n := range m.nilai {
		if n.NilaiID == id {
			m.nilai = append(m.nilai[:i], m.nilai[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock AbsensiRepository ──

type mockAbsensiRepo struct {
	absensi []*model.Absensi
}

func newMockAbsensiRepo() *mockAbsensiRepo {
	return &mockAbsensiRepo{}
}

func (m *mockAbsensiRepo) Create(_ context.Context, absensi *model.Absensi) error {
	if absensi.AbsensiID == "" {
		absensi.AbsensiID = fmt.Sprintf("absensi-%d", len(m.absensi)+1)
	}
	m.absensi = append(m.absensi, absensi)
	return nil
}

func (m *mockAbsensiRepo) GetByID(_ context.Context, id string) (*model.Absensi, error) {
	for _, a := range m.absensi {
		if a.AbsensiID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func dalamRentang(t, mulai, sampai time.Time) bool {
	return !t.Before(mulai) && !t.After(sampai)
}

func (m *mockAbsensiRepo) ListBySantriInRange(_ context.Context, santriID string, mulai, sampai time.Time) ([]model.Absensi, error) {
	var result []model.Absensi
	for _, a := range m.absensi {
		if a.SantriID == santriID && dalamRentang(a.Tanggal, mulai, sampai) {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAbsensiRepo) ListByKelasInRange(_ context.Context, kelas, tingkatan string, mulai, sampai time.Time) ([]model.Absensi, error) {
	var result []model.Absensi
	for _, a := range m.absensi {
		if !dalamRentang(a.Tanggal, mulai, sampai) {
			continue
		}
		if kelas != "" && (a.Santri == nil || a.Santri.Kelas != kelas) {
			continue
		}
		if tingkatan != "" && (a.Santri == nil || a.Santri.Tingkatan != tingkatan) {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAbsensiRepo) Update(_ context.Context, absensi *model.Absensi) error {
	for i, a := range m.absensi {
		if a.AbsensiID == absensi.AbsensiID {
			m.absensi[i] = absensi
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockAbsensiRepo) Delete(_ context.Context, id string) error {
	for i, a := range m.absensi {
		if a.AbsensiID == id {
			m.absensi = append(m.absensi[:i], m.absensi[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock EkskulRepository ──

type mockEkskulRepo struct {
	ekskul map[string]*model.Ekstrakurikuler
	nilai  []*model.NilaiEkstrakurikuler
}

func newMockEkskulRepo() *mockEkskulRepo {
	return &mockEkskulRepo{ekskul: make(map[string]*model.Ekstrakurikuler)}
}

func (m *mockEkskulRepo) Create(_ context.Context, ekskul *model.Ekstrakurikuler) error {
	if ekskul.EkskulID == "" {
		ekskul.EkskulID = "ekskul-" + ekskul.Nama
	}
	m.ekskul[ekskul.EkskulID] = ekskul
	return nil
}

func (m *mockEkskulRepo) GetByID(_ context.Context, id string) (*model.Ekstrakurikuler, error) {
	if e, ok := m.ekskul[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEkskulRepo) List(_ context.Context) ([]model.Ekstrakurikuler, error) {
	var result []model.Ekstrakurikuler
	for _, e := range m.ekskul {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEkskulRepo) Update(_ context.Context, ekskul *model.Ekstrakurikuler) error {
	m.ekskul[ekskul.EkskulID] = ekskul
	return nil
}

func (m *mockEkskulRepo) Delete(_ context.Context, id string) error {
	delete(m.ekskul, id)
	return nil
}

func (m *mockEkskulRepo) CreateNilai(_ context.Context, nilai *model.NilaiEkstrakurikuler) error {
	if nilai.NilaiEkskulID == "" {
		nilai.NilaiEkskulID = fmt.Sprintf("nilai-ekskul-%d", len(m.nilai)+1)
	}
	if nilai.Ekstrakurikuler == nil {
		nilai.Ekstrakurikuler = m.ekskul[nilai.EkskulID]
	}
	m.nilai = append(m.nilai, nilai)
	return nil
}

func (m *mockEkskulRepo) ListNilaiBySantri(_ context.Context, santriID, semester, tahunAjaran string) ([]model.NilaiEkstrakurikuler, error) {
	var result []model.NilaiEkstrakurikuler
	for _, n := range m.nilai {
		if n.SantriID == santriID && n.Semester == semester && n.TahunAjaran == tahunAjaran {
			result = append(result, *n)
		}
	}
	return result, nil
}

func (m *mockEkskulRepo) DeleteNilai(_ context.Context, id string) error {
	for i, n := range m.nilai {
		if n.NilaiEkskulID == id {
			m.nilai = append(m.nilai[:i], m.nilai[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock WaliKelasRepository ──

type mockWaliKelasRepo struct {
	wali map[string]*model.WaliKelas // kunci: kelas
}

func newMockWaliKelasRepo() *mockWaliKelasRepo {
	return &mockWaliKelasRepo{wali: make(map[string]*model.WaliKelas)}
}

func (m *mockWaliKelasRepo) GetByKelas(_ context.Context, kelas string) (*model.WaliKelas, error) {
	if w, ok := m.wali[kelas]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWaliKelasRepo) List(_ context.Context) ([]model.WaliKelas, error) {
	var result []model.WaliKelas
	for _, w := range m.wali {
		result = append(result, *w)
	}
	return result, nil
}

func (m *mockWaliKelasRepo) Upsert(_ context.Context, wali *model.WaliKelas) error {
	if wali.WaliKelasID == "" {
		wali.WaliKelasID = "wali-" + wali.Kelas
	}
	m.wali[wali.Kelas] = wali
	return nil
}

func (m *mockWaliKelasRepo) Delete(_ context.Context, kelas string) error {
	delete(m.wali, kelas)
	return nil
}

// ── Mock PengaturanRepository ──

type mockPengaturanRepo struct {
	pengaturan *model.PengaturanSekolah
}

func newMockPengaturanRepo() *mockPengaturanRepo {
	return &mockPengaturanRepo{}
}

func (m *mockPengaturanRepo) Get(_ context.Context) (*model.PengaturanSekolah, error) {
	if m.pengaturan == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.pengaturan, nil
}

func (m *mockPengaturanRepo) Upsert(_ context.Context, pengaturan *model.PengaturanSekolah) error {
	pengaturan.PengaturanID = 1
	m.pengaturan = pengaturan
	return nil
}

// ── Mock PelanggaranRepository ──

type mockPelanggaranRepo struct {
	pelanggaran []*model.Pelanggaran
}

func newMockPelanggaranRepo() *mockPelanggaranRepo {
	return &mockPelanggaranRepo{}
}

func (m *mockPelanggaranRepo) Create(_ context.Context, pelanggaran *model.Pelanggaran) error {
	if pelanggaran.PelanggaranID == "" {
		pelanggaran.PelanggaranID = fmt.Sprintf("pelanggaran-%d", len(m.pelanggaran)+1)
	}
	m.pelanggaran = append(m.pelanggaran, pelanggaran)
	return nil
}

func (m *mockPelanggaranRepo) GetByID(_ context.Context, id string) (*model.Pelanggaran, error) {
	for _, p := range m.pelanggaran {
		if p.PelanggaranID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPelanggaranRepo) List(_ context.Context, santriID string) ([]model.Pelanggaran, error) {
	var result []model.Pelanggaran
	for _, p := range m.pelanggaran {
		if santriID != "" && p.SantriID != santriID {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPelanggaranRepo) Update(_ context.Context, pelanggaran *model.Pelanggaran) error {
	for i, p := range m.pelanggaran {
		if p.PelanggaranID == pelanggaran.PelanggaranID {
			m.pelanggaran[i] = pelanggaran
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockPelanggaranRepo) Delete(_ context.Context, id string) error {
	for i, p := range m.pelanggaran {
		if p.PelanggaranID == id {
			m.pelanggaran = append(m.pelanggaran[:i], m.pelanggaran[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock KesehatanRepository ──

type mockKesehatanRepo struct {
	riwayat []*model.RiwayatKesehatan
}

func newMockKesehatanRepo() *mockKesehatanRepo {
	return &mockKesehatanRepo{}
}

func (m *mockKesehatanRepo) Create(_ context.Context, riwayat *model.RiwayatKesehatan) error {
	if riwayat.KesehatanID == "" {
		riwayat.KesehatanID = fmt.Sprintf("kesehatan-%d", len(m.riwayat)+1)
	}
	m.riwayat = append(m.riwayat, riwayat)
	return nil
}

func (m *mockKesehatanRepo) GetByID(_ context.Context, id string) (*model.RiwayatKesehatan, error) {
	for _, r := range m.riwayat {
		if r.KesehatanID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockKesehatanRepo) List(_ context.Context, santriID string) ([]model.RiwayatKesehatan, error) {
	var result []model.RiwayatKesehatan
	for _, r := range m.riwayat {
		if santriID != "" && r.SantriID != santriID {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockKesehatanRepo) Update(_ context.Context, riwayat *model.RiwayatKesehatan) error {
	for i, r := range m.riwayat {
		if r.KesehatanID == riwayat.KesehatanID {
			m.riwayat[i] = riwayat
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockKesehatanRepo) Delete(_ context.Context, id string) error {
	for i, r := range m.riwayat {
		if r.KesehatanID == id {
			m.riwayat = append(m.riwayat[:i], m.riwayat[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock KeuanganRepository ──

type mockKeuanganRepo struct {
	pembayaran  []*model.Pembayaran
	pengeluaran []*model.Pengeluaran
	donasi      []*model.Donasi
}

func newMockKeuanganRepo() *mockKeuanganRepo {
	return &mockKeuanganRepo{}
}

func (m *mockKeuanganRepo) CreatePembayaran(_ context.Context, pembayaran *model.Pembayaran) error {
	if pembayaran.PembayaranID == "" {
		pembayaran.PembayaranID = fmt.Sprintf("pembayaran-%d", len(m.pembayaran)+1)
	}
	m.pembayaran = append(m.pembayaran, pembayaran)
	return nil
}

func (m *mockKeuanganRepo) GetPembayaranByID(_ context.Context, id string) (*model.Pembayaran, error) {
	for _, p := range m.pembayaran {
		if p.PembayaranID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockKeuanganRepo) ListPembayaran(_ context.Context, filter repository.PembayaranFilter) ([]model.Pembayaran, error) {
	var result []model.Pembayaran
	for _, p := range m.pembayaran {
		if filter.SantriID != "" && p.SantriID != filter.SantriID {
			continue
		}
		if filter.Tahun != "" && p.Tahun != filter.Tahun {
			continue
		}
		if filter.Keyword != "" {
			kw := strings.ToLower(filter.Keyword)
			nama := ""
			if p.Santri != nil {
				nama = strings.ToLower(p.Santri.Nama)
			}
			if !strings.Contains(nama, kw) && !strings.Contains(strings.ToLower(p.Jenis), kw) {
				continue
			}
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockKeuanganRepo) UpdatePembayaran(_ context.Context, pembayaran *model.Pembayaran) error {
	for i, p := range m.pembayaran {
		if p.PembayaranID == pembayaran.PembayaranID {
			m.pembayaran[i] = pembayaran
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockKeuanganRepo) DeletePembayaran(_ context.Context, id string) error {
	for i, p := range m.pembayaran {
		if p.PembayaranID == id {
			m.pembayaran = append(m.pembayaran[:i], m.pembayaran[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockKeuanganRepo) CreatePengeluaran(_ context.Context, pengeluaran *model.Pengeluaran) error {
	if pengeluaran.PengeluaranID == "" {
		pengeluaran.PengeluaranID = fmt.Sprintf("pengeluaran-%d", len(m.pengeluaran)+1)
	}
	m.pengeluaran = append(m.pengeluaran, pengeluaran)
	return nil
}

func (m *mockKeuanganRepo) ListPengeluaran(_ context.Context) ([]model.Pengeluaran, error) {
	var result []model.Pengeluaran
	for _, p := range m.pengeluaran {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockKeuanganRepo) DeletePengeluaran(_ context.Context, id string) error {
	for i, p := range m.pengeluaran {
		if p.PengeluaranID == id {
			m.pengeluaran = append(m.pengeluaran[:i], m.pengeluaran[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockKeuanganRepo) CreateDonasi(_ context.Context, donasi *model.Donasi) error {
	if donasi.DonasiID == "" {
		donasi.DonasiID = fmt.Sprintf("donasi-%d", len(m.donasi)+1)
	}
	m.donasi = append(m.donasi, donasi)
	return nil
}

func (m *mockKeuanganRepo) ListDonasi(_ context.Context) ([]model.Donasi, error) {
	var result []model.Donasi
	for _, d := range m.donasi {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockKeuanganRepo) DeleteDonasi(_ context.Context, id string) error {
	for i, d := range m.donasi {
		if d.DonasiID == id {
			m.donasi = append(m.donasi[:i], m.donasi[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock LiburRepository ──

type mockLiburRepo struct {
	libur []*model.LiburAkademik
}

func newMockLiburRepo() *mockLiburRepo {
	return &mockLiburRepo{}
}

func (m *mockLiburRepo) Create(_ context.Context, libur *model.LiburAkademik) error {
	if libur.LiburID == "" {
		libur.LiburID = fmt.Sprintf("libur-%d", len(m.libur)+1)
	}
	m.libur = append(m.libur, libur)
	return nil
}

func (m *mockLiburRepo) ListInRange(_ context.Context, mulai, sampai time.Time) ([]model.LiburAkademik, error) {
	var result []model.LiburAkademik
	for _, l := range m.libur {
		if dalamRentang(l.Tanggal, mulai, sampai) {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockLiburRepo) UpsertBatch(_ context.Context, libur []model.LiburAkademik) (int, error) {
	tersimpan := 0
	for i := range libur {
		l := libur[i]
		duplikat := false
		for _, ada := range m.libur {
			if ada.Nama == l.Nama && ada.Tanggal.Equal(l.Tanggal) {
				duplikat = true
				break
			}
		}
		if duplikat {
			continue
		}
		l.LiburID = fmt.Sprintf("libur-%d", len(m.libur)+1)
		m.libur = append(m.libur, &l)
		tersimpan++
	}
	return tersimpan, nil
}

func (m *mockLiburRepo) Delete(_ context.Context, id string) error {
	for i, l := range m.libur {
		if l.LiburID == id {
			m.libur = append(m.libur[:i], m.libur[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Agregat repository untuk pengujian ──

func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:          newMockUserRepo(),
		Santri:        newMockSantriRepo(),
		MataPelajaran: newMockMapelRepo(),
		Nilai:         newMockNilaiRepo(),
		Absensi:       newMockAbsensiRepo(),
		Ekskul:        newMockEkskulRepo(),
		WaliKelas:     newMockWaliKelasRepo(),
		Pengaturan:    newMockPengaturanRepo(),
		Pelanggaran:   newMockPelanggaranRepo(),
		Kesehatan:     newMockKesehatanRepo(),
		Keuangan:      newMockKeuanganRepo(),
		Libur:         newMockLiburRepo(),
	}
}
