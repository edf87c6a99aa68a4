package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/model"
	"sipesantren/backend/internal/repository"
)

// ── Galat modul absensi ──

var (
	ErrAbsensiNotFound     = errors.New("absensi tidak ditemukan")
	ErrAbsensiBulanInvalid = errors.New("bulan harus di antara 1-12")
)

// AbsensiService pencatatan kehadiran dan rekap bulanan
type AbsensiService interface {
	Create(ctx context.Context, req *dto.CreateAbsensiRequest) (*dto.AbsensiResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateAbsensiRequest) (*dto.AbsensiResponse, error)
	Delete(ctx context.Context, id string) error
	// RekapKelas merekap kehadiran per santri satu kelas satu bulan,
	// berikut daftar hari libur bulan itu
	RekapKelas(ctx context.Context, kelas, tingkatan string, bulan, tahun int) (*dto.RekapAbsensiKelasResponse, error)
}

type absensiService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAbsensiService membuat AbsensiService
func NewAbsensiService(repo *repository.Repository, logger *zap.Logger) AbsensiService {
	return &absensiService{repo: repo, logger: logger}
}

func (s *absensiService) Create(ctx context.Context, req *dto.CreateAbsensiRequest) (*dto.AbsensiResponse, error) {
	if _, err := s.repo.Santri.GetByID(ctx, req.SantriID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, err
	}

	absensi := &model.Absensi{
		SantriID:   req.SantriID,
		Tanggal:    tanggal,
		Status:     req.Status,
		Keterangan: req.Keterangan,
	}
	if err := s.repo.Absensi.Create(ctx, absensi); err != nil {
		s.logger.Error("gagal menyimpan absensi", zap.Error(err))
		return nil, err
	}
	return toAbsensiResponse(absensi), nil
}

func (s *absensiService) Update(ctx context.Context, id string, req *dto.UpdateAbsensiRequest) (*dto.AbsensiResponse, error) {
	absensi, err := s.repo.Absensi.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAbsensiNotFound
		}
		return nil, err
	}

	if req.Status != nil {
		absensi.Status = *req.Status
	}
	if req.Keterangan != nil {
		absensi.Keterangan = *req.Keterangan
	}

	if err := s.repo.Absensi.Update(ctx, absensi); err != nil {
		s.logger.Error("gagal memperbarui absensi", zap.String("absensi_id", id), zap.Error(err))
		return nil, err
	}
	return toAbsensiResponse(absensi), nil
}

func (s *absensiService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Absensi.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAbsensiNotFound
		}
		return err
	}
	return s.repo.Absensi.Delete(ctx, id)
}

// RekapKelas menggabungkan daftar santri kelas itu dengan absensi bulan
// tersebut. Santri tanpa catatan tetap muncul dengan hitungan nol.
func (s *absensiService) RekapKelas(ctx context.Context, kelas, tingkatan string, bulan, tahun int) (*dto.RekapAbsensiKelasResponse, error) {
	if bulan < 1 || bulan > 12 {
		return nil, ErrAbsensiBulanInvalid
	}

	mulai := time.Date(tahun, time.Month(bulan), 1, 0, 0, 0, 0, time.UTC)
	sampai := mulai.AddDate(0, 1, -1)

	santri, err := s.repo.Santri.ListByKelas(ctx, kelas, tingkatan)
	if err != nil {
		s.logger.Error("gagal memuat santri untuk rekap", zap.Error(err))
		return nil, err
	}

	absensi, err := s.repo.Absensi.ListByKelasInRange(ctx, kelas, tingkatan, mulai, sampai)
	if err != nil {
		s.logger.Error("gagal memuat absensi untuk rekap", zap.Error(err))
		return nil, err
	}

	libur, err := s.repo.Libur.ListInRange(ctx, mulai, sampai)
	if err != nil {
		s.logger.Error("gagal memuat libur akademik untuk rekap", zap.Error(err))
		return nil, err
	}

	perSantri := make(map[string]*dto.RekapAbsensiRow, len(santri))
	rekap := make([]dto.RekapAbsensiRow, len(santri))
	for i, st := range santri {
		rekap[i] = dto.RekapAbsensiRow{SantriID: st.SantriID, NamaSantri: st.Nama}
		perSantri[st.SantriID] = &rekap[i]
	}

	for _, a := range absensi {
		row, ok := perSantri[a.SantriID]
		if !ok {
			continue
		}
		switch a.Status {
		case model.AbsensiHadir:
			row.Hadir++
		case model.AbsensiSakit:
			row.Sakit++
		case model.AbsensiIzin:
			row.Izin++
		case model.AbsensiAlpa:
			row.Alpa++
		}
	}

	liburResp := make([]dto.LiburResponse, 0, len(libur))
	for _, l := range libur {
		liburResp = append(liburResp, dto.LiburResponse{
			ID:      l.LiburID,
			Nama:    l.Nama,
			Tanggal: l.Tanggal.Format("2006-01-02"),
			Sumber:  l.Sumber,
		})
	}

	return &dto.RekapAbsensiKelasResponse{
		Kelas:     kelas,
		Tingkatan: tingkatan,
		Bulan:     bulan,
		Tahun:     tahun,
		Libur:     liburResp,
		Rekap:     rekap,
	}, nil
}

func toAbsensiResponse(absensi *model.Absensi) *dto.AbsensiResponse {
	resp := &dto.AbsensiResponse{
		ID:         absensi.AbsensiID,
		SantriID:   absensi.SantriID,
		Tanggal:    absensi.Tanggal.Format("2006-01-02"),
		Status:     absensi.Status,
		Keterangan: absensi.Keterangan,
	}
	if absensi.Santri != nil {
		resp.NamaSantri = absensi.Santri.Nama
	}
	return resp
}
