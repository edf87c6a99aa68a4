package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/model"
	"sipesantren/backend/internal/repository"
)

// ── Impor kalender akademik ──
//
// Feed iCalendar (RFC 5545) kalender akademik diubah menjadi entri
// libur_akademik per tanggal:
//   - DTSTART menentukan tanggal mulai, DTEND (eksklusif untuk event
//     sepanjang hari) menentukan rentang; event multi-hari dipecah jadi
//     satu entri per hari
//   - SUMMARY menjadi nama libur; event tanpa SUMMARY dilewati
//   - entri duplikat (tanggal + nama sama) tidak digandakan saat impor ulang

const (
	icsMaxFileSize  = 5 * 1024 * 1024 // 5MB
	icsFetchTimeout = 30 * time.Second
	// batas pemecahan satu event multi-hari, menahan feed rusak
	icsMaxHariPerEvent = 60
)

var (
	ErrKalenderFetchFail = errors.New("gagal mengambil feed kalender")
	ErrKalenderParseFail = errors.New("format iCalendar tidak valid")
)

// KalenderService impor kalender akademik dan pengelolaan libur manual
type KalenderService interface {
	ImportKalender(ctx context.Context, req *dto.ImportKalenderRequest) (*dto.ImportKalenderResponse, error)
	ListLibur(ctx context.Context, mulai, sampai time.Time) ([]dto.LiburResponse, error)
	CreateLibur(ctx context.Context, nama string, tanggal time.Time) (*dto.LiburResponse, error)
	DeleteLibur(ctx context.Context, id string) error
}

type kalenderService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewKalenderService membuat KalenderService
func NewKalenderService(repo *repository.Repository, logger *zap.Logger) KalenderService {
	return &kalenderService{repo: repo, logger: logger}
}

func (s *kalenderService) ImportKalender(ctx context.Context, req *dto.ImportKalenderRequest) (*dto.ImportKalenderResponse, error) {
	body, err := fetchICS(ctx, req.URL)
	if err != nil {
		s.logger.Warn("gagal mengambil feed kalender", zap.String("url", req.URL), zap.Error(err))
		return nil, ErrKalenderFetchFail
	}
	defer body.Close()

	libur, err := parseLiburICS(body)
	if err != nil {
		s.logger.Warn("gagal mem-parse feed kalender", zap.String("url", req.URL), zap.Error(err))
		return nil, ErrKalenderParseFail
	}

	tersimpan, err := s.repo.Libur.UpsertBatch(ctx, libur)
	if err != nil {
		s.logger.Error("gagal menyimpan hasil impor kalender", zap.Error(err))
		return nil, err
	}

	s.logger.Info("impor kalender akademik selesai",
		zap.Int("total_event", len(libur)),
		zap.Int("total_tersimpan", tersimpan),
	)
	return &dto.ImportKalenderResponse{
		TotalEvent:     len(libur),
		TotalTersimpan: tersimpan,
	}, nil
}

func (s *kalenderService) ListLibur(ctx context.Context, mulai, sampai time.Time) ([]dto.LiburResponse, error) {
	libur, err := s.repo.Libur.ListInRange(ctx, mulai, sampai)
	if err != nil {
		s.logger.Error("gagal memuat daftar libur", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.LiburResponse, 0, len(libur))
	for _, l := range libur {
		resp = append(resp, toLiburResponse(&l))
	}
	return resp, nil
}

func (s *kalenderService) CreateLibur(ctx context.Context, nama string, tanggal time.Time) (*dto.LiburResponse, error) {
	libur := &model.LiburAkademik{
		Nama:    nama,
		Tanggal: tanggal,
		Sumber:  model.LiburSumberManual,
	}
	if err := s.repo.Libur.Create(ctx, libur); err != nil {
		s.logger.Error("gagal menyimpan libur", zap.Error(err))
		return nil, err
	}

	resp := toLiburResponse(libur)
	return &resp, nil
}

func (s *kalenderService) DeleteLibur(ctx context.Context, id string) error {
	return s.repo.Libur.Delete(ctx, id)
}

// ── Pengambilan & parsing ICS ──

// fetchICS mengambil konten ICS dari URL, dengan batas ukuran respons
func fetchICS(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	// webcal:// → https://
	u := rawURL
	if strings.HasPrefix(u, "webcal://") {
		u = "https://" + strings.TrimPrefix(u, "webcal://")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: icsFetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.LimitReader(resp.Body, icsMaxFileSize),
		Closer: resp.Body,
	}, nil
}

// parseLiburICS mengubah konten ICS menjadi entri libur per tanggal
func parseLiburICS(reader io.Reader) ([]model.LiburAkademik, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, err
	}

	var libur []model.LiburAkademik
	for _, evt := range cal.Events() {
		summary := evt.GetProperty(ics.ComponentPropertySummary)
		if summary == nil || strings.TrimSpace(summary.Value) == "" {
			continue
		}
		nama := strings.TrimSpace(summary.Value)

		mulai, err := parseTanggalICS(evt, ics.ComponentPropertyDtStart)
		if err != nil {
			continue
		}
		sampai, err := parseTanggalICS(evt, ics.ComponentPropertyDtEnd)
		if err != nil {
			sampai = mulai.AddDate(0, 0, 1)
		}
		// event berjam (DTSTART/DTEND di hari yang sama) tetap satu hari libur
		if !sampai.After(mulai) {
			sampai = mulai.AddDate(0, 0, 1)
		}

		// DTEND event sepanjang hari bersifat eksklusif
		hari := 0
		for t := mulai; t.Before(sampai) && hari < icsMaxHariPerEvent; t = t.AddDate(0, 0, 1) {
			libur = append(libur, model.LiburAkademik{
				Nama:    nama,
				Tanggal: t,
				Sumber:  model.LiburSumberICS,
			})
			hari++
		}
	}
	return libur, nil
}

// parseTanggalICS membaca properti tanggal VEVENT dan memotongnya ke
// tengah malam UTC
func parseTanggalICS(evt *ics.VEvent, propName ics.ComponentProperty) (time.Time, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, fmt.Errorf("properti %s tidak ada", propName)
	}

	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}
	for _, layout := range formats {
		if t, err := time.Parse(layout, prop.Value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("tanggal %q tidak dikenali", prop.Value)
}

func toLiburResponse(libur *model.LiburAkademik) dto.LiburResponse {
	return dto.LiburResponse{
		ID:      libur.LiburID,
		Nama:    libur.Nama,
		Tanggal: libur.Tanggal.Format("2006-01-02"),
		Sumber:  libur.Sumber,
	}
}
