package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// PengaturanHandler handler HTTP pengaturan sekolah dan kalender akademik
type PengaturanHandler struct {
	pengaturanSvc service.PengaturanService
	kalenderSvc   service.KalenderService
}

// NewPengaturanHandler membuat PengaturanHandler
func NewPengaturanHandler(pengaturanSvc service.PengaturanService, kalenderSvc service.KalenderService) *PengaturanHandler {
	return &PengaturanHandler{pengaturanSvc: pengaturanSvc, kalenderSvc: kalenderSvc}
}

// Get pengaturan sekolah (dengan fallback terisi)
// GET /api/v1/pengaturan
func (h *PengaturanHandler) Get(c *gin.Context) {
	result, err := h.pengaturanSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Update memperbarui pengaturan sekolah
// PUT /api/v1/pengaturan
func (h *PengaturanHandler) Update(c *gin.Context) {
	var req dto.UpdatePengaturanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.pengaturanSvc.Update(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ── Kalender akademik ──

// ImportKalender impor libur akademik dari feed iCalendar
// POST /api/v1/pengaturan/kalender/import
func (h *PengaturanHandler) ImportKalender(c *gin.Context) {
	var req dto.ImportKalenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.kalenderSvc.ImportKalender(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKalenderFetchFail):
			response.BadRequest(c, 19001, "gagal mengambil feed kalender")
		case errors.Is(err, service.ErrKalenderParseFail):
			response.BadRequest(c, 19002, "format iCalendar tidak valid")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// ListLibur daftar libur akademik dalam rentang tanggal.
// Tanpa parameter, rentangnya tahun kalender berjalan.
// GET /api/v1/pengaturan/libur?mulai=&sampai=
func (h *PengaturanHandler) ListLibur(c *gin.Context) {
	now := time.Now()
	mulai := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	sampai := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	if v := c.Query("mulai"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, 10001, "format tanggal mulai tidak valid")
			return
		}
		mulai = t
	}
	if v := c.Query("sampai"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, 10001, "format tanggal sampai tidak valid")
			return
		}
		sampai = t
	}

	result, err := h.kalenderSvc.ListLibur(c.Request.Context(), mulai, sampai)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreateLibur menambah libur akademik manual
// POST /api/v1/pengaturan/libur
func (h *PengaturanHandler) CreateLibur(c *gin.Context) {
	var req dto.CreateLiburRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		response.BadRequest(c, 10001, "format tanggal tidak valid")
		return
	}

	result, err := h.kalenderSvc.CreateLibur(c.Request.Context(), req.Nama, tanggal)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// DeleteLibur menghapus entri libur akademik
// DELETE /api/v1/pengaturan/libur/:id
func (h *PengaturanHandler) DeleteLibur(c *gin.Context) {
	if err := h.kalenderSvc.DeleteLibur(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
