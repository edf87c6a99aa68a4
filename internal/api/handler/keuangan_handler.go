package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// KeuanganHandler handler HTTP modul keuangan
type KeuanganHandler struct {
	keuanganSvc service.KeuanganService
}

// NewKeuanganHandler membuat KeuanganHandler
func NewKeuanganHandler(keuanganSvc service.KeuanganService) *KeuanganHandler {
	return &KeuanganHandler{keuanganSvc: keuanganSvc}
}

// ── Pembayaran ──

// CreatePembayaran mencatat pembayaran santri
// POST /api/v1/keuangan/pembayaran
func (h *KeuanganHandler) CreatePembayaran(c *gin.Context) {
	var req dto.CreatePembayaranRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.keuanganSvc.CreatePembayaran(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSantriNotFound) {
			response.NotFound(c, 13001, "santri tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListPembayaran riwayat pembayaran dengan filter
// GET /api/v1/keuangan/pembayaran?santri_id=&keyword=&tahun=
func (h *KeuanganHandler) ListPembayaran(c *gin.Context) {
	result, err := h.keuanganSvc.ListPembayaran(c.Request.Context(),
		c.Query("santri_id"), c.Query("keyword"), c.Query("tahun"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// DeletePembayaran menghapus catatan pembayaran
// DELETE /api/v1/keuangan/pembayaran/:id
func (h *KeuanganHandler) DeletePembayaran(c *gin.Context) {
	if err := h.keuanganSvc.DeletePembayaran(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPembayaranNotFound) {
			response.NotFound(c, 18001, "pembayaran tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ── Pengeluaran ──

// CreatePengeluaran mencatat pengeluaran
// POST /api/v1/keuangan/pengeluaran
func (h *KeuanganHandler) CreatePengeluaran(c *gin.Context) {
	var req dto.CreatePengeluaranRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.keuanganSvc.CreatePengeluaran(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListPengeluaran daftar pengeluaran
// GET /api/v1/keuangan/pengeluaran
func (h *KeuanganHandler) ListPengeluaran(c *gin.Context) {
	result, err := h.keuanganSvc.ListPengeluaran(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// DeletePengeluaran menghapus catatan pengeluaran
// DELETE /api/v1/keuangan/pengeluaran/:id
func (h *KeuanganHandler) DeletePengeluaran(c *gin.Context) {
	if err := h.keuanganSvc.DeletePengeluaran(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ── Donasi ──

// CreateDonasi mencatat donasi masuk
// POST /api/v1/keuangan/donasi
func (h *KeuanganHandler) CreateDonasi(c *gin.Context) {
	var req dto.CreateDonasiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.keuanganSvc.CreateDonasi(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListDonasi daftar donasi
// GET /api/v1/keuangan/donasi
func (h *KeuanganHandler) ListDonasi(c *gin.Context) {
	result, err := h.keuanganSvc.ListDonasi(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// DeleteDonasi menghapus catatan donasi
// DELETE /api/v1/keuangan/donasi/:id
func (h *KeuanganHandler) DeleteDonasi(c *gin.Context) {
	if err := h.keuanganSvc.DeleteDonasi(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
