package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// AbsensiHandler handler HTTP modul absensi
type AbsensiHandler struct {
	absensiSvc service.AbsensiService
}

// NewAbsensiHandler membuat AbsensiHandler
func NewAbsensiHandler(absensiSvc service.AbsensiService) *AbsensiHandler {
	return &AbsensiHandler{absensiSvc: absensiSvc}
}

// Create mencatat kehadiran
// POST /api/v1/absensi
func (h *AbsensiHandler) Create(c *gin.Context) {
	var req dto.CreateAbsensiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.absensiSvc.Create(c.Request.Context(), &req)
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

// Update memperbarui status kehadiran
// PUT /api/v1/absensi/:id
func (h *AbsensiHandler) Update(c *gin.Context) {
	var req dto.UpdateAbsensiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.absensiSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrAbsensiNotFound) {
			response.NotFound(c, 14003, "absensi tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete menghapus catatan kehadiran
// DELETE /api/v1/absensi/:id
func (h *AbsensiHandler) Delete(c *gin.Context) {
	if err := h.absensiSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAbsensiNotFound) {
			response.NotFound(c, 14003, "absensi tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Rekap rekap kehadiran satu kelas satu bulan
// GET /api/v1/absensi/rekap?kelas=&tingkatan=&bulan=&tahun=
func (h *AbsensiHandler) Rekap(c *gin.Context) {
	bulan, err := strconv.Atoi(c.Query("bulan"))
	if err != nil {
		response.BadRequest(c, 10001, "bulan harus angka")
		return
	}
	tahun, err := strconv.Atoi(c.Query("tahun"))
	if err != nil {
		response.BadRequest(c, 10001, "tahun harus angka")
		return
	}

	result, err := h.absensiSvc.RekapKelas(c.Request.Context(), c.Query("kelas"), c.Query("tingkatan"), bulan, tahun)
	if err != nil {
		if errors.Is(err, service.ErrAbsensiBulanInvalid) {
			response.BadRequest(c, 14004, "bulan harus di antara 1-12")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
