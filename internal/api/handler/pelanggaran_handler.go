package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// PelanggaranHandler handler HTTP modul pelanggaran
type PelanggaranHandler struct {
	pelanggaranSvc service.PelanggaranService
}

// NewPelanggaranHandler membuat PelanggaranHandler
func NewPelanggaranHandler(pelanggaranSvc service.PelanggaranService) *PelanggaranHandler {
	return &PelanggaranHandler{pelanggaranSvc: pelanggaranSvc}
}

// Create mencatat pelanggaran
// POST /api/v1/pelanggaran
func (h *PelanggaranHandler) Create(c *gin.Context) {
	var req dto.CreatePelanggaranRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.pelanggaranSvc.Create(c.Request.Context(), &req)
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

// List daftar pelanggaran (opsional per santri)
// GET /api/v1/pelanggaran?santri_id=
func (h *PelanggaranHandler) List(c *gin.Context) {
	result, err := h.pelanggaranSvc.List(c.Request.Context(), c.Query("santri_id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete menghapus catatan pelanggaran
// DELETE /api/v1/pelanggaran/:id
func (h *PelanggaranHandler) Delete(c *gin.Context) {
	if err := h.pelanggaranSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPelanggaranNotFound) {
			response.NotFound(c, 17001, "pelanggaran tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
