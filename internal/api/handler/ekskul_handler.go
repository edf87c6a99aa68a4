package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// EkskulHandler handler HTTP modul ekstrakurikuler
type EkskulHandler struct {
	ekskulSvc service.EkskulService
}

// NewEkskulHandler membuat EkskulHandler
func NewEkskulHandler(ekskulSvc service.EkskulService) *EkskulHandler {
	return &EkskulHandler{ekskulSvc: ekskulSvc}
}

// Create membuat kegiatan ekskul
// POST /api/v1/ekskul
func (h *EkskulHandler) Create(c *gin.Context) {
	var req dto.CreateEkskulRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.ekskulSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// List daftar kegiatan ekskul
// GET /api/v1/ekskul
func (h *EkskulHandler) List(c *gin.Context) {
	result, err := h.ekskulSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete menghapus kegiatan ekskul
// DELETE /api/v1/ekskul/:id
func (h *EkskulHandler) Delete(c *gin.Context) {
	if err := h.ekskulSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrEkskulNotFound) {
			response.NotFound(c, 14005, "kegiatan ekstrakurikuler tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// CreateNilai mencatat nilai ekskul
// POST /api/v1/ekskul/nilai
func (h *EkskulHandler) CreateNilai(c *gin.Context) {
	var req dto.CreateNilaiEkskulRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	if err := h.ekskulSvc.CreateNilai(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrSantriNotFound):
			response.NotFound(c, 13001, "santri tidak ditemukan")
		case errors.Is(err, service.ErrEkskulNotFound):
			response.NotFound(c, 14005, "kegiatan ekstrakurikuler tidak ditemukan")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, nil)
}

// DeleteNilai menghapus nilai ekskul
// DELETE /api/v1/ekskul/nilai/:id
func (h *EkskulHandler) DeleteNilai(c *gin.Context) {
	if err := h.ekskulSvc.DeleteNilai(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
