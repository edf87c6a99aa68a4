package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// SantriHandler handler HTTP modul santri
type SantriHandler struct {
	santriSvc service.SantriService
}

// NewSantriHandler membuat SantriHandler
func NewSantriHandler(santriSvc service.SantriService) *SantriHandler {
	return &SantriHandler{santriSvc: santriSvc}
}

// Create mendaftarkan santri baru
// POST /api/v1/santri
func (h *SantriHandler) Create(c *gin.Context) {
	var req dto.CreateSantriRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.santriSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// Get detail satu santri
// GET /api/v1/santri/:id
func (h *SantriHandler) Get(c *gin.Context) {
	result, err := h.santriSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSantriNotFound) {
			response.NotFound(c, 13001, "santri tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// List daftar santri dengan filter dan paginasi
// GET /api/v1/santri?kelas=&tingkatan=&keyword=&page=&page_size=
func (h *SantriHandler) List(c *gin.Context) {
	var req dto.ListSantriRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, total, err := h.santriSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, result, total, req.GetPage(), req.GetPageSize())
}

// Update memperbarui biodata santri
// PUT /api/v1/santri/:id
func (h *SantriHandler) Update(c *gin.Context) {
	var req dto.UpdateSantriRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.santriSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrSantriNotFound) {
			response.NotFound(c, 13001, "santri tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete menghapus santri
// DELETE /api/v1/santri/:id
func (h *SantriHandler) Delete(c *gin.Context) {
	if err := h.santriSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrSantriNotFound) {
			response.NotFound(c, 13001, "santri tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
