package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// KesehatanHandler handler HTTP modul riwayat kesehatan
type KesehatanHandler struct {
	kesehatanSvc service.KesehatanService
}

// NewKesehatanHandler membuat KesehatanHandler
func NewKesehatanHandler(kesehatanSvc service.KesehatanService) *KesehatanHandler {
	return &KesehatanHandler{kesehatanSvc: kesehatanSvc}
}

// Create mencatat riwayat kesehatan
// POST /api/v1/kesehatan
func (h *KesehatanHandler) Create(c *gin.Context) {
	var req dto.CreateKesehatanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.kesehatanSvc.Create(c.Request.Context(), &req)
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

// List daftar riwayat kesehatan (opsional per santri)
// GET /api/v1/kesehatan?santri_id=
func (h *KesehatanHandler) List(c *gin.Context) {
	result, err := h.kesehatanSvc.List(c.Request.Context(), c.Query("santri_id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete menghapus catatan riwayat kesehatan
// DELETE /api/v1/kesehatan/:id
func (h *KesehatanHandler) Delete(c *gin.Context) {
	if err := h.kesehatanSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrKesehatanNotFound) {
			response.NotFound(c, 17002, "riwayat kesehatan tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
