package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// NilaiHandler handler HTTP modul nilai
type NilaiHandler struct {
	nilaiSvc service.NilaiService
}

// NewNilaiHandler membuat NilaiHandler
func NewNilaiHandler(nilaiSvc service.NilaiService) *NilaiHandler {
	return &NilaiHandler{nilaiSvc: nilaiSvc}
}

// Create mencatat nilai
// POST /api/v1/nilai
func (h *NilaiHandler) Create(c *gin.Context) {
	var req dto.CreateNilaiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.nilaiSvc.Create(c.Request.Context(), &req)
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

// List daftar nilai dengan filter
// GET /api/v1/nilai?santri_id=&kelas=&jenis_nilai=&semester=&tahun_ajaran=
func (h *NilaiHandler) List(c *gin.Context) {
	var req dto.ListNilaiRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.nilaiSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Update memperbarui nilai
// PUT /api/v1/nilai/:id
func (h *NilaiHandler) Update(c *gin.Context) {
	var req dto.UpdateNilaiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.nilaiSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrNilaiNotFound) {
			response.NotFound(c, 14002, "nilai tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete menghapus nilai
// DELETE /api/v1/nilai/:id
func (h *NilaiHandler) Delete(c *gin.Context) {
	if err := h.nilaiSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNilaiNotFound) {
			response.NotFound(c, 14002, "nilai tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
