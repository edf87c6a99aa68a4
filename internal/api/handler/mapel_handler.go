package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// MapelHandler handler HTTP modul mata pelajaran
type MapelHandler struct {
	mapelSvc service.MapelService
}

// NewMapelHandler membuat MapelHandler
func NewMapelHandler(mapelSvc service.MapelService) *MapelHandler {
	return &MapelHandler{mapelSvc: mapelSvc}
}

// Create membuat mata pelajaran
// POST /api/v1/mapel
func (h *MapelHandler) Create(c *gin.Context) {
	var req dto.CreateMapelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.mapelSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// List daftar mata pelajaran
// GET /api/v1/mapel?kelas=
func (h *MapelHandler) List(c *gin.Context) {
	result, err := h.mapelSvc.List(c.Request.Context(), c.Query("kelas"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Update memperbarui mata pelajaran
// PUT /api/v1/mapel/:id
func (h *MapelHandler) Update(c *gin.Context) {
	var req dto.UpdateMapelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.mapelSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrMapelNotFound) {
			response.NotFound(c, 14001, "mata pelajaran tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateKategori memindahkan kategori mata pelajaran.
// Respons memuat keadaan otoritatif hasil simpan; klien menerapkan
// respons ini, bukan tebakan lokalnya.
// PUT /api/v1/mapel/:id/kategori
func (h *MapelHandler) UpdateKategori(c *gin.Context) {
	var req dto.UpdateKategoriRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.mapelSvc.UpdateKategori(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrMapelNotFound) {
			response.NotFound(c, 14001, "mata pelajaran tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete menghapus mata pelajaran
// DELETE /api/v1/mapel/:id
func (h *MapelHandler) Delete(c *gin.Context) {
	if err := h.mapelSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMapelNotFound) {
			response.NotFound(c, 14001, "mata pelajaran tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
