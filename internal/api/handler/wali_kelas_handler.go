package handler

import (
	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// WaliKelasHandler handler HTTP modul wali kelas
type WaliKelasHandler struct {
	waliSvc service.WaliKelasService
}

// NewWaliKelasHandler membuat WaliKelasHandler
func NewWaliKelasHandler(waliSvc service.WaliKelasService) *WaliKelasHandler {
	return &WaliKelasHandler{waliSvc: waliSvc}
}

// Set menetapkan wali untuk satu kelas (insert atau timpa)
// PUT /api/v1/wali-kelas
func (h *WaliKelasHandler) Set(c *gin.Context) {
	var req dto.SetWaliKelasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.waliSvc.Set(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// List daftar penetapan wali kelas
// GET /api/v1/wali-kelas
func (h *WaliKelasHandler) List(c *gin.Context) {
	result, err := h.waliSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete mencabut penetapan wali satu kelas
// DELETE /api/v1/wali-kelas/:kelas
func (h *WaliKelasHandler) Delete(c *gin.Context) {
	if err := h.waliSvc.Delete(c.Request.Context(), c.Param("kelas")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
