package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RaportHandler handler HTTP modul raport
type RaportHandler struct {
	raportSvc service.RaportService
}

// NewRaportHandler membuat RaportHandler
func NewRaportHandler(raportSvc service.RaportService) *RaportHandler {
	return &RaportHandler{raportSvc: raportSvc}
}

// GetData agregasi data raport untuk pratinjau / editor
// GET /api/v1/raport/:santriID/data?semester=&tahun_ajaran=
func (h *RaportHandler) GetData(c *gin.Context) {
	var req dto.RaportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	result, err := h.raportSvc.GetData(c.Request.Context(), c.Param("santriID"), &req)
	if err != nil {
		if errors.Is(err, service.ErrRaportSantriNotFound) {
			response.NotFound(c, 15001, "santri tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Generate membuat dan mengunduh dokumen raport .xlsx
// POST /api/v1/raport/:santriID/generate
func (h *RaportHandler) Generate(c *gin.Context) {
	var req dto.GenerateRaportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validasi parameter gagal")
		return
	}

	buf, filename, err := h.raportSvc.Generate(c.Request.Context(), c.Param("santriID"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRaportSantriNotFound):
			response.NotFound(c, 15001, "santri tidak ditemukan")
		case errors.Is(err, service.ErrRaportGenerateFail):
			response.InternalError(c)
		default:
			response.InternalError(c)
		}
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", xlsxContentType)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
