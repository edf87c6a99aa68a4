package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"sipesantren/backend/internal/repository"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/response"
)

// ExportHandler handler HTTP modul ekspor Excel
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler membuat ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// kirimXLSX menulis buffer .xlsx sebagai respons unduhan
func kirimXLSX(c *gin.Context, buf *bytes.Buffer, filename string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", xlsxContentType)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportBulanInvalid):
		response.BadRequest(c, 16001, "bulan harus di antara 1-12")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}

// Santri ekspor daftar santri
// GET /api/v1/export/santri?kelas=&tingkatan=
func (h *ExportHandler) Santri(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportSantri(c.Request.Context(), c.Query("kelas"), c.Query("tingkatan"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	kirimXLSX(c, buf, filename)
}

// Nilai ekspor daftar nilai
// GET /api/v1/export/nilai?santri_id=&kelas=&jenis_nilai=&semester=&tahun_ajaran=
func (h *ExportHandler) Nilai(c *gin.Context) {
	filter := repository.NilaiFilter{
		SantriID:    c.Query("santri_id"),
		Kelas:       c.Query("kelas"),
		JenisNilai:  c.Query("jenis_nilai"),
		Semester:    c.Query("semester"),
		TahunAjaran: c.Query("tahun_ajaran"),
	}

	buf, filename, err := h.exportSvc.ExportNilai(c.Request.Context(), filter)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	kirimXLSX(c, buf, filename)
}

// Absensi ekspor absensi satu kelas satu bulan
// GET /api/v1/export/absensi?kelas=&tingkatan=&bulan=&tahun=
func (h *ExportHandler) Absensi(c *gin.Context) {
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

	buf, filename, err := h.exportSvc.ExportAbsensi(c.Request.Context(), c.Query("kelas"), c.Query("tingkatan"), bulan, tahun)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	kirimXLSX(c, buf, filename)
}

// Pelanggaran ekspor data pelanggaran
// GET /api/v1/export/pelanggaran
func (h *ExportHandler) Pelanggaran(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportPelanggaran(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	kirimXLSX(c, buf, filename)
}

// Kesehatan ekspor riwayat kesehatan
// GET /api/v1/export/kesehatan
func (h *ExportHandler) Kesehatan(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportKesehatan(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	kirimXLSX(c, buf, filename)
}

// Pembayaran ekspor riwayat pembayaran
// GET /api/v1/export/pembayaran?keyword=
func (h *ExportHandler) Pembayaran(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportPembayaran(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	kirimXLSX(c, buf, filename)
}

// Pengeluaran ekspor data pengeluaran
// GET /api/v1/export/pengeluaran
func (h *ExportHandler) Pengeluaran(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportPengeluaran(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	kirimXLSX(c, buf, filename)
}

// Donasi ekspor data donasi
// GET /api/v1/export/donasi
func (h *ExportHandler) Donasi(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportDonasi(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	kirimXLSX(c, buf, filename)
}

// Users ekspor daftar pengguna
// GET /api/v1/export/users
func (h *ExportHandler) Users(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportUsers(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	kirimXLSX(c, buf, filename)
}
