package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"

	"sipesantren/backend/internal/dto"
	"sipesantren/backend/internal/repository"
	"sipesantren/backend/internal/service"
	"sipesantren/backend/pkg/jwt"
	"sipesantren/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
	meResult      *dto.UserResponse
	meErr         error
	changePassErr error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) error {
	return m.logoutErr
}
func (m *mockAuthService) Me(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.meResult, m.meErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock RaportService ──

type mockRaportService struct {
	dataResult       *dto.RaportData
	dataErr          error
	generateBuf      *bytes.Buffer
	generateFilename string
	generateErr      error
}

func (m *mockRaportService) GetData(_ context.Context, _ string, _ *dto.RaportRequest) (*dto.RaportData, error) {
	return m.dataResult, m.dataErr
}
func (m *mockRaportService) Generate(_ context.Context, _ string, _ *dto.GenerateRaportRequest) (*bytes.Buffer, string, error) {
	return m.generateBuf, m.generateFilename, m.generateErr
}

// ── Mock ExportService ──

// semua metode ekspor mengembalikan hasil yang sama; cukup untuk
// menguji pemetaan galat dan header unduhan di handler
type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) hasil() (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

func (m *mockExportService) ExportSantri(_ context.Context, _, _ string) (*bytes.Buffer, string, error) {
	return m.hasil()
}
func (m *mockExportService) ExportNilai(_ context.Context, _ repository.NilaiFilter) (*bytes.Buffer, string, error) {
	return m.hasil()
}
func (m *mockExportService) ExportAbsensi(_ context.Context, _, _ string, _ int, _ int) (*bytes.Buffer, string, error) {
	return m.hasil()
}
func (m *mockExportService) ExportPelanggaran(_ context.Context) (*bytes.Buffer, string, error) {
	return m.hasil()
}
func (m *mockExportService) ExportKesehatan(_ context.Context) (*bytes.Buffer, string, error) {
	return m.hasil()
}
func (m *mockExportService) ExportPembayaran(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.hasil()
}
func (m *mockExportService) ExportPengeluaran(_ context.Context) (*bytes.Buffer, string, error) {
	return m.hasil()
}
func (m *mockExportService) ExportDonasi(_ context.Context) (*bytes.Buffer, string, error) {
	return m.hasil()
}
func (m *mockExportService) ExportUsers(_ context.Context) (*bytes.Buffer, string, error) {
	return m.hasil()
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "access-uji",
			RefreshToken: "refresh-uji",
			ExpiresIn:    3600,
		},
	}
	h := NewAuthHandler(mock)

	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "admin",
		Password: "sandi-rahasia",
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("diharapkan 200, dapat %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("diharapkan code 0, dapat %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("{rusak")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("diharapkan 400, dapat %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10001 {
		t.Errorf("diharapkan code 10001, dapat %d", resp.Code)
	}
}

func TestAuthHandler_Login_KredensialSalah(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrLoginFail})

	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "admin",
		Password: "salah",
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("diharapkan 401, dapat %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11001 {
		t.Errorf("diharapkan code 11001, dapat %d", resp.Code)
	}
}

func TestAuthHandler_Refresh_TokenInvalid(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{refreshErr: service.ErrRefreshTokenInvalid})

	r := gin.New()
	r.POST("/auth/refresh", h.Refresh)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/refresh", jsonBody(dto.RefreshRequest{
		RefreshToken: "kadaluarsa",
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("diharapkan 401, dapat %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11002 {
		t.Errorf("diharapkan code 11002, dapat %d", resp.Code)
	}
}

func TestAuthHandler_Logout_TanpaKlaim(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	// tanpa middleware autentikasi: klaim tidak ada di context
	r := gin.New()
	r.POST("/auth/logout", h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("diharapkan 401, dapat %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10002 {
		t.Errorf("diharapkan code 10002, dapat %d", resp.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.POST("/auth/logout", func(c *gin.Context) {
		c.Set("claims", &jwt.Claims{
			UserID: "user-1",
			RegisteredClaims: jwtv5.RegisteredClaims{
				ID:        "jti-1",
				ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
	}, h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("diharapkan 200, dapat %d", w.Code)
	}
}

func TestAuthHandler_ChangePassword_SandiLamaSalah(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{changePassErr: service.ErrOldPasswordWrong})

	r := gin.New()
	r.PUT("/auth/password", func(c *gin.Context) {
		c.Set("user_id", "user-1")
	}, h.ChangePassword)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/auth/password", jsonBody(dto.ChangePasswordRequest{
		OldPassword: "salah",
		NewPassword: "sandi-baru-22",
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("diharapkan 400, dapat %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11003 {
		t.Errorf("diharapkan code 11003, dapat %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// RaportHandler
// ═══════════════════════════════════════════════════════════

func TestRaportHandler_GetData_Success(t *testing.T) {
	mock := &mockRaportService{
		dataResult: &dto.RaportData{
			Santri:   dto.SantriResponse{ID: "santri-1", Nama: "Ahmad"},
			Semester: "Ganjil",
		},
	}
	h := NewRaportHandler(mock)

	r := gin.New()
	r.GET("/raport/:santriID/data", h.GetData)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/raport/santri-1/data?semester=Ganjil&tahun_ajaran=2024%2F2025", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("diharapkan 200, dapat %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("diharapkan code 0, dapat %d", resp.Code)
	}
}

func TestRaportHandler_GetData_QueryTidakLengkap(t *testing.T) {
	h := NewRaportHandler(&mockRaportService{})

	r := gin.New()
	r.GET("/raport/:santriID/data", h.GetData)

	// tanpa tahun_ajaran
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/raport/santri-1/data?semester=Ganjil", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("diharapkan 400, dapat %d", w.Code)
	}
}

func TestRaportHandler_GetData_SantriNotFound(t *testing.T) {
	h := NewRaportHandler(&mockRaportService{dataErr: service.ErrRaportSantriNotFound})

	r := gin.New()
	r.GET("/raport/:santriID/data", h.GetData)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/raport/tidak-ada/data?semester=Ganjil&tahun_ajaran=2024%2F2025", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("diharapkan 404, dapat %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 15001 {
		t.Errorf("diharapkan code 15001, dapat %d", resp.Code)
	}
}

func TestRaportHandler_Generate_HeaderUnduhan(t *testing.T) {
	filename := "Raport-Ahmad Fauzi-Ganjil.xlsx"
	mock := &mockRaportService{
		generateBuf:      bytes.NewBufferString("PK-dokumen-uji"),
		generateFilename: filename,
	}
	h := NewRaportHandler(mock)

	r := gin.New()
	r.POST("/raport/:santriID/generate", h.Generate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/raport/santri-1/generate", jsonBody(dto.GenerateRaportRequest{
		Semester:    "Ganjil",
		TahunAjaran: "2024/2025",
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("diharapkan 200, dapat %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type salah: %q", ct)
	}
	mau := "attachment; filename*=UTF-8''" + url.QueryEscape(filename)
	if cd := w.Header().Get("Content-Disposition"); cd != mau {
		t.Errorf("Content-Disposition salah:\nmau:   %q\ndapat: %q", mau, cd)
	}
	if w.Body.String() != "PK-dokumen-uji" {
		t.Error("isi respons harus buffer dokumen apa adanya")
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Santri_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("PK-ekspor-uji"),
		filename: "Data_Santri.xlsx",
	}
	h := NewExportHandler(mock)

	r := gin.New()
	r.GET("/export/santri", h.Santri)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/santri", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("diharapkan 200, dapat %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type salah: %q", ct)
	}
}

func TestExportHandler_Absensi_BulanBukanAngka(t *testing.T) {
	h := NewExportHandler(&mockExportService{})

	r := gin.New()
	r.GET("/export/absensi", h.Absensi)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/absensi?bulan=juli&tahun=2024", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("diharapkan 400, dapat %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10001 {
		t.Errorf("diharapkan code 10001, dapat %d", resp.Code)
	}
}

func TestExportHandler_Absensi_BulanDiLuarRentang(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportBulanInvalid})

	r := gin.New()
	r.GET("/export/absensi", h.Absensi)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/absensi?kelas=1A&bulan=13&tahun=2024", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("diharapkan 400, dapat %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 16001 {
		t.Errorf("diharapkan code 16001, dapat %d", resp.Code)
	}
}

func TestExportHandler_GalatInternal(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportGenerateFail})

	r := gin.New()
	r.GET("/export/users", h.Users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/users", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("diharapkan 500, dapat %d", w.Code)
	}
}
