package dto

// ── Modul autentikasi ──

// LoginRequest permintaan login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest permintaan refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest permintaan ganti kata sandi
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// TokenResponse pasangan token hasil login/refresh
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // umur access token (detik)
	User         UserResponse `json:"user"`
}

// ── Modul pengguna ──

// CreateUserRequest pembuatan akun pengguna
type CreateUserRequest struct {
	Nama     string `json:"nama"     binding:"required,min=2,max=100"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"     binding:"required,oneof=admin ustadz"`
}

// UpdateUserRequest pembaruan akun pengguna (partial)
type UpdateUserRequest struct {
	Nama *string `json:"nama" binding:"omitempty,min=2,max=100"`
	Role *string `json:"role" binding:"omitempty,oneof=admin ustadz"`
}

// UserResponse informasi pengguna (tanpa hash kata sandi)
type UserResponse struct {
	ID       string `json:"id"`
	Nama     string `json:"nama"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
