package model

// Role pengguna sistem
const (
	RoleAdmin  = "admin"
	RoleUstadz = "ustadz"
)

// User tabel users, akun pengguna dashboard admin
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Nama         string `gorm:"type:varchar(100);not null"            json:"nama"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"            json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'ustadz'" json:"role"`
	SoftDeleteModel
}

// TableName nama tabel
func (User) TableName() string { return "users" }
