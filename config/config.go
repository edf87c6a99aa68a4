package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config struktur konfigurasi global aplikasi
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Sekolah  SekolahConfig  `mapstructure:"sekolah"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig konfigurasi HTTP server
type ServerConfig struct {
	Port         int        `mapstructure:"port"`
	BaseURL      string     `mapstructure:"base_url"`
	MaxBodyBytes int64      `mapstructure:"max_body_bytes"` // batas upload (logo raport max 2MB)
	CORS         CORSConfig `mapstructure:"cors"`
}

// CORSConfig konfigurasi cross-origin
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig konfigurasi PostgreSQL
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // menit
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // menit
}

// DSN membentuk connection string PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig konfigurasi Redis
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig konfigurasi autentikasi JWT
type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

// SekolahConfig identitas sekolah untuk kop dokumen.
// PengaturanSekolah di database menimpa nilai di sini; keduanya punya
// fallback bawaan supaya dokumen selalu bisa dibuat.
type SekolahConfig struct {
	Nama  string `mapstructure:"nama"`
	Kota  string `mapstructure:"kota"` // dipakai pada baris tanggal tanda tangan raport
	Motto string `mapstructure:"motto"`
}

// LogConfig konfigurasi logging
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load memuat konfigurasi dari file dan environment variable
// Prioritas: env > file konfigurasi > default
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── Default ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.max_body_bytes", 2<<20) // 2MB
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "sipesantren")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Makassar")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.conn_max_idle_time", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.access_token_ttl", "15m")
	v.SetDefault("auth.refresh_token_ttl", "168h")

	v.SetDefault("sekolah.nama", "PONDOK PESANTREN MODERN AL-IKHLAS")
	v.SetDefault("sekolah.kota", "Makassar")
	v.SetDefault("sekolah.motto", "Beriman, Berilmu, Beramal")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── File konfigurasi ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── Environment variable ──
	v.SetEnvPrefix("PESANTREN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("gagal membaca file konfigurasi: %w", err)
		}
		// file tidak ada: cukup default + env
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("gagal parsing konfigurasi: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate memeriksa konfigurasi yang wajib diisi
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("validasi konfigurasi gagal: auth.jwt_secret tidak boleh kosong")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("validasi konfigurasi gagal: auth.jwt_secret minimal 16 karakter")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("validasi konfigurasi gagal: server.port harus di antara 1-65535")
	}
	return nil
}
