package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sipesantren/backend/config"
)

// Client pembungkus klien Redis.
// Dipakai untuk blacklist token dan rate limiting; koneksi gagal saat
// startup membuat fitur tersebut dinonaktifkan, bukan menghentikan aplikasi.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient membuka koneksi Redis dan melakukan Ping
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("koneksi Redis gagal: %w", err)
	}

	logger.Info("koneksi Redis berhasil", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Blacklist token ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken memasukkan JWT ID ke blacklist dengan TTL sesuai sisa umur token
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token sudah kedaluwarsa, tidak perlu masuk blacklist
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted memeriksa apakah JWT ID ada di blacklist
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── Rate limiting ──

// CheckRateLimit rate limit fixed-window sederhana: INCR + EXPIRE.
// Mengembalikan false jika jumlah request di window sudah melewati limit.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, "rate_limit:"+key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, "rate_limit:"+key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close menutup koneksi Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}
