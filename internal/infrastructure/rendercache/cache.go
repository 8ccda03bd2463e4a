// Package rendercache хранит готовые фрагменты виджетов между репликами.
package rendercache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"rating_widget/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const keyPrefix = "widget:"

const fingerprintLen = 12

// Key is stable for equal records and formats. Use KeyFunc when the output
// also depends on process settings.
func Key(record entity.RatingRecord, format string) (string, error) {
	return KeyFunc("")(record, format)
}

// KeyFunc возвращает функцию ключа, в префикс которой входит отпечаток
// настроек: реплики и релизы с разными настройками не делят записи.
func KeyFunc(fingerprint string) func(entity.RatingRecord, string) (string, error) {
	prefix := keyPrefix
	if fingerprint != "" {
		prefix += fingerprint + ":"
	}

	return func(record entity.RatingRecord, format string) (string, error) {
		b, err := json.Marshal(record)
		if err != nil {
			return "", fmt.Errorf("json.Marshal: %w", err)
		}

		h := sha256.New()
		h.Write(b)
		h.Write([]byte{0})
		h.Write([]byte(format))

		return prefix + hex.EncodeToString(h.Sum(nil)), nil
	}
}

// Fingerprint сворачивает настройки, влияющие на вывод, в короткий hex.
func Fingerprint(settings ...string) string {
	h := sha256.New()

	for _, s := range settings {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))[:fingerprintLen]
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("client.Get: %w", err)
	}

	return b, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

// Nop используется, когда Redis не настроен.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (Nop) Set(context.Context, string, []byte) error {
	return nil
}
