// Package cache содержит байтовые кэши для геокодирования: локальный уровень
// в памяти процесса, уровень Redis и их послойную комбинацию.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache хранилище значений со сроком жизни; found=false без ошибки означает промах
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Key строит ключ в пространстве имён namespace по свободному тексту.
// Регистр и пробелы по краям на ключ не влияют.
func Key(namespace, text string) string {
	hash := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(text))))
	return "triage:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}
