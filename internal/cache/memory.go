package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache локальный уровень кэша внутри процесса
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache создаёт кэш; cleanupInterval задаёт период удаления просроченных ключей
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{items: gocache.New(defaultTTL, cleanupInterval)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, found := c.items.Get(key)
	if !found {
		return nil, false, nil
	}
	val, ok := raw.([]byte)
	if !ok {
		c.items.Delete(key)
		return nil, false, nil
	}
	return val, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.items.Set(key, value, ttl)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.items.Delete(key)
	return nil
}
