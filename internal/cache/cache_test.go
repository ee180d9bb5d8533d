package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingCache всегда возвращает ошибку, как недоступный Redis
type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}
func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}
func (failingCache) Delete(context.Context, string) error { return errors.New("connection refused") }

func TestKey(t *testing.T) {
	assert.Equal(t, Key("geocode", "Springfield"), Key("geocode", "  springfield "))
	assert.NotEqual(t, Key("geocode", "Springfield"), Key("facility", "Springfield"))
	assert.Contains(t, Key("geocode", "x"), "triage:v1:geocode:")
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute, time.Minute)

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	val, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, c.Delete(ctx, "k"))
	_, found, _ = c.Get(ctx, "k")
	assert.False(t, found)
}

func TestLayeredCache_BackfillsFasterTier(t *testing.T) {
	ctx := context.Background()
	fast := NewMemoryCache(time.Minute, time.Minute)
	slow := NewMemoryCache(time.Minute, time.Minute)
	layered := NewLayeredCache(time.Minute, fast, slow)

	require.NoError(t, slow.Set(ctx, "k", []byte("v"), time.Minute))

	val, found, err := layered.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), val)

	val, found, _ = fast.Get(ctx, "k")
	assert.True(t, found)
	assert.Equal(t, []byte("v"), val)
}

func TestLayeredCache_TierErrors(t *testing.T) {
	ctx := context.Background()
	fast := NewMemoryCache(time.Minute, time.Minute)
	layered := NewLayeredCache(time.Minute, fast, failingCache{})

	_, found, err := layered.Get(ctx, "missing")
	assert.False(t, found)
	assert.ErrorContains(t, err, "connection refused")

	err = layered.Set(ctx, "k", []byte("v"), time.Minute)
	assert.Error(t, err)

	// быстрый уровень записан несмотря на ошибку медленного
	val, found, err := layered.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), val)
}
