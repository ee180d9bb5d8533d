package cache

import (
	"context"
	"errors"
	"time"
)

// LayeredCache опрашивает уровни от быстрого к медленному
type LayeredCache struct {
	tiers   []Cache
	fillTTL time.Duration
}

// NewLayeredCache принимает уровни по убыванию скорости; fillTTL срок жизни
// значения, перенесённого из медленного уровня в быстрые
func NewLayeredCache(fillTTL time.Duration, tiers ...Cache) *LayeredCache {
	return &LayeredCache{tiers: tiers, fillTTL: fillTTL}
}

// Get возвращает первое найденное значение и дописывает его в более быстрые уровни.
// Ошибки уровней возвращаются, только если значение не нашлось нигде.
func (c *LayeredCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var errs []error
	for i, tier := range c.tiers {
		val, found, err := tier.Get(ctx, key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !found {
			continue
		}
		c.backfill(ctx, c.tiers[:i], key, val)
		return val, true, nil
	}
	return nil, false, errors.Join(errs...)
}

// backfill ошибки записи не важны: значение уже найдено
func (c *LayeredCache) backfill(ctx context.Context, faster []Cache, key string, val []byte) {
	for _, tier := range faster {
		_ = tier.Set(ctx, key, val, c.fillTTL)
	}
}

// Set пишет во все уровни, даже если какой-то из них недоступен
func (c *LayeredCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.each(func(tier Cache) error { return tier.Set(ctx, key, value, ttl) })
}

func (c *LayeredCache) Delete(ctx context.Context, key string) error {
	return c.each(func(tier Cache) error { return tier.Delete(ctx, key) })
}

func (c *LayeredCache) each(op func(Cache) error) error {
	var errs []error
	for _, tier := range c.tiers {
		if err := op(tier); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
