package geo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/rural_health_triage/internal/cache"
	"github.com/shenikar/rural_health_triage/internal/models"
)

const geocodeNamespace = "geocode"

// CachedGeocoder - декоратор cache-aside над любым геокодером.
// Кэшируются только успешные ответы.
type CachedGeocoder struct {
	next   Geocoder
	cache  cache.Cache
	ttl    time.Duration
	logger *logrus.Logger
}

func NewCachedGeocoder(next Geocoder, c cache.Cache, ttl time.Duration, logger *logrus.Logger) *CachedGeocoder {
	return &CachedGeocoder{next: next, cache: c, ttl: ttl, logger: logger}
}

func (g *CachedGeocoder) Geocode(ctx context.Context, query string) (models.GeoPoint, error) {
	query = CleanQuery(query)
	if query == "" {
		return models.GeoPoint{}, ErrEmptyQuery
	}
	key := cache.Key(geocodeNamespace, query)
	log := g.logger.WithFields(logrus.Fields{"component": "geocode_cache", "query": query})

	raw, found, err := g.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("Failed to read geocode cache")
	}
	if found {
		var point models.GeoPoint
		if err := json.Unmarshal(raw, &point); err == nil {
			log.Debug("Geocode cache hit")
			return point, nil
		}
		log.Warn("Corrupted geocode cache entry, ignoring")
	}

	point, err := g.next.Geocode(ctx, query)
	if err != nil {
		return models.GeoPoint{}, err
	}

	if data, err := json.Marshal(point); err == nil {
		if err := g.cache.Set(ctx, key, data, g.ttl); err != nil {
			log.WithError(err).Warn("Failed to write geocode cache")
		}
	}

	return point, nil
}
