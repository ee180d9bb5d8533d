package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/shenikar/rural_health_triage/internal/models"
)

// GoogleGeocoder использует Google Geocoding API
type GoogleGeocoder struct {
	client  *maps.Client
	timeout time.Duration
}

// NewGoogleGeocoder создает геокодер поверх готового клиента maps
func NewGoogleGeocoder(client *maps.Client, timeout time.Duration) *GoogleGeocoder {
	return &GoogleGeocoder{client: client, timeout: timeout}
}

// NewGoogleClient создает клиент Google Maps; baseURL нужен для тестов
func NewGoogleClient(apiKey, baseURL string) (*maps.Client, error) {
	opts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("google: could not create maps client: %w", err)
	}
	return client, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, query string) (models.GeoPoint, error) {
	query = CleanQuery(query)
	if query == "" {
		return models.GeoPoint{}, ErrEmptyQuery
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		if strings.Contains(err.Error(), "ZERO_RESULTS") {
			return models.GeoPoint{}, ErrNoResults
		}
		return models.GeoPoint{}, fmt.Errorf("google: geocode failed: %w", err)
	}
	if len(results) == 0 {
		return models.GeoPoint{}, ErrNoResults
	}

	loc := results[0].Geometry.Location
	return models.GeoPoint{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
