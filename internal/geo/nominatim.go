package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/rural_health_triage/internal/models"
)

// NominatimGeocoder обращается к поиску OpenStreetMap Nominatim
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	client    *http.Client
	limiter   *Limiter
}

// NewNominatimGeocoder создает геокодер; limiter может быть nil
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration, limiter *Limiter) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		timeout:   timeout,
		client:    &http.Client{},
		limiter:   limiter,
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode возвращает координаты первого кандидата
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (models.GeoPoint, error) {
	query = CleanQuery(query)
	if query == "" {
		return models.GeoPoint{}, ErrEmptyQuery
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx, g.baseURL); err != nil {
			return models.GeoPoint{}, fmt.Errorf("nominatim: rate limit wait: %w", err)
		}
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("nominatim: could not create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("nominatim: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.GeoPoint{}, fmt.Errorf("nominatim: unexpected status code %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return models.GeoPoint{}, fmt.Errorf("nominatim: could not decode response: %w", err)
	}
	if len(places) == 0 {
		return models.GeoPoint{}, ErrNoResults
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("nominatim: invalid latitude %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("nominatim: invalid longitude %q: %w", places[0].Lon, err)
	}

	return models.GeoPoint{Latitude: lat, Longitude: lon}, nil
}
