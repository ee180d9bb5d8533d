package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shenikar/rural_health_triage/internal/models"
)

// OverpassElement - узел или путь OpenStreetMap из ответа Overpass
type OverpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *OverpassCenter   `json:"center,omitempty"`
	Bounds *OverpassBounds   `json:"bounds,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type OverpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type OverpassBounds struct {
	MinLat float64 `json:"minlat"`
	MinLon float64 `json:"minlon"`
	MaxLat float64 `json:"maxlat"`
	MaxLon float64 `json:"maxlon"`
}

type overpassResponse struct {
	Elements []OverpassElement `json:"elements"`
}

// FacilitySource ищет медицинские учреждения в радиусе от точки
type FacilitySource interface {
	Search(ctx context.Context, center models.GeoPoint, radiusMeters int) ([]OverpassElement, error)
}

// OverpassClient выполняет запросы Overpass QL
type OverpassClient struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	limiter *Limiter
}

func NewOverpassClient(baseURL string, timeout time.Duration, limiter *Limiter) *OverpassClient {
	return &OverpassClient{
		baseURL: baseURL,
		timeout: timeout,
		client:  &http.Client{},
		limiter: limiter,
	}
}

// BuildFacilityQuery собирает запрос больниц и клиник вокруг точки
func BuildFacilityQuery(center models.GeoPoint, radiusMeters int) string {
	around := fmt.Sprintf("(around:%d,%s,%s)", radiusMeters, formatCoord(center.Latitude), formatCoord(center.Longitude))
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];(")
	for _, kind := range []string{"node", "way"} {
		b.WriteString(kind)
		b.WriteString(`["amenity"~"^(hospital|clinic)$"]`)
		b.WriteString(around)
		b.WriteString(";")
	}
	b.WriteString(");out center tags;")
	return b.String()
}

func (c *OverpassClient) Search(ctx context.Context, center models.GeoPoint, radiusMeters int) ([]OverpassElement, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, c.baseURL); err != nil {
			return nil, fmt.Errorf("overpass: rate limit wait: %w", err)
		}
	}

	form := url.Values{}
	form.Set("data", BuildFacilityQuery(center, radiusMeters))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("overpass: could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass: unexpected status code %d", resp.StatusCode)
	}

	var body overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("overpass: could not decode response: %w", err)
	}

	return body.Elements, nil
}
