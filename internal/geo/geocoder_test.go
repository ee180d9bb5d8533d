package geo

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/rural_health_triage/internal/cache"
	"github.com/shenikar/rural_health_triage/internal/models"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

// stubGeocoder отвечает по словарю запросов
type stubGeocoder struct {
	points map[string]models.GeoPoint
	err    error
	calls  atomic.Int32
}

func (s *stubGeocoder) Geocode(_ context.Context, query string) (models.GeoPoint, error) {
	s.calls.Add(1)
	if s.err != nil {
		return models.GeoPoint{}, s.err
	}
	if p, ok := s.points[CleanQuery(query)]; ok {
		return p, nil
	}
	return models.GeoPoint{}, ErrNoResults
}

func TestCleanQuery(t *testing.T) {
	assert.Equal(t, "Springfield", CleanQuery("near Springfield"))
	assert.Equal(t, "Springfield", CleanQuery("  NEAR   Springfield "))
	assert.Equal(t, "Nearby Town", CleanQuery("Nearby Town"))
	assert.Equal(t, "", CleanQuery("near "))
}

func TestDistance(t *testing.T) {
	a := models.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	b := models.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}

	assert.Zero(t, Distance(a, a))
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-6)
	// Нью-Йорк - Лос-Анджелес примерно 3936 км
	assert.InDelta(t, 3_936_000, Distance(a, b), 5_000)
}

func TestMapLink(t *testing.T) {
	link := MapLink(models.GeoPoint{Latitude: 12.5, Longitude: -3.25}, "St. Mary's Clinic & Care")
	assert.Equal(t,
		"https://www.openstreetmap.org/?mlat=12.5&mlon=-3.25&zoom=17&query=St.%20Mary%27s%20Clinic%20%26%20Care",
		link)
}

func TestNominatimGeocoder_Success(t *testing.T) {
	var gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"39.7817","lon":"-89.6501","display_name":"Springfield"}]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "RuralHealthApp/1.0", time.Second, NewLimiter(0, 1))
	point, err := g.Geocode(context.Background(), "near Springfield, IL")

	require.NoError(t, err)
	assert.Equal(t, "Springfield, IL", gotQuery)
	assert.Equal(t, "RuralHealthApp/1.0", gotAgent)
	assert.InDelta(t, 39.7817, point.Latitude, 1e-9)
	assert.InDelta(t, -89.6501, point.Longitude, 1e-9)
}

func TestNominatimGeocoder_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "ua", time.Second, nil)
	_, err := g.Geocode(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestNominatimGeocoder_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "ua", time.Second, nil)
	_, err := g.Geocode(context.Background(), "Springfield")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResults)

	_, err = g.Geocode(context.Background(), "near ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestNominatimGeocoder_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "ua", 50*time.Millisecond, nil)
	start := time.Now()
	_, err := g.Geocode(context.Background(), "Springfield")
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestGoogleGeocoder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("address") == "Nowhere" {
			_, _ = w.Write([]byte(`{"results":[],"status":"ZERO_RESULTS"}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"geometry":{"location":{"lat":1.5,"lng":2.5}}}],"status":"OK"}`))
	}))
	defer srv.Close()

	client, err := NewGoogleClient("AIzaTestKey", srv.URL)
	require.NoError(t, err)
	g := NewGoogleGeocoder(client, time.Second)

	point, err := g.Geocode(context.Background(), "near Springfield")
	require.NoError(t, err)
	assert.Equal(t, models.GeoPoint{Latitude: 1.5, Longitude: 2.5}, point)

	_, err = g.Geocode(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestChainGeocoder(t *testing.T) {
	springfield := models.GeoPoint{Latitude: 1, Longitude: 2}
	errQuota := errors.New("quota exceeded")
	failing := &stubGeocoder{err: errQuota}
	empty := &stubGeocoder{}
	known := &stubGeocoder{points: map[string]models.GeoPoint{"Springfield": springfield}}

	point, err := NewChainGeocoder(failing, known).Geocode(context.Background(), "Springfield")
	require.NoError(t, err)
	assert.Equal(t, springfield, point)

	_, err = NewChainGeocoder(empty, empty).Geocode(context.Background(), "Springfield")
	assert.ErrorIs(t, err, ErrNoResults)

	_, err = NewChainGeocoder(empty, failing).Geocode(context.Background(), "Springfield")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResults)
	assert.ErrorIs(t, err, errQuota)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestCachedGeocoder_CachesHitsOnly(t *testing.T) {
	inner := &stubGeocoder{points: map[string]models.GeoPoint{"Springfield": {Latitude: 1, Longitude: 2}}}
	g := NewCachedGeocoder(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute, newTestLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := g.Geocode(ctx, "Atlantis")
		require.ErrorIs(t, err, ErrNoResults)
	}
	assert.Equal(t, int32(3), inner.calls.Load())

	for i := 0; i < 3; i++ {
		point, err := g.Geocode(ctx, "Springfield")
		require.NoError(t, err)
		assert.Equal(t, 1.0, point.Latitude)
	}
	assert.Equal(t, int32(4), inner.calls.Load())

	// ключ не зависит от регистра и префикса "near"
	point, err := g.Geocode(ctx, "near  SPRINGFIELD ")
	require.NoError(t, err)
	assert.Equal(t, 2.0, point.Longitude)
	assert.Equal(t, int32(4), inner.calls.Load())
}

func TestResolve(t *testing.T) {
	logger := newTestLogger()
	known := &stubGeocoder{points: map[string]models.GeoPoint{"Springfield": {Latitude: 1}}}

	point, ok := Resolve(context.Background(), known, logger, "Springfield")
	assert.True(t, ok)
	assert.Equal(t, 1.0, point.Latitude)

	_, ok = Resolve(context.Background(), known, logger, "Atlantis")
	assert.False(t, ok)

	_, ok = Resolve(context.Background(), &stubGeocoder{err: errors.New("boom")}, logger, "Springfield")
	assert.False(t, ok)
}
