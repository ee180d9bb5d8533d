package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/shenikar/rural_health_triage/internal/config"
)

func newTestWorker(cfg *config.Config) *AlertWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewAlertWorker(nil, logger, cfg)
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := `{"report_id":"00000000-0000-0000-0000-000000000001"}`
	var gotSignature, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get(signatureHeader)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.True(t, w.deliver(context.Background(), AlertEvent{}, payload))
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "secret"), gotSignature)
}

func TestDeliver_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.True(t, w.deliver(context.Background(), AlertEvent{}, `{}`))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.False(t, w.deliver(context.Background(), AlertEvent{}, `{}`))
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_NoURL(t *testing.T) {
	w := newTestWorker(&config.Config{WebhookTimeout: time.Second})
	assert.False(t, w.deliver(context.Background(), AlertEvent{}, `{}`))
}

func TestDeliver_CancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Hour,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.False(t, w.deliver(ctx, AlertEvent{}, `{}`))
}
