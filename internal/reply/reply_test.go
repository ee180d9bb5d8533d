package reply

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/vocabulary"
)

type stubFinder struct {
	facilities []models.Facility
	err        error
	calls      int
}

func (s *stubFinder) Nearby(_ context.Context, _ string) ([]models.Facility, error) {
	s.calls++
	return s.facilities, s.err
}

type stubSender struct {
	to, subject, body string
	id                string
	err               error
}

func (s *stubSender) SendText(_ context.Context, to, subject, body string) (string, error) {
	s.to, s.subject, s.body = to, subject, body
	return s.id, s.err
}

func newTestComposer(finder FacilityFinder) *Composer {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewComposer(vocabulary.Default(), finder, logger)
}

func countLine(body, line string) int {
	n := 0
	for _, l := range strings.Split(body, "\n") {
		if l == line {
			n++
		}
	}
	return n
}

func TestHealthTips(t *testing.T) {
	vocab := vocabulary.Default()

	tips := HealthTips(vocab, []string{"fever", "headache"})
	assert.Contains(t, tips, "Rest and stay hydrated")
	assert.Contains(t, tips, "Rest in a quiet, dark room")
	// "Stay hydrated" встречается у нескольких симптомов, но один раз
	n := 0
	for _, tip := range tips {
		if tip == "Stay hydrated" {
			n++
		}
	}
	assert.LessOrEqual(t, n, 1)

	assert.Equal(t, vocab.FallbackTips, HealthTips(vocab, nil))
	assert.Equal(t, vocab.FallbackTips, HealthTips(vocab, []string{"rash"}))
}

func TestCompose_FeverTips(t *testing.T) {
	c := newTestComposer(&stubFinder{})
	msg := c.Compose(context.Background(), "Jane", []string{"fever"}, "")

	assert.Equal(t, "We received your message – here's some help", msg.Subject)
	assert.True(t, strings.HasPrefix(msg.Body, "Dear Jane,\n\n"))
	assert.Contains(t, msg.Body, "our medical support system. We have received")
	assert.Contains(t, msg.Body, "Reported Symptoms:\n- fever\n")
	for _, tip := range vocabulary.Default().TipsFor("fever") {
		assert.Equal(t, 1, countLine(msg.Body, "- "+tip), tip)
	}
	assert.NotContains(t, msg.Body, "Nearby Medical Facilities")
	assert.True(t, strings.HasSuffix(msg.Body, "Stay safe and take care,\nYour Rural Health Support Team"))
}

func TestCompose_EmptySymptomsUsesFallback(t *testing.T) {
	finder := &stubFinder{}
	msg := newTestComposer(finder).Compose(context.Background(), "  ", nil, "")

	assert.True(t, strings.HasPrefix(msg.Body, "Dear Patient,"))
	for _, tip := range vocabulary.Default().FallbackTips {
		assert.Contains(t, msg.Body, "- "+tip)
	}
	assert.Zero(t, finder.calls)
}

func TestCompose_FacilitySection(t *testing.T) {
	facilities := []models.Facility{
		{
			Name:             "General Hospital",
			Address:          "Main St, Springfield",
			DistanceMeters:   300,
			EmergencyCapable: true,
			Phone:            "+1 555 0100",
			MapURL:           "https://www.openstreetmap.org/?mlat=1&mlon=2&zoom=17&query=General%20Hospital",
		},
		{
			Name:           "Hill Clinic",
			Address:        "Address not available",
			DistanceMeters: 1250,
			IsApproximate:  true,
			MapURL:         "https://www.openstreetmap.org/?mlat=3&mlon=4&zoom=17&query=Hill%20Clinic",
		},
	}

	t.Run("list", func(t *testing.T) {
		msg := newTestComposer(&stubFinder{facilities: facilities}).
			Compose(context.Background(), "Jane", []string{"fever"}, "Springfield")

		assert.Contains(t, msg.Body, "support system in Springfield.")
		assert.Contains(t, msg.Body, "\n\n\nNearby Medical Facilities:\n1. General Hospital\n   Main St, Springfield\n   Distance: 300 m\n   Phone: +1 555 0100\n   Emergency services available\n")
		assert.Contains(t, msg.Body, "\n\n2. Hill Clinic\n   Address not available\n   Distance: 1.2 km (approximate location)\n   View on map: https://www.openstreetmap.org/?mlat=3")
	})

	t.Run("empty", func(t *testing.T) {
		msg := newTestComposer(&stubFinder{facilities: []models.Facility{}}).
			Compose(context.Background(), "Jane", []string{"fever"}, "Springfield")
		assert.Contains(t, msg.Body, "Nearby Medical Facilities:\nNo nearby hospitals found.\n")
		assert.NotContains(t, msg.Body, "Unable to fetch")
	})

	t.Run("lookup failure", func(t *testing.T) {
		msg := newTestComposer(&stubFinder{err: errors.New("overpass down")}).
			Compose(context.Background(), "Jane", []string{"fever"}, "Springfield")
		assert.Contains(t, msg.Body, "\nUnable to fetch nearby medical facilities at this time.\n")
		assert.NotContains(t, msg.Body, "Nearby Medical Facilities")
		assert.NotContains(t, msg.Body, "No nearby hospitals found.")
	})
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0 m", FormatDistance(0))
	assert.Equal(t, "999 m", FormatDistance(999))
	assert.Equal(t, "1.0 km", FormatDistance(1000))
	assert.Equal(t, "4.5 km", FormatDistance(4500))
}

func TestAutoReplier_Send(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	sender := &stubSender{id: "msg-1"}
	r := NewAutoReplier(newTestComposer(&stubFinder{}), sender, logger)

	dispatch, err := r.Send(context.Background(), "jane@example.org", "Jane", []string{"cough"}, "")
	require.NoError(t, err)
	assert.Equal(t, "msg-1", dispatch.MessageID)
	assert.Equal(t, "jane@example.org", sender.to)
	assert.Equal(t, Subject, sender.subject)
	assert.Equal(t, dispatch.Body, sender.body)
	assert.False(t, dispatch.SentAt.IsZero())
}

func TestAutoReplier_SendFailureIsFatal(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	sender := &stubSender{err: errors.New("401 unauthorized")}
	r := NewAutoReplier(newTestComposer(&stubFinder{}), sender, logger)

	_, err := r.Send(context.Background(), "jane@example.org", "Jane", nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDispatchFailed)
	assert.Contains(t, err.Error(), "401 unauthorized")
}

func TestPostmarkSender(t *testing.T) {
	var got postmarkEmail
	var token string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email", r.URL.Path)
		token = r.Header.Get("X-Postmark-Server-Token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"To":"jane@example.org","MessageID":"abc-123","ErrorCode":0,"Message":"OK"}`))
	}))
	defer srv.Close()

	s := NewPostmarkSender(PostmarkConfig{
		BaseURL:       srv.URL + "/",
		ServerToken:   "server-token",
		From:          "noreply@clinic.example",
		MessageStream: "outbound",
		Timeout:       time.Second,
	})
	id, err := s.SendText(context.Background(), "jane@example.org", "Subject", "Body")

	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, "server-token", token)
	assert.Equal(t, postmarkEmail{
		From:          "noreply@clinic.example",
		To:            "jane@example.org",
		Subject:       "Subject",
		TextBody:      "Body",
		MessageStream: "outbound",
	}, got)
}

func TestPostmarkSender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"rejected", http.StatusUnprocessableEntity, `{"ErrorCode":300,"Message":"Invalid email request"}`, "Invalid email request"},
		{"server error", http.StatusInternalServerError, `oops`, "unexpected status code 500"},
		{"error code on 200", http.StatusOK, `{"ErrorCode":406,"Message":"Inactive recipient"}`, "Inactive recipient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := NewPostmarkSender(PostmarkConfig{BaseURL: srv.URL, Timeout: time.Second})
			_, err := s.SendText(context.Background(), "a@b.c", "s", "b")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
