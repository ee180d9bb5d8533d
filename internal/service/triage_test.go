package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/reply"
	"github.com/shenikar/rural_health_triage/internal/service/mocks"
	"github.com/shenikar/rural_health_triage/internal/triage"
	"github.com/shenikar/rural_health_triage/internal/vocabulary"
)

func newTestTriageService(t *testing.T) (TriageService, *mocks.MockFacilityLocator, *mocks.MockReplier) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockFacilityLocator(ctrl)
	replier := mocks.NewMockReplier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	vocab := vocabulary.Default()
	svc := NewTriageService(
		triage.NewParser(vocab, nil, logger),
		triage.NewCriticalClassifier(vocab.CriticalSymptoms),
		locator,
		replier,
		logger,
	)
	return svc, locator, replier
}

func TestTriageService_Parse(t *testing.T) {
	svc, _, _ := newTestTriageService(t)

	record := svc.Parse("I have a fever and a bad headache near Springfield")
	assert.Subset(t, record.Symptoms, []string{"fever", "headache"})
	require.NotNil(t, record.Location)
	assert.Contains(t, *record.Location, "Springfield")

	assert.True(t, svc.IsCritical([]string{"chest pain"}))
	assert.False(t, svc.IsCritical([]string{"runny nose"}))
}

func TestTriageService_NearbyFacilities(t *testing.T) {
	svc, locator, _ := newTestTriageService(t)
	ctx := context.Background()

	locator.EXPECT().Nearby(ctx, "Springfield").Return([]models.Facility{{Name: "General"}}, nil)
	facilities, err := svc.NearbyFacilities(ctx, "Springfield")
	require.NoError(t, err)
	assert.Len(t, facilities, 1)

	upstream := errors.New("overpass down")
	locator.EXPECT().Nearby(ctx, "Springfield").Return(nil, upstream)
	_, err = svc.NearbyFacilities(ctx, "Springfield")
	assert.ErrorIs(t, err, upstream)
}

func TestTriageService_PreviewReply(t *testing.T) {
	svc, _, replier := newTestTriageService(t)
	ctx := context.Background()
	want := reply.Message{Subject: reply.Subject, Body: "Dear Jane"}

	replier.EXPECT().Preview(ctx, "Jane", []string{"fever"}, "").Return(want)

	assert.Equal(t, want, svc.PreviewReply(ctx, "Jane", []string{"fever"}, ""))
}
