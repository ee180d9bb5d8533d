package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/reply"
)

type triageService struct {
	parser     ReportParser
	classifier CriticalClassifier
	locator    FacilityLocator
	replier    Replier
	logger     *logrus.Logger
}

func NewTriageService(parser ReportParser, classifier CriticalClassifier, locator FacilityLocator, replier Replier, logger *logrus.Logger) TriageService {
	return &triageService{
		parser:     parser,
		classifier: classifier,
		locator:    locator,
		replier:    replier,
		logger:     logger,
	}
}

func (s *triageService) Parse(text string) models.TriageRecord {
	return s.parser.Parse(text)
}

// NearbyFacilities возвращает ошибку только при сбое внешних сервисов;
// нераспознанное местоположение дает пустой список
func (s *triageService) NearbyFacilities(ctx context.Context, location string) ([]models.Facility, error) {
	facilities, err := s.locator.Nearby(ctx, location)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service":  "triage",
			"method":   "NearbyFacilities",
			"location": location,
		}).Warn("Facility lookup failed")
		return nil, err
	}
	return facilities, nil
}

func (s *triageService) PreviewReply(ctx context.Context, name string, symptoms []string, location string) reply.Message {
	return s.replier.Preview(ctx, name, symptoms, location)
}

func (s *triageService) IsCritical(symptoms []string) bool {
	return s.classifier.IsCritical(symptoms)
}
