package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/rural_health_triage/internal/models"
)

type responderService struct {
	repo   ResponderRepository
	logger *logrus.Logger
}

func NewResponderService(repo ResponderRepository, logger *logrus.Logger) ResponderService {
	return &responderService{
		repo:   repo,
		logger: logger,
	}
}

// CreateResponder создает активного ответственного
func (s *responderService) CreateResponder(ctx context.Context, responder *models.Responder) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "responder",
		"method":  "CreateResponder",
		"name":    responder.Name,
	})
	log.Info("Attempting to create a new responder")

	responder.Name = strings.TrimSpace(responder.Name)
	responder.Email = strings.ToLower(strings.TrimSpace(responder.Email))
	responder.Status = models.ResponderStatusActive
	if err := s.repo.Create(ctx, responder); err != nil {
		log.WithError(err).Error("Failed to create responder in repository")
		return fmt.Errorf("service: could not create responder: %w", err)
	}

	log.WithField("responder_id", responder.ID).Info("Responder created successfully")
	return nil
}

func (s *responderService) GetResponder(ctx context.Context, id uuid.UUID) (*models.Responder, error) {
	responder, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("responder_id", id).Error("Failed to get responder in repository")
		return nil, fmt.Errorf("service: could not get responder: %w", err)
	}
	return responder, nil
}

// ListResponders возвращает ответственных
func (s *responderService) ListResponders(ctx context.Context, includeInactive bool) ([]*models.Responder, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "responder",
		"method":           "ListResponders",
		"include_inactive": includeInactive,
	})

	responders, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		log.WithError(err).Error("Failed to list responders from repository")
		return nil, fmt.Errorf("service: could not list responders: %w", err)
	}
	log.WithField("count", len(responders)).Info("Responders listed successfully")
	return responders, nil
}

// UpdateResponder обновляет имя, email и статус существующего ответственного
func (s *responderService) UpdateResponder(ctx context.Context, responder *models.Responder) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "responder",
		"method":       "UpdateResponder",
		"responder_id": responder.ID,
	})
	log.Info("Attempting to update responder")

	existing, err := s.repo.GetByID(ctx, responder.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent responder")
		return fmt.Errorf("service: responder with id %s not found for update: %w", responder.ID, err)
	}

	existing.Name = strings.TrimSpace(responder.Name)
	existing.Email = strings.ToLower(strings.TrimSpace(responder.Email))
	if responder.Status != "" {
		existing.Status = responder.Status
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update responder in repository")
		return fmt.Errorf("service: could not update responder: %w", err)
	}
	*responder = *existing

	log.Info("Responder updated successfully")
	return nil
}

// DeactivateResponder деактивирует ответственного
func (s *responderService) DeactivateResponder(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "responder",
		"method":       "DeactivateResponder",
		"responder_id": id,
	})
	log.Info("Attempting to deactivate responder")

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate responder in repository")
		return fmt.Errorf("service: could not deactivate responder: %w", err)
	}

	log.Info("Responder deactivated successfully")
	return nil
}
