package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/reply"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ReportRepository определяет контракт для работы с бд обращений
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error)
	MarkAutoReplySent(ctx context.Context, id uuid.UUID, at time.Time) error
	AssignResponder(ctx context.Context, id, responderID uuid.UUID, at time.Time) error
	Resolve(ctx context.Context, id uuid.UUID, at time.Time) error
	GetStats(ctx context.Context, since time.Time) (*models.ReportStats, error)
}

// ResponderRepository определяет контракт для работы с бд ответственных
type ResponderRepository interface {
	Create(ctx context.Context, responder *models.Responder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Responder, error)
	List(ctx context.Context, includeInactive bool) ([]*models.Responder, error)
	Update(ctx context.Context, responder *models.Responder) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// AuditRepository хранит журнал аудита и отправленные письма
type AuditRepository interface {
	Record(ctx context.Context, entry *models.AuditEntry) error
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.AuditEntry, error)
	SaveSentEmail(ctx context.Context, email *models.SentEmail) error
	ListSentEmails(ctx context.Context, reportID uuid.UUID) ([]*models.SentEmail, error)
}

// ReportParser извлекает симптомы и местоположение из текста
type ReportParser interface {
	Parse(text string) models.TriageRecord
}

// CriticalClassifier определяет, требует ли набор симптомов срочного внимания
type CriticalClassifier interface {
	IsCritical(symptoms []string) bool
}

// Replier составляет и отправляет автоответ пациенту
type Replier interface {
	Send(ctx context.Context, to, name string, symptoms []string, location string) (reply.Dispatch, error)
	Preview(ctx context.Context, name string, symptoms []string, location string) reply.Message
}

// FacilityLocator ищет ближайшие учреждения
type FacilityLocator interface {
	Nearby(ctx context.Context, locationText string) ([]models.Facility, error)
}
