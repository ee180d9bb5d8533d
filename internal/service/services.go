package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/reply"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// ReportService определяет контракт бизнес-логики обращений
type ReportService interface {
	ProcessInbound(ctx context.Context, in models.InboundEmail) (*models.Report, error)
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error)
	GetStats(ctx context.Context) (*models.ReportStats, error)
	AssignResponder(ctx context.Context, reportID, responderID uuid.UUID, actor string) (*models.Report, error)
	ResolveReport(ctx context.Context, reportID uuid.UUID, actor string) (*models.Report, error)
	Timeline(ctx context.Context, reportID uuid.UUID) ([]models.TimelineEvent, error)
	ListEmails(ctx context.Context, reportID uuid.UUID) ([]*models.SentEmail, error)
	ListAudit(ctx context.Context, reportID uuid.UUID) ([]*models.AuditEntry, error)
}

// ResponderService определяет контракт управления ответственными
type ResponderService interface {
	CreateResponder(ctx context.Context, responder *models.Responder) error
	GetResponder(ctx context.Context, id uuid.UUID) (*models.Responder, error)
	ListResponders(ctx context.Context, includeInactive bool) ([]*models.Responder, error)
	UpdateResponder(ctx context.Context, responder *models.Responder) error
	DeactivateResponder(ctx context.Context, id uuid.UUID) error
}

// TriageService открывает три основные операции: разбор текста, поиск учреждений и предпросмотр ответа
type TriageService interface {
	Parse(text string) models.TriageRecord
	NearbyFacilities(ctx context.Context, location string) ([]models.Facility, error)
	PreviewReply(ctx context.Context, name string, symptoms []string, location string) reply.Message
	IsCritical(symptoms []string) bool
}
