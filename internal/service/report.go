package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/webhook"
	"github.com/shenikar/rural_health_triage/pkg/logger"
)

const (
	actorSystem      = "system"
	noCommonSymptom  = "None"
	defaultPageSize  = 20
	maxPageSize      = 100
	timelineReceived = "email_received"
	timelineReplied  = "auto_reply_sent"
	timelineAssigned = "responder_assigned"
	timelineResolved = "marked_resolved"
)

type reportService struct {
	reports    ReportRepository
	responders ResponderRepository
	audit      AuditRepository
	parser     ReportParser
	classifier CriticalClassifier
	replier    Replier
	publisher  webhook.AlertPublisher
	logger     *logrus.Logger
	now        func() time.Time
}

// ReportDeps - зависимости сервиса обращений
type ReportDeps struct {
	Reports    ReportRepository
	Responders ResponderRepository
	Audit      AuditRepository
	Parser     ReportParser
	Classifier CriticalClassifier
	Replier    Replier
	Publisher  webhook.AlertPublisher
	Logger     *logrus.Logger
}

func NewReportService(deps ReportDeps) ReportService {
	return &reportService{
		reports:    deps.Reports,
		responders: deps.Responders,
		audit:      deps.Audit,
		parser:     deps.Parser,
		classifier: deps.Classifier,
		replier:    deps.Replier,
		publisher:  deps.Publisher,
		logger:     deps.Logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ProcessInbound проверяет письмо, разбирает его, сохраняет обращение и отправляет автоответ.
// При сбое отправки возвращается сохранённое обращение и ошибка, оборачивающая reply.ErrDispatchFailed.
func (s *reportService) ProcessInbound(ctx context.Context, in models.InboundEmail) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ProcessInbound",
	})

	msg, err := normalizeInbound(in)
	if err != nil {
		log.WithError(err).Warn("Rejected malformed inbound email")
		return nil, err
	}
	log = log.WithField("from", logger.MaskEmail(msg.Email))
	log.Info("Processing new medical report")

	record := s.parser.Parse(msg.Body)

	report := &models.Report{
		PatientName: msg.Name,
		Email:       msg.Email,
		Subject:     msg.Subject,
		Body:        msg.Body,
		Symptoms:    record.Symptoms,
		Location:    record.Location,
		Status:      models.ReportStatusNew,
		ReceivedAt:  s.now(),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to save medical report in repository")
		return nil, fmt.Errorf("service: could not save report: %w", err)
	}
	report.Critical = s.classifier.IsCritical(report.Symptoms)
	log = log.WithField("report_id", report.ID)

	s.record(ctx, report.ID, models.AuditReportReceived, actorSystem, map[string]string{
		"symptoms": fmt.Sprint(len(report.Symptoms)),
		"critical": fmt.Sprint(report.Critical),
	})

	if report.Critical {
		s.publishAlert(ctx, report, log)
	}

	dispatch, err := s.replier.Send(ctx, report.Email, report.PatientName, report.Symptoms, record.LocationOrEmpty())
	if err != nil {
		log.WithError(err).Error("Failed to send auto-reply")
		s.record(ctx, report.ID, models.AuditAutoReplyFailed, actorSystem, map[string]string{"error": err.Error()})
		return report, fmt.Errorf("service: could not send auto-reply for report %s: %w", report.ID, err)
	}

	sent := &models.SentEmail{
		ReportID:  report.ID,
		Recipient: dispatch.Recipient,
		Subject:   dispatch.Subject,
		Body:      dispatch.Body,
		MessageID: dispatch.MessageID,
		SentAt:    dispatch.SentAt,
	}
	if err := s.reports.MarkAutoReplySent(ctx, report.ID, dispatch.SentAt); err != nil {
		log.WithError(err).Error("Failed to mark auto-reply as sent")
	} else {
		report.AutoReplySentAt = &dispatch.SentAt
	}
	if err := s.audit.SaveSentEmail(ctx, sent); err != nil {
		log.WithError(err).Error("Failed to store sent email")
	}
	s.record(ctx, report.ID, models.AuditAutoReplySent, actorSystem, map[string]string{"message_id": dispatch.MessageID})

	log.Info("Medical report processed successfully")
	return report, nil
}

// GetReport получает обращение по ID
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})
	log.Info("Fetching report by ID")

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get report in repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	report.Critical = s.classifier.IsCritical(report.Symptoms)
	return report, nil
}

// ListReports возвращает список обращений с пагинацией
func (s *reportService) ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing reports")

	reports, err := s.reports.ListReports(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}
	for _, r := range reports {
		r.Critical = s.classifier.IsCritical(r.Symptoms)
	}

	log.WithField("count", len(reports)).Info("Reports listed successfully")
	return reports, nil
}

// GetStats возвращает статистику; "сегодня" считается от полуночи UTC
func (s *reportService) GetStats(ctx context.Context) (*models.ReportStats, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats, err := s.reports.GetStats(ctx, midnight)
	if err != nil {
		s.logger.WithError(err).WithField("service", "report").Error("Failed to get report stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	if stats.CommonSymptom == "" {
		stats.CommonSymptom = noCommonSymptom
	}
	return stats, nil
}

// AssignResponder назначает активного ответственного на незакрытое обращение
func (s *reportService) AssignResponder(ctx context.Context, reportID, responderID uuid.UUID, actor string) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "report",
		"method":       "AssignResponder",
		"report_id":    reportID,
		"responder_id": responderID,
	})
	log.Info("Assigning responder")

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Attempted to assign a non-existent report")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	if report.Status == models.ReportStatusResolved {
		return nil, fmt.Errorf("service: report %s is already resolved: %w", reportID, ErrInvalidTransition)
	}

	responder, err := s.responders.GetByID(ctx, responderID)
	if err != nil {
		log.WithError(err).Warn("Attempted to assign a non-existent responder")
		return nil, fmt.Errorf("service: could not get responder: %w", err)
	}
	if responder.Status != models.ResponderStatusActive {
		return nil, fmt.Errorf("service: responder %s: %w", responderID, ErrResponderInactive)
	}

	at := s.now()
	if err := s.reports.AssignResponder(ctx, reportID, responderID, at); err != nil {
		log.WithError(err).Error("Failed to assign responder in repository")
		return nil, fmt.Errorf("service: could not assign responder: %w", err)
	}
	s.record(ctx, reportID, models.AuditResponderAssign, actor, map[string]string{
		"responder_id":   responderID.String(),
		"responder_name": responder.Name,
	})

	report.Status = models.ReportStatusAssigned
	report.ResponderID = &responderID
	report.ResponderName = &responder.Name
	report.ResponderAssignedAt = &at
	report.Critical = s.classifier.IsCritical(report.Symptoms)

	log.Info("Responder assigned successfully")
	return report, nil
}

// ResolveReport закрывает обращение
func (s *reportService) ResolveReport(ctx context.Context, reportID uuid.UUID, actor string) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ResolveReport",
		"report_id": reportID,
	})
	log.Info("Resolving report")

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Attempted to resolve a non-existent report")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	if report.Status == models.ReportStatusResolved {
		return nil, fmt.Errorf("service: report %s is already resolved: %w", reportID, ErrInvalidTransition)
	}

	at := s.now()
	if err := s.reports.Resolve(ctx, reportID, at); err != nil {
		log.WithError(err).Error("Failed to resolve report in repository")
		return nil, fmt.Errorf("service: could not resolve report: %w", err)
	}
	s.record(ctx, reportID, models.AuditReportResolved, actor, nil)

	report.Status = models.ReportStatusResolved
	report.ResolvedAt = &at
	report.Critical = s.classifier.IsCritical(report.Symptoms)

	log.Info("Report resolved successfully")
	return report, nil
}

// Timeline восстанавливает этапы обработки обращения
func (s *reportService) Timeline(ctx context.Context, reportID uuid.UUID) ([]models.TimelineEvent, error) {
	report, err := s.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	events := []models.TimelineEvent{
		{Kind: timelineReceived, Label: "Email Received", At: report.ReceivedAt},
	}
	if report.AutoReplySentAt != nil {
		events = append(events, models.TimelineEvent{Kind: timelineReplied, Label: "Auto-reply Sent", At: *report.AutoReplySentAt})
	}
	if report.ResponderAssignedAt != nil {
		name := "Unknown"
		if report.ResponderName != nil && *report.ResponderName != "" {
			name = *report.ResponderName
		}
		events = append(events, models.TimelineEvent{Kind: timelineAssigned, Label: "Assigned to " + name, At: *report.ResponderAssignedAt})
	}
	if report.Status == models.ReportStatusResolved && report.ResolvedAt != nil {
		events = append(events, models.TimelineEvent{Kind: timelineResolved, Label: "Marked Resolved", At: *report.ResolvedAt})
	}
	return events, nil
}

// ListEmails возвращает автоответы, отправленные по обращению
func (s *reportService) ListEmails(ctx context.Context, reportID uuid.UUID) ([]*models.SentEmail, error) {
	if _, err := s.reports.GetByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	emails, err := s.audit.ListSentEmails(ctx, reportID)
	if err != nil {
		s.logger.WithError(err).WithField("report_id", reportID).Error("Failed to list sent emails")
		return nil, fmt.Errorf("service: could not list sent emails: %w", err)
	}
	return emails, nil
}

// ListAudit возвращает журнал аудита обращения
func (s *reportService) ListAudit(ctx context.Context, reportID uuid.UUID) ([]*models.AuditEntry, error) {
	if _, err := s.reports.GetByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	entries, err := s.audit.ListByReport(ctx, reportID)
	if err != nil {
		s.logger.WithError(err).WithField("report_id", reportID).Error("Failed to list audit entries")
		return nil, fmt.Errorf("service: could not list audit entries: %w", err)
	}
	return entries, nil
}

// record пишет аудит; ошибка журнала не прерывает обработку
func (s *reportService) record(ctx context.Context, reportID uuid.UUID, action, actor string, details map[string]string) {
	entry := &models.AuditEntry{
		ReportID: &reportID,
		Action:   action,
		Actor:    actor,
		Details:  details,
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"report_id": reportID,
			"action":    action,
		}).Error("Failed to record audit entry")
	}
}

func (s *reportService) publishAlert(ctx context.Context, report *models.Report, log *logrus.Entry) {
	if s.publisher == nil {
		return
	}
	event := webhook.AlertEvent{
		ReportID:    report.ID,
		PatientName: report.PatientName,
		Email:       report.Email,
		Subject:     report.Subject,
		Symptoms:    report.Symptoms,
		Location:    report.Location,
		ReceivedAt:  report.ReceivedAt,
		Timestamp:   s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish critical report alert")
		return
	}
	log.Info("Critical report alert published")
}
