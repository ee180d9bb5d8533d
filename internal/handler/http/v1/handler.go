package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/rural_health_triage/internal/config"
	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/reply"
	"github.com/shenikar/rural_health_triage/internal/service"
)

type Handler struct {
	reportService    service.ReportService
	responderService service.ResponderService
	triageService    service.TriageService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	reportService service.ReportService,
	responderService service.ResponderService,
	triageService service.TriageService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		reportService:    reportService,
		responderService: responderService,
		triageService:    triageService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Receive an inbound patient email
// @Description Inbound email webhook. Stores the report, triages it and sends the auto-reply.
// @Tags Inbound
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param email body InboundEmailRequest true "Inbound email payload"
// @Success 200 {object} InboundEmailResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} DispatchFailedResponse "Report stored, auto-reply not sent"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /inbound-email [post]
func (h *Handler) inboundEmail(c *gin.Context) {
	var input InboundEmailRequest
	log := h.logger.WithField("method", "inboundEmail")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.ProcessInbound(c.Request.Context(), DTOToInboundEmail(input))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInbound):
			log.WithError(err).Warn("Inbound email rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, reply.ErrDispatchFailed) && report != nil:
			log.WithError(err).WithField("report_id", report.ID).Error("Auto-reply dispatch failed")
			c.JSON(http.StatusBadGateway, DispatchFailedResponse{
				Error:    "failed to send auto-reply",
				ReportID: report.ID,
			})
		default:
			log.WithError(err).Error("Failed to process inbound email")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, InboundEmailResponse{
		Message: "Email processed and auto-reply sent",
		Report:  ModelToReportResponse(report),
	})
}

// @Summary Get a list of reports
// @Description Get a paginated list of reports, newest first. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	reports, err := h.reportService.ListReports(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Description Get a single report with its computed critical flag. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, ok := h.reportID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "Failed to get report from service")
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Get report timeline
// @Description Lifecycle events of a report in chronological order. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {array} TimelineEventResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/timeline [get]
func (h *Handler) getTimeline(c *gin.Context) {
	id, ok := h.reportID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getTimeline").WithField("id", id)

	events, err := h.reportService.Timeline(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "Failed to build timeline")
		return
	}
	c.JSON(http.StatusOK, ModelsToTimelineResponses(events))
}

// @Summary Get emails sent for a report
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {array} SentEmailResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/emails [get]
func (h *Handler) listEmails(c *gin.Context) {
	id, ok := h.reportID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listEmails").WithField("id", id)

	emails, err := h.reportService.ListEmails(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "Failed to list sent emails")
		return
	}
	c.JSON(http.StatusOK, ModelsToSentEmailResponses(emails))
}

// @Summary Get audit log of a report
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {array} AuditEntryResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/audit [get]
func (h *Handler) listAudit(c *gin.Context) {
	id, ok := h.reportID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listAudit").WithField("id", id)

	entries, err := h.reportService.ListAudit(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "Failed to list audit entries")
		return
	}
	c.JSON(http.StatusOK, ModelsToAuditResponses(entries))
}

// @Summary Assign a responder to a report
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param assignment body AssignResponderRequest true "Responder assignment"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 404 {object} map[string]string "Report or responder not found"
// @Failure 409 {object} map[string]string "Report resolved or responder inactive"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/assign [post]
func (h *Handler) assignResponder(c *gin.Context) {
	id, ok := h.reportID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "assignResponder").WithField("id", id)

	var input AssignResponderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	responderID := uuid.MustParse(input.ResponderID)

	report, err := h.reportService.AssignResponder(c.Request.Context(), id, responderID, input.Actor)
	if err != nil {
		h.writeError(c, log, err, "Failed to assign responder")
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Mark a report resolved
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param resolution body ResolveReportRequest false "Resolution"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report already resolved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/resolve [post]
func (h *Handler) resolveReport(c *gin.Context) {
	id, ok := h.reportID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resolveReport").WithField("id", id)

	// Тело необязательно
	var input ResolveReportRequest
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := h.reportService.ResolveReport(c.Request.Context(), id, input.Actor)
	if err != nil {
		h.writeError(c, log, err, "Failed to resolve report")
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Get dashboard statistics
// @Description Totals, today's count, distinct locations and the most common symptom. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.reportService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Health check
// @Description Check if the service is up and running.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// reportID разбирает :id из пути и сам отвечает 400 при ошибке
func (h *Handler) reportID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) responderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responder ID"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError переводит ошибки сервисов в HTTP-статусы
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidTransition):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusConflict, gin.H{"error": "report is already resolved"})
	case errors.Is(err, service.ErrResponderInactive):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusConflict, gin.H{"error": "responder is inactive"})
	default:
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
