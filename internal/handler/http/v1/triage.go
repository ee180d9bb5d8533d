package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/rural_health_triage/internal/models"
)

// @Summary Parse free text into symptoms and location
// @Tags Triage
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param text body ParseRequest true "Text to parse"
// @Success 200 {object} ParseResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /triage/parse [post]
func (h *Handler) parseText(c *gin.Context) {
	var input ParseRequest
	log := h.logger.WithField("method", "parseText")

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

	record := h.triageService.Parse(input.Text)
	c.JSON(http.StatusOK, ParseResponse{
		Symptoms: record.Symptoms,
		Location: record.Location,
		Critical: h.triageService.IsCritical(record.Symptoms),
	})
}

// @Summary Find nearby medical facilities
// @Description Upstream failures are reported with unavailable=true rather than an error status.
// @Tags Triage
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body FacilitiesRequest true "Location text"
// @Success 200 {object} FacilitiesResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /triage/facilities [post]
func (h *Handler) nearbyFacilities(c *gin.Context) {
	var input FacilitiesRequest
	log := h.logger.WithField("method", "nearbyFacilities")

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

	facilities, err := h.triageService.NearbyFacilities(c.Request.Context(), input.Location)
	resp := FacilitiesResponse{Location: input.Location, Facilities: facilities}
	if err != nil {
		resp.Facilities = []models.Facility{}
		resp.Unavailable = true
	}
	if resp.Facilities == nil {
		resp.Facilities = []models.Facility{}
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Preview the auto-reply
// @Description Composes the reply a patient would get, without sending it.
// @Tags Triage
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param preview body ReplyPreviewRequest true "Reply inputs"
// @Success 200 {object} ReplyPreviewResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /triage/reply-preview [post]
func (h *Handler) replyPreview(c *gin.Context) {
	var input ReplyPreviewRequest
	log := h.logger.WithField("method", "replyPreview")

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

	msg := h.triageService.PreviewReply(c.Request.Context(), input.Name, input.Symptoms, input.Location)
	c.JSON(http.StatusOK, ReplyPreviewResponse{Subject: msg.Subject, Body: msg.Body})
}
