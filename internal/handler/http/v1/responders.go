package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List responders
// @Tags Responders
// @Produce json
// @Security ApiKeyAuth
// @Param includeInactive query bool false "Include deactivated responders"
// @Success 200 {array} ResponderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /responders [get]
func (h *Handler) listResponders(c *gin.Context) {
	log := h.logger.WithField("method", "listResponders")
	includeInactive := c.Query("includeInactive") == "true"

	responders, err := h.responderService.ListResponders(c.Request.Context(), includeInactive)
	if err != nil {
		log.WithError(err).Error("Failed to list responders from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToResponderResponses(responders))
}

// @Summary Create a responder
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param responder body CreateResponderRequest true "Responder creation request"
// @Success 201 {object} ResponderResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /responders [post]
func (h *Handler) createResponder(c *gin.Context) {
	var input CreateResponderRequest
	log := h.logger.WithField("method", "createResponder")

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

	model := DTOToResponderModel(input)
	if err := h.responderService.CreateResponder(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create responder in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToResponderResponse(model))
}

// @Summary Update a responder
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Responder ID"
// @Param responder body UpdateResponderRequest true "Responder update request"
// @Success 200 {object} ResponderResponse
// @Failure 400 {object} map[string]string "Invalid responder ID or request body"
// @Failure 404 {object} map[string]string "Responder not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /responders/{id} [put]
func (h *Handler) updateResponder(c *gin.Context) {
	id, ok := h.responderID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateResponder").WithField("id", id)

	var input UpdateResponderRequest
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

	model := DTOToResponderModel(input)
	model.ID = id
	if err := h.responderService.UpdateResponder(c.Request.Context(), model); err != nil {
		h.writeError(c, log, err, "Failed to update responder in service")
		return
	}
	c.JSON(http.StatusOK, ModelToResponderResponse(model))
}

// @Summary Deactivate a responder
// @Description Responders are never hard-deleted; this sets status to inactive.
// @Tags Responders
// @Security ApiKeyAuth
// @Param id path string true "Responder ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid responder ID"
// @Failure 404 {object} map[string]string "Responder not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /responders/{id} [delete]
func (h *Handler) deactivateResponder(c *gin.Context) {
	id, ok := h.responderID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deactivateResponder").WithField("id", id)

	if err := h.responderService.DeactivateResponder(c.Request.Context(), id); err != nil {
		h.writeError(c, log, err, "Failed to deactivate responder in service")
		return
	}
	c.Status(http.StatusNoContent)
}
