package v1

import "github.com/shenikar/rural_health_triage/internal/models"

// DTOToInboundEmail преобразует DTO вебхука в доменную модель
func DTOToInboundEmail(dto InboundEmailRequest) models.InboundEmail {
	return models.InboundEmail{
		From:     dto.From,
		FromName: dto.FromName,
		Subject:  dto.Subject,
		TextBody: dto.TextBody,
		HTMLBody: dto.HtmlBody,
	}
}

// DTOToResponderModel преобразует DTO создания/обновления в доменную модель
func DTOToResponderModel(dto any) *models.Responder {
	switch v := dto.(type) {
	case CreateResponderRequest:
		return &models.Responder{
			Name:  v.Name,
			Email: v.Email,
		}
	case UpdateResponderRequest:
		return &models.Responder{
			Name:   v.Name,
			Email:  v.Email,
			Status: v.Status,
		}
	}
	return nil
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.Report) *ReportResponse {
	symptoms := model.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return &ReportResponse{
		ID:                  model.ID,
		PatientName:         model.PatientName,
		Email:               model.Email,
		Subject:             model.Subject,
		Body:                model.Body,
		Symptoms:            symptoms,
		Location:            model.Location,
		Status:              model.Status,
		Critical:            model.Critical,
		ResponderID:         model.ResponderID,
		ResponderName:       model.ResponderName,
		ResponderAssignedAt: model.ResponderAssignedAt,
		AutoReplySentAt:     model.AutoReplySentAt,
		ResolvedAt:          model.ResolvedAt,
		ReceivedAt:          model.ReceivedAt,
		CreatedAt:           model.CreatedAt,
	}
}

// ModelsToReportResponses преобразует слайс моделей в слайс DTO
func ModelsToReportResponses(reports []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, model := range reports {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

func ModelToResponderResponse(model *models.Responder) *ResponderResponse {
	return &ResponderResponse{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ModelsToResponderResponses(responders []*models.Responder) []*ResponderResponse {
	responses := make([]*ResponderResponse, len(responders))
	for i, model := range responders {
		responses[i] = ModelToResponderResponse(model)
	}
	return responses
}

func ModelToStatsResponse(model *models.ReportStats) StatsResponse {
	return StatsResponse{
		TotalReports:    model.TotalReports,
		ReportsToday:    model.ReportsToday,
		UniqueLocations: model.UniqueLocations,
		CommonSymptom:   model.CommonSymptom,
	}
}

func ModelsToTimelineResponses(events []models.TimelineEvent) []TimelineEventResponse {
	responses := make([]TimelineEventResponse, len(events))
	for i, e := range events {
		responses[i] = TimelineEventResponse{Kind: e.Kind, Label: e.Label, At: e.At}
	}
	return responses
}

func ModelsToSentEmailResponses(emails []*models.SentEmail) []SentEmailResponse {
	responses := make([]SentEmailResponse, len(emails))
	for i, e := range emails {
		responses[i] = SentEmailResponse{
			ID:        e.ID,
			Recipient: e.Recipient,
			Subject:   e.Subject,
			Body:      e.Body,
			MessageID: e.MessageID,
			SentAt:    e.SentAt,
		}
	}
	return responses
}

func ModelsToAuditResponses(entries []*models.AuditEntry) []AuditEntryResponse {
	responses := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = AuditEntryResponse{
			ID:        e.ID,
			Action:    e.Action,
			Actor:     e.Actor,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		}
	}
	return responses
}
