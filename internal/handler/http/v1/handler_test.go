package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/rural_health_triage/internal/config"
	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/reply"
	"github.com/shenikar/rural_health_triage/internal/service"
	"github.com/shenikar/rural_health_triage/internal/service/mocks"
)

var apiKey = map[string]string{"X-API-Key": "test-api-key"}

type serviceMocks struct {
	reports    *mocks.MockReportService
	responders *mocks.MockResponderService
	triage     *mocks.MockTriageService
}

// newTestHandler создает Handler с мокированными сервисами
func newTestHandler(t *testing.T, cfgs ...*config.Config) (*Handler, serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		reports:    mocks.NewMockReportService(ctrl),
		responders: mocks.NewMockResponderService(ctrl),
		triage:     mocks.NewMockTriageService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{APIKeys: []string{"test-api-key"}}
	if len(cfgs) > 0 {
		cfg = cfgs[0]
	}

	handler := NewHandler(m.reports, m.responders, m.triage, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func strPtr(s string) *string { return &s }

func sampleReport() *models.Report {
	return &models.Report{
		ID:          uuid.New(),
		PatientName: "Jane Doe",
		Email:       "jane@example.com",
		Subject:     "Chest pain",
		Body:        "I have chest pain near Springfield",
		Symptoms:    []string{"pain", "chest pain"},
		Location:    strPtr("Springfield"),
		Status:      models.ReportStatusNew,
		Critical:    true,
		ReceivedAt:  time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		CreatedAt:   time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

func validInbound() InboundEmailRequest {
	return InboundEmailRequest{
		From:     "jane@example.com",
		FromName: "Jane Doe",
		Subject:  "Chest pain",
		TextBody: "I have chest pain near Springfield",
	}
}

func TestInboundEmail_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	report := sampleReport()

	m.reports.EXPECT().
		ProcessInbound(gomock.Any(), models.InboundEmail{
			From:     "jane@example.com",
			FromName: "Jane Doe",
			Subject:  "Chest pain",
			TextBody: "I have chest pain near Springfield",
		}).
		Return(report, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/inbound-email", jsonBody(t, validInbound()))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp InboundEmailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email processed and auto-reply sent", resp.Message)
	require.NotNil(t, resp.Report)
	assert.Equal(t, report.ID, resp.Report.ID)
	assert.True(t, resp.Report.Critical)
}

func TestInboundEmail_HTMLOnlyBodyAccepted(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().
		ProcessInbound(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.InboundEmail) (*models.Report, error) {
			assert.Empty(t, in.TextBody)
			assert.Equal(t, "<p>I have a fever</p>", in.HTMLBody)
			return sampleReport(), nil
		}).Times(1)

	body := `{"From":"jane@example.com","Subject":"Help","HtmlBody":"<p>I have a fever</p>"}`
	w := makeRequest(router, "POST", "/api/v1/inbound-email", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInboundEmail_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().ProcessInbound(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/inbound-email", bytes.NewBufferString(`{"From": "x"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestInboundEmail_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	req := validInbound()
	req.From = ""

	m.reports.EXPECT().ProcessInbound(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/inbound-email", jsonBody(t, req))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'From' failed on the 'required' tag")
}

func TestInboundEmail_MissingBody(t *testing.T) {
	_, m, router := newTestHandler(t)
	req := validInbound()
	req.TextBody = ""

	m.reports.EXPECT().ProcessInbound(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/inbound-email", jsonBody(t, req))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'required_without' tag")
}

func TestInboundEmail_RejectedByService(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().
		ProcessInbound(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: malformed sender", service.ErrInvalidInbound)).Times(1)

	w := makeRequest(router, "POST", "/api/v1/inbound-email", jsonBody(t, validInbound()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "malformed sender")
}

func TestInboundEmail_DispatchFailed(t *testing.T) {
	_, m, router := newTestHandler(t)
	report := sampleReport()
	dispatchErr := fmt.Errorf("%w: %w", reply.ErrDispatchFailed, errors.New("postmark down"))

	m.reports.EXPECT().
		ProcessInbound(gomock.Any(), gomock.Any()).
		Return(report, fmt.Errorf("service: could not send auto-reply: %w", dispatchErr)).Times(1)

	w := makeRequest(router, "POST", "/api/v1/inbound-email", jsonBody(t, validInbound()))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp DispatchFailedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, report.ID, resp.ReportID)
	assert.Equal(t, "failed to send auto-reply", resp.Error)
}

func TestInboundEmail_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().
		ProcessInbound(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db is down")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/inbound-email", jsonBody(t, validInbound()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestInboundEmail_BasicAuth(t *testing.T) {
	cfg := &config.Config{
		APIKeys:         []string{"test-api-key"},
		InboundUser:     "postmark",
		InboundPassword: "s3cret",
	}
	_, m, router := newTestHandler(t, cfg)

	m.reports.EXPECT().ProcessInbound(gomock.Any(), gomock.Any()).Return(sampleReport(), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/inbound-email", jsonBody(t, validInbound()))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest("POST", "/api/v1/inbound-email", jsonBody(t, validInbound()))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("postmark", "s3cret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListReports_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reports := []*models.Report{sampleReport(), sampleReport()}

	m.reports.EXPECT().ListReports(gomock.Any(), 2, 5).Return(reports, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports?page=2&pageSize=5", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestListReports_DefaultPaging(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports(gomock.Any(), 1, 20).Return([]*models.Report{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListReports_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports", nil, apiKey)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListReports_RequiresAPIKey(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestGetReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	report := sampleReport()

	m.reports.EXPECT().GetReport(gomock.Any(), report.ID).Return(report, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s", report.ID), nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, report.ID, resp.ID)
	assert.Equal(t, []string{"pain", "chest pain"}, resp.Symptoms)
	require.NotNil(t, resp.Location)
	assert.Equal(t, "Springfield", *resp.Location)
	assert.True(t, resp.Critical)
}

func TestGetReport_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().GetReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports/invalid-uuid", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report ID")
}

func TestGetReport_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.reports.EXPECT().
		GetReport(gomock.Any(), id).
		Return(nil, fmt.Errorf("service: could not get report: %w", models.ErrNotFound)).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s", id), nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestGetReport_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.reports.EXPECT().GetReport(gomock.Any(), id).Return(nil, errors.New("db error")).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s", id), nil, apiKey)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetTimeline_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	events := []models.TimelineEvent{
		{Kind: "received", Label: "Email Received", At: at},
		{Kind: "auto_reply", Label: "Auto-reply Sent", At: at.Add(2 * time.Second)},
	}

	m.reports.EXPECT().Timeline(gomock.Any(), id).Return(events, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s/timeline", id), nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []TimelineEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Email Received", resp[0].Label)
	assert.Equal(t, "Auto-reply Sent", resp[1].Label)
}

func TestListEmails_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()
	emails := []*models.SentEmail{{ID: 1, ReportID: id, Recipient: "jane@example.com", Subject: reply.Subject, MessageID: "pm-1"}}

	m.reports.EXPECT().ListEmails(gomock.Any(), id).Return(emails, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s/emails", id), nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message_id":"pm-1"`)
}

func TestListAudit_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.reports.EXPECT().ListAudit(gomock.Any(), id).Return(nil, models.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s/audit", id), nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignResponder_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	report := sampleReport()
	responderID := uuid.New()
	report.Status = models.ReportStatusAssigned
	report.ResponderID = &responderID
	report.ResponderName = strPtr("Dr. Who")

	m.reports.EXPECT().AssignResponder(gomock.Any(), report.ID, responderID, "dispatcher").Return(report, nil).Times(1)

	body := AssignResponderRequest{ResponderID: responderID.String(), Actor: "dispatcher"}
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/assign", report.ID), jsonBody(t, body), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ReportStatusAssigned, resp.Status)
	require.NotNil(t, resp.ResponderName)
	assert.Equal(t, "Dr. Who", *resp.ResponderName)
}

func TestAssignResponder_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().AssignResponder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := AssignResponderRequest{ResponderID: "not-a-uuid"}
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/assign", uuid.New()), jsonBody(t, body), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'uuid' tag")
}

func TestAssignResponder_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"inactive responder", fmt.Errorf("service: %w", service.ErrResponderInactive), "responder is inactive"},
		{"resolved report", fmt.Errorf("service: %w", service.ErrInvalidTransition), "report is already resolved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.reports.EXPECT().AssignResponder(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(nil, tt.err).Times(1)

			body := AssignResponderRequest{ResponderID: uuid.New().String()}
			w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/assign", uuid.New()), jsonBody(t, body), apiKey)

			assert.Equal(t, http.StatusConflict, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestResolveReport_WithoutBody(t *testing.T) {
	_, m, router := newTestHandler(t)
	report := sampleReport()
	report.Status = models.ReportStatusResolved

	m.reports.EXPECT().ResolveReport(gomock.Any(), report.ID, "").Return(report, nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/resolve", report.ID), nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"resolved"`)
}

func TestResolveReport_WithActor(t *testing.T) {
	_, m, router := newTestHandler(t)
	report := sampleReport()

	m.reports.EXPECT().ResolveReport(gomock.Any(), report.ID, "nurse").Return(report, nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/resolve", report.ID), jsonBody(t, ResolveReportRequest{Actor: "nurse"}), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	stats := &models.ReportStats{TotalReports: 12, ReportsToday: 3, UniqueLocations: 4, CommonSymptom: "fever"}

	m.reports.EXPECT().GetStats(gomock.Any()).Return(stats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalReports":12,"reportsToday":3,"uniqueLocations":4,"commonSymptom":"fever"}`, w.Body.String())
}

func TestGetStats_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("stats error")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, apiKey)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestCreateResponder_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.responders.EXPECT().
		CreateResponder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Responder) error {
			r.ID = id
			r.Status = models.ResponderStatusActive
			return nil
		}).Times(1)

	body := CreateResponderRequest{Name: "Dr. Who", Email: "who@clinic.org"}
	w := makeRequest(router, "POST", "/api/v1/responders", jsonBody(t, body), apiKey)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ResponderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, models.ResponderStatusActive, resp.Status)
}

func TestCreateResponder_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.responders.EXPECT().CreateResponder(gomock.Any(), gomock.Any()).Times(0)

	body := CreateResponderRequest{Name: "Dr. Who", Email: "not-an-email"}
	w := makeRequest(router, "POST", "/api/v1/responders", jsonBody(t, body), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Email' failed on the 'email' tag")
}

func TestListResponders_IncludeInactive(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.responders.EXPECT().ListResponders(gomock.Any(), true).Return([]*models.Responder{{ID: uuid.New(), Name: "A"}}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/responders?includeInactive=true", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateResponder_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.responders.EXPECT().
		UpdateResponder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Responder) error {
			assert.Equal(t, id, r.ID)
			return fmt.Errorf("service: %w", models.ErrNotFound)
		}).Times(1)

	body := UpdateResponderRequest{Name: "Dr. Who", Email: "who@clinic.org", Status: "inactive"}
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/responders/%s", id), jsonBody(t, body), apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateResponder_InvalidStatus(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.responders.EXPECT().UpdateResponder(gomock.Any(), gomock.Any()).Times(0)

	body := UpdateResponderRequest{Name: "Dr. Who", Email: "who@clinic.org", Status: "retired"}
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/responders/%s", uuid.New()), jsonBody(t, body), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'oneof' tag")
}

func TestDeactivateResponder_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.responders.EXPECT().DeactivateResponder(gomock.Any(), id).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/responders/%s", id), nil, apiKey)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeactivateResponder_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.responders.EXPECT().DeactivateResponder(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/responders/invalid-uuid", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid responder ID")
}

func TestParseText_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	record := models.TriageRecord{Symptoms: []string{"fever", "pain", "chest pain"}, Location: strPtr("Springfield")}

	m.triage.EXPECT().Parse("fever and chest pain near Springfield").Return(record).Times(1)
	m.triage.EXPECT().IsCritical(record.Symptoms).Return(true).Times(1)

	w := makeRequest(router, "POST", "/api/v1/triage/parse", jsonBody(t, ParseRequest{Text: "fever and chest pain near Springfield"}), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"symptoms":["fever","pain","chest pain"],"location":"Springfield","critical":true}`, w.Body.String())
}

func TestParseText_NoLocation(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.triage.EXPECT().Parse("hello").Return(models.TriageRecord{Symptoms: []string{}}).Times(1)
	m.triage.EXPECT().IsCritical(gomock.Any()).Return(false).Times(1)

	w := makeRequest(router, "POST", "/api/v1/triage/parse", jsonBody(t, ParseRequest{Text: "hello"}), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"symptoms":[],"location":null,"critical":false}`, w.Body.String())
}

func TestNearbyFacilities(t *testing.T) {
	facility := models.Facility{Name: "General Hospital", Address: "1 Main St", DistanceMeters: 300}

	tests := []struct {
		name        string
		facilities  []models.Facility
		err         error
		count       int
		unavailable bool
	}{
		{"found", []models.Facility{facility}, nil, 1, false},
		{"nothing nearby", []models.Facility{}, nil, 0, false},
		{"upstream failure", nil, errors.New("overpass timeout"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.triage.EXPECT().NearbyFacilities(gomock.Any(), "Springfield").Return(tt.facilities, tt.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/triage/facilities", jsonBody(t, FacilitiesRequest{Location: "Springfield"}), apiKey)

			assert.Equal(t, http.StatusOK, w.Code)
			var resp FacilitiesResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Len(t, resp.Facilities, tt.count)
			assert.Equal(t, tt.unavailable, resp.Unavailable)
		})
	}
}

func TestReplyPreview_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	msg := reply.Message{Subject: reply.Subject, Body: "Dear Jane,\n..."}

	m.triage.EXPECT().PreviewReply(gomock.Any(), "Jane", []string{"fever"}, "").Return(msg).Times(1)

	body := ReplyPreviewRequest{Name: "Jane", Symptoms: []string{"fever"}}
	w := makeRequest(router, "POST", "/api/v1/triage/reply-preview", jsonBody(t, body), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReplyPreviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reply.Subject, resp.Subject)
	assert.Equal(t, msg.Body, resp.Body)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware([]string{"https://dashboard.example.org"}))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Origin": "https://dashboard.example.org"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://dashboard.example.org", w.Header().Get("Access-Control-Allow-Origin"))

	w = makeRequest(router, "GET", "/test", nil, map[string]string{"Origin": "https://evil.example.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
