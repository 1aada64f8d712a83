package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citypulse/waterlog-api/internal/apperror"
	"github.com/citypulse/waterlog-api/internal/config"
	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/service"
	"github.com/citypulse/waterlog-api/internal/service/mocks"
	"github.com/citypulse/waterlog-api/internal/storage"
)

type handlerMocks struct {
	auth      *mocks.MockAuthService
	reports   *mocks.MockReportService
	analytics *mocks.MockAnalyticsService
}

func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		auth:      mocks.NewMockAuthService(ctrl),
		reports:   mocks.NewMockReportService(ctrl),
		analytics: mocks.NewMockAnalyticsService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	images, err := storage.NewImageStore(t.TempDir(), 1024*1024, logger)
	require.NoError(t, err)

	cfg := &config.Config{
		RateLimitReportsPerHour:  10,
		RateLimitCommentsPerHour: 30,
	}

	handler := NewHandler(m.auth, m.reports, m.analytics, images, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

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

func asCitizen(m handlerMocks) map[string]string {
	m.auth.EXPECT().
		VerifyAccessToken("citizen-token").
		Return(&service.Claims{UserID: 42, Role: models.RoleCitizen}, nil)
	return map[string]string{"Authorization": "Bearer citizen-token"}
}

func asAuthority(m handlerMocks) map[string]string {
	m.auth.EXPECT().
		VerifyAccessToken("authority-token").
		Return(&service.Claims{UserID: 77, Role: models.RoleAuthority}, nil)
	return map[string]string{"Authorization": "Bearer authority-token"}
}

func reportForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestRegister_Created(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody, _ := json.Marshal(RegisterRequest{
		Email:    "ravi@example.com",
		Password: "hunter2secret",
		FullName: "Ravi Kumar",
	})

	m.auth.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(&models.User{ID: 1, Email: "ravi@example.com", Role: models.RoleCitizen}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/register", bytes.NewReader(reqBody))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "CITIZEN", resp.Role)
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody, _ := json.Marshal(RegisterRequest{
		Email:    "ravi@example.com",
		Password: "hunter2secret",
		FullName: "Ravi Kumar",
	})

	m.auth.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("email taken: %w", apperror.ErrConflict))

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/register", bytes.NewReader(reqBody))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_InvalidEmail(t *testing.T) {
	_, router := newTestHandler(t)
	reqBody, _ := json.Marshal(RegisterRequest{
		Email:    "not-an-email",
		Password: "hunter2secret",
		FullName: "Ravi Kumar",
	})

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/register", bytes.NewReader(reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody, _ := json.Marshal(LoginRequest{Email: "ravi@example.com", Password: "wrong-pass"})

	m.auth.EXPECT().
		Login(gomock.Any(), "ravi@example.com", "wrong-pass").
		Return(nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized))

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", bytes.NewReader(reqBody))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody, _ := json.Marshal(LoginRequest{Email: "ravi@example.com", Password: "hunter2secret"})

	m.auth.EXPECT().
		Login(gomock.Any(), "ravi@example.com", "hunter2secret").
		Return(&service.TokenPair{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresAt:    time.Now().Add(30 * time.Minute),
		}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", bytes.NewReader(reqBody))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "access", resp.AccessToken)
	assert.Equal(t, "refresh", resp.RefreshToken)
}

func TestCreateReport_RequiresAuth(t *testing.T) {
	_, router := newTestHandler(t)
	body, contentType := reportForm(t, map[string]string{"title": "Some flooding"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)
	body, contentType := reportForm(t, map[string]string{
		"title":       "Knee-deep water on main road",
		"description": "Has not drained since last night.",
		"latitude":    "28.63",
		"longitude":   "77.22",
		"severity":    "HIGH",
	})

	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, r *models.Report) error {
			assert.Equal(t, int64(42), r.UserID)
			assert.Equal(t, models.SeverityHigh, r.Severity)
			r.ID = 101
			r.Status = models.StatusOpen
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", headers["Authorization"])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "OPEN", resp.Status)
}

func TestCreateReport_LatitudeOutOfRange(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)
	body, contentType := reportForm(t, map[string]string{
		"title":       "Knee-deep water on main road",
		"description": "Has not drained since last night.",
		"latitude":    "95",
		"longitude":   "77.22",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", headers["Authorization"])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReport_RateLimited(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)
	body, contentType := reportForm(t, map[string]string{
		"title":       "Knee-deep water on main road",
		"description": "Has not drained since last night.",
		"latitude":    "28.63",
		"longitude":   "77.22",
	})

	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("limit exceeded: %w", apperror.ErrRateLimited))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", headers["Authorization"])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestGetReport_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)

	m.reports.EXPECT().
		GetReport(gomock.Any(), int64(999)).
		Return(nil, apperror.NotFound("report", 999))

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/999", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReport_BadID(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/abc", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReports_InvalidStatusFilter(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports?status=FIXED", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReports_Success(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)
	open := models.StatusOpen

	m.reports.EXPECT().
		ListReports(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter service.ReportFilter) ([]*models.Report, int, error) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, open, *filter.Status)
			assert.Equal(t, 2, filter.Page)
			return []*models.Report{{ID: 1, Status: models.StatusOpen}}, 11, nil
		})

	w := makeRequest(router, http.MethodGet, "/api/v1/reports?status=OPEN&page=2&page_size=10", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Total)
	assert.Len(t, resp.Reports, 1)
}

func TestUpvoteReport_DuplicateIsConflict(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)

	m.reports.EXPECT().
		UpvoteReport(gomock.Any(), int64(5), int64(42)).
		Return(fmt.Errorf("already upvoted: %w", apperror.ErrConflict))

	w := makeRequest(router, http.MethodPost, "/api/v1/reports/5/upvote", nil, headers)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddComment_Created(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)
	reqBody, _ := json.Marshal(CommentRequest{Content: "Same on our street."})

	m.reports.EXPECT().
		AddComment(gomock.Any(), int64(5), int64(42), "Same on our street.").
		Return(&models.Comment{ID: 9, ReportID: 5, UserID: 42, Content: "Same on our street."}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/reports/5/comments", bytes.NewReader(reqBody), headers)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTriageReport_ForbiddenForCitizen(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)
	reqBody, _ := json.Marshal(TriageRequest{})

	w := makeRequest(router, http.MethodPatch, "/api/v1/reports/5/triage", bytes.NewReader(reqBody), headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTriageReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asAuthority(m)
	status := "RESOLVED"
	agency := "PWD"
	reqBody, _ := json.Marshal(TriageRequest{Status: &status, Agency: &agency, Notes: "Pump deployed"})
	resolvedAgency := models.AgencyPWD

	m.reports.EXPECT().
		TriageReport(gomock.Any(), int64(5), int64(77), gomock.Any()).
		DoAndReturn(func(_ any, _, _ int64, update service.TriageUpdate) (*models.Report, error) {
			require.NotNil(t, update.Status)
			assert.Equal(t, models.StatusResolved, *update.Status)
			require.NotNil(t, update.Agency)
			assert.Equal(t, models.AgencyPWD, *update.Agency)
			assert.Equal(t, "Pump deployed", update.Notes)
			return &models.Report{ID: 5, Status: models.StatusResolved, AssignedAgency: &resolvedAgency}, nil
		})

	w := makeRequest(router, http.MethodPatch, "/api/v1/reports/5/triage", bytes.NewReader(reqBody), headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RESOLVED", resp.Status)
	require.NotNil(t, resp.AssignedAgency)
	assert.Equal(t, "PWD", *resp.AssignedAgency)
}

func TestTriageReport_UnknownStatusRejectedByValidation(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asAuthority(m)
	status := "FIXED"
	reqBody, _ := json.Marshal(TriageRequest{Status: &status})

	w := makeRequest(router, http.MethodPatch, "/api/v1/reports/5/triage", bytes.NewReader(reqBody), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadResolutionImage_RequiresFile(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asAuthority(m)
	body, contentType := reportForm(t, map[string]string{"note": "no file attached"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/5/resolution-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", headers["Authorization"])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadResolutionImage_RejectsBadExtension(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asAuthority(m)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "resolution.gif")
	require.NoError(t, err)
	_, err = part.Write([]byte("gif bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/5/resolution-image", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", headers["Authorization"])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAuditLog_Success(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asAuthority(m)
	old := models.StatusOpen
	newStatus := models.StatusInProgress

	m.reports.EXPECT().
		GetAuditLog(gomock.Any(), int64(5)).
		Return([]*models.AuditEntry{{
			ID:        1,
			ReportID:  5,
			UserID:    77,
			Action:    models.AuditStatusUpdate,
			OldStatus: &old,
			NewStatus: &newStatus,
		}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/5/audit", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AuditEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "STATUS_UPDATE", resp[0].Action)
}

func TestListWards_Public(t *testing.T) {
	m, router := newTestHandler(t)

	m.analytics.EXPECT().
		ListWards(gomock.Any()).
		Return([]*models.Ward{{ID: 1, WardNumber: "1", RiskScore: 42.5}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/wards", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetWardAnalytics_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.analytics.EXPECT().
		GetWardAnalytics(gomock.Any(), int64(999)).
		Return(nil, apperror.NotFound("ward", 999))

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/wards/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReport_OptionalFieldsMayBeEmpty(t *testing.T) {
	m, router := newTestHandler(t)
	headers := asCitizen(m)
	body, contentType := reportForm(t, map[string]string{
		"title":       "Waterlogged underpass",
		"description": "Standing water under the rail bridge.",
		"latitude":    "28.65",
		"longitude":   "77.23",
	})

	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, r *models.Report) error {
			assert.Empty(t, r.Address)
			assert.Empty(t, r.ImagePath)
			r.ID = 102
			r.Status = models.StatusOpen
			r.Severity = models.SeverityMedium
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", headers["Authorization"])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetReportsGeoJSON(t *testing.T) {
	m, router := newTestHandler(t)
	open := models.StatusOpen

	m.analytics.EXPECT().
		ReportsGeoJSON(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, status *models.ReportStatus) (*models.FeatureCollection, error) {
			require.NotNil(t, status)
			assert.Equal(t, open, *status)
			return models.NewFeatureCollection(), nil
		})

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/reports-geojson?status=OPEN", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetHotspots(t *testing.T) {
	m, router := newTestHandler(t)

	m.analytics.EXPECT().
		HotspotsGeoJSON(gomock.Any()).
		Return(models.NewFeatureCollection(), nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/hotspots", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"features":[]`)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
