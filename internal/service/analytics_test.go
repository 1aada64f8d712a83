package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citypulse/waterlog-api/internal/apperror"
	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/service"
	"github.com/citypulse/waterlog-api/internal/service/mocks"
)

func newTestAnalyticsService(t *testing.T) (service.AnalyticsService, *mocks.MockWardRepository, *mocks.MockReportRepository) {
	ctrl := gomock.NewController(t)
	wards := mocks.NewMockWardRepository(ctrl)
	reports := mocks.NewMockReportRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return service.NewAnalyticsService(wards, reports, logger), wards, reports
}

func TestGetWardAnalytics_Success(t *testing.T) {
	svc, wards, _ := newTestAnalyticsService(t)
	ctx := context.Background()
	ward := &models.Ward{ID: 7, WardNumber: "7", RiskScore: 61.5}
	hours := 18.4

	wards.EXPECT().GetWard(ctx, int64(7)).Return(ward, nil)
	wards.EXPECT().GetWardReportStats(ctx, int64(7)).Return(service.WardReportStats{
		Total:              12,
		Open:               4,
		Resolved:           8,
		AvgResolutionHours: &hours,
	}, nil)

	analytics, err := svc.GetWardAnalytics(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, ward, analytics.Ward)
	assert.Equal(t, 12, analytics.TotalReports)
	assert.Equal(t, 4, analytics.OpenReports)
	assert.Equal(t, 8, analytics.ResolvedReports)
	require.NotNil(t, analytics.AvgResolutionHours)
	assert.InDelta(t, 18.4, *analytics.AvgResolutionHours, 1e-9)
}

func TestGetWardAnalytics_UnknownWard(t *testing.T) {
	svc, wards, _ := newTestAnalyticsService(t)
	ctx := context.Background()

	wards.EXPECT().GetWard(ctx, int64(999)).Return(nil, apperror.NotFound("ward", 999))

	_, err := svc.GetWardAnalytics(ctx, 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetWardAnalytics_NoResolvedReports(t *testing.T) {
	svc, wards, _ := newTestAnalyticsService(t)
	ctx := context.Background()

	wards.EXPECT().GetWard(ctx, int64(7)).Return(&models.Ward{ID: 7}, nil)
	wards.EXPECT().GetWardReportStats(ctx, int64(7)).Return(service.WardReportStats{Total: 3, Open: 3}, nil)

	analytics, err := svc.GetWardAnalytics(ctx, 7)

	require.NoError(t, err)
	assert.Nil(t, analytics.AvgResolutionHours)
}

func TestHotspotsGeoJSON(t *testing.T) {
	svc, wards, _ := newTestAnalyticsService(t)
	ctx := context.Background()
	boundary := json.RawMessage(`{"type":"Polygon","coordinates":[[[77,28],[78,28],[78,29],[77,28]]]}`)

	wards.EXPECT().ListWards(ctx).Return([]*models.Ward{
		{ID: 1, WardNumber: "1", WardName: "Connaught Place", RiskScore: 80, Boundary: boundary},
		{ID: 2, WardNumber: "2", WardName: "No Boundary Ward", RiskScore: 10},
	}, nil)

	fc, err := svc.HotspotsGeoJSON(ctx)

	require.NoError(t, err)
	assert.Equal(t, "FeatureCollection", fc.Type)
	// The ward without a boundary is excluded from the layer.
	require.Len(t, fc.Features, 1)
	props := fc.Features[0].Properties
	assert.Equal(t, "CRITICAL", props["risk_category"])
	assert.Contains(t, props["recommendation"], "CRITICAL: Immediate action required")
}

func TestHotspotsGeoJSON_EmptySerializesAsArray(t *testing.T) {
	svc, wards, _ := newTestAnalyticsService(t)
	ctx := context.Background()

	wards.EXPECT().ListWards(ctx).Return(nil, nil)

	fc, err := svc.HotspotsGeoJSON(ctx)
	require.NoError(t, err)

	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"features":[]`)
}

func TestReportsGeoJSON_FilterByStatus(t *testing.T) {
	svc, _, reports := newTestAnalyticsService(t)
	ctx := context.Background()
	open := models.StatusOpen

	reports.EXPECT().ListAll(ctx, &open).Return([]*models.Report{
		{ID: 5, Title: "Flooded underpass", Status: models.StatusOpen, Severity: models.SeverityHigh, Latitude: 28.6, Longitude: 77.2, UpvoteCount: 3},
	}, nil)

	fc, err := svc.ReportsGeoJSON(ctx, &open)

	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "OPEN", fc.Features[0].Properties["status"])

	var geom struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	}
	require.NoError(t, json.Unmarshal(fc.Features[0].Geometry, &geom))
	assert.Equal(t, "Point", geom.Type)
	assert.Equal(t, []float64{77.2, 28.6}, geom.Coordinates)
}
