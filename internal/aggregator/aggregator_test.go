package aggregator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/service"
	"github.com/citypulse/waterlog-api/internal/service/mocks"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func squareWard(id int64, minLon, minLat, size float64) *models.Ward {
	boundary, _ := json.Marshal(map[string]any{
		"type": "Polygon",
		"coordinates": [][][]float64{{
			{minLon, minLat},
			{minLon + size, minLat},
			{minLon + size, minLat + size},
			{minLon, minLat + size},
			{minLon, minLat},
		}},
	})
	return &models.Ward{ID: id, WardNumber: "W", Boundary: boundary}
}

func TestRun_ScoresEveryWard(t *testing.T) {
	ctrl := gomock.NewController(t)
	wards := mocks.NewMockWardRepository(ctrl)
	reports := mocks.NewMockReportRepository(ctrl)
	ctx := context.Background()

	// Two 0.1x0.1 degree wards, roughly 123 km² each.
	wardA := squareWard(1, 77.0, 28.0, 0.1)
	wardB := squareWard(2, 78.0, 28.0, 0.1)

	wards.EXPECT().ListWards(gomock.Any()).Return([]*models.Ward{wardA, wardB}, nil)
	reports.EXPECT().ListPoints(gomock.Any()).Return([]models.ReportPoint{
		{ID: 1, Latitude: 28.05, Longitude: 77.05}, // ward A
		{ID: 2, Latitude: 28.05, Longitude: 77.06}, // ward A
		{ID: 3, Latitude: 28.05, Longitude: 78.05}, // ward B
		{ID: 4, Latitude: 10.0, Longitude: 10.0},   // outside every ward
	}, nil)
	wards.EXPECT().
		UpdateRiskScores(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updates []service.WardRiskUpdate) error {
			require.Len(t, updates, 2)
			byWard := map[int64]service.WardRiskUpdate{}
			for _, u := range updates {
				byWard[u.WardID] = u
			}
			assert.Greater(t, byWard[1].IncidentDensity, byWard[2].IncidentDensity)
			for _, u := range byWard {
				assert.GreaterOrEqual(t, u.RiskScore, 0.0)
				assert.LessOrEqual(t, u.RiskScore, 100.0)
			}
			return nil
		})

	a := New(wards, reports, testLogger(), time.Minute)
	require.NoError(t, a.Run(ctx))
}

func TestRun_NoWardsIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	wards := mocks.NewMockWardRepository(ctrl)
	reports := mocks.NewMockReportRepository(ctrl)

	wards.EXPECT().ListWards(gomock.Any()).Return(nil, nil)

	a := New(wards, reports, testLogger(), time.Minute)
	require.NoError(t, a.Run(context.Background()))
}

func TestRun_PublishFailureLeavesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	wards := mocks.NewMockWardRepository(ctrl)
	reports := mocks.NewMockReportRepository(ctrl)

	wards.EXPECT().ListWards(gomock.Any()).Return([]*models.Ward{squareWard(1, 77, 28, 0.1)}, nil)
	reports.EXPECT().ListPoints(gomock.Any()).Return(nil, nil)
	wards.EXPECT().UpdateRiskScores(gomock.Any(), gomock.Any()).Return(errors.New("tx aborted"))

	a := New(wards, reports, testLogger(), time.Minute)
	assert.Error(t, a.Run(context.Background()))
}

func TestRun_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	wards := mocks.NewMockWardRepository(ctrl)
	reports := mocks.NewMockReportRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	wards.EXPECT().ListWards(gomock.Any()).Return([]*models.Ward{squareWard(1, 77, 28, 0.1)}, nil)
	reports.EXPECT().
		ListPoints(gomock.Any()).
		DoAndReturn(func(context.Context) ([]models.ReportPoint, error) {
			cancel()
			return nil, nil
		})

	a := New(wards, reports, testLogger(), time.Minute)
	err := a.Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeedWards_SkipsPopulatedTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	wards := mocks.NewMockWardRepository(ctrl)

	wards.EXPECT().CountWards(gomock.Any()).Return(5, nil)

	require.NoError(t, SeedWards(context.Background(), wards, "does-not-matter.geojson", testLogger()))
}
