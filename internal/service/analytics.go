package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/risk"
)

// AnalyticsService serves the ward risk views and the map layers.
type AnalyticsService interface {
	ListWards(ctx context.Context) ([]*models.Ward, error)
	GetWardAnalytics(ctx context.Context, wardID int64) (*models.WardAnalytics, error)
	HotspotsGeoJSON(ctx context.Context) (*models.FeatureCollection, error)
	ReportsGeoJSON(ctx context.Context, status *models.ReportStatus) (*models.FeatureCollection, error)
}

type analyticsService struct {
	wards   WardRepository
	reports ReportRepository
	logger  *logrus.Logger
}

func NewAnalyticsService(wards WardRepository, reports ReportRepository, logger *logrus.Logger) AnalyticsService {
	return &analyticsService{
		wards:   wards,
		reports: reports,
		logger:  logger,
	}
}

// ListWards returns all wards with their current risk figures.
func (s *analyticsService) ListWards(ctx context.Context) ([]*models.Ward, error) {
	wards, err := s.wards.ListWards(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list wards")
		return nil, fmt.Errorf("service: could not list wards: %w", err)
	}
	return wards, nil
}

// GetWardAnalytics returns one ward together with its report counters.
// An unknown ward id surfaces as a not-found error, never as a zeroed
// ward record.
func (s *analyticsService) GetWardAnalytics(ctx context.Context, wardID int64) (*models.WardAnalytics, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "GetWardAnalytics",
		"ward_id": wardID,
	})

	ward, err := s.wards.GetWard(ctx, wardID)
	if err != nil {
		log.WithError(err).Warn("Ward lookup failed")
		return nil, fmt.Errorf("service: could not get ward: %w", err)
	}

	stats, err := s.wards.GetWardReportStats(ctx, wardID)
	if err != nil {
		log.WithError(err).Error("Failed to get ward report stats")
		return nil, fmt.Errorf("service: could not get ward report stats: %w", err)
	}

	return &models.WardAnalytics{
		Ward:               ward,
		TotalReports:       stats.Total,
		OpenReports:        stats.Open,
		ResolvedReports:    stats.Resolved,
		AvgResolutionHours: stats.AvgResolutionHours,
	}, nil
}

// HotspotsGeoJSON renders every ward boundary as a polygon feature with
// its risk score and category.
func (s *analyticsService) HotspotsGeoJSON(ctx context.Context) (*models.FeatureCollection, error) {
	wards, err := s.wards.ListWards(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list wards for hotspot layer")
		return nil, fmt.Errorf("service: could not build hotspot layer: %w", err)
	}

	fc := models.NewFeatureCollection()
	for _, ward := range wards {
		if len(ward.Boundary) == 0 {
			s.logger.WithField("ward_id", ward.ID).Warn("Ward has no boundary, excluded from hotspot layer")
			continue
		}
		category := risk.Categorize(ward.RiskScore)
		fc.Features = append(fc.Features, models.Feature{
			Type: "Feature",
			Properties: map[string]any{
				"id":             ward.ID,
				"ward_number":    ward.WardNumber,
				"ward_name":      ward.WardName,
				"risk_score":     ward.RiskScore,
				"risk_category":  string(category),
				"recommendation": risk.Recommendation(category),
			},
			Geometry: ward.Boundary,
		})
	}
	return fc, nil
}

// ReportsGeoJSON renders reports as point features, optionally narrowed
// by status.
func (s *analyticsService) ReportsGeoJSON(ctx context.Context, status *models.ReportStatus) (*models.FeatureCollection, error) {
	reports, err := s.reports.ListAll(ctx, status)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list reports for map layer")
		return nil, fmt.Errorf("service: could not build report layer: %w", err)
	}

	fc := models.NewFeatureCollection()
	for _, report := range reports {
		fc.Features = append(fc.Features, models.Feature{
			Type: "Feature",
			Properties: map[string]any{
				"id":           report.ID,
				"title":        report.Title,
				"status":       string(report.Status),
				"severity":     string(report.Severity),
				"upvote_count": report.UpvoteCount,
				"created_at":   report.CreatedAt,
			},
			Geometry: models.PointGeometry(report.Longitude, report.Latitude),
		})
	}
	return fc, nil
}
