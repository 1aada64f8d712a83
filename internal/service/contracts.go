package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/citypulse/waterlog-api/internal/models"
)

// ReportFilter narrows report listings. Nil pointer fields are not applied.
type ReportFilter struct {
	Status   *models.ReportStatus
	WardID   *int64
	Severity *models.ReportSeverity
	Page     int
	PageSize int
}

// WardRiskUpdate is one ward's recomputed risk figures.
type WardRiskUpdate struct {
	WardID          int64
	RiskScore       float64
	IncidentDensity float64
}

// WardReportStats are the per-ward report counters for the analytics view.
type WardReportStats struct {
	Total              int
	Open               int
	Resolved           int
	AvgResolutionHours *float64
}

// ReportRepository defines the storage contract for reports, comments,
// upvotes and the audit trail.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id int64) (*models.Report, error)
	List(ctx context.Context, filter ReportFilter) ([]*models.Report, int, error)
	ListAll(ctx context.Context, status *models.ReportStatus) ([]*models.Report, error)
	ListPoints(ctx context.Context) ([]models.ReportPoint, error)
	Update(ctx context.Context, report *models.Report) error
	Upvote(ctx context.Context, reportID, userID int64) error
	AddComment(ctx context.Context, comment *models.Comment) error
	ListComments(ctx context.Context, reportID int64) ([]*models.Comment, error)
	AddAudit(ctx context.Context, entry *models.AuditEntry) error
	ListAudit(ctx context.Context, reportID int64) ([]*models.AuditEntry, error)
	GetReportFromCache(ctx context.Context, id int64) (*models.Report, error)
	SetReportCache(ctx context.Context, report *models.Report) error
	InvalidateReportCache(ctx context.Context, id int64) error
}

// WardRepository defines the storage contract for wards and their risk
// figures.
type WardRepository interface {
	ListWards(ctx context.Context) ([]*models.Ward, error)
	GetWard(ctx context.Context, id int64) (*models.Ward, error)
	CountWards(ctx context.Context) (int, error)
	UpsertWardBoundary(ctx context.Context, wardNumber, wardName string, boundary json.RawMessage) error
	UpdateRiskScores(ctx context.Context, updates []WardRiskUpdate) error
	GetWardReportStats(ctx context.Context, wardID int64) (WardReportStats, error)
}

// UserRepository defines the storage contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// WardLocator resolves a coordinate to the ward containing it. It returns
// (nil, nil) when the point falls outside every known ward boundary.
type WardLocator interface {
	LocateWard(ctx context.Context, lat, lon float64) (*models.Ward, error)
}

// RateLimiter enforces a per-key request budget inside a time window.
// Implementations return an error wrapping apperror.ErrRateLimited once
// the budget is exhausted.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) error
}
