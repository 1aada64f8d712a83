package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/citypulse/waterlog-api/internal/apperror"
	"github.com/citypulse/waterlog-api/internal/config"
	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/webhook"
)

// TriageUpdate carries the authority-editable fields of a report. Each
// field is independently optional; nil fields are left untouched.
type TriageUpdate struct {
	Status   *models.ReportStatus
	Severity *models.ReportSeverity
	Agency   *models.Agency
	Notes    string
}

// ReportService defines the business logic for citizen reports and their
// authority triage.
type ReportService interface {
	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id int64) (*models.Report, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]*models.Report, int, error)
	UpvoteReport(ctx context.Context, reportID, userID int64) error
	AddComment(ctx context.Context, reportID, userID int64, content string) (*models.Comment, error)
	ListComments(ctx context.Context, reportID int64) ([]*models.Comment, error)
	TriageReport(ctx context.Context, reportID, actorID int64, update TriageUpdate) (*models.Report, error)
	AttachResolutionImage(ctx context.Context, reportID, actorID int64, imagePath string) (*models.Report, error)
	GetAuditLog(ctx context.Context, reportID int64) ([]*models.AuditEntry, error)
}

type reportService struct {
	repo      ReportRepository
	locator   WardLocator
	limiter   RateLimiter
	publisher webhook.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewReportService(repo ReportRepository, locator WardLocator, limiter RateLimiter, publisher webhook.Publisher, logger *logrus.Logger, cfg *config.Config) ReportService {
	return &reportService{
		repo:      repo,
		locator:   locator,
		limiter:   limiter,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func validateReportInput(report *models.Report) error {
	if len(report.Title) < 5 || len(report.Title) > 200 {
		return apperror.Validation("title", "must be between 5 and 200 characters")
	}
	if len(report.Description) < 10 {
		return apperror.Validation("description", "must be at least 10 characters")
	}
	if report.Latitude < -90 || report.Latitude > 90 {
		return apperror.Validation("latitude", "must be between -90 and 90")
	}
	if report.Longitude < -180 || report.Longitude > 180 {
		return apperror.Validation("longitude", "must be between -180 and 180")
	}
	if !report.Severity.Valid() {
		return apperror.Validation("severity", "must be one of LOW, MEDIUM, HIGH, CRITICAL")
	}
	return nil
}

// CreateReport validates the submission, assigns it to a ward when the
// coordinate falls inside a known boundary, and stores it. Validation
// happens before any storage mutation.
func (s *reportService) CreateReport(ctx context.Context, report *models.Report) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "CreateReport",
		"user_id": report.UserID,
	})

	if err := validateReportInput(report); err != nil {
		log.WithError(err).Warn("Report submission rejected")
		return err
	}

	rateKey := fmt.Sprintf("report:%d", report.UserID)
	if err := s.limiter.Allow(ctx, rateKey, s.cfg.RateLimitReportsPerHour, time.Hour); err != nil {
		log.WithError(err).Warn("Report submission rate limited")
		return err
	}

	report.Status = models.StatusOpen
	if report.Severity == "" {
		report.Severity = models.SeverityMedium
	}

	ward, err := s.locator.LocateWard(ctx, report.Latitude, report.Longitude)
	if err != nil {
		// A ward lookup failure must not block the submission; the report
		// stays unassigned and is picked up by the next aggregation pass.
		log.WithError(err).Warn("Ward lookup failed, creating report without ward")
	} else if ward != nil {
		report.WardID = &ward.ID
	}

	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Report created")
	return nil
}

// GetReport fetches a report, trying the cache first.
func (s *reportService) GetReport(ctx context.Context, id int64) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	cached, err := s.repo.GetReportFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Report cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}

	if err := s.repo.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Report cache write failed")
	}
	return report, nil
}

// ListReports returns a page of reports plus the total match count.
func (s *reportService) ListReports(ctx context.Context, filter ReportFilter) ([]*models.Report, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 50
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})

	reports, total, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, 0, fmt.Errorf("service: could not list reports: %w", err)
	}
	return reports, total, nil
}

// UpvoteReport records a single upvote per (user, report) pair. A repeat
// upvote surfaces as a conflict and never moves the counter twice.
func (s *reportService) UpvoteReport(ctx context.Context, reportID, userID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "UpvoteReport",
		"report_id": reportID,
		"user_id":   userID,
	})

	if _, err := s.repo.GetByID(ctx, reportID); err != nil {
		log.WithError(err).Warn("Attempted to upvote a non-existent report")
		return fmt.Errorf("service: report %d not found for upvote: %w", reportID, err)
	}

	if err := s.repo.Upvote(ctx, reportID, userID); err != nil {
		log.WithError(err).Warn("Failed to record upvote")
		return fmt.Errorf("service: could not upvote report: %w", err)
	}

	if err := s.repo.InvalidateReportCache(ctx, reportID); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache after upvote")
	}

	log.Info("Report upvoted")
	return nil
}

// AddComment appends a citizen comment to a report.
func (s *reportService) AddComment(ctx context.Context, reportID, userID int64, content string) (*models.Comment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "AddComment",
		"report_id": reportID,
		"user_id":   userID,
	})

	if len(content) < 1 || len(content) > 1000 {
		return nil, apperror.Validation("content", "must be between 1 and 1000 characters")
	}

	rateKey := fmt.Sprintf("comment:%d", userID)
	if err := s.limiter.Allow(ctx, rateKey, s.cfg.RateLimitCommentsPerHour, time.Hour); err != nil {
		log.WithError(err).Warn("Comment rate limited")
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, reportID); err != nil {
		log.WithError(err).Warn("Attempted to comment on a non-existent report")
		return nil, fmt.Errorf("service: report %d not found for comment: %w", reportID, err)
	}

	comment := &models.Comment{
		ReportID: reportID,
		UserID:   userID,
		Content:  content,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		log.WithError(err).Error("Failed to add comment in repository")
		return nil, fmt.Errorf("service: could not add comment: %w", err)
	}

	if err := s.repo.InvalidateReportCache(ctx, reportID); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache after comment")
	}

	log.WithField("comment_id", comment.ID).Info("Comment added")
	return comment, nil
}

// ListComments returns a report's comments in insertion order.
func (s *reportService) ListComments(ctx context.Context, reportID int64) ([]*models.Comment, error) {
	if _, err := s.repo.GetByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("service: report %d not found: %w", reportID, err)
	}

	comments, err := s.repo.ListComments(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list comments: %w", err)
	}
	return comments, nil
}

// TriageReport applies an authority update. Only supplied fields change.
// Moving to RESOLVED stamps the resolution time; re-opening clears it.
// Every change is recorded in the audit trail, and status transitions are
// fanned out to the webhook queue.
func (s *reportService) TriageReport(ctx context.Context, reportID, actorID int64, update TriageUpdate) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "TriageReport",
		"report_id": reportID,
		"actor_id":  actorID,
	})

	if update.Status != nil && !update.Status.Valid() {
		return nil, apperror.Validation("status", "unknown report status")
	}
	if update.Severity != nil && !update.Severity.Valid() {
		return nil, apperror.Validation("severity", "unknown severity")
	}
	if update.Agency != nil && !update.Agency.Valid() {
		return nil, apperror.Validation("assigned_agency", "unknown agency")
	}

	report, err := s.repo.GetByID(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Attempted to triage a non-existent report")
		return nil, fmt.Errorf("service: report %d not found for triage: %w", reportID, err)
	}

	var statusChanged bool
	oldStatus := report.Status

	if update.Status != nil && *update.Status != report.Status {
		newStatus := *update.Status
		report.Status = newStatus
		statusChanged = true

		switch {
		case newStatus == models.StatusResolved:
			now := s.now()
			report.ResolvedAt = &now
		case !newStatus.Terminal():
			// Re-opening a report clears its resolution timestamp.
			report.ResolvedAt = nil
		}

		if err := s.repo.AddAudit(ctx, &models.AuditEntry{
			ReportID:  reportID,
			UserID:    actorID,
			Action:    models.AuditStatusUpdate,
			OldStatus: &oldStatus,
			NewStatus: &newStatus,
			Notes:     update.Notes,
		}); err != nil {
			log.WithError(err).Error("Failed to write status audit entry")
			return nil, fmt.Errorf("service: could not audit status update: %w", err)
		}
	}

	if update.Severity != nil && *update.Severity != report.Severity {
		report.Severity = *update.Severity
		if err := s.repo.AddAudit(ctx, &models.AuditEntry{
			ReportID: reportID,
			UserID:   actorID,
			Action:   models.AuditSeverityChanged,
			Details:  map[string]string{"severity": string(*update.Severity)},
			Notes:    update.Notes,
		}); err != nil {
			log.WithError(err).Error("Failed to write severity audit entry")
			return nil, fmt.Errorf("service: could not audit severity change: %w", err)
		}
	}

	if update.Agency != nil {
		report.AssignedAgency = update.Agency
		if err := s.repo.AddAudit(ctx, &models.AuditEntry{
			ReportID: reportID,
			UserID:   actorID,
			Action:   models.AuditAgencyAssigned,
			Details:  map[string]string{"agency": string(*update.Agency)},
			Notes:    update.Notes,
		}); err != nil {
			log.WithError(err).Error("Failed to write agency audit entry")
			return nil, fmt.Errorf("service: could not audit agency assignment: %w", err)
		}
	}

	if err := s.repo.Update(ctx, report); err != nil {
		log.WithError(err).Error("Failed to update report in repository")
		return nil, fmt.Errorf("service: could not update report: %w", err)
	}

	if err := s.repo.InvalidateReportCache(ctx, reportID); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache after triage")
	}

	if statusChanged {
		event := webhook.ReportEvent{
			ReportID:  report.ID,
			OldStatus: string(oldStatus),
			NewStatus: string(report.Status),
			Severity:  string(report.Severity),
			Timestamp: s.now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish report status event")
		}
	}

	log.Info("Report triaged")
	return report, nil
}

// AttachResolutionImage stores the resolution image path on the report and
// audits the upload.
func (s *reportService) AttachResolutionImage(ctx context.Context, reportID, actorID int64, imagePath string) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "AttachResolutionImage",
		"report_id": reportID,
		"actor_id":  actorID,
	})

	report, err := s.repo.GetByID(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Attempted to attach image to a non-existent report")
		return nil, fmt.Errorf("service: report %d not found: %w", reportID, err)
	}

	report.ResolutionImagePath = imagePath
	if err := s.repo.Update(ctx, report); err != nil {
		log.WithError(err).Error("Failed to store resolution image path")
		return nil, fmt.Errorf("service: could not attach resolution image: %w", err)
	}

	if err := s.repo.AddAudit(ctx, &models.AuditEntry{
		ReportID: reportID,
		UserID:   actorID,
		Action:   models.AuditResolutionImageUploaded,
		Details:  map[string]string{"image_path": imagePath},
	}); err != nil {
		log.WithError(err).Error("Failed to write resolution image audit entry")
		return nil, fmt.Errorf("service: could not audit resolution image: %w", err)
	}

	if err := s.repo.InvalidateReportCache(ctx, reportID); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache after image upload")
	}

	log.Info("Resolution image attached")
	return report, nil
}

// GetAuditLog returns a report's audit trail, newest first.
func (s *reportService) GetAuditLog(ctx context.Context, reportID int64) ([]*models.AuditEntry, error) {
	if _, err := s.repo.GetByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("service: report %d not found: %w", reportID, err)
	}

	entries, err := s.repo.ListAudit(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list audit entries: %w", err)
	}
	return entries, nil
}
