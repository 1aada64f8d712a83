package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/citypulse/waterlog-api/internal/apperror"
	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/service"
)

const reportCacheTTL = 5 * time.Minute

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const reportColumns = `
	id,
	user_id,
	title,
	description,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	COALESCE(address, ''),
	ward_id,
	status,
	severity,
	assigned_agency,
	COALESCE(image_path, ''),
	COALESCE(resolution_image_path, ''),
	upvote_count,
	comment_count,
	created_at,
	updated_at,
	resolved_at`

func scanReport(row pgx.Row) (*models.Report, error) {
	report := &models.Report{}
	err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.Title,
		&report.Description,
		&report.Latitude,
		&report.Longitude,
		&report.Address,
		&report.WardID,
		&report.Status,
		&report.Severity,
		&report.AssignedAgency,
		&report.ImagePath,
		&report.ResolutionImagePath,
		&report.UpvoteCount,
		&report.CommentCount,
		&report.CreatedAt,
		&report.UpdatedAt,
		&report.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Create inserts a new report record and fills in the generated fields.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (user_id, title, description, location, address, ward_id, status, severity, image_path)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), NULLIF($6, ''), $7, $8, $9, NULLIF($10, ''))
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.UserID,
		report.Title,
		report.Description,
		report.Longitude,
		report.Latitude,
		report.Address,
		report.WardID,
		report.Status,
		report.Severity,
		report.ImagePath,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID returns a report by its id.
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1;`
	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("report", id)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// List returns reports matching the filter together with the total count
// before pagination.
func (r *ReportRepository) List(ctx context.Context, filter service.ReportFilter) ([]*models.Report, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	argn := 0

	next := func(v any) string {
		argn++
		args = append(args, v)
		return fmt.Sprintf("$%d", argn)
	}

	if filter.Status != nil {
		where += " AND status = " + next(*filter.Status)
	}
	if filter.WardID != nil {
		where += " AND ward_id = " + next(*filter.WardID)
	}
	if filter.Severity != nil {
		where += " AND severity = " + next(*filter.Severity)
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM reports"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	query := `SELECT ` + reportColumns + ` FROM reports` + where +
		` ORDER BY created_at DESC LIMIT ` + next(filter.PageSize) + ` OFFSET ` + next((filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error in report list iteration: %w", err)
	}
	return reports, total, nil
}

// ListAll returns every report, optionally narrowed by status. Used by the
// GeoJSON export.
func (r *ReportRepository) ListAll(ctx context.Context, status *models.ReportStatus) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list all reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in report iteration: %w", err)
	}
	return reports, nil
}

// ListPoints returns the id and coordinates of every report. This is the
// read snapshot the aggregation pass bins into wards; each row is read
// atomically and the pass never sees a partially written record.
func (r *ReportRepository) ListPoints(ctx context.Context) ([]models.ReportPoint, error) {
	query := `
		SELECT id, ST_Y(location::geometry), ST_X(location::geometry)
		FROM reports;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list report points: %w", err)
	}
	defer rows.Close()

	points := make([]models.ReportPoint, 0)
	for rows.Next() {
		var p models.ReportPoint
		if err := rows.Scan(&p.ID, &p.Latitude, &p.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan report point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in report point iteration: %w", err)
	}
	return points, nil
}

// Update persists the mutable triage fields of a report.
func (r *ReportRepository) Update(ctx context.Context, report *models.Report) error {
	query := `
		UPDATE reports SET
			status = $1,
			severity = $2,
			assigned_agency = $3,
			resolution_image_path = NULLIF($4, ''),
			resolved_at = $5,
			updated_at = NOW()
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		report.Status,
		report.Severity,
		report.AssignedAgency,
		report.ResolutionImagePath,
		report.ResolvedAt,
		report.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("report", report.ID)
	}
	return nil
}

// Upvote records a (user, report) upvote exactly once. The unique
// constraint on upvotes plus ON CONFLICT DO NOTHING makes concurrent
// duplicates collapse into a single row, and the counter is bumped in the
// same transaction only when the row was actually inserted.
func (r *ReportRepository) Upvote(ctx context.Context, reportID, userID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin upvote transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		INSERT INTO upvotes (report_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (report_id, user_id) DO NOTHING;
	`, reportID, userID)
	if err != nil {
		return fmt.Errorf("failed to insert upvote: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report %d already upvoted by user %d: %w", reportID, userID, apperror.ErrConflict)
	}

	cmdTag, err = tx.Exec(ctx, `UPDATE reports SET upvote_count = upvote_count + 1 WHERE id = $1;`, reportID)
	if err != nil {
		return fmt.Errorf("failed to increment upvote count: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("report", reportID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit upvote: %w", err)
	}
	return nil
}

// AddComment inserts a comment and bumps the report counter in one
// transaction.
func (r *ReportRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin comment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO comments (report_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`, comment.ReportID, comment.UserID, comment.Content).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE reports SET comment_count = comment_count + 1 WHERE id = $1;`, comment.ReportID); err != nil {
		return fmt.Errorf("failed to increment comment count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit comment: %w", err)
	}
	return nil
}

// ListComments returns a report's comments in insertion order.
func (r *ReportRepository) ListComments(ctx context.Context, reportID int64) ([]*models.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, report_id, user_id, content, created_at
		FROM comments
		WHERE report_id = $1
		ORDER BY created_at ASC, id ASC;
	`, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.ReportID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in comment iteration: %w", err)
	}
	return comments, nil
}

// AddAudit appends an audit trail entry for an authority action.
func (r *ReportRepository) AddAudit(ctx context.Context, entry *models.AuditEntry) error {
	var details []byte
	if entry.Details != nil {
		var err error
		details, err = json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal audit details: %w", err)
		}
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO audit_log (report_id, user_id, action, old_status, new_status, details, notes)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING id, created_at;
	`, entry.ReportID, entry.UserID, entry.Action, entry.OldStatus, entry.NewStatus, details, entry.Notes).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

// ListAudit returns a report's audit trail, newest first.
func (r *ReportRepository) ListAudit(ctx context.Context, reportID int64) ([]*models.AuditEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, report_id, user_id, action, old_status, new_status, details, COALESCE(notes, ''), created_at
		FROM audit_log
		WHERE report_id = $1
		ORDER BY created_at DESC;
	`, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.AuditEntry, 0)
	for rows.Next() {
		e := &models.AuditEntry{}
		var details []byte
		if err := rows.Scan(&e.ID, &e.ReportID, &e.UserID, &e.Action, &e.OldStatus, &e.NewStatus, &details, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, fmt.Errorf("failed to unmarshal audit details: %w", err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in audit iteration: %w", err)
	}
	return entries, nil
}

// GetReportFromCache tries to fetch a report from Redis. A cache miss
// returns (nil, nil).
func (r *ReportRepository) GetReportFromCache(ctx context.Context, id int64) (*models.Report, error) {
	key := fmt.Sprintf("report:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	report := &models.Report{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return report, nil
}

// SetReportCache stores a report in Redis.
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.Report) error {
	key := fmt.Sprintf("report:%d", report.ID)
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, reportCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set report in cache: %w", err)
	}
	return nil
}

// InvalidateReportCache drops a report from the Redis cache.
func (r *ReportRepository) InvalidateReportCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("report:%d", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}
