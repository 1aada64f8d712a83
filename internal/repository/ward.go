package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/citypulse/waterlog-api/internal/apperror"
	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/service"
)

type WardRepository struct {
	db *pgxpool.Pool
}

func NewWardRepository(db *pgxpool.Pool) service.WardRepository {
	return &WardRepository{db: db}
}

const wardColumns = `id, ward_number, ward_name, risk_score, elevation_avg, slope_avg, incident_density, boundary`

func scanWard(row pgx.Row) (*models.Ward, error) {
	ward := &models.Ward{}
	var boundary []byte
	err := row.Scan(
		&ward.ID,
		&ward.WardNumber,
		&ward.WardName,
		&ward.RiskScore,
		&ward.ElevationAvg,
		&ward.SlopeAvg,
		&ward.IncidentDensity,
		&boundary,
	)
	if err != nil {
		return nil, err
	}
	ward.Boundary = json.RawMessage(boundary)
	return ward, nil
}

// ListWards returns all wards including their boundary geometry.
func (r *WardRepository) ListWards(ctx context.Context) ([]*models.Ward, error) {
	rows, err := r.db.Query(ctx, `SELECT `+wardColumns+` FROM wards ORDER BY ward_number;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list wards: %w", err)
	}
	defer rows.Close()

	wards := make([]*models.Ward, 0)
	for rows.Next() {
		ward, err := scanWard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ward row: %w", err)
		}
		wards = append(wards, ward)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in ward iteration: %w", err)
	}
	return wards, nil
}

// GetWard returns one ward by id.
func (r *WardRepository) GetWard(ctx context.Context, id int64) (*models.Ward, error) {
	ward, err := scanWard(r.db.QueryRow(ctx, `SELECT `+wardColumns+` FROM wards WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("ward", id)
		}
		return nil, fmt.Errorf("failed to get ward by id: %w", err)
	}
	return ward, nil
}

// CountWards returns the number of wards known to the platform.
func (r *WardRepository) CountWards(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM wards;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count wards: %w", err)
	}
	return count, nil
}

// UpsertWardBoundary inserts or refreshes a ward boundary keyed by ward
// number. Used by the startup seeder.
func (r *WardRepository) UpsertWardBoundary(ctx context.Context, wardNumber, wardName string, boundary json.RawMessage) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO wards (ward_number, ward_name, boundary)
		VALUES ($1, $2, $3)
		ON CONFLICT (ward_number) DO UPDATE SET ward_name = EXCLUDED.ward_name, boundary = EXCLUDED.boundary;
	`, wardNumber, wardName, []byte(boundary))
	if err != nil {
		return fmt.Errorf("failed to upsert ward %s: %w", wardNumber, err)
	}
	return nil
}

// UpdateRiskScores publishes a completed aggregation pass. All ward rows
// are written in a single transaction so readers never observe a half
// recomputed set of scores.
func (r *WardRepository) UpdateRiskScores(ctx context.Context, updates []service.WardRiskUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin risk score transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, u := range updates {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE wards SET risk_score = $1, incident_density = $2 WHERE id = $3;
		`, u.RiskScore, u.IncidentDensity, u.WardID)
		if err != nil {
			return fmt.Errorf("failed to update risk score for ward %d: %w", u.WardID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperror.NotFound("ward", u.WardID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit risk scores: %w", err)
	}
	return nil
}

// GetWardReportStats returns the report counters for one ward in a single
// atomic read. CLOSED reports count into the resolved bucket; the average
// resolution time only considers reports with a resolution timestamp.
func (r *WardRepository) GetWardReportStats(ctx context.Context, wardID int64) (service.WardReportStats, error) {
	var stats service.WardReportStats
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'OPEN'),
			COUNT(*) FILTER (WHERE status IN ('RESOLVED', 'CLOSED')),
			AVG(EXTRACT(EPOCH FROM (resolved_at - created_at)) / 3600.0) FILTER (WHERE resolved_at IS NOT NULL)
		FROM reports
		WHERE ward_id = $1;
	`, wardID).Scan(&stats.Total, &stats.Open, &stats.Resolved, &stats.AvgResolutionHours)
	if err != nil {
		return service.WardReportStats{}, fmt.Errorf("failed to get ward report stats: %w", err)
	}
	return stats, nil
}
