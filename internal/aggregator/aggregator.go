// Package aggregator recomputes per-ward incident density and risk scores
// from a consistent snapshot of reports and ward boundaries.
package aggregator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/citypulse/waterlog-api/internal/geo"
	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/risk"
	"github.com/citypulse/waterlog-api/internal/service"
)

// Aggregator runs the periodic risk recomputation pass.
type Aggregator struct {
	wards   service.WardRepository
	reports service.ReportRepository
	logger  *logrus.Logger
	timeout time.Duration
}

func New(wards service.WardRepository, reports service.ReportRepository, logger *logrus.Logger, timeout time.Duration) *Aggregator {
	return &Aggregator{
		wards:   wards,
		reports: reports,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes one aggregation pass: snapshot wards and report points,
// bin points into ward boundaries, score every ward, then publish all
// scores in a single transaction. A failed pass leaves the previous
// scores untouched.
func (a *Aggregator) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	log := a.logger.WithField("component", "aggregator")
	start := time.Now()

	wards, err := a.wards.ListWards(ctx)
	if err != nil {
		return fmt.Errorf("aggregator: could not load wards: %w", err)
	}
	if len(wards) == 0 {
		log.Warn("No wards configured, skipping aggregation pass")
		return nil
	}

	ix, skipped, err := geo.NewWardIndex(wards)
	if err != nil {
		return fmt.Errorf("aggregator: could not build ward index: %w", err)
	}
	if len(skipped) > 0 {
		log.WithField("ward_ids", skipped).Warn("Wards with unparseable boundaries excluded from aggregation")
	}

	points, err := a.reports.ListPoints(ctx)
	if err != nil {
		return fmt.Errorf("aggregator: could not load report points: %w", err)
	}

	counts := binPoints(ix, points)

	indexed := ix.Wards()
	updates := make([]service.WardRiskUpdate, len(indexed))
	var wg sync.WaitGroup
	for i, w := range indexed {
		wg.Add(1)
		go func(i int, wardID int64, elevation, slope *float64) {
			defer wg.Done()
			density := geo.Density(counts[wardID], ix.AreaKm2(wardID))
			updates[i] = service.WardRiskUpdate{
				WardID:          wardID,
				IncidentDensity: density,
				RiskScore: risk.Score(risk.Features{
					IncidentDensity: density,
					ElevationAvg:    elevation,
					SlopeAvg:        slope,
				}),
			}
		}(i, w.ID, w.ElevationAvg, w.SlopeAvg)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("aggregator: pass canceled before publish: %w", err)
	}

	if err := a.wards.UpdateRiskScores(ctx, updates); err != nil {
		return fmt.Errorf("aggregator: could not publish risk scores: %w", err)
	}

	log.WithFields(logrus.Fields{
		"wards":    len(updates),
		"points":   len(points),
		"duration": time.Since(start).String(),
	}).Info("Aggregation pass completed")
	return nil
}

// binPoints assigns each report point to at most one ward. Points outside
// every boundary are dropped from the density figures.
func binPoints(ix *geo.WardIndex, points []models.ReportPoint) map[int64]int {
	counts := make(map[int64]int)
	for _, p := range points {
		if w := ix.Locate(p.Latitude, p.Longitude); w != nil {
			counts[w.ID]++
		}
	}
	return counts
}
