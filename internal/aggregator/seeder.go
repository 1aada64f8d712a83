package aggregator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/citypulse/waterlog-api/internal/geo"
	"github.com/citypulse/waterlog-api/internal/service"
)

// SeedWards loads ward boundaries from a GeoJSON file into an empty wards
// table. A populated table is left alone, so operators can maintain
// boundaries in the database after the first start.
func SeedWards(ctx context.Context, wards service.WardRepository, path string, logger *logrus.Logger) error {
	count, err := wards.CountWards(ctx)
	if err != nil {
		return fmt.Errorf("seeder: could not count wards: %w", err)
	}
	if count > 0 {
		logger.WithField("wards", count).Debug("Wards already seeded")
		return nil
	}

	features, err := geo.LoadWardFeatures(path)
	if err != nil {
		return fmt.Errorf("seeder: could not load ward boundaries: %w", err)
	}

	for _, f := range features {
		if err := wards.UpsertWardBoundary(ctx, f.WardNumber, f.WardName, f.Geometry); err != nil {
			return fmt.Errorf("seeder: could not store ward %s: %w", f.WardNumber, err)
		}
	}

	logger.WithField("wards", len(features)).Info("Ward boundaries seeded")
	return nil
}
