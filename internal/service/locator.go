package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/citypulse/waterlog-api/internal/geo"
	"github.com/citypulse/waterlog-api/internal/models"
)

// wardLocator resolves coordinates to wards through an in-memory
// spatial index rebuilt from the database on a TTL.
type wardLocator struct {
	wards  WardRepository
	logger *logrus.Logger
	ttl    time.Duration

	mu      sync.RWMutex
	index   *geo.WardIndex
	builtAt time.Time
}

func NewWardLocator(wards WardRepository, logger *logrus.Logger, ttl time.Duration) WardLocator {
	return &wardLocator{
		wards:  wards,
		logger: logger,
		ttl:    ttl,
	}
}

// LocateWard returns the ward containing the point, or (nil, nil) when
// no ward boundary covers it.
func (l *wardLocator) LocateWard(ctx context.Context, lat, lon float64) (*models.Ward, error) {
	ix, err := l.currentIndex(ctx)
	if err != nil {
		return nil, err
	}
	return ix.Locate(lat, lon), nil
}

func (l *wardLocator) currentIndex(ctx context.Context) (*geo.WardIndex, error) {
	l.mu.RLock()
	if l.index != nil && time.Since(l.builtAt) < l.ttl {
		ix := l.index
		l.mu.RUnlock()
		return ix, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index != nil && time.Since(l.builtAt) < l.ttl {
		return l.index, nil
	}

	wards, err := l.wards.ListWards(ctx)
	if err != nil {
		// Keep serving a stale index over failing lookups outright.
		if l.index != nil {
			l.logger.WithError(err).Warn("Ward index refresh failed, keeping stale index")
			return l.index, nil
		}
		return nil, fmt.Errorf("locator: could not load wards: %w", err)
	}

	ix, skipped, err := geo.NewWardIndex(wards)
	if err != nil {
		return nil, fmt.Errorf("locator: could not build ward index: %w", err)
	}
	if len(skipped) > 0 {
		l.logger.WithField("ward_ids", skipped).Warn("Wards with unparseable boundaries excluded from index")
	}

	l.index = ix
	l.builtAt = time.Now()
	l.logger.WithField("wards", len(wards)).Debug("Ward index rebuilt")
	return l.index, nil
}
