package geo

import (
	"fmt"

	"github.com/citypulse/waterlog-api/internal/models"
)

type indexedWard struct {
	ward     *models.Ward
	boundary MultiPolygon
	bbox     [4]float64 // minLon, minLat, maxLon, maxLat
	area     float64
}

// WardIndex answers point-in-polygon lookups against a fixed set of ward
// boundaries. It is built once per aggregation snapshot and is read-only
// afterwards, so concurrent lookups need no locking.
type WardIndex struct {
	wards []indexedWard
}

// NewWardIndex builds an index over the given wards. Wards whose boundary
// fails to parse are returned in skipped and excluded from lookups; a bad
// boundary must not fail the whole pass.
func NewWardIndex(wards []*models.Ward) (ix *WardIndex, skipped []int64, err error) {
	ix = &WardIndex{wards: make([]indexedWard, 0, len(wards))}
	for _, w := range wards {
		if len(w.Boundary) == 0 {
			skipped = append(skipped, w.ID)
			continue
		}
		mp, perr := ParseGeometry(w.Boundary)
		if perr != nil {
			skipped = append(skipped, w.ID)
			continue
		}
		ix.wards = append(ix.wards, indexedWard{
			ward:     w,
			boundary: mp,
			bbox:     boundingBox(mp),
			area:     mp.AreaKm2(),
		})
	}
	if len(ix.wards) == 0 && len(wards) > 0 {
		return nil, skipped, fmt.Errorf("no ward boundary could be parsed")
	}
	return ix, skipped, nil
}

// Locate returns the ward containing the point, or nil when the point falls
// outside every known boundary.
func (ix *WardIndex) Locate(lat, lon float64) *models.Ward {
	for i := range ix.wards {
		iw := &ix.wards[i]
		if lon < iw.bbox[0] || lon > iw.bbox[2] || lat < iw.bbox[1] || lat > iw.bbox[3] {
			continue
		}
		if iw.boundary.Contains(lat, lon) {
			return iw.ward
		}
	}
	return nil
}

// AreaKm2 returns the indexed area for a ward, or 0 when the ward is not
// in the index.
func (ix *WardIndex) AreaKm2(wardID int64) float64 {
	for i := range ix.wards {
		if ix.wards[i].ward.ID == wardID {
			return ix.wards[i].area
		}
	}
	return 0
}

// Wards returns the wards that made it into the index.
func (ix *WardIndex) Wards() []*models.Ward {
	out := make([]*models.Ward, 0, len(ix.wards))
	for i := range ix.wards {
		out = append(out, ix.wards[i].ward)
	}
	return out
}

func boundingBox(mp MultiPolygon) [4]float64 {
	bbox := [4]float64{180, 90, -180, -90}
	for _, p := range mp {
		for _, ring := range p {
			for _, pos := range ring {
				if pos[0] < bbox[0] {
					bbox[0] = pos[0]
				}
				if pos[1] < bbox[1] {
					bbox[1] = pos[1]
				}
				if pos[0] > bbox[2] {
					bbox[2] = pos[0]
				}
				if pos[1] > bbox[3] {
					bbox[3] = pos[1]
				}
			}
		}
	}
	return bbox
}
