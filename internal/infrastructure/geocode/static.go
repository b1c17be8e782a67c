package geocode

import (
	"context"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
)

// Static resolves ZIP codes from a fixed table. Used when the service runs
// without an upstream geocoder, typically with the in-memory repositories.
type Static struct {
	points map[string]geo.Point
}

func NewStatic(points map[string]geo.Point) *Static {
	copied := make(map[string]geo.Point, len(points))
	for zip, p := range points {
		copied[zip] = p
	}
	return &Static{points: copied}
}

func (s *Static) LocateZip(_ context.Context, zip string) (geo.Point, bool, error) {
	p, ok := s.points[strings.TrimSpace(zip)]
	return p, ok, nil
}
