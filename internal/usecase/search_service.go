package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
)

const (
	DefaultSearchPageSize = 10
	MaxPageSize           = 100
)

// Geocoder resolves a US ZIP code to a coordinate. resolved is false when the
// ZIP is well-formed but unknown; searches then return an empty result rather
// than an error.
type Geocoder interface {
	LocateZip(ctx context.Context, zip string) (point geo.Point, resolved bool, err error)
}

// SearchInput is the criteria set for a location search. Zero-valued optional
// fields never narrow the result.
type SearchInput struct {
	Zip         string
	RadiusMiles float64
	Filter      club.Filter
	Limit       int
	Offset      int
}

// ClubMatch is one search hit annotated with its distance from the origin.
// Forecast is filled only when the caller asks for weather enrichment.
type ClubMatch struct {
	Club          club.Club
	DistanceMiles float64
	Forecast      []DayForecast
}

type SearchResult struct {
	Results []ClubMatch
	Total   int
}

type SearchService struct {
	clubRepo club.Repository
	geocoder Geocoder
}

func NewSearchService(clubRepo club.Repository, geocoder Geocoder) *SearchService {
	return &SearchService{
		clubRepo: clubRepo,
		geocoder: geocoder,
	}
}

// FindClubs resolves the ZIP, prefilters by bounding box, applies the exact
// great-circle cut, and returns one page ordered by ascending distance plus
// the total match count. A radius of zero matches the exact location only.
func (s *SearchService) FindClubs(ctx context.Context, in SearchInput) (SearchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "SearchService.FindClubs")
	defer span.End()

	matches, err := s.matchesWithinRadius(ctx, in)
	if err != nil {
		return SearchResult{}, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceMiles < matches[j].DistanceMiles
	})

	limit, offset, err := normalizePage(in.Limit, in.Offset, DefaultSearchPageSize)
	if err != nil {
		return SearchResult{}, err
	}

	return SearchResult{
		Results: pageOf(matches, limit, offset),
		Total:   len(matches),
	}, nil
}

func (s *SearchService) matchesWithinRadius(ctx context.Context, in SearchInput) ([]ClubMatch, error) {
	zip := strings.TrimSpace(in.Zip)
	if err := club.ValidateZip(zip); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if in.RadiusMiles < 0 {
		return nil, fmt.Errorf("%w: radius must not be negative", ErrInvalidInput)
	}
	if err := in.Filter.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	origin, resolved, err := s.geocoder.LocateZip(ctx, zip)
	if err != nil {
		return nil, fmt.Errorf("%w: locate zip: %s", ErrDependencyUnavailable, err)
	}
	if !resolved {
		return nil, nil
	}

	bounds := geo.BoundingBox(origin, in.RadiusMiles)
	candidates, err := s.clubRepo.SearchWithinBounds(ctx, bounds, in.Filter)
	if err != nil {
		return nil, fmt.Errorf("search clubs within bounds: %w", err)
	}

	matches := make([]ClubMatch, 0, len(candidates))
	for _, c := range candidates {
		if c.Location == nil {
			continue
		}
		d := geo.DistanceMiles(origin, *c.Location)
		if d > in.RadiusMiles {
			continue
		}
		matches = append(matches, ClubMatch{Club: c, DistanceMiles: d})
	}

	return matches, nil
}

func normalizePage(limit, offset, defaultLimit int) (int, int, error) {
	if limit < 0 || offset < 0 {
		return 0, 0, fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidInput)
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return limit, offset, nil
}

func pageOf[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}
