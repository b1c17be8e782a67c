package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
)

type stubClubRepo struct {
	clubs     []club.Club
	searchErr error
}

func (r *stubClubRepo) GetByID(_ context.Context, clubID string) (club.Club, bool, error) {
	for _, c := range r.clubs {
		if c.ID == clubID {
			return c, true, nil
		}
	}
	return club.Club{}, false, nil
}

func (r *stubClubRepo) SearchWithinBounds(_ context.Context, bounds geo.Bounds, filter club.Filter) ([]club.Club, error) {
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	var out []club.Club
	for _, c := range r.clubs {
		if c.Location == nil || !bounds.Contains(*c.Location) {
			continue
		}
		if !filter.Matches(c) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *stubClubRepo) Create(_ context.Context, c club.Club) error {
	r.clubs = append(r.clubs, c)
	return nil
}

func (r *stubClubRepo) Update(_ context.Context, c club.Club) error {
	for i := range r.clubs {
		if r.clubs[i].ID == c.ID {
			r.clubs[i] = c
			return nil
		}
	}
	return errors.New("club not found")
}

func (r *stubClubRepo) Delete(_ context.Context, clubID string) error {
	for i := range r.clubs {
		if r.clubs[i].ID == clubID {
			r.clubs = append(r.clubs[:i], r.clubs[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubGeocoder struct {
	points map[string]geo.Point
	err    error
}

func (g *stubGeocoder) LocateZip(_ context.Context, zip string) (geo.Point, bool, error) {
	if g.err != nil {
		return geo.Point{}, false, g.err
	}
	p, ok := g.points[zip]
	return p, ok, nil
}

var (
	pebbleBeachPoint = geo.Point{Lat: 36.5681, Lng: -121.95}
	montereyPoint    = geo.Point{Lat: 36.6002, Lng: -121.8947}
)

func searchFixtures() *stubClubRepo {
	pebble := pebbleBeachPoint
	monterey := montereyPoint
	remote := geo.Point{Lat: 33.503, Lng: -82.0199}

	pebbleClub := club.Club{
		ID:         "pebble-beach-golf-links",
		Name:       "Pebble Beach Golf Links",
		Zip:        "93953",
		Location:   &pebble,
		PriceTier:  club.PriceTierPremium,
		Difficulty: club.DifficultyHard,
		Holes:      18,
		Membership: club.MembershipPublic,
	}
	montereyClub := club.Club{
		ID:         "monterey-pines",
		Name:       "Monterey Pines Golf Course",
		Zip:        "93940",
		Location:   &monterey,
		PriceTier:  club.PriceTierBudget,
		Difficulty: club.DifficultyEasy,
		Holes:      18,
		Membership: club.MembershipMilitary,
	}
	augusta := club.Club{
		ID:         "augusta-national",
		Name:       "Augusta National Golf Club",
		Zip:        "30904",
		Location:   &remote,
		PriceTier:  club.PriceTierPremium,
		Difficulty: club.DifficultyHard,
		Holes:      18,
		Membership: club.MembershipPrivate,
	}

	return &stubClubRepo{clubs: []club.Club{pebbleClub, montereyClub, augusta}}
}

func searchGeocoder() *stubGeocoder {
	return &stubGeocoder{points: map[string]geo.Point{
		"93953": pebbleBeachPoint,
	}}
}

func TestFindClubsPebbleBeachScenario(t *testing.T) {
	t.Parallel()

	svc := NewSearchService(searchFixtures(), searchGeocoder())

	result, err := svc.FindClubs(context.Background(), SearchInput{Zip: "93953", RadiusMiles: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Results) == 0 {
		t.Fatal("expected at least one club")
	}
	first := result.Results[0]
	if first.Club.ID != "pebble-beach-golf-links" {
		t.Fatalf("expected pebble beach first, got %s", first.Club.ID)
	}
	if first.DistanceMiles > 0.01 {
		t.Fatalf("expected ~0 distance, got %f", first.DistanceMiles)
	}
	for _, m := range result.Results {
		if m.DistanceMiles > 10 {
			t.Fatalf("club %s beyond radius: %f", m.Club.ID, m.DistanceMiles)
		}
	}
}

func TestFindClubsRadiusIsMonotonic(t *testing.T) {
	t.Parallel()

	svc := NewSearchService(searchFixtures(), searchGeocoder())

	small, err := svc.FindClubs(context.Background(), SearchInput{Zip: "93953", RadiusMiles: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	large, err := svc.FindClubs(context.Background(), SearchInput{Zip: "93953", RadiusMiles: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if large.Total < small.Total {
		t.Fatalf("growing the radius removed results: %d -> %d", small.Total, large.Total)
	}
	for _, m := range small.Results {
		found := false
		for _, n := range large.Results {
			if n.Club.ID == m.Club.ID {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("club %s vanished when the radius grew", m.Club.ID)
		}
	}
}

func TestFindClubsZeroRadiusExactLocation(t *testing.T) {
	t.Parallel()

	svc := NewSearchService(searchFixtures(), searchGeocoder())

	result, err := svc.FindClubs(context.Background(), SearchInput{Zip: "93953", RadiusMiles: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 || result.Results[0].Club.ID != "pebble-beach-golf-links" {
		t.Fatalf("expected exact-location match only, got %+v", result)
	}
}

func TestFindClubsFiltersAreConjunctiveAndNarrowing(t *testing.T) {
	t.Parallel()

	svc := NewSearchService(searchFixtures(), searchGeocoder())
	ctx := context.Background()

	unfiltered, err := svc.FindClubs(ctx, SearchInput{Zip: "93953", RadiusMiles: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filtered, err := svc.FindClubs(ctx, SearchInput{
		Zip:         "93953",
		RadiusMiles: 50,
		Filter:      club.Filter{PriceTier: club.PriceTierBudget},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filtered.Total > unfiltered.Total {
		t.Fatalf("adding a filter grew the result: %d > %d", filtered.Total, unfiltered.Total)
	}
	for _, m := range filtered.Results {
		if m.Club.PriceTier != club.PriceTierBudget {
			t.Fatalf("club %s escapes the price filter", m.Club.ID)
		}
	}
}

func TestFindClubsUnresolvableZipYieldsEmptyResult(t *testing.T) {
	t.Parallel()

	svc := NewSearchService(searchFixtures(), searchGeocoder())

	result, err := svc.FindClubs(context.Background(), SearchInput{Zip: "00000", RadiusMiles: 25})
	if err != nil {
		t.Fatalf("unresolvable zip must not error: %v", err)
	}
	if result.Total != 0 || len(result.Results) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestFindClubsMalformedZip(t *testing.T) {
	t.Parallel()

	svc := NewSearchService(searchFixtures(), searchGeocoder())

	for _, zip := range []string{"", "123", "12a45", "123456"} {
		_, err := svc.FindClubs(context.Background(), SearchInput{Zip: zip, RadiusMiles: 25})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("zip %q: expected ErrInvalidInput, got %v", zip, err)
		}
	}
}

func TestFindClubsGeocoderOutage(t *testing.T) {
	t.Parallel()

	svc := NewSearchService(searchFixtures(), &stubGeocoder{err: errors.New("upstream down")})

	_, err := svc.FindClubs(context.Background(), SearchInput{Zip: "93953", RadiusMiles: 25})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestFindClubsPaginationPartitionsResults(t *testing.T) {
	t.Parallel()

	repo := &stubClubRepo{}
	for i := 0; i < 7; i++ {
		loc := geo.Point{Lat: 36.5681 + float64(i)*0.01, Lng: -121.95}
		repo.clubs = append(repo.clubs, club.Club{
			ID:       string(rune('a' + i)),
			Name:     "Course " + string(rune('A'+i)),
			Zip:      "93953",
			Location: &loc,
		})
	}
	svc := NewSearchService(repo, searchGeocoder())
	ctx := context.Background()

	seen := map[string]int{}
	for offset := 0; offset < 7; offset += 3 {
		page, err := svc.FindClubs(ctx, SearchInput{Zip: "93953", RadiusMiles: 50, Limit: 3, Offset: offset})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 7 {
			t.Fatalf("expected total 7, got %d", page.Total)
		}
		for _, m := range page.Results {
			seen[m.Club.ID]++
		}
	}

	if len(seen) != 7 {
		t.Fatalf("pages missed records: %v", seen)
	}
	for clubID, n := range seen {
		if n != 1 {
			t.Fatalf("club %s appeared %d times across pages", clubID, n)
		}
	}
}

func TestFindClubsOffsetBeyondEnd(t *testing.T) {
	t.Parallel()

	svc := NewSearchService(searchFixtures(), searchGeocoder())

	page, err := svc.FindClubs(context.Background(), SearchInput{Zip: "93953", RadiusMiles: 50, Limit: 10, Offset: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Results) != 0 {
		t.Fatalf("expected empty page, got %d results", len(page.Results))
	}
	if page.Total == 0 {
		t.Fatal("total must still count all matches")
	}
}
