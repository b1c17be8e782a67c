package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/matching"
	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
)

const DefaultRecommendationPageSize = 5

// RecommendInput carries the search origin plus optional per-request
// preference overrides. An override applies to this request only and is never
// written back to the stored profile.
type RecommendInput struct {
	Zip                 string
	RadiusMiles         float64
	SkillLevel          string
	PreferredPriceRange string
	Limit               int
	Offset              int
}

// Recommendation is one candidate club annotated with distance and match
// percentage against the golfer's stated preferences.
type Recommendation struct {
	Club          club.Club
	DistanceMiles float64
	Score         float64
}

type RecommendResult struct {
	Results []Recommendation
	Total   int
}

type RecommendationService struct {
	search   *SearchService
	profiles *ProfileService
}

func NewRecommendationService(search *SearchService, profiles *ProfileService) *RecommendationService {
	return &RecommendationService{
		search:   search,
		profiles: profiles,
	}
}

// Recommend scores every club within the radius against the caller's profile
// and returns one page ordered by descending match percentage, then ascending
// distance. A profile that states no preferences cannot be ranked; the caller
// is asked to set preferences first.
func (s *RecommendationService) Recommend(ctx context.Context, userID string, in RecommendInput) (RecommendResult, error) {
	ctx, span := startUsecaseSpan(ctx, "RecommendationService.Recommend")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return RecommendResult{}, fmt.Errorf("%w: user is required", ErrUnauthorized)
	}

	p, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return RecommendResult{}, fmt.Errorf("load profile: %w", err)
	}
	if raw := strings.TrimSpace(in.SkillLevel); raw != "" {
		level := profile.SkillLevel(raw)
		if _, ok := profile.AllSkillLevels[level]; !ok {
			return RecommendResult{}, fmt.Errorf("%w: unknown skill level %q", ErrInvalidInput, raw)
		}
		p.SkillLevel = level
	}
	if raw := strings.TrimSpace(in.PreferredPriceRange); raw != "" {
		tier := clubPriceTier(raw)
		if _, ok := club.AllPriceTiers[tier]; !ok {
			return RecommendResult{}, fmt.Errorf("%w: unknown price tier %q", ErrInvalidInput, raw)
		}
		p.PreferredPriceRange = tier
	}
	if !matching.HasPreferences(p) {
		return RecommendResult{}, fmt.Errorf("%w: profile has no preferences to match against", ErrInvalidInput)
	}

	matches, err := s.search.matchesWithinRadius(ctx, SearchInput{
		Zip:         in.Zip,
		RadiusMiles: in.RadiusMiles,
	})
	if err != nil {
		return RecommendResult{}, err
	}

	scored := make([]Recommendation, 0, len(matches))
	for _, m := range matches {
		score, _ := matching.Score(p, m.Club)
		scored = append(scored, Recommendation{
			Club:          m.Club,
			DistanceMiles: m.DistanceMiles,
			Score:         score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].DistanceMiles < scored[j].DistanceMiles
	})

	limit, offset, err := normalizePage(in.Limit, in.Offset, DefaultRecommendationPageSize)
	if err != nil {
		return RecommendResult{}, err
	}

	return RecommendResult{
		Results: pageOf(scored, limit, offset),
		Total:   len(scored),
	}, nil
}
