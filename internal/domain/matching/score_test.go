package matching

import (
	"testing"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
)

func TestScorePriceOnlyPreference(t *testing.T) {
	t.Parallel()

	p := profile.Profile{PreferredPriceRange: club.PriceTierBudget}

	budget := club.Club{PriceTier: club.PriceTierBudget}
	premium := club.Club{PriceTier: club.PriceTierPremium}

	if got, expressed := Score(p, budget); got != 100 || expressed != 1 {
		t.Fatalf("expected 100%% with 1 expressed preference, got %f/%d", got, expressed)
	}
	if got, _ := Score(p, premium); got != 0 {
		t.Fatalf("expected 0%% for mismatched tier, got %f", got)
	}
}

func TestScoreUnsetPreferencesDoNotPenalize(t *testing.T) {
	t.Parallel()

	p := profile.Profile{PreferredDifficulty: club.DifficultyMedium}

	bare := club.Club{Difficulty: club.DifficultyMedium}
	loaded := club.Club{Difficulty: club.DifficultyMedium}
	loaded.Amenities.Restaurant = true
	loaded.Amenities.DrivingRange = true

	s1, _ := Score(p, bare)
	s2, _ := Score(p, loaded)
	if s1 != s2 {
		t.Fatalf("amenities the profile never asked for changed the score: %f vs %f", s1, s2)
	}
}

func TestScorePartialAmenityOverlap(t *testing.T) {
	t.Parallel()

	p := profile.Profile{PreferredPriceRange: club.PriceTierMid}
	p.DesiredAmenities.DrivingRange = true
	p.DesiredAmenities.PuttingGreen = true
	p.DesiredAmenities.Restaurant = true

	c := club.Club{PriceTier: club.PriceTierMid}
	c.Amenities.DrivingRange = true

	// price + driving range satisfied out of four expressed preferences
	got, expressed := Score(p, c)
	if expressed != 4 {
		t.Fatalf("expected 4 expressed preferences, got %d", expressed)
	}
	if got != 50 {
		t.Fatalf("expected 50%%, got %f", got)
	}
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()

	p := profile.Profile{
		PreferredPriceRange: club.PriceTierBudget,
		PreferredDifficulty: club.DifficultyHard,
	}
	for _, flag := range club.AllAmenities {
		p.DesiredAmenities.Set(flag, true)
	}

	everything := club.Club{PriceTier: club.PriceTierBudget, Difficulty: club.DifficultyHard}
	for _, flag := range club.AllAmenities {
		everything.Amenities.Set(flag, true)
	}

	if got, _ := Score(p, everything); got != 100 {
		t.Fatalf("full overlap must score 100, got %f", got)
	}
	if got, _ := Score(p, club.Club{}); got != 0 {
		t.Fatalf("zero overlap must score 0, got %f", got)
	}
}

func TestScoreNoPreferences(t *testing.T) {
	t.Parallel()

	var p profile.Profile
	if HasPreferences(p) {
		t.Fatal("empty profile must report no preferences")
	}

	got, expressed := Score(p, club.Club{PriceTier: club.PriceTierBudget})
	if got != 0 || expressed != 0 {
		t.Fatalf("expected 0/0 for empty profile, got %f/%d", got, expressed)
	}
}

func TestScoreIgnoresNonMatchingFieldsOrder(t *testing.T) {
	t.Parallel()

	// the score depends only on which preferences are expressed, not on
	// the order they were populated
	a := profile.Profile{PreferredPriceRange: club.PriceTierBudget}
	a.DesiredAmenities.Set(club.AmenityRestaurant, true)

	b := profile.Profile{}
	b.DesiredAmenities.Set(club.AmenityRestaurant, true)
	b.PreferredPriceRange = club.PriceTierBudget

	c := club.Club{PriceTier: club.PriceTierBudget}
	c.Amenities.Restaurant = true

	sa, _ := Score(a, c)
	sb, _ := Score(b, c)
	if sa != sb {
		t.Fatalf("population order changed the score: %f vs %f", sa, sb)
	}
}
