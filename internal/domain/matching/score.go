package matching

import (
	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
)

// Score computes the match percentage between a golfer's stated preferences
// and a candidate club: the share of expressed preferences the club satisfies,
// scaled to [0,100]. Preferences left unset are excluded from both numerator
// and denominator. expressed reports how many preferences the profile states;
// when it is zero the score is meaningless and callers must not rank by it.
func Score(p profile.Profile, c club.Club) (percent float64, expressed int) {
	satisfied := 0

	if p.PreferredPriceRange != "" {
		expressed++
		if c.PriceTier == p.PreferredPriceRange {
			satisfied++
		}
	}
	if p.PreferredDifficulty != "" {
		expressed++
		if c.Difficulty == p.PreferredDifficulty {
			satisfied++
		}
	}
	for _, flag := range p.DesiredAmenities.Desired() {
		expressed++
		if c.Amenities.Has(flag) {
			satisfied++
		}
	}

	if expressed == 0 {
		return 0, 0
	}

	return float64(satisfied) / float64(expressed) * 100, expressed
}

// HasPreferences reports whether the profile expresses at least one preference
// the scorer understands.
func HasPreferences(p profile.Profile) bool {
	if p.PreferredPriceRange != "" || p.PreferredDifficulty != "" {
		return true
	}

	return len(p.DesiredAmenities.Desired()) > 0
}
