package profile

import (
	"fmt"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

var AllSkillLevels = map[SkillLevel]struct{}{
	SkillBeginner:     {},
	SkillIntermediate: {},
	SkillAdvanced:     {},
}

type PlayFrequency string

const (
	PlayRarely  PlayFrequency = "rarely"
	PlayMonthly PlayFrequency = "monthly"
	PlayWeekly  PlayFrequency = "weekly"
	PlayDaily   PlayFrequency = "daily"
)

var AllPlayFrequencies = map[PlayFrequency]struct{}{
	PlayRarely:  {},
	PlayMonthly: {},
	PlayWeekly:  {},
	PlayDaily:   {},
}

// Profile holds one golfer's stated preferences. Preference fields left empty
// express no preference and never affect matching.
type Profile struct {
	ID                  string
	UserID              string
	Email               string
	SkillLevel          SkillLevel
	PlayFrequency       PlayFrequency
	PreferredPriceRange club.PriceTier
	PreferredDifficulty club.Difficulty
	DesiredAmenities    club.Amenities
}

func (p Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile id is required")
	}
	if p.UserID == "" {
		return fmt.Errorf("profile user id is required")
	}
	if p.SkillLevel != "" {
		if _, ok := AllSkillLevels[p.SkillLevel]; !ok {
			return fmt.Errorf("invalid skill level: %s", p.SkillLevel)
		}
	}
	if p.PlayFrequency != "" {
		if _, ok := AllPlayFrequencies[p.PlayFrequency]; !ok {
			return fmt.Errorf("invalid play frequency: %s", p.PlayFrequency)
		}
	}
	if p.PreferredPriceRange != "" {
		if _, ok := club.AllPriceTiers[p.PreferredPriceRange]; !ok {
			return fmt.Errorf("invalid preferred price range: %s", p.PreferredPriceRange)
		}
	}
	if p.PreferredDifficulty != "" {
		if _, ok := club.AllDifficulties[p.PreferredDifficulty]; !ok {
			return fmt.Errorf("invalid preferred difficulty: %s", p.PreferredDifficulty)
		}
	}

	return nil
}
