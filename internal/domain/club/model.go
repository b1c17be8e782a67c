package club

import (
	"fmt"

	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
)

// PriceTier buckets a club's typical green fee.
type PriceTier string

const (
	PriceTierBudget  PriceTier = "$"
	PriceTierMid     PriceTier = "$$"
	PriceTierPremium PriceTier = "$$$"
)

var AllPriceTiers = map[PriceTier]struct{}{
	PriceTierBudget:  {},
	PriceTierMid:     {},
	PriceTierPremium: {},
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var AllDifficulties = map[Difficulty]struct{}{
	DifficultyEasy:   {},
	DifficultyMedium: {},
	DifficultyHard:   {},
}

type Membership string

const (
	MembershipPublic    Membership = "public"
	MembershipPrivate   Membership = "private"
	MembershipMilitary  Membership = "military"
	MembershipMunicipal Membership = "municipal"
)

var AllMemberships = map[Membership]struct{}{
	MembershipPublic:    {},
	MembershipPrivate:   {},
	MembershipMilitary:  {},
	MembershipMunicipal: {},
}

// Amenity identifies one of the fixed boolean service flags a club carries.
type Amenity string

const (
	AmenityDrivingRange   Amenity = "driving_range"
	AmenityPuttingGreen   Amenity = "putting_green"
	AmenityChippingGreen  Amenity = "chipping_green"
	AmenityPracticeBunker Amenity = "practice_bunker"
	AmenityRestaurant     Amenity = "restaurant"
	AmenityLodgingOnSite  Amenity = "lodging_on_site"
	AmenityMotorCart      Amenity = "motor_cart"
	AmenityPullCart       Amenity = "pull_cart"
	AmenityClubRental     Amenity = "golf_clubs_rental"
	AmenityClubFitting    Amenity = "club_fitting"
	AmenityGolfLessons    Amenity = "golf_lessons"
)

// AllAmenities lists every amenity flag in a stable order, shared by filter
// parsing, preference mirroring, and scoring.
var AllAmenities = []Amenity{
	AmenityDrivingRange,
	AmenityPuttingGreen,
	AmenityChippingGreen,
	AmenityPracticeBunker,
	AmenityRestaurant,
	AmenityLodgingOnSite,
	AmenityMotorCart,
	AmenityPullCart,
	AmenityClubRental,
	AmenityClubFitting,
	AmenityGolfLessons,
}

// Amenities is the fixed set of boolean service flags. The same shape doubles
// as a golfer's desired-amenity preferences.
type Amenities struct {
	DrivingRange   bool
	PuttingGreen   bool
	ChippingGreen  bool
	PracticeBunker bool
	Restaurant     bool
	LodgingOnSite  bool
	MotorCart      bool
	PullCart       bool
	ClubRental     bool
	ClubFitting    bool
	GolfLessons    bool
}

func (a Amenities) Has(flag Amenity) bool {
	switch flag {
	case AmenityDrivingRange:
		return a.DrivingRange
	case AmenityPuttingGreen:
		return a.PuttingGreen
	case AmenityChippingGreen:
		return a.ChippingGreen
	case AmenityPracticeBunker:
		return a.PracticeBunker
	case AmenityRestaurant:
		return a.Restaurant
	case AmenityLodgingOnSite:
		return a.LodgingOnSite
	case AmenityMotorCart:
		return a.MotorCart
	case AmenityPullCart:
		return a.PullCart
	case AmenityClubRental:
		return a.ClubRental
	case AmenityClubFitting:
		return a.ClubFitting
	case AmenityGolfLessons:
		return a.GolfLessons
	}

	return false
}

// Set flips one flag by name and reports whether the name was recognized.
func (a *Amenities) Set(flag Amenity, value bool) bool {
	switch flag {
	case AmenityDrivingRange:
		a.DrivingRange = value
	case AmenityPuttingGreen:
		a.PuttingGreen = value
	case AmenityChippingGreen:
		a.ChippingGreen = value
	case AmenityPracticeBunker:
		a.PracticeBunker = value
	case AmenityRestaurant:
		a.Restaurant = value
	case AmenityLodgingOnSite:
		a.LodgingOnSite = value
	case AmenityMotorCart:
		a.MotorCart = value
	case AmenityPullCart:
		a.PullCart = value
	case AmenityClubRental:
		a.ClubRental = value
	case AmenityClubFitting:
		a.ClubFitting = value
	case AmenityGolfLessons:
		a.GolfLessons = value
	default:
		return false
	}

	return true
}

// Desired returns the flags set to true, in AllAmenities order.
func (a Amenities) Desired() []Amenity {
	var out []Amenity
	for _, flag := range AllAmenities {
		if a.Has(flag) {
			out = append(out, flag)
		}
	}

	return out
}

// Club is a physical golf facility, parent of one or more courses.
type Club struct {
	ID         string
	Name       string
	Street     string
	City       string
	State      string
	Zip        string
	Country    string
	Location   *geo.Point
	PriceTier  PriceTier
	Difficulty Difficulty
	Holes      int
	Membership Membership
	Amenities  Amenities
}

func (c Club) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("club id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}
	if err := ValidateZip(c.Zip); err != nil {
		return err
	}
	if c.Location != nil {
		if err := c.Location.Validate(); err != nil {
			return fmt.Errorf("club location: %w", err)
		}
	}
	if c.PriceTier != "" {
		if _, ok := AllPriceTiers[c.PriceTier]; !ok {
			return fmt.Errorf("invalid price tier: %s", c.PriceTier)
		}
	}
	if c.Difficulty != "" {
		if _, ok := AllDifficulties[c.Difficulty]; !ok {
			return fmt.Errorf("invalid difficulty: %s", c.Difficulty)
		}
	}
	if c.Membership != "" {
		if _, ok := AllMemberships[c.Membership]; !ok {
			return fmt.Errorf("invalid membership type: %s", c.Membership)
		}
	}
	if c.Holes < 0 {
		return fmt.Errorf("holes count must not be negative")
	}

	return nil
}

// ValidateZip enforces a 5-digit US postal code.
func ValidateZip(zip string) error {
	if len(zip) != 5 {
		return fmt.Errorf("zip code must be 5 digits: %q", zip)
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return fmt.Errorf("zip code must be 5 digits: %q", zip)
		}
	}

	return nil
}

// Filter is the one explicit criteria set shared by the search endpoint and
// the client. Nil or zero-valued fields never narrow the result.
type Filter struct {
	PriceTier  PriceTier
	Difficulty Difficulty
	Holes      int
	Membership Membership
	Amenities  []Amenity
}

func (f Filter) Validate() error {
	if f.PriceTier != "" {
		if _, ok := AllPriceTiers[f.PriceTier]; !ok {
			return fmt.Errorf("invalid price tier: %s", f.PriceTier)
		}
	}
	if f.Difficulty != "" {
		if _, ok := AllDifficulties[f.Difficulty]; !ok {
			return fmt.Errorf("invalid difficulty: %s", f.Difficulty)
		}
	}
	if f.Membership != "" {
		if _, ok := AllMemberships[f.Membership]; !ok {
			return fmt.Errorf("invalid membership type: %s", f.Membership)
		}
	}
	if f.Holes < 0 {
		return fmt.Errorf("holes filter must not be negative")
	}

	return nil
}

// Matches applies the filter conjunctively: only supplied criteria narrow.
func (f Filter) Matches(c Club) bool {
	if f.PriceTier != "" && c.PriceTier != f.PriceTier {
		return false
	}
	if f.Difficulty != "" && c.Difficulty != f.Difficulty {
		return false
	}
	if f.Membership != "" && c.Membership != f.Membership {
		return false
	}
	if f.Holes > 0 && c.Holes != f.Holes {
		return false
	}
	for _, flag := range f.Amenities {
		if !c.Amenities.Has(flag) {
			return false
		}
	}

	return true
}
