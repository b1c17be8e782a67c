package memory

import (
	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/course"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
)

const (
	ClubIDPebbleBeach   = "pebble-beach-golf-links"
	ClubIDAugusta       = "augusta-national"
	ClubIDSpyglassHill  = "spyglass-hill"
	ClubIDSpanishBay    = "links-at-spanish-bay"
	ClubIDMontereyPines = "monterey-pines"
	ClubIDTorreyPines   = "torrey-pines-south"
)

func point(lat, lng float64) *geo.Point {
	return &geo.Point{Lat: lat, Lng: lng}
}

func SeedClubs() []club.Club {
	return []club.Club{
		{
			ID:         ClubIDPebbleBeach,
			Name:       "Pebble Beach Golf Links",
			Street:     "1700 17-Mile Drive",
			City:       "Pebble Beach",
			State:      "CA",
			Zip:        "93953",
			Country:    "USA",
			Location:   point(36.5681, -121.9500),
			PriceTier:  club.PriceTierPremium,
			Difficulty: club.DifficultyHard,
			Holes:      18,
			Membership: club.MembershipPublic,
			Amenities: club.Amenities{
				DrivingRange:  true,
				PuttingGreen:  true,
				Restaurant:    true,
				LodgingOnSite: true,
				MotorCart:     true,
				ClubRental:    true,
				GolfLessons:   true,
			},
		},
		{
			ID:         ClubIDSpyglassHill,
			Name:       "Spyglass Hill Golf Course",
			Street:     "3206 Stevenson Drive",
			City:       "Pebble Beach",
			State:      "CA",
			Zip:        "93953",
			Country:    "USA",
			Location:   point(36.5830, -121.9550),
			PriceTier:  club.PriceTierPremium,
			Difficulty: club.DifficultyHard,
			Holes:      18,
			Membership: club.MembershipPublic,
			Amenities: club.Amenities{
				DrivingRange: true,
				PuttingGreen: true,
				MotorCart:    true,
				PullCart:     true,
			},
		},
		{
			ID:         ClubIDSpanishBay,
			Name:       "The Links at Spanish Bay",
			Street:     "2700 17-Mile Drive",
			City:       "Pebble Beach",
			State:      "CA",
			Zip:        "93953",
			Country:    "USA",
			Location:   point(36.6081, -121.9423),
			PriceTier:  club.PriceTierMid,
			Difficulty: club.DifficultyMedium,
			Holes:      18,
			Membership: club.MembershipPublic,
			Amenities: club.Amenities{
				DrivingRange:  true,
				ChippingGreen: true,
				Restaurant:    true,
				LodgingOnSite: true,
				MotorCart:     true,
			},
		},
		{
			ID:         ClubIDMontereyPines,
			Name:       "Monterey Pines Golf Course",
			Street:     "1250 Garden Road",
			City:       "Monterey",
			State:      "CA",
			Zip:        "93940",
			Country:    "USA",
			Location:   point(36.6002, -121.8947),
			PriceTier:  club.PriceTierBudget,
			Difficulty: club.DifficultyEasy,
			Holes:      18,
			Membership: club.MembershipMilitary,
			Amenities: club.Amenities{
				PuttingGreen: true,
				PullCart:     true,
				GolfLessons:  true,
			},
		},
		{
			ID:         ClubIDAugusta,
			Name:       "Augusta National Golf Club",
			Street:     "2604 Washington Road",
			City:       "Augusta",
			State:      "GA",
			Zip:        "30904",
			Country:    "USA",
			Location:   point(33.5030, -82.0199),
			PriceTier:  club.PriceTierPremium,
			Difficulty: club.DifficultyHard,
			Holes:      18,
			Membership: club.MembershipPrivate,
			Amenities: club.Amenities{
				DrivingRange:   true,
				PuttingGreen:   true,
				ChippingGreen:  true,
				PracticeBunker: true,
				Restaurant:     true,
				LodgingOnSite:  true,
				MotorCart:      true,
				ClubFitting:    true,
			},
		},
		{
			ID:         ClubIDTorreyPines,
			Name:       "Torrey Pines Golf Course (South)",
			Street:     "11480 North Torrey Pines Road",
			City:       "La Jolla",
			State:      "CA",
			Zip:        "92037",
			Country:    "USA",
			Location:   point(32.9034, -117.2460),
			PriceTier:  club.PriceTierMid,
			Difficulty: club.DifficultyHard,
			Holes:      18,
			Membership: club.MembershipMunicipal,
			Amenities: club.Amenities{
				DrivingRange: true,
				PuttingGreen: true,
				Restaurant:   true,
				MotorCart:    true,
				PullCart:     true,
				ClubRental:   true,
				GolfLessons:  true,
			},
		},
	}
}

func SeedCourses() []course.Course {
	return []course.Course{
		{ID: "pebble-beach-main", ClubID: ClubIDPebbleBeach, Name: "Pebble Beach Golf Links", Holes: 18, HasGPS: true, CourseRating: 75.5, SlopeRating: 145},
		{ID: "spyglass-hill-main", ClubID: ClubIDSpyglassHill, Name: "Spyglass Hill", Holes: 18, HasGPS: true, CourseRating: 75.5, SlopeRating: 147},
		{ID: "spanish-bay-main", ClubID: ClubIDSpanishBay, Name: "The Links at Spanish Bay", Holes: 18, HasGPS: false, CourseRating: 74.0, SlopeRating: 140},
		{ID: "monterey-pines-main", ClubID: ClubIDMontereyPines, Name: "Monterey Pines", Holes: 18, HasGPS: false, CourseRating: 68.9, SlopeRating: 117},
		{ID: "augusta-national-main", ClubID: ClubIDAugusta, Name: "Augusta National", Holes: 18, HasGPS: false, CourseRating: 76.2, SlopeRating: 148},
		{ID: "torrey-pines-south-main", ClubID: ClubIDTorreyPines, Name: "Torrey Pines South", Holes: 18, HasGPS: true, CourseRating: 75.3, SlopeRating: 144},
	}
}

func SeedTeeBoxes() []course.TeeBox {
	return []course.TeeBox{
		{ID: "pebble-beach-main-blue", CourseID: "pebble-beach-main", Color: "blue", Yardage: 6828, Par: 72, SlopeRating: 145, CourseRating: 75.5},
		{ID: "pebble-beach-main-white", CourseID: "pebble-beach-main", Color: "white", Yardage: 6116, Par: 72, SlopeRating: 135, CourseRating: 71.7},
		{ID: "spyglass-hill-main-blue", CourseID: "spyglass-hill-main", Color: "blue", Yardage: 6960, Par: 72, SlopeRating: 147, CourseRating: 75.5},
		{ID: "spanish-bay-main-white", CourseID: "spanish-bay-main", Color: "white", Yardage: 6078, Par: 72, SlopeRating: 133, CourseRating: 70.6},
		{ID: "monterey-pines-main-white", CourseID: "monterey-pines-main", Color: "white", Yardage: 5557, Par: 69, SlopeRating: 117, CourseRating: 68.9},
		{ID: "augusta-national-main-member", CourseID: "augusta-national-main", Color: "member", Yardage: 6365, Par: 72, SlopeRating: 137, CourseRating: 72.9},
		{ID: "torrey-pines-south-main-black", CourseID: "torrey-pines-south-main", Color: "black", Yardage: 7802, Par: 72, SlopeRating: 144, CourseRating: 78.8},
	}
}

// SeedZipPoints backs the in-memory geocoder used for development and tests.
func SeedZipPoints() map[string]geo.Point {
	return map[string]geo.Point{
		"93953": {Lat: 36.5681, Lng: -121.9500},
		"93940": {Lat: 36.5912, Lng: -121.8839},
		"30904": {Lat: 33.4766, Lng: -82.0222},
		"92037": {Lat: 32.8473, Lng: -117.2742},
	}
}
