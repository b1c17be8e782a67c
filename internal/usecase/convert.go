package usecase

import (
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
)

func clubPriceTier(raw string) club.PriceTier {
	return club.PriceTier(strings.TrimSpace(raw))
}

func clubDifficulty(raw string) club.Difficulty {
	return club.Difficulty(strings.TrimSpace(raw))
}

func amenitiesFromNames(names []string) club.Amenities {
	var a club.Amenities
	for _, name := range names {
		a.Set(club.Amenity(strings.TrimSpace(name)), true)
	}

	return a
}

func unknownAmenities(names []string) []string {
	var probe club.Amenities
	var unknown []string
	for _, name := range names {
		if !probe.Set(club.Amenity(strings.TrimSpace(name)), true) {
			unknown = append(unknown, name)
		}
	}

	return unknown
}
