package httpapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
	"github.com/fairwayhq/fairway-finder/internal/usecase"
)

type clubDTO struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Street     string   `json:"street,omitempty"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	Zip        string   `json:"zip_code"`
	Country    string   `json:"country,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
	PriceTier  string   `json:"price_tier,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Holes      int      `json:"number_of_holes,omitempty"`
	Membership string   `json:"club_membership,omitempty"`
	Amenities  []string `json:"amenities"`
}

type searchResultDTO struct {
	clubDTO
	DistanceMiles float64       `json:"distance_miles"`
	Forecast      []forecastDTO `json:"forecast,omitempty"`
}

type recommendationDTO struct {
	clubDTO
	DistanceMiles float64 `json:"distance_miles"`
	Score         float64 `json:"score"`
}

type forecastDTO struct {
	Date            string  `json:"date"`
	HighTempF       float64 `json:"high_temp_f"`
	LowTempF        float64 `json:"low_temp_f"`
	PrecipChancePct int     `json:"precip_chance_pct"`
	WindSpeedMph    float64 `json:"wind_speed_mph"`
}

type pagedResponse struct {
	Results any `json:"results"`
	Total   int `json:"total"`
}

type profileDTO struct {
	UserID              string   `json:"user_id"`
	Email               string   `json:"email,omitempty"`
	SkillLevel          string   `json:"skill_level,omitempty"`
	PlayFrequency       string   `json:"play_frequency,omitempty"`
	PreferredPriceRange string   `json:"preferred_price_range,omitempty"`
	PreferredDifficulty string   `json:"preferred_difficulty,omitempty"`
	DesiredAmenities    []string `json:"desired_amenities"`
}

type updateProfileRequest struct {
	Email               string   `json:"email" validate:"omitempty,email"`
	SkillLevel          string   `json:"skill_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	PlayFrequency       string   `json:"play_frequency" validate:"omitempty,oneof=rarely monthly weekly daily"`
	PreferredPriceRange string   `json:"preferred_price_range" validate:"omitempty,oneof=$ $$ $$$"`
	PreferredDifficulty string   `json:"preferred_difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	DesiredAmenities    []string `json:"desired_amenities" validate:"omitempty,dive,required"`
}

type clubPayloadRequest struct {
	ID         string   `json:"id" validate:"omitempty,max=80"`
	Name       string   `json:"name" validate:"required,max=200"`
	Street     string   `json:"street" validate:"max=200"`
	City       string   `json:"city" validate:"max=100"`
	State      string   `json:"state" validate:"max=40"`
	Zip        string   `json:"zip_code" validate:"required,len=5"`
	Country    string   `json:"country" validate:"max=60"`
	Lat        *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng        *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	PriceTier  string   `json:"price_tier" validate:"omitempty,oneof=$ $$ $$$"`
	Difficulty string   `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Holes      int      `json:"number_of_holes" validate:"gte=0"`
	Membership string   `json:"club_membership" validate:"omitempty,oneof=public private military municipal"`
	Amenities  []string `json:"amenities" validate:"omitempty,dive,required"`
}

type favoriteToggleDTO struct {
	ClubID    string `json:"club_id"`
	Favorited bool   `json:"favorited"`
}

type courseDTO struct {
	ID           string      `json:"id"`
	ClubID       string      `json:"club_id"`
	Name         string      `json:"name"`
	Holes        int         `json:"number_of_holes"`
	HasGPS       bool        `json:"has_gps"`
	CourseRating float64     `json:"course_rating"`
	SlopeRating  int         `json:"slope_rating"`
	TeeBoxes     []teeBoxDTO `json:"tee_boxes"`
}

type teeBoxDTO struct {
	ID           string  `json:"id"`
	Color        string  `json:"color"`
	Yardage      int     `json:"yardage"`
	Par          int     `json:"par"`
	SlopeRating  int     `json:"slope_rating"`
	CourseRating float64 `json:"course_rating"`
}

func clubToDTO(ctx context.Context, v club.Club) clubDTO {
	ctx, span := startSpan(ctx, "httpapi.clubToDTO")
	defer span.End()

	dto := clubDTO{
		ID:         v.ID,
		Name:       v.Name,
		Street:     v.Street,
		City:       v.City,
		State:      v.State,
		Zip:        v.Zip,
		Country:    v.Country,
		PriceTier:  string(v.PriceTier),
		Difficulty: string(v.Difficulty),
		Holes:      v.Holes,
		Membership: string(v.Membership),
		Amenities:  amenityNames(v.Amenities),
	}
	if v.Location != nil {
		lat := v.Location.Lat
		lng := v.Location.Lng
		dto.Lat = &lat
		dto.Lng = &lng
	}

	return dto
}

func searchMatchToDTO(ctx context.Context, m usecase.ClubMatch) searchResultDTO {
	ctx, span := startSpan(ctx, "httpapi.searchMatchToDTO")
	defer span.End()

	return searchResultDTO{
		clubDTO:       clubToDTO(ctx, m.Club),
		DistanceMiles: m.DistanceMiles,
		Forecast:      forecastToDTO(m.Forecast),
	}
}

func recommendationToDTO(ctx context.Context, r usecase.Recommendation) recommendationDTO {
	ctx, span := startSpan(ctx, "httpapi.recommendationToDTO")
	defer span.End()

	return recommendationDTO{
		clubDTO:       clubToDTO(ctx, r.Club),
		DistanceMiles: r.DistanceMiles,
		Score:         r.Score,
	}
}

func forecastToDTO(days []usecase.DayForecast) []forecastDTO {
	if len(days) == 0 {
		return nil
	}

	out := make([]forecastDTO, 0, len(days))
	for _, d := range days {
		out = append(out, forecastDTO{
			Date:            d.Date,
			HighTempF:       d.HighTempF,
			LowTempF:        d.LowTempF,
			PrecipChancePct: d.PrecipChancePct,
			WindSpeedMph:    d.WindSpeedMph,
		})
	}

	return out
}

func profileToDTO(ctx context.Context, p profile.Profile) profileDTO {
	ctx, span := startSpan(ctx, "httpapi.profileToDTO")
	defer span.End()

	return profileDTO{
		UserID:              p.UserID,
		Email:               p.Email,
		SkillLevel:          string(p.SkillLevel),
		PlayFrequency:       string(p.PlayFrequency),
		PreferredPriceRange: string(p.PreferredPriceRange),
		PreferredDifficulty: string(p.PreferredDifficulty),
		DesiredAmenities:    amenityNames(p.DesiredAmenities),
	}
}

func courseDetailToDTO(ctx context.Context, d usecase.CourseDetail) courseDTO {
	ctx, span := startSpan(ctx, "httpapi.courseDetailToDTO")
	defer span.End()

	tees := make([]teeBoxDTO, 0, len(d.TeeBoxes))
	for _, t := range d.TeeBoxes {
		tees = append(tees, teeBoxDTO{
			ID:           t.ID,
			Color:        t.Color,
			Yardage:      t.Yardage,
			Par:          t.Par,
			SlopeRating:  t.SlopeRating,
			CourseRating: t.CourseRating,
		})
	}

	return courseDTO{
		ID:           d.Course.ID,
		ClubID:       d.Course.ClubID,
		Name:         d.Course.Name,
		Holes:        d.Course.Holes,
		HasGPS:       d.Course.HasGPS,
		CourseRating: d.Course.CourseRating,
		SlopeRating:  d.Course.SlopeRating,
		TeeBoxes:     tees,
	}
}

func clubFromPayload(req clubPayloadRequest) club.Club {
	c := club.Club{
		ID:         strings.TrimSpace(req.ID),
		Name:       strings.TrimSpace(req.Name),
		Street:     strings.TrimSpace(req.Street),
		City:       strings.TrimSpace(req.City),
		State:      strings.TrimSpace(req.State),
		Zip:        strings.TrimSpace(req.Zip),
		Country:    strings.TrimSpace(req.Country),
		PriceTier:  club.PriceTier(strings.TrimSpace(req.PriceTier)),
		Difficulty: club.Difficulty(strings.TrimSpace(req.Difficulty)),
		Holes:      req.Holes,
		Membership: club.Membership(strings.TrimSpace(req.Membership)),
	}
	for _, name := range req.Amenities {
		c.Amenities.Set(club.Amenity(strings.TrimSpace(name)), true)
	}
	if req.Lat != nil && req.Lng != nil {
		c.Location = &geo.Point{Lat: *req.Lat, Lng: *req.Lng}
	}

	return c
}

func amenityNames(a club.Amenities) []string {
	flags := a.Desired()
	out := make([]string, 0, len(flags))
	for _, flag := range flags {
		out = append(out, string(flag))
	}

	return out
}

// amenityFilterFromQuery collects the amenity flags supplied as
// <amenity>=true query parameters.
func amenityFilterFromQuery(query url.Values) []club.Amenity {
	var out []club.Amenity
	for _, flag := range club.AllAmenities {
		if parseBoolParam(query.Get(string(flag))) {
			out = append(out, flag)
		}
	}

	return out
}

func parseBoolParam(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

func parseFloatParam(query url.Values, name string) (float64, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %q", usecase.ErrInvalidInput, name, raw)
	}

	return v, nil
}

func parseIntParam(query url.Values, name string) (int, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %q", usecase.ErrInvalidInput, name, raw)
	}

	return v, nil
}
