package client

import (
	"net/url"
	"strconv"
	"strings"
)

// Club mirrors the API's club representation.
type Club struct {
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

// DayForecast is one day of playing conditions on a result card.
type DayForecast struct {
	Date            string  `json:"date"`
	HighTempF       float64 `json:"high_temp_f"`
	LowTempF        float64 `json:"low_temp_f"`
	PrecipChancePct int     `json:"precip_chance_pct"`
	WindSpeedMph    float64 `json:"wind_speed_mph"`
}

// SearchResult is a club hit with its distance from the searched ZIP.
type SearchResult struct {
	Club
	DistanceMiles float64       `json:"distance_miles"`
	Forecast      []DayForecast `json:"forecast,omitempty"`

	// Courses is filled by EnrichCourses, not by the search endpoint.
	Courses []Course `json:"-"`
}

// Recommendation is a club hit with its profile match score in [0,100].
type Recommendation struct {
	Club
	DistanceMiles float64 `json:"distance_miles"`
	Score         float64 `json:"score"`
}

type SearchPage struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

type RecommendationPage struct {
	Results []Recommendation `json:"results"`
	Total   int              `json:"total"`
}

type Profile struct {
	UserID              string   `json:"user_id"`
	Email               string   `json:"email,omitempty"`
	SkillLevel          string   `json:"skill_level,omitempty"`
	PlayFrequency       string   `json:"play_frequency,omitempty"`
	PreferredPriceRange string   `json:"preferred_price_range,omitempty"`
	PreferredDifficulty string   `json:"preferred_difficulty,omitempty"`
	DesiredAmenities    []string `json:"desired_amenities"`
}

// ProfileUpdate is the full replacement payload for PUT /api/profiles/current.
type ProfileUpdate struct {
	Email               string   `json:"email,omitempty"`
	SkillLevel          string   `json:"skill_level,omitempty"`
	PlayFrequency       string   `json:"play_frequency,omitempty"`
	PreferredPriceRange string   `json:"preferred_price_range,omitempty"`
	PreferredDifficulty string   `json:"preferred_difficulty,omitempty"`
	DesiredAmenities    []string `json:"desired_amenities,omitempty"`
}

type FavoriteToggle struct {
	ClubID    string `json:"club_id"`
	Favorited bool   `json:"favorited"`
}

type Course struct {
	ID           string   `json:"id"`
	ClubID       string   `json:"club_id"`
	Name         string   `json:"name"`
	Holes        int      `json:"number_of_holes"`
	HasGPS       bool     `json:"has_gps"`
	CourseRating float64  `json:"course_rating"`
	SlopeRating  int      `json:"slope_rating"`
	TeeBoxes     []TeeBox `json:"tee_boxes"`
}

type TeeBox struct {
	ID           string  `json:"id"`
	Color        string  `json:"color"`
	Yardage      int     `json:"yardage"`
	Par          int     `json:"par"`
	SlopeRating  int     `json:"slope_rating"`
	CourseRating float64 `json:"course_rating"`
}

// ClubPayload creates or replaces a club via the catalog endpoints.
type ClubPayload struct {
	ID         string   `json:"id,omitempty"`
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
	Amenities  []string `json:"amenities,omitempty"`
}

// SearchCriteria are the /find_clubs query parameters. Zero-valued fields are
// omitted, so only supplied criteria narrow the result.
type SearchCriteria struct {
	ZipCode        string
	RadiusMiles    float64
	PriceTier      string
	Difficulty     string
	NumberOfHoles  int
	ClubMembership string
	Amenities      []string
	IncludeWeather bool
}

func (c SearchCriteria) values() url.Values {
	q := url.Values{}
	q.Set("zip_code", strings.TrimSpace(c.ZipCode))
	if c.RadiusMiles > 0 {
		q.Set("radius", strconv.FormatFloat(c.RadiusMiles, 'f', -1, 64))
	}
	if c.PriceTier != "" {
		q.Set("price_tier", c.PriceTier)
	}
	if c.Difficulty != "" {
		q.Set("difficulty", c.Difficulty)
	}
	if c.NumberOfHoles > 0 {
		q.Set("number_of_holes", strconv.Itoa(c.NumberOfHoles))
	}
	if c.ClubMembership != "" {
		q.Set("club_membership", c.ClubMembership)
	}
	for _, amenity := range c.Amenities {
		if name := strings.TrimSpace(amenity); name != "" {
			q.Set(name, "true")
		}
	}
	if c.IncludeWeather {
		q.Set("include_weather", "true")
	}

	return q
}

// RecommendationCriteria are the /get_recommendations query parameters.
// SkillLevel and PreferredPriceRange override the stored profile for this one
// call without persisting.
type RecommendationCriteria struct {
	ZipCode             string
	RadiusMiles         float64
	SkillLevel          string
	PreferredPriceRange string
}

func (c RecommendationCriteria) values() url.Values {
	q := url.Values{}
	q.Set("zip_code", strings.TrimSpace(c.ZipCode))
	if c.RadiusMiles > 0 {
		q.Set("radius", strconv.FormatFloat(c.RadiusMiles, 'f', -1, 64))
	}
	if c.SkillLevel != "" {
		q.Set("skill_level", c.SkillLevel)
	}
	if c.PreferredPriceRange != "" {
		q.Set("preferred_price_range", c.PreferredPriceRange)
	}

	return q
}

// Page is a limit/offset window on a listing endpoint.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(q url.Values) {
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
}
