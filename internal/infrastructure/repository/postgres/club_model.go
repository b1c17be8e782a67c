package postgres

import (
	"database/sql"
	"time"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
)

type clubTableModel struct {
	ID             string          `db:"id"`
	Name           string          `db:"name"`
	Street         string          `db:"street"`
	City           string          `db:"city"`
	State          string          `db:"state"`
	Zip            string          `db:"zip"`
	Country        string          `db:"country"`
	Lat            sql.NullFloat64 `db:"lat"`
	Lng            sql.NullFloat64 `db:"lng"`
	PriceTier      sql.NullString  `db:"price_tier"`
	Difficulty     sql.NullString  `db:"difficulty"`
	Holes          int             `db:"holes"`
	Membership     sql.NullString  `db:"membership"`
	DrivingRange   bool            `db:"driving_range"`
	PuttingGreen   bool            `db:"putting_green"`
	ChippingGreen  bool            `db:"chipping_green"`
	PracticeBunker bool            `db:"practice_bunker"`
	Restaurant     bool            `db:"restaurant"`
	LodgingOnSite  bool            `db:"lodging_on_site"`
	MotorCart      bool            `db:"motor_cart"`
	PullCart       bool            `db:"pull_cart"`
	ClubRental     bool            `db:"golf_clubs_rental"`
	ClubFitting    bool            `db:"club_fitting"`
	GolfLessons    bool            `db:"golf_lessons"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func (m clubTableModel) toDomain() club.Club {
	c := club.Club{
		ID:         m.ID,
		Name:       m.Name,
		Street:     m.Street,
		City:       m.City,
		State:      m.State,
		Zip:        m.Zip,
		Country:    m.Country,
		PriceTier:  club.PriceTier(m.PriceTier.String),
		Difficulty: club.Difficulty(m.Difficulty.String),
		Holes:      m.Holes,
		Membership: club.Membership(m.Membership.String),
		Amenities: club.Amenities{
			DrivingRange:   m.DrivingRange,
			PuttingGreen:   m.PuttingGreen,
			ChippingGreen:  m.ChippingGreen,
			PracticeBunker: m.PracticeBunker,
			Restaurant:     m.Restaurant,
			LodgingOnSite:  m.LodgingOnSite,
			MotorCart:      m.MotorCart,
			PullCart:       m.PullCart,
			ClubRental:     m.ClubRental,
			ClubFitting:    m.ClubFitting,
			GolfLessons:    m.GolfLessons,
		},
	}

	if m.Lat.Valid && m.Lng.Valid {
		c.Location = &geo.Point{Lat: m.Lat.Float64, Lng: m.Lng.Float64}
	}

	return c
}

func clubToTableModel(c club.Club) clubTableModel {
	m := clubTableModel{
		ID:             c.ID,
		Name:           c.Name,
		Street:         c.Street,
		City:           c.City,
		State:          c.State,
		Zip:            c.Zip,
		Country:        c.Country,
		PriceTier:      nullString(string(c.PriceTier)),
		Difficulty:     nullString(string(c.Difficulty)),
		Holes:          c.Holes,
		Membership:     nullString(string(c.Membership)),
		DrivingRange:   c.Amenities.DrivingRange,
		PuttingGreen:   c.Amenities.PuttingGreen,
		ChippingGreen:  c.Amenities.ChippingGreen,
		PracticeBunker: c.Amenities.PracticeBunker,
		Restaurant:     c.Amenities.Restaurant,
		LodgingOnSite:  c.Amenities.LodgingOnSite,
		MotorCart:      c.Amenities.MotorCart,
		PullCart:       c.Amenities.PullCart,
		ClubRental:     c.Amenities.ClubRental,
		ClubFitting:    c.Amenities.ClubFitting,
		GolfLessons:    c.Amenities.GolfLessons,
	}

	if c.Location != nil {
		m.Lat = sql.NullFloat64{Float64: c.Location.Lat, Valid: true}
		m.Lng = sql.NullFloat64{Float64: c.Location.Lng, Valid: true}
	}

	return m
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

// amenityColumn returns the club table column for an amenity flag. Flag names
// and column names are identical.
func amenityColumn(flag club.Amenity) string {
	return string(flag)
}
