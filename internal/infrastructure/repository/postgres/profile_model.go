package postgres

import (
	"database/sql"
	"time"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
)

type profileTableModel struct {
	ID                  string         `db:"id"`
	UserID              string         `db:"user_id"`
	Email               string         `db:"email"`
	SkillLevel          sql.NullString `db:"skill_level"`
	PlayFrequency       sql.NullString `db:"play_frequency"`
	PreferredPriceRange sql.NullString `db:"preferred_price_range"`
	PreferredDifficulty sql.NullString `db:"preferred_difficulty"`
	DrivingRange        bool           `db:"driving_range"`
	PuttingGreen        bool           `db:"putting_green"`
	ChippingGreen       bool           `db:"chipping_green"`
	PracticeBunker      bool           `db:"practice_bunker"`
	Restaurant          bool           `db:"restaurant"`
	LodgingOnSite       bool           `db:"lodging_on_site"`
	MotorCart           bool           `db:"motor_cart"`
	PullCart            bool           `db:"pull_cart"`
	ClubRental          bool           `db:"golf_clubs_rental"`
	ClubFitting         bool           `db:"club_fitting"`
	GolfLessons         bool           `db:"golf_lessons"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

func (m profileTableModel) toDomain() profile.Profile {
	return profile.Profile{
		ID:                  m.ID,
		UserID:              m.UserID,
		Email:               m.Email,
		SkillLevel:          profile.SkillLevel(m.SkillLevel.String),
		PlayFrequency:       profile.PlayFrequency(m.PlayFrequency.String),
		PreferredPriceRange: club.PriceTier(m.PreferredPriceRange.String),
		PreferredDifficulty: club.Difficulty(m.PreferredDifficulty.String),
		DesiredAmenities: club.Amenities{
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
}

func profileToTableModel(p profile.Profile) profileTableModel {
	return profileTableModel{
		ID:                  p.ID,
		UserID:              p.UserID,
		Email:               p.Email,
		SkillLevel:          nullString(string(p.SkillLevel)),
		PlayFrequency:       nullString(string(p.PlayFrequency)),
		PreferredPriceRange: nullString(string(p.PreferredPriceRange)),
		PreferredDifficulty: nullString(string(p.PreferredDifficulty)),
		DrivingRange:        p.DesiredAmenities.DrivingRange,
		PuttingGreen:        p.DesiredAmenities.PuttingGreen,
		ChippingGreen:       p.DesiredAmenities.ChippingGreen,
		PracticeBunker:      p.DesiredAmenities.PracticeBunker,
		Restaurant:          p.DesiredAmenities.Restaurant,
		LodgingOnSite:       p.DesiredAmenities.LodgingOnSite,
		MotorCart:           p.DesiredAmenities.MotorCart,
		PullCart:            p.DesiredAmenities.PullCart,
		ClubRental:          p.DesiredAmenities.ClubRental,
		ClubFitting:         p.DesiredAmenities.ClubFitting,
		GolfLessons:         p.DesiredAmenities.GolfLessons,
	}
}
