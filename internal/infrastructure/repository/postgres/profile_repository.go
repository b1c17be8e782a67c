package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
	qb "github.com/fairwayhq/fairway-finder/internal/platform/querybuilder"
)

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, bool, error) {
	query, args, err := qb.Select("*").From("profiles").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("build select profile query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, fmt.Errorf("select profile: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p profile.Profile) error {
	const upsertQuery = `
INSERT INTO profiles (
    id, user_id, email, skill_level, play_frequency,
    preferred_price_range, preferred_difficulty,
    driving_range, putting_green, chipping_green, practice_bunker,
    restaurant, lodging_on_site, motor_cart, pull_cart,
    golf_clubs_rental, club_fitting, golf_lessons
) VALUES (
    :id, :user_id, :email, :skill_level, :play_frequency,
    :preferred_price_range, :preferred_difficulty,
    :driving_range, :putting_green, :chipping_green, :practice_bunker,
    :restaurant, :lodging_on_site, :motor_cart, :pull_cart,
    :golf_clubs_rental, :club_fitting, :golf_lessons
)
ON CONFLICT (user_id)
DO UPDATE SET
    email = EXCLUDED.email,
    skill_level = EXCLUDED.skill_level,
    play_frequency = EXCLUDED.play_frequency,
    preferred_price_range = EXCLUDED.preferred_price_range,
    preferred_difficulty = EXCLUDED.preferred_difficulty,
    driving_range = EXCLUDED.driving_range,
    putting_green = EXCLUDED.putting_green,
    chipping_green = EXCLUDED.chipping_green,
    practice_bunker = EXCLUDED.practice_bunker,
    restaurant = EXCLUDED.restaurant,
    lodging_on_site = EXCLUDED.lodging_on_site,
    motor_cart = EXCLUDED.motor_cart,
    pull_cart = EXCLUDED.pull_cart,
    golf_clubs_rental = EXCLUDED.golf_clubs_rental,
    club_fitting = EXCLUDED.club_fitting,
    golf_lessons = EXCLUDED.golf_lessons,
    updated_at = NOW()`

	if _, err := sqlx.NamedExecContext(ctx, r.db, upsertQuery, profileToTableModel(p)); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
}
