package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fairwayhq/fairway-finder/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the starter club catalog into an empty database so a
// fresh deployment can serve searches before the CSV importer has run. A
// non-empty clubs table leaves the data untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM clubs`); err != nil {
		return fmt.Errorf("count clubs for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertClubQuery = `
INSERT INTO clubs (id, name, street, city, state, zip, country, lat, lng,
	price_tier, difficulty, holes, membership,
	driving_range, putting_green, chipping_green, practice_bunker, restaurant,
	lodging_on_site, motor_cart, pull_cart, golf_clubs_rental, club_fitting, golf_lessons)
VALUES (:id, :name, :street, :city, :state, :zip, :country, :lat, :lng,
	:price_tier, :difficulty, :holes, :membership,
	:driving_range, :putting_green, :chipping_green, :practice_bunker, :restaurant,
	:lodging_on_site, :motor_cart, :pull_cart, :golf_clubs_rental, :club_fitting, :golf_lessons)
ON CONFLICT (id) DO NOTHING`

	for _, c := range memory.SeedClubs() {
		sqlQuery, args, err := sqlx.Named(insertClubQuery, clubToTableModel(c))
		if err != nil {
			return fmt.Errorf("bind seed club %s query: %w", c.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed club %s: %w", c.ID, err)
		}
	}

	const insertCourseQuery = `
INSERT INTO courses (id, club_id, name, holes, has_gps, course_rating, slope_rating)
VALUES (:id, :club_id, :name, :holes, :has_gps, :course_rating, :slope_rating)
ON CONFLICT (id) DO NOTHING`

	for _, c := range memory.SeedCourses() {
		model := courseTableModel{
			ID:     c.ID,
			ClubID: c.ClubID,
			Name:   c.Name,
			Holes:  c.Holes,
			HasGPS: c.HasGPS,
		}
		if c.CourseRating > 0 {
			model.CourseRating = sql.NullFloat64{Float64: c.CourseRating, Valid: true}
		}
		if c.SlopeRating > 0 {
			model.SlopeRating = sql.NullInt64{Int64: int64(c.SlopeRating), Valid: true}
		}

		sqlQuery, args, err := sqlx.Named(insertCourseQuery, model)
		if err != nil {
			return fmt.Errorf("bind seed course %s query: %w", c.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed course %s: %w", c.ID, err)
		}
	}

	const insertTeeBoxQuery = `
INSERT INTO tee_boxes (id, course_id, color, yardage, par, slope_rating, course_rating)
VALUES (:id, :course_id, :color, :yardage, :par, :slope_rating, :course_rating)
ON CONFLICT (id) DO NOTHING`

	for _, t := range memory.SeedTeeBoxes() {
		model := teeBoxTableModel{
			ID:       t.ID,
			CourseID: t.CourseID,
			Color:    t.Color,
			Yardage:  t.Yardage,
			Par:      t.Par,
		}
		if t.SlopeRating > 0 {
			model.SlopeRating = sql.NullInt64{Int64: int64(t.SlopeRating), Valid: true}
		}
		if t.CourseRating > 0 {
			model.CourseRating = sql.NullFloat64{Float64: t.CourseRating, Valid: true}
		}

		sqlQuery, args, err := sqlx.Named(insertTeeBoxQuery, model)
		if err != nil {
			return fmt.Errorf("bind seed tee box %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed tee box %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
