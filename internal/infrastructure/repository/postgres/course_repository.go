package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fairwayhq/fairway-finder/internal/domain/course"
	qb "github.com/fairwayhq/fairway-finder/internal/platform/querybuilder"
)

type courseTableModel struct {
	ID           string          `db:"id"`
	ClubID       string          `db:"club_id"`
	Name         string          `db:"name"`
	Holes        int             `db:"holes"`
	HasGPS       bool            `db:"has_gps"`
	CourseRating sql.NullFloat64 `db:"course_rating"`
	SlopeRating  sql.NullInt64   `db:"slope_rating"`
}

type teeBoxTableModel struct {
	ID           string          `db:"id"`
	CourseID     string          `db:"course_id"`
	Color        string          `db:"color"`
	Yardage      int             `db:"yardage"`
	Par          int             `db:"par"`
	SlopeRating  sql.NullInt64   `db:"slope_rating"`
	CourseRating sql.NullFloat64 `db:"course_rating"`
}

type CourseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) ListByClub(ctx context.Context, clubID string) ([]course.Course, error) {
	query, args, err := qb.Select("id", "club_id", "name", "holes", "has_gps", "course_rating", "slope_rating").
		From("courses").
		Where(qb.Eq("club_id", clubID)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select courses query: %w", err)
	}

	var rows []courseTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select courses: %w", err)
	}

	out := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, course.Course{
			ID:           row.ID,
			ClubID:       row.ClubID,
			Name:         row.Name,
			Holes:        row.Holes,
			HasGPS:       row.HasGPS,
			CourseRating: row.CourseRating.Float64,
			SlopeRating:  int(row.SlopeRating.Int64),
		})
	}

	return out, nil
}

func (r *CourseRepository) ListTeeBoxes(ctx context.Context, courseID string) ([]course.TeeBox, error) {
	query, args, err := qb.Select("id", "course_id", "color", "yardage", "par", "slope_rating", "course_rating").
		From("tee_boxes").
		Where(qb.Eq("course_id", courseID)).
		OrderBy("yardage DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tee boxes query: %w", err)
	}

	var rows []teeBoxTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tee boxes: %w", err)
	}

	out := make([]course.TeeBox, 0, len(rows))
	for _, row := range rows {
		out = append(out, course.TeeBox{
			ID:           row.ID,
			CourseID:     row.CourseID,
			Color:        row.Color,
			Yardage:      row.Yardage,
			Par:          row.Par,
			SlopeRating:  int(row.SlopeRating.Int64),
			CourseRating: row.CourseRating.Float64,
		})
	}

	return out, nil
}

func (r *CourseRepository) Create(ctx context.Context, c course.Course) error {
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

	query, args, err := qb.InsertModel("courses", model, "")
	if err != nil {
		return fmt.Errorf("build insert course query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}

	return nil
}

func (r *CourseRepository) CreateTeeBox(ctx context.Context, t course.TeeBox) error {
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

	query, args, err := qb.InsertModel("tee_boxes", model, "")
	if err != nil {
		return fmt.Errorf("build insert tee box query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert tee box: %w", err)
	}

	return nil
}

func (r *CourseRepository) DeleteByClub(ctx context.Context, clubID string) error {
	const deleteTeesQuery = `
DELETE FROM tee_boxes
WHERE course_id IN (SELECT id FROM courses WHERE club_id = $1)`

	if _, err := r.db.ExecContext(ctx, deleteTeesQuery, clubID); err != nil {
		return fmt.Errorf("delete tee boxes by club: %w", err)
	}

	query, args, err := qb.DeleteFrom("courses").
		Where(qb.Eq("club_id", clubID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete courses query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete courses by club: %w", err)
	}

	return nil
}
