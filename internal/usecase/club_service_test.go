package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/course"
	"github.com/fairwayhq/fairway-finder/internal/platform/id"
)

type stubCourseRepo struct {
	courses []course.Course
	tees    []course.TeeBox
}

func (r *stubCourseRepo) ListByClub(_ context.Context, clubID string) ([]course.Course, error) {
	var out []course.Course
	for _, c := range r.courses {
		if c.ClubID == clubID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCourseRepo) ListTeeBoxes(_ context.Context, courseID string) ([]course.TeeBox, error) {
	var out []course.TeeBox
	for _, tb := range r.tees {
		if tb.CourseID == courseID {
			out = append(out, tb)
		}
	}
	return out, nil
}

func (r *stubCourseRepo) Create(_ context.Context, c course.Course) error {
	r.courses = append(r.courses, c)
	return nil
}

func (r *stubCourseRepo) CreateTeeBox(_ context.Context, tb course.TeeBox) error {
	r.tees = append(r.tees, tb)
	return nil
}

func (r *stubCourseRepo) DeleteByClub(_ context.Context, clubID string) error {
	kept := r.courses[:0]
	for _, c := range r.courses {
		if c.ClubID != clubID {
			kept = append(kept, c)
		}
	}
	r.courses = kept
	return nil
}

func newClubFixture(t *testing.T) (*ClubService, *stubClubRepo, *stubCourseRepo) {
	t.Helper()

	clubs := searchFixtures()
	courses := &stubCourseRepo{
		courses: []course.Course{
			{ID: "pebble-main", ClubID: "pebble-beach-golf-links", Name: "Championship Course", Holes: 18, HasGPS: true},
		},
		tees: []course.TeeBox{
			{ID: "pebble-main-blue", CourseID: "pebble-main", Color: "blue", Yardage: 6828, Par: 72},
		},
	}

	return NewClubService(clubs, courses, id.NewRandomGenerator()), clubs, courses
}

func TestGetClub(t *testing.T) {
	t.Parallel()

	svc, _, _ := newClubFixture(t)
	ctx := context.Background()

	c, err := svc.GetClub(ctx, "pebble-beach-golf-links")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Pebble Beach Golf Links" {
		t.Fatalf("unexpected club: %+v", c)
	}

	if _, err := svc.GetClub(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetClub(ctx, " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateClubGeneratesIDAndValidates(t *testing.T) {
	t.Parallel()

	svc, _, _ := newClubFixture(t)
	ctx := context.Background()

	created, err := svc.CreateClub(ctx, club.Club{Name: "Links at Spanish Bay", Zip: "93953"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	if _, err := svc.CreateClub(ctx, club.Club{Name: "No Zip"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.CreateClub(ctx, created); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("duplicate id must be rejected, got %v", err)
	}
}

func TestUpdateClub(t *testing.T) {
	t.Parallel()

	svc, _, _ := newClubFixture(t)
	ctx := context.Background()

	c, err := svc.GetClub(ctx, "monterey-pines")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Difficulty = club.DifficultyMedium

	updated, err := svc.UpdateClub(ctx, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Difficulty != club.DifficultyMedium {
		t.Fatalf("update lost the change: %+v", updated)
	}

	c.ID = "missing"
	if _, err := svc.UpdateClub(ctx, c); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteClubRemovesCourses(t *testing.T) {
	t.Parallel()

	svc, clubs, courses := newClubFixture(t)
	ctx := context.Background()

	if err := svc.DeleteClub(ctx, "pebble-beach-golf-links"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, exists, _ := clubs.GetByID(ctx, "pebble-beach-golf-links"); exists {
		t.Fatal("club still present after delete")
	}
	if remaining, _ := courses.ListByClub(ctx, "pebble-beach-golf-links"); len(remaining) != 0 {
		t.Fatalf("courses left behind: %d", len(remaining))
	}
}

func TestListCoursesWithTeeBoxes(t *testing.T) {
	t.Parallel()

	svc, _, _ := newClubFixture(t)

	details, err := svc.ListCourses(context.Background(), "pebble-beach-golf-links")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected one course, got %d", len(details))
	}
	if len(details[0].TeeBoxes) != 1 || details[0].TeeBoxes[0].Color != "blue" {
		t.Fatalf("tee boxes missing: %+v", details[0])
	}
}
