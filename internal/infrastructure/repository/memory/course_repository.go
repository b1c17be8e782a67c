package memory

import (
	"context"
	"sync"

	"github.com/fairwayhq/fairway-finder/internal/domain/course"
)

type CourseRepository struct {
	mu      sync.RWMutex
	courses []course.Course
	tees    []course.TeeBox
}

func NewCourseRepository(courses []course.Course, tees []course.TeeBox) *CourseRepository {
	return &CourseRepository{
		courses: append([]course.Course(nil), courses...),
		tees:    append([]course.TeeBox(nil), tees...),
	}
}

func (r *CourseRepository) ListByClub(_ context.Context, clubID string) ([]course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []course.Course
	for _, c := range r.courses {
		if c.ClubID == clubID {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *CourseRepository) ListTeeBoxes(_ context.Context, courseID string) ([]course.TeeBox, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []course.TeeBox
	for _, t := range r.tees {
		if t.CourseID == courseID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *CourseRepository) Create(_ context.Context, c course.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.courses = append(r.courses, c)

	return nil
}

func (r *CourseRepository) CreateTeeBox(_ context.Context, t course.TeeBox) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tees = append(r.tees, t)

	return nil
}

func (r *CourseRepository) DeleteByClub(ctx context.Context, clubID string) error {
	courses, err := r.ListByClub(ctx, clubID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	courseIDs := make(map[string]struct{}, len(courses))
	for _, c := range courses {
		courseIDs[c.ID] = struct{}{}
	}

	keptCourses := r.courses[:0]
	for _, c := range r.courses {
		if c.ClubID != clubID {
			keptCourses = append(keptCourses, c)
		}
	}
	r.courses = keptCourses

	keptTees := r.tees[:0]
	for _, t := range r.tees {
		if _, gone := courseIDs[t.CourseID]; !gone {
			keptTees = append(keptTees, t)
		}
	}
	r.tees = keptTees

	return nil
}
