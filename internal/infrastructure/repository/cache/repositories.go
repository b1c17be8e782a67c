package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/course"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
	basecache "github.com/fairwayhq/fairway-finder/internal/platform/cache"
)

// ClubRepository caches reads of the club catalog. Catalog rows change rarely;
// every mutation drops the id entry and the whole search keyspace.
type ClubRepository struct {
	next  club.Repository
	cache *basecache.Store
}

func NewClubRepository(next club.Repository, cache *basecache.Store) *ClubRepository {
	return &ClubRepository{next: next, cache: cache}
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, clubByIDKey(clubID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, clubID)
		if err != nil {
			return nil, err
		}
		return cachedClubByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return club.Club{}, false, err
	}

	cached, _ := v.(cachedClubByID)
	return cached.value, cached.exists, nil
}

func (r *ClubRepository) SearchWithinBounds(ctx context.Context, bounds geo.Bounds, filter club.Filter) ([]club.Club, error) {
	key := clubSearchKey(bounds, filter)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.SearchWithinBounds(ctx, bounds, filter)
		if err != nil {
			return nil, err
		}
		return append([]club.Club(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]club.Club)
	return append([]club.Club(nil), items...), nil
}

func (r *ClubRepository) Create(ctx context.Context, c club.Club) error {
	if err := r.next.Create(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.ID)
	return nil
}

func (r *ClubRepository) Update(ctx context.Context, c club.Club) error {
	if err := r.next.Update(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.ID)
	return nil
}

func (r *ClubRepository) Delete(ctx context.Context, clubID string) error {
	if err := r.next.Delete(ctx, clubID); err != nil {
		return err
	}
	r.invalidate(ctx, clubID)
	return nil
}

func (r *ClubRepository) invalidate(ctx context.Context, clubID string) {
	r.cache.Delete(ctx, clubByIDKey(clubID))
	r.cache.DeletePrefix(ctx, clubSearchPrefix)
}

type cachedClubByID struct {
	value  club.Club
	exists bool
}

// CourseRepository caches per-club course and tee box listings.
type CourseRepository struct {
	next  course.Repository
	cache *basecache.Store
}

func NewCourseRepository(next course.Repository, cache *basecache.Store) *CourseRepository {
	return &CourseRepository{next: next, cache: cache}
}

func (r *CourseRepository) ListByClub(ctx context.Context, clubID string) ([]course.Course, error) {
	key := "course:list:club:" + clubID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByClub(ctx, clubID)
		if err != nil {
			return nil, err
		}
		return append([]course.Course(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]course.Course)
	return append([]course.Course(nil), items...), nil
}

func (r *CourseRepository) ListTeeBoxes(ctx context.Context, courseID string) ([]course.TeeBox, error) {
	key := "course:tees:" + courseID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListTeeBoxes(ctx, courseID)
		if err != nil {
			return nil, err
		}
		return append([]course.TeeBox(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]course.TeeBox)
	return append([]course.TeeBox(nil), items...), nil
}

func (r *CourseRepository) Create(ctx context.Context, c course.Course) error {
	if err := r.next.Create(ctx, c); err != nil {
		return err
	}
	r.cache.Delete(ctx, "course:list:club:"+c.ClubID)
	return nil
}

func (r *CourseRepository) CreateTeeBox(ctx context.Context, t course.TeeBox) error {
	if err := r.next.CreateTeeBox(ctx, t); err != nil {
		return err
	}
	r.cache.Delete(ctx, "course:tees:"+t.CourseID)
	return nil
}

func (r *CourseRepository) DeleteByClub(ctx context.Context, clubID string) error {
	if err := r.next.DeleteByClub(ctx, clubID); err != nil {
		return err
	}
	r.cache.Delete(ctx, "course:list:club:"+clubID)
	r.cache.DeletePrefix(ctx, "course:tees:")
	return nil
}

const clubSearchPrefix = "club:search:"

func clubByIDKey(clubID string) string {
	return "club:id:" + clubID
}

func clubSearchKey(bounds geo.Bounds, filter club.Filter) string {
	var b strings.Builder
	b.WriteString(clubSearchPrefix)
	b.WriteString(formatCoord(bounds.MinLat))
	b.WriteString(",")
	b.WriteString(formatCoord(bounds.MaxLat))
	b.WriteString(",")
	b.WriteString(formatCoord(bounds.MinLng))
	b.WriteString(",")
	b.WriteString(formatCoord(bounds.MaxLng))
	b.WriteString(":p=")
	b.WriteString(string(filter.PriceTier))
	b.WriteString(":d=")
	b.WriteString(string(filter.Difficulty))
	b.WriteString(":m=")
	b.WriteString(string(filter.Membership))
	b.WriteString(":h=")
	b.WriteString(strconv.Itoa(filter.Holes))
	b.WriteString(":a=")
	for i, flag := range filter.Amenities {
		if i > 0 {
			b.WriteString("|")
		}
		b.WriteString(string(flag))
	}

	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
