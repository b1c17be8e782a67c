package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/course"
	"github.com/fairwayhq/fairway-finder/internal/platform/id"
)

type ClubService struct {
	clubRepo   club.Repository
	courseRepo course.Repository
	idGen      id.Generator
}

func NewClubService(clubRepo club.Repository, courseRepo course.Repository, idGen id.Generator) *ClubService {
	return &ClubService{
		clubRepo:   clubRepo,
		courseRepo: courseRepo,
		idGen:      idGen,
	}
}

func (s *ClubService) GetClub(ctx context.Context, clubID string) (club.Club, error) {
	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return club.Club{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	c, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
	}

	return c, nil
}

func (s *ClubService) CreateClub(ctx context.Context, c club.Club) (club.Club, error) {
	if c.ID == "" {
		clubID, err := s.idGen.NewID()
		if err != nil {
			return club.Club{}, fmt.Errorf("generate club id: %w", err)
		}
		c.ID = clubID
	}

	if err := c.Validate(); err != nil {
		return club.Club{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if _, exists, err := s.clubRepo.GetByID(ctx, c.ID); err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	} else if exists {
		return club.Club{}, fmt.Errorf("%w: club %s already exists", ErrInvalidInput, c.ID)
	}

	if err := s.clubRepo.Create(ctx, c); err != nil {
		return club.Club{}, fmt.Errorf("create club: %w", err)
	}

	return c, nil
}

func (s *ClubService) UpdateClub(ctx context.Context, c club.Club) (club.Club, error) {
	if err := c.Validate(); err != nil {
		return club.Club{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	_, exists, err := s.clubRepo.GetByID(ctx, c.ID)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%s", ErrNotFound, c.ID)
	}

	if err := s.clubRepo.Update(ctx, c); err != nil {
		return club.Club{}, fmt.Errorf("update club: %w", err)
	}

	return c, nil
}

func (s *ClubService) DeleteClub(ctx context.Context, clubID string) error {
	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	_, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
	}

	if err := s.courseRepo.DeleteByClub(ctx, clubID); err != nil {
		return fmt.Errorf("delete club courses: %w", err)
	}
	if err := s.clubRepo.Delete(ctx, clubID); err != nil {
		return fmt.Errorf("delete club: %w", err)
	}

	return nil
}

// CourseDetail is a course joined with its tee boxes.
type CourseDetail struct {
	Course   course.Course
	TeeBoxes []course.TeeBox
}

func (s *ClubService) ListCourses(ctx context.Context, clubID string) ([]CourseDetail, error) {
	if _, err := s.GetClub(ctx, clubID); err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	details := make([]CourseDetail, 0, len(courses))
	for _, c := range courses {
		tees, err := s.courseRepo.ListTeeBoxes(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("list tee boxes: %w", err)
		}
		details = append(details, CourseDetail{Course: c, TeeBoxes: tees})
	}

	return details, nil
}
