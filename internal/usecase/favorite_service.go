package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/favorite"
)

type FavoriteService struct {
	favoriteRepo favorite.Repository
	clubRepo     club.Repository
	profiles     *ProfileService
}

func NewFavoriteService(favoriteRepo favorite.Repository, clubRepo club.Repository, profiles *ProfileService) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		clubRepo:     clubRepo,
		profiles:     profiles,
	}
}

// Toggle flips the favorite state of a club for the caller's profile and
// reports the resulting state. Duplicate-row safety under concurrent toggles
// lives in the repository's uniqueness constraint.
func (s *FavoriteService) Toggle(ctx context.Context, userID, clubID string) (bool, error) {
	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return false, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	_, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return false, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
	}

	p, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load profile: %w", err)
	}

	favorited, err := s.favoriteRepo.Toggle(ctx, p.ID, clubID)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}

	return favorited, nil
}

// List returns the caller's favorited clubs joined with live club attributes.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]club.Club, error) {
	p, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	clubs, err := s.favoriteRepo.ListClubs(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return clubs, nil
}
