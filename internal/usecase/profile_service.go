package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
	"github.com/fairwayhq/fairway-finder/internal/platform/id"
)

type ProfileService struct {
	profileRepo profile.Repository
	idGen       id.Generator
}

func NewProfileService(profileRepo profile.Repository, idGen id.Generator) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		idGen:       idGen,
	}
}

// GetOrCreate returns the caller's profile, creating an empty one on first
// access. A fresh profile states no preferences.
func (s *ProfileService) GetOrCreate(ctx context.Context, userID string) (profile.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profile.Profile{}, fmt.Errorf("%w: user is required", ErrUnauthorized)
	}

	existing, exists, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	if exists {
		return existing, nil
	}

	profileID, err := s.idGen.NewID()
	if err != nil {
		return profile.Profile{}, fmt.Errorf("generate profile id: %w", err)
	}

	created := profile.Profile{
		ID:     profileID,
		UserID: userID,
	}
	if err := s.profileRepo.Upsert(ctx, created); err != nil {
		return profile.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	return created, nil
}

// UpdateInput carries the owner-mutable preference fields. Identity fields are
// never taken from the caller.
type UpdateProfileInput struct {
	Email               string
	SkillLevel          profile.SkillLevel
	PlayFrequency       profile.PlayFrequency
	PreferredPriceRange string
	PreferredDifficulty string
	DesiredAmenities    []string
}

func (s *ProfileService) Update(ctx context.Context, userID string, in UpdateProfileInput) (profile.Profile, error) {
	current, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}

	updated := current
	updated.Email = strings.TrimSpace(in.Email)
	updated.SkillLevel = in.SkillLevel
	updated.PlayFrequency = in.PlayFrequency
	updated.PreferredPriceRange = clubPriceTier(in.PreferredPriceRange)
	updated.PreferredDifficulty = clubDifficulty(in.PreferredDifficulty)

	updated.DesiredAmenities = amenitiesFromNames(in.DesiredAmenities)
	unknown := unknownAmenities(in.DesiredAmenities)
	if len(unknown) > 0 {
		return profile.Profile{}, fmt.Errorf("%w: unknown amenities: %s", ErrInvalidInput, strings.Join(unknown, ", "))
	}

	if err := updated.Validate(); err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := s.profileRepo.Upsert(ctx, updated); err != nil {
		return profile.Profile{}, fmt.Errorf("update profile: %w", err)
	}

	return updated, nil
}
