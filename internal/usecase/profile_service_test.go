package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
	"github.com/fairwayhq/fairway-finder/internal/platform/id"
)

func newProfileFixture(t *testing.T) (*ProfileService, *stubProfileRepo) {
	t.Helper()

	repo := newStubProfileRepo()
	return NewProfileService(repo, id.NewRandomGenerator()), repo
}

func TestGetOrCreateLazilyCreatesProfile(t *testing.T) {
	t.Parallel()

	svc, repo := newProfileFixture(t)
	ctx := context.Background()

	created, err := svc.GetOrCreate(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.UserID != "user-1" {
		t.Fatalf("unexpected profile: %+v", created)
	}
	if created.PreferredPriceRange != "" || created.PreferredDifficulty != "" {
		t.Fatalf("fresh profile must state no preferences: %+v", created)
	}

	again, err := svc.GetOrCreate(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != created.ID {
		t.Fatalf("second access created a new profile: %s vs %s", again.ID, created.ID)
	}
	if len(repo.profiles) != 1 {
		t.Fatalf("expected one stored profile, got %d", len(repo.profiles))
	}
}

func TestGetOrCreateRequiresUser(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileFixture(t)

	if _, err := svc.GetOrCreate(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateProfileRoundTrip(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileFixture(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, "user-1", UpdateProfileInput{
		Email:               "golfer@example.com",
		SkillLevel:          profile.SkillIntermediate,
		PlayFrequency:       profile.PlayWeekly,
		PreferredPriceRange: "$$",
		PreferredDifficulty: "Medium",
		DesiredAmenities:    []string{"driving_range", "restaurant"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.PreferredPriceRange != club.PriceTierMid {
		t.Fatalf("unexpected price range: %s", updated.PreferredPriceRange)
	}
	if updated.PreferredDifficulty != club.DifficultyMedium {
		t.Fatalf("unexpected difficulty: %s", updated.PreferredDifficulty)
	}
	if !updated.DesiredAmenities.DrivingRange || !updated.DesiredAmenities.Restaurant {
		t.Fatalf("amenity preferences lost: %+v", updated.DesiredAmenities)
	}
	if updated.DesiredAmenities.PullCart {
		t.Fatal("unrequested amenity was set")
	}

	stored, err := svc.GetOrCreate(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Email != "golfer@example.com" || stored.SkillLevel != profile.SkillIntermediate {
		t.Fatalf("update did not persist: %+v", stored)
	}
}

func TestUpdateProfileRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc, _ := newProfileFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   UpdateProfileInput
	}{
		{"bad price range", UpdateProfileInput{PreferredPriceRange: "$$$$"}},
		{"bad difficulty", UpdateProfileInput{PreferredDifficulty: "Brutal"}},
		{"bad skill level", UpdateProfileInput{SkillLevel: "pro"}},
		{"unknown amenity", UpdateProfileInput{DesiredAmenities: []string{"spa"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := svc.Update(ctx, "user-1", tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
