package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/platform/id"
)

type stubFavoriteRepo struct {
	mu    sync.Mutex
	pairs map[[2]string]struct{}
	clubs *stubClubRepo
}

func newStubFavoriteRepo(clubs *stubClubRepo) *stubFavoriteRepo {
	return &stubFavoriteRepo{
		pairs: make(map[[2]string]struct{}),
		clubs: clubs,
	}
}

func (r *stubFavoriteRepo) Toggle(_ context.Context, profileID, clubID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{profileID, clubID}
	if _, ok := r.pairs[key]; ok {
		delete(r.pairs, key)
		return false, nil
	}
	r.pairs[key] = struct{}{}
	return true, nil
}

func (r *stubFavoriteRepo) ListClubs(ctx context.Context, profileID string) ([]club.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []club.Club
	for key := range r.pairs {
		if key[0] != profileID {
			continue
		}
		c, ok, err := r.clubs.GetByID(ctx, key[1])
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubFavoriteRepo) Exists(_ context.Context, profileID, clubID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pairs[[2]string{profileID, clubID}]
	return ok, nil
}

func newFavoriteFixture(t *testing.T) (*FavoriteService, *stubFavoriteRepo) {
	t.Helper()

	clubs := searchFixtures()
	favorites := newStubFavoriteRepo(clubs)
	profiles := NewProfileService(newStubProfileRepo(), id.NewRandomGenerator())

	return NewFavoriteService(favorites, clubs, profiles), favorites
}

func TestToggleFavoriteIsItsOwnInverse(t *testing.T) {
	t.Parallel()

	svc, repo := newFavoriteFixture(t)
	ctx := context.Background()

	on, err := svc.Toggle(ctx, "user-1", "augusta-national")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !on {
		t.Fatal("first toggle must favorite the club")
	}

	off, err := svc.Toggle(ctx, "user-1", "augusta-national")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off {
		t.Fatal("second toggle must unfavorite the club")
	}
	if len(repo.pairs) != 0 {
		t.Fatalf("expected zero rows for the pair, got %d", len(repo.pairs))
	}
}

func TestToggleFavoriteUnknownClub(t *testing.T) {
	t.Parallel()

	svc, _ := newFavoriteFixture(t)

	_, err := svc.Toggle(context.Background(), "user-1", "no-such-club")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFavoritesJoinsLiveClubAttributes(t *testing.T) {
	t.Parallel()

	clubs := searchFixtures()
	favorites := newStubFavoriteRepo(clubs)
	profiles := NewProfileService(newStubProfileRepo(), id.NewRandomGenerator())
	svc := NewFavoriteService(favorites, clubs, profiles)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "user-1", "pebble-beach-golf-links"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// mutate the club after favoriting; the listing must reflect it
	c, _, err := clubs.GetByID(ctx, "pebble-beach-golf-links")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Name = "Pebble Beach Golf Links (Renovated)"
	if err := clubs.Update(ctx, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one favorite, got %d", len(list))
	}
	if list[0].Name != "Pebble Beach Golf Links (Renovated)" {
		t.Fatalf("favorite listing is a stale snapshot: %s", list[0].Name)
	}
}

func TestListFavoritesForFreshUserIsEmpty(t *testing.T) {
	t.Parallel()

	svc, _ := newFavoriteFixture(t)

	list, err := svc.List(context.Background(), "fresh-user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no favorites, got %d", len(list))
	}
}
