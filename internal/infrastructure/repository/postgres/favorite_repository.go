package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	qb "github.com/fairwayhq/fairway-finder/internal/platform/querybuilder"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Toggle inserts the pair, or deletes it when the uniqueness constraint on
// (profile_id, club_id) reports it already present. Concurrent toggles race on
// the constraint, never on application state.
func (r *FavoriteRepository) Toggle(ctx context.Context, profileID, clubID string) (bool, error) {
	query, args, err := qb.InsertInto("favorites").
		Columns("profile_id", "club_id").
		Values(profileID, clubID).
		Suffix("ON CONFLICT (profile_id, club_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build insert favorite query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert favorite: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("favorite rows affected: %w", err)
	}
	if inserted > 0 {
		return true, nil
	}

	deleteQuery, deleteArgs, err := qb.DeleteFrom("favorites").
		Where(qb.Eq("profile_id", profileID), qb.Eq("club_id", clubID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete favorite query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}

	return false, nil
}

func (r *FavoriteRepository) ListClubs(ctx context.Context, profileID string) ([]club.Club, error) {
	const listQuery = `
SELECT c.*
FROM clubs c
JOIN favorites f ON f.club_id = c.id
WHERE f.profile_id = $1
ORDER BY f.created_at, c.id`

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, listQuery, profileID); err != nil {
		return nil, fmt.Errorf("list favorite clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, profileID, clubID string) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("favorites").
		Where(qb.Eq("profile_id", profileID), qb.Eq("club_id", clubID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build favorite exists query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("favorite exists: %w", err)
	}

	return count > 0, nil
}
