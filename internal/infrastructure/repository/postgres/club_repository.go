package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
	qb "github.com/fairwayhq/fairway-finder/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(qb.Eq("id", clubID)).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build select club query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("select club: %w", err)
	}

	return row.toDomain(), true, nil
}

// SearchWithinBounds prefilters by the lat/lng box and the supplied criteria.
// Callers apply the exact great-circle cut; rows without coordinates never
// match a location search.
func (r *ClubRepository) SearchWithinBounds(ctx context.Context, bounds geo.Bounds, filter club.Filter) ([]club.Club, error) {
	conditions := []qb.Condition{
		qb.Gte("lat", bounds.MinLat),
		qb.Lte("lat", bounds.MaxLat),
		qb.Gte("lng", bounds.MinLng),
		qb.Lte("lng", bounds.MaxLng),
	}
	conditions = append(conditions, filterConditions(filter)...)

	query, args, err := qb.Select("*").From("clubs").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ClubRepository) Create(ctx context.Context, c club.Club) error {
	model := clubToTableModel(c)
	now := time.Now().UTC()
	model.CreatedAt = now
	model.UpdatedAt = now

	query, args, err := qb.InsertModel("clubs", model, "")
	if err != nil {
		return fmt.Errorf("build insert club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert club: %w", err)
	}

	return nil
}

func (r *ClubRepository) Update(ctx context.Context, c club.Club) error {
	model := clubToTableModel(c)

	builder := qb.Update("clubs").
		Set("name", model.Name).
		Set("street", model.Street).
		Set("city", model.City).
		Set("state", model.State).
		Set("zip", model.Zip).
		Set("country", model.Country).
		Set("lat", model.Lat).
		Set("lng", model.Lng).
		Set("price_tier", model.PriceTier).
		Set("difficulty", model.Difficulty).
		Set("holes", model.Holes).
		Set("membership", model.Membership)
	for _, flag := range club.AllAmenities {
		builder.Set(amenityColumn(flag), c.Amenities.Has(flag))
	}
	builder.SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", c.ID))

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build update club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update club: %w", err)
	}

	return nil
}

func (r *ClubRepository) Delete(ctx context.Context, clubID string) error {
	query, args, err := qb.DeleteFrom("clubs").
		Where(qb.Eq("id", clubID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete club: %w", err)
	}

	return nil
}

func filterConditions(filter club.Filter) []qb.Condition {
	var conditions []qb.Condition
	if filter.PriceTier != "" {
		conditions = append(conditions, qb.Eq("price_tier", string(filter.PriceTier)))
	}
	if filter.Difficulty != "" {
		conditions = append(conditions, qb.Eq("difficulty", string(filter.Difficulty)))
	}
	if filter.Membership != "" {
		conditions = append(conditions, qb.Eq("membership", string(filter.Membership)))
	}
	if filter.Holes > 0 {
		conditions = append(conditions, qb.Eq("holes", filter.Holes))
	}
	for _, flag := range filter.Amenities {
		conditions = append(conditions, qb.Eq(amenityColumn(flag), true))
	}

	return conditions
}
