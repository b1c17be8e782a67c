package httpapi

import (
	"fmt"
	"net/http"

	"github.com/fairwayhq/fairway-finder/internal/usecase"
)

// GetRecommendations serves GET /get_recommendations for the authenticated
// golfer. skill_level and preferred_price_range act as one-shot overrides of
// the stored profile.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRecommendations")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	query := r.URL.Query()

	radius, err := parseFloatParam(query, "radius")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := parseIntParam(query, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	offset, err := parseIntParam(query, "offset")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.recommendationService.Recommend(ctx, principal.UserID, usecase.RecommendInput{
		Zip:                 query.Get("zip_code"),
		RadiusMiles:         radius,
		SkillLevel:          query.Get("skill_level"),
		PreferredPriceRange: query.Get("preferred_price_range"),
		Limit:               limit,
		Offset:              offset,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get recommendations failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]recommendationDTO, 0, len(result.Results))
	for _, rec := range result.Results {
		items = append(items, recommendationToDTO(ctx, rec))
	}

	writeSuccess(ctx, w, http.StatusOK, pagedResponse{
		Results: items,
		Total:   result.Total,
	})
}
