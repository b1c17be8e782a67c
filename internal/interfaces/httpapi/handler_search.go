package httpapi

import (
	"net/http"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/usecase"
)

// FindClubs serves GET /find_clubs. Every criterion beyond zip_code and
// radius is optional; absent criteria never narrow the result.
func (h *Handler) FindClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FindClubs")
	defer span.End()

	query := r.URL.Query()

	radius, err := parseFloatParam(query, "radius")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	holes, err := parseIntParam(query, "number_of_holes")
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

	in := usecase.SearchInput{
		Zip:         query.Get("zip_code"),
		RadiusMiles: radius,
		Filter: club.Filter{
			PriceTier:  club.PriceTier(strings.TrimSpace(query.Get("price_tier"))),
			Difficulty: club.Difficulty(strings.TrimSpace(query.Get("difficulty"))),
			Holes:      holes,
			Membership: club.Membership(strings.TrimSpace(query.Get("club_membership"))),
			Amenities:  amenityFilterFromQuery(query),
		},
		Limit:  limit,
		Offset: offset,
	}

	result, err := h.searchService.FindClubs(ctx, in)
	if err != nil {
		h.logger.WarnContext(ctx, "find clubs failed", "zip", in.Zip, "error", err)
		writeError(ctx, w, err)
		return
	}

	if parseBoolParam(query.Get("include_weather")) {
		h.weatherService.Enrich(ctx, result.Results)
	}

	items := make([]searchResultDTO, 0, len(result.Results))
	for _, m := range result.Results {
		items = append(items, searchMatchToDTO(ctx, m))
	}

	writeSuccess(ctx, w, http.StatusOK, pagedResponse{
		Results: items,
		Total:   result.Total,
	})
}
