package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/usecase"
)

// ToggleFavorite serves POST /api/favorites/{clubID}/toggle. Toggling twice
// restores the original state.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleFavorite")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	favorited, err := h.favoriteService.Toggle(ctx, principal.UserID, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle favorite failed", "user_id", principal.UserID, "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, favoriteToggleDTO{
		ClubID:    clubID,
		Favorited: favorited,
	})
}

// ListFavorites serves GET /api/favorites, oldest favorite first.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFavorites")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	clubs, err := h.favoriteService.List(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list favorites failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, c := range clubs {
		items = append(items, clubToDTO(ctx, c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
