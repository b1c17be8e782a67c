package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/fairwayhq/fairway-finder/internal/usecase"
)

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	c, err := h.clubService.GetClub(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "get club failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(ctx, c))
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClub")
	defer span.End()

	var req clubPayloadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.clubService.CreateClub(ctx, clubFromPayload(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create club failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(ctx, created))
}

func (h *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClub")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))

	var req clubPayloadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if strings.TrimSpace(req.ID) == "" {
		req.ID = clubID
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if strings.TrimSpace(req.ID) != clubID {
		writeError(ctx, w, fmt.Errorf("%w: club id mismatch between path and payload", usecase.ErrInvalidInput))
		return
	}

	updated, err := h.clubService.UpdateClub(ctx, clubFromPayload(req))
	if err != nil {
		h.logger.WarnContext(ctx, "update club failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(ctx, updated))
}

func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClub")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	if err := h.clubService.DeleteClub(ctx, clubID); err != nil {
		h.logger.WarnContext(ctx, "delete club failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": clubID, "status": "deleted"})
}

// ListClubCourses serves GET /api/clubs/{clubID}/courses with tee boxes
// inlined per course.
func (h *Handler) ListClubCourses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubCourses")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	details, err := h.clubService.ListCourses(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "list courses failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]courseDTO, 0, len(details))
	for _, d := range details {
		items = append(items, courseDetailToDTO(ctx, d))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
