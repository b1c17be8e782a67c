package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
	"github.com/fairwayhq/fairway-finder/internal/usecase"
)

// GetCurrentProfile serves GET /api/profiles/current. A first-time caller
// gets an empty profile created on the spot.
func (h *Handler) GetCurrentProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	p, err := h.profileService.GetOrCreate(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(ctx, p))
}

// UpdateCurrentProfile serves PUT /api/profiles/current.
func (h *Handler) UpdateCurrentProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCurrentProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req updateProfileRequest
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

	updated, err := h.profileService.Update(ctx, principal.UserID, usecase.UpdateProfileInput{
		Email:               req.Email,
		SkillLevel:          profile.SkillLevel(req.SkillLevel),
		PlayFrequency:       profile.PlayFrequency(req.PlayFrequency),
		PreferredPriceRange: req.PreferredPriceRange,
		PreferredDifficulty: req.PreferredDifficulty,
		DesiredAmenities:    req.DesiredAmenities,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(ctx, updated))
}
