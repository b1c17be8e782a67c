package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fairwayhq/fairway-finder/internal/platform/logging"
	"github.com/fairwayhq/fairway-finder/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	searchService         *usecase.SearchService
	recommendationService *usecase.RecommendationService
	profileService        *usecase.ProfileService
	favoriteService       *usecase.FavoriteService
	clubService           *usecase.ClubService
	weatherService        *usecase.WeatherService
	readyCheck            func(ctx context.Context) error
	logger                *logging.Logger
	validator             *validator.Validate
}

func NewHandler(
	searchService *usecase.SearchService,
	recommendationService *usecase.RecommendationService,
	profileService *usecase.ProfileService,
	favoriteService *usecase.FavoriteService,
	clubService *usecase.ClubService,
	weatherService *usecase.WeatherService,
	readyCheck func(ctx context.Context) error,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		searchService:         searchService,
		recommendationService: recommendationService,
		profileService:        profileService,
		favoriteService:       favoriteService,
		clubService:           clubService,
		weatherService:        weatherService,
		readyCheck:            readyCheck,
		logger:                logger,
		validator:             validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	if h.readyCheck != nil {
		if err := h.readyCheck(ctx); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed", "error", err)
			writeError(ctx, w, fmt.Errorf("%w: store is not ready: %s", usecase.ErrDependencyUnavailable, err))
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
