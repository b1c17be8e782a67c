package usecase

import (
	"context"

	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
	"github.com/fairwayhq/fairway-finder/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// DayForecast is one day of playing conditions at a club location.
type DayForecast struct {
	Date            string
	HighTempF       float64
	LowTempF        float64
	PrecipChancePct int
	WindSpeedMph    float64
}

// Forecaster returns a short daily forecast for a coordinate.
type Forecaster interface {
	DailyForecast(ctx context.Context, point geo.Point, days int) ([]DayForecast, error)
}

const (
	forecastDays           = 3
	forecastMaxConcurrency = 4
)

// WeatherService decorates search hits with playing conditions. Forecast
// failures are isolated per club; a hit without a forecast is still a hit.
type WeatherService struct {
	forecaster Forecaster
	logger     *logging.Logger
}

func NewWeatherService(forecaster Forecaster, logger *logging.Logger) *WeatherService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WeatherService{
		forecaster: forecaster,
		logger:     logger,
	}
}

// Enrich fills the Forecast field of each match in place.
func (s *WeatherService) Enrich(ctx context.Context, matches []ClubMatch) {
	if s == nil || s.forecaster == nil || len(matches) == 0 {
		return
	}

	ctx, span := startUsecaseSpan(ctx, "WeatherService.Enrich")
	defer span.End()

	p := pool.New().WithMaxGoroutines(forecastMaxConcurrency)
	for i := range matches {
		i := i
		p.Go(func() {
			m := &matches[i]
			if m.Club.Location == nil {
				return
			}
			forecast, err := s.forecaster.DailyForecast(ctx, *m.Club.Location, forecastDays)
			if err != nil {
				s.logger.WarnContext(ctx, "forecast lookup failed", "club_id", m.Club.ID, "error", err)
				return
			}
			m.Forecast = forecast
		})
	}
	p.Wait()
}
