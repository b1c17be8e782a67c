package weather

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
	"github.com/fairwayhq/fairway-finder/internal/platform/logging"
	"github.com/fairwayhq/fairway-finder/internal/platform/resilience"
	"github.com/fairwayhq/fairway-finder/internal/usecase"
)

var errWeatherTransient = crerr.New("weather transient failure")

const maxForecastDays = 7

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	Retries        int
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches daily forecasts from an open-meteo compatible endpoint.
type Client struct {
	client         *http.Client
	baseURL        string
	retries        int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig, logger *logging.Logger) (*Client, error) {
	baseURL, err := validateHTTPBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid weather base URL")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:        baseURL,
		retries:        cfg.Retries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}, nil
}

type forecastResponse struct {
	Daily forecastDaily `json:"daily"`
}

type forecastDaily struct {
	Time                        []string  `json:"time"`
	TemperatureMax              []float64 `json:"temperature_2m_max"`
	TemperatureMin              []float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
	WindSpeedMax                []float64 `json:"wind_speed_10m_max"`
}

func (c *Client) DailyForecast(ctx context.Context, point geo.Point, days int) ([]usecase.DayForecast, error) {
	if err := point.Validate(); err != nil {
		return nil, crerr.Wrap(err, "invalid forecast location")
	}
	if days < 1 {
		days = 1
	}
	if days > maxForecastDays {
		days = maxForecastDays
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "weather circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("weather is temporarily unavailable: %w", err)
		}
	}

	forecast, err := c.fetchWithRetry(ctx, point, days)
	c.recordCircuitResult(err)
	if err != nil {
		return nil, err
	}

	return forecast, nil
}

func (c *Client) fetchWithRetry(ctx context.Context, point geo.Point, days int) ([]usecase.DayForecast, error) {
	attempts := c.retries + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, crerr.Wrap(ctx.Err(), "forecast fetch canceled")
			case <-time.After(retryBackoff(attempt)):
			}
		}

		forecast, err := c.fetch(ctx, point, days)
		if err == nil {
			return forecast, nil
		}
		lastErr = err
		if !stderrors.Is(err, errWeatherTransient) {
			return nil, err
		}
		c.logger.WarnContext(ctx, "forecast fetch retrying", "attempt", attempt+1, "error", err)
	}

	return nil, lastErr
}

func retryBackoff(attempt int) time.Duration {
	backoff := time.Duration(attempt) * 200 * time.Millisecond
	if backoff > 2*time.Second {
		backoff = 2 * time.Second
	}

	return backoff
}

func (c *Client) fetch(ctx context.Context, point geo.Point, days int) ([]usecase.DayForecast, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(point.Lat, 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(point.Lng, 'f', 4, 64))
	query.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max,wind_speed_10m_max")
	query.Set("temperature_unit", "fahrenheit")
	query.Set("wind_speed_unit", "mph")
	query.Set("forecast_days", strconv.Itoa(days))
	query.Set("timezone", "auto")
	forecastURL := c.baseURL + "/v1/forecast?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, forecastURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "create forecast request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch forecast: %v", errWeatherTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if isRetryableStatus(resp.StatusCode) {
			return nil, fmt.Errorf("%w: fetch forecast status=%d body=%s", errWeatherTransient, resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return nil, fmt.Errorf("fetch forecast status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read forecast response: %v", errWeatherTransient, err)
	}

	var decoded forecastResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return nil, crerr.Wrap(err, "unmarshal forecast response")
	}

	daily := decoded.Daily
	out := make([]usecase.DayForecast, 0, len(daily.Time))
	for i, date := range daily.Time {
		day := usecase.DayForecast{Date: date}
		if i < len(daily.TemperatureMax) {
			day.HighTempF = daily.TemperatureMax[i]
		}
		if i < len(daily.TemperatureMin) {
			day.LowTempF = daily.TemperatureMin[i]
		}
		if i < len(daily.PrecipitationProbabilityMax) {
			day.PrecipChancePct = daily.PrecipitationProbabilityMax[i]
		}
		if i < len(daily.WindSpeedMax) {
			day.WindSpeedMph = daily.WindSpeedMax[i]
		}
		out = append(out, day)
	}

	return out, nil
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errWeatherTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
