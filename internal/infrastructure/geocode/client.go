package geocode

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
	basecache "github.com/fairwayhq/fairway-finder/internal/platform/cache"
	"github.com/fairwayhq/fairway-finder/internal/platform/logging"
	"github.com/fairwayhq/fairway-finder/internal/platform/resilience"
)

var errGeocodeTransient = crerr.New("geocode transient failure")

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	Retries        int
	CacheTTL       time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client resolves US ZIP codes against a zippopotam-compatible endpoint
// (GET {base}/us/{zip}). Resolved points are cached; an unknown ZIP is a
// negative answer, not an error, and is cached too.
type Client struct {
	client         *http.Client
	baseURL        string
	retries        int
	cache          *basecache.Store
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig, logger *logging.Logger) (*Client, error) {
	baseURL, err := validateHTTPBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid geocoder base URL")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
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
		cache:          basecache.NewStore(cacheTTL),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}, nil
}

type zipResponse struct {
	Places []zipPlace `json:"places"`
}

type zipPlace struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type cachedZip struct {
	point    geo.Point
	resolved bool
}

// LocateZip returns the centroid of a US ZIP code. The second return value
// reports whether the ZIP resolved at all.
func (c *Client) LocateZip(ctx context.Context, zip string) (geo.Point, bool, error) {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return geo.Point{}, false, crerr.New("zip is required")
	}

	v, err := c.cache.GetOrLoad(ctx, "zip:"+zip, func(ctx context.Context) (any, error) {
		point, resolved, err := c.lookup(ctx, zip)
		if err != nil {
			return nil, err
		}
		return cachedZip{point: point, resolved: resolved}, nil
	})
	if err != nil {
		return geo.Point{}, false, err
	}

	cached, _ := v.(cachedZip)
	return cached.point, cached.resolved, nil
}

func (c *Client) lookup(ctx context.Context, zip string) (geo.Point, bool, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "geocoder circuit breaker rejected request", "state", c.breaker.State())
			return geo.Point{}, false, fmt.Errorf("geocoder is temporarily unavailable: %w", err)
		}
	}

	point, resolved, err := c.fetchWithRetry(ctx, zip)
	c.recordCircuitResult(err)
	if err != nil {
		return geo.Point{}, false, err
	}

	return point, resolved, nil
}

func (c *Client) fetchWithRetry(ctx context.Context, zip string) (geo.Point, bool, error) {
	attempts := c.retries + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return geo.Point{}, false, crerr.Wrap(ctx.Err(), "geocode lookup canceled")
			case <-time.After(retryBackoff(attempt)):
			}
		}

		point, resolved, err := c.fetchOnce(ctx, zip)
		if err == nil {
			return point, resolved, nil
		}
		lastErr = err
		if !stderrors.Is(err, errGeocodeTransient) {
			return geo.Point{}, false, err
		}
		c.logger.WarnContext(ctx, "geocode lookup retrying", "zip", zip, "attempt", attempt+1, "error", err)
	}

	return geo.Point{}, false, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, zip string) (geo.Point, bool, error) {
	lookupURL := c.baseURL + "/us/" + zip

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return geo.Point{}, false, crerr.Wrap(err, "create geocode request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return geo.Point{}, false, fmt.Errorf("%w: lookup zip=%s: %v", errGeocodeTransient, zip, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return geo.Point{}, false, nil
	}
	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if isRetryableStatus(resp.StatusCode) {
			return geo.Point{}, false, fmt.Errorf("%w: lookup zip=%s status=%d body=%s", errGeocodeTransient, zip, resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return geo.Point{}, false, fmt.Errorf("geocode lookup zip=%s status=%d body=%s", zip, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return geo.Point{}, false, fmt.Errorf("%w: read geocode response zip=%s: %v", errGeocodeTransient, zip, err)
	}

	var decoded zipResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return geo.Point{}, false, crerr.Wrapf(err, "unmarshal geocode response zip=%s", zip)
	}
	if len(decoded.Places) == 0 {
		return geo.Point{}, false, nil
	}

	place := decoded.Places[0]
	lat, err := strconv.ParseFloat(strings.TrimSpace(place.Latitude), 64)
	if err != nil {
		return geo.Point{}, false, crerr.Wrapf(err, "parse latitude %q zip=%s", place.Latitude, zip)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(place.Longitude), 64)
	if err != nil {
		return geo.Point{}, false, crerr.Wrapf(err, "parse longitude %q zip=%s", place.Longitude, zip)
	}

	point := geo.Point{Lat: lat, Lng: lng}
	if err := point.Validate(); err != nil {
		return geo.Point{}, false, crerr.Wrapf(err, "geocode response out of range zip=%s", zip)
	}

	return point, true, nil
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errGeocodeTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func retryBackoff(attempt int) time.Duration {
	backoff := time.Duration(attempt) * 200 * time.Millisecond
	if backoff > 2*time.Second {
		backoff = 2 * time.Second
	}
	return backoff
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
