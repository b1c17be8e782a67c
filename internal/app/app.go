package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fairwayhq/fairway-finder/internal/config"
	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/course"
	"github.com/fairwayhq/fairway-finder/internal/domain/favorite"
	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
	"github.com/fairwayhq/fairway-finder/internal/infrastructure/account/fairwayid"
	"github.com/fairwayhq/fairway-finder/internal/infrastructure/geocode"
	"github.com/fairwayhq/fairway-finder/internal/infrastructure/repository/cache"
	"github.com/fairwayhq/fairway-finder/internal/infrastructure/repository/memory"
	"github.com/fairwayhq/fairway-finder/internal/infrastructure/repository/postgres"
	"github.com/fairwayhq/fairway-finder/internal/infrastructure/weather"
	"github.com/fairwayhq/fairway-finder/internal/interfaces/httpapi"
	basecache "github.com/fairwayhq/fairway-finder/internal/platform/cache"
	idgen "github.com/fairwayhq/fairway-finder/internal/platform/id"
	"github.com/fairwayhq/fairway-finder/internal/platform/logging"
	"github.com/fairwayhq/fairway-finder/internal/platform/resilience"
	"github.com/fairwayhq/fairway-finder/internal/usecase"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// App holds the wired HTTP server and the resources it owns.
type App struct {
	Server *http.Server

	db *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		clubRepo     club.Repository
		courseRepo   course.Repository
		favoriteRepo favorite.Repository
		profileRepo  profile.Repository
		db           *sqlx.DB
		readyCheck   func(ctx context.Context) error
	)

	switch cfg.StorageMode {
	case config.StorageModeMemory:
		clubs := memory.NewClubRepository(memory.SeedClubs())
		clubRepo = clubs
		courseRepo = memory.NewCourseRepository(memory.SeedCourses(), memory.SeedTeeBoxes())
		favoriteRepo = memory.NewFavoriteRepository(clubs)
		profileRepo = memory.NewProfileRepository()
		logger.Info("storage wired", "mode", cfg.StorageMode)
	default:
		var err error
		db, err = openDB(cfg)
		if err != nil {
			return nil, err
		}
		clubRepo = postgres.NewClubRepository(db)
		courseRepo = postgres.NewCourseRepository(db)
		favoriteRepo = postgres.NewFavoriteRepository(db)
		profileRepo = postgres.NewProfileRepository(db)
		readyCheck = db.PingContext
		logger.Info("storage wired", "mode", cfg.StorageMode, "database", dbNameFromURL(cfg.DBURL))

		if cfg.DBBootstrapSeed {
			seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := postgres.BootstrapSeed(seedCtx, db)
			cancel()
			if err != nil {
				closeDB(db)
				return nil, fmt.Errorf("bootstrap seed: %w", err)
			}
			logger.Info("bootstrap seed applied")
		}
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		clubRepo = cache.NewClubRepository(clubRepo, store)
		courseRepo = cache.NewCourseRepository(courseRepo, store)
	}

	geocoder, err := geocode.NewClient(geocode.ClientConfig{
		BaseURL:  cfg.GeocoderBaseURL,
		Timeout:  cfg.GeocoderTimeout,
		Retries:  cfg.GeocoderRetries,
		CacheTTL: cfg.GeocoderCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.GeocoderCircuitEnabled,
			FailureThreshold: cfg.GeocoderCircuitFailureCount,
			OpenTimeout:      cfg.GeocoderCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GeocoderCircuitHalfOpenMaxReq,
		},
	}, logger)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("build geocoder: %w", err)
	}

	var forecaster usecase.Forecaster
	if cfg.WeatherEnabled {
		weatherClient, err := weather.NewClient(weather.ClientConfig{
			BaseURL: cfg.WeatherBaseURL,
			Timeout: cfg.WeatherTimeout,
			Retries: cfg.WeatherRetries,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.WeatherCircuitEnabled,
				FailureThreshold: cfg.WeatherCircuitFailureCount,
				OpenTimeout:      cfg.WeatherCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.WeatherCircuitHalfOpenMaxReq,
			},
		}, logger)
		if err != nil {
			closeDB(db)
			return nil, fmt.Errorf("build weather client: %w", err)
		}
		forecaster = weatherClient
	}

	generator := idgen.NewRandomGenerator()

	searchService := usecase.NewSearchService(clubRepo, geocoder)
	profileService := usecase.NewProfileService(profileRepo, generator)
	recommendationService := usecase.NewRecommendationService(searchService, profileService)
	favoriteService := usecase.NewFavoriteService(favoriteRepo, clubRepo, profileService)
	clubService := usecase.NewClubService(clubRepo, courseRepo, generator)
	weatherService := usecase.NewWeatherService(forecaster, logger)

	verifier := fairwayid.NewClient(nil, fairwayid.ClientConfig{
		BaseURL:         cfg.FairwayIDBaseURL,
		IntrospectPath:  cfg.FairwayIDIntrospectPath,
		AdminKey:        cfg.FairwayIDAdminKey,
		Timeout:         cfg.FairwayIDTimeout,
		CacheTTL:        cfg.FairwayIDCacheTTL,
		CacheMaxEntries: cfg.FairwayIDCacheMaxEntries,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FairwayIDCircuitEnabled,
			FailureThreshold: cfg.FairwayIDCircuitFailureCount,
			OpenTimeout:      cfg.FairwayIDCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FairwayIDCircuitHalfOpenMaxReq,
		},
	}, logger)

	handler := httpapi.NewHandler(
		searchService,
		recommendationService,
		profileService,
		favoriteService,
		clubService,
		weatherService,
		readyCheck,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		closeDB(db)
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db}, nil
}

// Close releases resources owned by the app. The HTTP server is shut down by
// the caller.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}

	return nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func closeDB(db *sqlx.DB) {
	if db != nil {
		_ = db.Close()
	}
}
