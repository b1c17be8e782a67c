package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/panjf2000/ants/v2"

	"github.com/fairwayhq/fairway-finder/internal/config"
	"github.com/fairwayhq/fairway-finder/internal/domain/course"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
	"github.com/fairwayhq/fairway-finder/internal/infrastructure/geocode"
	"github.com/fairwayhq/fairway-finder/internal/infrastructure/repository/postgres"
	"github.com/fairwayhq/fairway-finder/internal/platform/logging"
	"github.com/fairwayhq/fairway-finder/internal/platform/resilience"
)

// The seeder replaces the entire club catalog with the contents of a CSV
// export. Favorites and course data hang off clubs, so a run wipes those
// tables too. Profiles are left alone.
func main() {
	clubsPath := flag.String("clubs", "./data/clubs.csv", "path to the clubs CSV export")
	workers := flag.Int("workers", 8, "concurrent geocoding workers")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	if err := run(*clubsPath, *workers, *timeout); err != nil {
		log.Fatal(err)
	}
}

func run(clubsPath string, workers int, timeout time.Duration) error {
	if workers <= 0 {
		return fmt.Errorf("workers must be > 0")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	file, err := os.Open(clubsPath)
	if err != nil {
		return fmt.Errorf("open clubs csv: %w", err)
	}
	records, err := parseClubsCSV(file)
	_ = file.Close()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("clubs csv %s holds no rows", clubsPath)
	}
	logger.Info("clubs csv parsed", "path", clubsPath, "rows", len(records))

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
		return fmt.Errorf("build geocoder: %w", err)
	}

	if err := locateMissing(ctx, records, geocoder, workers, logger); err != nil {
		return err
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DBURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.ExecContext(ctx, `TRUNCATE tee_boxes, courses, favorites, clubs`); err != nil {
		return fmt.Errorf("truncate club catalog: %w", err)
	}
	logger.Info("club catalog truncated")

	clubRepo := postgres.NewClubRepository(db)
	courseRepo := postgres.NewCourseRepository(db)
	inserted := 0
	for _, record := range records {
		if err := clubRepo.Create(ctx, record.Club); err != nil {
			return fmt.Errorf("insert club %s (csv line %d): %w", record.Club.ID, record.Line, err)
		}
		if err := courseRepo.Create(ctx, defaultCourse(record)); err != nil {
			return fmt.Errorf("insert course for club %s (csv line %d): %w", record.Club.ID, record.Line, err)
		}
		inserted++
	}

	logger.Info("club catalog seeded", "clubs", inserted)
	return nil
}

// defaultCourse is the one playable layout a CSV row describes: the club's
// name, its hole count when it is a valid layout, 18 otherwise.
func defaultCourse(record clubRecord) course.Course {
	holes := record.Club.Holes
	if holes != 9 && holes != 18 {
		holes = 18
	}

	return course.Course{
		ID:     record.Club.ID + "-main",
		ClubID: record.Club.ID,
		Name:   record.Club.Name,
		Holes:  holes,
		HasGPS: record.HasGPS,
	}
}

// locateMissing fills in coordinates for rows the CSV shipped without, fanning
// ZIP lookups out over a bounded worker pool. A ZIP the geocoder cannot
// resolve leaves the club without a location rather than failing the run; such
// clubs exist in the catalog but never match a radius search.
func locateMissing(ctx context.Context, records []clubRecord, geocoder *geocode.Client, workers int, logger *logging.Logger) error {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var located, unresolved, failed atomic.Int32

	var wg sync.WaitGroup
	for i := range records {
		if records[i].Club.Location != nil {
			continue
		}
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			record := &records[i]
			point, resolved, err := geocoder.LocateZip(ctx, record.Club.Zip)
			if err != nil {
				failed.Add(1)
				logger.ErrorContext(ctx, "geocode club failed", "club_id", record.Club.ID, "zip", record.Club.Zip, "error", err)
				return
			}
			if !resolved {
				unresolved.Add(1)
				logger.WarnContext(ctx, "club zip did not resolve", "club_id", record.Club.ID, "zip", record.Club.Zip)
				return
			}

			record.Club.Location = &geo.Point{Lat: point.Lat, Lng: point.Lng}
			located.Add(1)
		}); err != nil {
			wg.Done()
			return fmt.Errorf("submit geocode task: %w", err)
		}
	}
	wg.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("geocoding failed for %d club(s)", n)
	}
	logger.Info("geocoding complete", "located", located.Load(), "unresolved", unresolved.Load())

	return nil
}
