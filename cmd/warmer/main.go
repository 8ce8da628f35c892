// Command warmer loads the catalog into the cache and prefetches weather for
// every distinct hotel location.
package main

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_booking/internal/adapters/catalog"
	"hotel_booking/internal/adapters/observability"
	redisad "hotel_booking/internal/adapters/redis"
	"hotel_booking/internal/adapters/weather"
	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
	"hotel_booking/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("catalog", cfg.CatalogBase).
		Int("workers", cfg.WarmWorkers).
		Msg("warmer starting")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}

	catalogSvc := app.NewCatalogService(catalog.New(cfg.CatalogBase, cfg.UpstreamTimeout, cfg.UpstreamRPS), cache, cfg.CacheTTL)
	weatherSvc := app.NewWeatherService(weather.New(cfg.WeatherBase, cfg.WeatherKey, cfg.UpstreamTimeout, cfg.UpstreamRPS), cache, cfg.WeatherTTL)

	hotels, err := catalogSvc.Refresh(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("kind", domain.KindOf(err).String()).Msg("catalog refresh failed")
	}
	log.Info().Int("hotels", len(hotels)).Msg("catalog cached")

	coords := app.DistinctCoords(hotels)
	sem := semaphore.NewWeighted(int64(cfg.WarmWorkers))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for _, c := range coords {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(c domain.Coords) {
			defer wg.Done()
			defer sem.Release(1)

			if _, err := weatherSvc.Prefetch(ctx, c); err != nil {
				failed.Add(1)
				log.Warn().Float64("lat", c.Lat).Float64("lon", c.Lon).Err(err).Msg("weather prefetch failed")
				return
			}
			log.Info().Float64("lat", c.Lat).Float64("lon", c.Lon).Msg("weather cached")
		}(c)
	}

	wg.Wait()
	log.Info().Int("locations", len(coords)).Int32("failed", failed.Load()).Msg("warm completed")
}
