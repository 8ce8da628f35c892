package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/domain"
)

func FallbackWeather() domain.WeatherSnapshot {
	return domain.WeatherSnapshot{
		Temperature: 28,
		Condition:   "Sunny",
		Description: "Clear sky",
		Icon:        "01d",
		Humidity:    65,
		WindSpeed:   5.2,
	}
}

func WeatherOrFallback(w domain.WeatherSnapshot, err error) domain.WeatherSnapshot {
	if err != nil {
		return FallbackWeather()
	}
	return w
}

// FetchWeather asks src for the current weather and substitutes the fallback
// snapshot on any failure.
func FetchWeather(ctx context.Context, src domain.WeatherSource, lat, lon float64) domain.WeatherSnapshot {
	w, err := src.Current(ctx, lat, lon)
	if err != nil {
		noteFallback("weather", err)
	}
	return WeatherOrFallback(w, err)
}

type WeatherService struct {
	src      domain.WeatherSource
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewWeatherService(src domain.WeatherSource, c domain.Cache, ttl time.Duration) *WeatherService {
	return &WeatherService{src: src, cache: c, cacheTTL: ttl}
}

func weatherKey(c domain.Coords) string {
	return fmt.Sprintf("weather:%.4f:%.4f", c.Lat, c.Lon)
}

// Current returns cached weather when available; fallback snapshots are never cached.
func (s *WeatherService) Current(ctx context.Context, c domain.Coords) domain.WeatherSnapshot {
	key := weatherKey(c)
	var w domain.WeatherSnapshot
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &w); ok {
			return w
		}
	}
	w, err := s.Prefetch(ctx, c)
	if err != nil {
		noteFallback("weather", err)
	}
	return WeatherOrFallback(w, err)
}

// Prefetch fetches from upstream and caches the result.
func (s *WeatherService) Prefetch(ctx context.Context, c domain.Coords) (domain.WeatherSnapshot, error) {
	w, err := s.src.Current(ctx, c.Lat, c.Lon)
	if err != nil {
		return domain.WeatherSnapshot{}, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, weatherKey(c), w, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Float64("lat", c.Lat).Float64("lon", c.Lon).Msg("weather cache set failed")
		}
	}
	return w, nil
}

// DistinctCoords lists each hotel location once, in first-seen order.
func DistinctCoords(hotels []domain.Hotel) []domain.Coords {
	seen := make(map[domain.Coords]struct{}, len(hotels))
	var out []domain.Coords
	for _, h := range hotels {
		if _, ok := seen[h.Coords]; ok {
			continue
		}
		seen[h.Coords] = struct{}{}
		out = append(out, h.Coords)
	}
	return out
}
