package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/domain"
)

const catalogCacheKey = "catalog:hotels"

type CatalogService struct {
	src      domain.CatalogSource
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalogService(src domain.CatalogSource, c domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{src: src, cache: c, cacheTTL: ttl}
}

// Recommended never fails: upstream errors degrade to FallbackHotels, which is
// not cached so the next call retries upstream.
func (s *CatalogService) Recommended(ctx context.Context) []domain.Hotel {
	var hs []domain.Hotel
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, catalogCacheKey, &hs); ok && len(hs) > 0 {
			return hs
		}
	}

	hs, err := s.Refresh(ctx)
	if err != nil {
		noteFallback("catalog", err)
	}
	return HotelsOrFallback(hs, err)
}

// Refresh loads the catalog from upstream and stores it in the cache. Unlike
// Recommended it reports failures.
func (s *CatalogService) Refresh(ctx context.Context) ([]domain.Hotel, error) {
	hs, err := LoadHotels(ctx, s.src)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && len(hs) > 0 {
		if err := s.cache.Set(ctx, catalogCacheKey, hs, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Msg("catalog cache set failed")
		}
	}
	return hs, nil
}

func (s *CatalogService) Explore(ctx context.Context, query string, key domain.SortKey) []domain.Hotel {
	return FilterAndSort(s.Recommended(ctx), query, key)
}

// Deals is the recommended listing as-is.
func (s *CatalogService) Deals(ctx context.Context) []domain.Hotel {
	return s.Recommended(ctx)
}

func (s *CatalogService) Hotel(ctx context.Context, id string) (domain.Hotel, error) {
	for _, h := range s.Recommended(ctx) {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrNotFound
}
