package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kenyastay/internal/domain"
)

// CatalogService serves catalog reads through a cache-aside layer. The
// catalog itself cannot fail, so cache errors degrade to a direct read.
type CatalogService struct {
	catalog  domain.Catalog
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalogService(c domain.Catalog, cache domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{catalog: c, cache: cache, cacheTTL: ttl}
}

func (s *CatalogService) Hotels(ctx context.Context) []domain.Hotel {
	return s.cached(ctx, "hotels:all", func() []domain.Hotel { return s.catalog.All() })
}

func (s *CatalogService) HotelsByLocation(ctx context.Context, location string) []domain.Hotel {
	key := "hotels:loc:" + strings.ToLower(location)
	return s.cached(ctx, key, func() []domain.Hotel { return s.catalog.ByLocation(location) })
}

func (s *CatalogService) Locations(ctx context.Context) []string {
	key := "hotels:locations"
	var out []string
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out
	}
	out = s.catalog.Locations()
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out
}

func (s *CatalogService) Search(ctx context.Context, q domain.SearchQuery) []domain.Hotel {
	return s.cached(ctx, searchKey(q), func() []domain.Hotel { return s.catalog.Search(q) })
}

func (s *CatalogService) cached(ctx context.Context, key string, load func() []domain.Hotel) []domain.Hotel {
	var out []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out
	}
	out = load()

	// copy before caching so callers can't mutate the cached value
	cp := make([]domain.Hotel, len(out))
	copy(cp, out)
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return out
}

func searchKey(q domain.SearchQuery) string {
	bound := func(p *int) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *p)
	}
	return fmt.Sprintf("hotels:search:%s|%s|%s|%s",
		strings.ToLower(q.Location), bound(q.MinPrice), bound(q.MaxPrice), strings.ToLower(q.Type))
}
