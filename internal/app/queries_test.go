package app_test

import (
	"context"
	"testing"
	"time"

	"kenyastay/internal/app"
	"kenyastay/internal/domain"
)

// ---- fakes ----

type fakeCatalog struct {
	hotels []domain.Hotel
	calls  int
}

func (f *fakeCatalog) All() []domain.Hotel {
	f.calls++
	out := make([]domain.Hotel, len(f.hotels))
	copy(out, f.hotels)
	return out
}

func (f *fakeCatalog) ByID(id int) (domain.Hotel, error) {
	for _, h := range f.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrHotelNotFound
}

func (f *fakeCatalog) ByLocation(loc string) []domain.Hotel {
	f.calls++
	out := []domain.Hotel{}
	for _, h := range f.hotels {
		if h.Location == loc {
			out = append(out, h)
		}
	}
	return out
}

func (f *fakeCatalog) Locations() []string {
	f.calls++
	out := []string{}
	for _, h := range f.hotels {
		out = append(out, h.Location)
	}
	return out
}

func (f *fakeCatalog) Search(q domain.SearchQuery) []domain.Hotel {
	f.calls++
	out := make([]domain.Hotel, len(f.hotels))
	copy(out, f.hotels)
	return out
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Hotel:
		*d = v.([]domain.Hotel)
	case *[]string:
		*d = v.([]string)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

var testHotels = []domain.Hotel{
	{ID: 1, Name: "Sarova Stanley", Location: "Nairobi", Price: 12000, Type: "Deluxe"},
	{ID: 2, Name: "Diani Reef Beach Resort", Location: "Mombasa", Price: 15000, Type: "Suite"},
}

// ---- tests ----

func TestHotels_CacheMissThenHit(t *testing.T) {
	cat := &fakeCatalog{hotels: testHotels}
	q := app.NewCatalogService(cat, &fakeCache{}, 10*time.Minute)

	// miss populates the cache
	got := q.Hotels(context.Background())
	if len(got) != 2 || got[0].Name != "Sarova Stanley" {
		t.Fatalf("unexpected hotels: %+v", got)
	}
	if cat.calls != 1 {
		t.Fatalf("expected one catalog read, got %d", cat.calls)
	}

	// hit must not touch the catalog again
	got2 := q.Hotels(context.Background())
	if len(got2) != 2 {
		t.Fatalf("unexpected cached hotels: %+v", got2)
	}
	if cat.calls != 1 {
		t.Fatalf("expected cache hit, catalog read %d times", cat.calls)
	}
}

func TestHotels_CachedValueNotAliased(t *testing.T) {
	cat := &fakeCatalog{hotels: testHotels}
	q := app.NewCatalogService(cat, &fakeCache{}, 10*time.Minute)

	first := q.Hotels(context.Background())
	first[0].Name = "mutated"

	second := q.Hotels(context.Background())
	if second[0].Name != "Sarova Stanley" {
		t.Fatalf("cached value was aliased by the caller: %+v", second[0])
	}
}

func TestHotelsByLocation_KeyPerLocation(t *testing.T) {
	cat := &fakeCatalog{hotels: testHotels}
	q := app.NewCatalogService(cat, &fakeCache{}, 10*time.Minute)

	nairobi := q.HotelsByLocation(context.Background(), "Nairobi")
	if len(nairobi) != 1 || nairobi[0].ID != 1 {
		t.Fatalf("unexpected: %+v", nairobi)
	}
	mombasa := q.HotelsByLocation(context.Background(), "Mombasa")
	if len(mombasa) != 1 || mombasa[0].ID != 2 {
		t.Fatalf("unexpected: %+v", mombasa)
	}
	if cat.calls != 2 {
		t.Fatalf("locations must cache under distinct keys, calls=%d", cat.calls)
	}
}

func TestLocations_Cached(t *testing.T) {
	cat := &fakeCatalog{hotels: testHotels}
	q := app.NewCatalogService(cat, &fakeCache{}, 10*time.Minute)

	if got := q.Locations(context.Background()); len(got) != 2 {
		t.Fatalf("unexpected locations: %v", got)
	}
	q.Locations(context.Background())
	if cat.calls != 1 {
		t.Fatalf("expected cached locations, calls=%d", cat.calls)
	}
}

func TestSearch_DistinctKeysPerQuery(t *testing.T) {
	cat := &fakeCatalog{hotels: testHotels}
	q := app.NewCatalogService(cat, &fakeCache{}, 10*time.Minute)

	min := 10000
	q.Search(context.Background(), domain.SearchQuery{Location: "nai"})
	q.Search(context.Background(), domain.SearchQuery{Location: "nai", MinPrice: &min})
	q.Search(context.Background(), domain.SearchQuery{Location: "nai"})

	if cat.calls != 2 {
		t.Fatalf("expected 2 catalog reads (2 distinct queries), got %d", cat.calls)
	}
}
