package memory

import (
	"strings"

	"kenyastay/internal/domain"
)

// Catalog holds the seeded hotel table. The table is never mutated after New,
// so it is safe for unlimited concurrent readers.
type Catalog struct {
	hotels []domain.Hotel
}

func New() *Catalog {
	return &Catalog{hotels: seedHotels()}
}

// All returns the full table in seed order.
func (c *Catalog) All() []domain.Hotel {
	out := make([]domain.Hotel, len(c.hotels))
	copy(out, c.hotels)
	return out
}

func (c *Catalog) ByID(id int) (domain.Hotel, error) {
	for _, h := range c.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrHotelNotFound
}

// ByLocation matches the location exactly, case-insensitively.
func (c *Catalog) ByLocation(location string) []domain.Hotel {
	out := []domain.Hotel{}
	for _, h := range c.hotels {
		if strings.EqualFold(h.Location, location) {
			out = append(out, h)
		}
	}
	return out
}

// Locations returns distinct locations in first-occurrence order.
func (c *Catalog) Locations() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, h := range c.hotels {
		if !seen[h.Location] {
			seen[h.Location] = true
			out = append(out, h.Location)
		}
	}
	return out
}

// Search applies the supplied criteria ANDed together, preserving table order.
func (c *Catalog) Search(q domain.SearchQuery) []domain.Hotel {
	loc := strings.ToLower(q.Location)
	typ := strings.ToLower(q.Type)

	out := []domain.Hotel{}
	for _, h := range c.hotels {
		if loc != "" && !strings.Contains(strings.ToLower(h.Location), loc) {
			continue
		}
		if q.MinPrice != nil && h.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && h.Price > *q.MaxPrice {
			continue
		}
		if typ != "" && !strings.Contains(strings.ToLower(h.Type), typ) {
			continue
		}
		out = append(out, h)
	}
	return out
}
