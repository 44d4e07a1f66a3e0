package domain

import (
	"context"
	"errors"
)

var ErrHotelNotFound = errors.New("hotel not found")

// Catalog is the read-only hotel table. It is immutable after construction,
// so reads never fail and need no context.
type Catalog interface {
	All() []Hotel
	ByID(id int) (Hotel, error)
	ByLocation(location string) []Hotel
	Locations() []string
	Search(q SearchQuery) []Hotel
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ConfirmationSender delivers booking confirmations best-effort. SendConfirmation
// reports whether delivery happened; it never panics across the boundary and
// any internal failure comes back as false.
type ConfirmationSender interface {
	Enabled() bool
	SendConfirmation(ctx context.Context, d ConfirmationDetails) bool
}
