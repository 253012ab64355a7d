package domain

import (
	"context"
	"io"
	"time"
)

// Entity is the closed set of persisted root types. Both collections key
// their documents by the string id.
type Entity interface {
	EntityID() string
}

// DateRange is a store-native half-open filter [From, To) on a date field.
// Implementations translate it to their own query language so range scans
// run at the database layer.
type DateRange struct {
	Field    string
	From, To time.Time
}

// Repository is generic CRUD over a single document collection.
type Repository[T Entity] interface {
	// All returns every document in store order.
	All(ctx context.Context) ([]T, error)
	// AllWhere returns the documents matching a client-side predicate.
	AllWhere(ctx context.Context, pred func(T) bool) ([]T, error)
	// ByID returns (nil, nil) when no document matches; absence is not an
	// error, callers probe before mutating.
	ByID(ctx context.Context, id string) (*T, error)
	// Create inserts; ErrDuplicateID when the id is already taken.
	Create(ctx context.Context, e T) error
	// Update replaces the full document; reports whether a match existed.
	Update(ctx context.Context, id string, e T) (bool, error)
	// Delete reports whether a match existed.
	Delete(ctx context.Context, id string) (bool, error)
	// AllInRange evaluates a DateRange filter at the store layer.
	AllInRange(ctx context.Context, f DateRange) ([]T, error)
}

// UnitOfWork bundles the two repositories behind one access point.
type UnitOfWork interface {
	Hotels() Repository[Hotel]
	Rates() Repository[HotelRate]
}

// Tables is the type-keyed repository lookup. The entity set is closed, so
// anything outside {Hotel, HotelRate} fails with ErrInvalidTable.
func Tables[T Entity](u UnitOfWork) (Repository[T], error) {
	var zero T
	switch any(zero).(type) {
	case Hotel:
		return any(u.Hotels()).(Repository[T]), nil
	case HotelRate:
		return any(u.Rates()).(Repository[T]), nil
	default:
		return nil, ErrInvalidTable
	}
}

// Cache is a read-through cache for hotel lookups.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// FileStore stages uploaded payloads and returns the stored path.
type FileStore interface {
	Save(name string, r io.Reader) (string, error)
}

// BookingPolicy decides whether a rate may be added to a hotel.
type BookingPolicy interface {
	CanBook(ctx context.Context, hotel *Hotel, rate *HotelRate) bool
}
