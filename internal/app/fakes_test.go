package app_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"hotels_api/internal/domain"
)

// ---- in-memory repository fakes ----

type memRepo[T domain.Entity] struct {
	items []T
}

func (m *memRepo[T]) All(ctx context.Context) ([]T, error) {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memRepo[T]) AllWhere(ctx context.Context, pred func(T) bool) ([]T, error) {
	out := make([]T, 0)
	for _, e := range m.items {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepo[T]) ByID(ctx context.Context, id string) (*T, error) {
	for _, e := range m.items {
		if e.EntityID() == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRepo[T]) Create(ctx context.Context, e T) error {
	for _, ex := range m.items {
		if ex.EntityID() == e.EntityID() {
			return domain.ErrDuplicateID
		}
	}
	m.items = append(m.items, e)
	return nil
}

func (m *memRepo[T]) Update(ctx context.Context, id string, e T) (bool, error) {
	for i, ex := range m.items {
		if ex.EntityID() == id {
			m.items[i] = e
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo[T]) Delete(ctx context.Context, id string) (bool, error) {
	for i, ex := range m.items {
		if ex.EntityID() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo[T]) AllInRange(ctx context.Context, f domain.DateRange) ([]T, error) {
	out := make([]T, 0)
	for _, e := range m.items {
		if r, ok := any(e).(domain.HotelRate); ok {
			if !r.TargetDay.Before(f.From) && r.TargetDay.Before(f.To) {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

type memUOW struct {
	hotels *memRepo[domain.Hotel]
	rates  *memRepo[domain.HotelRate]
}

func newMemUOW() *memUOW {
	return &memUOW{hotels: &memRepo[domain.Hotel]{}, rates: &memRepo[domain.HotelRate]{}}
}

func (u *memUOW) Hotels() domain.Repository[domain.Hotel]    { return u.hotels }
func (u *memUOW) Rates() domain.Repository[domain.HotelRate] { return u.rates }

// ---- cache fake (JSON round-trip, mirrors the redis adapter) ----

type memCache struct{ store map[string][]byte }

func newMemCache() *memCache { return &memCache{store: map[string][]byte{}} }

func (c *memCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *memCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// ---- file store fake ----

type tmpFileStore struct{ dir string }

func (s tmpFileStore) Save(name string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, "staged-"+name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return path, nil
}

// ---- helpers ----

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
