package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotels_api/internal/app"
	"hotels_api/internal/domain"
)

type denyAll struct{}

func (denyAll) CanBook(context.Context, *domain.Hotel, *domain.HotelRate) bool { return false }

func seedHotel(t *testing.T, uow *memUOW, h domain.Hotel) {
	t.Helper()
	if err := uow.hotels.Create(context.Background(), h); err != nil {
		t.Fatalf("seed hotel %s: %v", h.ID, err)
	}
}

func TestListByArrival_MatchesCalendarDateOnly(t *testing.T) {
	uow := newMemUOW()
	d := day(2024, time.January, 1)
	seedHotel(t, uow, domain.Hotel{ID: "1", Rates: []domain.HotelRate{
		{ID: "r1", TargetDay: d},
		{ID: "r2", TargetDay: d.AddDate(0, 0, 1)},
		{ID: "r3", TargetDay: d.AddDate(0, 0, 2)},
	}})
	s := app.NewRateService(uow, newMemCache(), nil)

	// query late in the day still matches the midnight rate
	got, err := s.ListByArrival(context.Background(), "1", d.Add(23*time.Hour))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("expected only r1, got %+v", got)
	}
}

func TestListByArrival_EmptyHotel(t *testing.T) {
	uow := newMemUOW()
	seedHotel(t, uow, domain.Hotel{ID: "1"})
	s := app.NewRateService(uow, newMemCache(), nil)

	got, err := s.ListByArrival(context.Background(), "1", day(2024, time.March, 5))
	if err != nil {
		t.Fatalf("expected empty result, got error %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 rates, got %d", len(got))
	}
}

func TestListByArrival_Errors(t *testing.T) {
	s := app.NewRateService(newMemUOW(), newMemCache(), nil)

	if _, err := s.ListByArrival(context.Background(), "", time.Now()); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("blank id: expected ErrInvalidID, got %v", err)
	}
	if _, err := s.ListByArrival(context.Background(), "99", time.Now()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing hotel: expected ErrNotFound, got %v", err)
	}
}

func TestListByArrivalGlobal_HalfOpenRange(t *testing.T) {
	uow := newMemUOW()
	d := day(2024, time.June, 10)
	for _, r := range []domain.HotelRate{
		{ID: "before", TargetDay: d.AddDate(0, 0, -1)},
		{ID: "on", TargetDay: d.Add(9 * time.Hour)},
		{ID: "after", TargetDay: d.AddDate(0, 0, 1)},
	} {
		if err := uow.rates.Create(context.Background(), r); err != nil {
			t.Fatalf("seed rate: %v", err)
		}
	}
	s := app.NewRateService(uow, newMemCache(), nil)

	got, err := s.ListByArrivalGlobal(context.Background(), d.Add(22*time.Hour))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "on" {
		t.Fatalf("expected only the on-day rate, got %+v", got)
	}
}

func TestGetRate(t *testing.T) {
	uow := newMemUOW()
	seedHotel(t, uow, domain.Hotel{ID: "1", Rates: []domain.HotelRate{{ID: "r1", Name: "flex"}}})
	s := app.NewRateService(uow, newMemCache(), nil)

	got, err := s.Get(context.Background(), "1", "r1")
	if err != nil || got.Name != "flex" {
		t.Fatalf("get: %+v, %v", got, err)
	}
	if _, err := s.Get(context.Background(), "1", "zzz"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing rate: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Get(context.Background(), "99", "r1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing hotel: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Get(context.Background(), "1", " "); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("blank rate id: expected ErrInvalidID, got %v", err)
	}
}

func TestCreateRate(t *testing.T) {
	uow := newMemUOW()
	cache := newMemCache()
	seedHotel(t, uow, domain.Hotel{ID: "1"})
	s := app.NewRateService(uow, cache, nil)

	// prime the cache so we can observe the invalidation
	_ = cache.Set(context.Background(), "hotel:1", domain.Hotel{ID: "1"}, time.Minute)

	created, err := s.Create(context.Background(), "1", domain.HotelRate{
		Name:      "saver",
		Adults:    2,
		Los:       3,
		Price:     domain.Price{Currency: "EUR", NumericFloat: 99.5, NumericInteger: 99},
		TargetDay: day(2024, time.July, 1),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned rate id")
	}

	stored, _ := uow.hotels.ByID(context.Background(), "1")
	if len(stored.Rates) != 1 || stored.Rates[0].ID != created.ID {
		t.Fatalf("rate not persisted on hotel: %+v", stored.Rates)
	}
	if mirrored, _ := uow.rates.ByID(context.Background(), created.ID); mirrored == nil {
		t.Fatal("rate not mirrored into the flat collection")
	}
	if _, ok := cache.store["hotel:1"]; ok {
		t.Fatal("hotel cache entry must be invalidated on rate create")
	}
}

func TestCreateRate_MissingHotel(t *testing.T) {
	uow := newMemUOW()
	s := app.NewRateService(uow, newMemCache(), nil)

	if _, err := s.Create(context.Background(), "99", domain.HotelRate{Name: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(uow.rates.items) != 0 {
		t.Fatal("nothing may be persisted for a missing hotel")
	}
}

func TestCreateRate_PolicyRejects(t *testing.T) {
	uow := newMemUOW()
	seedHotel(t, uow, domain.Hotel{ID: "1"})
	s := app.NewRateService(uow, newMemCache(), denyAll{})

	if _, err := s.Create(context.Background(), "1", domain.HotelRate{Name: "x"}); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	stored, _ := uow.hotels.ByID(context.Background(), "1")
	if len(stored.Rates) != 0 {
		t.Fatal("rejected rate must not be persisted")
	}
}

func TestUpdateRate_AppliesFields(t *testing.T) {
	uow := newMemUOW()
	seedHotel(t, uow, domain.Hotel{ID: "1", Rates: []domain.HotelRate{{ID: "r1", Adults: 2, Name: "old"}}})
	if err := uow.rates.Create(context.Background(), domain.HotelRate{ID: "r1", Adults: 2, Name: "old"}); err != nil {
		t.Fatalf("seed flat rate: %v", err)
	}
	s := app.NewRateService(uow, newMemCache(), nil)

	err := s.Update(context.Background(), "1", "r1", domain.HotelRate{ID: "r1", Adults: 4, Name: "new"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, _ := uow.hotels.ByID(context.Background(), "1")
	if stored.Rates[0].Adults != 4 || stored.Rates[0].Name != "new" {
		t.Fatalf("update did not apply to the embedded rate: %+v", stored.Rates[0])
	}
	mirrored, _ := uow.rates.ByID(context.Background(), "r1")
	if mirrored == nil || mirrored.Adults != 4 {
		t.Fatalf("update did not apply to the flat collection: %+v", mirrored)
	}
}

func TestUpdateRate_IDMismatch(t *testing.T) {
	uow := newMemUOW()
	seedHotel(t, uow, domain.Hotel{ID: "1", Rates: []domain.HotelRate{{ID: "r1", Adults: 2}}})
	s := app.NewRateService(uow, newMemCache(), nil)

	err := s.Update(context.Background(), "1", "r1", domain.HotelRate{ID: "other", Adults: 9})
	if !errors.Is(err, domain.ErrIDMismatch) {
		t.Fatalf("expected ErrIDMismatch, got %v", err)
	}
	stored, _ := uow.hotels.ByID(context.Background(), "1")
	if stored.Rates[0].Adults != 2 {
		t.Fatal("mismatched update must not write")
	}
}

func TestUpdateRate_Missing(t *testing.T) {
	uow := newMemUOW()
	seedHotel(t, uow, domain.Hotel{ID: "1"})
	s := app.NewRateService(uow, newMemCache(), nil)

	if err := s.Update(context.Background(), "1", "r1", domain.HotelRate{ID: "r1"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing rate: expected ErrNotFound, got %v", err)
	}
	if err := s.Update(context.Background(), "9", "r1", domain.HotelRate{ID: "r1"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing hotel: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRate_Twice(t *testing.T) {
	uow := newMemUOW()
	seedHotel(t, uow, domain.Hotel{ID: "1", Rates: []domain.HotelRate{{ID: "r1"}, {ID: "r2"}}})
	if err := uow.rates.Create(context.Background(), domain.HotelRate{ID: "r1"}); err != nil {
		t.Fatalf("seed flat rate: %v", err)
	}
	s := app.NewRateService(uow, newMemCache(), nil)

	if err := s.Delete(context.Background(), "1", "r1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	stored, _ := uow.hotels.ByID(context.Background(), "1")
	if len(stored.Rates) != 1 || stored.Rates[0].ID != "r2" {
		t.Fatalf("expected only r2 left, got %+v", stored.Rates)
	}
	if mirrored, _ := uow.rates.ByID(context.Background(), "r1"); mirrored != nil {
		t.Fatal("flat copy must be removed")
	}
	if err := s.Delete(context.Background(), "1", "r1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
