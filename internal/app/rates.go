package app

import (
	"context"
	"strings"
	"time"

	"hotels_api/internal/domain"
)

// alwaysBookable is the default booking policy. The availability check is a
// hook for a future inventory service; today every rate is accepted.
type alwaysBookable struct{}

func (alwaysBookable) CanBook(context.Context, *domain.Hotel, *domain.HotelRate) bool { return true }

type RateService struct {
	uow    domain.UnitOfWork
	cache  domain.Cache
	policy domain.BookingPolicy
}

func NewRateService(uow domain.UnitOfWork, cache domain.Cache, policy domain.BookingPolicy) *RateService {
	if policy == nil {
		policy = alwaysBookable{}
	}
	return &RateService{uow: uow, cache: cache, policy: policy}
}

// ListByArrival returns the hotel's embedded rates for one arrival date.
// Matching is by calendar date; the time-of-day component on either side is
// ignored. A hotel with no matching rates yields an empty slice, not an error.
func (s *RateService) ListByArrival(ctx context.Context, hotelID string, arrival time.Time) ([]domain.HotelRate, error) {
	hotel, err := s.hotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.HotelRate, 0)
	for _, r := range hotel.Rates {
		if domain.SameDay(r.TargetDay, arrival) {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListByArrivalGlobal queries the flat rate collection across all hotels.
// The date-equality check is expressed as a half-open range so it runs at
// the store layer.
func (s *RateService) ListByArrivalGlobal(ctx context.Context, arrival time.Time) ([]domain.HotelRate, error) {
	start := domain.StartOfDay(arrival)
	return s.uow.Rates().AllInRange(ctx, domain.DateRange{
		Field: "targetDay",
		From:  start,
		To:    start.AddDate(0, 0, 1),
	})
}

func (s *RateService) Get(ctx context.Context, hotelID, rateID string) (*domain.HotelRate, error) {
	if strings.TrimSpace(rateID) == "" {
		return nil, domain.ErrInvalidID
	}
	hotel, err := s.hotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	rate := hotel.Rate(rateID)
	if rate == nil {
		return nil, domain.ErrNotFound
	}
	return rate, nil
}

// Create appends a rate to the hotel's embedded collection and re-persists
// the whole hotel document. The created rate is returned by its assigned id.
func (s *RateService) Create(ctx context.Context, hotelID string, rate domain.HotelRate) (*domain.HotelRate, error) {
	hotel, err := s.hotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanBook(ctx, hotel, &rate) {
		return nil, domain.ErrUnavailable
	}
	if rate.ID == "" {
		rate.ID = newID()
	}
	hotel.Rates = append(hotel.Rates, rate)
	if err := s.persist(ctx, hotel); err != nil {
		return nil, err
	}
	if err := mirrorUpsert(ctx, s.uow, rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// Update replaces the matched rate inside the embedded collection before the
// hotel document is re-persisted.
func (s *RateService) Update(ctx context.Context, hotelID, rateID string, rate domain.HotelRate) error {
	if strings.TrimSpace(rateID) == "" {
		return domain.ErrInvalidID
	}
	if rate.ID != rateID {
		return domain.ErrIDMismatch
	}
	hotel, err := s.hotel(ctx, hotelID)
	if err != nil {
		return err
	}
	existing := hotel.Rate(rateID)
	if existing == nil {
		return domain.ErrNotFound
	}
	*existing = rate
	if err := s.persist(ctx, hotel); err != nil {
		return err
	}
	return mirrorUpsert(ctx, s.uow, rate)
}

func (s *RateService) Delete(ctx context.Context, hotelID, rateID string) error {
	if strings.TrimSpace(rateID) == "" {
		return domain.ErrInvalidID
	}
	hotel, err := s.hotel(ctx, hotelID)
	if err != nil {
		return err
	}
	kept := hotel.Rates[:0]
	found := false
	for _, r := range hotel.Rates {
		if r.ID == rateID {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return domain.ErrNotFound
	}
	hotel.Rates = kept
	if err := s.persist(ctx, hotel); err != nil {
		return err
	}
	if _, err := s.uow.Rates().Delete(ctx, rateID); err != nil {
		return err
	}
	return nil
}

// hotel validates the id and probes for the parent document.
func (s *RateService) hotel(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	if strings.TrimSpace(hotelID) == "" {
		return nil, domain.ErrInvalidID
	}
	hotel, err := s.uow.Hotels().ByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, domain.ErrNotFound
	}
	return hotel, nil
}

func (s *RateService) persist(ctx context.Context, hotel *domain.Hotel) error {
	if _, err := s.uow.Hotels().Update(ctx, hotel.ID, *hotel); err != nil {
		return err
	}
	return s.cache.Del(ctx, hotelKey(hotel.ID))
}

// mirrorUpsert keeps the flat rate collection in step with the embedded one
// so the cross-hotel arrival query observes every write.
func mirrorUpsert(ctx context.Context, uow domain.UnitOfWork, rate domain.HotelRate) error {
	matched, err := uow.Rates().Update(ctx, rate.ID, rate)
	if err != nil {
		return err
	}
	if !matched {
		return uow.Rates().Create(ctx, rate)
	}
	return nil
}

// mirrorRemove drops a hotel's embedded rates from the flat collection,
// skipping any whose ids survive in keep.
func mirrorRemove(ctx context.Context, uow domain.UnitOfWork, rates []domain.HotelRate, keep []domain.HotelRate) error {
	kept := make(map[string]bool, len(keep))
	for _, r := range keep {
		kept[r.ID] = true
	}
	for _, r := range rates {
		if kept[r.ID] {
			continue
		}
		if _, err := uow.Rates().Delete(ctx, r.ID); err != nil {
			return err
		}
	}
	return nil
}
