package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotels_api/internal/domain"
)

// newID mints ids for entities persisted without one.
func newID() string { return uuid.NewString() }

func hotelKey(id string) string { return "hotel:" + id }

type HotelService struct {
	uow      domain.UnitOfWork
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewHotelService(uow domain.UnitOfWork, cache domain.Cache, ttl time.Duration) *HotelService {
	return &HotelService{uow: uow, cache: cache, cacheTTL: ttl}
}

func (s *HotelService) List(ctx context.Context) ([]domain.Hotel, error) {
	return s.uow.Hotels().All(ctx)
}

func (s *HotelService) Get(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	if strings.TrimSpace(hotelID) == "" {
		return nil, domain.ErrInvalidID
	}
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, hotelKey(hotelID), &h); ok {
		return &h, nil
	}
	found, err := s.uow.Hotels().ByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	_ = s.cache.Set(ctx, hotelKey(hotelID), found, s.cacheTTL)
	return found, nil
}

func (s *HotelService) Create(ctx context.Context, h domain.Hotel) (*domain.Hotel, error) {
	if h.ID == "" {
		h.ID = newID()
	}
	for i := range h.Rates {
		if h.Rates[i].ID == "" {
			h.Rates[i].ID = newID()
		}
	}
	if err := s.uow.Hotels().Create(ctx, h); err != nil {
		return nil, err
	}
	for _, r := range h.Rates {
		if err := mirrorUpsert(ctx, s.uow, r); err != nil {
			return nil, err
		}
	}
	return &h, nil
}

// Update is a full-document replace. The existence probe runs before the
// write so a miss is reported as not-found rather than as a silent no-op.
func (s *HotelService) Update(ctx context.Context, hotelID string, h domain.Hotel) error {
	if strings.TrimSpace(hotelID) == "" {
		return domain.ErrInvalidID
	}
	existing, err := s.uow.Hotels().ByID(ctx, hotelID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	h.ID = hotelID
	for i := range h.Rates {
		if h.Rates[i].ID == "" {
			h.Rates[i].ID = newID()
		}
	}
	if _, err := s.uow.Hotels().Update(ctx, hotelID, h); err != nil {
		return err
	}
	// the replace may have dropped or changed embedded rates; the flat
	// collection has to follow
	for _, r := range h.Rates {
		if err := mirrorUpsert(ctx, s.uow, r); err != nil {
			return err
		}
	}
	if err := mirrorRemove(ctx, s.uow, existing.Rates, h.Rates); err != nil {
		return err
	}
	return s.cache.Del(ctx, hotelKey(hotelID))
}

func (s *HotelService) Delete(ctx context.Context, hotelID string) error {
	if strings.TrimSpace(hotelID) == "" {
		return domain.ErrInvalidID
	}
	existing, err := s.uow.Hotels().ByID(ctx, hotelID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if _, err := s.uow.Hotels().Delete(ctx, hotelID); err != nil {
		return err
	}
	if err := mirrorRemove(ctx, s.uow, existing.Rates, nil); err != nil {
		return err
	}
	return s.cache.Del(ctx, hotelKey(hotelID))
}
