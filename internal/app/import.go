package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"hotels_api/internal/domain"
)

// ImportService loads hotels and their rates from staged JSON files. Each
// hotel is one store write; there is no batching and no rollback, so a
// failing write leaves earlier hotels persisted and aborts the rest.
type ImportService struct {
	uow   domain.UnitOfWork
	files domain.FileStore
}

func NewImportService(uow domain.UnitOfWork, files domain.FileStore) *ImportService {
	return &ImportService{uow: uow, files: files}
}

// ImportReader stages the payload through the file store, then imports the
// staged file. Returns the number of hotels persisted.
func (s *ImportService) ImportReader(ctx context.Context, name string, r io.Reader) (int, error) {
	path, err := s.files.Save(name, r)
	if err != nil {
		return 0, fmt.Errorf("stage upload %q: %w", name, err)
	}
	return s.ImportFile(ctx, path)
}

func (s *ImportService) ImportFile(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var bundles []HotelBundle
	if err := json.Unmarshal(raw, &bundles); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	imported := 0
	for _, b := range bundles {
		hotel := ToHotel(b.Hotel)
		hotel.Rates = ToRates(b.HotelRates)
		if hotel.ID == "" {
			hotel.ID = newID()
		}
		for i := range hotel.Rates {
			if hotel.Rates[i].ID == "" {
				hotel.Rates[i].ID = newID()
			}
		}
		if err := s.uow.Hotels().Create(ctx, hotel); err != nil {
			return imported, fmt.Errorf("import hotel %s: %w", hotel.ID, err)
		}
		for _, r := range hotel.Rates {
			if err := s.uow.Rates().Create(ctx, r); err != nil {
				return imported, fmt.Errorf("mirror rate %s: %w", r.ID, err)
			}
		}
		imported++
	}
	return imported, nil
}
