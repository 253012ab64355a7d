package app

import "hotels_api/internal/domain"

// Field-by-field conversions between wire DTOs and persisted entities.
// Kept explicit so the wire contract is visible in one place.

func ToHotel(d HotelDTO) domain.Hotel {
	return domain.Hotel{
		ID:             string(d.ID),
		Name:           d.Name,
		Classification: d.Classification,
		ReviewScore:    d.ReviewScore,
		Rates:          ToRates(d.Rates),
	}
}

func ToRates(ds []HotelRateDTO) []domain.HotelRate {
	out := make([]domain.HotelRate, 0, len(ds))
	for _, d := range ds {
		out = append(out, ToRate(d))
	}
	return out
}

func ToRate(d HotelRateDTO) domain.HotelRate {
	tags := make([]domain.RateTag, 0, len(d.Tags))
	for _, t := range d.Tags {
		tags = append(tags, domain.RateTag{Name: t.Name, Shape: t.Shape})
	}
	return domain.HotelRate{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Adults:      d.Adults,
		Los:         d.Los,
		Price: domain.Price{
			Currency:       d.Price.Currency,
			NumericFloat:   d.Price.NumericFloat,
			NumericInteger: d.Price.NumericInteger,
		},
		TargetDay: d.TargetDay,
		Tags:      tags,
	}
}

func FromHotel(h domain.Hotel) HotelDTO {
	return HotelDTO{
		ID:             ID(h.ID),
		Name:           h.Name,
		Classification: h.Classification,
		ReviewScore:    h.ReviewScore,
		Rates:          FromRates(h.Rates),
	}
}

func FromHotels(hs []domain.Hotel) []HotelDTO {
	out := make([]HotelDTO, 0, len(hs))
	for _, h := range hs {
		out = append(out, FromHotel(h))
	}
	return out
}

func FromRates(rs []domain.HotelRate) []HotelRateDTO {
	out := make([]HotelRateDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRate(r))
	}
	return out
}

func FromRate(r domain.HotelRate) HotelRateDTO {
	tags := make([]RateTagDTO, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, RateTagDTO{Name: t.Name, Shape: t.Shape})
	}
	return HotelRateDTO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Adults:      r.Adults,
		Los:         r.Los,
		Price: PriceDTO{
			Currency:       r.Price.Currency,
			NumericFloat:   r.Price.NumericFloat,
			NumericInteger: r.Price.NumericInteger,
		},
		TargetDay: r.TargetDay,
		Tags:      tags,
	}
}
