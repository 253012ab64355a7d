package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"hotels_api/internal/domain"
)

const (
	hotelsCollection = "hotels"
	ratesCollection  = "rates"
)

// UnitOfWork binds the two repositories to their collections in one database.
type UnitOfWork struct {
	hotels *Repo[domain.Hotel]
	rates  *Repo[domain.HotelRate]
}

func NewUnitOfWork(db *mongo.Database) *UnitOfWork {
	return &UnitOfWork{
		hotels: NewRepo[domain.Hotel](db.Collection(hotelsCollection)),
		rates:  NewRepo[domain.HotelRate](db.Collection(ratesCollection)),
	}
}

func (u *UnitOfWork) Hotels() domain.Repository[domain.Hotel] { return u.hotels }

func (u *UnitOfWork) Rates() domain.Repository[domain.HotelRate] { return u.rates }
