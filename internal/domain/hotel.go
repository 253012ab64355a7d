package domain

import "time"

type Hotel struct {
	ID             string      `bson:"_id"`
	Name           string      `bson:"name"`
	Classification int         `bson:"classification"`
	ReviewScore    float64     `bson:"reviewScore"`
	Rates          []HotelRate `bson:"rates"`
}

func (h Hotel) EntityID() string { return h.ID }

// Rate returns a pointer into the embedded collection for the rate with the
// given id, or nil when no rate matches.
func (h *Hotel) Rate(rateID string) *HotelRate {
	for i := range h.Rates {
		if h.Rates[i].ID == rateID {
			return &h.Rates[i]
		}
	}
	return nil
}

type HotelRate struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"rateName"`
	Description string    `bson:"rateDescription"`
	Adults      int       `bson:"adults"`
	Los         int       `bson:"los"` // length of stay, nights
	Price       Price     `bson:"price"`
	TargetDay   time.Time `bson:"targetDay"`
	Tags        []RateTag `bson:"rateTags"`
}

func (r HotelRate) EntityID() string { return r.ID }

// Price carries the same magnitude in two parallel representations; both come
// from the upstream feed and are stored verbatim.
type Price struct {
	Currency       string  `bson:"currency"`
	NumericFloat   float64 `bson:"numericFloat"`
	NumericInteger int     `bson:"numericInteger"`
}

type RateTag struct {
	Name  string `bson:"name"`
	Shape bool   `bson:"shape"`
}

// SameDay reports whether two instants fall on the same UTC calendar date.
// Rate filtering compares arrival dates only; time of day is ignored.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates an instant to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
