package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Wire shapes. Field names follow the upstream feed, which is also the
// bulk-import file format, so the same DTOs serve both directions.

type HotelDTO struct {
	ID             ID             `json:"hotelID"`
	Name           string         `json:"name"`
	Classification int            `json:"classification"`
	ReviewScore    float64        `json:"reviewscore"`
	Rates          []HotelRateDTO `json:"hotelRates,omitempty"`
}

type HotelRateDTO struct {
	ID          string       `json:"rateID"`
	Name        string       `json:"rateName"`
	Description string       `json:"rateDescription"`
	Adults      int          `json:"adults"`
	Los         int          `json:"los"`
	Price       PriceDTO     `json:"price"`
	TargetDay   time.Time    `json:"targetDay"`
	Tags        []RateTagDTO `json:"rateTags,omitempty"`
}

type PriceDTO struct {
	Currency       string  `json:"currency"`
	NumericFloat   float64 `json:"numericFloat"`
	NumericInteger int     `json:"numericInteger"`
}

type RateTagDTO struct {
	Name  string `json:"name"`
	Shape bool   `json:"shape"`
}

// HotelBundle is one element of a bulk-import file: a hotel plus the rates
// to attach to it.
type HotelBundle struct {
	Hotel      HotelDTO       `json:"Hotel"`
	HotelRates []HotelRateDTO `json:"HotelRates"`
}

// ID is a string identifier that also accepts a bare JSON number on input;
// import feeds carry numeric hotel ids.
type ID string

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("empty id token")
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}
