package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotels_api/internal/app"
	"hotels_api/internal/domain"
)

type Handlers struct {
	Hotels  *app.HotelService
	Rates   *app.RateService
	Imports *app.ImportService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/hotels", func(r chi.Router) {
		r.Get("/", h.listHotels)
		r.Post("/", h.createHotel)
		r.Post("/upload", h.uploadHotels)
		r.Route("/{hotelID}", func(r chi.Router) {
			r.Get("/", h.getHotel)
			r.Put("/", h.updateHotel)
			r.Delete("/", h.deleteHotel)
			r.Get("/rates/arrival/{arrivalDate}", h.listRatesByArrival)
			r.Post("/rates", h.createRate)
			r.Get("/rates/{rateID}", h.getRate)
			r.Put("/rates/{rateID}", h.updateRate)
			r.Delete("/rates/{rateID}", h.deleteRate)
		})
	})
	s.mux.Get("/rates/arrival/{arrivalDate}", h.listRatesByArrivalGlobal)
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError maps the domain taxonomy onto the wire contract. Anything
// outside it is an unhandled store error and surfaces as a 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		writeProblem(w, http.StatusBadRequest, "Invalid ID", err.Error())
	case errors.Is(err, domain.ErrIDMismatch):
		writeProblem(w, http.StatusBadRequest, "Invalid ID", err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		writeProblem(w, http.StatusBadRequest, "Unavailable", err.Error())
	case errors.Is(err, domain.ErrDuplicateID):
		writeProblem(w, http.StatusBadRequest, "Duplicate ID", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// parseArrival accepts a plain date or a full timestamp; only the calendar
// date matters to the filters downstream.
func parseArrival(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
