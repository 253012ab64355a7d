package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotels_api/internal/app"
)

func (h *Handlers) listRatesByArrival(w http.ResponseWriter, r *http.Request) {
	arrival, err := parseArrival(chi.URLParam(r, "arrivalDate"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Date", "arrival date must be YYYY-MM-DD or RFC 3339")
		return
	}
	rates, err := h.Rates.ListByArrival(r.Context(), chi.URLParam(r, "hotelID"), arrival)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.FromRates(rates))
}

func (h *Handlers) listRatesByArrivalGlobal(w http.ResponseWriter, r *http.Request) {
	arrival, err := parseArrival(chi.URLParam(r, "arrivalDate"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Date", "arrival date must be YYYY-MM-DD or RFC 3339")
		return
	}
	rates, err := h.Rates.ListByArrivalGlobal(r.Context(), arrival)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.FromRates(rates))
}

func (h *Handlers) getRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.Rates.Get(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "rateID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.FromRate(*rate))
}

func (h *Handlers) createRate(w http.ResponseWriter, r *http.Request) {
	var dto app.HotelRateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	hotelID := chi.URLParam(r, "hotelID")
	created, err := h.Rates.Create(r.Context(), hotelID, app.ToRate(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/hotels/"+hotelID+"/rates/"+created.ID)
	writeJSON(w, http.StatusCreated, app.FromRate(*created))
}

func (h *Handlers) updateRate(w http.ResponseWriter, r *http.Request) {
	var dto app.HotelRateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	err := h.Rates.Update(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "rateID"), app.ToRate(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) deleteRate(w http.ResponseWriter, r *http.Request) {
	if err := h.Rates.Delete(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "rateID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
