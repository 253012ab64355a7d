package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotels_api/internal/adapters/observability"
	"hotels_api/internal/app"
)

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.FromHotels(hotels))
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Hotels.Get(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.FromHotel(*hotel))
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var dto app.HotelDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	created, err := h.Hotels.Create(r.Context(), app.ToHotel(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/hotels/"+created.ID)
	writeJSON(w, http.StatusCreated, app.FromHotel(*created))
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var dto app.HotelDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.Hotels.Update(r.Context(), chi.URLParam(r, "hotelID"), app.ToHotel(dto)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Hotels.Delete(r.Context(), chi.URLParam(r, "hotelID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// uploadHotels stages each multipart file and imports its hotel bundles.
// Any staging or parse failure fails the request; hotels persisted before
// the failure stay persisted.
func (h *Handlers) uploadHotels(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Upload", err.Error())
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid Upload", "no file sent")
		return
	}
	for _, fh := range files {
		if fh.Size == 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid Upload", "file not selected")
			return
		}
		f, err := fh.Open()
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Upload", err.Error())
			return
		}
		n, err := h.Imports.ImportReader(r.Context(), fh.Filename, f)
		f.Close()
		if err != nil {
			observability.ObserveImport("failed", n)
			writeProblem(w, http.StatusBadRequest, "Import Failed", err.Error())
			return
		}
		observability.ObserveImport("ok", n)
	}
	w.WriteHeader(http.StatusOK)
}
