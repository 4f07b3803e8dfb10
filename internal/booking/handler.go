package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medibook/medibook-platform/internal/doctors"
	"github.com/medibook/medibook-platform/pkg/logging"
)

// Handler handles HTTP requests for the booking flow
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new booking handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// AvailableDatesResponse lists bookable dates for a doctor and modality
type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
	Count int      `json:"count"`
}

// AvailableDates handles GET /doctors/{doctorID}/available-dates requests.
// The type query parameter selects the consultation modality and defaults
// to clinic.
func (h *Handler) AvailableDates(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")
	modality := r.URL.Query().Get("type")
	if modality == "" {
		modality = doctors.ModalityClinic
	}

	dates, err := h.service.AvailableDates(r.Context(), doctorID, modality)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			http.Error(w, "doctor not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load available dates", "error", err, "doctor_id", doctorID)
		http.Error(w, "failed to load available dates", http.StatusInternalServerError)
		return
	}
	if dates == nil {
		dates = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AvailableDatesResponse{
		Dates: dates,
		Count: len(dates),
	})
}

// Book handles POST /bookings requests
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Book(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			http.Error(w, "Please fill in all required fields", http.StatusBadRequest)
		case errors.Is(err, doctors.ErrDoctorNotFound):
			http.Error(w, "doctor not found", http.StatusNotFound)
		default:
			h.logger.Error("failed to book appointment", "error", err)
			http.Error(w, "failed to book appointment", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}
