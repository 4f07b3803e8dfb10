package doctors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medibook/medibook-platform/pkg/logging"
)

// Handler handles HTTP requests for the doctor directory
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new directory handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// ListDoctorsResponse is the response for directory listings
type ListDoctorsResponse struct {
	Doctors []*Doctor `json:"doctors"`
	Count   int       `json:"count"`
}

// ListDoctors handles GET /doctors requests. Supports search, specialty,
// location and sort query parameters.
func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	q := Query{
		Search:    r.URL.Query().Get("search"),
		Specialty: r.URL.Query().Get("specialty"),
		Location:  r.URL.Query().Get("location"),
		Sort:      r.URL.Query().Get("sort"),
	}

	list, err := h.repo.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list doctors", "error", err)
		http.Error(w, "failed to list doctors", http.StatusInternalServerError)
		return
	}

	filtered := q.Apply(list)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListDoctorsResponse{
		Doctors: filtered,
		Count:   len(filtered),
	})
}

// GetDoctor handles GET /doctors/{doctorID} requests
func (h *Handler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "doctorID")

	doctor, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			http.Error(w, "doctor not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get doctor", "error", err, "doctor_id", id)
		http.Error(w, "failed to get doctor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doctor)
}
