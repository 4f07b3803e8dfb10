package appointments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medibook/medibook-platform/internal/observability/metrics"
	"github.com/medibook/medibook-platform/pkg/logging"
)

// Handler handles HTTP requests for appointments
type Handler struct {
	repo    Repository
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewHandler creates a new appointments handler
func NewHandler(repo Repository, m *metrics.BookingMetrics, logger *logging.Logger) *Handler {
	return &Handler{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

// ListAppointmentsResponse is the response for appointment listings
type ListAppointmentsResponse struct {
	Appointments []*Appointment `json:"appointments"`
	Count        int            `json:"count"`
}

// ListAppointments handles GET /appointments requests
func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list appointments", "error", err)
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}
	writeList(w, list)
}

// ListByPatient handles GET /patients/{patientID}/appointments requests.
// An optional bucket query parameter narrows the listing to one lifecycle
// view (upcoming, completed, cancelled, history).
func (h *Handler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	bucket := r.URL.Query().Get("bucket")
	if bucket != "" && !ValidBucket(bucket) {
		http.Error(w, "unknown bucket", http.StatusBadRequest)
		return
	}

	list, err := h.repo.GetByPatientID(r.Context(), patientID)
	if err != nil {
		h.logger.Error("failed to list appointments", "error", err, "patient_id", patientID)
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	if bucket != "" {
		list = FilterBucket(list, Bucket(bucket), "")
	}
	writeList(w, list)
}

// ListByDoctor handles GET /doctors/{doctorID}/appointments requests
func (h *Handler) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	list, err := h.repo.GetByDoctorID(r.Context(), doctorID)
	if err != nil {
		h.logger.Error("failed to list appointments", "error", err, "doctor_id", doctorID)
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}
	writeList(w, list)
}

// CreateAppointment handles POST /appointments requests. This is the direct
// path used by quick booking; the staged pipeline lives under /bookings.
func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	apt, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create appointment", "error", err)
		http.Error(w, "failed to create appointment", http.StatusInternalServerError)
		return
	}

	h.logger.Info("appointment created", "id", apt.ID, "doctor_id", apt.DoctorID, "status", apt.Status)
	h.metrics.ObserveBooking(apt.Status, apt.ConsultationType)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(apt)
}

// UpdateAppointment handles PATCH /appointments/{appointmentID} requests
func (h *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "appointmentID")

	var req UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	apt, err := h.repo.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to update appointment", "error", err, "appointment_id", id)
		http.Error(w, "failed to update appointment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(apt)
}

// CancelAppointmentResponse reports a cancellation outcome
type CancelAppointmentResponse struct {
	Cancelled bool `json:"cancelled"`
}

// CancelAppointment handles POST /appointments/{appointmentID}/cancel requests
func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "appointmentID")

	found, err := h.repo.Cancel(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to cancel appointment", "error", err, "appointment_id", id)
		http.Error(w, "failed to cancel appointment", http.StatusInternalServerError)
		return
	}
	h.metrics.ObserveCancellation(found)

	if !found {
		http.Error(w, "appointment not found", http.StatusNotFound)
		return
	}

	h.logger.Info("appointment cancelled", "id", id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CancelAppointmentResponse{Cancelled: true})
}

// RescheduleAppointment handles POST /appointments/{appointmentID}/reschedule
// requests. Rescheduling is acknowledged but performs no data change; the
// patient is expected to be contacted out of band. Known product gap.
func (h *Handler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "appointmentID")

	h.logger.Info("reschedule requested", "id", id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "reschedule request sent",
	})
}

func writeList(w http.ResponseWriter, list []*Appointment) {
	if list == nil {
		list = []*Appointment{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListAppointmentsResponse{
		Appointments: list,
		Count:        len(list),
	})
}
