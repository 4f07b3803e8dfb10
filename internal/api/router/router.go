package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/medibook/medibook-platform/internal/appointments"
	"github.com/medibook/medibook-platform/internal/auth"
	"github.com/medibook/medibook-platform/internal/booking"
	"github.com/medibook/medibook-platform/internal/doctors"
	httpmiddleware "github.com/medibook/medibook-platform/internal/http/middleware"
	"github.com/medibook/medibook-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	DoctorsHandler      *doctors.Handler
	AppointmentsHandler *appointments.Handler
	BookingHandler      *booking.Handler
	AuthHandler         *auth.Handler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.AuthHandler != nil {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/register", cfg.AuthHandler.Register)
		})
	}

	r.Route("/doctors", func(r chi.Router) {
		r.Get("/", cfg.DoctorsHandler.ListDoctors)
		r.Route("/{doctorID}", func(r chi.Router) {
			r.Get("/", cfg.DoctorsHandler.GetDoctor)
			r.Get("/appointments", cfg.AppointmentsHandler.ListByDoctor)
			if cfg.BookingHandler != nil {
				r.Get("/available-dates", cfg.BookingHandler.AvailableDates)
			}
		})
	})

	r.Route("/appointments", func(r chi.Router) {
		r.Get("/", cfg.AppointmentsHandler.ListAppointments)
		r.Post("/", cfg.AppointmentsHandler.CreateAppointment)
		r.Route("/{appointmentID}", func(r chi.Router) {
			r.Patch("/", cfg.AppointmentsHandler.UpdateAppointment)
			r.Post("/cancel", cfg.AppointmentsHandler.CancelAppointment)
			r.Post("/reschedule", cfg.AppointmentsHandler.RescheduleAppointment)
		})
	})

	r.Get("/patients/{patientID}/appointments", cfg.AppointmentsHandler.ListByPatient)

	if cfg.BookingHandler != nil {
		r.Post("/bookings", cfg.BookingHandler.Book)
	}

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
