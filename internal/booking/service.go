package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/medibook/medibook-platform/internal/appointments"
	"github.com/medibook/medibook-platform/internal/doctors"
	"github.com/medibook/medibook-platform/internal/locale"
	"github.com/medibook/medibook-platform/internal/notify"
	"github.com/medibook/medibook-platform/internal/observability/metrics"
	"github.com/medibook/medibook-platform/internal/simulate"
	"github.com/medibook/medibook-platform/pkg/logging"
)

var bookingTracer = otel.Tracer("medibook.internal.booking")

// availabilityWindowDays is how far ahead a patient can book.
const availabilityWindowDays = 14

// ErrMissingFields is returned when a booking request lacks required fields
var ErrMissingFields = errors.New("missing required fields")

// Request is a staged booking submission.
type Request struct {
	DoctorID         string `json:"doctorId"`
	PatientID        string `json:"patientId"`
	PatientName      string `json:"patientName"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ConsultationType string `json:"consultationType"`
	Symptoms         string `json:"symptoms,omitempty"`
}

func (r *Request) validate() error {
	if r.DoctorID == "" || r.PatientID == "" || r.Date == "" || r.Time == "" {
		return ErrMissingFields
	}
	return nil
}

// StageResult reports one executed pipeline stage.
type StageResult struct {
	Title      string `json:"title"`
	DurationMs int64  `json:"durationMs"`
}

// Result is the outcome of a staged booking. State is complete on success
// and payment when the appointment create failed after the pipeline ran.
type Result struct {
	State       string                    `json:"state"`
	Stages      []StageResult             `json:"stages"`
	Appointment *appointments.Appointment `json:"appointment,omitempty"`
	Fee         int                       `json:"fee"`
	FeeDisplay  string                    `json:"feeDisplay"`
	DateDisplay string                    `json:"dateDisplay"`
	TimeDisplay string                    `json:"timeDisplay"`
}

// Service runs the staged booking pipeline and answers availability
// questions for the booking form.
type Service struct {
	doctors      doctors.Repository
	appointments appointments.Repository
	notifier     notify.Notifier
	metrics      *metrics.BookingMetrics
	sleeper      simulate.Sleeper
	stageScale   float64
	logger       *logging.Logger

	// now is replaceable in tests to pin the availability window.
	now func() time.Time
}

// NewService creates a booking service. stageScale multiplies the scripted
// stage durations; 0 collapses the pipeline for tests.
func NewService(
	doctorRepo doctors.Repository,
	aptRepo appointments.Repository,
	notifier notify.Notifier,
	m *metrics.BookingMetrics,
	sleeper simulate.Sleeper,
	stageScale float64,
	logger *logging.Logger,
) *Service {
	return &Service{
		doctors:      doctorRepo,
		appointments: aptRepo,
		notifier:     notifier,
		metrics:      m,
		sleeper:      sleeper,
		stageScale:   stageScale,
		logger:       logger,
		now:          locale.Now,
	}
}

// AvailableDates returns the IST dates within the next two weeks on which
// the doctor accepts the given consultation modality. Doctors without
// published availability yield no dates.
func (s *Service) AvailableDates(ctx context.Context, doctorID, modality string) ([]string, error) {
	doctor, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	days := doctor.DaysFor(modality)
	if len(days) == 0 {
		return nil, nil
	}
	available := make(map[string]bool, len(days))
	for _, d := range days {
		available[d] = true
	}

	start := s.now().In(locale.IST)
	var dates []string
	for i := 0; i < availabilityWindowDays; i++ {
		day := start.AddDate(0, 0, i)
		if available[day.Weekday().String()] {
			dates = append(dates, day.Format(locale.DateLayout))
		}
	}
	return dates, nil
}

// Book runs the full pipeline: fee lookup, the four scripted stages, then
// the appointment create. The appointment is only created, with status
// confirmed, after the last stage finishes. On a create failure the flow
// reverts to the payment state and the returned Result carries that state
// alongside the error.
func (s *Service) Book(ctx context.Context, req *Request) (*Result, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.pipeline")
	defer span.End()
	span.SetAttributes(
		attribute.String("medibook.doctor_id", req.DoctorID),
		attribute.String("medibook.consultation_type", req.ConsultationType),
	)

	if err := req.validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	doctor, err := s.doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	fee := doctor.FeeFor(req.ConsultationType)

	start := time.Now()
	stages, err := s.runStages(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	apt, err := s.appointments.Create(ctx, &appointments.CreateAppointmentRequest{
		DoctorID:         doctor.ID,
		PatientID:        req.PatientID,
		DoctorName:       doctor.Name,
		PatientName:      req.PatientName,
		Specialty:        doctor.Specialty,
		Date:             req.Date,
		Time:             req.Time,
		Status:           appointments.StatusConfirmed,
		ConsultationType: req.ConsultationType,
		Symptoms:         req.Symptoms,
		Fee:              fee,
	})
	if err != nil {
		span.RecordError(err)
		s.logger.Error("booking pipeline failed", "error", err, "doctor_id", doctor.ID)
		s.metrics.ObservePipelineDuration("failure", time.Since(start).Seconds())
		s.notifier.Notify(notify.Notice{
			Severity: notify.SeverityError,
			Title:    "Error",
			Message:  "Failed to book appointment",
		})
		return &Result{State: StatePayment, Stages: stages}, fmt.Errorf("booking: create appointment: %w", err)
	}

	s.logger.Info("appointment booked",
		"id", apt.ID, "doctor_id", doctor.ID, "consultation_type", req.ConsultationType, "fee", fee)
	s.metrics.ObservePipelineDuration("success", time.Since(start).Seconds())
	s.metrics.ObserveBooking(apt.Status, apt.ConsultationType)
	s.notifier.Notify(notify.Notice{
		Severity: notify.SeveritySuccess,
		Title:    "Success! 🎉",
		Message:  "Appointment booked successfully!",
	})

	return &Result{
		State:       StateComplete,
		Stages:      stages,
		Appointment: apt,
		Fee:         fee,
		FeeDisplay:  locale.FormatCurrency(fee),
		DateDisplay: locale.FormatDate(apt.Date),
		TimeDisplay: locale.FormatTime(apt.Time),
	}, nil
}

func (s *Service) runStages(ctx context.Context) ([]StageResult, error) {
	var out []StageResult
	for _, stage := range Stages() {
		d := time.Duration(float64(stage.Duration) * s.stageScale)
		if err := s.sleeper.Sleep(ctx, d); err != nil {
			return nil, err
		}
		out = append(out, StageResult{
			Title:      stage.Title,
			DurationMs: stage.Duration.Milliseconds(),
		})
	}
	return out, nil
}
