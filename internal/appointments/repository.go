package appointments

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medibook/medibook-platform/internal/simulate"
)

// Per-operation delays of the simulated appointment backend.
const (
	getAllDelay    = 500 * time.Millisecond
	byPatientDelay = 400 * time.Millisecond
	byDoctorDelay  = 400 * time.Millisecond
	createDelay    = 1000 * time.Millisecond
	updateDelay    = 600 * time.Millisecond
	cancelDelay    = 500 * time.Millisecond
)

// Repository defines the interface for appointment storage
type Repository interface {
	GetAll(ctx context.Context) ([]*Appointment, error)
	GetByPatientID(ctx context.Context, patientID string) ([]*Appointment, error)
	GetByDoctorID(ctx context.Context, doctorID string) ([]*Appointment, error)
	Create(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error)
	Update(ctx context.Context, id string, req *UpdateAppointmentRequest) (*Appointment, error)
	Cancel(ctx context.Context, id string) (bool, error)
}

// InMemoryRepository stores appointments in memory, preserving insertion
// order for listings. The process starts with an empty store.
type InMemoryRepository struct {
	sleeper simulate.Sleeper

	mu          sync.RWMutex
	order       []string
	byID        map[string]*Appointment
	lastCreated time.Time
	nextErr     error
}

// NewInMemoryRepository creates a new in-memory appointment store.
func NewInMemoryRepository(sleeper simulate.Sleeper) *InMemoryRepository {
	return &InMemoryRepository{
		sleeper: sleeper,
		byID:    make(map[string]*Appointment),
	}
}

// FailNext arms the store to fail its next operation with err. Test hook for
// exercising the failure paths of callers.
func (r *InMemoryRepository) FailNext(err error) {
	r.mu.Lock()
	r.nextErr = err
	r.mu.Unlock()
}

func (r *InMemoryRepository) takeFault() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.nextErr
	r.nextErr = nil
	return err
}

// GetAll returns every appointment in insertion order.
func (r *InMemoryRepository) GetAll(ctx context.Context) ([]*Appointment, error) {
	if err := r.sleeper.Sleep(ctx, getAllDelay); err != nil {
		return nil, err
	}
	if err := r.takeFault(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Appointment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.copyLocked(id))
	}
	return out, nil
}

// GetByPatientID returns the patient's appointments in insertion order.
func (r *InMemoryRepository) GetByPatientID(ctx context.Context, patientID string) ([]*Appointment, error) {
	if err := r.sleeper.Sleep(ctx, byPatientDelay); err != nil {
		return nil, err
	}
	if err := r.takeFault(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Appointment
	for _, id := range r.order {
		if r.byID[id].PatientID == patientID {
			out = append(out, r.copyLocked(id))
		}
	}
	return out, nil
}

// GetByDoctorID returns the doctor's appointments in insertion order.
func (r *InMemoryRepository) GetByDoctorID(ctx context.Context, doctorID string) ([]*Appointment, error) {
	if err := r.sleeper.Sleep(ctx, byDoctorDelay); err != nil {
		return nil, err
	}
	if err := r.takeFault(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Appointment
	for _, id := range r.order {
		if r.byID[id].DoctorID == doctorID {
			out = append(out, r.copyLocked(id))
		}
	}
	return out, nil
}

// Create mints an appointment with a unique ID and a non-decreasing UTC
// creation timestamp. It never rejects on domain grounds; overlapping slots
// for the same doctor are accepted.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	if err := r.sleeper.Sleep(ctx, createDelay); err != nil {
		return nil, err
	}
	if err := r.takeFault(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if now.Before(r.lastCreated) {
		now = r.lastCreated
	}
	r.lastCreated = now

	apt := &Appointment{
		ID:               uuid.New().String(),
		DoctorID:         req.DoctorID,
		PatientID:        req.PatientID,
		DoctorName:       req.DoctorName,
		PatientName:      req.PatientName,
		Specialty:        req.Specialty,
		Date:             req.Date,
		Time:             req.Time,
		Status:           req.Status,
		ConsultationType: req.ConsultationType,
		Symptoms:         req.Symptoms,
		Fee:              req.Fee,
		CreatedAt:        now,
	}
	r.byID[apt.ID] = apt
	r.order = append(r.order, apt.ID)

	out := *apt
	return &out, nil
}

// Update merges the non-nil fields of req into the stored appointment.
func (r *InMemoryRepository) Update(ctx context.Context, id string, req *UpdateAppointmentRequest) (*Appointment, error) {
	if err := r.sleeper.Sleep(ctx, updateDelay); err != nil {
		return nil, err
	}
	if err := r.takeFault(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	apt, ok := r.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	if req.Date != nil {
		apt.Date = *req.Date
	}
	if req.Time != nil {
		apt.Time = *req.Time
	}
	if req.Status != nil {
		apt.Status = *req.Status
	}
	if req.ConsultationType != nil {
		apt.ConsultationType = *req.ConsultationType
	}
	if req.Symptoms != nil {
		apt.Symptoms = *req.Symptoms
	}
	if req.Fee != nil {
		apt.Fee = *req.Fee
	}

	out := *apt
	return &out, nil
}

// Cancel marks an appointment cancelled. Returns false when the ID is
// unknown. There is no guard for already completed or cancelled
// appointments; cancelling twice is a no-op that still reports true.
func (r *InMemoryRepository) Cancel(ctx context.Context, id string) (bool, error) {
	if err := r.sleeper.Sleep(ctx, cancelDelay); err != nil {
		return false, err
	}
	if err := r.takeFault(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	apt, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	apt.Status = StatusCancelled
	return true, nil
}

// copyLocked returns a snapshot of an appointment. Callers must hold mu.
func (r *InMemoryRepository) copyLocked(id string) *Appointment {
	out := *r.byID[id]
	return &out
}
