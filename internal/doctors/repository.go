package doctors

import (
	"context"
	"strings"
	"time"

	"github.com/medibook/medibook-platform/internal/simulate"
)

// Per-operation delays of the simulated directory backend.
const (
	getAllDelay      = 800 * time.Millisecond
	getByIDDelay     = 500 * time.Millisecond
	bySpecialtyDelay = 600 * time.Millisecond
)

// Repository defines the interface for doctor directory lookups
type Repository interface {
	GetAll(ctx context.Context) ([]*Doctor, error)
	GetByID(ctx context.Context, id string) (*Doctor, error)
	GetBySpecialty(ctx context.Context, specialty string) ([]*Doctor, error)
}

// InMemoryRepository serves the seeded directory from memory. Listing order
// is always seed order.
type InMemoryRepository struct {
	sleeper simulate.Sleeper
	doctors []*Doctor
	byID    map[string]*Doctor
}

// NewInMemoryRepository creates a repository over the given records.
func NewInMemoryRepository(records []*Doctor, sleeper simulate.Sleeper) *InMemoryRepository {
	byID := make(map[string]*Doctor, len(records))
	for _, d := range records {
		byID[d.ID] = d
	}
	return &InMemoryRepository{
		sleeper: sleeper,
		doctors: records,
		byID:    byID,
	}
}

// GetAll returns every doctor in seed order.
func (r *InMemoryRepository) GetAll(ctx context.Context) ([]*Doctor, error) {
	if err := r.sleeper.Sleep(ctx, getAllDelay); err != nil {
		return nil, err
	}
	out := make([]*Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out, nil
}

// GetByID retrieves a doctor by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Doctor, error) {
	if err := r.sleeper.Sleep(ctx, getByIDDelay); err != nil {
		return nil, err
	}
	d, ok := r.byID[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return d, nil
}

// GetBySpecialty returns doctors whose specialty contains the given term,
// case-insensitively. An empty term matches everyone.
func (r *InMemoryRepository) GetBySpecialty(ctx context.Context, specialty string) ([]*Doctor, error) {
	if err := r.sleeper.Sleep(ctx, bySpecialtyDelay); err != nil {
		return nil, err
	}
	term := strings.ToLower(specialty)
	var out []*Doctor
	for _, d := range r.doctors {
		if strings.Contains(strings.ToLower(d.Specialty), term) {
			out = append(out, d)
		}
	}
	return out, nil
}
