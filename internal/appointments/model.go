package appointments

import "time"

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment is a booked consultation. Doctor and patient names plus the
// specialty are denormalized snapshots taken at booking time; they are never
// re-synced if the directory changes.
type Appointment struct {
	ID               string    `json:"id"`
	DoctorID         string    `json:"doctorId"`
	PatientID        string    `json:"patientId"`
	DoctorName       string    `json:"doctorName"`
	PatientName      string    `json:"patientName"`
	Specialty        string    `json:"specialty"`
	Date             string    `json:"date"` // "YYYY-MM-DD" in IST
	Time             string    `json:"time"` // "HH:MM" 24-hour
	Status           string    `json:"status"`
	ConsultationType string    `json:"consultationType"`
	Symptoms         string    `json:"symptoms,omitempty"`
	Fee              int       `json:"fee"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CreateAppointmentRequest carries everything the store needs to mint an
// appointment. The store fills in ID and CreatedAt. No field is rejected on
// domain grounds; the quick-book path legitimately sends a zero fee and an
// empty consultation type.
type CreateAppointmentRequest struct {
	DoctorID         string `json:"doctorId"`
	PatientID        string `json:"patientId"`
	DoctorName       string `json:"doctorName"`
	PatientName      string `json:"patientName"`
	Specialty        string `json:"specialty"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Status           string `json:"status"`
	ConsultationType string `json:"consultationType"`
	Symptoms         string `json:"symptoms,omitempty"`
	Fee              int    `json:"fee"`
}

// UpdateAppointmentRequest is a partial update. Nil fields are left alone.
type UpdateAppointmentRequest struct {
	Date             *string `json:"date,omitempty"`
	Time             *string `json:"time,omitempty"`
	Status           *string `json:"status,omitempty"`
	ConsultationType *string `json:"consultationType,omitempty"`
	Symptoms         *string `json:"symptoms,omitempty"`
	Fee              *int    `json:"fee,omitempty"`
}
