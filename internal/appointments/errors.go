package appointments

import "errors"

// ErrAppointmentNotFound is returned when an appointment ID does not exist
var ErrAppointmentNotFound = errors.New("appointment not found")
