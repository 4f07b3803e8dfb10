package doctors

import "errors"

// ErrDoctorNotFound is returned when a doctor ID does not exist in the directory
var ErrDoctorNotFound = errors.New("doctor not found")
