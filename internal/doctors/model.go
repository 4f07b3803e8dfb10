package doctors

import "strconv"

// Modalities a consultation can take place over.
const (
	ModalityClinic = "clinic"
	ModalityVideo  = "video"
	ModalityCall   = "call"
)

// Availability lists the weekday names a doctor accepts visits on, keyed by
// channel. In-person visits use the clinic list; video and call consultations
// share the online list.
type Availability struct {
	Clinic []string `json:"clinic,omitempty"`
	Online []string `json:"online,omitempty"`
}

// Doctor is a directory entry. Records are seeded at startup and immutable
// for the process lifetime.
type Doctor struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Specialty            string        `json:"specialty"`
	Qualifications       string        `json:"qualifications"`
	Experience           string        `json:"experience"`
	Rating               float64       `json:"rating"`
	ReviewCount          int           `json:"reviewCount"`
	ConsultationFee      int           `json:"consultationFee"`
	VideoConsultationFee int           `json:"videoConsultationFee"`
	Image                string        `json:"image,omitempty"`
	About                string        `json:"about"`
	ClinicAddress        string        `json:"clinicAddress"`
	Availability         *Availability `json:"availability,omitempty"`
	TimeSlots            []string      `json:"timeSlots,omitempty"`
	ConsultationType     []string      `json:"consultationType,omitempty"`
}

// FeeFor returns the fee in rupees for a consultation modality. Video and
// call consultations both bill the video fee; anything else bills the clinic
// fee.
func (d *Doctor) FeeFor(modality string) int {
	switch modality {
	case ModalityVideo, ModalityCall:
		return d.VideoConsultationFee
	default:
		return d.ConsultationFee
	}
}

// DaysFor returns the weekday names the doctor is available on for a
// modality. Nil when the doctor publishes no availability.
func (d *Doctor) DaysFor(modality string) []string {
	if d.Availability == nil {
		return nil
	}
	if modality == ModalityClinic {
		return d.Availability.Clinic
	}
	return d.Availability.Online
}

// ExperienceYears parses the leading integer out of the experience label
// ("15 years" -> 15). Zero when the label has no leading digits.
func (d *Doctor) ExperienceYears() int {
	i := 0
	for i < len(d.Experience) && d.Experience[i] >= '0' && d.Experience[i] <= '9' {
		i++
	}
	years, _ := strconv.Atoi(d.Experience[:i])
	return years
}
