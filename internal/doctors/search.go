package doctors

import (
	"sort"
	"strings"
)

// Query narrows and orders a directory listing. Zero-valued fields are
// no-ops, so an empty Query returns the list unchanged in seed order.
type Query struct {
	// Search matches name, specialty or about, case-insensitive substring.
	Search string
	// Specialty is an exact (case-insensitive) specialty filter.
	Specialty string
	// Location is a clinic-address substring filter.
	Location string
	// Sort is one of rating, experience, fee, name. Unknown values keep
	// the incoming order.
	Sort string
}

// Apply filters and sorts a listing. The input slice is not modified.
func (q Query) Apply(list []*Doctor) []*Doctor {
	out := make([]*Doctor, 0, len(list))
	for _, d := range list {
		if q.matches(d) {
			out = append(out, d)
		}
	}

	switch q.Sort {
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case "experience":
		sort.SliceStable(out, func(i, j int) bool { return out[i].ExperienceYears() > out[j].ExperienceYears() })
	case "fee":
		sort.SliceStable(out, func(i, j int) bool { return out[i].ConsultationFee < out[j].ConsultationFee })
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

func (q Query) matches(d *Doctor) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Specialty), term) &&
			!strings.Contains(strings.ToLower(d.About), term) {
			return false
		}
	}
	if q.Specialty != "" && !strings.EqualFold(d.Specialty, q.Specialty) {
		return false
	}
	if q.Location != "" &&
		!strings.Contains(strings.ToLower(d.ClinicAddress), strings.ToLower(q.Location)) {
		return false
	}
	return true
}
