package entity

import "strings"

// Availability filter values.
const (
	AvailabilityAny      = ""
	AvailabilityVirtual  = "virtual"
	AvailabilityInPerson = "inPerson"
)

// DoctorFilter is the client-side filter over the in-memory doctor list.
// Empty fields match everything.
type DoctorFilter struct {
	Search       string // name or specialty, case-insensitive substring
	Specialty    string // exact match
	Availability string // "", "virtual" or "inPerson"
}

// Matches reports whether d passes every active criterion.
func (f DoctorFilter) Matches(d Doctor) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Specialty), q) {
			return false
		}
	}
	if f.Specialty != "" && d.Specialty != f.Specialty {
		return false
	}
	switch f.Availability {
	case AvailabilityVirtual:
		return d.Availability.Virtual
	case AvailabilityInPerson:
		return d.Availability.InPerson
	}
	return true
}

// FilterDoctors keeps catalog order. Applying the same filter twice yields
// the same list.
func FilterDoctors(doctors []Doctor, f DoctorFilter) []Doctor {
	out := make([]Doctor, 0, len(doctors))
	for _, d := range doctors {
		if f.Matches(d) {
			out = append(out, d.Clone())
		}
	}
	return out
}

// Specialties returns the distinct specialties in first-seen order.
func Specialties(doctors []Doctor) []string {
	seen := make(map[string]struct{}, len(doctors))
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		if _, ok := seen[d.Specialty]; ok {
			continue
		}
		seen[d.Specialty] = struct{}{}
		out = append(out, d.Specialty)
	}
	return out
}
