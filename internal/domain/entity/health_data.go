package entity

import "strings"

type BloodPressure struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

type MedicalHistory struct {
	Conditions  []string `json:"conditions"`
	Allergies   []string `json:"allergies"`
	Surgeries   []string `json:"surgeries"`
	Medications []string `json:"medications"`
}

func (m MedicalHistory) Clone() MedicalHistory {
	return MedicalHistory{
		Conditions:  cloneStrings(m.Conditions),
		Allergies:   cloneStrings(m.Allergies),
		Surgeries:   cloneStrings(m.Surgeries),
		Medications: cloneStrings(m.Medications),
	}
}

// HealthData is a finalized intake.
type HealthData struct {
	Age            int            `json:"age"`
	Symptoms       []string       `json:"symptoms"`
	BloodPressure  BloodPressure  `json:"bloodPressure"`
	Weight         float64        `json:"weight"`
	Height         float64        `json:"height"`
	MedicalHistory MedicalHistory `json:"medicalHistory"`
}

// PartialHealthData is the incrementally filled intake kept in the store.
// A nil field is absent; an empty, non-nil slice is present and empty.
type PartialHealthData struct {
	Age            *int            `json:"age,omitempty"`
	Symptoms       []string        `json:"symptoms,omitempty"`
	BloodPressure  *BloodPressure  `json:"bloodPressure,omitempty"`
	Weight         *float64        `json:"weight,omitempty"`
	Height         *float64        `json:"height,omitempty"`
	MedicalHistory *MedicalHistory `json:"medicalHistory,omitempty"`
}

// Merge overlays the present fields of patch on p (last write wins) and
// returns a new value. Neither input is modified.
func (p PartialHealthData) Merge(patch PartialHealthData) PartialHealthData {
	out := p.Clone()
	if patch.Age != nil {
		v := *patch.Age
		out.Age = &v
	}
	if patch.Symptoms != nil {
		out.Symptoms = UniqueStrings(patch.Symptoms)
	}
	if patch.BloodPressure != nil {
		v := *patch.BloodPressure
		out.BloodPressure = &v
	}
	if patch.Weight != nil {
		v := *patch.Weight
		out.Weight = &v
	}
	if patch.Height != nil {
		v := *patch.Height
		out.Height = &v
	}
	if patch.MedicalHistory != nil {
		mh := patch.MedicalHistory.Clone()
		mh.Conditions = UniqueStrings(mh.Conditions)
		out.MedicalHistory = &mh
	}
	return out
}

// Clone deep-copies every present field.
func (p PartialHealthData) Clone() PartialHealthData {
	var out PartialHealthData
	if p.Age != nil {
		v := *p.Age
		out.Age = &v
	}
	out.Symptoms = cloneStrings(p.Symptoms)
	if p.BloodPressure != nil {
		v := *p.BloodPressure
		out.BloodPressure = &v
	}
	if p.Weight != nil {
		v := *p.Weight
		out.Weight = &v
	}
	if p.Height != nil {
		v := *p.Height
		out.Height = &v
	}
	if p.MedicalHistory != nil {
		mh := p.MedicalHistory.Clone()
		out.MedicalHistory = &mh
	}
	return out
}

// IsEmpty reports whether no field has been provided yet.
func (p PartialHealthData) IsEmpty() bool {
	return p.Age == nil && p.Symptoms == nil && p.BloodPressure == nil &&
		p.Weight == nil && p.Height == nil && p.MedicalHistory == nil
}

// Complete fills absent fields with zero values.
func (p PartialHealthData) Complete() HealthData {
	var hd HealthData
	if p.Age != nil {
		hd.Age = *p.Age
	}
	hd.Symptoms = cloneStrings(p.Symptoms)
	if hd.Symptoms == nil {
		hd.Symptoms = []string{}
	}
	if p.BloodPressure != nil {
		hd.BloodPressure = *p.BloodPressure
	}
	if p.Weight != nil {
		hd.Weight = *p.Weight
	}
	if p.Height != nil {
		hd.Height = *p.Height
	}
	if p.MedicalHistory != nil {
		hd.MedicalHistory = p.MedicalHistory.Clone()
	}
	return hd
}

// UniqueStrings drops duplicates keeping the first occurrence order.
func UniqueStrings(in []string) []string {
	if in == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// SplitList turns "a, b,,c " into [a b c].
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
