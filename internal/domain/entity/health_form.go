package entity

import "strings"

// Intake steps.
const (
	HealthFormStepVitals   = 1
	HealthFormStepSymptoms = 2
	HealthFormStepHistory  = 3
	HealthFormStepReview   = 4

	HealthFormTotalSteps = HealthFormStepReview
)

// quickPickLimit caps the symptom shortcuts shown on the symptoms step.
const quickPickLimit = 8

// HealthForm is the draft behind the 4-step intake wizard. It is local to a
// session and only reaches the store on submission.
type HealthForm struct {
	Step           int            `json:"step"`
	Age            *int           `json:"age,omitempty"`
	Weight         *float64       `json:"weight,omitempty"`
	Height         *float64       `json:"height,omitempty"`
	BloodPressure  *BloodPressure `json:"bloodPressure,omitempty"`
	Symptoms       []string       `json:"symptoms"`
	MedicalHistory MedicalHistory `json:"medicalHistory"`
}

// NewHealthForm starts at step 1, prefilled with whatever the store already holds.
func NewHealthForm(prefill PartialHealthData) *HealthForm {
	p := prefill.Clone()
	f := &HealthForm{
		Step:          HealthFormStepVitals,
		Age:           p.Age,
		Weight:        p.Weight,
		Height:        p.Height,
		BloodPressure: p.BloodPressure,
		Symptoms:      UniqueStrings(p.Symptoms),
	}
	if f.Symptoms == nil {
		f.Symptoms = []string{}
	}
	if p.MedicalHistory != nil {
		f.MedicalHistory = *p.MedicalHistory
	}
	f.MedicalHistory = normalizeHistory(f.MedicalHistory)
	return f
}

// Next advances one step. On the last step it reports that the form
// should be submitted instead.
func (f *HealthForm) Next() (submit bool) {
	if f.Step < HealthFormTotalSteps {
		f.Step++
		return false
	}
	return true
}

// Back never goes before step 1.
func (f *HealthForm) Back() {
	if f.Step > HealthFormStepVitals {
		f.Step--
	}
}

func (f *HealthForm) IsLastStep() bool {
	return f.Step == HealthFormTotalSteps
}

// Progress is the completed share of the wizard in percent.
func (f *HealthForm) Progress() int {
	return f.Step * 100 / HealthFormTotalSteps
}

// AddSymptom appends a symptom unless it is blank or already present.
func (f *HealthForm) AddSymptom(symptom string) bool {
	symptom = strings.TrimSpace(symptom)
	if symptom == "" || containsString(f.Symptoms, symptom) {
		return false
	}
	f.Symptoms = append(f.Symptoms, symptom)
	return true
}

func (f *HealthForm) RemoveSymptom(symptom string) bool {
	for i, s := range f.Symptoms {
		if s == symptom {
			f.Symptoms = append(f.Symptoms[:i:i], f.Symptoms[i+1:]...)
			return true
		}
	}
	return false
}

// AddCondition appends a pre-existing condition unless already present.
func (f *HealthForm) AddCondition(condition string) bool {
	condition = strings.TrimSpace(condition)
	if condition == "" || containsString(f.MedicalHistory.Conditions, condition) {
		return false
	}
	f.MedicalHistory.Conditions = append(f.MedicalHistory.Conditions, condition)
	return true
}

func (f *HealthForm) SetAllergies(raw string) {
	f.MedicalHistory.Allergies = SplitList(raw)
}

func (f *HealthForm) SetMedications(raw string) {
	f.MedicalHistory.Medications = SplitList(raw)
}

// SuggestSymptoms matches the common symptoms against query, skipping the
// ones already chosen. An empty query yields no suggestions.
func (f *HealthForm) SuggestSymptoms(query string) []string {
	out := []string{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}
	for _, s := range CommonSymptoms {
		if strings.Contains(strings.ToLower(s), q) && !containsString(f.Symptoms, s) {
			out = append(out, s)
		}
	}
	return out
}

// QuickPicks are the first common symptoms not chosen yet.
func (f *HealthForm) QuickPicks() []string {
	out := []string{}
	for _, s := range CommonSymptoms {
		if len(out) == quickPickLimit {
			break
		}
		if !containsString(f.Symptoms, s) {
			out = append(out, s)
		}
	}
	return out
}

// AvailableConditions lists the selectable conditions not chosen yet.
func (f *HealthForm) AvailableConditions() []string {
	out := []string{}
	for _, c := range MedicalConditions {
		if !containsString(f.MedicalHistory.Conditions, c) {
			out = append(out, c)
		}
	}
	return out
}

// Payload is what gets merged into the store on submission.
func (f *HealthForm) Payload() PartialHealthData {
	mh := normalizeHistory(f.MedicalHistory.Clone())
	p := PartialHealthData{
		Symptoms:       UniqueStrings(f.Symptoms),
		MedicalHistory: &mh,
	}
	if p.Symptoms == nil {
		p.Symptoms = []string{}
	}
	if f.Age != nil {
		v := *f.Age
		p.Age = &v
	}
	if f.Weight != nil {
		v := *f.Weight
		p.Weight = &v
	}
	if f.Height != nil {
		v := *f.Height
		p.Height = &v
	}
	if f.BloodPressure != nil {
		v := *f.BloodPressure
		p.BloodPressure = &v
	}
	return p
}

// Clone deep-copies the draft.
func (f *HealthForm) Clone() *HealthForm {
	c := *f
	c.Symptoms = cloneStrings(f.Symptoms)
	c.MedicalHistory = f.MedicalHistory.Clone()
	if f.Age != nil {
		v := *f.Age
		c.Age = &v
	}
	if f.Weight != nil {
		v := *f.Weight
		c.Weight = &v
	}
	if f.Height != nil {
		v := *f.Height
		c.Height = &v
	}
	if f.BloodPressure != nil {
		v := *f.BloodPressure
		c.BloodPressure = &v
	}
	return &c
}

func normalizeHistory(mh MedicalHistory) MedicalHistory {
	mh.Conditions = UniqueStrings(mh.Conditions)
	for _, list := range []*[]string{&mh.Conditions, &mh.Allergies, &mh.Surgeries, &mh.Medications} {
		if *list == nil {
			*list = []string{}
		}
	}
	return mh
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

