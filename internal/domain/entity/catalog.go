package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommonSymptoms are offered as quick picks in the intake.
var CommonSymptoms = []string{
	"Headache", "Fever", "Cough", "Fatigue", "Nausea", "Dizziness",
	"Chest Pain", "Shortness of Breath", "Abdominal Pain", "Joint Pain",
	"Sore Throat", "Muscle Aches", "Back Pain", "Insomnia", "Anxiety",
}

// MedicalConditions are the selectable pre-existing conditions.
var MedicalConditions = []string{
	"Diabetes", "Hypertension", "Heart Disease", "Asthma", "Depression",
	"Anxiety Disorder", "Arthritis", "High Cholesterol", "Thyroid Disease",
}

// DoctorCatalog returns a fresh copy of the built-in doctor directory.
func DoctorCatalog() []Doctor {
	loc := func(s string) *string { return &s }
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	return []Doctor{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialty:       "Internal Medicine",
			Rating:          4.8,
			Experience:      12,
			ConsultationFee: decimal.NewFromInt(150),
			Availability:    Availability{Virtual: true, InPerson: true},
			Image:           "https://placehold.co/100x100/3B82F6/FFFFFF?text=SJ",
			Location:        loc("Downtown Medical Center"),
			NextAvailable:   at("2024-01-15T09:00:00Z"),
			SortOrder:       1,
		},
		{
			ID:              "2",
			Name:            "Dr. Michael Chen",
			Specialty:       "Cardiology",
			Rating:          4.9,
			Experience:      15,
			ConsultationFee: decimal.NewFromInt(200),
			Availability:    Availability{Virtual: true, InPerson: false},
			Image:           "https://placehold.co/100x100/10B981/FFFFFF?text=MC",
			Location:        loc("Heart Care Clinic"),
			NextAvailable:   at("2024-01-16T14:30:00Z"),
			SortOrder:       2,
		},
		{
			ID:              "3",
			Name:            "Dr. Emily Rodriguez",
			Specialty:       "Family Medicine",
			Rating:          4.7,
			Experience:      8,
			ConsultationFee: decimal.NewFromInt(120),
			Availability:    Availability{Virtual: false, InPerson: true},
			Image:           "https://placehold.co/100x100/F59E0B/FFFFFF?text=ER",
			Location:        loc("Community Health Center"),
			NextAvailable:   at("2024-01-15T11:00:00Z"),
			SortOrder:       3,
		},
		{
			ID:              "4",
			Name:            "Dr. James Wilson",
			Specialty:       "Pulmonology",
			Rating:          4.6,
			Experience:      10,
			ConsultationFee: decimal.NewFromInt(180),
			Availability:    Availability{Virtual: true, InPerson: true},
			Image:           "https://placehold.co/100x100/8B5CF6/FFFFFF?text=JW",
			Location:        loc("Respiratory Health Institute"),
			NextAvailable:   at("2024-01-17T10:15:00Z"),
			SortOrder:       4,
		},
	}
}

// OnboardingStep is one slide of the first-run introduction.
type OnboardingStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var OnboardingSteps = []OnboardingStep{
	{
		Title:       "AI-Powered Health Analysis",
		Description: "Get accurate health predictions based on your symptoms and medical history using advanced AI technology.",
	},
	{
		Title:       "Comprehensive Reports",
		Description: "Receive detailed health reports with recommended tests and personalized health insights.",
	},
	{
		Title:       "Find the Right Doctor",
		Description: "Connect with qualified healthcare professionals near you for virtual or in-person consultations.",
	},
	{
		Title:       "Secure & Private",
		Description: "Your health data is encrypted and protected with the highest security standards.",
	},
}
