package dto

import "time"

type DoctorListQuery struct {
	Search       string `json:"search" validate:"max=100"`
	Specialty    string `json:"specialty" validate:"max=100"`
	Availability string `json:"availability" validate:"omitempty,oneof=virtual inPerson"`
	Refresh      bool   `json:"refresh"`
}

type DoctorResponse struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Specialty       string               `json:"specialty"`
	Rating          float64              `json:"rating"`
	Experience      int                  `json:"experience"`
	ConsultationFee float64              `json:"consultationFee"`
	FeeLabel        string               `json:"feeLabel"`
	Availability    AvailabilityResponse `json:"availability"`
	Image           string               `json:"image"`
	Location        *string              `json:"location,omitempty"`
	NextAvailable   time.Time            `json:"nextAvailable"`
}

type AvailabilityResponse struct {
	Virtual  bool `json:"virtual"`
	InPerson bool `json:"inPerson"`
}
