package converter

import (
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(d entity.Doctor) dto.DoctorResponse {
	var location *string
	if d.Location != nil {
		loc := *d.Location
		location = &loc
	}

	return dto.DoctorResponse{
		ID:              d.ID,
		Name:            d.Name,
		Specialty:       d.Specialty,
		Rating:          d.Rating,
		Experience:      d.Experience,
		ConsultationFee: d.ConsultationFee.InexactFloat64(),
		FeeLabel:        "$" + d.ConsultationFee.String(),
		Availability: dto.AvailabilityResponse{
			Virtual:  d.Availability.Virtual,
			InPerson: d.Availability.InPerson,
		},
		Image:         d.Image,
		Location:      location,
		NextAvailable: d.NextAvailable,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, d := range doctors {
		responses[i] = DoctorToResponse(d)
	}
	return responses
}

func DoctorListQueryToFilter(q *dto.DoctorListQuery) entity.DoctorFilter {
	return entity.DoctorFilter{
		Search:       q.Search,
		Specialty:    q.Specialty,
		Availability: q.Availability,
	}
}
