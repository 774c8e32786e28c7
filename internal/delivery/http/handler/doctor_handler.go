package handler

import (
	"net/http"
	"strconv"

	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/usecase"
	"health-assessment-service/pkg/response"
	"health-assessment-service/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// GetAllDoctors lists the doctor directory, filtered by the query string
// @Summary List doctors
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param search query string false "Name or specialty"
// @Param specialty query string false "Exact specialty"
// @Param availability query string false "virtual or inPerson"
// @Param refresh query bool false "Reload the directory"
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	query := dto.DoctorListQuery{
		Search:       q.Get("search"),
		Specialty:    q.Get("specialty"),
		Availability: q.Get("availability"),
	}
	if raw := q.Get("refresh"); raw != "" {
		refresh, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid refresh flag", nil)
			return
		}
		query.Refresh = refresh
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	list, err := h.doctorUsecase.ListDoctors(r.Context(), sess, &query)
	if err != nil {
		writeError(w, err, "Failed to get doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", list.Doctors, &response.Meta{
		Total:    list.Total,
		Filtered: list.Filtered,
	})
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	specialties, err := h.doctorUsecase.GetSpecialties(r.Context(), sess)
	if err != nil {
		writeError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
