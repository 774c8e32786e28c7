package dto

// UpdateProfileRequest carries profile edits. Absent fields keep their value.
type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName" validate:"omitempty,max=100"`
	LastName    *string `json:"lastName" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"` // Format: YYYY-MM-DD
}
