package converter

import (
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/domain/entity"
	"health-assessment-service/internal/service"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		FullName:    user.FullName(),
		Phone:       user.Phone,
		DateOfBirth: user.DateOfBirth,
	}
}

func LoginRequestToCredentials(req *dto.LoginRequest) service.Credentials {
	return service.Credentials{
		Email:    req.Email,
		Password: req.Password,
	}
}

func RegisterRequestToRegistration(req *dto.RegisterRequest) service.Registration {
	return service.Registration{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}
}

func UpdateProfileRequestToPatch(req *dto.UpdateProfileRequest) entity.UserPatch {
	return entity.UserPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
	}
}
