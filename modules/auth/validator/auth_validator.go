package validator

import (
	"net/mail"
	"time"

	"calendar-api/core/controller"
	"calendar-api/modules/auth/dto"
)

const minPasswordLength = 6

// ValidateRegisterRequest checks required fields on registration
func ValidateRegisterRequest(req *dto.RegisterRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{Success: true}

	if req.Name == "" {
		result.AddError("name", "name is required")
	}
	if req.Email == "" {
		result.AddError("email", "email is required")
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		result.AddError("email", "email is not a valid address")
	}
	if req.Password == "" {
		result.AddError("password", "password is required")
	} else if len(req.Password) < minPasswordLength {
		result.AddError("password", "password must be at least 6 characters")
	}
	if req.Birthdate == "" {
		result.AddError("birthdate", "birthdate is required")
	} else if _, err := time.Parse("2006-01-02", req.Birthdate); err != nil {
		result.AddError("birthdate", "birthdate must be YYYY-MM-DD")
	}

	return result
}

// ValidateLoginRequest checks required fields on login
func ValidateLoginRequest(req *dto.LoginRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{Success: true}

	if req.Email == "" {
		result.AddError("email", "email is required")
	}
	if req.Password == "" {
		result.AddError("password", "password is required")
	}

	return result
}
