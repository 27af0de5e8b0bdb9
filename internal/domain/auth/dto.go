package auth

import (
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OperatorResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Role         Role    `json:"role"`
	Registration *string `json:"registration,omitempty"`
}

type LoginResponse struct {
	AccessToken          string           `json:"access_token"`
	AccessTokenExpiresAt int64            `json:"access_token_expires_at"`
	Operator             OperatorResponse `json:"operator"`
}

type StreamTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
