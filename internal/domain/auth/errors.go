package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid cpf or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("role not allowed for this operation")
)
