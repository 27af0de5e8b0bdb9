package auth

import "context"

type AuthService interface {
	// Login looks up a console operator and issues a session token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// StreamToken issues a short-lived token for the live operations feed.
	StreamToken(ctx context.Context) (StreamTokenResponse, error)
}
