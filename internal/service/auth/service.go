package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	auth.OperatorDirectory
	jwt.Service
	audit audit.AuditService
}

func NewAuthService(directory auth.OperatorDirectory, jwtService jwt.Service, auditService audit.AuditService) auth.AuthService {
	return &AuthServiceImpl{
		OperatorDirectory: directory,
		Service:           jwtService,
		audit:             auditService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	operator, ok := a.OperatorDirectory.FindByCPF(req.CPF)
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(operator.ID, operator.Name, operator.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	actor := audit.Actor{Name: operator.Name, Role: operator.Role}
	if _, err := a.audit.RecordAs(ctx, actor, audit.RecordRequest{
		Action:     audit.ActionLoginSuccess,
		EntityType: audit.EntitySession,
		EntityID:   operator.ID,
	}); err != nil {
		return auth.LoginResponse{}, err
	}

	slog.Info("Operator logged in", "operator_id", operator.ID, "role", operator.Role)

	return auth.LoginResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
		Operator: auth.OperatorResponse{
			ID:           operator.ID,
			Name:         operator.Name,
			Role:         operator.Role,
			Registration: operator.Registration,
		},
	}, nil
}

// StreamToken implements auth.AuthService.
func (a *AuthServiceImpl) StreamToken(ctx context.Context) (auth.StreamTokenResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.StreamTokenResponse{}, auth.ErrInvalidToken
	}

	operatorID, _ := claims["operator_id"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if operatorID == "" || !auth.Role(role).Valid() {
		return auth.StreamTokenResponse{}, auth.ErrInvalidToken
	}

	token, expiresIn, err := a.Service.GenerateStreamToken(operatorID, name, auth.Role(role))
	if err != nil {
		return auth.StreamTokenResponse{}, fmt.Errorf("failed to create stream token: %w", err)
	}
	return auth.StreamTokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}
