package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/fixtures"
	"github.com/srad-secure/srad-backend-go/internal/pkg/jwt"
	"github.com/srad-secure/srad-backend-go/internal/pkg/sse"
	"github.com/srad-secure/srad-backend-go/internal/repository/memory"
	auditService "github.com/srad-secure/srad-backend-go/internal/service/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-secret-key-for-jwt"
	testPassword = "srad-demo"
)

func newTestAuthService(t *testing.T) (auth.AuthService, jwt.Service, audit.AuditService) {
	t.Helper()
	dir, err := fixtures.NewOperatorDirectory(testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := jwt.NewJWTService(testSecret, "1h")
	audits := auditService.NewAuditService(memory.NewAuditRepository(), sse.NewHub())
	return NewAuthService(dir, jwtService, audits), jwtService, audits
}

func TestLogin_Success(t *testing.T) {
	svc, jwtService, audits := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{CPF: "111", Password: testPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "SVP Regional Alpha", resp.Operator.Name)
	assert.Equal(t, auth.RoleSupervisor, resp.Operator.Role)

	token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	name, _ := token.Get("name")
	assert.Equal(t, "SVP Regional Alpha", name)

	entries, err := audits.List(ctx, audit.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionLoginSuccess, entries[0].Action)
	assert.Equal(t, audit.EntitySession, entries[0].EntityType)
	assert.Equal(t, "u2", entries[0].EntityID)
	assert.Equal(t, "SVP Regional Alpha", entries[0].ActorName)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, audits := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, auth.LoginRequest{CPF: "999", Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{CPF: "000", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	entries, err := audits.List(ctx, audit.EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStreamToken(t *testing.T) {
	svc, jwtService, _ := newTestAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{CPF: "444", Password: testPassword})
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(jwtService.JWTAuth(), login.AccessToken)
	require.NoError(t, err)
	sessionCtx := jwtauth.NewContext(ctx, token, nil)

	resp, err := svc.StreamToken(sessionCtx)
	require.NoError(t, err)
	assert.Equal(t, 300, resp.ExpiresIn)

	id, err := jwtService.ValidateStreamToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u5", id)
}

func TestStreamToken_WithoutSession(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.StreamToken(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
