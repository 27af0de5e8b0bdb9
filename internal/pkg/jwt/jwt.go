package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
)

// StreamTokenTTL bounds tokens handed to the live operations feed
const StreamTokenTTL = 5 * time.Minute

type Service interface {
	GenerateAccessToken(operatorID string, name string, role auth.Role) (token string, expiresAt int64, err error)
	GenerateStreamToken(operatorID string, name string, role auth.Role) (token string, expiresIn int, err error)
	ValidateStreamToken(tokenString string) (operatorID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

// GenerateAccessToken issues a console session token. name and role are what
// audit entries record as the actor.
func (j *JWTService) GenerateAccessToken(operatorID string, name string, role auth.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"operator_id": operatorID,
		"name":        name,
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// GenerateStreamToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateStreamToken(operatorID string, name string, role auth.Role) (token string, expiresIn int, err error) {
	expiresIn = int(StreamTokenTTL.Seconds())
	expiresAt := time.Now().Add(StreamTokenTTL).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"operator_id": operatorID,
		"name":        name,
		"role":        string(role),
		"type":        "sse",
		"exp":         expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateStreamToken validates an SSE token and returns the operator ID
func (j *JWTService) ValidateStreamToken(tokenString string) (operatorID string, err error) {
	if j.IsTokenRevoked(tokenString) {
		return "", jwt.ErrInvalidJWT()
	}

	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "sse" {
		return "", jwt.ErrInvalidJWT()
	}

	idVal, ok := token.Get("operator_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	operatorID, ok = idVal.(string)
	if !ok || operatorID == "" {
		return "", jwt.ErrInvalidJWT()
	}

	return operatorID, nil
}
