package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
	"github.com/srad-secure/srad-backend-go/internal/pkg/jwt"
)

// AuthRequired admits console sessions only: a verified, unrevoked access
// token that names an operator and a known role. Run jwtauth.Verifier first.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if raw := jwtauth.TokenFromHeader(r); raw != "" && jwtService.IsTokenRevoked(raw) {
				response.Unauthorized(w, "Session ended")
				return
			}

			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if operatorID, _ := claims["operator_id"].(string); operatorID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if role, _ := claims["role"].(string); !auth.Role(role).Valid() {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
