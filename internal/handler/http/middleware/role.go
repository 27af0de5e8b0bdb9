package middleware

import (
	"net/http"
	"slices"

	"github.com/go-chi/jwtauth/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

// RequireRoles admits only sessions whose role claim is one of roles.
func RequireRoles(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			role, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrForbidden)
				return
			}

			if !slices.Contains(roles, auth.Role(role)) {
				response.HandleError(w, auth.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
