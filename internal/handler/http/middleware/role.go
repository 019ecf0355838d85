package middleware

import (
	"net/http"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/user"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRole gates a route group to exactly one role claim.
func RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrRoleMismatch)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, user.ErrRoleMismatch)
				return
			}

			if user.Role(roleStr) != role {
				response.HandleError(w, user.ErrRoleMismatch)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
