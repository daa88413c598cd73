package middleware

import (
	"net/http"

	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/handler/http/response"
)

// RequireRole must run after SessionRequired.
func RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := SessionFromContext(r.Context())
			if !ok {
				response.HandleError(w, session.ErrUnauthenticated)
				return
			}
			if s.Role != role {
				response.HandleError(w, session.ErrWrongRole)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)(next)
}

func RequireEmployee(next http.Handler) http.Handler {
	return RequireRole(user.RoleEmployee)(next)
}
