package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/handler/http/response"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/jwt"
)

type sessionCtxKey struct{}

// WithSession stores the authenticated session on ctx.
func WithSession(ctx context.Context, s session.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext returns the session stored by SessionRequired.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(session.Session)
	return s, ok
}

// TokenFromQuery reads the bearer token from the "token" query parameter.
// EventSource clients cannot set headers.
func TokenFromQuery(r *http.Request) string {
	return r.URL.Query().Get("token")
}

// SessionRequired accepts a verified token only while it names the current, unexpired session.
func SessionRequired(sessions session.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Please log in to continue")
				return
			}

			sc, err := jwt.ParseSessionClaims(claims)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			current, err := sessions.RequireValid(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if current.ID != sc.SessionID {
				slog.Info("token refers to a replaced session", "session_id", sc.SessionID)
				response.HandleError(w, session.ErrUnauthenticated)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), current)))
		}
		return http.HandlerFunc(hfn)
	}
}
