package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/vyaapaarai/console/internal/console/domain"
	"github.com/vyaapaarai/console/pkg/httpx"
)

type contextKey string

const sessionContextKey contextKey = "console.session"

// requireSession authenticates the bearer token and ties it back to the live
// session. A structurally valid token whose session has since been logged out
// (explicitly or by inactivity) is rejected, so tokens die with the session.
func (r *Router) requireSession() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			raw, ok := bearerToken(req)
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, "not_authenticated", "Missing bearer token.")
				return
			}

			tok, err := r.Tokens.Verify(raw)
			if err != nil {
				writeServiceError(w, req, err)
				return
			}

			sess, err := r.Sessions.Authenticate(tok.SessionID)
			if err != nil {
				writeServiceError(w, req, err)
				return
			}

			ctx := context.WithValue(req.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

func bearerToken(req *http.Request) (string, bool) {
	header := req.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// sessionFromContext returns the session snapshot placed by requireSession.
func sessionFromContext(ctx context.Context) (domain.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(domain.Session)
	return sess, ok
}
