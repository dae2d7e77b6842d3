// Package http is the view-renderer boundary: it exposes the session state
// machine and the dashboard content as JSON endpoints. Handlers never mutate
// session state themselves; every transition goes through the service layer.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vyaapaarai/console/internal/console/service"
	"github.com/vyaapaarai/console/internal/console/store"
	"github.com/vyaapaarai/console/pkg/httpx"
	"github.com/vyaapaarai/console/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Sessions  *service.Manager
	Tokens    *service.TokenService
	Dashboard *service.DashboardService
	Assistant *service.Assistant
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerPages()
	r.registerAssistant()
	r.registerSystem()
}

func (r *Router) registerSession() {
	h := &SessionHandler{Sessions: r.Sessions, Tokens: r.Tokens}

	// Credential and OTP submission get the strict limit (brute force).
	r.Mux.Handle("POST /v1/session/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		))
	r.Mux.Handle("POST /v1/session/otp",
		httpx.Chain(http.HandlerFunc(h.HandleOTP),
			httpx.RateLimitByIP(httpx.StrictLimit),
		))

	r.Mux.Handle("POST /v1/session/role",
		httpx.Chain(http.HandlerFunc(h.HandleSelectRole),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		))
	r.Mux.Handle("POST /v1/session/otp/cancel",
		httpx.Chain(http.HandlerFunc(h.HandleCancelOTP),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		))
	r.Mux.Handle("POST /v1/session/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		))
	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleState),
			httpx.RateLimitByIP(httpx.LenientLimit),
		))

	r.Mux.Handle("POST /v1/session/activity",
		httpx.Chain(http.HandlerFunc(h.HandleActivity),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			r.requireSession(),
		))
	r.Mux.Handle("POST /v1/session/navigate",
		httpx.Chain(http.HandlerFunc(h.HandleNavigate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			r.requireSession(),
		))
}

func (r *Router) registerPages() {
	h := &PagesHandler{Dashboard: r.Dashboard}

	r.Mux.Handle("GET /v1/pages/{page}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
			r.requireSession(),
		))
	r.Mux.Handle("POST /v1/pages/settings",
		httpx.Chain(http.HandlerFunc(h.HandleSettingsSave),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			r.requireSession(),
		))
}

func (r *Router) registerAssistant() {
	h := &AssistantHandler{Assistant: r.Assistant}

	r.Mux.Handle("POST /v1/assistant/chat",
		httpx.Chain(http.HandlerFunc(h.HandleChat),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			r.requireSession(),
		))
}
