package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vyaapaarai/console/internal/console/domain"
	"github.com/vyaapaarai/console/internal/console/service"
	"github.com/vyaapaarai/console/pkg/httpx"
	"github.com/vyaapaarai/console/pkg/slogx"
)

// SessionHandler exposes the login state machine over HTTP.
type SessionHandler struct {
	Sessions *service.Manager
	Tokens   *service.TokenService
}

// stateResponse mirrors the session for the view layer. Stage is serialized
// by name so the renderer can switch screens on it.
type stateResponse struct {
	Stage              string           `json:"stage"`
	Role               domain.Role      `json:"role,omitempty"`
	CurrentPage        domain.Page      `json:"current_page"`
	Pages              []domain.Page    `json:"pages,omitempty"`
	User               *domain.Identity `json:"user,omitempty"`
	Notifications      []string         `json:"notifications,omitempty"`
	InactivityDeadline *time.Time       `json:"inactivity_deadline,omitempty"`
	LogoutNotice       string           `json:"logout_notice,omitempty"`
}

func newStateResponse(sess domain.Session, notice string) stateResponse {
	resp := stateResponse{
		Stage:              sess.Stage.String(),
		Role:               sess.Role,
		CurrentPage:        sess.CurrentPage,
		User:               sess.User,
		Notifications:      sess.Notifications,
		InactivityDeadline: sess.InactivityDeadline,
		LogoutNotice:       notice,
	}
	if sess.Stage == domain.StageVerified {
		resp.Pages = sess.Role.Pages()
	}
	return resp
}

type selectRoleRequest struct {
	Role string `json:"role"`
}

// HandleSelectRole sets the pending role for the login flow.
//
// POST /v1/session/role
func (h *SessionHandler) HandleSelectRole(w http.ResponseWriter, r *http.Request) {
	var req selectRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Malformed JSON body.")
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := h.Sessions.SelectRole(role); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newStateResponse(h.Sessions.Snapshot(), ""))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	OTPRequired bool   `json:"otp_required"`
	Message     string `json:"message"`
}

// HandleLogin checks credentials for the selected role. Success always leads
// to the OTP step, never straight to a token.
//
// POST /v1/session/login
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Malformed JSON body.")
		return
	}

	if err := h.Sessions.SubmitCredentials(r.Context(), req.Email, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		OTPRequired: true,
		Message:     "Enter the verification code to finish signing in.",
	})
}

type otpRequest struct {
	Code string `json:"code"`
}

type otpResponse struct {
	Token string        `json:"token"`
	State stateResponse `json:"state"`
}

// HandleOTP completes the second factor and mints the bearer token.
//
// POST /v1/session/otp
func (h *SessionHandler) HandleOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Malformed JSON body.")
		return
	}

	sess, err := h.Sessions.SubmitOTP(r.Context(), req.Code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.Tokens.Issue(sess)
	if err != nil {
		slogx.FromContext(r.Context()).Error("token issue failed", "error", err)
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, otpResponse{
		Token: token,
		State: newStateResponse(sess, ""),
	})
}

// HandleCancelOTP abandons the pending challenge and returns to the login
// form for the already-selected role.
//
// POST /v1/session/otp/cancel
func (h *SessionHandler) HandleCancelOTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.CancelOTP(); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newStateResponse(h.Sessions.Snapshot(), ""))
}

// HandleLogout clears the session from any stage. Intentionally unauthenticated
// so a client whose token already died can still reset cleanly.
//
// POST /v1/session/logout
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout("user")
	httpx.WriteJSON(w, http.StatusOK, newStateResponse(h.Sessions.Snapshot(), ""))
}

// HandleState reports the current stage so the view layer can pick a screen.
// It also surfaces the inactivity-timeout notice so the renderer can show why
// the user landed back on the role picker.
//
// GET /v1/session
func (h *SessionHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, newStateResponse(h.Sessions.Snapshot(), logoutNoticeText(h.Sessions.LogoutNotice())))
}

// logoutNoticeText maps a recorded logout reason to the user-visible banner.
// User-initiated logouts need no explanation.
func logoutNoticeText(reason string) string {
	if reason == service.LogoutReasonInactivity {
		return "You were signed out after 30 minutes of inactivity."
	}
	return ""
}

type activityResponse struct {
	InactivityDeadline time.Time `json:"inactivity_deadline"`
}

// HandleActivity records a qualifying activity signal (pointer move, key
// press, scroll, click relayed by the client) and reschedules the inactivity
// deadline.
//
// POST /v1/session/activity
func (h *SessionHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	deadline, err := h.Sessions.Touch()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, activityResponse{InactivityDeadline: deadline})
}

type navigateRequest struct {
	Page string `json:"page"`
}

// HandleNavigate switches the current page within the role's permitted set.
//
// POST /v1/session/navigate
func (h *SessionHandler) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Malformed JSON body.")
		return
	}

	page, err := domain.ParsePage(req.Page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := h.Sessions.NavigateTo(page); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newStateResponse(h.Sessions.Snapshot(), ""))
}
