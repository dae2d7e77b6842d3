package http

import (
	"errors"
	"net/http"

	"github.com/vyaapaarai/console/internal/console/domain"
	"github.com/vyaapaarai/console/internal/console/service"
	"github.com/vyaapaarai/console/pkg/httpx"
	"github.com/vyaapaarai/console/pkg/slogx"
)

// writeServiceError maps service and domain sentinels onto HTTP status codes
// and stable error codes. Descriptions are the user-visible inline messages.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownRole):
		httpx.WriteError(w, http.StatusBadRequest, "unknown_role", "Role must be admin or merchant.")
	case errors.Is(err, domain.ErrUnknownPage):
		httpx.WriteError(w, http.StatusBadRequest, "unknown_page", "No such dashboard page.")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password.")
	case errors.Is(err, service.ErrInvalidOTP):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_otp", "That code is not correct. Try again.")
	case errors.Is(err, service.ErrNotAuthenticated), errors.Is(err, service.ErrInvalidToken):
		httpx.WriteError(w, http.StatusUnauthorized, "not_authenticated", "Sign in to continue.")
	case errors.Is(err, service.ErrPageNotPermitted):
		httpx.WriteError(w, http.StatusForbidden, "page_not_permitted", "Your role does not include this page.")
	case errors.Is(err, service.ErrNoRoleSelected):
		httpx.WriteError(w, http.StatusConflict, "no_role_selected", "Select a role before signing in.")
	case errors.Is(err, service.ErrChallengePending):
		httpx.WriteError(w, http.StatusConflict, "otp_challenge_pending", "Finish or cancel the verification code step first.")
	case errors.Is(err, service.ErrNoChallengePending):
		httpx.WriteError(w, http.StatusConflict, "no_otp_challenge", "There is no verification code to submit.")
	case errors.Is(err, service.ErrAlreadyAuthenticated):
		httpx.WriteError(w, http.StatusConflict, "already_authenticated", "Already signed in. Log out first.")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err, "path", r.URL.Path)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Something went wrong. Try again.")
	}
}
