package consolesdk

import (
	"encoding/json"
	"fmt"
)

// Stable error codes returned by the console backend.
const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeUnknownRole          = "unknown_role"
	ErrorCodeUnknownPage          = "unknown_page"
	ErrorCodeInvalidCredentials   = "invalid_credentials"
	ErrorCodeInvalidOTP           = "invalid_otp"
	ErrorCodeNotAuthenticated     = "not_authenticated"
	ErrorCodePageNotPermitted     = "page_not_permitted"
	ErrorCodeNoRoleSelected       = "no_role_selected"
	ErrorCodeOTPChallengePending  = "otp_challenge_pending"
	ErrorCodeNoOTPChallenge       = "no_otp_challenge"
	ErrorCodeAlreadyAuthenticated = "already_authenticated"
	ErrorCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

// APIError is the decoded error envelope of a non-2xx response.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (HTTP %d)", e.Code, e.Description, e.StatusCode)
}

// HasCode reports whether err is an APIError with the given code.
func HasCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}

func parseErrorResponse(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = ErrorCodeServerError
		apiErr.Description = string(body)
	}
	return apiErr
}
