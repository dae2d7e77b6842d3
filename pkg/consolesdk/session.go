package consolesdk

import (
	"context"
	"net/http"
	"net/url"
)

// SelectRole sets the pending role for the login flow ("admin" or "merchant").
func (c *Client) SelectRole(ctx context.Context, role string) (*State, error) {
	var state State
	err := c.doJSON(ctx, http.MethodPost, "/v1/session/role", "",
		map[string]string{"role": role}, &state)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Login submits credentials for the selected role. Success always leads to
// the OTP step.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.doJSON(ctx, http.MethodPost, "/v1/session/login", "",
		map[string]string{"email": email, "password": password}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitOTP completes the second factor and returns an authenticated Session.
func (c *Client) SubmitOTP(ctx context.Context, code string) (*Session, error) {
	var result otpResult
	err := c.doJSON(ctx, http.MethodPost, "/v1/session/otp", "",
		map[string]string{"code": code}, &result)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: result.Token, state: result.State}, nil
}

// CancelOTP abandons the pending challenge, returning to the login form.
func (c *Client) CancelOTP(ctx context.Context) (*State, error) {
	var state State
	if err := c.doJSON(ctx, http.MethodPost, "/v1/session/otp/cancel", "", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// State fetches the current session state.
func (c *Client) State(ctx context.Context) (*State, error) {
	var state State
	if err := c.doJSON(ctx, http.MethodGet, "/v1/session", "", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Logout clears the backend session from any stage.
func (c *Client) Logout(ctx context.Context) (*State, error) {
	var state State
	if err := c.doJSON(ctx, http.MethodPost, "/v1/session/logout", "", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Session is an authenticated handle on the console backend. It carries the
// bearer token minted at OTP verification.
type Session struct {
	client *Client
	token  string
	state  State
}

// Token returns the bearer token, e.g. for storage between runs.
func (s *Session) Token() string { return s.token }

// State returns the session state captured at login. Call Client.State for a
// fresh copy.
func (s *Session) State() State { return s.state }

// Navigate switches the current page within the role's permitted set.
func (s *Session) Navigate(ctx context.Context, page string) (*State, error) {
	var state State
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/session/navigate", s.token,
		map[string]string{"page": page}, &state)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// RecordActivity signals qualifying user activity and returns the
// rescheduled inactivity deadline.
func (s *Session) RecordActivity(ctx context.Context) (*ActivityResult, error) {
	var result ActivityResult
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/session/activity", s.token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPage fetches the render model for one dashboard page.
func (s *Session) GetPage(ctx context.Context, page string) (*PageView, error) {
	var view PageView
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/pages/"+url.PathEscape(page), s.token, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// SaveSettings submits the settings form. The backend acknowledges without
// persisting.
func (s *Session) SaveSettings(ctx context.Context, form SettingsForm) (*SettingsAck, error) {
	var ack SettingsAck
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/pages/settings", s.token, form, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// Chat sends a prompt to the merchant assistant and returns the reply.
func (s *Session) Chat(ctx context.Context, message string) (string, error) {
	var resp struct {
		Reply string `json:"reply"`
	}
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/assistant/chat", s.token,
		map[string]string{"message": message}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Reply, nil
}
