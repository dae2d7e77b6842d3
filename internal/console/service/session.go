package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/vyaapaarai/console/internal/console/domain"
	"github.com/vyaapaarai/console/pkg/idx"
)

// LogoutReasonInactivity is recorded when the inactivity timer expires.
const LogoutReasonInactivity = "inactivity"

// DefaultInactivityWindow is how long a verified session survives without a
// qualifying activity signal.
const DefaultInactivityWindow = 30 * time.Minute

var (
	ErrNoRoleSelected       = errors.New("no role selected")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidOTP           = errors.New("invalid otp code")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrPageNotPermitted     = errors.New("page not permitted for role")
	ErrChallengePending     = errors.New("otp challenge pending")
	ErrNoChallengePending   = errors.New("no otp challenge pending")
	ErrAlreadyAuthenticated = errors.New("already authenticated")
)

// CredentialVerifier decides whether (role, email, password) identifies the
// reference account for that role. The demo wires StaticCredentials; a real
// identity provider can be substituted without touching the state machine.
type CredentialVerifier interface {
	Verify(ctx context.Context, role domain.Role, email, password string) error
}

// OTPAuthenticator issues and verifies second-factor challenges.
type OTPAuthenticator interface {
	// Challenge issues (and conceptually delivers) a challenge for email.
	Challenge(ctx context.Context, email string) (domain.OTPChallenge, error)

	// Verify checks a submitted code against the pending challenge. It
	// returns ErrInvalidOTP for a wrong or expired code.
	Verify(ctx context.Context, ch domain.OTPChallenge, code string) error
}

// NotificationFeed supplies the role-specific notices shown after login.
type NotificationFeed interface {
	ForRole(role domain.Role) []string
}

// ManagerConfig carries the collaborators and tuning for a Manager.
type ManagerConfig struct {
	Credentials CredentialVerifier
	OTP         OTPAuthenticator
	Feed        NotificationFeed
	Window      time.Duration // inactivity window, DefaultInactivityWindow if zero
	Logger      *slog.Logger
}

// Manager owns the single console session and is the only mutator of it.
// All transitions run under one mutex, which is the per-session
// exclusive-mutation discipline a multi-session deployment would need anyway.
//
// Login flow: logged_out -> role_selected -> awaiting_otp -> verified.
// Logout (explicit or via inactivity) returns to logged_out from any stage.
type Manager struct {
	credentials CredentialVerifier
	otp         OTPAuthenticator
	feed        NotificationFeed
	window      time.Duration
	logger      *slog.Logger

	mu           sync.Mutex
	sess         domain.Session
	challenge    *domain.OTPChallenge
	pendingEmail string
	logoutNotice string

	// Inactivity handling: at most one pending expiry callback exists at a
	// time. Rearming bumps timerGen so a stale callback that already fired
	// but lost the race for the mutex becomes a no-op.
	timer    *time.Timer
	timerGen uint64
}

func NewManager(cfg ManagerConfig) *Manager {
	if cfg.Window <= 0 {
		cfg.Window = DefaultInactivityWindow
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Manager{
		credentials: cfg.Credentials,
		otp:         cfg.OTP,
		feed:        cfg.Feed,
		window:      cfg.Window,
		logger:      cfg.Logger,
		sess: domain.Session{
			Stage:       domain.StageLoggedOut,
			CurrentPage: domain.DefaultPage,
		},
	}
}

// SelectRole records the pending role. Allowed only before credentials have
// been submitted; selecting again replaces the previous choice and resets the
// page to the default.
func (m *Manager) SelectRole(role domain.Role) error {
	if !role.Valid() {
		return domain.ErrUnknownRole
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.sess.Stage {
	case domain.StageAwaitingOTP:
		return ErrChallengePending
	case domain.StageVerified:
		return ErrAlreadyAuthenticated
	}

	m.sess.Role = role
	m.sess.Stage = domain.StageRoleSelected
	m.sess.CurrentPage = domain.DefaultPage
	m.logoutNotice = ""
	return nil
}

// SubmitCredentials checks the email/password pair against the reference
// record for the selected role. On success the session moves to awaiting_otp
// and a challenge is issued; on mismatch the state is left untouched.
func (m *Manager) SubmitCredentials(ctx context.Context, email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.sess.Stage {
	case domain.StageLoggedOut:
		return ErrNoRoleSelected
	case domain.StageAwaitingOTP:
		return ErrChallengePending
	case domain.StageVerified:
		return ErrAlreadyAuthenticated
	}

	if err := m.credentials.Verify(ctx, m.sess.Role, email, password); err != nil {
		m.logger.Warn("credential check failed", "role", m.sess.Role, "email", email)
		return err
	}

	ch, err := m.otp.Challenge(ctx, email)
	if err != nil {
		return err
	}

	m.challenge = &ch
	m.pendingEmail = email
	m.sess.Stage = domain.StageAwaitingOTP
	m.logger.Info("otp challenge issued", "role", m.sess.Role, "challenge_id", ch.ID)
	return nil
}

// SubmitOTP completes the second factor. On success the session becomes
// verified: the identity is attached, notifications are loaded from the role
// feed, the page resets to the default and the inactivity timer is armed.
// On mismatch the challenge stays pending so the user can retry.
func (m *Manager) SubmitOTP(ctx context.Context, code string) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess.Stage != domain.StageAwaitingOTP || m.challenge == nil {
		return domain.Session{}, ErrNoChallengePending
	}

	if err := m.otp.Verify(ctx, *m.challenge, code); err != nil {
		m.logger.Warn("otp verification failed", "challenge_id", m.challenge.ID)
		return domain.Session{}, err
	}

	// Challenge is single-use: discard it on success.
	m.challenge = nil

	m.sess.ID = idx.New().String()
	m.sess.Stage = domain.StageVerified
	m.sess.User = &domain.Identity{Email: m.pendingEmail, Role: m.sess.Role}
	m.sess.CurrentPage = domain.DefaultPage
	m.sess.Notifications = m.feed.ForRole(m.sess.Role)
	m.pendingEmail = ""
	m.armLocked()

	m.logger.Info("session verified", "session_id", m.sess.ID, "role", m.sess.Role)
	return m.snapshotLocked(), nil
}

// CancelOTP abandons the pending challenge and returns to role selection.
// The selected role is kept so the user lands back on the login form for the
// same role rather than the role picker.
func (m *Manager) CancelOTP() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess.Stage != domain.StageAwaitingOTP {
		return ErrNoChallengePending
	}

	m.challenge = nil
	m.pendingEmail = ""
	m.sess.Stage = domain.StageRoleSelected
	return nil
}

// NavigateTo switches the current page. Only verified sessions may navigate,
// and only within the permitted page set of their role.
func (m *Manager) NavigateTo(page domain.Page) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess.Stage != domain.StageVerified {
		return ErrNotAuthenticated
	}
	if !m.sess.Role.Permits(page) {
		return ErrPageNotPermitted
	}

	m.sess.CurrentPage = page
	return nil
}

// Touch records a qualifying activity event (pointer move, key press, scroll,
// click) and reschedules the inactivity deadline. It returns the new deadline.
func (m *Manager) Touch() (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess.Stage != domain.StageVerified {
		return time.Time{}, ErrNotAuthenticated
	}

	m.armLocked()
	return *m.sess.InactivityDeadline, nil
}

// Logout clears the session from any stage and records reason for display by
// the view layer.
func (m *Manager) Logout(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logoutLocked(reason)
}

// Authenticate checks that sessionID names the live verified session. It is
// how the transport layer ties bearer tokens back to session state, so tokens
// die with the session on logout or timeout.
func (m *Manager) Authenticate(sessionID string) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess.Stage != domain.StageVerified || sessionID == "" || sessionID != m.sess.ID {
		return domain.Session{}, ErrNotAuthenticated
	}
	return m.snapshotLocked(), nil
}

// Snapshot returns a copy of the session for rendering. The copy shares no
// mutable state with the live session.
func (m *Manager) Snapshot() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// LogoutNotice returns the reason recorded by the most recent logout, empty
// once a new login attempt begins.
func (m *Manager) LogoutNotice() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logoutNotice
}

// Close cancels the pending inactivity callback. Called on shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disarmLocked()
}

func (m *Manager) snapshotLocked() domain.Session {
	snap := m.sess
	if m.sess.User != nil {
		user := *m.sess.User
		snap.User = &user
	}
	if m.sess.InactivityDeadline != nil {
		deadline := *m.sess.InactivityDeadline
		snap.InactivityDeadline = &deadline
	}
	snap.Notifications = append([]string(nil), m.sess.Notifications...)
	return snap
}

func (m *Manager) logoutLocked(reason string) {
	m.disarmLocked()
	m.challenge = nil
	m.pendingEmail = ""
	m.sess = domain.Session{
		Stage:       domain.StageLoggedOut,
		CurrentPage: domain.DefaultPage,
	}
	m.logoutNotice = reason
	m.logger.Info("session cleared", "reason", reason)
}

// armLocked schedules (or reschedules) the single inactivity expiry callback.
func (m *Manager) armLocked() {
	m.disarmLocked()

	m.timerGen++
	gen := m.timerGen
	deadline := time.Now().Add(m.window)
	m.sess.InactivityDeadline = &deadline
	m.timer = time.AfterFunc(m.window, func() { m.expire(gen) })
}

func (m *Manager) disarmLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.timerGen++
}

func (m *Manager) expire(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// A rearm or logout since this callback was scheduled invalidates it.
	if gen != m.timerGen || m.sess.Stage != domain.StageVerified {
		return
	}

	m.logger.Info("inactivity window elapsed", "session_id", m.sess.ID)
	m.logoutLocked(LogoutReasonInactivity)
}
