package domain

import "time"

// Stage tracks the login flow progression for the single console session.
type Stage int

const (
	StageLoggedOut Stage = iota
	StageRoleSelected
	StageAwaitingOTP
	StageVerified
)

func (s Stage) String() string {
	switch s {
	case StageLoggedOut:
		return "logged_out"
	case StageRoleSelected:
		return "role_selected"
	case StageAwaitingOTP:
		return "awaiting_otp"
	case StageVerified:
		return "verified"
	default:
		return "unknown"
	}
}

// Identity is the authenticated user attached to a verified session.
type Identity struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session is the in-memory record of who is logged in, as what role, and
// which page is shown.
//
// Invariants: User is non-nil only while Stage == StageVerified, and
// CurrentPage always belongs to the permitted page set for Role (falling back
// to DefaultPage while no role is selected).
type Session struct {
	ID                 string     `json:"id,omitempty"`
	User               *Identity  `json:"user,omitempty"`
	Role               Role       `json:"role"`
	Stage              Stage      `json:"-"`
	CurrentPage        Page       `json:"current_page"`
	Notifications      []string   `json:"notifications,omitempty"`
	InactivityDeadline *time.Time `json:"inactivity_deadline,omitempty"`
}
