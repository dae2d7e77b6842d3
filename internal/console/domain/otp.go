package domain

import "time"

// OTPChallenge is a pending second-factor challenge. Challenges are
// single-use: a successful verification discards the challenge, a failed one
// keeps it so the user can retry until it expires.
type OTPChallenge struct {
	ID        string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the challenge is past its validity window.
func (c OTPChallenge) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
