package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/vyaapaarai/console/internal/console/domain"
	"github.com/vyaapaarai/console/pkg/idx"
)

// DemoOTPCode is the fixed code accepted by the static authenticator. There
// is no delivery channel in the demo; the login screen tells the user what to
// type.
const DemoOTPCode = "123456"

// DefaultChallengeTTL bounds how long an issued challenge stays redeemable.
const DefaultChallengeTTL = 5 * time.Minute

// StaticOTP accepts a single fixed code. It is the mock wiring of the
// OTPAuthenticator port.
type StaticOTP struct {
	Code string        // DemoOTPCode if empty
	TTL  time.Duration // DefaultChallengeTTL if zero
}

func (s *StaticOTP) Challenge(ctx context.Context, email string) (domain.OTPChallenge, error) {
	now := time.Now()
	return domain.OTPChallenge{
		ID:        idx.New().String(),
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl()),
	}, nil
}

func (s *StaticOTP) Verify(ctx context.Context, ch domain.OTPChallenge, code string) error {
	if ch.Expired(time.Now()) {
		return ErrInvalidOTP
	}

	want := s.Code
	if want == "" {
		want = DemoOTPCode
	}
	if subtle.ConstantTimeCompare([]byte(code), []byte(want)) != 1 {
		return ErrInvalidOTP
	}
	return nil
}

func (s *StaticOTP) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultChallengeTTL
}

// TOTP validates codes against a shared time-based secret. It is the
// substitutable "real" authenticator: time-boxed by construction, selected
// via OTP_MODE=totp.
type TOTP struct {
	Secret string // base32 encoded shared secret
	TTL    time.Duration
}

func (t *TOTP) Challenge(ctx context.Context, email string) (domain.OTPChallenge, error) {
	now := time.Now()
	ttl := t.TTL
	if ttl <= 0 {
		ttl = DefaultChallengeTTL
	}
	return domain.OTPChallenge{
		ID:        idx.New().String(),
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

func (t *TOTP) Verify(ctx context.Context, ch domain.OTPChallenge, code string) error {
	if ch.Expired(time.Now()) {
		return ErrInvalidOTP
	}
	if !totp.Validate(code, t.Secret) {
		return ErrInvalidOTP
	}
	return nil
}
