package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vyaapaarai/console/internal/console/domain"
)

// DefaultSessionTTL bounds how long a minted session token stays valid.
const DefaultSessionTTL = 12 * time.Hour

// ErrInvalidToken reports a session token that failed verification.
var ErrInvalidToken = errors.New("invalid session token")

// SessionToken is the verified content of a bearer token.
type SessionToken struct {
	SessionID string
	Role      domain.Role
	Email     string
}

// TokenService mints and verifies the HS256 session tokens handed to the
// view layer after OTP verification. A token is only an envelope around the
// session ID: the transport layer still checks the ID against the live
// session, so tokens cannot outlive a logout or an inactivity timeout.
type TokenService struct {
	Secret []byte
	Issuer string
	TTL    time.Duration // DefaultSessionTTL if zero
}

type sessionClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issue mints a token bound to the verified session.
func (s *TokenService) Issue(sess domain.Session) (string, error) {
	if sess.Stage != domain.StageVerified || sess.User == nil {
		return "", ErrNotAuthenticated
	}

	now := time.Now()
	claims := sessionClaims{
		Role:  string(sess.Role),
		Email: sess.User.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.ID,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl())),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify parses and validates raw, returning the embedded session reference.
func (s *TokenService) Verify(raw string) (SessionToken, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return SessionToken{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return SessionToken{}, ErrInvalidToken
	}

	return SessionToken{
		SessionID: claims.Subject,
		Role:      role,
		Email:     claims.Email,
	}, nil
}

func (s *TokenService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultSessionTTL
}
