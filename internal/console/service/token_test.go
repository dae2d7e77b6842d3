package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vyaapaarai/console/internal/console/domain"
)

func verifiedSession() domain.Session {
	return domain.Session{
		ID:    "01JD8TESTSESSION000000000A",
		Role:  domain.RoleMerchant,
		Stage: domain.StageVerified,
		User:  &domain.Identity{Email: DemoMerchantEmail, Role: domain.RoleMerchant},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := &TokenService{Secret: []byte("test-secret"), Issuer: "vyaapaarai-console"}

	raw, err := svc.Issue(verifiedSession())
	require.NoError(t, err)

	tok, err := svc.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "01JD8TESTSESSION000000000A", tok.SessionID)
	require.Equal(t, domain.RoleMerchant, tok.Role)
	require.Equal(t, DemoMerchantEmail, tok.Email)
}

func TestTokenIssueRequiresVerifiedSession(t *testing.T) {
	t.Parallel()

	svc := &TokenService{Secret: []byte("test-secret"), Issuer: "vyaapaarai-console"}

	sess := verifiedSession()
	sess.Stage = domain.StageAwaitingOTP
	_, err := svc.Issue(sess)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	sess = verifiedSession()
	sess.User = nil
	_, err = svc.Issue(sess)
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestTokenVerifyRejects(t *testing.T) {
	t.Parallel()

	svc := &TokenService{Secret: []byte("test-secret"), Issuer: "vyaapaarai-console"}

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := &TokenService{Secret: []byte("other-secret"), Issuer: "vyaapaarai-console"}
		raw, err := other.Issue(verifiedSession())
		require.NoError(t, err)

		_, err = svc.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := &TokenService{Secret: []byte("test-secret"), Issuer: "someone-else"}
		raw, err := other.Issue(verifiedSession())
		require.NoError(t, err)

		_, err = svc.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		short := &TokenService{Secret: []byte("test-secret"), Issuer: "vyaapaarai-console", TTL: time.Nanosecond}
		raw, err := short.Issue(verifiedSession())
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = svc.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
