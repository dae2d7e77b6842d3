package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vyaapaarai/console/internal/console/domain"
)

// Shared across tests; Verify is read-only so this is safe under t.Parallel.
var demoCreds = DemoCredentials()

func newTestManager(t *testing.T, window time.Duration) *Manager {
	t.Helper()

	m := NewManager(ManagerConfig{
		Credentials: demoCreds,
		OTP:         &StaticOTP{},
		Feed:        DemoFeed(),
		Window:      window,
	})
	t.Cleanup(m.Close)
	return m
}

// loginAs drives the full happy path for a role.
func loginAs(t *testing.T, m *Manager, role domain.Role, email, password string) domain.Session {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, m.SelectRole(role))
	require.NoError(t, m.SubmitCredentials(ctx, email, password))

	sess, err := m.SubmitOTP(ctx, DemoOTPCode)
	require.NoError(t, err)
	return sess
}

func TestSelectRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("from logged out", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		require.NoError(t, m.SelectRole(domain.RoleMerchant))
		snap := m.Snapshot()
		require.Equal(t, domain.StageRoleSelected, snap.Stage)
		require.Equal(t, domain.RoleMerchant, snap.Role)
		require.Equal(t, domain.DefaultPage, snap.CurrentPage)
	})

	t.Run("reselect replaces the pending role", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		require.NoError(t, m.SelectRole(domain.RoleMerchant))
		require.NoError(t, m.SelectRole(domain.RoleAdmin))
		require.Equal(t, domain.RoleAdmin, m.Snapshot().Role)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)
		require.ErrorIs(t, m.SelectRole(domain.RoleNone), domain.ErrUnknownRole)
	})

	t.Run("locked while challenge pending", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		require.NoError(t, m.SelectRole(domain.RoleAdmin))
		require.NoError(t, m.SubmitCredentials(ctx, DemoAdminEmail, "admin123"))
		require.ErrorIs(t, m.SelectRole(domain.RoleMerchant), ErrChallengePending)
	})

	t.Run("locked while verified", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		loginAs(t, m, domain.RoleAdmin, DemoAdminEmail, "admin123")
		require.ErrorIs(t, m.SelectRole(domain.RoleMerchant), ErrAlreadyAuthenticated)
	})
}

func TestSubmitCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires a selected role", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		err := m.SubmitCredentials(ctx, DemoAdminEmail, "admin123")
		require.ErrorIs(t, err, ErrNoRoleSelected)
		require.Equal(t, domain.StageLoggedOut, m.Snapshot().Stage)
	})

	t.Run("exact match transitions to awaiting otp", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		require.NoError(t, m.SelectRole(domain.RoleMerchant))
		require.NoError(t, m.SubmitCredentials(ctx, "merchant@store.com", "merchant123"))
		require.Equal(t, domain.StageAwaitingOTP, m.Snapshot().Stage)
	})

	t.Run("mismatch keeps state at role selected", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)
		require.NoError(t, m.SelectRole(domain.RoleAdmin))

		for _, tc := range []struct{ email, password string }{
			{"wrong@x.com", "x"},
			{DemoAdminEmail, "wrongpass"},
			{DemoMerchantEmail, "merchant123"}, // valid pair, wrong role
			{"", ""},
		} {
			err := m.SubmitCredentials(ctx, tc.email, tc.password)
			require.ErrorIs(t, err, ErrInvalidCredentials, "email=%q", tc.email)
			require.Equal(t, domain.StageRoleSelected, m.Snapshot().Stage)
		}
	})

	t.Run("rejected while challenge pending", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		require.NoError(t, m.SelectRole(domain.RoleAdmin))
		require.NoError(t, m.SubmitCredentials(ctx, DemoAdminEmail, "admin123"))
		err := m.SubmitCredentials(ctx, DemoAdminEmail, "admin123")
		require.ErrorIs(t, err, ErrChallengePending)
	})
}

func TestSubmitOTP(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("merchant login scenario", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		require.NoError(t, m.SelectRole(domain.RoleMerchant))
		require.NoError(t, m.SubmitCredentials(ctx, "merchant@store.com", "merchant123"))
		require.Equal(t, domain.StageAwaitingOTP, m.Snapshot().Stage)

		sess, err := m.SubmitOTP(ctx, "123456")
		require.NoError(t, err)
		require.Equal(t, domain.StageVerified, sess.Stage)
		require.Equal(t, domain.PageOverview, sess.CurrentPage)
		require.NotEmpty(t, sess.ID)
		require.NotNil(t, sess.User)
		require.Equal(t, "merchant@store.com", sess.User.Email)
		require.Len(t, sess.Notifications, 4)
		require.NotNil(t, sess.InactivityDeadline)
	})

	t.Run("wrong code stays awaiting otp", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		require.NoError(t, m.SelectRole(domain.RoleAdmin))
		require.NoError(t, m.SubmitCredentials(ctx, DemoAdminEmail, "admin123"))

		_, err := m.SubmitOTP(ctx, "000000")
		require.ErrorIs(t, err, ErrInvalidOTP)
		require.Equal(t, domain.StageAwaitingOTP, m.Snapshot().Stage)

		// The challenge survives the failure, so a retry can still succeed.
		sess, err := m.SubmitOTP(ctx, DemoOTPCode)
		require.NoError(t, err)
		require.Equal(t, domain.StageVerified, sess.Stage)
	})

	t.Run("no challenge pending", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		_, err := m.SubmitOTP(ctx, DemoOTPCode)
		require.ErrorIs(t, err, ErrNoChallengePending)

		require.NoError(t, m.SelectRole(domain.RoleAdmin))
		_, err = m.SubmitOTP(ctx, DemoOTPCode)
		require.ErrorIs(t, err, ErrNoChallengePending)
	})
}

func TestCancelOTP(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := newTestManager(t, 0)
	require.NoError(t, m.SelectRole(domain.RoleMerchant))
	require.NoError(t, m.SubmitCredentials(ctx, DemoMerchantEmail, "merchant123"))

	require.NoError(t, m.CancelOTP())
	snap := m.Snapshot()
	require.Equal(t, domain.StageRoleSelected, snap.Stage)
	// Role selection is kept so the user returns to the same login form.
	require.Equal(t, domain.RoleMerchant, snap.Role)

	// Challenge was discarded with the cancel.
	_, err := m.SubmitOTP(ctx, DemoOTPCode)
	require.ErrorIs(t, err, ErrNoChallengePending)

	require.ErrorIs(t, m.CancelOTP(), ErrNoChallengePending)
}

func TestNavigateTo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires verification in every earlier stage", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)

		require.ErrorIs(t, m.NavigateTo(domain.PageOverview), ErrNotAuthenticated)

		require.NoError(t, m.SelectRole(domain.RoleAdmin))
		require.ErrorIs(t, m.NavigateTo(domain.PageOverview), ErrNotAuthenticated)

		require.NoError(t, m.SubmitCredentials(ctx, DemoAdminEmail, "admin123"))
		require.ErrorIs(t, m.NavigateTo(domain.PageOverview), ErrNotAuthenticated)
	})

	t.Run("admin page set", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)
		loginAs(t, m, domain.RoleAdmin, DemoAdminEmail, "admin123")

		for _, page := range []domain.Page{
			domain.PageOverview, domain.PageMerchants, domain.PageCustomers,
			domain.PageRevenue, domain.PageSettings,
		} {
			require.NoError(t, m.NavigateTo(page))
			require.Equal(t, page, m.Snapshot().CurrentPage)
		}

		// Merchant-only pages are refused and the current page is untouched.
		require.NoError(t, m.NavigateTo(domain.PageRevenue))
		for _, page := range []domain.Page{
			domain.PageProducts, domain.PageOrders, domain.PageAnalytics,
			domain.PageInventory, domain.PageAssistant,
		} {
			require.ErrorIs(t, m.NavigateTo(page), ErrPageNotPermitted)
			require.Equal(t, domain.PageRevenue, m.Snapshot().CurrentPage)
		}
	})

	t.Run("merchant page set", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)
		loginAs(t, m, domain.RoleMerchant, DemoMerchantEmail, "merchant123")

		for _, page := range []domain.Page{
			domain.PageOverview, domain.PageProducts, domain.PageOrders,
			domain.PageAnalytics, domain.PageInventory, domain.PageAssistant,
			domain.PageSettings,
		} {
			require.NoError(t, m.NavigateTo(page))
		}
		for _, page := range []domain.Page{
			domain.PageMerchants, domain.PageCustomers, domain.PageRevenue,
		} {
			require.ErrorIs(t, m.NavigateTo(page), ErrPageNotPermitted)
		}
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assertCleared := func(t *testing.T, m *Manager, reason string) {
		t.Helper()
		snap := m.Snapshot()
		require.Equal(t, domain.StageLoggedOut, snap.Stage)
		require.Equal(t, domain.RoleNone, snap.Role)
		require.Nil(t, snap.User)
		require.Empty(t, snap.ID)
		require.Equal(t, domain.PageOverview, snap.CurrentPage)
		require.Empty(t, snap.Notifications)
		require.Nil(t, snap.InactivityDeadline)
		require.Equal(t, reason, m.LogoutNotice())
	}

	t.Run("from logged out", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)
		m.Logout("user")
		assertCleared(t, m, "user")
	})

	t.Run("from awaiting otp", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)
		require.NoError(t, m.SelectRole(domain.RoleAdmin))
		require.NoError(t, m.SubmitCredentials(ctx, DemoAdminEmail, "admin123"))
		m.Logout("user")
		assertCleared(t, m, "user")
	})

	t.Run("from verified", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)
		loginAs(t, m, domain.RoleMerchant, DemoMerchantEmail, "merchant123")
		require.NoError(t, m.NavigateTo(domain.PageOrders))

		m.Logout("user")
		assertCleared(t, m, "user")
		require.ErrorIs(t, m.NavigateTo(domain.PageOverview), ErrNotAuthenticated)
	})

	t.Run("notice cleared on next role selection", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)
		m.Logout("user")
		require.NoError(t, m.SelectRole(domain.RoleAdmin))
		require.Empty(t, m.LogoutNotice())
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, 0)

	_, err := m.Authenticate("anything")
	require.ErrorIs(t, err, ErrNotAuthenticated)

	sess := loginAs(t, m, domain.RoleAdmin, DemoAdminEmail, "admin123")

	got, err := m.Authenticate(sess.ID)
	require.NoError(t, err)
	require.Equal(t, sess.ID, got.ID)

	_, err = m.Authenticate("stale-session-id")
	require.ErrorIs(t, err, ErrNotAuthenticated)

	m.Logout("user")
	_, err = m.Authenticate(sess.ID)
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestInactivityTimeout(t *testing.T) {
	t.Parallel()

	t.Run("expires into logout with inactivity reason", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 40*time.Millisecond)
		loginAs(t, m, domain.RoleMerchant, DemoMerchantEmail, "merchant123")

		require.Eventually(t, func() bool {
			return m.Snapshot().Stage == domain.StageLoggedOut
		}, 2*time.Second, 5*time.Millisecond)
		require.Equal(t, LogoutReasonInactivity, m.LogoutNotice())
	})

	t.Run("activity reschedules the deadline", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 150*time.Millisecond)
		sess := loginAs(t, m, domain.RoleAdmin, DemoAdminEmail, "admin123")
		first := *sess.InactivityDeadline

		// Keep touching past the original window; the session must survive.
		for range 4 {
			time.Sleep(60 * time.Millisecond)
			deadline, err := m.Touch()
			require.NoError(t, err)
			require.True(t, deadline.After(first))
		}
		require.Equal(t, domain.StageVerified, m.Snapshot().Stage)

		// Stop touching and the single pending callback fires once.
		require.Eventually(t, func() bool {
			return m.Snapshot().Stage == domain.StageLoggedOut
		}, 2*time.Second, 5*time.Millisecond)
		require.Equal(t, LogoutReasonInactivity, m.LogoutNotice())
	})

	t.Run("touch requires verification", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 0)
		_, err := m.Touch()
		require.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("explicit logout wins over a pending expiry", func(t *testing.T) {
		t.Parallel()
		m := newTestManager(t, 50*time.Millisecond)
		loginAs(t, m, domain.RoleAdmin, DemoAdminEmail, "admin123")

		m.Logout("user")
		time.Sleep(120 * time.Millisecond)
		// The stale callback must not overwrite the recorded reason.
		require.Equal(t, "user", m.LogoutNotice())
	})
}
