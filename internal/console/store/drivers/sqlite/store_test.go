package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestCatalogSeed(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	t.Run("merchants ordered by revenue", func(t *testing.T) {
		merchants, err := st.Merchants().ListMerchants(ctx)
		require.NoError(t, err)
		require.Len(t, merchants, 5)
		require.Equal(t, "Urban Threads Co.", merchants[0].Name)
		for i := 1; i < len(merchants); i++ {
			require.GreaterOrEqual(t, merchants[i-1].MonthlyRevenueCents, merchants[i].MonthlyRevenueCents)
		}
	})

	t.Run("customers ordered by lifetime value", func(t *testing.T) {
		customers, err := st.Customers().ListCustomers(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 5)
		require.Equal(t, "Priya Sharma", customers[0].Name)
	})

	t.Run("products and low stock filter", func(t *testing.T) {
		products, err := st.Products().ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 6)

		low, err := st.Products().ListLowStock(ctx, 10)
		require.NoError(t, err)
		// The archived camera is out of stock but must not show up.
		require.Len(t, low, 2)
		require.Equal(t, "Desk Lamp Pro", low[0].Name)
		require.Equal(t, "Wireless Earbuds", low[1].Name)
	})

	t.Run("orders newest first", func(t *testing.T) {
		orders, err := st.Orders().ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 6)
		require.Equal(t, "ORD-1042", orders[0].Reference)
	})

	t.Run("revenue summary excludes refunds", func(t *testing.T) {
		sum, err := st.Orders().Summary(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 5, sum.OrderCount)
		require.EqualValues(t, 15998+3499+10498+4599+5899, sum.GrossCents)
		require.EqualValues(t, sum.GrossCents/5, sum.AverageCents)
		require.Equal(t, "Urban Threads Co.", sum.TopMerchant)
	})

	t.Run("metrics grouped by scope", func(t *testing.T) {
		for _, scope := range []string{"admin", "merchant", "merchant-analytics"} {
			metrics, err := st.Metrics().ListByScope(ctx, scope)
			require.NoError(t, err)
			require.Len(t, metrics, 4, "scope %q", scope)
		}

		metrics, err := st.Metrics().ListByScope(ctx, "nope")
		require.NoError(t, err)
		require.Empty(t, metrics)
	})
}
