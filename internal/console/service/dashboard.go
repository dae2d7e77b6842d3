package service

import (
	"context"
	"fmt"

	"github.com/vyaapaarai/console/internal/console/domain"
	"github.com/vyaapaarai/console/internal/console/store"
)

// lowStockThreshold marks products needing a restock on the inventory page.
const lowStockThreshold = 10

// PageView is the render model for a single dashboard page. Only the fields
// relevant to the requested page are populated.
type PageView struct {
	Page    domain.Page     `json:"page"`
	Title   string          `json:"title"`
	Metrics []domain.Metric `json:"metrics,omitempty"`

	Merchants []domain.Merchant      `json:"merchants,omitempty"`
	Customers []domain.Customer      `json:"customers,omitempty"`
	Products  []domain.Product       `json:"products,omitempty"`
	LowStock  []domain.Product       `json:"low_stock,omitempty"`
	Orders    []domain.Order         `json:"orders,omitempty"`
	Revenue   *domain.RevenueSummary `json:"revenue,omitempty"`

	Settings *SettingsForm `json:"settings,omitempty"`
	Greeting string        `json:"greeting,omitempty"`
}

// SettingsForm is the static settings model. Saving it never persists
// anything; the save endpoint only acknowledges.
type SettingsForm struct {
	DisplayName   string `json:"display_name"`
	ContactEmail  string `json:"contact_email"`
	Timezone      string `json:"timezone"`
	EmailDigests  bool   `json:"email_digests"`
	TwoFactorHint string `json:"two_factor_hint"`
}

// DashboardService maps (role, page) to a view model over the demo catalog.
// It re-checks page permission so the view layer cannot render a page the
// navigation state machine would refuse.
type DashboardService struct {
	Store store.Store
}

func (s *DashboardService) Render(ctx context.Context, role domain.Role, page domain.Page) (PageView, error) {
	if !role.Permits(page) {
		return PageView{}, ErrPageNotPermitted
	}

	view := PageView{Page: page}
	var err error

	switch page {
	case domain.PageOverview:
		view.Title = "Overview"
		scope := "merchant"
		if role == domain.RoleAdmin {
			scope = "admin"
		}
		view.Metrics, err = s.Store.Metrics().ListByScope(ctx, scope)

	case domain.PageMerchants:
		view.Title = "Merchants"
		view.Merchants, err = s.Store.Merchants().ListMerchants(ctx)

	case domain.PageCustomers:
		view.Title = "Customers"
		view.Customers, err = s.Store.Customers().ListCustomers(ctx)

	case domain.PageRevenue:
		view.Title = "Revenue"
		var summary domain.RevenueSummary
		if summary, err = s.Store.Orders().Summary(ctx); err == nil {
			view.Revenue = &summary
		}

	case domain.PageProducts:
		view.Title = "Products"
		view.Products, err = s.Store.Products().ListProducts(ctx)

	case domain.PageOrders:
		view.Title = "Orders"
		view.Orders, err = s.Store.Orders().ListOrders(ctx)

	case domain.PageAnalytics:
		view.Title = "Analytics"
		view.Metrics, err = s.Store.Metrics().ListByScope(ctx, "merchant-analytics")

	case domain.PageInventory:
		view.Title = "Inventory"
		if view.Products, err = s.Store.Products().ListProducts(ctx); err == nil {
			view.LowStock, err = s.Store.Products().ListLowStock(ctx, lowStockThreshold)
		}

	case domain.PageAssistant:
		view.Title = "AI Assistant"
		view.Greeting = "Hi! Ask me about your orders, inventory or sales."

	case domain.PageSettings:
		view.Title = "Settings"
		view.Settings = settingsFor(role)
	}

	if err != nil {
		return PageView{}, fmt.Errorf("render %s page: %w", page, err)
	}
	return view, nil
}

func settingsFor(role domain.Role) *SettingsForm {
	if role == domain.RoleAdmin {
		return &SettingsForm{
			DisplayName:   "Platform Operations",
			ContactEmail:  DemoAdminEmail,
			Timezone:      "UTC",
			EmailDigests:  true,
			TwoFactorHint: "OTP required at every login",
		}
	}
	return &SettingsForm{
		DisplayName:   "Urban Threads Co.",
		ContactEmail:  DemoMerchantEmail,
		Timezone:      "Australia/Sydney",
		EmailDigests:  false,
		TwoFactorHint: "OTP required at every login",
	}
}
