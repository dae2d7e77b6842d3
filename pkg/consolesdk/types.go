package consolesdk

import "time"

// Identity is the signed-in user attached to a verified session.
type Identity struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// State mirrors the session state resource.
type State struct {
	Stage              string     `json:"stage"`
	Role               string     `json:"role,omitempty"`
	CurrentPage        string     `json:"current_page"`
	Pages              []string   `json:"pages,omitempty"`
	User               *Identity  `json:"user,omitempty"`
	Notifications      []string   `json:"notifications,omitempty"`
	InactivityDeadline *time.Time `json:"inactivity_deadline,omitempty"`
	LogoutNotice       string     `json:"logout_notice,omitempty"`
}

// LoginResult is returned after a successful credential check.
type LoginResult struct {
	OTPRequired bool   `json:"otp_required"`
	Message     string `json:"message"`
}

type otpResult struct {
	Token string `json:"token"`
	State State  `json:"state"`
}

// Metric is one KPI tile on a dashboard page.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

// Merchant is a row on the admin merchants page.
type Merchant struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	OwnerEmail          string `json:"owner_email"`
	Status              string `json:"status"`
	MonthlyRevenueCents int64  `json:"monthly_revenue_cents"`
}

// Customer is a row on the admin customers page.
type Customer struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Orders             int64  `json:"orders"`
	LifetimeValueCents int64  `json:"lifetime_value_cents"`
}

// Product is a row on the merchant products and inventory pages.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SKU        string `json:"sku"`
	PriceCents int64  `json:"price_cents"`
	Stock      int64  `json:"stock"`
	Status     string `json:"status"`
}

// Order is a row on the merchant orders page.
type Order struct {
	ID         string    `json:"id"`
	Reference  string    `json:"reference"`
	Customer   string    `json:"customer"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	PlacedAt   time.Time `json:"placed_at"`
}

// RevenueSummary is the aggregate on the admin revenue page.
type RevenueSummary struct {
	GrossCents   int64  `json:"gross_cents"`
	OrderCount   int64  `json:"order_count"`
	AverageCents int64  `json:"average_cents"`
	TopMerchant  string `json:"top_merchant,omitempty"`
}

// SettingsForm is the static per-role settings model.
type SettingsForm struct {
	DisplayName   string `json:"display_name"`
	ContactEmail  string `json:"contact_email"`
	Timezone      string `json:"timezone"`
	EmailDigests  bool   `json:"email_digests"`
	TwoFactorHint string `json:"two_factor_hint"`
}

// PageView is the render model for one dashboard page.
type PageView struct {
	Page    string   `json:"page"`
	Title   string   `json:"title"`
	Metrics []Metric `json:"metrics,omitempty"`

	Merchants []Merchant      `json:"merchants,omitempty"`
	Customers []Customer      `json:"customers,omitempty"`
	Products  []Product       `json:"products,omitempty"`
	LowStock  []Product       `json:"low_stock,omitempty"`
	Orders    []Order         `json:"orders,omitempty"`
	Revenue   *RevenueSummary `json:"revenue,omitempty"`

	Settings *SettingsForm `json:"settings,omitempty"`
	Greeting string        `json:"greeting,omitempty"`
}

// SettingsAck acknowledges a settings save.
type SettingsAck struct {
	Acknowledged bool   `json:"acknowledged"`
	Message      string `json:"message"`
}

// ActivityResult carries the rescheduled inactivity deadline.
type ActivityResult struct {
	InactivityDeadline time.Time `json:"inactivity_deadline"`
}

// HealthResponse is returned by the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}
