package domain

import "errors"

// Page is a navigation destination in the dashboard.
type Page string

const (
	PageOverview  Page = "overview"
	PageMerchants Page = "merchants"
	PageCustomers Page = "customers"
	PageRevenue   Page = "revenue"
	PageProducts  Page = "products"
	PageOrders    Page = "orders"
	PageAnalytics Page = "analytics"
	PageInventory Page = "inventory"
	PageAssistant Page = "ai-assistant"
	PageSettings  Page = "settings"
)

// DefaultPage is where every role lands after login and after logout resets.
const DefaultPage = PageOverview

// ErrUnknownPage reports a page outside the closed set.
var ErrUnknownPage = errors.New("unknown page")

var allPages = []Page{
	PageOverview,
	PageMerchants,
	PageCustomers,
	PageRevenue,
	PageProducts,
	PageOrders,
	PageAnalytics,
	PageInventory,
	PageAssistant,
	PageSettings,
}

// ParsePage maps a wire value to a Page.
func ParsePage(s string) (Page, error) {
	for _, p := range allPages {
		if Page(s) == p {
			return p, nil
		}
	}
	return "", ErrUnknownPage
}
