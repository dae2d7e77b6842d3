package domain

import "errors"

// Role is the closed set of dashboard roles. The zero value is RoleNone,
// meaning nobody is logged in and no role has been selected yet.
type Role string

const (
	RoleNone     Role = ""
	RoleAdmin    Role = "admin"
	RoleMerchant Role = "merchant"
)

// ErrUnknownRole reports a role outside the closed set.
var ErrUnknownRole = errors.New("unknown role")

// rolePages is the static role-keyed navigation configuration. Page access is
// decided by this table alone, never derived at runtime.
var rolePages = map[Role][]Page{
	RoleAdmin: {
		PageOverview,
		PageMerchants,
		PageCustomers,
		PageRevenue,
		PageSettings,
	},
	RoleMerchant: {
		PageOverview,
		PageProducts,
		PageOrders,
		PageAnalytics,
		PageInventory,
		PageAssistant,
		PageSettings,
	},
}

// ParseRole maps a wire value to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleMerchant:
		return RoleMerchant, nil
	default:
		return RoleNone, ErrUnknownRole
	}
}

// Valid reports whether r is a selectable role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMerchant
}

// Permits reports whether the role may navigate to page.
func (r Role) Permits(page Page) bool {
	for _, p := range rolePages[r] {
		if p == page {
			return true
		}
	}
	return false
}

// Pages returns the permitted page set for the role in display order.
func (r Role) Pages() []Page {
	pages := rolePages[r]
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}
