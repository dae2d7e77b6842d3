package service

import "github.com/vyaapaarai/console/internal/console/domain"

// StaticFeed maps roles to their fixed notification entries.
type StaticFeed map[domain.Role][]string

// DemoFeed returns the notices each role sees after login.
func DemoFeed() StaticFeed {
	return StaticFeed{
		domain.RoleAdmin: {
			"2 new merchants are awaiting approval",
			"Platform revenue is up 8.2% this week",
			"5 customer disputes were escalated to support",
			"Monthly commission settlement completed",
		},
		domain.RoleMerchant: {
			"New order ORD-1042 received",
			"Wireless Earbuds is running low on stock (6 left)",
			"Payout of $1,240.50 has been processed",
			"3 customers left new product reviews",
		},
	}
}

// ForRole returns a copy of the feed for role, in order. Unknown roles get
// an empty feed.
func (f StaticFeed) ForRole(role domain.Role) []string {
	return append([]string(nil), f[role]...)
}
