package models

import "strings"

// ViewID names one of the dashboard's top-level views.
type ViewID string

const (
	ViewLanding      ViewID = "landing"
	ViewDashboard    ViewID = "dashboard"
	ViewSupply       ViewID = "supply"
	ViewPricing      ViewID = "pricing"
	ViewPortfolio    ViewID = "portfolio"
	ViewAutomation   ViewID = "automation"
	ViewAnalytics    ViewID = "analytics"
	ViewMarket       ViewID = "market"
	ViewStakeholders ViewID = "stakeholders"
	ViewVessels      ViewID = "vessels"
)

// DefaultView is where the shell starts and where unknown ids land.
const DefaultView = ViewLanding

var allViews = []ViewID{
	ViewLanding,
	ViewDashboard,
	ViewSupply,
	ViewPricing,
	ViewPortfolio,
	ViewAutomation,
	ViewAnalytics,
	ViewMarket,
	ViewStakeholders,
	ViewVessels,
}

// AllViews returns the closed set of view ids in navigation order.
func AllViews() []ViewID {
	out := make([]ViewID, len(allViews))
	copy(out, allViews)
	return out
}

// Valid reports whether v is a member of the closed set.
func (v ViewID) Valid() bool {
	for _, known := range allViews {
		if v == known {
			return true
		}
	}
	return false
}

// ParseView normalises s and falls back to DefaultView when it is not a known id.
func ParseView(s string) ViewID {
	v := ViewID(strings.ToLower(strings.TrimSpace(s)))
	if v.Valid() {
		return v
	}
	return DefaultView
}
