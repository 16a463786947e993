package views

import "github.com/shubham-shewale/uptip/pkg/models"

// Entry binds a view id to its title, template body and page builder.
type Entry struct {
	ID       models.ViewID
	Title    string
	template string
	page     func(h Header, in Input) any
}

func entry[T any](id models.ViewID, title, tmpl string, build func(Input) T) Entry {
	return Entry{
		ID:       id,
		Title:    title,
		template: tmpl,
		page: func(h Header, in Input) any {
			return Page[T]{Header: h, Content: build(in)}
		},
	}
}

// catalog is ordered for navigation.
var catalog = []Entry{
	entry(models.ViewLanding, "UNOC PetroTrade Intelligence Platform", tmplLanding, buildLanding),
	entry(models.ViewDashboard, "UPTIP Command Center", tmplDashboard, buildDashboard),
	entry(models.ViewSupply, "Supply & Demand Analytics", tmplSupply, buildSupply),
	entry(models.ViewPricing, "Price Intelligence & Optimization", tmplPricing, buildPricing),
	entry(models.ViewPortfolio, "OMC Portfolio Management", tmplPortfolio, buildPortfolio),
	entry(models.ViewAutomation, "Process Automation & Blockchain", tmplAutomation, buildAutomation),
	entry(models.ViewAnalytics, "Trading Analytics", tmplAnalytics, buildAnalytics),
	entry(models.ViewMarket, "Global Market Intelligence", tmplMarket, buildMarket),
	entry(models.ViewStakeholders, "Stakeholder Management", tmplStakeholders, buildStakeholders),
	entry(models.ViewVessels, "Vessel Tracking", tmplVessels, buildVessels),
}

// Entries returns the catalog in navigation order.
func Entries() []Entry {
	return append([]Entry(nil), catalog...)
}

func Lookup(id models.ViewID) (Entry, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Title returns the display title, or the id itself for unknown views.
func Title(id models.ViewID) string {
	if e, ok := Lookup(id); ok {
		return e.Title
	}
	return string(id)
}

// Build returns the page data the template for id is executed with.
func Build(id models.ViewID, in Input) (any, error) {
	e, ok := Lookup(id)
	if !ok {
		return nil, ErrUnknownTemplate
	}
	h := Header{View: id, Title: e.Title, Metrics: in.Metrics, Nav: nav(id)}
	return e.page(h, in), nil
}
