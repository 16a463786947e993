package views

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/shubham-shewale/uptip/pkg/models"
)

// Summary returns the headline figures of a view as label/value pairs, for
// surfaces that cannot show the full page.
func Summary(id models.ViewID, in Input) ([]StatCard, error) {
	page, err := Build(id, in)
	if err != nil {
		return nil, err
	}

	switch p := page.(type) {
	case Page[LandingContent]:
		return p.Content.Stats, nil
	case Page[DashboardContent]:
		c := p.Content
		cards := []StatCard{
			{"Alerts", strconv.Itoa(len(c.Alerts))},
			{"Tracked Vessels", strconv.Itoa(len(c.Vessels))},
			{"Depots", strconv.Itoa(len(c.Depots))},
		}
		for _, a := range c.Alerts {
			cards = append(cards, StatCard{a.Level, a.Message})
		}
		return cards, nil
	case Page[SupplyContent]:
		c := p.Content
		return []StatCard{
			{"Current Stock", strconv.Itoa(c.Inventory.CurrentStock) + "M L"},
			{"Coverage", strconv.Itoa(c.Inventory.CoverageDays) + " days"},
			{"Forecast Horizon", strconv.Itoa(c.Days) + " days"},
		}, nil
	case Page[PricingContent]:
		c := p.Content
		return []StatCard{
			{"Live PMS Price", "UGX " + humanize.Comma(c.LivePrice.IntPart())},
			{"Landed Cost", "UGX " + humanize.Comma(c.LandedCost.IntPart())},
			{"Headroom", "UGX " + humanize.Comma(c.Headroom.IntPart())},
		}, nil
	case Page[PortfolioContent]:
		c := p.Content
		return []StatCard{
			{"Active OMCs", strconv.Itoa(c.ActiveOMCs)},
			{"Credit Utilization", c.Utilization.StringFixed(1) + "%"},
			{"Indigenous OMCs", strconv.Itoa(len(c.Indigenous))},
		}, nil
	case Page[AutomationContent]:
		c := p.Content
		return []StatCard{
			{"Average Time Saved", c.AvgSavings.StringFixed(1) + "%"},
			{"Ledger Transactions", strconv.Itoa(len(ledgerTxs))},
		}, nil
	case Page[AnalyticsContent]:
		cards := make([]StatCard, 0, len(p.Content.KPIs))
		for _, k := range p.Content.KPIs {
			cards = append(cards, StatCard{k.Label, k.Value})
		}
		return cards, nil
	case Page[MarketContent]:
		c := p.Content
		return []StatCard{
			{"Geopolitical Alerts", strconv.Itoa(len(c.Alerts))},
			{"Benchmarks", strconv.Itoa(len(c.Prices))},
			{"Last Update", c.LastUpdate},
		}, nil
	case Page[StakeholdersContent]:
		c := p.Content
		return []StatCard{
			{"Partners", strconv.Itoa(c.Partners)},
			{"Operational Terminals", strconv.Itoa(c.Operational)},
			{"Indigenous OMCs", strconv.Itoa(c.IndigenousOMCs)},
			{"Supply Contracts", "$" + strconv.Itoa(c.ContractTotal) + "M"},
		}, nil
	case Page[VesselsContent]:
		c := p.Content
		return []StatCard{
			{"Fleet", strconv.Itoa(c.Total)},
			{"In Transit", strconv.Itoa(c.InTransit)},
			{"Total Cargo", humanize.Comma(int64(c.TotalCargo)) + " MT"},
		}, nil
	}
	return nil, ErrUnknownTemplate
}
