package views_test

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/views"
	"github.com/shubham-shewale/uptip/pkg/models"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func input(q string) views.Input {
	values, _ := url.ParseQuery(q)
	return views.Input{
		Metrics: models.DefaultLiveMetrics(),
		Query:   values,
		Now:     time.Date(2024, 12, 16, 10, 42, 37, 0, time.UTC),
		Rand:    fixedRand(0.5),
	}
}

func render(t *testing.T, id models.ViewID, q string) string {
	t.Helper()
	r, err := views.NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, id, input(q)))
	return buf.String()
}

func TestCatalog_CoversEveryView(t *testing.T) {
	entries := views.Entries()
	require.Len(t, entries, len(models.AllViews()))
	for i, v := range models.AllViews() {
		assert.Equal(t, v, entries[i].ID)
		assert.NotEmpty(t, entries[i].Title)
	}
	assert.Equal(t, "Vessel Tracking", views.Title(models.ViewVessels))
	assert.Equal(t, "nope", views.Title("nope"))
}

func TestRenderer_EveryViewRenders(t *testing.T) {
	for _, v := range models.AllViews() {
		t.Run(string(v), func(t *testing.T) {
			out := render(t, v, "")
			assert.Contains(t, out, "<h1>"+escaped(views.Title(v))+"</h1>")
			assert.Contains(t, out, `id="m-price">UGX 4,285/L`)
		})
	}
}

// escaped mirrors html/template escaping for the titles we use.
func escaped(s string) string {
	return strings.ReplaceAll(s, "&", "&amp;")
}

func TestRenderer_UnknownView(t *testing.T) {
	r, err := views.NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	err = r.Render(&buf, "bogus", input(""))
	assert.ErrorIs(t, err, views.ErrUnknownTemplate)
	assert.Zero(t, buf.Len())
}

func TestLanding_StatCards(t *testing.T) {
	out := render(t, models.ViewLanding, "")
	for _, want := range []string{"UGX 4285/L", ">3<", "78%", ">47<", `href="/view/vessels"`} {
		assert.Contains(t, out, want)
	}
}

func TestAlerts(t *testing.T) {
	m := models.DefaultLiveMetrics()
	alerts := views.Alerts(m)
	require.Len(t, alerts, 2)
	assert.Equal(t, "warning", alerts[0].Level)
	assert.Contains(t, alerts[0].Message, "MT Kampala")
	assert.Equal(t, "info", alerts[1].Level)

	m.StockLevel = 39.9
	alerts = views.Alerts(m)
	require.Len(t, alerts, 3)
	assert.Equal(t, "critical", alerts[0].Level)

	m.StockLevel = 40
	assert.Len(t, views.Alerts(m), 2)
}

func TestDashboard_Period(t *testing.T) {
	data, err := views.Build(models.ViewDashboard, input("period=MONTH"))
	require.NoError(t, err)
	page := data.(views.Page[views.DashboardContent])
	assert.Equal(t, "month", page.Content.Period)
	assert.Equal(t, models.ViewDashboard, page.Header.View)

	data, _ = views.Build(models.ViewDashboard, input("period=fortnight"))
	assert.Equal(t, "week", data.(views.Page[views.DashboardContent]).Content.Period)
}

func TestSupply_ForecastAndCoverage(t *testing.T) {
	assert.Equal(t, 3, views.CoverageDays(125, 280))
	assert.Equal(t, 0, views.CoverageDays(125, 0))

	pts := views.Forecast(14, fixedRand(0))
	require.Len(t, pts, 14)
	for i, p := range pts {
		if i < 7 {
			require.NotNil(t, p.Actual, "day %d", i+1)
		} else {
			assert.Nil(t, p.Actual, "day %d", i+1)
		}
		assert.Less(t, p.Lower, p.Upper)
	}
	assert.InDelta(t, 42.0, pts[0].Predicted, 1e-9)
	assert.InDelta(t, 40.0, *pts[0].Actual, 1e-9)

	data, err := views.Build(models.ViewSupply, input("product=ago&days=30"))
	require.NoError(t, err)
	c := data.(views.Page[views.SupplyContent]).Content
	assert.Equal(t, "AGO", c.Product)
	assert.Equal(t, 30, c.Days)
	assert.Len(t, c.Forecast, 30)
	assert.Equal(t, 3, c.Inventory.CoverageDays)

	data, _ = views.Build(models.ViewSupply, input("product=kerosene&days=90"))
	c = data.(views.Page[views.SupplyContent]).Content
	assert.Equal(t, "PMS", c.Product)
	assert.Equal(t, 14, c.Days)
}

func TestPricing_LandedCost(t *testing.T) {
	data, err := views.Build(models.ViewPricing, input(""))
	require.NoError(t, err)
	c := data.(views.Page[views.PricingContent]).Content
	assert.True(t, c.LandedCost.Equal(decimal.NewFromInt(5650)), c.LandedCost.String())
	assert.True(t, c.Headroom.Equal(decimal.NewFromInt(4285-5650)), c.Headroom.String())
	assert.Len(t, c.Columns, 5)
	assert.Len(t, c.Regional, 4)

	data, _ = views.Build(models.ViewPricing, input("market=kenya&range=week"))
	c = data.(views.Page[views.PricingContent]).Content
	assert.Equal(t, []string{"Kenya"}, c.Columns)
	require.Len(t, c.Regional, 2)
	assert.Equal(t, []int{4350}, c.Regional[1].Values)

	assert.Contains(t, render(t, models.ViewPricing, ""), `id="landed">5650<`)
}

func TestPortfolio_Segments(t *testing.T) {
	data, _ := views.Build(models.ViewPortfolio, input(""))
	c := data.(views.Page[views.PortfolioContent]).Content
	assert.Len(t, c.Segmentation, 4)
	assert.Len(t, c.Indigenous, 5)
	assert.Equal(t, "78.75", c.Utilization.StringFixed(2))
	assert.Equal(t, 47, c.ActiveOMCs)

	data, _ = views.Build(models.ViewPortfolio, input("segment=growth"))
	c = data.(views.Page[views.PortfolioContent]).Content
	require.Len(t, c.Segmentation, 1)
	assert.Equal(t, "Growth Targets", c.Segmentation[0].Segment)
	assert.Empty(t, c.Indigenous)
}

func TestAutomation_ProcessFilter(t *testing.T) {
	data, _ := views.Build(models.ViewAutomation, input("process=blockchain"))
	c := data.(views.Page[views.AutomationContent]).Content
	assert.Len(t, c.Ledger, 5)
	assert.Empty(t, c.Metrics)
	assert.Equal(t, "96.15", c.AvgSavings.StringFixed(2))
}

func TestAnalytics_Tabs(t *testing.T) {
	data, _ := views.Build(models.ViewAnalytics, input(""))
	c := data.(views.Page[views.AnalyticsContent]).Content
	assert.Equal(t, "forecasting", c.Tab)
	assert.Len(t, c.Forecast, 14)
	assert.Empty(t, c.Scenarios)

	data, _ = views.Build(models.ViewAnalytics, input("tab=risk"))
	c = data.(views.Page[views.AnalyticsContent]).Content
	assert.Len(t, c.Scenarios, 5)
	assert.Equal(t, "-0.2185", c.ExpectedImpact.StringFixed(4))

	data, _ = views.Build(models.ViewAnalytics, input("tab=astrology"))
	assert.Equal(t, "forecasting", data.(views.Page[views.AnalyticsContent]).Content.Tab)
}

func TestMarket_RegionAndStamp(t *testing.T) {
	data, _ := views.Build(models.ViewMarket, input("region=red-sea"))
	c := data.(views.Page[views.MarketContent]).Content
	assert.Equal(t, "10:42", c.LastUpdate)
	require.Len(t, c.Alerts, 1)
	assert.Equal(t, "Red Sea", c.Alerts[0].Region)

	data, _ = views.Build(models.ViewMarket, input(""))
	assert.Len(t, data.(views.Page[views.MarketContent]).Content.Alerts, 3)
}

func TestStakeholders_CountsAndSearch(t *testing.T) {
	data, _ := views.Build(models.ViewStakeholders, input(""))
	c := data.(views.Page[views.StakeholdersContent]).Content
	assert.Equal(t, 163, c.ContractTotal)
	assert.Equal(t, 2, c.Operational)
	assert.Equal(t, 3, c.IndigenousOMCs)
	assert.Equal(t, 13, c.Partners)

	data, _ = views.Build(models.ViewStakeholders, input("tab=omcs&q=uganda"))
	c = data.(views.Page[views.StakeholdersContent]).Content
	assert.Equal(t, "omcs", c.Tab)
	assert.Len(t, c.OMCs, 3)
	assert.Equal(t, 3, c.IndigenousOMCs, "counts ignore the search")

	out := render(t, models.ViewStakeholders, "")
	assert.Contains(t, out, `id="contracts">$163M<`)
}

func TestVessels_Selection(t *testing.T) {
	data, _ := views.Build(models.ViewVessels, input("vessel=mt-glory"))
	c := data.(views.Page[views.VesselsContent]).Content
	assert.Equal(t, 1, c.InTransit)
	assert.Equal(t, 125000, c.TotalCargo)
	require.NotNil(t, c.Selected)
	assert.Equal(t, "MT Glory Star", c.Selected.Name)

	data, _ = views.Build(models.ViewVessels, input("vessel=ghost"))
	assert.Nil(t, data.(views.Page[views.VesselsContent]).Content.Selected)

	assert.Contains(t, render(t, models.ViewVessels, ""), `id="total-cargo">125,000<`)
}

func TestOptions_KeepOtherQueryParams(t *testing.T) {
	data, _ := views.Build(models.ViewSupply, input("product=AGO"))
	c := data.(views.Page[views.SupplyContent]).Content
	for _, o := range c.DayOptions {
		assert.Contains(t, o.Href, "product=AGO")
	}
}

func TestNewRand_Concurrent(t *testing.T) {
	rnd := views.NewRand(1)
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				f := rnd.Float64()
				if f < 0 || f >= 1 {
					t.Errorf("draw out of range: %f", f)
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}

func TestSummary_Headlines(t *testing.T) {
	for _, v := range models.AllViews() {
		cards, err := views.Summary(v, input(""))
		require.NoError(t, err, v)
		assert.NotEmpty(t, cards, v)
	}

	cards, _ := views.Summary(models.ViewPricing, input(""))
	assert.Contains(t, cards, views.StatCard{Label: "Headroom", Value: "UGX -1,365"})

	cards, _ = views.Summary(models.ViewVessels, input(""))
	assert.Contains(t, cards, views.StatCard{Label: "Total Cargo", Value: "125,000 MT"})
	assert.Contains(t, cards, views.StatCard{Label: "In Transit", Value: "1"})

	cards, _ = views.Summary(models.ViewStakeholders, input("q=zzz"))
	assert.Contains(t, cards, views.StatCard{Label: "Supply Contracts", Value: "$163M"})

	_, err := views.Summary("bogus", input(""))
	assert.ErrorIs(t, err, views.ErrUnknownTemplate)
}
