package views

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shubham-shewale/uptip/pkg/models"
)

type StatCard struct {
	Label string
	Value string
}

type LandingContent struct {
	Stats    []StatCard
	Features []Feature
}

func buildLanding(in Input) LandingContent {
	m := in.Metrics
	return LandingContent{
		Stats: []StatCard{
			{"Current PMS Price", "UGX " + strconv.FormatFloat(m.Price, 'f', 0, 64) + "/L"},
			{"Vessels in Transit", strconv.Itoa(m.VesselCount)},
			{"National Stock Level", strconv.FormatFloat(m.StockLevel, 'f', 0, 64) + "%"},
			{"Active OMCs", strconv.Itoa(m.OMCCount)},
		},
		Features: append([]Feature(nil), features...),
	}
}

type DashboardContent struct {
	Period   string
	Periods  []Option
	Alerts   []Alert
	Demand   []DemandPoint
	Vessels  []VesselStatus
	Depots   []DepotLevel
	Prices   []MarketPrice
	OMCs     []OMCPerformance
	Stockout []StockoutRisk
}

var periodChoices = []choice{{"day", "Day"}, {"week", "Week"}, {"month", "Month"}}

func buildDashboard(in Input) DashboardContent {
	period, periods := choose(in, models.ViewDashboard, "period", "week", periodChoices)
	return DashboardContent{
		Period:   period,
		Periods:  periods,
		Alerts:   Alerts(in.Metrics),
		Demand:   append([]DemandPoint(nil), dashboardDemand...),
		Vessels:  append([]VesselStatus(nil), dashboardVessels...),
		Depots:   append([]DepotLevel(nil), depotLevels...),
		Prices:   append([]MarketPrice(nil), priceComparison...),
		OMCs:     append([]OMCPerformance(nil), omcPerformance...),
		Stockout: append([]StockoutRisk(nil), stockoutRisks...),
	}
}

type SupplyContent struct {
	Product     string
	Products    []Option
	Days        int
	DayOptions  []Option
	Forecast    []ForecastPoint
	Inventory   Inventory
	SupplyChain []SupplyChainPoint
	Patterns    []DemandPattern
	OMCDemand   []OMCDemand
	Routes      []TransportRoute
}

var (
	productChoices = []choice{{"PMS", "PMS (Petrol)"}, {"AGO", "AGO (Diesel)"}, {"JET", "JET A-1"}}
	dayChoices     = []choice{{"7", "7D"}, {"14", "14D"}, {"30", "30D"}}
)

const (
	defaultForecastDays = 14
	minForecastDays     = 7
	maxForecastDays     = 30
)

func buildSupply(in Input) SupplyContent {
	product, products := choose(in, models.ViewSupply, "product", "PMS", productChoices)

	days := defaultForecastDays
	if n, err := strconv.Atoi(in.Query.Get("days")); err == nil && n >= minForecastDays && n <= maxForecastDays {
		days = n
	}
	_, dayOpts := choose(in, models.ViewSupply, "days", strconv.Itoa(days), dayChoices)
	for i := range dayOpts {
		dayOpts[i].Active = dayOpts[i].Value == strconv.Itoa(days)
	}

	inv := baseInventory
	inv.CoverageDays = CoverageDays(inv.CurrentStock, inv.WeeklyOfftake)

	return SupplyContent{
		Product:     product,
		Products:    products,
		Days:        days,
		DayOptions:  dayOpts,
		Forecast:    Forecast(days, in.Rand),
		Inventory:   inv,
		SupplyChain: append([]SupplyChainPoint(nil), supplyChain...),
		Patterns:    append([]DemandPattern(nil), demandPatterns...),
		OMCDemand:   append([]OMCDemand(nil), omcDemand...),
		Routes:      append([]TransportRoute(nil), transportRoutes...),
	}
}

type RegionalRow struct {
	Date   string
	Values []int
}

type PricingContent struct {
	Market      string
	Markets     []Option
	Range       string
	Ranges      []Option
	LivePrice   decimal.Decimal
	LandedCost  decimal.Decimal
	Headroom    decimal.Decimal
	Costs       []CostComponent
	Columns     []string
	Regional    []RegionalRow
	Margins     []MarginRow
	Volatility  []VolatilityPoint
	Competitors []CompetitorPrice
}

var (
	marketChoices = []choice{{"all", "All Markets"}, {"uganda", "Uganda"}, {"kenya", "Kenya"}, {"tanzania", "Tanzania"}}
	rangeChoices  = []choice{{"week", "Week"}, {"month", "Month"}, {"quarter", "Quarter"}}
)

func buildPricing(in Input) PricingContent {
	market, markets := choose(in, models.ViewPricing, "market", "all", marketChoices)
	rng, ranges := choose(in, models.ViewPricing, "range", "month", rangeChoices)

	columns := []string{"Uganda", "Kenya", "Tanzania", "Rwanda", "Platts"}
	if market != "all" {
		columns = []string{strings.ToUpper(market[:1]) + market[1:]}
	}

	points := regionalPrices
	if rng == "week" {
		points = points[len(points)-2:]
	}
	rows := make([]RegionalRow, 0, len(points))
	for _, p := range points {
		byMarket := map[string]int{
			"Uganda": p.Uganda, "Kenya": p.Kenya, "Tanzania": p.Tanzania, "Rwanda": p.Rwanda, "Platts": p.Platts,
		}
		row := RegionalRow{Date: p.Date}
		for _, c := range columns {
			row.Values = append(row.Values, byMarket[c])
		}
		rows = append(rows, row)
	}

	live := decimal.NewFromFloat(in.Metrics.Price).Round(0)
	landed := LandedCost(landingCosts)
	return PricingContent{
		Market:      market,
		Markets:     markets,
		Range:       rng,
		Ranges:      ranges,
		LivePrice:   live,
		LandedCost:  landed,
		Headroom:    live.Sub(landed),
		Costs:       append([]CostComponent(nil), landingCosts...),
		Columns:     columns,
		Regional:    rows,
		Margins:     append([]MarginRow(nil), marginAnalysis...),
		Volatility:  append([]VolatilityPoint(nil), priceVolatility...),
		Competitors: append([]CompetitorPrice(nil), competitors...),
	}
}

type CreditRow struct {
	CreditLine
	Utilization decimal.Decimal
}

type PortfolioContent struct {
	Segment      string
	Segments     []Option
	ActiveOMCs   int
	Segmentation []Segment
	Indigenous   []IndigenousOMC
	Credit       []CreditRow
	Utilization  decimal.Decimal
	Payments     []PaymentMonth
	Allocations  []Allocation
}

var segmentChoices = []choice{
	{"all", "All Segments"}, {"strategic", "Strategic Partners"}, {"growth", "Growth Targets"}, {"indigenous", "Indigenous OMCs"},
}

func buildPortfolio(in Input) PortfolioContent {
	segment, segments := choose(in, models.ViewPortfolio, "segment", "all", segmentChoices)

	var seg []Segment
	for _, s := range omcSegments {
		if segment == "all" || s.Key == segment {
			seg = append(seg, s)
		}
	}
	var indigenous []IndigenousOMC
	if segment == "all" || segment == "indigenous" {
		indigenous = append(indigenous, indigenousOMCs...)
	}

	var limit, used int64
	credit := make([]CreditRow, 0, len(creditScoring))
	for _, c := range creditScoring {
		limit += c.CreditLimit
		used += c.Utilized
		credit = append(credit, CreditRow{CreditLine: c, Utilization: Utilization(c.Utilized, c.CreditLimit)})
	}

	return PortfolioContent{
		Segment:      segment,
		Segments:     segments,
		ActiveOMCs:   in.Metrics.OMCCount,
		Segmentation: seg,
		Indigenous:   indigenous,
		Credit:       credit,
		Utilization:  Utilization(used, limit),
		Payments:     append([]PaymentMonth(nil), paymentPerformance...),
		Allocations:  append([]Allocation(nil), allocations...),
	}
}

type AutomationContent struct {
	Process     string
	Processes   []Option
	Ledger      []LedgerTx
	Metrics     []AutomationMetric
	AvgSavings  decimal.Decimal
	TimeSavings []TimeSaving
	Contracts   []ContractPerf
	Efficiency  []Efficiency
}

var processChoices = []choice{{"all", "All Processes"}, {"blockchain", "Blockchain Only"}, {"automation", "Automation Only"}}

func buildAutomation(in Input) AutomationContent {
	process, processes := choose(in, models.ViewAutomation, "process", "all", processChoices)
	c := AutomationContent{
		Process:     process,
		Processes:   processes,
		AvgSavings:  AverageSavings(automationMetrics),
		TimeSavings: append([]TimeSaving(nil), timeSavings...),
		Contracts:   append([]ContractPerf(nil), contractPerformance...),
		Efficiency:  append([]Efficiency(nil), processEfficiency...),
	}
	if process != "automation" {
		c.Ledger = append(c.Ledger, ledgerTxs...)
	}
	if process != "blockchain" {
		c.Metrics = append(c.Metrics, automationMetrics...)
	}
	return c
}

type AnalyticsContent struct {
	Tab            string
	Tabs           []Option
	Range          string
	Ranges         []Option
	KPIs           []KPI
	Forecast       []ForecastRow
	Trends         []PriceTrend
	Correlations   []Correlation
	Scenarios      []RiskScenario
	ExpectedImpact decimal.Decimal
	Reports        []Report
}

var (
	analyticsTabs = []choice{
		{"forecasting", "Demand Forecasting"}, {"pricing", "Price Analysis"}, {"risk", "Risk Management"}, {"reports", "Reports"},
	}
	analyticsRanges = []choice{{"7d", "Last 7 Days"}, {"14d", "Last 14 Days"}, {"30d", "Last 30 Days"}, {"90d", "Last Quarter"}}
)

func buildAnalytics(in Input) AnalyticsContent {
	tab, tabs := choose(in, models.ViewAnalytics, "tab", "forecasting", analyticsTabs)
	rng, ranges := choose(in, models.ViewAnalytics, "range", "14d", analyticsRanges)
	c := AnalyticsContent{
		Tab:    tab,
		Tabs:   tabs,
		Range:  rng,
		Ranges: ranges,
		KPIs:   append([]KPI(nil), analyticsKPIs...),
	}
	switch tab {
	case "forecasting":
		c.Forecast = append(c.Forecast, analyticsForecast...)
	case "pricing":
		c.Trends = append(c.Trends, priceTrends...)
		c.Correlations = append(c.Correlations, correlations...)
	case "risk":
		c.Scenarios = append(c.Scenarios, riskScenarios...)
		c.ExpectedImpact = ExpectedImpact(riskScenarios)
	case "reports":
		c.Reports = append(c.Reports, reports...)
	}
	return c
}

type MarketContent struct {
	Region     string
	Regions    []Option
	LastUpdate string
	Prices     []GlobalPrice
	Routes     []SupplyRoute
	Alerts     []GeoAlert
	Markets    []MarketPrice
	Specs      []SpecTrend
	OPEC       []OPECMonth
}

var regionChoices = []choice{
	{"all", "All Regions"}, {"red-sea", "Red Sea"}, {"middle-east", "Middle East"}, {"east-africa", "East Africa"},
}

func buildMarket(in Input) MarketContent {
	region, regions := choose(in, models.ViewMarket, "region", "all", regionChoices)

	var alerts []GeoAlert
	for _, a := range geoAlerts {
		if region == "all" || slug(a.Region) == region {
			alerts = append(alerts, a)
		}
	}

	return MarketContent{
		Region:     region,
		Regions:    regions,
		LastUpdate: in.Now.Truncate(time.Minute).Format("15:04"),
		Prices:     append([]GlobalPrice(nil), globalPrices...),
		Routes:     append([]SupplyRoute(nil), supplyRoutes...),
		Alerts:     alerts,
		Markets:    append([]MarketPrice(nil), regionalMarkets...),
		Specs:      append([]SpecTrend(nil), specTrends...),
		OPEC:       append([]OPECMonth(nil), opecProduction...),
	}
}

type StakeholdersContent struct {
	Tab            string
	Tabs           []Option
	Search         string
	Partners       int
	KPC            KPCMetrics
	Terminals      []Terminal
	Operational    int
	OMCs           []OMCPartner
	IndigenousOMCs int
	Suppliers      []SupplyPartner
	ContractTotal  int
	Communications []Communication
}

var stakeholderTabs = []choice{
	{"overview", "Overview"}, {"kpc", "KPC Partnership"}, {"terminals", "Terminal Operators"},
	{"omcs", "OMC Partners"}, {"suppliers", "Supply Partners"}, {"communications", "Communications"},
}

func buildStakeholders(in Input) StakeholdersContent {
	tab, tabs := choose(in, models.ViewStakeholders, "tab", "overview", stakeholderTabs)
	q := strings.ToLower(strings.TrimSpace(in.Query.Get("q")))
	match := func(s string) bool { return q == "" || strings.Contains(strings.ToLower(s), q) }

	c := StakeholdersContent{
		Tab:           tab,
		Tabs:          tabs,
		Search:        in.Query.Get("q"),
		Partners:      len(omcPartners) + len(supplyPartners) + len(terminalOperators),
		KPC:           kpcMetrics,
		ContractTotal: ContractTotal(supplyPartners),
	}
	for _, t := range terminalOperators {
		if t.Status == "operational" {
			c.Operational++
		}
		if match(t.Name) {
			c.Terminals = append(c.Terminals, t)
		}
	}
	for _, o := range omcPartners {
		if o.Type == "Indigenous" {
			c.IndigenousOMCs++
		}
		if match(o.Name) {
			c.OMCs = append(c.OMCs, o)
		}
	}
	for _, s := range supplyPartners {
		if match(s.Name) {
			s.Products = append([]string(nil), s.Products...)
			c.Suppliers = append(c.Suppliers, s)
		}
	}
	for _, m := range communications {
		if match(m.Stakeholder) {
			c.Communications = append(c.Communications, m)
		}
	}
	return c
}

type VesselRow struct {
	Vessel
	Href     string
	Selected bool
}

type VesselsContent struct {
	Vessels    []VesselRow
	Selected   *Vessel
	Ports      []Port
	Total      int
	InTransit  int
	TotalCargo int
}

func buildVessels(in Input) VesselsContent {
	id := strings.ToUpper(strings.TrimSpace(in.Query.Get("vessel")))
	c := VesselsContent{
		Ports:      append([]Port(nil), ports...),
		Total:      len(vessels),
		InTransit:  InTransit(vessels),
		TotalCargo: TotalCargo(vessels),
	}
	for _, v := range vessels {
		row := VesselRow{Vessel: v, Href: link(in.Query, models.ViewVessels, "vessel", v.ID), Selected: v.ID == id}
		if row.Selected {
			sel := v
			c.Selected = &sel
		}
		c.Vessels = append(c.Vessels, row)
	}
	return c
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
