package views

import "github.com/shubham-shewale/uptip/pkg/models"

// Fixture tables. Builders copy what they need into their own page structs;
// nothing here is written after init.

type DemandPoint struct {
	Day      string
	Date     string
	Actual   float64
	Forecast float64
}

type VesselStatus struct {
	Vessel string
	Cargo  string
	Volume string
	ETA    string
	Port   string
	Status string
}

type DepotLevel struct {
	Depot string
	PMS   int
	AGO   int
	Jet   int
}

type MarketPrice struct {
	Market string
	PMS    int
	AGO    int
	Jet    int
	Change float64
}

type OMCPerformance struct {
	Name       string
	Volume     int
	Payment    int
	Indigenous bool
}

type StockoutRisk struct {
	Product string
	Risk    int
	Days    int
}

var dashboardDemand = []DemandPoint{
	{"Mon", "16-Dec", 8.5, 8.7},
	{"Tue", "17-Dec", 9.2, 9.0},
	{"Wed", "18-Dec", 8.8, 8.9},
	{"Thu", "19-Dec", 9.5, 9.3},
	{"Fri", "20-Dec", 10.2, 10.0},
	{"Sat", "21-Dec", 11.5, 11.2},
	{"Sun", "22-Dec", 10.8, 10.5},
}

var dashboardVessels = []VesselStatus{
	{"MT Kampala", "PMS", "8M Liters", "2 days", "Mombasa", "In Transit"},
	{"MT Victoria", "AGO", "6M Liters", "5 days", "Dar es Salaam", "Loading"},
	{"MT Nile", "JET A-1", "3M Liters", "7 days", "Mombasa", "Scheduled"},
}

var depotLevels = []DepotLevel{
	{"Kampala", 78, 65, 82},
	{"Jinja", 45, 52, 71},
	{"Mbarara", 62, 58, 55},
	{"Gulu", 38, 41, 48},
}

var priceComparison = []MarketPrice{
	{Market: "Uganda", PMS: 4285, AGO: 4150, Jet: 3980},
	{Market: "Kenya", PMS: 4350, AGO: 4200, Jet: 4020},
	{Market: "Tanzania", PMS: 4320, AGO: 4180, Jet: 4000},
	{Market: "Rwanda", PMS: 4400, AGO: 4250, Jet: 4050},
}

var omcPerformance = []OMCPerformance{
	{"Total Uganda", 35, 98, false},
	{"Shell Uganda", 28, 97, false},
	{"Stabex", 18, 95, true},
	{"Mogas", 12, 92, true},
	{"Others", 7, 88, true},
}

var stockoutRisks = []StockoutRisk{
	{"PMS", 15, 8},
	{"AGO", 35, 5},
	{"JET A-1", 10, 12},
}

// supply

type SupplyChainPoint struct {
	Date    string
	Mombasa int
	Dar     int
	Kampala int
	Demand  int
}

type DemandPattern struct {
	Hour    string
	Weekday float64
	Weekend float64
}

type OMCDemand struct {
	OMC      string
	Demand   int
	Forecast int
	Variance int
}

type TransportRoute struct {
	Route       string
	DistanceKm  int
	TransitHrs  int
	CostUSD     int
	Utilization int
}

type Inventory struct {
	CurrentStock  int
	SafetyStock   int
	ReorderPoint  int
	EconomicOrder int
	LeadTimeDays  int
	WeeklyOfftake int
	CoverageDays  int
}

var supplyChain = []SupplyChainPoint{
	{"Dec 1", 45, 32, 38, 42},
	{"Dec 3", 48, 35, 41, 44},
	{"Dec 5", 52, 38, 45, 46},
	{"Dec 7", 50, 40, 48, 45},
	{"Dec 9", 55, 42, 52, 48},
	{"Dec 11", 58, 45, 55, 52},
	{"Dec 13", 60, 48, 58, 55},
	{"Dec 15", 62, 50, 60, 58},
}

var demandPatterns = []DemandPattern{
	{"00:00", 2.5, 1.8},
	{"04:00", 1.8, 1.2},
	{"06:00", 4.5, 2.8},
	{"08:00", 8.2, 5.5},
	{"10:00", 7.5, 6.8},
	{"12:00", 6.8, 7.2},
	{"14:00", 6.2, 6.5},
	{"16:00", 7.8, 5.8},
	{"18:00", 9.2, 6.2},
	{"20:00", 5.5, 4.8},
	{"22:00", 3.8, 3.2},
}

var omcDemand = []OMCDemand{
	{"Total", 28, 32, 14},
	{"Shell", 22, 24, 9},
	{"Stabex", 15, 18, 20},
	{"Mogas", 10, 12, 20},
	{"Hass", 8, 9, 12},
	{"Others", 17, 20, 18},
}

var transportRoutes = []TransportRoute{
	{"Mombasa-Kampala", 1152, 48, 180, 78},
	{"Dar-Kampala", 1420, 60, 220, 65},
	{"Kampala-Gulu", 332, 8, 45, 82},
	{"Kampala-Mbarara", 268, 6, 35, 90},
}

var baseInventory = Inventory{
	CurrentStock:  125,
	SafetyStock:   45,
	ReorderPoint:  72,
	EconomicOrder: 95,
	LeadTimeDays:  5,
	WeeklyOfftake: 280,
}

// pricing

type RegionalPrice struct {
	Date     string
	Uganda   int
	Kenya    int
	Tanzania int
	Rwanda   int
	Platts   int
}

type CostComponent struct {
	Component  string
	Value      int64
	Percentage int
}

type MarginRow struct {
	Product   string
	Current   int
	Optimal   int
	Potential int
}

type VolatilityPoint struct {
	Month      string
	Volatility float64
	Event      string
}

type CompetitorPrice struct {
	OMC    string
	Price  int
	Volume int
	Margin float64
}

var regionalPrices = []RegionalPrice{
	{"Dec 1", 4150, 4220, 4180, 4280, 3850},
	{"Dec 5", 4180, 4250, 4200, 4300, 3880},
	{"Dec 10", 4220, 4280, 4240, 4350, 3920},
	{"Dec 15", 4285, 4350, 4320, 4400, 3980},
}

var landingCosts = []CostComponent{
	{"FOB Platts", 3980, 70},
	{"Freight", 220, 4},
	{"Insurance", 45, 1},
	{"Pipeline Tariff", 380, 7},
	{"Storage", 120, 2},
	{"Taxes & Duties", 680, 12},
	{"Margin", 225, 4},
}

var marginAnalysis = []MarginRow{
	{"PMS", 225, 280, 55},
	{"AGO", 210, 265, 55},
	{"JET A-1", 195, 240, 45},
}

var priceVolatility = []VolatilityPoint{
	{"Aug", 2.8, "Stable"},
	{"Sep", 4.2, "OPEC Cut"},
	{"Oct", 3.5, "Normal"},
	{"Nov", 5.8, "Conflict"},
	{"Dec", 3.2, "Stabilizing"},
}

var competitors = []CompetitorPrice{
	{"Total", 4350, 35, 3.2},
	{"Shell", 4355, 28, 3.3},
	{"UNOC", 4285, 25, 2.8},
	{"Stabex", 4320, 18, 3.0},
	{"Others", 4340, 14, 3.1},
}

// portfolio

type Segment struct {
	Key     string
	Segment string
	Count   int
	Volume  int
	Revenue int
}

type IndigenousOMC struct {
	Name    string
	Volume  int
	Growth  int
	Payment int
	Score   int
}

type CreditLine struct {
	OMC         string
	CreditLimit int64
	Utilized    int64
	Risk        string
	Score       int
}

type PaymentMonth struct {
	Month     string
	OnTime    int
	Late7     int
	Late30    int
	Defaulted int
}

type Allocation struct {
	Product   string
	Total     int
	Strategic int
	Growth    int
	Maintain  int
	Risk      int
}

var omcSegments = []Segment{
	{"strategic", "Strategic Partners", 5, 45, 52},
	{"growth", "Growth Targets", 12, 28, 25},
	{"maintain", "Maintain", 20, 22, 18},
	{"risk", "Risk Watch", 10, 5, 5},
}

var indigenousOMCs = []IndigenousOMC{
	{"Stabex Oil", 18, 22, 95, 88},
	{"Mogas Uganda", 12, 35, 92, 85},
	{"Hass Petroleum", 8, 28, 88, 78},
	{"Petro Uganda", 6, 45, 85, 82},
	{"Lake Oil", 4, 18, 90, 75},
}

var creditScoring = []CreditLine{
	{"Total Uganda", 8500, 6800, "Low", 92},
	{"Shell Uganda", 7200, 5400, "Low", 89},
	{"Stabex Oil", 3500, 2800, "Medium", 78},
	{"Mogas", 2800, 2100, "Medium", 75},
	{"Hass", 2000, 1800, "High", 65},
}

var paymentPerformance = []PaymentMonth{
	{"Aug", 85, 10, 4, 1},
	{"Sep", 87, 8, 3, 2},
	{"Oct", 90, 7, 2, 1},
	{"Nov", 92, 5, 2, 1},
	{"Dec", 95, 3, 1, 1},
}

var allocations = []Allocation{
	{"PMS", 100, 45, 28, 22, 5},
	{"AGO", 80, 40, 25, 12, 3},
	{"JET", 30, 18, 8, 3, 1},
}

// automation

type LedgerTx struct {
	ID        string
	Type      string
	Subject   string
	Timestamp string
	Status    string
}

type AutomationMetric struct {
	Process   string
	Manual    int
	Automated int
	Savings   float64
}

type TimeSaving struct {
	Month     string
	Manual    int
	Automated int
}

type ContractPerf struct {
	Contract   string
	Executions int
	Accuracy   float64
	AvgTime    float64
}

type Efficiency struct {
	Name   string
	Value  float64
	Target float64
}

var ledgerTxs = []LedgerTx{
	{"TX001", "Bill of Lading", "MT Kampala", "10:23:45", "Verified"},
	{"TX002", "Quality Certificate", "PMS", "10:45:12", "Verified"},
	{"TX003", "KPC Receipt", "8M Liters", "11:05:33", "Pending"},
	{"TX004", "Demurrage Calc", "$12,450", "11:15:20", "Executed"},
	{"TX005", "Payment Settlement", "Total Uganda", "11:30:15", "Completed"},
}

var automationMetrics = []AutomationMetric{
	{"Document Validation", 240, 5, 98},
	{"Demurrage Calculation", 180, 1, 99.4},
	{"Invoice Processing", 120, 2, 98.3},
	{"Quality Verification", 90, 10, 88.9},
}

var timeSavings = []TimeSaving{
	{"Aug", 820, 180},
	{"Sep", 680, 320},
	{"Oct", 520, 480},
	{"Nov", 340, 660},
	{"Dec", 180, 820},
}

var contractPerformance = []ContractPerf{
	{"Demurrage", 45, 99.7, 1.2},
	{"Quality Check", 128, 99.9, 0.8},
	{"Payment", 89, 100, 2.1},
	{"Allocation", 23, 98.5, 3.5},
}

var processEfficiency = []Efficiency{
	{"Error Rate", 0.3, 1},
	{"Processing Speed", 95, 80},
	{"Automation Level", 82, 70},
	{"Cost Savings", 78, 60},
}

// analytics

type ForecastRow struct {
	Day        string
	Actual     *float64
	Forecast   float64
	Lower      float64
	Upper      float64
	Confidence int
}

type PriceTrend struct {
	Month  string
	Brent  float64
	Platts float64
	Uganda int
	Margin float64
}

type RiskScenario struct {
	Scenario    string
	Probability int
	Impact      int64
	VaR95       float64
	VaR99       float64
}

type Correlation struct {
	Pair         string
	Value        float64
	Significance string
	Trend        string
}

type KPI struct {
	Label  string
	Value  string
	Change string
	Up     bool
	Target string
}

type Report struct {
	Name     string
	Schedule string
	Format   string
}

func actual(v float64) *float64 { return &v }

var analyticsForecast = []ForecastRow{
	{"Day 1", actual(8.5), 8.7, 8.2, 9.2, 95},
	{"Day 2", actual(9.2), 9.0, 8.5, 9.5, 94},
	{"Day 3", actual(8.8), 8.9, 8.4, 9.4, 93},
	{"Day 4", actual(9.5), 9.3, 8.8, 9.8, 92},
	{"Day 5", actual(10.2), 10.0, 9.5, 10.5, 91},
	{"Day 6", actual(11.5), 11.2, 10.7, 11.7, 90},
	{"Day 7", actual(10.8), 10.5, 10.0, 11.0, 89},
	{"Day 8", nil, 10.2, 9.6, 10.8, 88},
	{"Day 9", nil, 9.8, 9.2, 10.4, 87},
	{"Day 10", nil, 10.5, 9.8, 11.2, 85},
	{"Day 11", nil, 11.0, 10.2, 11.8, 83},
	{"Day 12", nil, 11.5, 10.6, 12.4, 81},
	{"Day 13", nil, 10.8, 9.8, 11.8, 79},
	{"Day 14", nil, 10.2, 9.1, 11.3, 77},
}

var priceTrends = []PriceTrend{
	{"Jul", 82.5, 84.2, 4285, 2.1},
	{"Aug", 84.1, 86.0, 4320, 2.2},
	{"Sep", 86.3, 88.1, 4380, 2.0},
	{"Oct", 83.7, 85.5, 4350, 2.3},
	{"Nov", 81.2, 83.0, 4290, 2.5},
	{"Dec", 79.8, 81.5, 4250, 2.4},
}

var riskScenarios = []RiskScenario{
	{"Base Case", 60, 0, 2.1, 3.2},
	{"Price Spike", 15, -850000, 4.5, 6.8},
	{"Supply Disruption", 10, -1200000, 5.2, 7.9},
	{"Demand Surge", 10, 450000, 2.8, 4.1},
	{"FX Volatility", 5, -320000, 3.1, 4.7},
}

var correlations = []Correlation{
	{"Brent-PMS", 0.94, "High", "Stable"},
	{"USD/UGX-Margin", -0.67, "Medium", "Increasing"},
	{"Demand-Season", 0.82, "High", "Cyclical"},
	{"Stock-Price", -0.45, "Low", "Decreasing"},
	{"Kenya-Uganda Price", 0.91, "High", "Stable"},
}

var analyticsKPIs = []KPI{
	{"Forecast Accuracy", "92.3%", "+1.2%", true, "90%"},
	{"Price Deviation", "$0.45/bbl", "-$0.12", true, "<$0.50"},
	{"VaR (95%)", "$2.1M", "+$0.3M", false, "<$2.5M"},
	{"Model Confidence", "88%", "+2%", true, ">85%"},
}

var reports = []Report{
	{"Daily Trading Summary", "Daily at 18:00 EAT", "PDF, Excel"},
	{"Weekly Market Analysis", "Every Monday", "PDF, PowerPoint"},
	{"Risk Assessment Report", "Monthly", "PDF"},
}

// market

type GlobalPrice struct {
	Time   string
	Brent  float64
	WTI    float64
	Platts float64
}

type SupplyRoute struct {
	Route    string
	Status   string
	Transit  string
	Vessels  int
	Capacity string
	Risk     string
}

type GeoAlert struct {
	Region      string
	Severity    string
	Title       string
	Description string
	Impact      string
	When        string
}

type SpecTrend struct {
	Spec       string
	Current    string
	Trend      string
	NextChange string
	Compliance string
}

type OPECMonth struct {
	Month      string
	Production float64
	Quota      float64
	Compliance float64
}

var globalPrices = []GlobalPrice{
	{"06:00", 81.2, 77.8, 83.5},
	{"08:00", 81.5, 78.1, 83.8},
	{"10:00", 81.8, 78.4, 84.1},
	{"12:00", 82.1, 78.6, 84.3},
	{"14:00", 81.9, 78.5, 84.2},
	{"16:00", 82.3, 78.9, 84.6},
	{"18:00", 82.5, 79.1, 84.8},
}

var supplyRoutes = []SupplyRoute{
	{"Persian Gulf → Mombasa", "Normal", "14 days", 12, "2.4M MT", "Low"},
	{"Singapore → Dar es Salaam", "Delayed", "18 days", 8, "1.8M MT", "Medium"},
	{"Rotterdam → Mombasa", "Normal", "21 days", 5, "1.2M MT", "Low"},
	{"India → East Africa", "High Volume", "12 days", 15, "3.1M MT", "Low"},
}

var geoAlerts = []GeoAlert{
	{"Red Sea", "High", "Shipping Disruptions Continue",
		"Ongoing tensions affecting transit through Suez Canal. Some vessels rerouting via Cape of Good Hope.",
		"Transit time +7-10 days, freight rates +15%", "2 hours ago"},
	{"Middle East", "Medium", "OPEC+ Production Discussions",
		"Member countries discussing potential production adjustments for Q1 2025.",
		"Potential price volatility expected", "6 hours ago"},
	{"East Africa", "Low", "Kenya Pipeline Expansion",
		"KPC announces capacity expansion plans for Mombasa-Nairobi corridor.",
		"Improved regional supply capacity by 2026", "1 day ago"},
}

var regionalMarkets = []MarketPrice{
	{"Uganda", 4285, 4150, 3980, 1.2},
	{"Kenya", 4350, 4200, 4020, 0.8},
	{"Tanzania", 4320, 4180, 4000, -0.3},
	{"Rwanda", 4400, 4250, 4050, 1.5},
	{"DRC", 4500, 4350, 4150, 2.1},
	{"South Sudan", 4650, 4500, 4300, 0.5},
}

var specTrends = []SpecTrend{
	{"Sulfur Content (PMS)", "50 ppm", "Tightening", "Q2 2025", "Compliant"},
	{"Octane Rating", "RON 95", "Stable", "N/A", "Compliant"},
	{"Bio-blend Requirement", "0%", "Increasing", "Q3 2025", "Monitor"},
	{"Benzene Content", "<1%", "Stable", "N/A", "Compliant"},
}

var opecProduction = []OPECMonth{
	{"Jul", 27.8, 28.0, 99.3},
	{"Aug", 27.6, 28.0, 98.6},
	{"Sep", 27.9, 28.0, 99.6},
	{"Oct", 27.7, 28.0, 98.9},
	{"Nov", 27.5, 27.5, 100.0},
	{"Dec", 27.4, 27.5, 99.6},
}

// stakeholders

type KPCMetrics struct {
	Throughput      string
	Reliability     float64
	AvgDelayDays    float64
	ActivePipelines int
	LastMeeting     string
	NextMeeting     string
	ContractStatus  string
	ContractExpiry  string
}

type Terminal struct {
	Name           string
	Location       string
	Capacity       string
	Utilization    int
	Status         string
	Contact        string
	LastInspection string
	Rating         float64
}

type OMCPartner struct {
	Name          string
	Type          string
	CreditScore   int
	Allocation    string
	Volume        string
	PaymentStatus string
	Relationship  string
	Stations      int
	Performance   int
}

type SupplyPartner struct {
	Name          string
	Country       string
	Products      []string
	ContractValue string
	Reliability   int
	LeadTime      string
	Status        string
}

type Communication struct {
	Stakeholder string
	Type        string
	Subject     string
	Date        string
	Status      string
	FollowUp    string
}

var kpcMetrics = KPCMetrics{
	Throughput:      "2.4M",
	Reliability:     98.5,
	AvgDelayDays:    2.3,
	ActivePipelines: 3,
	LastMeeting:     "2024-01-10",
	NextMeeting:     "2024-01-24",
	ContractStatus:  "Active",
	ContractExpiry:  "2025-12-31",
}

var terminalOperators = []Terminal{
	{"Jinja Storage Terminal", "Jinja, Uganda", "60,000 MT", 78, "operational", "John Mukasa", "2024-01-05", 4.5},
	{"Kampala Oil Terminal", "Kampala, Uganda", "45,000 MT", 85, "operational", "Sarah Nambi", "2024-01-08", 4.8},
	{"Eldoret Pipeline Terminal", "Eldoret, Kenya", "80,000 MT", 72, "maintenance", "David Kipchoge", "2024-01-02", 4.2},
}

var omcPartners = []OMCPartner{
	{"Total Energies Uganda", "International", 92, "25%", "45,000 MT", "current", "Strategic", 156, 95},
	{"Vivo Energy Uganda", "International", 89, "22%", "39,600 MT", "current", "Strategic", 142, 93},
	{"Stabex International", "Indigenous", 85, "18%", "32,400 MT", "current", "Priority", 98, 88},
	{"Hass Petroleum", "Indigenous", 82, "15%", "27,000 MT", "current", "Priority", 76, 86},
	{"Oryx Energies", "Regional", 78, "12%", "21,600 MT", "delayed", "Standard", 54, 81},
	{"Mogas Uganda", "Indigenous", 75, "8%", "14,400 MT", "current", "Priority", 42, 79},
}

var supplyPartners = []SupplyPartner{
	{"ADNOC Trading", "UAE", []string{"Crude", "PMS", "AGO"}, "$45M", 97, "14 days", "active"},
	{"Vitol Group", "Netherlands", []string{"PMS", "AGO", "JET-A1"}, "$38M", 95, "18 days", "active"},
	{"Trafigura", "Singapore", []string{"AGO", "FO"}, "$28M", 94, "21 days", "active"},
	{"Glencore", "Switzerland", []string{"Crude", "PMS"}, "$52M", 96, "16 days", "negotiating"},
}

var communications = []Communication{
	{"KPC Operations", "Meeting", "Q1 Throughput Planning", "2024-01-10", "completed", "Send revised allocation schedule"},
	{"Total Energies", "Email", "Credit Facility Review", "2024-01-09", "pending", "Await CFO approval"},
	{"Jinja Terminal", "Inspection", "Joint Stock Verification", "2024-01-05", "completed", "Submit inspection report"},
	{"ADNOC Trading", "Call", "Cargo MT Blessed scheduled", "2024-01-08", "completed", "None"},
}

// vessels

type Vessel struct {
	ID          string
	Name        string
	IMO         string
	Flag        string
	Type        string
	Status      string
	Cargo       string
	Origin      string
	Destination string
	ETA         string
	Lat, Lng    float64
	SpeedKnots  float64
	Heading     int
	LastUpdate  string
	Progress    int
	Charter     string
	Owner       string
}

type Port struct {
	Name     string
	Lat, Lng float64
	Kind     string
}

var vessels = []Vessel{
	{"MT-BLESSED", "MT Blessed", "9876543", "LR", "Oil/Chemical Tanker", "In Transit", "PMS - 35,000 MT",
		"Fujairah, UAE", "Mombasa, Kenya", "2024-01-18 14:30", 5.2, 58.4, 12.5, 245, "2 min ago", 65, "Time Charter", "SeaTraders Ltd"},
	{"MT-GLORY", "MT Glory Star", "9765432", "PA", "Product Tanker", "Loading", "AGO - 28,000 MT",
		"Rotterdam, Netherlands", "Mombasa, Kenya", "2024-01-25 08:00", 51.9, 4.5, 0, 180, "5 min ago", 15, "Voyage Charter", "Global Shipping Co"},
	{"MT-HORIZON", "MT Sea Horizon", "9654321", "SG", "Oil Tanker", "At Anchor", "JET-A1 - 22,000 MT",
		"Singapore", "Mombasa, Kenya", "2024-01-15 16:00", -3.8, 39.6, 0, 90, "1 min ago", 98, "Spot Charter", "Asia Maritime"},
	{"MT-PIONEER", "MT Pioneer", "9543210", "MT", "Chemical Tanker", "Discharging", "PMS - 40,000 MT",
		"Jeddah, Saudi Arabia", "Mombasa, Kenya", "Arrived", -4.05, 39.67, 0, 270, "30 sec ago", 100, "COA", "Mediterranean Tankers"},
}

var ports = []Port{
	{"Mombasa", -4.05, 39.67, "destination"},
	{"Fujairah", 25.12, 56.34, "origin"},
	{"Rotterdam", 51.9, 4.5, "origin"},
	{"Singapore", 1.35, 103.82, "origin"},
	{"Jeddah", 21.49, 39.19, "origin"},
}

// landing

type Feature struct {
	View        models.ViewID
	Title       string
	Description string
	Color       string
}

var features = []Feature{
	{"supply", "Supply & Demand Analytics", "AI-powered forecasting predicts demand 14 days ahead with 92% accuracy", "#3B82F6"},
	{"pricing", "Price Intelligence", "Optimize pricing with regional market analysis and ML predictions", "#10B981"},
	{"portfolio", "OMC Portfolio Management", "Smart allocation algorithm prioritizes indigenous OMCs and manages risk", "#F59E0B"},
	{"automation", "Process Automation", "Blockchain-enabled documentation and smart contracts for efficiency", "#8B5CF6"},
	{"analytics", "Trading Analytics", "Advanced demand forecasting with LSTM + Prophet ML models and risk analysis", "#EF4444"},
	{"market", "Market Intelligence", "Global market monitoring with geo-political risk alerts and OPEC tracking", "#06B6D4"},
	{"stakeholders", "Stakeholder Management", "KPC partnership tracking, terminal operators, and OMC relationship management", "#EC4899"},
	{"vessels", "Vessel Tracking", "Real-time AIS vessel tracking with interactive maps and cargo monitoring", "#14B8A6"},
}
