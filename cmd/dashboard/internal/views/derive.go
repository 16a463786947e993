package views

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shubham-shewale/uptip/pkg/models"
)

const criticalStockLevel = 40.0

type Alert struct {
	Level   string
	Message string
	When    string
}

// Alerts derives the command center alert list from the live metrics.
func Alerts(m models.LiveMetrics) []Alert {
	var alerts []Alert
	if m.StockLevel < criticalStockLevel {
		alerts = append(alerts, Alert{
			Level:   "critical",
			Message: "National stock level below 40% - Immediate action required",
			When:    "Now",
		})
	}
	for _, v := range dashboardVessels {
		if v.ETA == "2 days" {
			alerts = append(alerts, Alert{
				Level:   "warning",
				Message: v.Vessel + " arriving in 2 days - Prepare discharge operations",
				When:    "5 mins ago",
			})
			break
		}
	}
	alerts = append(alerts, Alert{
		Level:   "info",
		Message: "Price optimization algorithm suggests 2% margin adjustment",
		When:    "1 hour ago",
	})
	return alerts
}

type ForecastPoint struct {
	Day       string
	Predicted float64
	Upper     float64
	Lower     float64
	Actual    *float64
}

// Forecast simulates a days-long demand band. Only the first week carries
// an actual reading.
func Forecast(days int, rnd Rand) []ForecastPoint {
	out := make([]ForecastPoint, 0, days)
	for i := 0; i < days; i++ {
		wave := math.Sin(float64(i) / 3)
		p := ForecastPoint{
			Day:       "Day " + strconv.Itoa(i+1),
			Predicted: 42 + wave*8 + rnd.Float64()*5,
			Upper:     50 + wave*8 + rnd.Float64()*3,
			Lower:     35 + wave*8 - rnd.Float64()*3,
		}
		if i < 7 {
			a := 40 + wave*10 + rnd.Float64()*5
			p.Actual = &a
		}
		out = append(out, p)
	}
	return out
}

// CoverageDays is how many whole days current stock lasts at the weekly offtake.
func CoverageDays(stock, weeklyOfftake int) int {
	if weeklyOfftake <= 0 {
		return 0
	}
	return int(math.Floor(float64(stock) / (float64(weeklyOfftake) / 7)))
}

// LandedCost sums the per-litre cost build-up.
func LandedCost(components []CostComponent) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		total = total.Add(decimal.NewFromInt(c.Value))
	}
	return total
}

// Utilization is utilized/limit as a percentage, zero for an empty limit.
func Utilization(utilized, limit int64) decimal.Decimal {
	if limit == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(utilized).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(limit))
}

func AverageSavings(metrics []AutomationMetric) decimal.Decimal {
	if len(metrics) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, m := range metrics {
		sum = sum.Add(decimal.NewFromFloat(m.Savings))
	}
	return sum.Div(decimal.NewFromInt(int64(len(metrics))))
}

// ExpectedImpact is the probability-weighted scenario impact in millions.
func ExpectedImpact(scenarios []RiskScenario) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range scenarios {
		sum = sum.Add(decimal.NewFromInt(s.Impact).Mul(decimal.NewFromInt(int64(s.Probability))))
	}
	return sum.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(1_000_000))
}

// ContractTotal adds up the "$NNM" contract values, in millions.
func ContractTotal(partners []SupplyPartner) int {
	total := 0
	for _, p := range partners {
		total += digits(p.ContractValue)
	}
	return total
}

// TotalCargo adds up the tonnage in "PRODUCT - 35,000 MT" cargo strings.
func TotalCargo(vs []Vessel) int {
	total := 0
	for _, v := range vs {
		if _, qty, ok := strings.Cut(v.Cargo, " - "); ok {
			total += digits(qty)
		}
	}
	return total
}

func InTransit(vs []Vessel) int {
	n := 0
	for _, v := range vs {
		if v.Status == "In Transit" {
			n++
		}
	}
	return n
}

func digits(s string) int {
	n, err := strconv.Atoi(strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s))
	if err != nil {
		return 0
	}
	return n
}
