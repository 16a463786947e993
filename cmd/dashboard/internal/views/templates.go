package views

// ── Base layout ───────────────────────────────────────────────────────────────

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>UPTIP · {{.Header.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:Inter,system-ui,sans-serif;background:#0f172a;color:#e2e8f0;font-size:13px;line-height:1.5}
a{color:#60a5fa;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#111827;border-bottom:1px solid #1f2937;padding:8px 16px;display:flex;gap:12px;align-items:center;flex-wrap:wrap}
nav .brand{color:#f8fafc;font-weight:700;font-size:15px;margin-right:8px}
nav a{color:#94a3b8;padding:4px 8px;border-radius:4px}
nav a.active{background:#1d4ed8;color:#fff}
.live{margin-left:auto;display:flex;gap:16px;font-size:12px;color:#94a3b8}
.live b{color:#f8fafc}
.pulse{display:inline-block;width:8px;height:8px;border-radius:50%;background:#22c55e;margin-right:4px}
main{padding:16px}
h1{font-size:18px;font-weight:700;color:#f8fafc;margin-bottom:12px}
h2{font-size:12px;font-weight:600;color:#94a3b8;text-transform:uppercase;letter-spacing:.06em;margin:16px 0 8px}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:16px}
.card{background:#111827;border:1px solid #1f2937;border-radius:6px;padding:12px 16px;min-width:150px}
.card .val{font-size:22px;font-weight:700;color:#f8fafc}
.card .lbl{font-size:11px;color:#94a3b8;margin-top:2px}
.sel{display:flex;gap:4px;margin-bottom:12px;flex-wrap:wrap}
.sel a{font-size:11px;padding:2px 8px;border:1px solid #1f2937;border-radius:4px;color:#94a3b8}
.sel a.active{background:#1d4ed8;border-color:#1d4ed8;color:#fff}
table{width:100%;border-collapse:collapse;font-size:12px;margin-bottom:16px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #1f2937;color:#94a3b8;font-weight:600;font-size:11px;text-transform:uppercase}
td{padding:5px 10px;border-bottom:1px solid #1e293b}
.ok{color:#22c55e}
.warn{color:#f59e0b}
.err{color:#f87171}
.dim{color:#94a3b8}
.alert{padding:8px 12px;border-radius:4px;margin-bottom:6px;background:#111827;border-left:3px solid #60a5fa}
.alert.critical{border-color:#f87171}
.alert.warning{border-color:#f59e0b}
.inert{opacity:.6}
</style>
</head>
<body>
<nav>
  <span class="brand">UPTIP</span>
  {{range .Header.Nav}}<a href="/view/{{.ID}}"{{if .Active}} class="active"{{end}}>{{.Title}}</a>{{end}}
  <span class="live"><span><span class="pulse"></span>LIVE</span>
    <span>PMS <b id="m-price">UGX {{price .Header.Metrics.Price}}/L</b></span>
    <span>Vessels <b id="m-vessels">{{.Header.Metrics.VesselCount}}</b></span>
    <span>Stock <b id="m-stock">{{fixed 0 .Header.Metrics.StockLevel}}%</b></span>
    <span>OMCs <b id="m-omcs">{{.Header.Metrics.OMCCount}}</b></span>
  </span>
</nav>
<main>
<h1>{{.Header.Title}}</h1>
{{template "content" .}}
</main>
<script>
(function(){
  if(!window.EventSource)return;
  var es=new EventSource('/live');
  es.onmessage=function(ev){
    var t=JSON.parse(ev.data),m=t.metrics;if(!m)return;
    document.getElementById('m-price').textContent='UGX '+Math.round(m.price).toLocaleString()+'/L';
    document.getElementById('m-vessels').textContent=m.vessel_count;
    document.getElementById('m-stock').textContent=Math.round(m.stock_level)+'%';
    document.getElementById('m-omcs').textContent=m.omc_count;
  };
})();
</script>
</body>
</html>{{end}}
{{define "options"}}<div class="sel">{{range .}}<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>{{end}}</div>{{end}}
{{define "export"}}<form class="inert" method="get" action="/export/{{.}}"><button type="submit">Export</button></form>{{end}}
`

// ── Views ─────────────────────────────────────────────────────────────────────

const tmplLanding = `
{{define "content"}}
<p class="dim">UNOC PetroTrade Intelligence Platform</p>
<div class="cards">
{{range .Content.Stats}}<div class="card"><div class="val">{{.Value}}</div><div class="lbl">{{.Label}}</div></div>{{end}}
</div>
<p><a href="/view/dashboard">Launch Dashboard →</a></p>
<h2>Platform Modules</h2>
<div class="cards">
{{range .Content.Features}}<a class="card" href="/view/{{.View}}" style="border-top:3px solid {{.Color}}">
  <div class="val" style="font-size:14px">{{.Title}}</div><div class="lbl">{{.Description}}</div></a>{{end}}
</div>
{{end}}
`

const tmplDashboard = `
{{define "content"}}
{{template "options" .Content.Periods}}
{{template "export" "dashboard"}}
<h2>Alerts ({{len .Content.Alerts}})</h2>
{{range .Content.Alerts}}<div class="alert {{.Level}}">{{.Message}} <span class="dim">· {{.When}}</span></div>{{end}}
<div class="cards">
  <div class="card"><div class="val">UGX 8.2B</div><div class="lbl">Today's Revenue</div></div>
  <div class="card"><div class="val">47</div><div class="lbl">Active Deliveries</div></div>
  <div class="card"><div class="val">38/47</div><div class="lbl">OMCs Served</div></div>
  <div class="card"><div class="val err">AGO Low</div><div class="lbl">Stock Alert</div></div>
</div>
<h2>Demand Forecast vs Actual (M Liters)</h2>
<table><tr><th>Day</th><th>Date</th><th>Actual</th><th>Forecast</th></tr>
{{range .Content.Demand}}<tr><td>{{.Day}}</td><td>{{.Date}}</td><td>{{fixed 1 .Actual}}</td><td>{{fixed 1 .Forecast}}</td></tr>{{end}}
</table>
<h2>Vessel Status</h2>
<table><tr><th>Vessel</th><th>Cargo</th><th>Volume</th><th>ETA</th><th>Port</th><th>Status</th></tr>
{{range .Content.Vessels}}<tr><td>{{.Vessel}}</td><td>{{.Cargo}}</td><td>{{.Volume}}</td><td>{{.ETA}}</td><td>{{.Port}}</td><td>{{.Status}}</td></tr>{{end}}
</table>
<h2>Depot Stock Levels (%)</h2>
<table><tr><th>Depot</th><th>PMS</th><th>AGO</th><th>JET</th></tr>
{{range .Content.Depots}}<tr><td>{{.Depot}}</td><td>{{.PMS}}</td><td>{{.AGO}}</td><td>{{.Jet}}</td></tr>{{end}}
</table>
<h2>Regional Price Comparison (UGX/L)</h2>
<table><tr><th>Market</th><th>PMS</th><th>AGO</th><th>JET</th></tr>
{{range .Content.Prices}}<tr><td>{{.Market}}</td><td>{{comma .PMS}}</td><td>{{comma .AGO}}</td><td>{{comma .Jet}}</td></tr>{{end}}
</table>
<h2>OMC Performance</h2>
<table><tr><th>OMC</th><th>Volume %</th><th>Payment %</th><th>Indigenous</th></tr>
{{range .Content.OMCs}}<tr><td>{{.Name}}</td><td>{{.Volume}}</td><td>{{.Payment}}</td><td>{{if .Indigenous}}yes{{end}}</td></tr>{{end}}
</table>
<h2>Stockout Risk</h2>
<table><tr><th>Product</th><th>Risk %</th><th>Days Cover</th></tr>
{{range .Content.Stockout}}<tr><td>{{.Product}}</td><td>{{.Risk}}</td><td>{{.Days}}</td></tr>{{end}}
</table>
{{end}}
`

const tmplSupply = `
{{define "content"}}
{{template "options" .Content.Products}}
{{template "export" "supply"}}
<div class="cards">
  <div class="card"><div class="val">92.3%</div><div class="lbl">Forecast Accuracy</div></div>
  <div class="card"><div class="val">{{.Content.Inventory.CurrentStock}}M Liters</div><div class="lbl">Current Inventory</div></div>
  <div class="card"><div class="val">47M Liters</div><div class="lbl">In Transit</div></div>
  <div class="card"><div class="val warn">Medium</div><div class="lbl">Supply Risk</div></div>
</div>
<h2>{{.Content.Days}}-Day Demand Forecast · {{.Content.Product}}</h2>
{{template "options" .Content.DayOptions}}
<table><tr><th>Day</th><th>Predicted</th><th>Lower</th><th>Upper</th><th>Actual</th></tr>
{{range .Content.Forecast}}<tr><td>{{.Day}}</td><td>{{fixed 1 .Predicted}}</td><td>{{fixed 1 .Lower}}</td><td>{{fixed 1 .Upper}}</td><td>{{deref .Actual}}</td></tr>{{end}}
</table>
<h2>Inventory Optimization</h2>
<div class="cards">
  <div class="card"><div class="val">{{.Content.Inventory.SafetyStock}}M</div><div class="lbl">Safety Stock</div></div>
  <div class="card"><div class="val">{{.Content.Inventory.ReorderPoint}}M</div><div class="lbl">Reorder Point</div></div>
  <div class="card"><div class="val">{{.Content.Inventory.EconomicOrder}}M</div><div class="lbl">Economic Order Qty</div></div>
  <div class="card"><div class="val">{{.Content.Inventory.LeadTimeDays}} days</div><div class="lbl">Lead Time</div></div>
  <div class="card"><div class="val" id="coverage">{{.Content.Inventory.CoverageDays}} days</div><div class="lbl">Coverage</div></div>
</div>
<h2>Supply Chain Flow</h2>
<table><tr><th>Date</th><th>Mombasa</th><th>Dar</th><th>Kampala</th><th>Demand</th></tr>
{{range .Content.SupplyChain}}<tr><td>{{.Date}}</td><td>{{.Mombasa}}</td><td>{{.Dar}}</td><td>{{.Kampala}}</td><td>{{.Demand}}</td></tr>{{end}}
</table>
<h2>Hourly Demand Pattern</h2>
<table><tr><th>Hour</th><th>Weekday</th><th>Weekend</th></tr>
{{range .Content.Patterns}}<tr><td>{{.Hour}}</td><td>{{fixed 1 .Weekday}}</td><td>{{fixed 1 .Weekend}}</td></tr>{{end}}
</table>
<h2>OMC Demand</h2>
<table><tr><th>OMC</th><th>Demand</th><th>Forecast</th><th>Variance %</th></tr>
{{range .Content.OMCDemand}}<tr><td>{{.OMC}}</td><td>{{.Demand}}</td><td>{{.Forecast}}</td><td>{{.Variance}}</td></tr>{{end}}
</table>
<h2>Transport Routes</h2>
<table><tr><th>Route</th><th>Distance km</th><th>Transit h</th><th>Cost $/MT</th><th>Utilization %</th></tr>
{{range .Content.Routes}}<tr><td>{{.Route}}</td><td>{{comma .DistanceKm}}</td><td>{{.TransitHrs}}</td><td>{{.CostUSD}}</td><td>{{.Utilization}}</td></tr>{{end}}
</table>
{{end}}
`

const tmplPricing = `
{{define "content"}}
{{template "options" .Content.Markets}}
{{template "options" .Content.Ranges}}
{{template "export" "pricing"}}
<div class="cards">
  <div class="card"><div class="val">UGX {{dec 0 .Content.LivePrice}}</div><div class="lbl">Current PMS Price</div></div>
  <div class="card"><div class="val">$94.52/bbl</div><div class="lbl">Platts FOB</div></div>
  <div class="card"><div class="val ok">+UGX 55/L</div><div class="lbl">Margin Opportunity</div></div>
  <div class="card"><div class="val">Competitive</div><div class="lbl">Price Position</div></div>
</div>
<h2>Landed Cost Build-up (UGX/L)</h2>
<table><tr><th>Component</th><th>Value</th><th>Share %</th></tr>
{{range .Content.Costs}}<tr><td>{{.Component}}</td><td>{{.Value}}</td><td>{{.Percentage}}</td></tr>{{end}}
<tr><th>Total Landed Cost</th><th id="landed">{{dec 0 .Content.LandedCost}}</th><th></th></tr>
<tr><td>Current Price</td><td>UGX {{dec 0 .Content.LivePrice}}/L</td><td></td></tr>
<tr><td>Price − Landed</td><td>UGX {{dec 0 .Content.Headroom}}/L</td><td></td></tr>
</table>
<h2>Regional Prices</h2>
<table><tr><th>Date</th>{{range .Content.Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Content.Regional}}<tr><td>{{.Date}}</td>{{range .Values}}<td>{{comma .}}</td>{{end}}</tr>{{end}}
</table>
<h2>Margin Analysis</h2>
<table><tr><th>Product</th><th>Current</th><th>Optimal</th><th>Potential</th></tr>
{{range .Content.Margins}}<tr><td>{{.Product}}</td><td>{{.Current}}</td><td>{{.Optimal}}</td><td class="ok">+{{.Potential}}</td></tr>{{end}}
</table>
<h2>Price Volatility</h2>
<table><tr><th>Month</th><th>Volatility %</th><th>Event</th></tr>
{{range .Content.Volatility}}<tr><td>{{.Month}}</td><td>{{fixed 1 .Volatility}}</td><td>{{.Event}}</td></tr>{{end}}
</table>
<h2>Competitor Pricing</h2>
<table><tr><th>OMC</th><th>Price</th><th>Volume %</th><th>Margin %</th></tr>
{{range .Content.Competitors}}<tr><td>{{.OMC}}</td><td>{{comma .Price}}</td><td>{{.Volume}}</td><td>{{fixed 1 .Margin}}</td></tr>{{end}}
</table>
{{end}}
`

const tmplPortfolio = `
{{define "content"}}
{{template "options" .Content.Segments}}
{{template "export" "portfolio"}}
<div class="cards">
  <div class="card"><div class="val">{{.Content.ActiveOMCs}}</div><div class="lbl">Active OMCs</div></div>
  <div class="card"><div class="val">32%</div><div class="lbl">Indigenous Share</div></div>
  <div class="card"><div class="val">95%</div><div class="lbl">Payment Compliance</div></div>
  <div class="card"><div class="val warn">3 OMCs</div><div class="lbl">At Risk</div></div>
  <div class="card"><div class="val" id="utilization">{{dec 2 .Content.Utilization}}%</div><div class="lbl">Credit Utilization</div></div>
</div>
{{if .Content.Segmentation}}<h2>Segmentation</h2>
<table><tr><th>Segment</th><th>OMCs</th><th>Volume %</th><th>Revenue %</th></tr>
{{range .Content.Segmentation}}<tr><td>{{.Segment}}</td><td>{{.Count}}</td><td>{{.Volume}}</td><td>{{.Revenue}}</td></tr>{{end}}
</table>{{end}}
{{if .Content.Indigenous}}<h2>Indigenous OMCs</h2>
<table><tr><th>Name</th><th>Volume %</th><th>Growth %</th><th>Payment %</th><th>Score</th></tr>
{{range .Content.Indigenous}}<tr><td>{{.Name}}</td><td>{{.Volume}}</td><td>{{.Growth}}</td><td>{{.Payment}}</td><td>{{.Score}}</td></tr>{{end}}
</table>{{end}}
<h2>Credit Scoring (UGX M)</h2>
<table><tr><th>OMC</th><th>Limit</th><th>Utilized</th><th>Utilization %</th><th>Risk</th><th>Score</th></tr>
{{range .Content.Credit}}<tr><td>{{.OMC}}</td><td>{{.CreditLimit}}</td><td>{{.Utilized}}</td><td>{{dec 1 .Utilization}}</td><td class="{{statusClass .Risk}}">{{.Risk}}</td><td>{{.Score}}</td></tr>{{end}}
</table>
<h2>Payment Performance (%)</h2>
<table><tr><th>Month</th><th>On Time</th><th>&lt;7 days</th><th>&lt;30 days</th><th>Defaulted</th></tr>
{{range .Content.Payments}}<tr><td>{{.Month}}</td><td>{{.OnTime}}</td><td>{{.Late7}}</td><td>{{.Late30}}</td><td>{{.Defaulted}}</td></tr>{{end}}
</table>
<h2>Allocation Recommendation (M Liters)</h2>
<table><tr><th>Product</th><th>Total</th><th>Strategic</th><th>Growth</th><th>Maintain</th><th>Risk</th></tr>
{{range .Content.Allocations}}<tr><td>{{.Product}}</td><td>{{.Total}}</td><td>{{.Strategic}}</td><td>{{.Growth}}</td><td>{{.Maintain}}</td><td>{{.Risk}}</td></tr>{{end}}
</table>
{{end}}
`

const tmplAutomation = `
{{define "content"}}
{{template "options" .Content.Processes}}
{{template "export" "automation"}}
<div class="cards">
  <div class="card"><div class="val">1,247</div><div class="lbl">Documents Processed</div></div>
  <div class="card"><div class="val">640 hrs</div><div class="lbl">Time Saved</div></div>
  <div class="card"><div class="val">285</div><div class="lbl">Blockchain TXs</div></div>
  <div class="card"><div class="val">82%</div><div class="lbl">Automation Rate</div></div>
  <div class="card"><div class="val" id="avg-savings">{{dec 2 .Content.AvgSavings}}%</div><div class="lbl">Avg Time Savings</div></div>
</div>
{{if .Content.Ledger}}<h2>Ledger Transactions (Hyperledger Fabric)</h2>
<table><tr><th>ID</th><th>Type</th><th>Subject</th><th>Time</th><th>Status</th></tr>
{{range .Content.Ledger}}<tr><td>{{.ID}}</td><td>{{.Type}}</td><td>{{.Subject}}</td><td>{{.Timestamp}}</td><td class="{{statusClass .Status}}">{{.Status}}</td></tr>{{end}}
</table>{{end}}
{{if .Content.Metrics}}<h2>Automation Metrics (minutes)</h2>
<table><tr><th>Process</th><th>Manual</th><th>Automated</th><th>Savings %</th></tr>
{{range .Content.Metrics}}<tr><td>{{.Process}}</td><td>{{.Manual}}</td><td>{{.Automated}}</td><td>{{fixed 1 .Savings}}</td></tr>{{end}}
</table>{{end}}
<h2>Monthly Hours</h2>
<table><tr><th>Month</th><th>Manual</th><th>Automated</th></tr>
{{range .Content.TimeSavings}}<tr><td>{{.Month}}</td><td>{{.Manual}}</td><td>{{.Automated}}</td></tr>{{end}}
</table>
<h2>Smart Contracts</h2>
<table><tr><th>Contract</th><th>Executions</th><th>Accuracy %</th><th>Avg Time s</th></tr>
{{range .Content.Contracts}}<tr><td>{{.Contract}}</td><td>{{.Executions}}</td><td>{{fixed 1 .Accuracy}}</td><td>{{fixed 1 .AvgTime}}</td></tr>{{end}}
</table>
<h2>Process Efficiency</h2>
<table><tr><th>Metric</th><th>Value</th><th>Target</th></tr>
{{range .Content.Efficiency}}<tr><td>{{.Name}}</td><td>{{fixed 1 .Value}}</td><td>{{fixed 1 .Target}}</td></tr>{{end}}
</table>
{{end}}
`

const tmplAnalytics = `
{{define "content"}}
{{template "options" .Content.Tabs}}
{{template "options" .Content.Ranges}}
<div class="cards">
{{range .Content.KPIs}}<div class="card"><div class="val">{{.Value}}</div><div class="lbl">{{.Label}} · <span class="{{if .Up}}ok{{else}}err{{end}}">{{.Change}}</span> · target {{.Target}}</div></div>{{end}}
</div>
{{if eq .Content.Tab "forecasting"}}<h2>14-Day Demand Forecast · LSTM + Prophet Ensemble</h2>
<table><tr><th>Day</th><th>Actual</th><th>Forecast</th><th>Lower</th><th>Upper</th><th>Confidence %</th></tr>
{{range .Content.Forecast}}<tr><td>{{.Day}}</td><td>{{deref .Actual}}</td><td>{{fixed 1 .Forecast}}</td><td>{{fixed 1 .Lower}}</td><td>{{fixed 1 .Upper}}</td><td>{{.Confidence}}</td></tr>{{end}}
</table>{{end}}
{{if eq .Content.Tab "pricing"}}<h2>Price Trends</h2>
<table><tr><th>Month</th><th>Brent</th><th>Platts</th><th>Uganda</th><th>Margin %</th></tr>
{{range .Content.Trends}}<tr><td>{{.Month}}</td><td>{{fixed 1 .Brent}}</td><td>{{fixed 1 .Platts}}</td><td>{{comma .Uganda}}</td><td>{{fixed 1 .Margin}}</td></tr>{{end}}
</table>
<h2>Market Correlations</h2>
<table><tr><th>Pair</th><th>Correlation</th><th>Significance</th><th>Trend</th></tr>
{{range .Content.Correlations}}<tr><td>{{.Pair}}</td><td>{{fixed 2 .Value}}</td><td class="{{statusClass .Significance}}">{{.Significance}}</td><td>{{.Trend}}</td></tr>{{end}}
</table>{{end}}
{{if eq .Content.Tab "risk"}}<h2>Value at Risk</h2>
<table><tr><th>Scenario</th><th>Probability %</th><th>Impact $</th><th>VaR 95</th><th>VaR 99</th></tr>
{{range .Content.Scenarios}}<tr><td>{{.Scenario}}</td><td>{{.Probability}}</td><td>{{.Impact}}</td><td>{{fixed 1 .VaR95}}</td><td>{{fixed 1 .VaR99}}</td></tr>{{end}}
<tr><th>Expected impact</th><th></th><th id="expected-impact">${{dec 4 .Content.ExpectedImpact}}M</th><th></th><th></th></tr>
</table>{{end}}
{{if eq .Content.Tab "reports"}}<h2>Automated Reports</h2>
<table><tr><th>Report</th><th>Schedule</th><th>Format</th><th></th></tr>
{{range .Content.Reports}}<tr><td>{{.Name}}</td><td>{{.Schedule}}</td><td>{{.Format}}</td><td>{{template "export" "reports"}}</td></tr>{{end}}
</table>{{end}}
{{end}}
`

const tmplMarket = `
{{define "content"}}
{{template "options" .Content.Regions}}
<p class="dim">Updated: <span id="last-update">{{.Content.LastUpdate}}</span></p>
<h2>Global Benchmarks ($/bbl)</h2>
<table><tr><th>Time</th><th>Brent</th><th>WTI</th><th>Platts</th></tr>
{{range .Content.Prices}}<tr><td>{{.Time}}</td><td>{{fixed 1 .Brent}}</td><td>{{fixed 1 .WTI}}</td><td>{{fixed 1 .Platts}}</td></tr>{{end}}
</table>
<h2>Supply Routes</h2>
<table><tr><th>Route</th><th>Status</th><th>Transit</th><th>Vessels</th><th>Capacity</th><th>Risk</th></tr>
{{range .Content.Routes}}<tr><td>{{.Route}}</td><td class="{{statusClass .Status}}">{{.Status}}</td><td>{{.Transit}}</td><td>{{.Vessels}}</td><td>{{.Capacity}}</td><td class="{{statusClass .Risk}}">{{.Risk}}</td></tr>{{end}}
</table>
<h2>Geo-political Alerts</h2>
{{range .Content.Alerts}}<div class="alert"><b class="{{statusClass .Severity}}">{{.Severity}}</b> {{.Region}}: {{.Title}}<br><span class="dim">{{.Description}}</span><br>Impact: {{.Impact}} · {{.When}}</div>{{else}}<p class="dim">No alerts for this region.</p>{{end}}
<h2>Regional Markets (UGX/L)</h2>
<table><tr><th>Country</th><th>PMS</th><th>AGO</th><th>JET</th><th>Change %</th></tr>
{{range .Content.Markets}}<tr><td>{{.Market}}</td><td>{{comma .PMS}}</td><td>{{comma .AGO}}</td><td>{{comma .Jet}}</td><td>{{signed .Change}}</td></tr>{{end}}
</table>
<h2>Product Specifications</h2>
<table><tr><th>Spec</th><th>Current</th><th>Trend</th><th>Next Change</th><th>Compliance</th></tr>
{{range .Content.Specs}}<tr><td>{{.Spec}}</td><td>{{.Current}}</td><td>{{.Trend}}</td><td>{{.NextChange}}</td><td class="{{statusClass .Compliance}}">{{.Compliance}}</td></tr>{{end}}
</table>
<h2>OPEC Production (mb/d)</h2>
<table><tr><th>Month</th><th>Production</th><th>Quota</th><th>Compliance %</th></tr>
{{range .Content.OPEC}}<tr><td>{{.Month}}</td><td>{{fixed 1 .Production}}</td><td>{{fixed 1 .Quota}}</td><td>{{fixed 1 .Compliance}}</td></tr>{{end}}
</table>
{{end}}
`

const tmplStakeholders = `
{{define "content"}}
<p class="dim">{{.Content.Partners}} Partners</p>
{{template "options" .Content.Tabs}}
<form method="get" action="/view/stakeholders"><input type="hidden" name="tab" value="{{.Content.Tab}}"><input name="q" value="{{.Content.Search}}" placeholder="Search stakeholders"></form>
{{if eq .Content.Tab "overview"}}<div class="cards">
  <div class="card"><div class="val">{{.Content.KPC.Throughput}} bbl</div><div class="lbl">KPC Throughput · {{fixed 1 .Content.KPC.Reliability}}% reliability</div></div>
  <div class="card"><div class="val">{{len .Content.Terminals}}</div><div class="lbl">Active Terminals · <span id="operational">{{.Content.Operational}}</span> operational</div></div>
  <div class="card"><div class="val">{{len .Content.OMCs}}</div><div class="lbl">OMC Partners · <span id="indigenous">{{.Content.IndigenousOMCs}}</span> Indigenous priority</div></div>
  <div class="card"><div class="val">{{len .Content.Suppliers}}</div><div class="lbl">Supply Partners · <span id="contracts">${{.Content.ContractTotal}}M</span> contracts</div></div>
</div>
<h2>Recent Communications</h2>
{{template "comms" .Content.Communications}}{{end}}
{{if eq .Content.Tab "kpc"}}<h2>Kenya Pipeline Company</h2>
<table>
<tr><td>Monthly Throughput</td><td>{{.Content.KPC.Throughput}}</td></tr>
<tr><td>Reliability Score</td><td>{{fixed 1 .Content.KPC.Reliability}}%</td></tr>
<tr><td>Avg Delay Time</td><td>{{fixed 1 .Content.KPC.AvgDelayDays}} days</td></tr>
<tr><td>Active Pipelines</td><td>{{.Content.KPC.ActivePipelines}}</td></tr>
<tr><td>Meetings</td><td>last {{.Content.KPC.LastMeeting}} · next {{.Content.KPC.NextMeeting}}</td></tr>
<tr><td>Contract</td><td class="{{statusClass .Content.KPC.ContractStatus}}">{{.Content.KPC.ContractStatus}} until {{.Content.KPC.ContractExpiry}}</td></tr>
</table>{{end}}
{{if eq .Content.Tab "terminals"}}<h2>Terminal Operators</h2>
<table><tr><th>Terminal</th><th>Location</th><th>Capacity</th><th>Utilization %</th><th>Status</th><th>Contact</th><th>Inspected</th><th>Rating</th></tr>
{{range .Content.Terminals}}<tr><td>{{.Name}}</td><td>{{.Location}}</td><td>{{.Capacity}}</td><td>{{.Utilization}}</td><td class="{{statusClass .Status}}">{{.Status}}</td><td>{{.Contact}}</td><td>{{.LastInspection}}</td><td>{{fixed 1 .Rating}}</td></tr>{{end}}
</table>{{end}}
{{if eq .Content.Tab "omcs"}}<h2>OMC Partners</h2>
<table><tr><th>OMC</th><th>Type</th><th>Credit</th><th>Allocation</th><th>Volume</th><th>Payment</th><th>Relationship</th><th>Stations</th><th>Performance</th></tr>
{{range .Content.OMCs}}<tr><td>{{.Name}}</td><td>{{.Type}}</td><td>{{.CreditScore}}</td><td>{{.Allocation}}</td><td>{{.Volume}}</td><td class="{{statusClass .PaymentStatus}}">{{.PaymentStatus}}</td><td>{{.Relationship}}</td><td>{{.Stations}}</td><td>{{.Performance}}%</td></tr>{{end}}
</table>{{end}}
{{if eq .Content.Tab "suppliers"}}<h2>Supply Partners</h2>
<table><tr><th>Supplier</th><th>Country</th><th>Products</th><th>Contract</th><th>Reliability %</th><th>Lead Time</th><th>Status</th></tr>
{{range .Content.Suppliers}}<tr><td>{{.Name}}</td><td>{{.Country}}</td><td>{{join .Products ", "}}</td><td>{{.ContractValue}}</td><td>{{.Reliability}}</td><td>{{.LeadTime}}</td><td class="{{statusClass .Status}}">{{.Status}}</td></tr>{{end}}
</table>{{end}}
{{if eq .Content.Tab "communications"}}<h2>Communications</h2>
{{template "comms" .Content.Communications}}{{end}}
{{end}}
{{define "comms"}}<table><tr><th>Stakeholder</th><th>Type</th><th>Subject</th><th>Date</th><th>Status</th><th>Follow-up</th></tr>
{{range .}}<tr><td>{{.Stakeholder}}</td><td>{{.Type}}</td><td>{{.Subject}}</td><td>{{.Date}}</td><td class="{{statusClass .Status}}">{{.Status}}</td><td>{{.FollowUp}}</td></tr>{{end}}
</table>{{end}}
`

const tmplVessels = `
{{define "content"}}
<div class="cards">
  <div class="card"><div class="val">{{.Content.Total}}</div><div class="lbl">Total Vessels</div></div>
  <div class="card"><div class="val" id="in-transit">{{.Content.InTransit}}</div><div class="lbl">In Transit</div></div>
  <div class="card"><div class="val" id="total-cargo">{{comma .Content.TotalCargo}}</div><div class="lbl">Total MT</div></div>
</div>
<p class="dim">AIS feed · positions as last reported</p>
<table><tr><th>Vessel</th><th>Type</th><th>Status</th><th>Cargo</th><th>Route</th><th>ETA</th><th>Progress</th><th>Updated</th></tr>
{{range .Content.Vessels}}<tr{{if .Selected}} style="background:#1e293b"{{end}}><td><a href="{{.Href}}">{{.Name}}</a></td><td>{{.Type}}</td><td>{{.Status}}</td><td>{{.Cargo}}</td><td>{{.Origin}} → {{.Destination}}</td><td>{{.ETA}}</td><td>{{.Progress}}%</td><td>{{.LastUpdate}}</td></tr>{{end}}
</table>
{{with .Content.Selected}}<h2>{{.Name}} · IMO {{.IMO}}</h2>
<table>
<tr><td>Flag</td><td>{{.Flag}}</td></tr>
<tr><td>Origin</td><td>{{.Origin}}</td></tr>
<tr><td>Destination</td><td>{{.Destination}}</td></tr>
<tr><td>ETA</td><td>{{.ETA}}</td></tr>
<tr><td>Position</td><td>{{fixed 2 .Lat}}, {{fixed 2 .Lng}}</td></tr>
<tr><td>Speed / Heading</td><td>{{fixed 1 .SpeedKnots}} kn / {{.Heading}}°</td></tr>
<tr><td>Charter</td><td>{{.Charter}} · {{.Owner}}</td></tr>
</table>{{end}}
<h2>Ports</h2>
<table><tr><th>Port</th><th>Lat</th><th>Lng</th><th>Role</th></tr>
{{range .Content.Ports}}<tr><td>{{.Name}}</td><td>{{fixed 2 .Lat}}</td><td>{{fixed 2 .Lng}}</td><td>{{.Kind}}</td></tr>{{end}}
</table>
{{end}}
`
