package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

// ReportData is the model fed to the financial report template.
type ReportData struct {
	Title           string
	Period          string
	GeneratedAt     time.Time
	Overview        string
	Highlights      []string
	Categories      []ReportCategory
	Recommendations []string
	TotalSpend      decimal.Decimal
	BusinessName    string
}

// ReportCategory is one category row in the breakdown table.
type ReportCategory struct {
	Category string
	Total    decimal.Decimal
	Share    float64
}

var reportFuncs = template.FuncMap{
	"formatMoney": func(d decimal.Decimal) string {
		return "$" + d.StringFixed(2)
	},
	"formatPercent": func(share float64) string {
		return fmt.Sprintf("%.1f%%", share*100)
	},
	"formatDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
}

var reportTemplate = template.Must(template.New("financial_report").Funcs(reportFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #1f2933; font-size: 13px; }
  h1 { font-size: 22px; margin-bottom: 2px; }
  .meta { color: #616e7c; margin-bottom: 18px; }
  h2 { font-size: 15px; border-bottom: 1px solid #d3dce6; padding-bottom: 4px; margin-top: 22px; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  th { text-align: left; background: #f5f7fa; padding: 6px 8px; border-bottom: 2px solid #d3dce6; }
  td { padding: 6px 8px; border-bottom: 1px solid #e4e9f0; }
  td.num { text-align: right; font-variant-numeric: tabular-nums; }
  tr.total td { font-weight: bold; border-top: 2px solid #9aa5b1; }
  ul { margin: 6px 0 0 18px; padding: 0; }
  li { margin-bottom: 4px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">
  {{if .BusinessName}}{{.BusinessName}} &middot; {{end}}Period: {{.Period}} &middot; Generated {{formatDate .GeneratedAt}}
</div>

<h2>Overview</h2>
<p>{{.Overview}}</p>

{{if .Highlights}}<h2>Highlights</h2>
<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>
{{end}}

{{if .Categories}}<h2>Spending by Category</h2>
<table>
<tr><th>Category</th><th style="text-align:right">Total</th><th style="text-align:right">Share</th></tr>
{{range .Categories}}<tr><td>{{.Category}}</td><td class="num">{{formatMoney .Total}}</td><td class="num">{{formatPercent .Share}}</td></tr>
{{end}}<tr class="total"><td>Total</td><td class="num">{{formatMoney .TotalSpend}}</td><td class="num"></td></tr>
</table>
{{end}}

{{if .Recommendations}}<h2>Recommendations</h2>
<ul>{{range .Recommendations}}<li>{{.}}</li>{{end}}</ul>
{{end}}
</body>
</html>`))

// RenderReportHTML renders the financial report document from its data.
func RenderReportHTML(data ReportData) (string, error) {
	if data.GeneratedAt.IsZero() {
		data.GeneratedAt = time.Now()
	}
	if data.Title == "" {
		data.Title = "Financial Report"
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report template: %w", err)
	}
	return buf.String(), nil
}
