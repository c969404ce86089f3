// Package web holds the embedded HTML templates of the dashboard.
package web

import (
	"embed"
	"html/template"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TemplatesFS embeds HTML templates for server-side rendering.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// Templates parses the embedded templates with the dashboard's helper functions.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(TemplatesFS, "templates/*.html")
}

// FuncMap returns the helpers available inside templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"money":    FormatMoney,
		"date":     FormatDate,
		"percent":  FormatPercent,
		"monthKey": func(t time.Time) string { return t.Format("2006-01") },
	}
}

// FormatMoney renders d with two decimals and thousands separators, e.g. -1,234.50.
func FormatMoney(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatDate renders a calendar date like "Mar 14, 2025".
func FormatDate(t time.Time) string {
	return t.UTC().Format("Jan 02, 2006")
}

// FormatPercent rounds a percentage to a whole number.
func FormatPercent(p float64) string {
	return decimal.NewFromFloat(math.Round(p)).String()
}
