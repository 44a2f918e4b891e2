// Package web renders the atlas views: pure markup builders for every
// route, the diplomacy graph and resource pie SVG renderers, and the router
// that ties them to navigation.
package web

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mirfield/worldatlas/internal/domain/world"
)

// Dash is the placeholder for missing or unreported numeric values. Missing
// data never renders as "0" or "NaN".
const Dash = "—"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes text for element content. Every upstream-supplied
// string passes through here (or EscapeAttr) exactly once before insertion
// into markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeAttr escapes text for attribute values
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// FormatBillions renders a currency value held in billions of credits,
// e.g. 1234.5 -> "$1,234.5B"
func FormatBillions(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 1) + "B"
}

// FormatMoney renders a per-capita currency value grouped to the credit,
// e.g. 52340.7 -> "$52,341"
func FormatMoney(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// FormatPercent renders a rate, e.g. 4.25 -> "4.2%"
func FormatPercent(v float64) string {
	return humanize.CommafWithDigits(v, 1) + "%"
}

// FormatSignedBillions renders a delta-style currency value with an
// explicit sign, e.g. 12.4 -> "+$12.4B", -3.2 -> "-$3.2B"
func FormatSignedBillions(v float64) string {
	if v >= 0 {
		return "+" + FormatBillions(v)
	}
	return "-" + FormatBillions(-v)
}

// FormatQuantity renders a resource quantity as a grouped integer
func FormatQuantity(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// FormatIndicator renders a value in the display convention of its
// indicator key
func FormatIndicator(key string, v float64) string {
	switch key {
	case world.IndicatorGDP:
		return FormatBillions(v)
	case world.IndicatorGDPPerCapita:
		return FormatMoney(v)
	case world.IndicatorUnemployment, world.IndicatorInflation:
		return FormatPercent(v)
	case world.IndicatorTradeBalance:
		return FormatSignedBillions(v)
	}
	return humanize.CommafWithDigits(v, 2)
}

// IndicatorCell renders a country's value for one indicator, or the dash
// placeholder when the indicator is not reported
func IndicatorCell(indicators map[string]float64, key string) string {
	v, ok := indicators[key]
	if !ok {
		return Dash
	}
	return FormatIndicator(key, v)
}

// ShareCell renders a resource's share-of-economy percentage, or the dash
// placeholder when the share was not reported
func ShareCell(share *float64) string {
	if share == nil {
		return Dash
	}
	return FormatPercent(*share)
}

// TextOrDash escapes a free-text value, substituting the placeholder for
// empty strings
func TextOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dash
	}
	return EscapeHTML(s)
}

func coord(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
