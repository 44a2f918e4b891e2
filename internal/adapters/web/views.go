package web

import (
	"fmt"
	"strings"

	"github.com/mirfield/worldatlas/internal/application/atlas"
	"github.com/mirfield/worldatlas/internal/domain/routing"
	"github.com/mirfield/worldatlas/internal/domain/world"
)

// View builders are pure composition: fully-resolved data in, markup out.
// No network access, no mutable state, and every interpolated data-derived
// string passes through the escaping helpers exactly once.

// Breadcrumb renders the navigation region: the planet picker link plus the
// current planet when one is in context
func Breadcrumb(planet *world.Planet) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<a href="%s">Choose Planet</a>`, routing.HomeLink())
	if planet != nil {
		fmt.Fprintf(&b, ` <a href="%s">%s</a>`,
			EscapeAttr(routing.PlanetLink(planet.ID)), EscapeHTML(planet.Label))
	}
	return b.String()
}

// ViewLoading is the immediate placeholder shown while a route's data loads
func ViewLoading(label string) string {
	return fmt.Sprintf(`<section class="card"><p class="small">Loading %s…</p></section>`,
		EscapeHTML(label))
}

// ViewError is the single user-visible failure panel. Every adapter failure
// lands here via the router; nothing below it renders its own error page.
func ViewError(message string) string {
	return fmt.Sprintf(
		`<section class="card error"><h2>Something went wrong</h2><p class="small">%s</p>`+
			`<p><a href="%s">Back to planet picker</a></p></section>`,
		EscapeHTML(message), routing.HomeLink())
}

// ViewCountryNotFound is the logical not-found panel for an unknown country
// id within otherwise valid planet data
func ViewCountryNotFound(planet *world.Planet, countryID string) string {
	return fmt.Sprintf(
		`<section class="card"><h2>Country not found</h2>`+
			`<p class="small">No country %s on %s.</p>`+
			`<p><a href="%s">Back to %s</a></p></section>`,
		EscapeHTML(countryID), EscapeHTML(planet.Label),
		EscapeAttr(routing.PlanetLink(planet.ID)), EscapeHTML(planet.Label))
}

// ViewHome renders the planet picker with the upstream status card. Either
// health or healthErr may be set; both nil means the probe was skipped.
func ViewHome(planets world.PlanetList, health *atlas.HealthInfo, healthErr error) string {
	var b strings.Builder
	b.WriteString(`<section class="card"><h2 class="heroTitle">Choose a Planet</h2><div class="buttonRow">`)
	for _, p := range planets {
		fmt.Fprintf(&b, `<a class="button" href="%s">%s</a>`,
			EscapeAttr(routing.PlanetLink(p.ID)), EscapeHTML(p.Label))
	}
	b.WriteString(`</div>`)

	switch {
	case healthErr != nil:
		b.WriteString(renderHealthFail(healthErr))
	case health != nil:
		b.WriteString(renderHealthOK(health))
	}
	b.WriteString(`</section>`)
	return b.String()
}

func renderHealthOK(info *atlas.HealthInfo) string {
	shown := info.Sheets
	more := ""
	if len(shown) > 12 {
		more = fmt.Sprintf(" (+%d more)", len(shown)-12)
		shown = shown[:12]
	}
	var b strings.Builder
	b.WriteString(`<div class="statusCard ok"><h3>Live data connected</h3>`)
	fmt.Fprintf(&b, `<div class="small">Project: <strong>%s</strong></div>`, TextOrDash(info.Project))
	fmt.Fprintf(&b, `<div class="small">Spreadsheet ID: <code>%s</code></div>`, TextOrDash(info.SpreadsheetID))
	fmt.Fprintf(&b, `<div class="small">Timestamp: %s</div>`, TextOrDash(info.Timestamp))
	fmt.Fprintf(&b, `<div class="small">Sheets detected%s: %s</div>`,
		EscapeHTML(more), EscapeHTML(strings.Join(shown, ", ")))
	b.WriteString(`</div>`)
	return b.String()
}

func renderHealthFail(err error) string {
	return fmt.Sprintf(
		`<div class="statusCard fail"><h3>Live data not connected</h3>`+
			`<div class="small">%s</div></div>`,
		EscapeHTML(err.Error()))
}

// ViewPlanetHub renders the diplomacy graph, the country list and a ranking
// panel for each indicator
func ViewPlanetHub(planet *world.Planet, data *world.PlanetData, styles world.StyleTable) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<section class="card"><h2 class="heroTitle">%s</h2>`, EscapeHTML(planet.Label))
	if data.Year > 0 {
		fmt.Fprintf(&b, `<div class="small">Year %d</div>`, data.Year)
	}
	b.WriteString(`</section>`)

	b.WriteString(`<section class="card"><h3 class="sectionTitle">Diplomacy</h3>`)
	b.WriteString(RenderDiplomacyGraph(data.Countries, styles))
	b.WriteString(`</section>`)

	b.WriteString(`<section class="card"><h3 class="sectionTitle">Countries</h3>`)
	if len(data.Countries) == 0 {
		b.WriteString(`<p class="placeholder">No countries reported for this planet yet.</p>`)
	} else {
		b.WriteString(`<ul class="countryList">`)
		for _, c := range data.Countries {
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`,
				EscapeAttr(routing.CountryLink(planet.ID, c.ID)), EscapeHTML(c.Name))
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</section>`)

	for _, key := range world.IndicatorKeys() {
		b.WriteString(renderRankingPanel(planet, data.Countries, key))
	}
	return b.String()
}

func renderRankingPanel(planet *world.Planet, countries []world.Country, indicator string) string {
	rows := world.Rank(countries, indicator, world.Descending)

	var b strings.Builder
	fmt.Fprintf(&b, `<section class="card"><h3 class="sectionTitle">%s</h3><table class="ranking">`,
		EscapeHTML(world.IndicatorLabel(indicator)))
	if len(rows) == 0 {
		b.WriteString(`<tr><td class="placeholder" colspan="3">No data</td></tr>`)
	}
	for i, row := range rows {
		fmt.Fprintf(&b, `<tr><td>%d</td><td><a href="%s">%s</a></td><td>%s</td></tr>`,
			i+1,
			EscapeAttr(routing.CountryLink(planet.ID, row.CountryID)),
			EscapeHTML(row.Name),
			FormatIndicator(indicator, row.Value))
	}
	b.WriteString(`</table></section>`)
	return b.String()
}

// ViewCountryProfile renders flag, indicators, resources with the pie
// chart, and the diplomacy table for one country
func ViewCountryProfile(planet *world.Planet, data *world.PlanetData, country *world.Country, styles world.StyleTable) string {
	var b strings.Builder

	b.WriteString(`<section class="card"><div class="profileHeader">`)
	if country.FlagURL != "" {
		fmt.Fprintf(&b, `<img class="flag" src="%s" alt="Flag of %s">`,
			EscapeAttr(country.FlagURL), EscapeAttr(country.Name))
	}
	fmt.Fprintf(&b, `<div><h2 class="heroTitle">%s</h2>`, EscapeHTML(country.Name))
	if country.Demonym != "" {
		fmt.Fprintf(&b, `<div class="small">Demonym: %s</div>`, EscapeHTML(country.Demonym))
	}
	if country.Motto != "" {
		fmt.Fprintf(&b, `<div class="small motto">&ldquo;%s&rdquo;</div>`, EscapeHTML(country.Motto))
	}
	b.WriteString(`</div></div></section>`)

	b.WriteString(`<section class="card"><h3 class="sectionTitle">Indicators</h3><table class="indicators">`)
	for _, key := range world.IndicatorKeys() {
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td></tr>`,
			EscapeHTML(world.IndicatorLabel(key)), IndicatorCell(country.Indicators, key))
	}
	b.WriteString(`</table></section>`)

	b.WriteString(`<section class="card"><h3 class="sectionTitle">Resources</h3>`)
	if len(country.Resources) == 0 {
		b.WriteString(`<p class="placeholder">No resources reported.</p>`)
	} else {
		b.WriteString(`<table class="resources"><tr><th>Resource</th><th>Category</th><th>Share</th><th>Quantity</th></tr>`)
		for _, r := range country.Resources {
			qty := Dash
			if r.Quantity > 0 {
				qty = FormatQuantity(r.Quantity)
			}
			fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				EscapeHTML(r.Name), TextOrDash(r.Category), ShareCell(r.Share), qty)
		}
		b.WriteString(`</table>`)
	}
	b.WriteString(RenderResourcePie(country.Resources))
	b.WriteString(`</section>`)

	b.WriteString(`<section class="card"><h3 class="sectionTitle">Diplomacy</h3>`)
	b.WriteString(renderDiplomacyTable(planet, data, country, styles))
	b.WriteString(`</section>`)
	return b.String()
}

func renderDiplomacyTable(planet *world.Planet, data *world.PlanetData, country *world.Country, styles world.StyleTable) string {
	if len(country.Diplomacy) == 0 {
		return `<p class="placeholder">No diplomatic ties reported.</p>`
	}

	// Iterate partners in the planet's country order for a stable table
	var b strings.Builder
	b.WriteString(`<table class="diplomacy"><tr><th>Partner</th><th>Relationship</th><th>Status</th><th>Notes</th></tr>`)
	for _, partner := range data.Countries {
		rel, ok := country.Diplomacy[strings.ToLower(partner.ID)]
		if !ok || strings.EqualFold(partner.ID, country.ID) {
			continue
		}
		style := styles.Style(rel.Category)
		fmt.Fprintf(&b,
			`<tr><td><a href="%s">%s</a></td><td><span class="swatch" style="background:%s"></span>%s</td><td>%s</td><td>%s</td></tr>`,
			EscapeAttr(routing.CountryLink(planet.ID, partner.ID)),
			EscapeHTML(partner.Name),
			EscapeAttr(style.Color),
			EscapeHTML(style.Label),
			TextOrDash(rel.Status),
			TextOrDash(rel.Description))
	}
	b.WriteString(`</table>`)
	return b.String()
}
