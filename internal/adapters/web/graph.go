package web

import (
	"fmt"
	"math"
	"strings"

	"github.com/mirfield/worldatlas/internal/domain/world"
)

// Diplomacy graph geometry. Layout is deterministic for a given country
// order, so identical input always yields identical markup.
const (
	graphSize   = 460
	graphRadius = 170
	nodeRadius  = 7
	labelOffset = 16
)

// GraphNode is a positioned country in the diagram
type GraphNode struct {
	ID    string
	Label string
	X     float64
	Y     float64
}

// GraphEdgeLine is a rendered diplomatic tie
type GraphEdgeLine struct {
	X1, Y1, X2, Y2 float64
	Color          string
	Tooltip        string
}

// LegendEntry pairs a category's color swatch with its label
type LegendEntry struct {
	Label string
	Color string
}

// GraphModel is the pure view model for the diplomacy diagram, built
// independently of any rendering target
type GraphModel struct {
	Size   int
	Nodes  []GraphNode
	Edges  []GraphEdgeLine
	Legend []LegendEntry
}

// BuildGraphModel lays countries out evenly on a circle, starting at the
// top (-90°) and proceeding clockwise, and resolves the deduplicated edge
// set to colored lines. Returns ok=false when fewer than two countries are
// available, in which case no graph should be drawn.
func BuildGraphModel(countries []world.Country, styles world.StyleTable) (*GraphModel, bool) {
	if len(countries) < 2 {
		return nil, false
	}

	center := float64(graphSize) / 2
	step := 360.0 / float64(len(countries))

	m := &GraphModel{Size: graphSize}
	position := make(map[string]int, len(countries))
	for i, c := range countries {
		angle := (-90 + step*float64(i)) * math.Pi / 180
		m.Nodes = append(m.Nodes, GraphNode{
			ID:    c.ID,
			Label: c.Name,
			X:     center + graphRadius*math.Cos(angle),
			Y:     center + graphRadius*math.Sin(angle),
		})
		position[strings.ToLower(c.ID)] = i
	}

	for _, e := range world.CollectEdges(countries, styles) {
		a := m.Nodes[position[e.A]]
		b := m.Nodes[position[e.B]]
		m.Edges = append(m.Edges, GraphEdgeLine{
			X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y,
			Color:   styles.Style(e.Category).Color,
			Tooltip: e.Tooltip,
		})
	}

	for _, cat := range styles.Categories() {
		s := styles.Style(cat)
		m.Legend = append(m.Legend, LegendEntry{Label: s.Label, Color: s.Color})
	}
	return m, true
}

// RenderDiplomacyGraph renders the interactive diplomacy diagram with its
// legend, or an explanatory placeholder when there are not enough countries
// to draw one. Edge tooltips are native SVG titles, so hovering an edge
// shows the relationship text and moving off hides it without any handler
// wiring in the markup.
func RenderDiplomacyGraph(countries []world.Country, styles world.StyleTable) string {
	model, ok := BuildGraphModel(countries, styles)
	if !ok {
		return `<p class="placeholder">Not enough countries for a diplomacy graph yet.</p>`
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="diplomacy" viewBox="0 0 %d %d" width="%d" height="%d" role="img">`,
		model.Size, model.Size, model.Size, model.Size)
	b.WriteString("\n")

	for _, e := range model.Edges {
		fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2.5">`,
			coord(e.X1), coord(e.Y1), coord(e.X2), coord(e.Y2), EscapeAttr(e.Color))
		fmt.Fprintf(&b, `<title>%s</title></line>`, EscapeHTML(e.Tooltip))
		b.WriteString("\n")
	}

	for _, n := range model.Nodes {
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%d" fill="#1f2937"/>`,
			coord(n.X), coord(n.Y), nodeRadius)
		fmt.Fprintf(&b, `<text x="%s" y="%s" font-size="12" text-anchor="middle">%s</text>`,
			coord(n.X), coord(n.Y-labelOffset), EscapeHTML(n.Label))
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")

	b.WriteString(`<ul class="legend">`)
	for _, entry := range model.Legend {
		fmt.Fprintf(&b, `<li><span class="swatch" style="background:%s"></span>%s</li>`,
			EscapeAttr(entry.Color), EscapeHTML(entry.Label))
	}
	b.WriteString("</ul>\n")
	return b.String()
}
