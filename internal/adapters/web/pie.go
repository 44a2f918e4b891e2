package web

import (
	"fmt"
	"math"
	"strings"

	"github.com/mirfield/worldatlas/internal/domain/world"
)

const (
	pieSize   = 320
	pieRadius = 140
)

// piePalette cycles when a country has more resources than colors
var piePalette = []string{
	"#2563eb", "#16a34a", "#f59e0b", "#dc2626",
	"#7c3aed", "#0891b2", "#db2777", "#65a30d",
}

// PieWedge is one plotted resource slice. Angles are in degrees with 0 at
// the circle's top; Start accumulates in input order.
type PieWedge struct {
	Name     string
	Quantity float64
	Start    float64
	Sweep    float64
	Color    string
}

// PieModel is the pure view model for the resource pie
type PieModel struct {
	Total  float64
	Wedges []PieWedge
}

// BuildPieModel converts a resource list to proportional wedges. Only
// resources with strictly positive quantity qualify; input order is
// preserved rather than sorting by size, so the chart reads in the same
// order as the resource table. Returns ok=false when nothing qualifies.
func BuildPieModel(resources []world.Resource) (*PieModel, bool) {
	var qualifying []world.Resource
	total := 0.0
	for _, r := range resources {
		if r.Quantity > 0 {
			qualifying = append(qualifying, r)
			total += r.Quantity
		}
	}
	if len(qualifying) == 0 {
		return nil, false
	}

	m := &PieModel{Total: total}
	start := 0.0
	for i, r := range qualifying {
		sweep := r.Quantity / total * 360
		m.Wedges = append(m.Wedges, PieWedge{
			Name:     r.Name,
			Quantity: r.Quantity,
			Start:    start,
			Sweep:    sweep,
			Color:    piePalette[i%len(piePalette)],
		})
		start += sweep
	}
	return m, true
}

// wedgePath builds the filled arc path for a wedge: move to center, line to
// the arc start, arc to the arc end, close. Angles are measured from the
// top of the circle (-90° in SVG terms).
func wedgePath(cx, cy, r, startDeg, sweepDeg float64) string {
	a1 := (startDeg - 90) * math.Pi / 180
	a2 := (startDeg + sweepDeg - 90) * math.Pi / 180
	x1, y1 := cx+r*math.Cos(a1), cy+r*math.Sin(a1)
	x2, y2 := cx+r*math.Cos(a2), cy+r*math.Sin(a2)
	largeArc := 0
	if sweepDeg > 180 {
		largeArc = 1
	}
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		coord(cx), coord(cy), coord(x1), coord(y1),
		coord(r), coord(r), largeArc, coord(x2), coord(y2))
}

// RenderResourcePie renders the proportional resource chart with its
// legend, or an explanatory placeholder when no resource has a positive
// quantity. Wedge tooltips carry "name: quantity" with the quantity as a
// grouped integer; quantities appear only there, never in the legend.
func RenderResourcePie(resources []world.Resource) string {
	model, ok := BuildPieModel(resources)
	if !ok {
		return `<p class="placeholder">No resource quantities to chart.</p>`
	}

	center := float64(pieSize) / 2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="resourcepie" viewBox="0 0 %d %d" width="%d" height="%d" role="img">`,
		pieSize, pieSize, pieSize, pieSize)
	b.WriteString("\n")

	for _, w := range model.Wedges {
		tooltip := fmt.Sprintf("%s: %s", w.Name, FormatQuantity(w.Quantity))
		if w.Sweep >= 359.999 {
			// A single qualifying resource owns the full circle; an arc
			// with coincident endpoints would collapse to nothing.
			fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="%s">`,
				coord(center), coord(center), coord(pieRadius), EscapeAttr(w.Color))
		} else {
			fmt.Fprintf(&b, `<path d="%s" fill="%s">`,
				wedgePath(center, center, pieRadius, w.Start, w.Sweep), EscapeAttr(w.Color))
		}
		fmt.Fprintf(&b, `<title>%s</title>`, EscapeHTML(tooltip))
		if w.Sweep >= 359.999 {
			b.WriteString(`</circle>`)
		} else {
			b.WriteString(`</path>`)
		}
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")

	b.WriteString(`<ul class="legend">`)
	for _, w := range model.Wedges {
		fmt.Fprintf(&b, `<li><span class="swatch" style="background:%s"></span>%s</li>`,
			EscapeAttr(w.Color), EscapeHTML(w.Name))
	}
	b.WriteString("</ul>\n")
	return b.String()
}
