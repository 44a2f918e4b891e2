package world

import (
	"sort"
	"strings"
)

// RelationshipStyle is the display treatment for one relationship category
type RelationshipStyle struct {
	Label string
	Color string
}

// StyleTable maps relationship categories to display styles. The category
// vocabulary is configuration, not contract: the table preserves its
// configured order for legends, and any category it does not know falls
// back to the "neutral" style.
type StyleTable struct {
	categories []string
	styles     map[string]RelationshipStyle
}

// NewStyleTable builds a style table from category/style pairs in legend
// order. Duplicate categories keep the first entry.
func NewStyleTable(categories []string, styles map[string]RelationshipStyle) StyleTable {
	t := StyleTable{styles: make(map[string]RelationshipStyle, len(styles))}
	for _, cat := range categories {
		key := strings.ToLower(cat)
		if _, ok := t.styles[key]; ok {
			continue
		}
		s, ok := styles[cat]
		if !ok {
			s = styles[key]
		}
		t.categories = append(t.categories, key)
		t.styles[key] = s
	}
	return t
}

// DefaultStyleTable returns the built-in five-category vocabulary
func DefaultStyleTable() StyleTable {
	return NewStyleTable(
		[]string{"ally", "friendly", "neutral", "tense", "hostile"},
		map[string]RelationshipStyle{
			"ally":     {Label: "Ally", Color: "#16a34a"},
			"friendly": {Label: "Friendly", Color: "#22c55e"},
			"neutral":  {Label: "Neutral", Color: "#6b7280"},
			"tense":    {Label: "Tense", Color: "#f59e0b"},
			"hostile":  {Label: "Hostile", Color: "#ef4444"},
		},
	)
}

// Categories returns the configured category keys in legend order
func (t StyleTable) Categories() []string {
	return t.categories
}

// Style resolves a category to its display style, falling back to the
// neutral style (or a gray default if no neutral is configured) for
// unrecognized categories.
func (t StyleTable) Style(category string) RelationshipStyle {
	if s, ok := t.styles[strings.ToLower(category)]; ok {
		return s
	}
	if s, ok := t.styles["neutral"]; ok {
		return s
	}
	return RelationshipStyle{Label: "Neutral", Color: "#6b7280"}
}

// Edge is a deduplicated diplomatic tie between two countries
type Edge struct {
	// A and B are lowercase country ids with A < B lexicographically
	A string
	B string

	Category string

	// Tooltip is the human-readable hover text: the free-text description
	// when present, else the category label, else empty
	Tooltip string
}

// DedupKey is the canonical identity of an edge regardless of direction:
// the two ids lowercased, sorted lexicographically and joined.
func DedupKey(a, b string) string {
	x, y := strings.ToLower(a), strings.ToLower(b)
	if x > y {
		x, y = y, x
	}
	return x + "|" + y
}

// CollectEdges flattens per-country adjacency maps into a deduplicated edge
// list. An edge present on both endpoints is emitted once, keyed by the
// sorted-pair rule; the first occurrence in country order wins. Partners
// that are not themselves in the country list are dropped, since they
// cannot be placed in the graph.
func CollectEdges(countries []Country, styles StyleTable) []Edge {
	known := make(map[string]bool, len(countries))
	for _, c := range countries {
		known[strings.ToLower(c.ID)] = true
	}

	seen := make(map[string]bool)
	var edges []Edge
	for _, c := range countries {
		partners := make([]string, 0, len(c.Diplomacy))
		for id := range c.Diplomacy {
			partners = append(partners, id)
		}
		sort.Strings(partners)

		for _, partner := range partners {
			if !known[strings.ToLower(partner)] {
				continue
			}
			key := DedupKey(c.ID, partner)
			if seen[key] {
				continue
			}
			seen[key] = true

			rel := c.Diplomacy[partner]
			tooltip := rel.Description
			if tooltip == "" && rel.Category != "" {
				tooltip = styles.Style(rel.Category).Label
			}

			a, b := strings.ToLower(c.ID), strings.ToLower(partner)
			if a > b {
				a, b = b, a
			}
			edges = append(edges, Edge{
				A:        a,
				B:        b,
				Category: rel.Category,
				Tooltip:  tooltip,
			})
		}
	}
	return edges
}
