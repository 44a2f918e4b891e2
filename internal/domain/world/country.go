package world

import "strings"

// Indicator keys in canonical form. Upstream spellings are normalized to
// these by the data adapter; a key absent from a country's Indicators map
// means "not yet reported", never zero.
const (
	IndicatorGDP          = "gdp"
	IndicatorGDPPerCapita = "gdp_per_capita"
	IndicatorUnemployment = "unemployment"
	IndicatorInflation    = "inflation"
	IndicatorTradeBalance = "trade_balance"
)

// IndicatorKeys returns the five indicator keys in display order
func IndicatorKeys() []string {
	return []string{
		IndicatorGDP,
		IndicatorGDPPerCapita,
		IndicatorUnemployment,
		IndicatorInflation,
		IndicatorTradeBalance,
	}
}

// IndicatorLabel returns the display label for an indicator key
func IndicatorLabel(key string) string {
	switch key {
	case IndicatorGDP:
		return "Real GDP"
	case IndicatorGDPPerCapita:
		return "Real GDP per Capita"
	case IndicatorUnemployment:
		return "Unemployment Rate"
	case IndicatorInflation:
		return "Inflation Rate"
	case IndicatorTradeBalance:
		return "Trade Balance"
	}
	return key
}

// Resource is one entry in a country's resource mix
type Resource struct {
	Name string

	// Category is an open string, typically "natural" or "capital"
	Category string

	// Share is the share-of-economy percentage (0-100), informational only.
	// Nil means the share was not reported; absent never collapses to zero.
	Share *float64

	// Quantity is non-negative; zero means excluded from the pie
	// visualization but still listed in tables
	Quantity float64
}

// Relationship is one diplomatic tie as seen from a single country.
// Symmetric in intent but possibly stored asymmetrically upstream.
type Relationship struct {
	// Category is a key into the relationship style table. Unrecognized
	// categories render with neutral styling.
	Category string

	// Description is optional free text for the tie
	Description string

	// Status is an optional annotation (e.g. "treaty pending")
	Status string
}

// Country is an entity within a planet carrying indicators, resources and
// diplomacy ties. Read-only from the view layer's perspective.
type Country struct {
	ID      string
	Name    string
	Demonym string
	Motto   string

	// FlagURL is the canonical absolute image URL after normalization
	FlagURL string

	Resources []Resource

	// Indicators maps canonical indicator key to value; absent means
	// not reported
	Indicators map[string]float64

	// Diplomacy maps partner country id to the relationship as stored on
	// this side of the edge
	Diplomacy map[string]Relationship
}

// PlanetData is the canonical per-planet model every view consumes,
// independent of upstream source shape. Countries is never nil.
type PlanetData struct {
	PlanetID  string
	Year      int
	Countries []Country
}

// FindCountry looks up a country by identifier, case-insensitively.
// Returns nil when the id is unknown.
func (d *PlanetData) FindCountry(id string) *Country {
	if id == "" {
		return nil
	}
	key := strings.ToLower(id)
	for i := range d.Countries {
		if strings.ToLower(d.Countries[i].ID) == key {
			return &d.Countries[i]
		}
	}
	return nil
}
