// Package routing models the navigation surface: hash-fragment routes of
// the form #/, #/planet?planet=<id> and #/country?planet=<id>&country=<id>.
// Parsing is a pure function of the fragment string so deep links, back and
// forward navigation and programmatic navigation all resolve identically.
package routing

import (
	"net/url"
	"strings"
)

// Kind enumerates the route states
type Kind int

const (
	KindHome Kind = iota
	KindPlanetHub
	KindCountryProfile

	// KindNotFound is an unrecognized path. It renders identically to Home:
	// a graceful fallback, not an error.
	KindNotFound
)

// Route is a parsed navigation target. PlanetID and CountryID are decoded
// but not yet resolved against known planets or loaded data.
type Route struct {
	Kind      Kind
	PlanetID  string
	CountryID string
}

// Parse maps a location fragment to a Route. The fragment may carry its
// leading "#". An empty or missing path is Home; an unrecognized path is
// NotFound. Identifiers are percent-decoded.
func Parse(fragment string) Route {
	frag := strings.TrimPrefix(fragment, "#")

	path := frag
	query := ""
	if i := strings.Index(frag, "?"); i >= 0 {
		path, query = frag[:i], frag[i+1:]
	}

	params, err := url.ParseQuery(query)
	if err != nil {
		params = url.Values{}
	}

	switch path {
	case "", "/":
		return Route{Kind: KindHome}
	case "/planet":
		return Route{Kind: KindPlanetHub, PlanetID: params.Get("planet")}
	case "/country":
		return Route{
			Kind:      KindCountryProfile,
			PlanetID:  params.Get("planet"),
			CountryID: params.Get("country"),
		}
	}
	return Route{Kind: KindNotFound}
}

// HomeLink builds the fragment for the planet picker
func HomeLink() string {
	return "#/"
}

// PlanetLink builds the fragment for a planet hub, percent-encoding the id
func PlanetLink(planetID string) string {
	return "#/planet?planet=" + url.QueryEscape(planetID)
}

// CountryLink builds the fragment for a country profile
func CountryLink(planetID, countryID string) string {
	return "#/country?planet=" + url.QueryEscape(planetID) +
		"&country=" + url.QueryEscape(countryID)
}
