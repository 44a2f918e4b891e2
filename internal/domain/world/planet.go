package world

import "strings"

// Planet is a top-level dataset partition: a named world with its own
// countries. Countries are absent until the first successful load and
// immutable afterwards.
type Planet struct {
	// ID is the canonical lowercase identifier used in routes and cache keys
	ID string

	// Label is the display name, case-preserving
	Label string

	// DataURL overrides the configured upstream base URL for this planet.
	// Empty means "use the shared upstream source".
	DataURL string

	// Default marks the planet used when a route carries no usable planet id
	Default bool
}

// PlanetList is the ordered set of known planets
type PlanetList []Planet

// Find looks up a planet by identifier or display label, case-insensitively.
// Returns nil when nothing matches.
func (l PlanetList) Find(idOrLabel string) *Planet {
	if idOrLabel == "" {
		return nil
	}
	key := strings.ToLower(idOrLabel)
	for i := range l {
		if l[i].ID == key {
			return &l[i]
		}
	}
	for i := range l {
		if strings.ToLower(l[i].Label) == key {
			return &l[i]
		}
	}
	return nil
}

// DefaultPlanet returns the first planet flagged as default, else the first
// planet in the list, else nil for an empty list.
func (l PlanetList) DefaultPlanet() *Planet {
	for i := range l {
		if l[i].Default {
			return &l[i]
		}
	}
	if len(l) > 0 {
		return &l[0]
	}
	return nil
}
