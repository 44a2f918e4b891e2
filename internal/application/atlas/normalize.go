package atlas

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mirfield/worldatlas/internal/domain/world"
)

// planetPayload is the union of recognized upstream document shapes. The
// live endpoint answers with ok/year/countries plus an optional edge list;
// static documents carry just a countries array. Anything else that decodes
// is tolerated field by field.
type planetPayload struct {
	OK        *bool        `json:"ok"`
	Year      int          `json:"year"`
	Countries []rawCountry `json:"countries"`

	// Document-level diplomacy, when present, is the edge-list form
	Diplomacy []rawEdge `json:"diplomacy"`
	Edges     []rawEdge `json:"edges"`
}

type rawCountry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Demonym string `json:"demonym"`
	Motto   string `json:"motto"`

	// Flag locator field variants seen across dataset revisions
	Flag         string `json:"flag"`
	FlagURL      string `json:"flagUrl"`
	FlagURLSnake string `json:"flag_url"`
	FlagImage    string `json:"flagImage"`

	Resources  []rawResource         `json:"resources"`
	Indicators map[string]flexNumber `json:"indicators"`

	// Diplomacy may be an adjacency map (partner id -> relationship) or an
	// edge list; decoded after shape detection
	Diplomacy     json.RawMessage `json:"diplomacy"`
	Relationships json.RawMessage `json:"relationships"`
}

type rawResource struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Type     string     `json:"type"`
	Share    flexNumber `json:"share"`
	Percent  flexNumber `json:"percent"`
	Quantity flexNumber `json:"quantity"`
	Amount   flexNumber `json:"amount"`
}

type rawRelationship struct {
	Category     string `json:"category"`
	Type         string `json:"type"`
	Relationship string `json:"relationship"`
	Description  string `json:"description"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}

type rawEdge struct {
	rawRelationship

	From string `json:"from"`
	To   string `json:"to"`
	A    string `json:"a"`
	B    string `json:"b"`
}

// flexNumber decodes a JSON number, a numeric string, null or an empty
// string. Absent and unparseable values stay absent rather than becoming
// zero.
type flexNumber struct {
	value   float64
	present bool
}

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		str = strings.TrimSpace(strings.ReplaceAll(str, ",", ""))
		if str == "" {
			return nil
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return nil
		}
		n.value, n.present = v, true
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	n.value, n.present = v, true
	return nil
}

// NormalizePlanet adapts a raw upstream document into the canonical model.
// Returns a world.ParseError when the body is not well-formed JSON. The
// result's Countries field is always non-nil.
func NormalizePlanet(planetID string, body []byte) (*world.PlanetData, error) {
	var payload planetPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, world.NewParseError(fmt.Sprintf("planet %s: malformed payload: %v", planetID, err))
	}

	countries := make([]world.Country, 0, len(payload.Countries))
	for _, rc := range payload.Countries {
		countries = append(countries, normalizeCountry(rc))
	}

	docEdges := payload.Diplomacy
	if len(docEdges) == 0 {
		docEdges = payload.Edges
	}
	applyEdgeList(countries, docEdges)

	return &world.PlanetData{
		PlanetID:  strings.ToLower(planetID),
		Year:      payload.Year,
		Countries: countries,
	}, nil
}

func normalizeCountry(rc rawCountry) world.Country {
	c := world.Country{
		ID:      rc.ID,
		Name:    rc.Name,
		Demonym: rc.Demonym,
		Motto:   rc.Motto,
		FlagURL: FlagDirectURL(firstNonEmpty(rc.FlagURL, rc.FlagURLSnake, rc.FlagImage, rc.Flag)),
	}

	if len(rc.Indicators) > 0 {
		c.Indicators = make(map[string]float64, len(rc.Indicators))
		for key, n := range rc.Indicators {
			if !n.present {
				continue
			}
			if canon, ok := canonicalIndicatorKey(key); ok {
				c.Indicators[canon] = n.value
			}
		}
	}
	if c.Indicators == nil {
		c.Indicators = map[string]float64{}
	}

	for _, rr := range rc.Resources {
		c.Resources = append(c.Resources, world.Resource{
			Name:     rr.Name,
			Category: firstNonEmpty(rr.Category, rr.Type),
			Share:    rr.Share.orPtr(rr.Percent),
			Quantity: rr.Quantity.or(rr.Amount),
		})
	}

	c.Diplomacy = decodeDiplomacy(rc.ID, rc.Diplomacy)
	if len(c.Diplomacy) == 0 {
		c.Diplomacy = decodeDiplomacy(rc.ID, rc.Relationships)
	}
	if c.Diplomacy == nil {
		c.Diplomacy = map[string]world.Relationship{}
	}
	return c
}

// decodeDiplomacy handles both recognized diplomacy shapes on a country:
// the adjacency-map form and the edge-list form (whose entries name this
// country as one of their endpoints).
func decodeDiplomacy(ownerID string, raw json.RawMessage) map[string]world.Relationship {
	if len(raw) == 0 {
		return nil
	}

	var adjacency map[string]rawRelationship
	if err := json.Unmarshal(raw, &adjacency); err == nil {
		out := make(map[string]world.Relationship, len(adjacency))
		for partner, rr := range adjacency {
			out[strings.ToLower(partner)] = rr.toDomain()
		}
		return out
	}

	var list []rawEdge
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make(map[string]world.Relationship, len(list))
		for _, e := range list {
			partner := edgePartner(ownerID, e)
			if partner == "" {
				continue
			}
			out[strings.ToLower(partner)] = e.toDomain()
		}
		return out
	}
	return nil
}

// edgePartner picks the endpoint of a per-country edge that is not the
// owning country, whatever direction the edge was written in. An edge that
// names only the owner has no partner.
func edgePartner(ownerID string, e rawEdge) string {
	owner := strings.ToLower(strings.TrimSpace(ownerID))
	for _, endpoint := range []string{e.To, e.B, e.From, e.A} {
		endpoint = strings.TrimSpace(endpoint)
		if endpoint != "" && strings.ToLower(endpoint) != owner {
			return endpoint
		}
	}
	return ""
}

// applyEdgeList folds a document-level edge list onto the countries'
// adjacency maps, writing both directions so either profile shows the tie.
// Existing per-country entries are not overwritten.
func applyEdgeList(countries []world.Country, edges []rawEdge) {
	if len(edges) == 0 {
		return
	}
	index := make(map[string]*world.Country, len(countries))
	for i := range countries {
		index[strings.ToLower(countries[i].ID)] = &countries[i]
	}
	for _, e := range edges {
		from := strings.ToLower(firstNonEmpty(e.From, e.A))
		to := strings.ToLower(firstNonEmpty(e.To, e.B))
		if from == "" || to == "" {
			continue
		}
		rel := e.toDomain()
		if c, ok := index[from]; ok {
			if _, exists := c.Diplomacy[to]; !exists {
				c.Diplomacy[to] = rel
			}
		}
		if c, ok := index[to]; ok {
			if _, exists := c.Diplomacy[from]; !exists {
				c.Diplomacy[from] = rel
			}
		}
	}
}

func (r rawRelationship) toDomain() world.Relationship {
	return world.Relationship{
		Category:    strings.ToLower(firstNonEmpty(r.Category, r.Type, r.Relationship)),
		Description: firstNonEmpty(r.Description, r.Notes),
		Status:      r.Status,
	}
}

func (n flexNumber) or(fallback flexNumber) float64 {
	if n.present {
		return n.value
	}
	if fallback.present {
		return fallback.value
	}
	return 0
}

// orPtr keeps absence observable: nil when neither value was reported
func (n flexNumber) orPtr(fallback flexNumber) *float64 {
	if n.present {
		v := n.value
		return &v
	}
	if fallback.present {
		v := fallback.value
		return &v
	}
	return nil
}

// canonicalIndicatorKey folds upstream indicator spellings onto the five
// canonical keys. Unknown keys are dropped rather than guessed.
func canonicalIndicatorKey(key string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.NewReplacer(" ", "_", "-", "_").Replace(k)
	switch k {
	case "gdp", "real_gdp", "realgdp":
		return world.IndicatorGDP, true
	case "gdp_per_capita", "gdppercapita", "real_gdp_per_capita":
		return world.IndicatorGDPPerCapita, true
	case "unemployment", "unemployment_rate", "unemploymentrate":
		return world.IndicatorUnemployment, true
	case "inflation", "inflation_rate", "inflationrate":
		return world.IndicatorInflation, true
	case "trade_balance", "tradebalance":
		return world.IndicatorTradeBalance, true
	}
	return "", false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

var (
	driveFilePattern = regexp.MustCompile(`/file/d/([A-Za-z0-9_-]+)`)
	driveQueryID     = regexp.MustCompile(`[?&]id=([A-Za-z0-9_-]+)`)
	driveBareID      = regexp.MustCompile(`^[A-Za-z0-9_-]{20,}$`)
)

// FlagDirectURL rewrites cloud-drive "file view" share links and bare share
// identifiers into direct-display image URLs. Folder links and unrecognized
// strings pass through unchanged; empty stays empty.
func FlagDirectURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "/folders/") {
		return s
	}
	if m := driveFilePattern.FindStringSubmatch(s); m != nil {
		return driveDirectURL(m[1])
	}
	if strings.Contains(s, "drive.google.com") {
		if m := driveQueryID.FindStringSubmatch(s); m != nil {
			return driveDirectURL(m[1])
		}
	}
	if driveBareID.MatchString(s) {
		return driveDirectURL(s)
	}
	return s
}

func driveDirectURL(id string) string {
	return "https://drive.google.com/uc?export=view&id=" + id
}
