package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/mirfield/worldatlas/internal/application/atlas"
	"github.com/mirfield/worldatlas/internal/domain/routing"
	"github.com/mirfield/worldatlas/internal/domain/world"
)

// Page is one rendered route: markup for the navigation region and the
// main content region
type Page struct {
	Nav     string
	Content string
}

// Sink receives rendered markup. The HTTP handler uses a response-backed
// sink; tests install in-memory ones.
type Sink interface {
	SetNav(html string)
	SetContent(html string)
}

// RenderRecorder counts page renders by route kind
type RenderRecorder interface {
	RecordPageRender(kind string)
}

type noopRenderRecorder struct{}

func (noopRenderRecorder) RecordPageRender(string) {}

// Router owns route resolution and view dispatch. It is the single point
// of user-visible error rendering: adapter and view failures degrade to the
// error panel and panics are contained, so a render can never leave a blank
// or stale page behind.
type Router struct {
	planets world.PlanetList
	styles  world.StyleTable
	adapter *atlas.Adapter
	metrics RenderRecorder

	// generation tags each navigation; a load that finishes after a newer
	// navigation started is discarded instead of clobbering the newer page
	generation atomic.Uint64
}

// RouterOption configures a Router
type RouterOption func(*Router)

// WithRenderRecorder installs a page render recorder
func WithRenderRecorder(m RenderRecorder) RouterOption {
	return func(r *Router) { r.metrics = m }
}

// NewRouter creates a Router over the known planets and loaded adapter
func NewRouter(planets world.PlanetList, styles world.StyleTable, adapter *atlas.Adapter, opts ...RouterOption) *Router {
	r := &Router{
		planets: planets,
		styles:  styles,
		adapter: adapter,
		metrics: noopRenderRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolved is a parsed route with its planet reference settled against the
// known planet list
type Resolved struct {
	Route  routing.Route
	Planet *world.Planet
}

// Resolve parses a fragment and resolves its planet id case-insensitively
// against known ids and labels, falling back to the default planet when the
// id is absent or unmatched. Pure: no fetching, no side effects.
func (r *Router) Resolve(fragment string) Resolved {
	route := routing.Parse(fragment)
	res := Resolved{Route: route}
	switch route.Kind {
	case routing.KindPlanetHub, routing.KindCountryProfile:
		res.Planet = r.planets.Find(route.PlanetID)
		if res.Planet == nil {
			res.Planet = r.planets.DefaultPlanet()
		}
	}
	return res
}

// Render produces the full page for a resolved route. It never lets a
// failure escape: fetch and parse errors, unknown countries and even panics
// in view code all render as panels.
func (r *Router) Render(ctx context.Context, res Resolved) (page Page) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("render panic: %v", p)
			page = Page{Nav: Breadcrumb(nil), Content: ViewError(fmt.Sprintf("internal render failure: %v", p))}
		}
	}()

	switch res.Route.Kind {
	case routing.KindPlanetHub:
		r.metrics.RecordPageRender("planet")
		return r.renderPlanetHub(ctx, res.Planet)
	case routing.KindCountryProfile:
		r.metrics.RecordPageRender("country")
		return r.renderCountryProfile(ctx, res.Planet, res.Route.CountryID)
	}

	// Home, and unrecognized paths, both land on the planet picker
	r.metrics.RecordPageRender("home")
	return r.renderHome(ctx)
}

func (r *Router) renderHome(ctx context.Context) Page {
	health, err := r.adapter.Health(ctx)
	return Page{Nav: Breadcrumb(nil), Content: ViewHome(r.planets, health, err)}
}

func (r *Router) renderPlanetHub(ctx context.Context, planet *world.Planet) Page {
	if planet == nil {
		return Page{Nav: Breadcrumb(nil), Content: ViewError("no planets configured")}
	}
	nav := Breadcrumb(planet)
	data, err := r.adapter.Load(ctx, planet.ID)
	if err != nil {
		return Page{Nav: nav, Content: ViewError(err.Error())}
	}
	return Page{Nav: nav, Content: ViewPlanetHub(planet, data, r.styles)}
}

func (r *Router) renderCountryProfile(ctx context.Context, planet *world.Planet, countryID string) Page {
	if planet == nil {
		return Page{Nav: Breadcrumb(nil), Content: ViewError("no planets configured")}
	}
	nav := Breadcrumb(planet)
	data, err := r.adapter.Load(ctx, planet.ID)
	if err != nil {
		return Page{Nav: nav, Content: ViewError(err.Error())}
	}
	country := data.FindCountry(countryID)
	if country == nil {
		return Page{Nav: nav, Content: ViewCountryNotFound(planet, countryID)}
	}
	return Page{Nav: nav, Content: ViewCountryProfile(planet, data, country, r.styles)}
}

// Navigate drives a sink through a full transition: breadcrumb update, an
// immediate loading placeholder for routes whose data is not yet cached,
// then the final page.
// A navigation superseded by a newer one before its load finishes discards
// its result, so the sink always ends up showing the latest requested
// route.
func (r *Router) Navigate(ctx context.Context, fragment string, sink Sink) {
	gen := r.generation.Add(1)
	res := r.Resolve(fragment)

	sink.SetNav(Breadcrumb(res.Planet))
	if needsLoad(res) && !r.cached(res.Planet) {
		label := "planet data"
		if res.Planet != nil {
			label = res.Planet.Label
		}
		sink.SetContent(ViewLoading(label))
	}

	page := r.Render(ctx, res)

	if r.generation.Load() != gen {
		// A newer navigation took over while this one was loading
		return
	}
	sink.SetNav(page.Nav)
	sink.SetContent(page.Content)
}

func needsLoad(res Resolved) bool {
	switch res.Route.Kind {
	case routing.KindPlanetHub, routing.KindCountryProfile:
		return true
	}
	return false
}

// cached reports whether a planet's data is already in the session cache,
// in which case the loading placeholder would only flash
func (r *Router) cached(planet *world.Planet) bool {
	return planet != nil && r.adapter.Cached(planet.ID)
}

// ServeHTTP renders server-side pages at paths mirroring the fragment
// routes: /, /planet?planet=<id>, /country?planet=<id>&country=<id>.
// Unknown paths fall back to Home, per the route contract.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	fragment := req.URL.Path
	if req.URL.RawQuery != "" {
		fragment += "?" + req.URL.RawQuery
	}

	page := r.Render(req.Context(), r.Resolve(fragment))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, page.Nav, page.Content)
}
