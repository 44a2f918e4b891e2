package web_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mirfield/worldatlas/internal/adapters/web"
	"github.com/mirfield/worldatlas/internal/application/atlas"
	"github.com/mirfield/worldatlas/internal/domain/world"
)

func TestBreadcrumb(t *testing.T) {
	assert.Equal(t, `<a href="#/">Choose Planet</a>`, web.Breadcrumb(nil))

	withPlanet := web.Breadcrumb(&world.Planet{ID: "sevyr", Label: "Sevyr"})
	assert.Contains(t, withPlanet, `href="#/"`)
	assert.Contains(t, withPlanet, `href="#/planet?planet=sevyr"`)
	assert.Contains(t, withPlanet, ">Sevyr</a>")
}

func TestViewLoading_EscapesLabel(t *testing.T) {
	markup := web.ViewLoading("Cyq`s & Friends")

	assert.Contains(t, markup, "Loading Cyq`s &amp; Friends")
}

func TestViewHome_TruncatesLongSheetLists(t *testing.T) {
	var sheets []string
	for i := 0; i < 15; i++ {
		sheets = append(sheets, fmt.Sprintf("sheet%02d", i))
	}
	info := &atlas.HealthInfo{Project: "atlas-data", Sheets: sheets}

	markup := web.ViewHome(world.PlanetList{{ID: "test", Label: "TEST"}}, info, nil)

	assert.Contains(t, markup, "(+3 more)")
	assert.Contains(t, markup, "sheet11")
	assert.NotContains(t, markup, "sheet12")
}

func TestViewCountryProfile_OmitsFlagWhenMissing(t *testing.T) {
	planet := &world.Planet{ID: "test", Label: "TEST"}
	data := &world.PlanetData{PlanetID: "test"}
	country := &world.Country{ID: "brund", Name: "Brund"}

	markup := web.ViewCountryProfile(planet, data, country, world.DefaultStyleTable())

	assert.NotContains(t, markup, "<img")
	assert.Contains(t, markup, "No resources reported.")
	assert.Contains(t, markup, "No diplomatic ties reported.")
}

func TestViewCountryProfile_UnreportedShareRendersDash(t *testing.T) {
	planet := &world.Planet{ID: "test", Label: "TEST"}
	data := &world.PlanetData{PlanetID: "test"}
	share := 35.0
	country := &world.Country{
		ID:   "brund",
		Name: "Brund",
		Resources: []world.Resource{
			{Name: "Ore", Quantity: 5},
			{Name: "Basalt", Category: "natural", Share: &share, Quantity: 9400},
		},
	}

	markup := web.ViewCountryProfile(planet, data, country, world.DefaultStyleTable())

	assert.Contains(t, markup, "<td>Ore</td><td>"+web.Dash+"</td><td>"+web.Dash+"</td><td>5</td>")
	assert.Contains(t, markup, "<td>35%</td>")
	assert.NotContains(t, markup, "<td>0%</td>")
}

func TestViewCountryProfile_FlagURLInAttribute(t *testing.T) {
	planet := &world.Planet{ID: "test", Label: "TEST"}
	data := &world.PlanetData{PlanetID: "test"}
	country := &world.Country{
		ID:      "brund",
		Name:    "Brund",
		FlagURL: "https://drive.google.com/uc?export=view&id=ABC123",
	}

	markup := web.ViewCountryProfile(planet, data, country, world.DefaultStyleTable())

	assert.Contains(t, markup, `src="https://drive.google.com/uc?export=view&amp;id=ABC123"`)
	assert.Contains(t, markup, `alt="Flag of Brund"`)
}
