package components

import (
	g "maragu.dev/gomponents"

	"github.com/mccabemgmt/site/pkg/site"
	"github.com/mccabemgmt/site/pkg/view"
)

// LandingPage assembles the whole document for one variant and view state
func LandingPage(v site.Variant, state view.State, year int) g.Node {
	return Layout(
		PageConfig{
			Title:       v.AgencyName + " | " + v.City,
			Description: v.Tagline,
			Theme:       state.Theme,
		},
		TopNav(v, state.Theme),
		Hero(v),
		About(v),
		ArtistContact(v),
		VenueContact(v),
		PageFooter(v, year),
	)
}
