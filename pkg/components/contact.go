package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mccabemgmt/site/pkg/site"
	"github.com/mccabemgmt/site/pkg/view"
)

// Form endpoints; the server answers with a redirect to the mailto link.
const (
	ArtistsAction = "/contact/artists"
	VenuesAction  = "/contact/venues"
)

func pitch(c site.Copy) g.Node {
	return Div(
		Class("max-w-md mx-auto md:mx-0"),
		P(Class("text-sm uppercase tracking-widest text-neutral-500"), g.Text(c.Kicker)),
		H3(Class("mt-2 text-2xl font-bold"), g.Text(c.Heading)),
		P(Class("mt-2 "+mutedTextClass), g.Text(c.Pitch)),
	)
}

func contactForm(action, recipient, submitLabel, submitIcon string, fields ...g.Node) g.Node {
	return Div(
		Class(formCardClass),
		g.El("form",
			Method("post"),
			Action(action),
			Class("grid gap-4 text-left"),
			g.Group(fields),
			Button(
				Type("submit"),
				Class(primaryButton),
				g.Text(submitLabel+" "),
				Icon(submitIcon, 20),
			),
			P(
				Class("text-xs text-neutral-500"),
				g.Textf("This opens your email client with the details prefilled to send to %s.", recipient),
			),
		),
	)
}

func ArtistContact(v site.Variant) g.Node {
	return Section(
		ID(view.SectionContactArtists),
		Class(sectionClass),
		Div(
			Class("grid md:grid-cols-2 gap-10 items-start"),
			Div(
				Class("order-2 md:order-1"),
				H2(Class("text-3xl font-bold mb-6"), g.Text("Contact — Artists")),
				P(Class("mb-6 "+mutedTextClass), g.Text(v.Artists.Intro)),
				contactForm(ArtistsAction, v.ArtistsEmail(), v.Artists.SubmitLabel, v.SubmitIcon,
					formField(field{form: "artists", name: "name", label: "Name", placeholder: "Your artist/band", required: true}),
					formField(field{form: "artists", name: "email", label: "Email", placeholder: "you@example.com", inputType: "email", required: true}),
					formField(field{form: "artists", name: "links", label: "Links (Spotify, YouTube, EPK)", placeholder: "Paste URLs"}),
					formField(field{form: "artists", name: "availability", label: "Availability", placeholder: "Weeknights, weekends, specific dates"}),
					formField(field{form: "artists", name: "notes", label: "Notes", placeholder: "Short intro, tech needs, set length", multiline: true}),
				),
			),
			Div(
				Class("order-1 md:order-2 text-center md:text-left"),
				pitch(v.Artists),
			),
		),
	)
}

func VenueContact(v site.Variant) g.Node {
	return Section(
		ID(view.SectionContactVenues),
		Class(sectionClass),
		Div(
			Class("grid md:grid-cols-2 gap-10 items-start"),
			Div(
				Class("order-2 text-center md:text-left"),
				pitch(v.Venues),
			),
			Div(
				Class("order-1"),
				H2(Class("text-3xl font-bold mb-6"), g.Text("Contact — Venues")),
				contactForm(VenuesAction, v.BookingsEmail(), v.Venues.SubmitLabel, v.SubmitIcon,
					formField(field{form: "venues", name: "venue", label: "Venue name", placeholder: "Your venue", required: true}),
					Div(
						Class("grid md:grid-cols-2 gap-4"),
						formField(field{form: "venues", name: "contact", label: "Contact", placeholder: "Name", required: true}),
						formField(field{form: "venues", name: "email", label: "Email", placeholder: "you@venue.com", inputType: "email", required: true}),
					),
					Div(
						Class("grid md:grid-cols-2 gap-4"),
						formField(field{form: "venues", name: "dates", label: "Date(s)", placeholder: "e.g., Fridays in Feb"}),
						formField(field{form: "venues", name: "budget", label: "Budget", placeholder: "e.g., £150–£400"}),
					),
					formField(field{form: "venues", name: "notes", label: "Notes", placeholder: "Room size, preferred genres, set times", multiline: true}),
				),
			),
		),
	)
}
