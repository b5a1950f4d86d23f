package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mccabemgmt/site/pkg/site"
	"github.com/mccabemgmt/site/pkg/view"
)

// TopNav links go through /go/<section> so navigation and theme changes are
// handled by the server-side view controller.
func TopNav(v site.Variant, theme view.Theme) g.Node {
	return Header(
		Class("sticky top-0 z-50 backdrop-blur border-b border-neutral-200 dark:border-neutral-800"),
		Nav(
			Class("mx-auto max-w-6xl px-4 py-3 flex items-center justify-between"),
			A(Href("/go/"+view.SectionHome), Class("text-2xl font-bold tracking-tight"), g.Text(v.AgencyName)),
			Div(
				Class("hidden md:flex items-center gap-6 text-base"),
				A(Href("/go/"+view.SectionContactArtists), Class("hover:opacity-70 flex items-center gap-1"),
					g.Text("Artists "), Icon("arrow-right", 16),
				),
				A(Href("/go/"+view.SectionContactVenues), Class("hover:opacity-70 flex items-center gap-1"),
					g.Text("Venues "), Icon("arrow-right", 16),
				),
				g.El("form",
					Method("post"), Action("/theme"),
					Button(
						Type("submit"),
						Class("text-xs px-2 py-1 rounded-full border border-neutral-300 dark:border-neutral-700"),
						g.Text(theme.ToggleLabel()),
					),
				),
			),
		),
	)
}

func Hero(v site.Variant) g.Node {
	return Section(
		ID(view.SectionHome),
		Class("relative overflow-hidden"),
		Div(
			Class("mx-auto max-w-6xl px-4 py-32 md:py-40 flex flex-col items-center text-center"),
			H1(Class("text-6xl md:text-8xl font-extrabold tracking-tight"), g.Text(v.AgencyName)),
			P(
				Class("mt-6 text-xl md:text-2xl max-w-2xl font-medium "+mutedTextClass),
				g.Text(v.Tagline),
			),
			Div(
				Class("mt-10 flex flex-wrap justify-center gap-4"),
				A(Href("#"+view.SectionContactArtists), Class(primaryButton),
					g.Text("For Artists "), Icon("arrow-right", 20),
				),
				A(Href("#"+view.SectionContactVenues), Class(secondaryLink),
					g.Text("For Venues "), Icon("arrow-right", 20),
				),
			),
			Div(
				Class("mt-8 flex flex-wrap justify-center gap-6 text-base text-neutral-600 dark:text-neutral-300"),
				Span(Class("inline-flex items-center gap-2"), Icon("map-pin", 18), g.Text(v.City)),
				Span(Class("inline-flex items-center gap-2"), Icon("mail", 18), g.Text(v.HelloEmail())),
			),
		),
	)
}

func About(v site.Variant) g.Node {
	return Section(
		ID(view.SectionAbout),
		Class("mx-auto max-w-6xl px-4 py-24"),
		Div(
			Class("text-center max-w-3xl mx-auto"),
			H2(Class("text-4xl font-extrabold"), g.Text("About Us")),
			P(
				Class("mt-6 text-lg md:text-xl leading-relaxed font-normal "+mutedTextClass),
				g.Text(v.About),
			),
		),
	)
}

func PageFooter(v site.Variant, year int) g.Node {
	return Footer(
		Class("border-t border-neutral-200 dark:border-neutral-800 mt-20"),
		Div(
			Class("mx-auto max-w-6xl px-4 py-10 text-base flex flex-col md:flex-row items-center justify-between gap-4"),
			P(g.Textf("© %d %s. All rights reserved.", year, v.AgencyName)),
			Div(
				Class("flex items-center gap-4"),
				A(Href("mailto:"+v.HelloEmail()), Class("inline-flex items-center gap-2"),
					Icon("mail", 16), g.Text("Email"),
				),
				A(Href(v.InstagramURL), g.Attr("target", "_blank"), Rel("noreferrer"), Class("inline-flex items-center gap-2"),
					Icon("instagram", 16), g.Text("Instagram"),
				),
				A(Href(v.WebsiteURL), Class("inline-flex items-center gap-2"),
					Icon("globe", 16), g.Text("Website"),
				),
			),
		),
	)
}
