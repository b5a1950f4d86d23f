package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mccabemgmt/site/pkg/view"
)

type PageConfig struct {
	Title       string
	Description string
	Theme       view.Theme
}

const tailwindConfig = `tailwind.config = { darkMode: "class" }`

const baseStyles = `html { scroll-behavior: smooth; }`

func Layout(config PageConfig, content ...g.Node) g.Node {
	rootClass := ""
	if config.Theme == view.ThemeDark {
		rootClass = "dark"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.If(rootClass != "", Class(rootClass)),
			g.Attr("data-theme", string(config.Theme)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(g.Raw(tailwindConfig)),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				g.El("style", g.Raw(baseStyles)),
			),
			Body(
				Class("min-h-screen bg-white text-neutral-900 dark:bg-neutral-950 dark:text-neutral-100 font-sans"),
				g.Group(content),
			),
		),
	})
}
