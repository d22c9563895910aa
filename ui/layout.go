package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// Assets are the external stylesheet and script URLs every page loads.
type Assets struct {
	TailwindCSSURL string
	HTMXURL        string
}

// ---- Page Layout ----

func Page(title string, assets Assets, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/svg+xml"), Href("/favicon.svg")),
			Link(
				Rel("stylesheet"),
				Href(assets.TailwindCSSURL),
			),
			Link(
				Rel("stylesheet"),
				Href("/css/site.css"),
			),
			Script(
				Type("text/javascript"),
				Src(assets.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("min-h-screen bg-gradient-to-b from-white via-slate-50 to-white text-slate-900"),
				g.Group(content),
			),
		},
	})
}

func container(children ...g.Node) g.Node {
	return Div(
		Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
		g.Group(children),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("max-w-2xl"),
		H2(Class("text-2xl sm:text-3xl font-bold tracking-tight"), g.Text(title)),
		g.If(subtitle != "", P(Class("mt-2 text-slate-600"), g.Text(subtitle))),
	)
}
