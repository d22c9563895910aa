package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/auto-trader/site/listing"
)

type heroStat struct {
	label string
	value string
}

var (
	heroBadges = []string{"Clean & Modern", "Trusted Sellers", "Smart Matching"}
	heroStats  = []heroStat{
		{label: "Verified Dealers", value: "1.2k"},
		{label: "Listed Cars", value: "24k"},
		{label: "Avg. Rating", value: "4.8"},
	}
)

// ---- Hero Components ----

// Hero is the landing banner. It embeds the search panel.
func Hero(f listing.Filter) g.Node {
	badges := make([]g.Node, 0, len(heroBadges))
	for _, b := range heroBadges {
		badges = append(badges, Span(
			Class("inline-flex items-center gap-1 rounded-full border border-slate-200 bg-white px-3 py-1 text-xs font-medium text-slate-600"),
			icon("sparkles", 12, ""),
			g.Text(b),
		))
	}

	stats := make([]g.Node, 0, len(heroStats))
	for _, s := range heroStats {
		stats = append(stats, Div(
			Dt(Class("text-xs text-slate-500"), g.Text(s.label)),
			Dd(Class("text-2xl font-bold"), g.Text(s.value)),
		))
	}

	return Section(
		ID("hero"),
		Class("relative overflow-hidden"),
		container(
			Div(
				Class("grid lg:grid-cols-2 gap-10 items-center py-16 sm:py-24"),
				Div(
					Div(Class("flex flex-wrap gap-2"), g.Group(badges)),
					H1(
						Class("mt-6 text-4xl sm:text-5xl font-extrabold tracking-tight"),
						g.Text("Find your next ride with style"),
					),
					P(
						Class("mt-4 text-lg text-slate-600 max-w-xl"),
						g.Text("Browse verified listings from trusted sellers, compare prices at a glance and reach out in one click."),
					),
					Div(
						Class("mt-8 flex flex-wrap gap-3"),
						button("Browse cars", withHref("#browse"), withIcon("arrow")),
						buttonSecondary("Sell a car", withHref("#sell")),
					),
					Dl(Class("mt-10 grid grid-cols-3 gap-6 max-w-md"), g.Group(stats)),
				),
				SearchPanel(f),
			),
		),
	)
}
