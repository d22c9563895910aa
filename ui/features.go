package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/auto-trader/site/config"
)

type feature struct {
	icon  string
	title string
	text  string
}

var siteFeatures = []feature{
	{icon: "shield", title: "Verified Dealers", text: "Every dealer is checked before their first listing goes live."},
	{icon: "sparkles", title: "AI Smart Search", text: "Filters that understand what you mean, not just what you type."},
	{icon: "phone", title: "1-click Contact", text: "Reach the seller straight from the listing, no sign-up needed."},
}

// ---- Feature Components ----

func Features() g.Node {
	cards := make([]g.Node, 0, len(siteFeatures))
	for _, f := range siteFeatures {
		cards = append(cards, Div(
			Class("rounded-2xl border border-slate-200 bg-white p-6 shadow-sm"),
			Span(Class("inline-flex h-10 w-10 items-center justify-center rounded-xl bg-slate-900 text-white"), icon(f.icon, 20, "")),
			H3(Class("mt-4 font-semibold"), g.Text(f.title)),
			P(Class("mt-2 text-sm text-slate-600"), g.Text(f.text)),
		))
	}

	return Section(
		ID("browse"),
		Class("py-16"),
		container(
			sectionHeading("Why "+config.SiteName, "Everything you need to buy or sell with confidence."),
			Div(Class("mt-10 grid gap-6 md:grid-cols-3"), g.Group(cards)),
		),
	)
}
