package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/auto-trader/site/config"
)

// ---- Footer Components ----

// SiteFooter renders the page footer for the given copyright year.
func SiteFooter(year int) g.Node {
	return Footer(
		Class("border-t border-slate-200 py-10"),
		container(
			Div(
				Class("flex flex-col sm:flex-row items-center justify-between gap-4 text-sm text-slate-500"),
				P(g.Text("© "+strconv.Itoa(year)+" "+config.SiteName+" — Crafted with care.")),
				Nav(
					Class("flex items-center gap-6"),
					A(Href("#browse"), Class("hover:text-slate-900"), g.Text("Browse")),
					A(Href("#sell"), Class("hover:text-slate-900"), g.Text("Sell")),
					A(Href("/test"), Class("hover:text-slate-900"), g.Text("System Check")),
				),
			),
		),
	)
}
