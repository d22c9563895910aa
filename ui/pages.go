package ui

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/auto-trader/site/cache"
	"github.com/auto-trader/site/config"
	"github.com/auto-trader/site/diag"
	"github.com/auto-trader/site/listing"
	"github.com/auto-trader/site/syscheck"
)

// HomePage lays out the landing page in its fixed order: navbar, hero,
// features, call to action, footer.
func HomePage(assets Assets, defaultCarID string, year int) g.Node {
	return Page(
		config.SiteName,
		assets,
		[]g.Node{
			NavbarNode(Navbar{}),
			Main(
				Hero(listing.Filter{}),
				Features(),
				CTA(defaultCarID),
			),
			SiteFooter(year),
		},
	)
}

// SystemCheckPage shows what the backend answered to its self-check and the
// latest recorded outcomes.
func SystemCheckPage(assets Assets, report syscheck.Report, outcomes []diag.Outcome, stats cache.Stats) g.Node {
	return Page(
		"System Check - "+config.SiteName,
		assets,
		[]g.Node{
			NavbarNode(Navbar{}),
			Main(
				Class("py-12"),
				container(
					sectionHeading("System Check", "Connectivity between this site and the listings backend."),
					backendReport(report),
					probeCacheLine(stats),
					recentOutcomes(outcomes),
				),
			),
		},
	)
}

func backendReport(r syscheck.Report) g.Node {
	statusIcon, statusClass, statusText := "check", "text-emerald-600", "Backend reachable"
	switch {
	case !r.Reachable:
		statusIcon, statusClass, statusText = "alert", "text-rose-600", "Backend unreachable"
	case !r.Healthy():
		statusIcon, statusClass, statusText = "alert", "text-amber-600", "Backend answered with an error"
	}

	rows := []g.Node{
		reportRow("Backend URL", r.BackendURL),
		reportRow("Checked at", r.CheckedAt.Format("2006-01-02 15:04:05 MST")),
	}
	if r.Reachable {
		rows = append(rows, reportRow("HTTP status", strconv.Itoa(r.HTTPStatus)))
	}
	if r.Error != "" {
		rows = append(rows, reportRow("Error", r.Error))
	}
	for _, f := range r.Fields {
		rows = append(rows, reportRow(f.Key, f.Value))
	}

	return Div(
		ID("backend-report"),
		Class("mt-8 rounded-2xl border border-slate-200 bg-white p-6"),
		Div(
			Class("flex items-center gap-2 font-semibold "+statusClass),
			icon(statusIcon, 20, ""),
			g.Text(statusText),
		),
		Dl(Class("mt-4 grid grid-cols-1 sm:grid-cols-3 gap-x-6 gap-y-2 text-sm"), g.Group(rows)),
	)
}

func reportRow(label, value string) g.Node {
	return g.Group([]g.Node{
		Dt(Class("text-slate-500"), g.Text(label)),
		Dd(Class("sm:col-span-2 font-mono break-all"), g.Text(value)),
	})
}

func probeCacheLine(s cache.Stats) g.Node {
	return P(
		Class("mt-3 text-xs text-slate-400"),
		g.Text(fmt.Sprintf("%s: %d hits, %d misses (%.0f%% hit rate)", s.CacheType, s.Hits, s.Misses, s.HitRate)),
	)
}

func recentOutcomes(outcomes []diag.Outcome) g.Node {
	if len(outcomes) == 0 {
		return P(Class("mt-8 text-sm text-slate-500"), g.Text("No recent outcomes recorded."))
	}

	rows := make([]g.Node, 0, len(outcomes))
	for _, o := range outcomes {
		code := ""
		if o.HTTPStatus != 0 {
			code = strconv.Itoa(o.HTTPStatus)
		}
		rows = append(rows, Tr(
			Class("border-t border-slate-100"),
			Td(Class("py-2 pr-4 whitespace-nowrap"), g.Text(o.CreatedAt.Format("2006-01-02 15:04:05"))),
			Td(Class("py-2 pr-4"), g.Text(string(o.Kind))),
			Td(Class("py-2 pr-4"), g.Text(o.Status)),
			Td(Class("py-2 pr-4"), g.Text(code)),
			Td(Class("py-2 pr-4 text-slate-500"), g.Text(o.Detail)),
			Td(Class("py-2 font-mono text-xs text-slate-400"), g.Text(o.RequestID)),
		))
	}

	return Div(
		Class("mt-10"),
		H3(Class("font-semibold"), g.Text("Recent outcomes")),
		Div(
			Class("mt-3 overflow-x-auto rounded-2xl border border-slate-200 bg-white p-4"),
			Table(
				Class("w-full text-left text-sm"),
				THead(Tr(
					Th(g.Text("When")),
					Th(g.Text("Kind")),
					Th(g.Text("Status")),
					Th(g.Text("HTTP")),
					Th(g.Text("Detail")),
					Th(g.Text("Request")),
				)),
				TBody(g.Group(rows)),
			),
		),
	)
}

// ErrorPage is rendered by the fiber error handler.
func ErrorPage(assets Assets, code int, message string) g.Node {
	return Page(
		fmt.Sprintf("%d - %s", code, config.SiteName),
		assets,
		[]g.Node{
			NavbarNode(Navbar{}),
			Main(
				Class("py-24"),
				container(
					Div(
						Class("max-w-lg mx-auto text-center"),
						P(Class("text-6xl font-extrabold text-slate-300"), g.Text(strconv.Itoa(code))),
						H1(Class("mt-4 text-2xl font-bold"), g.Text(message)),
						Div(Class("mt-8"), button("Back home", withHref("/"))),
					),
				),
			),
		},
	)
}
