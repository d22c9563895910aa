package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/auto-trader/site/listing"
)

const (
	ResultsPath = "/cars/results"

	// SearchFormID is sent by htmx as HX-Trigger when the filter form asks
	// for results, as opposed to the panel's first load.
	SearchFormID = "car-search"

	LoadingMessage = "Loading cars…"
	EmptyMessage   = "No cars found. Try seeding in backend or change filters."
)

const resultsBoxClass = "mt-6 grid gap-3 max-h-72 overflow-auto pr-1"

// ---- Search Components ----

// SearchPanel renders the filter form with its results box in the loading
// state, so the first search runs as soon as the page is mounted.
func SearchPanel(f listing.Filter) g.Node {
	return Div(
		ID("search-panel"),
		Class("rounded-2xl border border-slate-200 bg-white/80 p-5 shadow-xl"),
		Div(
			Class("flex items-center justify-between"),
			Div(
				Class("flex items-center gap-2 font-semibold"),
				icon("filter", 18, ""),
				g.Text("Find a car"),
			),
			A(
				Href("/test"),
				Class("text-xs text-slate-500 hover:text-slate-900 underline"),
				g.Text("Check backend"),
			),
		),
		Form(
			ID(SearchFormID),
			Class("mt-4 grid grid-cols-1 sm:grid-cols-3 gap-3"),
			hx.Get(ResultsPath),
			hx.Target("#car-results"),
			hx.Swap("outerHTML"),
			hx.Indicator("#car-results"),
			filterInput("search", "q", "Make (e.g. Tesla)", "text", f.Q),
			filterInput("dollar", "min", "Min price", "numeric", f.Min),
			filterInput("dollar", "max", "Max price", "numeric", f.Max),
			button("Search",
				withType("submit"),
				withIcon("search"),
				withClass("sm:col-span-3"),
			),
		),
		CarResultsLoading(f),
	)
}

// filterInput is always a plain text box; inputMode only picks the on-screen
// keyboard.
func filterInput(iconName, name, placeholder, inputMode, value string) g.Node {
	return Label(
		Class("flex items-center gap-2 rounded-xl border border-slate-300 bg-white px-3 py-2 focus-within:ring-2 focus-within:ring-slate-900"),
		Span(Class("text-slate-400"), icon(iconName, 16, "")),
		Input(
			Type("text"),
			Name(name),
			Value(value),
			Placeholder(placeholder),
			g.Attr("aria-label", placeholder),
			Class("w-full bg-transparent text-sm outline-none"),
			g.Attr("inputmode", inputMode),
		),
	)
}

// CarResultsLoading is the results box the page starts with. It loads the
// results for f as soon as htmx processes it.
func CarResultsLoading(f listing.Filter) g.Node {
	url := ResultsPath
	if q := f.FormValues().Encode(); q != "" {
		url += "?" + q
	}
	return Div(
		ID("car-results"),
		Class(resultsBoxClass),
		hx.Get(url),
		hx.Trigger("load"),
		hx.Swap("outerHTML"),
		g.Attr("aria-busy", "true"),
		P(Class("text-sm text-slate-500"), g.Text(LoadingMessage)),
	)
}

// CarResults is the settled results box. While a new search is in flight the
// box carries htmx-request, which hides the body and shows the loading line.
// A failed first load looks exactly like an empty result.
func CarResults(r listing.Result, fm Formatter) g.Node {
	var body g.Node
	if r.Status != listing.StatusPopulated || len(r.Cars) == 0 {
		body = P(Class("text-sm text-slate-500"), g.Text(EmptyMessage))
	} else {
		cards := make([]g.Node, 0, len(r.Cars))
		for _, car := range r.Cars {
			cards = append(cards, CarCard(car, fm))
		}
		body = g.Group(cards)
	}

	return Div(
		ID("car-results"),
		Class(resultsBoxClass),
		P(Class("results-loading text-sm text-slate-500"), g.Text(LoadingMessage)),
		Div(Class("results-body grid gap-3"), body),
	)
}
