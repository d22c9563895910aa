package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/auto-trader/site/lead"
)

const (
	LeadsPath = "/leads"

	LeadSentTitle = "Thanks! We’ll be in touch."
	LeadSentText  = "Our team received your request."
)

var sellingPoints = []string{
	"Priority placement and highlights",
	"Dealer dashboard and analytics",
	"Fraud protection and escrow options",
}

// ---- Lead Components ----

// CTA is the selling section wrapping the lead form.
func CTA(defaultCarID string) g.Node {
	points := make([]g.Node, 0, len(sellingPoints))
	for _, p := range sellingPoints {
		points = append(points, Li(
			Class("flex items-center gap-2"),
			Span(Class("text-emerald-400"), icon("check", 18, "")),
			g.Text(p),
		))
	}

	return Section(
		ID("sell"),
		Class("py-16"),
		container(
			Div(
				Class("grid lg:grid-cols-2 gap-10 rounded-3xl bg-slate-900 p-8 sm:p-12 text-white"),
				Div(
					H2(Class("text-3xl font-bold tracking-tight"), g.Text("Sell faster with smart tools")),
					P(Class("mt-3 text-slate-300"), g.Text("List your car in minutes and reach buyers who are ready to talk.")),
					Ul(Class("mt-6 space-y-3 text-slate-200"), g.Group(points)),
				),
				LeadForm(lead.Lead{CarID: defaultCarID}),
			),
		),
	)
}

// LeadForm renders the contact form holding the given values. A failed or
// invalid submission comes back through here unchanged, with no error shown.
func LeadForm(l lead.Lead) g.Node {
	return Form(
		ID("lead-form"),
		Class("rounded-2xl bg-white p-6 text-slate-900 space-y-3"),
		hx.Post(LeadsPath),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		hx.Indicator("#lead-indicator"),
		leadInput("text", "name", "Your name", l.Name, true),
		leadInput("email", "email", "Email", l.Email, true),
		leadInput("tel", "phone", "Phone (optional)", l.Phone, false),
		Textarea(
			Name("message"),
			Placeholder("What are you looking for?"),
			g.Attr("aria-label", "Message"),
			g.Attr("rows", "3"),
			Class(leadFieldClass),
			g.Text(l.Message),
		),
		Input(Type("hidden"), Name("car_id"), Value(l.CarID)),
		button("Send",
			withType("submit"),
			withIcon("send"),
			withClass("w-full"),
		),
		indicator("lead-indicator", "Sending…"),
	)
}

const leadFieldClass = "w-full rounded-xl border border-slate-300 px-3 py-2 text-sm outline-none focus:ring-2 focus:ring-slate-900"

func leadInput(inputType, name, placeholder, value string, required bool) g.Node {
	return Input(
		Type(inputType),
		Name(name),
		Value(value),
		Placeholder(placeholder),
		g.Attr("aria-label", placeholder),
		Class(leadFieldClass),
		g.If(required, Required()),
	)
}

// LeadSent replaces the form once the backend accepted the lead.
func LeadSent() g.Node {
	return Div(
		ID("lead-form"),
		Class("rounded-2xl bg-white p-6 text-slate-900 flex items-start gap-3"),
		g.Attr("role", "status"),
		Span(Class("text-emerald-500"), icon("check", 24, "")),
		Div(
			P(Class("font-semibold"), g.Text(LeadSentTitle)),
			P(Class("mt-1 text-sm text-slate-600"), g.Text(LeadSentText)),
		),
	)
}

func indicator(id, text string) g.Node {
	return Span(
		ID(id),
		Class("htmx-indicator block text-center text-xs text-slate-500"),
		g.Text(text),
	)
}
