package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/auto-trader/site/config"
)

// NavbarPath serves the header partial for a given open state.
const NavbarPath = "/navbar"

// Navbar is the header's only state: whether the mobile menu is open.
type Navbar struct {
	Open bool
}

// Toggle flips the mobile menu.
func (n Navbar) Toggle() Navbar {
	return Navbar{Open: !n.Open}
}

// Close shuts the mobile menu.
func (n Navbar) Close() Navbar {
	return Navbar{}
}

type navLink struct {
	label string
	href  string
}

var navLinks = []navLink{
	{label: "Browse", href: "#browse"},
	{label: "Sell", href: "#sell"},
	{label: "System", href: "/test"},
}

func navbarURL(n Navbar) string {
	return NavbarPath + "?open=" + strconv.FormatBool(n.Open)
}

// closeMenuScript re-renders the header closed without stopping the link's
// own navigation.
const closeMenuScript = "htmx.ajax('GET', '" + NavbarPath + "?open=false', {target: '#navbar', swap: 'outerHTML'})"

// ---- Navigation Components ----

// NavbarNode renders the sticky header. The menu button swaps the whole
// header for the toggled state.
func NavbarNode(n Navbar) g.Node {
	menuIcon, menuLabel := "menu", "Open menu"
	if n.Open {
		menuIcon, menuLabel = "close", "Close menu"
	}

	return Header(
		ID("navbar"),
		Class("sticky top-0 z-40 backdrop-blur bg-white/70 border-b border-slate-200"),
		container(
			Div(
				Class("flex h-16 items-center justify-between"),
				A(
					Href("/"),
					Class("flex items-center gap-2 font-semibold text-lg"),
					Span(Class("inline-flex h-9 w-9 items-center justify-center rounded-xl bg-slate-900 text-white"), icon("car", 20, "")),
					g.Text(config.SiteName),
				),
				Nav(
					Class("hidden md:flex items-center gap-6 text-sm font-medium"),
					desktopLinks(),
				),
				Div(
					Class("hidden md:flex items-center gap-3"),
					button("Get started", withHref("#sell"), withClass("text-sm px-4 py-2")),
				),
				Button(
					Type("button"),
					Class("md:hidden inline-flex items-center justify-center rounded-lg p-2 hover:bg-slate-100"),
					g.Attr("aria-label", menuLabel),
					g.Attr("aria-expanded", strconv.FormatBool(n.Open)),
					hx.Get(navbarURL(n.Toggle())),
					hx.Target("#navbar"),
					hx.Swap("outerHTML"),
					icon(menuIcon, 22, ""),
				),
			),
		),
		g.If(n.Open, mobileMenu()),
	)
}

func desktopLinks() g.Node {
	nodes := make([]g.Node, 0, len(navLinks))
	for _, l := range navLinks {
		nodes = append(nodes, A(Href(l.href), Class("text-slate-600 hover:text-slate-900"), g.Text(l.label)))
	}
	return g.Group(nodes)
}

func mobileMenu() g.Node {
	nodes := make([]g.Node, 0, len(navLinks))
	for _, l := range navLinks {
		nodes = append(nodes, A(
			Href(l.href),
			Class("block rounded-lg px-3 py-2 text-slate-700 hover:bg-slate-100"),
			g.Attr("onclick", closeMenuScript),
			g.Text(l.label),
		))
	}
	return Div(
		ID("mobile-menu"),
		Class("md:hidden border-t border-slate-200 bg-white"),
		Div(Class("px-4 py-3 space-y-1"), g.Group(nodes)),
	)
}
