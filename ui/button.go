package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

// buttonOption represents configuration options for buttons
type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href       string
	buttonType string
	class      string
	icon       string
}

// withHref makes the button a link with the specified href
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

// withType sets the button type (button, submit, etc.)
func withType(buttonType string) buttonOption {
	return func(c *buttonConfig) {
		c.buttonType = buttonType
	}
}

// withClass adds additional CSS classes
func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

// withIcon puts the named icon before the label
func withIcon(name string) buttonOption {
	return func(c *buttonConfig) {
		c.icon = name
	}
}

// buttonStyled creates a styled button with the given text, base class, and options
func buttonStyled(text, baseClass string, options ...buttonOption) g.Node {
	config := &buttonConfig{}

	for _, option := range options {
		option(config)
	}

	class := baseClass
	if config.class != "" {
		class += " " + config.class
	}

	attrs := []g.Node{Class(class)}
	if config.buttonType != "" {
		attrs = append(attrs, Type(config.buttonType))
	}
	if config.icon != "" {
		attrs = append(attrs, icon(config.icon, 18, ""))
	}
	attrs = append(attrs, Span(g.Text(text)))

	if config.href != "" {
		attrs = append([]g.Node{Href(config.href)}, attrs...)
		return A(attrs...)
	}

	return Button(attrs...)
}

// button creates a primary button (dark background)
func button(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "inline-flex items-center justify-center gap-2 px-5 py-3 rounded-xl bg-slate-900 text-white font-medium hover:bg-slate-800", options...)
}

// buttonSecondary creates a secondary button (outlined)
func buttonSecondary(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "inline-flex items-center justify-center gap-2 px-5 py-3 rounded-xl border border-slate-300 bg-white text-slate-900 font-medium hover:bg-slate-50", options...)
}
