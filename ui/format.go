package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numbers with the grouping and decimal marks of a locale.
type Formatter struct {
	p *message.Printer
}

// NewFormatter returns a formatter for the BCP 47 locale, falling back to
// en-US when it does not parse.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return Formatter{p: message.NewPrinter(tag)}
}

// Number groups thousands and keeps at most three fraction digits.
func (f Formatter) Number(v float64) string {
	if f.p == nil {
		f = NewFormatter("en-US")
	}
	return f.p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// Price is "$" followed by the grouped number.
func (f Formatter) Price(v float64) string {
	return "$" + f.Number(v)
}

// Mileage is the grouped number followed by " mi".
func (f Formatter) Mileage(v float64) string {
	return f.Number(v) + " mi"
}
