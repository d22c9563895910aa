package ui

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/auto-trader/site/listing"
)

// MaxCardFeatures is how many feature tags a card shows.
const MaxCardFeatures = 3

var photoParams = url.Values{
	"auto": {"format"},
	"fit":  {"crop"},
	"w":    {"320"},
	"q":    {"60"},
}

// photoSrc adds the display-size parameters to a photo URL, replacing any the
// URL already carries.
func photoSrc(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw + "?" + photoParams.Encode()
	}
	q := u.Query()
	for k, v := range photoParams {
		q[k] = v
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ---- Car Components ----

// CarCard renders one listing. It has no behavior beyond display.
func CarCard(car listing.Car, fm Formatter) g.Node {
	return Article(
		Class("flex gap-3 rounded-xl border border-slate-200 bg-white p-3 hover:shadow-md transition"),
		carPhoto(car),
		Div(
			Class("min-w-0 flex-1"),
			Div(
				Class("flex items-start justify-between gap-2"),
				H3(Class("font-semibold truncate"), g.Text(car.Title())),
				Button(
					Type("button"),
					Class("text-slate-400 hover:text-rose-500"),
					g.Attr("aria-label", "Save"),
					icon("heart", 18, ""),
				),
			),
			P(Class("mt-1 text-lg font-bold"), g.Text(fm.Price(car.Price))),
			Div(
				Class("mt-1 flex flex-wrap gap-x-3 gap-y-1 text-xs text-slate-600"),
				g.Iff(car.Mileage != nil, func() g.Node {
					return carFact("gauge", fm.Mileage(*car.Mileage))
				}),
				g.If(car.Location != "", carFact("map-pin", car.Location)),
				g.If(car.FuelType != "", carFact("fuel", car.FuelType)),
			),
			featureTags(car.TopFeatures(MaxCardFeatures)),
		),
	)
}

func carPhoto(car listing.Car) g.Node {
	photo := car.FirstPhoto()
	if photo == "" {
		return Div(
			Class("car-photo-placeholder flex h-20 w-28 shrink-0 items-center justify-center rounded-lg bg-slate-100 text-slate-400"),
			icon("car", 32, ""),
		)
	}
	return Img(
		Src(photoSrc(photo)),
		Alt(car.Make+" "+car.Model),
		Class("h-20 w-28 shrink-0 rounded-lg object-cover"),
		g.Attr("loading", "lazy"),
	)
}

func carFact(iconName, text string) g.Node {
	return Span(
		Class("inline-flex items-center gap-1"),
		icon(iconName, 14, ""),
		g.Text(text),
	)
}

func featureTags(features []string) g.Node {
	if len(features) == 0 {
		return nil
	}
	tags := make([]g.Node, 0, len(features))
	for _, f := range features {
		tags = append(tags, Span(
			Class("feature-tag rounded-full bg-slate-100 px-2 py-0.5 text-xs text-slate-700"),
			g.Text(f),
		))
	}
	return Div(Class("mt-2 flex flex-wrap gap-1"), g.Group(tags))
}
