package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/auto-trader/site/cache"
	"github.com/auto-trader/site/diag"
	"github.com/auto-trader/site/lead"
	"github.com/auto-trader/site/listing"
	"github.com/auto-trader/site/syscheck"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestCarCardTesla(t *testing.T) {
	mileage := 12000.0
	car := listing.Car{
		ID:       "1",
		Make:     "Tesla",
		Model:    "Model 3",
		Year:     2022,
		Price:    38000,
		Mileage:  &mileage,
		Location: "Austin, TX",
		FuelType: "Electric",
		Features: []string{"Autopilot", "Heated Seats", "Premium Audio"},
		Photos:   []string{},
	}

	html := renderString(t, CarCard(car, NewFormatter("en-US")))

	assert.Contains(t, html, "2022 Tesla Model 3")
	assert.Contains(t, html, "$38,000")
	assert.Contains(t, html, "12,000 mi")
	assert.Contains(t, html, "Austin, TX")
	assert.Contains(t, html, "Electric")
	assert.Contains(t, html, "Autopilot")
	assert.Contains(t, html, "Heated Seats")
	assert.Contains(t, html, "Premium Audio")
	assert.Contains(t, html, "car-photo-placeholder")
	assert.NotContains(t, html, "<img")
}

func TestCarCardOptionalFields(t *testing.T) {
	car := listing.Car{ID: "2", Make: "Ford", Model: "Focus", Year: 2015, Price: 7500}

	html := renderString(t, CarCard(car, NewFormatter("en-US")))

	assert.Contains(t, html, "2015 Ford Focus")
	assert.Contains(t, html, "$7,500")
	assert.NotContains(t, html, " mi<")
	assert.NotContains(t, html, "feature-tag")
}

func TestCarCardFeaturesLimit(t *testing.T) {
	car := listing.Car{
		ID:       "3",
		Make:     "BMW",
		Model:    "X5",
		Year:     2020,
		Price:    45000,
		Features: []string{"A1", "B2", "C3", "D4", "E5"},
	}

	html := renderString(t, CarCard(car, NewFormatter("en-US")))

	assert.Equal(t, 3, strings.Count(html, "feature-tag"))
	a, b, c := strings.Index(html, "A1"), strings.Index(html, "B2"), strings.Index(html, "C3")
	assert.True(t, a < b && b < c)
	assert.NotContains(t, html, "D4")
	assert.NotContains(t, html, "E5")
}

func TestCarCardPhoto(t *testing.T) {
	car := listing.Car{
		ID:     "4",
		Make:   "Audi",
		Model:  "A4",
		Year:   2019,
		Price:  21000,
		Photos: []string{"https://images.example.com/a4.jpg", "https://images.example.com/a4-back.jpg"},
	}

	html := renderString(t, CarCard(car, NewFormatter("en-US")))

	assert.Contains(t, html, `src="https://images.example.com/a4.jpg?auto=format&amp;fit=crop&amp;q=60&amp;w=320"`)
	assert.Contains(t, html, `alt="Audi A4"`)
	assert.NotContains(t, html, "a4-back.jpg")
	assert.NotContains(t, html, "car-photo-placeholder")
}

func TestPhotoSrc(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "https://img.test/car.jpg", "https://img.test/car.jpg?auto=format&fit=crop&q=60&w=320"},
		{"existing query", "https://img.test/car.jpg?ixid=abc", "https://img.test/car.jpg?auto=format&fit=crop&ixid=abc&q=60&w=320"},
		{"overrides size", "https://img.test/car.jpg?w=1200", "https://img.test/car.jpg?auto=format&fit=crop&q=60&w=320"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, photoSrc(tt.raw))
		})
	}
}

func TestFormatter(t *testing.T) {
	en := NewFormatter("en-US")
	assert.Equal(t, "38,000", en.Number(38000))
	assert.Equal(t, "1,234.568", en.Number(1234.5678))
	assert.Equal(t, "$999", en.Price(999))
	assert.Equal(t, "0 mi", en.Mileage(0))

	de := NewFormatter("de-DE")
	assert.Equal(t, "38.000", de.Number(38000))

	assert.Equal(t, "38,000", NewFormatter("not a locale!").Number(38000))
	assert.Equal(t, "38,000", Formatter{}.Number(38000))
}

func TestCarResultsStates(t *testing.T) {
	fm := NewFormatter("en-US")

	t.Run("loading", func(t *testing.T) {
		html := renderString(t, CarResultsLoading(listing.Filter{Q: "Tesla", Min: "10000"}))
		assert.Contains(t, html, LoadingMessage)
		assert.Contains(t, html, `hx-get="/cars/results?min=10000&amp;q=Tesla"`)
		assert.Contains(t, html, `hx-trigger="load"`)
	})

	t.Run("loading without filters", func(t *testing.T) {
		html := renderString(t, CarResultsLoading(listing.Filter{}))
		assert.Contains(t, html, `hx-get="/cars/results"`)
	})

	t.Run("populated", func(t *testing.T) {
		html := renderString(t, CarResults(listing.Result{
			Status: listing.StatusPopulated,
			Cars: []listing.Car{
				{ID: "1", Make: "Tesla", Model: "Model 3", Year: 2022, Price: 38000},
				{ID: "2", Make: "Ford", Model: "Focus", Year: 2015, Price: 7500},
			},
		}, fm))
		assert.Equal(t, 2, strings.Count(html, "<article"))
		assert.NotContains(t, html, EmptyMessage)
		assert.Contains(t, html, `class="results-loading`)
		assert.NotContains(t, html, "hx-get")
	})

	t.Run("empty", func(t *testing.T) {
		html := renderString(t, CarResults(listing.Result{Status: listing.StatusEmpty}, fm))
		assert.Contains(t, html, EmptyMessage)
		assert.NotContains(t, html, "<article")
	})

	t.Run("failed looks empty", func(t *testing.T) {
		html := renderString(t, CarResults(listing.Result{Status: listing.StatusFailed}, fm))
		assert.Contains(t, html, EmptyMessage)
	})
}

func TestSearchPanel(t *testing.T) {
	html := renderString(t, SearchPanel(listing.Filter{}))

	assert.Contains(t, html, `hx-get="/cars/results"`)
	assert.Contains(t, html, `hx-indicator="#car-results"`)
	assert.Contains(t, html, `id="car-search"`)
	assert.Contains(t, html, `type="text" name="q"`)
	assert.Contains(t, html, `type="text" name="min"`)
	assert.Contains(t, html, `type="text" name="max"`)
	assert.Contains(t, html, `inputmode="numeric"`)
	assert.NotContains(t, html, `type="number"`)
	assert.NotContains(t, html, `min="0"`)
	assert.Contains(t, html, LoadingMessage)
	assert.Contains(t, html, `href="/test"`)
}

func TestNavbarState(t *testing.T) {
	n := Navbar{}
	assert.False(t, n.Open)

	n = n.Toggle()
	assert.True(t, n.Open)

	n = n.Toggle()
	assert.False(t, n.Open)

	assert.False(t, Navbar{Open: true}.Close().Open)
	assert.False(t, Navbar{}.Close().Open)
}

func TestNavbarNode(t *testing.T) {
	closed := renderString(t, NavbarNode(Navbar{}))
	assert.Contains(t, closed, `id="navbar"`)
	assert.Contains(t, closed, `hx-get="/navbar?open=true"`)
	assert.NotContains(t, closed, "mobile-menu")

	open := renderString(t, NavbarNode(Navbar{Open: true}))
	assert.Contains(t, open, `hx-get="/navbar?open=false"`)
	assert.Contains(t, open, "mobile-menu")
	assert.Equal(t, len(navLinks), strings.Count(open, "htmx.ajax("))
}

func TestLeadForm(t *testing.T) {
	html := renderString(t, LeadForm(lead.Lead{Name: "Ana", Email: "ana@example.com", Message: "Hi <there>", CarID: "general"}))

	assert.Contains(t, html, `hx-post="/leads"`)
	assert.Contains(t, html, `name="name"`)
	assert.Contains(t, html, `value="Ana"`)
	assert.Contains(t, html, `type="email"`)
	assert.Contains(t, html, `value="ana@example.com"`)
	assert.Contains(t, html, "Hi &lt;there&gt;")
	assert.Contains(t, html, `name="car_id" value="general"`)
	assert.Equal(t, 2, strings.Count(html, "required"))
	assert.NotContains(t, html, LeadSentTitle)
}

func TestLeadSent(t *testing.T) {
	html := renderString(t, LeadSent())

	assert.Contains(t, html, LeadSentTitle)
	assert.Contains(t, html, LeadSentText)
	assert.NotContains(t, html, "<input")
	assert.NotContains(t, html, "<form")
}

func TestHomePageOrder(t *testing.T) {
	html := renderString(t, HomePage(Assets{TailwindCSSURL: "/tw.css", HTMXURL: "/htmx.js"}, "general", 2026))

	positions := []int{
		strings.Index(html, `id="navbar"`),
		strings.Index(html, `id="hero"`),
		strings.Index(html, `id="browse"`),
		strings.Index(html, `id="sell"`),
		strings.Index(html, "<footer"),
	}
	for i, p := range positions {
		require.NotEqual(t, -1, p, "section %d missing", i)
		if i > 0 {
			assert.Greater(t, p, positions[i-1])
		}
	}

	assert.Contains(t, html, "© 2026 Auto Trader — Crafted with care.")
	assert.Contains(t, html, "Find your next ride with style")
	assert.Contains(t, html, "Sell faster with smart tools")
	assert.Contains(t, html, `href="/tw.css"`)
	assert.Contains(t, html, `src="/htmx.js"`)
}

func TestSystemCheckPage(t *testing.T) {
	report := syscheck.Report{
		BackendURL: "http://localhost:8000",
		Reachable:  true,
		HTTPStatus: 200,
		Fields:     []syscheck.Field{{Key: "database", Value: "✅ Connected"}},
		CheckedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	outcomes := []diag.Outcome{
		{Kind: diag.KindLead, Status: "failed", HTTPStatus: 500, Detail: "POST /api/leads returned status 500", RequestID: "req-9"},
	}

	html := renderString(t, SystemCheckPage(Assets{}, report, outcomes, cache.Stats{CacheType: "Backend Probe Cache", Hits: 3, Misses: 1, HitRate: 75}))

	assert.Contains(t, html, "Backend reachable")
	assert.Contains(t, html, "http://localhost:8000")
	assert.Contains(t, html, "✅ Connected")
	assert.Contains(t, html, "req-9")
	assert.Contains(t, html, "(75% hit rate)")
}

func TestSystemCheckPageUnreachable(t *testing.T) {
	report := syscheck.Report{BackendURL: "http://localhost:8000", Error: "backend unreachable"}

	html := renderString(t, SystemCheckPage(Assets{}, report, nil, cache.Stats{}))

	assert.Contains(t, html, "Backend unreachable")
	assert.Contains(t, html, "No recent outcomes recorded.")
	assert.NotContains(t, html, "HTTP status")
}
