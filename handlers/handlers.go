package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/auto-trader/site/config"
	"github.com/auto-trader/site/diag"
	"github.com/auto-trader/site/lead"
	"github.com/auto-trader/site/listing"
	"github.com/auto-trader/site/local"
	"github.com/auto-trader/site/syscheck"
	"github.com/auto-trader/site/ui"
)

// recentOutcomes is how many diagnostic rows the system check page lists.
const recentOutcomes = 20

// Handlers holds everything the routes need. Nothing in it is mutated after
// New, so one value serves all requests concurrently.
type Handlers struct {
	cfg     *config.Config
	assets  ui.Assets
	format  ui.Formatter
	cars    *listing.Service
	leads   *lead.Service
	checker *syscheck.Checker
	diag    *diag.Store
	now     func() time.Time
}

// New wires the route handlers. store may be nil.
func New(cfg *config.Config, cars *listing.Service, leads *lead.Service, checker *syscheck.Checker, store *diag.Store) *Handlers {
	return &Handlers{
		cfg: cfg,
		assets: ui.Assets{
			TailwindCSSURL: cfg.TailwindCSSURL,
			HTMXURL:        cfg.HTMXURL,
		},
		format:  ui.NewFormatter(cfg.Locale),
		cars:    cars,
		leads:   leads,
		checker: checker,
		diag:    store,
		now:     time.Now,
	}
}

// Register mounts every route on app.
func (h *Handlers) Register(app *fiber.App, leadLimiter fiber.Handler) {
	app.Get("/", h.HandleHome)
	app.Get(ui.NavbarPath, h.HandleNavbar)
	app.Get(ui.ResultsPath, h.HandleCarResults)
	app.Post(ui.LeadsPath, leadLimiter, h.HandleLeadSubmit)
	app.Get(syscheck.ProbePath, h.HandleSystemCheck)
	app.Get("/health", h.HandleHealth)
}

// requestContext bounds a handler's outbound work by the configured backend
// timeout.
func (h *Handlers) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), h.cfg.BackendTimeout)
}

// record stores an outcome for the system check page. Failures to record
// are logged and otherwise ignored.
func (h *Handlers) record(c *fiber.Ctx, o diag.Outcome) {
	if !h.diag.Enabled() {
		return
	}
	o.RequestID = local.GetRequestID(c)
	if err := h.diag.Record(c.UserContext(), o); err != nil {
		local.GetLogger(c).Error("failed to record outcome",
			slog.String("kind", string(o.Kind)),
			slog.String("error", err.Error()))
	}
}

func errorDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
