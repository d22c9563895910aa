package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/auto-trader/site/local"
	"github.com/auto-trader/site/ui"
)

// HandleSystemCheck renders the backend connectivity page.
func (h *Handlers) HandleSystemCheck(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()
	report := h.checker.Check(ctx)

	log := local.GetLogger(c)
	if !report.Healthy() {
		log.Warn("backend self-check failed",
			slog.String("backend_url", report.BackendURL),
			slog.Int("status", report.HTTPStatus),
			slog.String("error", report.Error))
	}

	outcomes, err := h.diag.Recent(c.UserContext(), recentOutcomes)
	if err != nil {
		log.Error("failed to load recent outcomes", slog.String("error", err.Error()))
	}

	return render(c, ui.SystemCheckPage(h.assets, report, outcomes, h.checker.CacheStats()))
}
