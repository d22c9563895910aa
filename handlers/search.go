package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/auto-trader/site/backend"
	"github.com/auto-trader/site/diag"
	"github.com/auto-trader/site/listing"
	"github.com/auto-trader/site/local"
	"github.com/auto-trader/site/ui"
)

func filterFromQuery(c *fiber.Ctx) listing.Filter {
	return listing.Filter{
		Q:   strings.TrimSpace(c.Query("q")),
		Min: strings.TrimSpace(c.Query("min")),
		Max: strings.TrimSpace(c.Query("max")),
	}
}

// HandleCarResults runs the search and renders the settled results box.
// Overlapping requests are independent; whichever answers last is what the
// browser shows. A failed search from the filter form answers 204 so htmx
// keeps the results already on screen; a failed first load renders empty.
func (h *Handlers) HandleCarResults(c *fiber.Ctx) error {
	f := filterFromQuery(c)

	ctx, cancel := h.requestContext(c)
	defer cancel()
	result := h.cars.Search(ctx, f)

	log := local.GetLogger(c)
	outcome := diag.Outcome{Kind: diag.KindSearch, Status: result.Status.String()}

	switch result.Status {
	case listing.StatusFailed:
		outcome.HTTPStatus = statusCode(result.Err)
		outcome.Detail = errorDetail(result.Err)
		log.Error("car search failed",
			slog.String("make", f.Q),
			slog.String("min_price", f.Min),
			slog.String("max_price", f.Max),
			slog.String("error", outcome.Detail))
	default:
		log.Debug("car search",
			slog.String("status", result.Status.String()),
			slog.Int("cars", len(result.Cars)))
	}
	h.record(c, outcome)

	if result.Status == listing.StatusFailed && c.Get("HX-Trigger") == ui.SearchFormID {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return render(c, ui.CarResults(result, h.format))
}

// statusCode extracts the backend's HTTP status from err, or 0 when the
// failure happened before a response arrived.
func statusCode(err error) int {
	var se *backend.StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
