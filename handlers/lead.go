package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/auto-trader/site/config"
	"github.com/auto-trader/site/diag"
	"github.com/auto-trader/site/lead"
	"github.com/auto-trader/site/local"
	"github.com/auto-trader/site/ui"
)

// HandleLeadSubmit posts the lead form to the backend. Success swaps in the
// confirmation; anything else gives the form back with what was typed and no
// error message, ready to be sent again.
func (h *Handlers) HandleLeadSubmit(c *fiber.Ctx) error {
	l := lead.New(
		c.FormValue("name"),
		c.FormValue("email"),
		c.FormValue("phone"),
		c.FormValue("message"),
		c.FormValue("car_id"),
		config.DefaultCarID,
	)

	ctx, cancel := h.requestContext(c)
	defer cancel()
	result := h.leads.Submit(ctx, l)

	log := local.GetLogger(c).With(slog.String("car_id", l.CarID))
	outcome := diag.Outcome{
		Kind:       diag.KindLead,
		Status:     result.Status.String(),
		HTTPStatus: result.HTTPStatus,
	}

	switch result.Status {
	case lead.StatusSent:
		log.Info("lead sent", slog.Int("status", result.HTTPStatus))
		h.record(c, outcome)
		return render(c, ui.LeadSent())
	case lead.StatusInvalid:
		fields := lead.InvalidFields(result.Err)
		outcome.Detail = "invalid fields: " + strings.Join(fields, ",")
		log.Warn("lead rejected", slog.Any("fields", fields))
	default:
		outcome.Detail = errorDetail(result.Err)
		log.Error("lead submission failed",
			slog.Int("status", result.HTTPStatus),
			slog.String("error", outcome.Detail))
	}
	h.record(c, outcome)

	return render(c, ui.LeadForm(l))
}
