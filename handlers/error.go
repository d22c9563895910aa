package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/auto-trader/site/local"
	"github.com/auto-trader/site/ui"
)

// CustomErrorHandler renders the error page for anything a handler returns.
func (h *Handlers) CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		local.GetLogger(ctx).Error("request failed",
			slog.String("path", ctx.Path()),
			slog.String("error", message))
		message = "Something went wrong"
	}

	ctx.Status(code)
	return render(ctx, ui.ErrorPage(h.assets, code, message))
}
