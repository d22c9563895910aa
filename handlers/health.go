package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// HandleHealth returns the health status of the application
func (h *Handlers) HandleHealth(c *fiber.Ctx) error {
	health := map[string]string{
		"status": "ok",
	}

	// Check diagnostics store connectivity
	switch {
	case !h.diag.Enabled():
		health["diagnostics"] = "disabled"
	case h.diag.Ping(c.UserContext()) != nil:
		health["status"] = "unhealthy"
		health["diagnostics"] = "down"
		c.Status(fiber.StatusServiceUnavailable)
	default:
		health["diagnostics"] = "up"
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return json.NewEncoder(c).Encode(health)
}
