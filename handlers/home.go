package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/auto-trader/site/config"
	"github.com/auto-trader/site/ui"
)

func (h *Handlers) HandleHome(c *fiber.Ctx) error {
	return render(c, ui.HomePage(h.assets, config.DefaultCarID, h.now().Year()))
}

// HandleNavbar re-renders the header in the requested state. Anything other
// than a true value closes the menu.
func (h *Handlers) HandleNavbar(c *fiber.Ctx) error {
	open, _ := strconv.ParseBool(c.Query("open"))
	return render(c, ui.NavbarNode(ui.Navbar{Open: open}))
}
