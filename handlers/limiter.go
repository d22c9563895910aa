package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/auto-trader/site/config"
	"github.com/auto-trader/site/local"
)

// GlobalRateLimiter limits every route.
func GlobalRateLimiter(cfg *config.Config) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitExp,
	})
}

// LeadRateLimiter is a strict rate limiter for lead submissions (per IP)
func LeadRateLimiter(cfg *config.Config) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.LeadRateLimitMax,
		Expiration: cfg.LeadRateLimitExp,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Rate limit per IP address
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			local.GetLogger(c).Warn("lead rate limit reached")
			return c.Status(fiber.StatusTooManyRequests).
				SendString("Too many requests. " +
					"Please try again later.")
		},
	})
}
