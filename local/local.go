package local

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

const (
	keyRequestID = "requestid"
	keyLogger    = "logger"
)

// GetRequestID returns the id the requestid middleware assigned, or "".
func GetRequestID(c *fiber.Ctx) string {
	requestID, _ := c.Locals(keyRequestID).(string)
	return requestID
}

// SetLogger stores the request-scoped logger.
func SetLogger(c *fiber.Ctx, log *slog.Logger) {
	c.Locals(keyLogger, log)
}

// GetLogger returns the request-scoped logger, falling back to slog.Default.
func GetLogger(c *fiber.Ctx) *slog.Logger {
	if log, ok := c.Locals(keyLogger).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// RequestLogger is middleware that derives a logger carrying the request id
// from base and stores it for the handlers. It must run after requestid.
func RequestLogger(base *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		SetLogger(c, base.With(slog.String("request_id", GetRequestID(c))))
		return c.Next()
	}
}
