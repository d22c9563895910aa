package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/auto-trader/site/backend"
	"github.com/auto-trader/site/config"
	"github.com/auto-trader/site/diag"
	h "github.com/auto-trader/site/handlers"
	"github.com/auto-trader/site/lead"
	"github.com/auto-trader/site/listing"
	"github.com/auto-trader/site/local"
	"github.com/auto-trader/site/logger"
	"github.com/auto-trader/site/notify"
	"github.com/auto-trader/site/syscheck"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	// Initialize diagnostics store
	store, err := diag.Open(cfg.DiagDatabaseURL)
	if err != nil {
		log.Error("error initializing diagnostics store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	client := backend.New(cfg.BackendURL, cfg.BackendTimeout)

	// Lead alerts are optional
	var notifier lead.Notifier
	sms, err := notify.NewSMSNotifier(cfg, log)
	if err != nil {
		log.Error("failed to initialize lead alerts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if sms != nil {
		notifier = sms
	}

	// Initialize backend probe cache
	checker, err := syscheck.NewChecker(client, cfg.ProbeCacheTTL)
	if err != nil {
		log.Error("failed to initialize system check", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer checker.Close()

	handlers := h.New(cfg,
		listing.NewService(client, log),
		lead.NewService(client, notifier, cfg.PhoneRegion, log),
		checker,
		store,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler:      handlers.CustomErrorHandler,
		EnablePrintRoutes: cfg.IsDevelopment(),
		ReadTimeout:       30 * time.Second, // Prevent long-running requests
		WriteTimeout:      30 * time.Second, // Prevent long-running responses
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(local.RequestLogger(log))

	// Add rate limiter
	app.Use(h.GlobalRateLimiter(cfg))

	// Add logger middleware
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Static files
	app.Static("/", "./static")

	handlers.Register(app, h.LeadRateLimiter(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	log.Info("starting server",
		slog.String("port", cfg.Port),
		slog.String("backend_url", cfg.BackendURL),
		slog.Bool("diagnostics", store.Enabled()),
		slog.Bool("lead_alerts", notifier != nil))

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
	}
}
