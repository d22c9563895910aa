package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/auto-trader/site/config"
	"github.com/auto-trader/site/diag"
	"github.com/auto-trader/site/logger"
)

func main() {
	maxAge := flag.Duration("max-age", 30*24*time.Hour, "delete outcomes older than this")
	show := flag.Int("show", 10, "print this many of the remaining outcomes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logger.New(cfg.Env)

	if cfg.DiagDatabaseURL == "" {
		log.Info("diagnostics store disabled, nothing to prune")
		return
	}

	store, err := diag.Open(cfg.DiagDatabaseURL)
	if err != nil {
		log.Error("failed to open diagnostics store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	removed, err := store.Prune(ctx, *maxAge)
	if err != nil {
		log.Error("prune failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("pruned outcomes", slog.Int64("removed", removed), slog.Duration("max_age", *maxAge))

	outcomes, err := store.Recent(ctx, *show)
	if err != nil {
		log.Error("failed to list outcomes", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, o := range outcomes {
		fmt.Printf("%s  %-6s %-9s %3d  %s  %s\n",
			o.CreatedAt.Format("2006-01-02 15:04:05"), o.Kind, o.Status, o.HTTPStatus, o.RequestID, o.Detail)
	}
}
