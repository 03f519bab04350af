// notebook-mcp serves the notebook builder's MCP tools over stdio, for use
// as a local MCP server entry in an agent configuration.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/michel-adelino/fitness-notebook/internal/config"
	"github.com/michel-adelino/fitness-notebook/internal/export"
	"github.com/michel-adelino/fitness-notebook/internal/mcp"
	"github.com/michel-adelino/fitness-notebook/internal/notebook"
	"github.com/michel-adelino/fitness-notebook/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Stdout carries the MCP transport; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("failed to open slot store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	builder := notebook.NewBuilder(ctx, store, cfg.Storage.Slot, log)
	exporter := export.New(export.NewSurfaceRasterizer(), log)

	srv := mcp.New(builder, exporter, Version, log)
	if err := mcpserver.ServeStdio(srv); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return storage.OpenRedis(ctx, cfg.Storage.Redis.Addr, cfg.Storage.Redis.Password, cfg.Storage.Redis.DB)
	case "postgres":
		return storage.OpenPostgres(ctx, cfg.Storage.Postgres.DSN)
	default:
		return storage.OpenSQLite(cfg.Storage.Dir)
	}
}
