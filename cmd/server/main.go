package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/api"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/config"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/logging"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/render"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/settings"
)

func main() {
	cfgPath := flag.String("config", "configs/simplify-admin.yaml", "Path to YAML config")
	addr := flag.String("addr", "", "HTTP listen address (overrides server.addr)")
	flag.Parse()

	if err := run(*cfgPath, *addr); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfgPath, addrOverride string) error {
	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(cfgPath)
	if err != nil {
		return err
	}
	cfg := loader.Config()
	logging.SetDefault(cfg.Log.Format, cfg.Log.Level)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	slog.Info("config loaded", "path", loader.Path(), "version", cfg.Version)
	if addrOverride != "" {
		cfg.Server.Addr = addrOverride
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Settings store ───────────────────────────────────────────────────────
	store, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()
	mgr := settings.NewManager(store, cfg.Settings.Prefix)

	// ── Renderers ────────────────────────────────────────────────────────────
	tb := render.NewToolbarRenderer(cfg.ToolbarOptions())
	reg := render.NewRegistry()
	reg.Register(tb)
	reg.Register(render.NewMenuRenderer())
	svc := render.NewService(reg, mgr)
	slog.Info("renderers registered", "tabs", svc.Tabs())

	// ── Hot-reload watcher ───────────────────────────────────────────────────
	// Reload only notifies with configs that passed validation.
	loader.OnChange(func(next *config.Config) {
		tb.SetOptions(next.ToolbarOptions())
		if next.Store != cfg.Store || next.Settings.Prefix != cfg.Settings.Prefix {
			slog.Warn("store and settings changes take effect after restart")
		}
		slog.Info("toolbar options reloaded", "titles", len(next.Toolbar.Titles), "skip", next.Toolbar.SkipIDs)
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.New(svc, mgr, loader),
		ReadTimeout:  ms(cfg.Server.ReadTimeoutMs),
		WriteTimeout: ms(cfg.Server.WriteTimeoutMs),
		IdleTimeout:  ms(cfg.Server.IdleTimeoutMs),
	}
	grace := ms(cfg.Server.ShutdownTimeoutMs)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr, "store", cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		slog.Info("shutting down server", "grace_period", grace)
		if err := srv.Shutdown(shutCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("goodbye")
	return nil
}

func openStore(ctx context.Context, conf config.StoreConf) (settings.Store, func(), error) {
	switch conf.Driver {
	case config.DriverSQLite:
		s, err := settings.OpenSQLite(ctx, conf.DSN)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				slog.Warn("close settings database", "err", err)
			}
		}, nil
	default:
		return settings.NewMemoryStore(), func() {}, nil
	}
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }
