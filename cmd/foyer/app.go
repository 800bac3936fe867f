package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/foyerhq/foyer/internal/artwork"
	"github.com/foyerhq/foyer/internal/catalog"
	"github.com/foyerhq/foyer/internal/config"
	"github.com/foyerhq/foyer/internal/migrations"
	"github.com/foyerhq/foyer/internal/probe"
	"github.com/foyerhq/foyer/internal/reconcile"
	"github.com/foyerhq/foyer/internal/resolve"
	"github.com/foyerhq/foyer/internal/scan"
	"github.com/foyerhq/foyer/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// app is the application root: it owns the storage handle and the shared
// clients and hands them to collaborators explicitly.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	db     *sql.DB
	store  *catalog.Store
	client *tmdb.Client
}

func newApp() (*app, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: path, Errors: errs}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &app{
		cfg:    cfg,
		log:    logger,
		db:     db,
		store:  catalog.NewStore(db),
		client: tmdb.NewClient(cfg.TMDB.Token, tmdb.WithTimeout(cfg.TMDB.Timeout())),
	}, nil
}

func (a *app) Close() {
	_ = a.db.Close()
}

func (a *app) prober() *probe.Prober {
	return probe.NewProber("", 0)
}

func (a *app) resolver() *resolve.Resolver {
	return resolve.NewResolver(a.client, a.log)
}

func (a *app) reconciler() *reconcile.Reconciler {
	filter := scan.NewFilter(a.cfg.Library.Extensions, a.log)
	art := artwork.NewResolver(a.client, "", 0, a.log)
	return reconcile.New(filter, a.prober(), a.resolver(), art, a.store,
		a.cfg.Library.Root, a.cfg.Library.ArtworkDir, a.cfg.Library.Concurrency, a.log)
}
