package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kjannette/carprice-stats/internal/api"
	"github.com/kjannette/carprice-stats/internal/config"
	"github.com/kjannette/carprice-stats/internal/dataset"
	"github.com/kjannette/carprice-stats/internal/db"
	"github.com/kjannette/carprice-stats/internal/logging"
	"github.com/kjannette/carprice-stats/internal/notifications"
	"github.com/kjannette/carprice-stats/internal/repository"
)

const banner = `
╔══════════════════════════════════════╗
║     Car Price Statistics API v1.0    ║
║                                      ║
╚══════════════════════════════════════╝
`

func main() {
	fmt.Print(banner)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}

	cfg.Print()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Dataset: read once, never reloaded
	state := dataset.Load(ctx, newSource(cfg))
	if un, ok := state.(dataset.Unavailable); ok {
		notifications.NewSender(cfg.WebhookURL, api.ServiceName).
			Send(ctx, fmt.Sprintf("dataset unavailable (%s): %s", un.Source, un.Reason))
	}

	srv := api.NewServer(state, cfg.Port, cfg.CORSAllowOrigin)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("server stopped with error")
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

func newSource(cfg *config.Config) dataset.Source {
	switch cfg.DatasetSource {
	case config.SourcePostgres:
		return dataset.Deferred{
			Name: "postgres",
			Open: func(ctx context.Context) (dataset.Source, func(), error) {
				pool, err := db.Connect(ctx, cfg.DatabaseURL)
				if err != nil {
					return nil, nil, err
				}
				return repository.NewListingRepo(pool), pool.Close, nil
			},
		}
	case config.SourceSQLite:
		return dataset.Deferred{
			Name: "sqlite:" + cfg.SQLitePath,
			Open: func(ctx context.Context) (dataset.Source, func(), error) {
				conn, err := db.OpenSQLite(ctx, cfg.SQLitePath)
				if err != nil {
					return nil, nil, err
				}
				return repository.NewSQLiteListingRepo(conn, cfg.SQLitePath), func() { conn.Close() }, nil
			},
		}
	default:
		return dataset.FileSource{Path: cfg.DatasetPath}
	}
}
