package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"stablecard/internal/catalog"
	"stablecard/internal/database"
	"stablecard/internal/issuers"
	"stablecard/internal/metrics"
)

func main() {
	cfg, err := ReadConfig()
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return
		}
		log.Fatalf("reading config: %v", err)
	}

	configureLogging(cfg)
	log.Println("starting stablecard api")

	if out, err := conf.String(cfg); err == nil {
		log.Debugf("config:\n%v", out)
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		log.Fatalf("converting port to integer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}

	nrApp, err := newRelicApp(cfg)
	if err != nil {
		log.Fatalf("creating new relic application: %v", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	service := issuers.NewService(cat, m)

	server := NewServer(port, service,
		WithMetrics(m, prometheus.DefaultGatherer),
		WithNewRelic(nrApp),
		WithAllowedOrigins(cfg.AllowedOrigins),
		WithStaticDir(cfg.StaticDir),
		WithReadHeaderTimeout(cfg.ReadHeaderTimeout),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}

	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	log.Println("server stopped")
}

// loadCatalog builds the catalog from the configured source. When the
// catalog is not required a load failure leaves the API running on an empty
// catalog instead of exiting.
func loadCatalog(ctx context.Context, cfg *Config) (*catalog.Catalog, error) {
	var src catalog.Source

	switch cfg.CatalogSource {
	case SourcePostgres:
		db, err := database.NewClient(cfg.DBCon)
		if err != nil {
			return nil, err
		}
		// The catalog is read once; the connection is not needed afterwards.
		defer db.Close()
		src = db
	default:
		src = catalog.FileSource{Paths: cfg.CatalogPaths}
	}

	cat, err := catalog.Load(ctx, src)
	if err != nil {
		if cfg.CatalogRequired {
			return nil, err
		}
		log.WithError(err).Warn("catalog unavailable, serving an empty catalog")
		return catalog.New(nil), nil
	}

	log.WithFields(log.Fields{
		"source":  cfg.CatalogSource,
		"issuers": cat.Len(),
	}).Info("catalog loaded")

	return cat, nil
}

func newRelicApp(cfg *Config) (*newrelic.Application, error) {
	if cfg.NewRelicLicense == "" {
		return nil, nil
	}

	return newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelicAppName),
		newrelic.ConfigLicense(cfg.NewRelicLicense),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
}
