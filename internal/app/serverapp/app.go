package serverapp

import (
	"context"
	"io"
	"net/netip"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/leonf08/building-metrics.git/internal/config/serverconf"
	"github.com/leonf08/building-metrics.git/internal/logger"
	"github.com/leonf08/building-metrics.git/internal/observability"
	"github.com/leonf08/building-metrics.git/internal/server/http"
	"github.com/leonf08/building-metrics.git/internal/services"
	"github.com/leonf08/building-metrics.git/internal/services/repo"
)

// Run starts the application.
// The dataset is loaded once from the configured source, then the
// query service, router and server are initialized around it.
// The server is stopped by an interrupt signal or an error.
//
// A dataset that fails to load stops the startup and the error is returned.
func Run(cfg serverconf.Config) error {
	var ip services.IPChecker

	log := logger.NewLogger(cfg.LogLevel)

	if cfg.TrustedSubnet != "" {
		prefix, err := netip.ParsePrefix(cfg.TrustedSubnet)
		if err != nil {
			log.Error().Err(err).Msg("app - Run - ParsePrefix")
			return err
		}

		ip = services.NewIPChecker(prefix)
	}

	ds, err := loadDataset(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("app - Run - loadDataset")
		return err
	}

	m := observability.NewHTTPMetrics(prometheus.NewRegistry())
	m.SetDatasetSize(ds.Len())

	svc := services.NewMetricsService(ds)
	router := http.NewRouter(svc, ip, m, http.Options{
		Prefix:      cfg.APIPrefix,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
	}, log)

	httpserver := http.NewServer(router, cfg.Addr)
	log.Info().Str("address", cfg.Addr).Str("prefix", cfg.APIPrefix).Msg("app - Run - Starting httpserver")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err = <-httpserver.Err():
		log.Error().Err(err).Msg("app - Run - httpserver.Err")
	case sig := <-interrupt:
		log.Info().Str("signal", sig.String()).Msg("app - Run - signal")
	}

	log.Info().Msg("app - Run - Shutdown the httpserver")
	if shutdownErr := httpserver.Shutdown(); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("app - Run - httpserver.Shutdown")
	}

	return err
}

// loadDataset reads the dataset from the source picked by the configuration.
func loadDataset(cfg serverconf.Config, log zerolog.Logger) (*repo.Dataset, error) {
	src, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeoutDuration())
	defer cancel()

	ds, err := repo.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("records", ds.Len()).
		Int("floors", len(ds.Floors())).
		Msg("app - loadDataset - Dataset loaded")

	return ds, nil
}

// newSource picks the dataset source: PostgreSQL when a DSN is set,
// an object storage for s3:// paths, a local file otherwise.
func newSource(cfg serverconf.Config) (repo.Source, error) {
	switch {
	case cfg.IsDatabaseSource():
		return repo.NewPGSource(cfg.DatabaseDSN)
	case cfg.IsObjectSource():
		return repo.NewObjectSource(repo.ObjectConfig{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
		}, cfg.DataPath)
	default:
		return repo.NewFileSource(cfg.DataPath)
	}
}
