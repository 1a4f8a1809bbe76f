package monitoring

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/josepacelli/pty-table/internal/config"
	"github.com/josepacelli/pty-table/internal/logging"
	"github.com/josepacelli/pty-table/internal/storage"
)

var server *http.Server

// Setup sets up the monitoring endpoint.
func Setup(c config.Config) error {
	if c.Monitoring.Bind == "" {
		return nil
	}

	log.WithFields(log.Fields{
		"bind": c.Monitoring.Bind,
	}).Info("monitoring: setting up monitoring endpoint")

	server = &http.Server{
		Handler: Handler(c),
		Addr:    c.Monitoring.Bind,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("monitoring: monitoring server error")
		}
	}()

	return nil
}

// Handler returns the handler serving the enabled endpoints.
func Handler(c config.Config) http.Handler {
	mux := http.NewServeMux()

	if c.Monitoring.PrometheusEndpoint {
		log.WithFields(log.Fields{
			"endpoint": "/metrics",
		}).Info("monitoring: registering Prometheus endpoint")
		mux.Handle("/metrics", promhttp.Handler())
	}

	if c.Monitoring.HealthcheckEndpoint {
		log.WithFields(log.Fields{
			"endpoint": "/health",
		}).Info("monitoring: registering healthcheck endpoint")
		mux.HandleFunc("/health", healthCheckHandlerFunc)
	}

	if c.Monitoring.APIEndpoint {
		log.WithFields(log.Fields{
			"endpoint": "/api/ptys",
		}).Info("monitoring: registering table api endpoint")
		api := newTableAPI(storage.Table)
		mux.HandleFunc("/api/ptys", api.list)
		mux.HandleFunc("/api/ptys/lookup", api.lookup)
	}

	return logging.HTTPCtxIDMiddleware(mux)
}

// Stop gracefully stops the monitoring endpoint.
func Stop(ctx context.Context) error {
	if server == nil {
		return nil
	}

	log.Info("monitoring: stopping monitoring endpoint")
	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "monitoring: shutdown error")
	}
	return nil
}
