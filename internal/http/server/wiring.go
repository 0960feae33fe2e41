// Package server arma el handler HTTP con todas sus dependencias y corre el
// http.Server con shutdown ordenado.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/usergate/internal/config"
	"github.com/dropDatabas3/usergate/internal/http/controllers"
	"github.com/dropDatabas3/usergate/internal/http/router"
	"github.com/dropDatabas3/usergate/internal/http/services"
	"github.com/dropDatabas3/usergate/internal/metrics"
	"github.com/dropDatabas3/usergate/internal/observability/logger"
	"github.com/dropDatabas3/usergate/internal/upstream"
)

// Options permite inyectar dependencias en tests. Todo es opcional.
type Options struct {
	// HTTPClient para el upstream; nil = uno propio con el timeout de config.
	HTTPClient *http.Client
	// Registerer para métricas; nil = prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	// Gatherer que sirve /metrics; nil = Registerer si también es Gatherer.
	Gatherer   prometheus.Gatherer
	Now        func() time.Time
}

// BuildHandler construye el handler completo a partir de la config.
func BuildHandler(cfg *config.Config, opts Options) (http.Handler, error) {
	if cfg == nil {
		return nil, errors.New("server: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		reg := opts.Registerer
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		if err := metrics.Register(reg); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		// Un *prometheus.Registry es también Gatherer; /metrics sirve lo
		// registrado en él.
		gatherer := opts.Gatherer
		if gatherer == nil {
			gatherer, _ = reg.(prometheus.Gatherer)
		}
		metricsHandler = metrics.Handler(gatherer)
	}

	client := upstream.New(upstream.Config{
		BaseURL: cfg.Upstream.URL,
		APIKey:  cfg.Upstream.APIKey,
		Timeout: cfg.Upstream.Timeout,
	}, opts.HTTPClient)

	svcs := services.New(services.Deps{
		Upstream:          client,
		UpstreamURL:       cfg.Upstream.URL,
		DefaultPictureURL: cfg.Users.DefaultPictureURL,
		Version:           cfg.App.Version,
		Now:               opts.Now,
	})

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	return router.New(router.Deps{
		Controllers:        controllers.New(svcs),
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Production:         cfg.IsProduction(),
		MetricsPath:        metricsPath,
		MetricsHandler:     metricsHandler,
	}), nil
}

// Run sirve handler en cfg.Server.Addr hasta que ctx se cancele; después
// drena conexiones durante ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	log := logger.L().With(logger.Component("server"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", logger.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
