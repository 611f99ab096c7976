package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cohort-dashboard/internal/api/handler"
	"github.com/vfg2006/cohort-dashboard/internal/api/handler/router"
	"github.com/vfg2006/cohort-dashboard/internal/config"
	"github.com/vfg2006/cohort-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/cohort-dashboard/internal/web"
	"github.com/vfg2006/cohort-dashboard/pkg/metrics"
	"github.com/vfg2006/cohort-dashboard/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(cfg *config.Config, renderer rendering.Renderer) (*Server, error) {
	views, err := web.NewViews(cfg.Dashboard.Title)
	if err != nil {
		return nil, err
	}

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(renderer, views)...),
		router.WithRoutes(handler.Cohorts(renderer)...),
	}

	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		if err := metrics.Register(registry); err != nil {
			return nil, errors.Wrap(err, "api: register metrics")
		}
		metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
		routes = append(routes, router.WithRoutes(handler.Metrics(cfg.Metrics.Path, metricsHandler)...))
	}

	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Address(),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		},
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run sobe o listener e bloqueia até receber um sinal ou o contexto ser cancelado
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serveErr:
		return errors.Wrap(err, "api: listen")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
