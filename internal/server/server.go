package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/city-weather/internal/config"
	"github.com/vzahanych/city-weather/internal/server/handlers"
	"github.com/vzahanych/city-weather/internal/server/middlewares"
	"github.com/vzahanych/city-weather/internal/weather"
	"github.com/vzahanych/city-weather/pkg/telemetry"
	"go.uber.org/zap"
)

type Server struct {
	cfg     *config.Config
	engine  *gin.Engine
	server  *http.Server
	fetcher weather.Fetcher
	logger  *zap.Logger
	tele    *telemetry.Telemetry
}

func NewServer(cfg *config.Config, fetcher weather.Fetcher, logger *zap.Logger, tele *telemetry.Telemetry) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	metrics := middlewares.NewMetricsMiddleware(logger, tele)

	engine.Use(middlewares.RequestIDMiddleware())
	engine.Use(middlewares.LoggingMiddleware(logger, true))
	engine.Use(middlewares.RecoveryMiddleware(logger, true))
	engine.Use(middlewares.TelemetryMiddleware(logger, tele))
	engine.Use(metrics.Handler())

	s := &Server{
		cfg:     cfg,
		engine:  engine,
		fetcher: fetcher,
		logger:  logger,
		tele:    tele,
	}

	s.setupRoutes(metrics)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	return s
}

func (s *Server) setupRoutes(httpMetrics *middlewares.MetricsMiddleware) {
	metricsHandler := handlers.NewMetricsHandler(s.logger, httpMetrics)
	weatherHandler := handlers.NewWeatherHandler(
		s.fetcher,
		weather.NewCatalog(s.cfg.OpenWeather.TimeLayout),
		metricsHandler,
		s.logger,
	)
	healthHandler := handlers.NewHealthHandler(s.logger, s.cfg.OpenWeather.APIKey != "")

	// Business endpoints
	s.engine.GET("/weather", weatherHandler.GetWeather)
	s.engine.GET("/weather/:metric", weatherHandler.GetMetric)

	// Health endpoints (Kubernetes friendly)
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/health/live", healthHandler.Liveness)
	s.engine.GET("/health/ready", healthHandler.Readiness)

	// Monitoring endpoints
	s.engine.GET("/metrics", metricsHandler.ServeMetrics)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the listener fails or Shutdown is called. A clean
// shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
