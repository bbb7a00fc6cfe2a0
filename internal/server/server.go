package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Thoronador/hex2sv/internal/config"
	"github.com/Thoronador/hex2sv/internal/literal"
	"github.com/Thoronador/hex2sv/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	component = "hex2svd"
	version   = "0.1.0"

	shutdownTimeout = 5 * time.Second
)

// Server exposes the encoder over HTTP.
type Server struct {
	cfg      config.ServerConfig
	decl     literal.Declaration
	logger   zerolog.Logger
	router   *gin.Engine
	appeared time.Time
}

func New(cfg config.Config, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:      cfg.Server,
		decl:     cfg.Declaration,
		logger:   logger,
		router:   gin.New(),
		appeared: time.Now(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(observability.RequestID())
	s.router.Use(observability.RequestLogger(logger))
	s.router.Use(observability.RequestMetricsMiddleware())
	if len(cfg.Server.CorsOrigins) > 0 {
		s.router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.Server.CorsOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", observability.RequestIDHeader},
			ExposeHeaders: []string{observability.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	observability.RegisterMetrics()

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
