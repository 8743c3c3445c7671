package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fx-rate-service/internal/infrastructure/config"
	"fx-rate-service/internal/infrastructure/logging"
)

// Ejemplos que se loguean al arrancar
var exampleRoutes = []string{
	"/",
	"/rate/USD",
	"/history?base=USD&days=30",
	"/convert?from_currency=USD&to_currency=EUR&amount=100",
	"/health",
	"/ready",
	"/metrics",
	"/swagger/index.html",
}

// Server envuelve el http.Server con los timeouts del config
type Server struct {
	httpServer *http.Server
	port       int
}

func NewServer(handler http.Handler, cfg config.ServerConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		port: cfg.Port,
	}
}

// Start bloquea sirviendo HTTP; retorna nil tras un Stop
func (s *Server) Start() error {
	ctx := context.Background()

	endpoints := make([]string, 0, len(exampleRoutes))
	for _, route := range exampleRoutes {
		endpoints = append(endpoints, fmt.Sprintf("GET http://localhost:%d%s", s.port, route))
	}
	logging.Info(ctx, "HTTP server starting", logging.Fields{
		"port":      s.port,
		"endpoints": endpoints,
	})

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop espera a que terminen las requests en curso o a que venza ctx
func (s *Server) Stop(ctx context.Context) error {
	logging.Info(ctx, "Stopping HTTP server", logging.Fields{"port": s.port})
	return s.httpServer.Shutdown(ctx)
}
