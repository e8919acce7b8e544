// internal/httpapi/server.go
package httpapi

import (
	"context"
	"net/http"
	"time"

	"jobboard-api/internal/common/logger"
)

// Server wraps the HTTP listener with graceful shutdown.
type Server struct {
	httpServer *http.Server
	log        logger.Logger
}

func NewServer(addr string, handler http.Handler, readTimeout, writeTimeout time.Duration, log logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		log: log,
	}
}

// Start blocks serving requests until the listener closes.
func (s *Server) Start() error {
	s.log.Info("http server listening", map[string]interface{}{"addr": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("http server shutting down", nil)
	return s.httpServer.Shutdown(ctx)
}
