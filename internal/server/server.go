package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/hexcalc/internal/logging"
)

// Server serves the /metrics and /healthz endpoints. It exists so a long
// demo run can be observed from outside the process; it is not started
// unless the user asks for it.
type Server struct {
	httpServer *http.Server
	metrics    *Metrics
	logger     logging.Logger
	security   SecurityConfig
}

// New creates a Server listening on addr once Start is called.
func New(addr string, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	s := &Server{
		metrics:  NewMetrics(),
		logger:   logger,
		security: DefaultSecurityConfig(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.metricsMiddleware(SecurityMiddleware(s.security, s.handleMetrics)))
	mux.HandleFunc("/healthz", s.metricsMiddleware(SecurityMiddleware(s.security, s.handleHealth)))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Registry returns the registerer application metrics should use.
func (s *Server) Registry() prometheus.Registerer {
	return s.metrics.Registry()
}

// Start serves until Shutdown is called. It blocks; run it in a goroutine.
func (s *Server) Start() error {
	s.logger.Info("metrics server listening", logging.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// metricsMiddleware tracks request counts around the next handler.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// handleMetrics serves the Prometheus exposition endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
