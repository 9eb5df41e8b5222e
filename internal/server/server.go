package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/internal/handler"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives, then shuts the
// HTTP server down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) {
	stopped := make(chan struct{})

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		s.httpServer.RunServer()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-stopped
		s.logger.Info().Msg("server Shutdown gracefully")
	case <-stopped:
		s.logger.Warn().Msg("HTTP server stopped unexpectedly")
	}
}
