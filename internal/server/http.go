package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-flavor-resolver/internal/config"
	"github.com/go-chi/chi/v5/middleware"
)

type httpServer struct {
	server *http.Server
}

func newHTTPServer(router http.Handler, cfg config.Server) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           middleware.Timeout(cfg.RequestTimeout)(router),
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
	}
}

// RunServer blocks until the server stops. A server stopped by Shutdown
// returns nil.
func (h *httpServer) RunServer() error {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}
