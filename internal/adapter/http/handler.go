package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"greeter/internal/config/configs"
	"greeter/internal/core/port"
)

// Options controls the middleware stack installed by NewHandler.
type Options struct {
	// TrustProxy rewrites the client address from X-Forwarded-For or
	// X-Real-IP before it is logged.
	TrustProxy bool
	CORS       configs.CORS
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Every request passes through panic recovery, the access log and
// the CORS middleware before reaching the router.
type Handler struct {
	svc    port.GreetUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Unknown paths
// and unsupported methods on known paths both answer 404.
func NewHandler(svc port.GreetUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(h.logClientIP)
	r.Use(newCORS(opts.CORS))
	r.Use(middleware.GetHead)

	r.Get("/", h.handleGreet)

	r.NotFound(http.NotFound)
	r.MethodNotAllowed(http.NotFound)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
