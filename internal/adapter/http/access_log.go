package httpadapter

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/google/uuid"
)

// logClientIP emits one info line per request before passing it on.
func (h *Handler) logClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.LogAttrs(r.Context(), slog.LevelInfo, "client request",
			slog.String("client_ip", clientIP(r)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", uuid.NewString()),
		)
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr. Addresses already rewritten by
// middleware.RealIP carry no port and are returned as is.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
