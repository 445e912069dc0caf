package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
)

// handleGreet writes the greeting as the response body.
func (h *Handler) handleGreet(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Greet(r.Context())
	if err != nil {
		h.logger.Error("greet error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = io.WriteString(w, g.Text); err != nil {
		h.logger.Debug("write response error", slog.Any("error", err))
	}
}
