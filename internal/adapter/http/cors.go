package httpadapter

import (
	"net/http"

	"github.com/rs/cors"

	"greeter/internal/config/configs"
)

// newCORS builds the cross-origin middleware. rs/cors only emits
// Access-Control-Allow-Origin when the request carries an Origin header, so
// for a wildcard configuration the header is preset on every response.
func newCORS(cfg configs.CORS) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders:       []string{"*"},
		MaxAge:               cfg.MaxAge,
		OptionsSuccessStatus: http.StatusNoContent,
	})
	if !cfg.AllowsAnyOrigin() {
		return c.Handler
	}
	return func(next http.Handler) http.Handler {
		inner := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			inner.ServeHTTP(w, r)
		})
	}
}
