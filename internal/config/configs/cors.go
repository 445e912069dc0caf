package configs

// CORS configures cross-origin resource sharing. The defaults allow any
// origin.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	// MaxAge is how long, in seconds, browsers may cache a preflight
	// result. Zero leaves the header out.
	MaxAge int `env:"MAX_AGE" envDefault:"0"`
}

// AllowsAnyOrigin reports whether the wildcard origin is configured.
func (c CORS) AllowsAnyOrigin() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
