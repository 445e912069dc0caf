package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"greeter/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs tagged with envPrefix are parsed with that prefix. See the
// individual types in the configs package for defaults. Use Load to
// construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// reported in the startup log.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// CORS configures the cross-origin middleware. Environment variables
	// prefixed with CORS_ will populate this struct.
	CORS configs.CORS `envPrefix:"CORS_"`
}

// Load reads a .env file from the working directory when present and then
// parses environment variables into a Config. Variables already set in the
// process environment take precedence over the file.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is like Load but reads the given dotenv files. Missing files are
// skipped.
func LoadFiles(files ...string) (Config, error) {
	var cfg Config
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", f, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
