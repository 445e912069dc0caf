package configs

import (
	"net"
	"strconv"
	"time"
)

// DefaultPort is used whenever PORT is unset or does not hold a valid TCP
// port number.
const DefaultPort uint16 = 3000

// HTTP defines configuration for the HTTP server. Host and Port are read
// without a prefix so the conventional HOST and PORT variables apply; the
// remaining fields use the HTTP_ prefix.
type HTTP struct {
	// Host is the bind address. The default binds to all interfaces.
	Host string `env:"HOST" envDefault:"0.0.0.0"`

	// Port is kept as raw text so that a malformed value falls back to
	// DefaultPort instead of failing startup. Use ListenPort to read it.
	Port string `env:"PORT" envDefault:"3000"`

	// TrustProxy makes the client IP come from X-Forwarded-For or
	// X-Real-IP instead of the socket peer address.
	TrustProxy bool `env:"HTTP_TRUST_PROXY" envDefault:"false"`

	// ShutdownTimeout bounds graceful shutdown after a termination signal.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ListenPort returns the configured port, or DefaultPort when the value is
// not a number in the 1..65535 range.
func (c HTTP) ListenPort() uint16 {
	p, err := strconv.ParseUint(c.Port, 10, 16)
	if err != nil || p == 0 {
		return DefaultPort
	}
	return uint16(p)
}

// Addr returns the host:port pair passed to net.Listen.
func (c HTTP) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.ListenPort())))
}
