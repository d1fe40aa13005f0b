package server

import (
	"log/slog"
	"time"
)

// ServerConfig configures the patch-streaming server.
type ServerConfig struct {
	// Addr is the listen address (default ":8090").
	Addr string

	// WriteTimeout bounds a single WebSocket write (default 10s).
	WriteTimeout time.Duration

	// PingInterval is the keepalive ping period (default 30s).
	PingInterval time.Duration

	// PongWait is how long to wait for a pong before dropping the
	// connection (default 60s).
	PongWait time.Duration

	// SendBuffer is the per-session outbound frame queue length
	// (default 64). A session that cannot keep up is closed.
	SendBuffer int

	// CycleInterval is how often each session runs a check cycle and
	// flushes patches (default 100ms).
	CycleInterval time.Duration

	// MetricsNamespace is the Prometheus namespace (default "classbind").
	MetricsNamespace string

	// Logger is the server's logger (default slog.Default()).
	Logger *slog.Logger
}

// DefaultServerConfig returns the default configuration.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:             ":8090",
		WriteTimeout:     10 * time.Second,
		PingInterval:     30 * time.Second,
		PongWait:         60 * time.Second,
		SendBuffer:       64,
		CycleInterval:    100 * time.Millisecond,
		MetricsNamespace: "classbind",
		Logger:           slog.Default(),
	}
}

// normalize fills zero values with defaults.
func (c *ServerConfig) normalize() {
	d := DefaultServerConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.PingInterval == 0 {
		c.PingInterval = d.PingInterval
	}
	if c.PongWait == 0 {
		c.PongWait = d.PongWait
	}
	if c.SendBuffer == 0 {
		c.SendBuffer = d.SendBuffer
	}
	if c.CycleInterval == 0 {
		c.CycleInterval = d.CycleInterval
	}
	if c.MetricsNamespace == "" {
		c.MetricsNamespace = d.MetricsNamespace
	}
	if c.Logger == nil {
		c.Logger = d.Logger
	}
}
