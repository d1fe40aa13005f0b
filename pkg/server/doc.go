// Package server streams class patch frames to WebSocket clients.
//
// Each connection gets a Session owning its own scheduler and patch
// buffer. The host configures bindings in an OnSession hook, mutates specs
// through Session.Do, and the session's cycle loop periodically runs
// change detection and flushes the resulting patches as one msgpack frame
// per cycle.
//
// The server exposes /ws for the patch stream, /healthz for liveness, and
// /metrics for Prometheus.
package server
