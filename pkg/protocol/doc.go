// Package protocol defines the wire format for shipping class patches to a
// thin client.
//
// A Patch is one class operation (add, remove, toggle) against an element
// ID. A Frame batches the patches of one check cycle under a monotonically
// increasing sequence number. Frames are encoded with msgpack and bounded
// by the limits in limits.go.
//
// Buffer adapts the render-target contract to the protocol: bindings write
// SetClassPresence calls into it and the session flushes one frame per
// cycle.
package protocol
