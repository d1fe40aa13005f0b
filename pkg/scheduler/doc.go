// Package scheduler drives change detection for class bindings.
//
// A Scheduler owns a set of bindings and a dirty set. Host code routes
// input mutations through SetSpec / SetInitialClasses (or calls MarkDirty
// after mutating a spec in place), then calls RunCycle to check every dirty
// binding in registration order. Each cycle is wrapped in an OpenTelemetry
// span and feeds atomic counters exposed via Stats.
//
// The scheduler is cooperative and single-threaded: all methods must be
// called from one goroutine. It upholds the ordering contract bindings
// rely on — a cycle runs to completion before any reconfiguration or
// teardown, and teardown is the terminal call for a binding.
package scheduler
