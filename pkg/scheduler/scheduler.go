package scheduler

import (
	"context"
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/classbind/pkg/classbind"
	"github.com/vango-dev/classbind/pkg/classspec"
)

// Default tracer name for classbind schedulers.
const defaultTracerName = "classbind"

// Scheduler drives the check cycles of a set of bindings. It is the
// external driver the bindings' lifecycle contract assumes: every call into
// it must come from one goroutine, each hook runs to completion before the
// next starts, and teardown is terminal per binding.
type Scheduler struct {
	logger *slog.Logger
	tracer trace.Tracer

	// bindings in registration order; cycles check them in this order.
	bindings []*classbind.Binding
	byHID    map[string]*classbind.Binding

	// dirty holds the HIDs that need a check this cycle.
	dirty mapset.Set[string]

	metrics Metrics
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithTracerName overrides the otel tracer name.
func WithTracerName(name string) Option {
	return func(s *Scheduler) {
		s.tracer = otel.Tracer(name)
	}
}

// New creates an empty scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		logger: slog.Default(),
		tracer: otel.Tracer(defaultTracerName),
		byHID:  map[string]*classbind.Binding{},
		dirty:  mapset.NewThreadUnsafeSet[string](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds a binding and marks it dirty so it is checked at least once
// on the next cycle. Registering a HID twice replaces the old binding
// without tearing it down; the caller owns that decision.
func (s *Scheduler) Register(b *classbind.Binding) {
	if _, exists := s.byHID[b.HID()]; !exists {
		s.bindings = append(s.bindings, b)
	} else {
		for i, old := range s.bindings {
			if old.HID() == b.HID() {
				s.bindings[i] = b
				break
			}
		}
	}
	s.byHID[b.HID()] = b
	s.dirty.Add(b.HID())
}

// Binding returns the registered binding for a HID, or nil.
func (s *Scheduler) Binding(hid string) *classbind.Binding {
	return s.byHID[hid]
}

// MarkDirty schedules a binding for the next cycle.
func (s *Scheduler) MarkDirty(hid string) {
	if _, ok := s.byHID[hid]; ok {
		s.dirty.Add(hid)
	}
}

// SetSpec coerces a host value into a class spec, applies it to the
// binding, and marks it dirty so the change is re-checked next cycle.
func (s *Scheduler) SetSpec(hid string, value any) error {
	b, ok := s.byHID[hid]
	if !ok {
		return nil
	}
	spec, err := classspec.From(value)
	if err != nil {
		return err
	}
	if err := b.UpdateSpec(spec); err != nil {
		return err
	}
	s.dirty.Add(hid)
	return nil
}

// SetInitialClasses applies a static class value to the binding and marks
// it dirty.
func (s *Scheduler) SetInitialClasses(hid string, value any) error {
	b, ok := s.byHID[hid]
	if !ok {
		return nil
	}
	if err := b.UpdateInitialClasses(value); err != nil {
		return err
	}
	s.dirty.Add(hid)
	return nil
}

// RunCycle checks every dirty binding in registration order. The cycle runs
// to completion before returning; the first check error aborts the cycle
// and is returned (per-pass failures are not retried).
func (s *Scheduler) RunCycle(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "classbind.check_cycle")
	defer span.End()

	s.metrics.cycles.Add(1)

	checked := 0
	for _, b := range s.bindings {
		if !s.dirty.Contains(b.HID()) {
			continue
		}
		s.dirty.Remove(b.HID())

		before := b.TogglesEmitted()
		if err := b.Check(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "check failed")
			s.metrics.checkErrors.Add(1)
			s.logger.Error("check failed", "hid", b.HID(), "error", err)
			return err
		}
		checked++
		s.metrics.bindingsChecked.Add(1)
		s.metrics.togglesEmitted.Add(int64(b.TogglesEmitted() - before))
	}

	span.SetAttributes(
		attribute.Int("classbind.bindings_checked", checked),
		attribute.Int("classbind.bindings_total", len(s.bindings)),
	)
	return nil
}

// Teardown tears down one binding and forgets it. Safe to call for an
// unknown HID.
func (s *Scheduler) Teardown(hid string) {
	b, ok := s.byHID[hid]
	if !ok {
		return
	}
	b.Teardown()
	delete(s.byHID, hid)
	s.dirty.Remove(hid)
	for i, reg := range s.bindings {
		if reg.HID() == hid {
			s.bindings = append(s.bindings[:i], s.bindings[i+1:]...)
			break
		}
	}
}

// TeardownAll tears down every binding in registration order.
func (s *Scheduler) TeardownAll() {
	for _, b := range s.bindings {
		b.Teardown()
	}
	s.bindings = nil
	s.byHID = map[string]*classbind.Binding{}
	s.dirty.Clear()
}

// Len returns the number of registered bindings.
func (s *Scheduler) Len() int {
	return len(s.bindings)
}
