package classbind

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/vango-dev/classbind/internal/errors"
	"github.com/vango-dev/classbind/pkg/classspec"
	"github.com/vango-dev/classbind/pkg/differs"
)

// Binding reconciles one element's class set against a dynamic class spec
// and a static initial-classes list. All methods must be called
// sequentially from the scheduler's goroutine; the binding has no internal
// locking.
type Binding struct {
	target   RenderTarget
	hid      string
	logger   *slog.Logger
	registry *differs.Registry

	state State

	// Active differ. At most one is live; mode says which.
	mode     differs.Mode
	iterable differs.IterableDiffer
	keyValue differs.KeyValueDiffer

	// rawSpec is the current dynamic spec as supplied by the host.
	// Cleanup and full re-apply traverse it directly, bypassing the differ.
	rawSpec classspec.Spec

	// initialClasses is replaced wholesale on reconfiguration, never diffed.
	initialClasses []string

	toggles atomic.Uint64
}

// Option configures a Binding.
type Option func(*Binding)

// WithLogger sets the binding's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binding) {
		b.logger = logger
	}
}

// WithRegistry sets the differ registry used for shape resolution.
func WithRegistry(registry *differs.Registry) Option {
	return func(b *Binding) {
		b.registry = registry
	}
}

// New creates a binding for the element identified by hid on the given
// render target.
func New(target RenderTarget, hid string, opts ...Option) *Binding {
	b := &Binding{
		target:   target,
		hid:      hid,
		logger:   slog.Default(),
		registry: differs.DefaultRegistry(),
		rawSpec:  classspec.None(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// HID returns the bound element's ID.
func (b *Binding) HID() string {
	return b.hid
}

// State returns the lifecycle state.
func (b *Binding) State() State {
	return b.state
}

// TogglesEmitted returns the total number of toggle commands sent to the
// render target over the binding's lifetime.
func (b *Binding) TogglesEmitted() uint64 {
	return b.toggles.Load()
}

// UpdateInitialClasses replaces the static class list. The value is
// space-delimited when it is a string; any non-string value is treated as
// absent (empty list), not an error.
//
// Three steps run against the render target, then the current dynamic spec
// is re-applied in full so dynamic classes win over static ones:
//
//  1. every class in the old list is turned off
//  2. the list is replaced with the new token list
//  3. every class in the new list is turned on
//  4. the raw dynamic spec is re-applied, bypassing the differ
//
// Step 4 does not resynchronize the active differ's snapshot; see the
// package documentation for the consequences.
func (b *Binding) UpdateInitialClasses(value any) error {
	if b.state == StateTornDown {
		return errors.New(errors.CodeBindingTornDown)
	}
	b.state = StateActive

	for _, class := range b.initialClasses {
		b.toggle(class, false)
	}

	raw, _ := value.(string)
	b.initialClasses = strings.Fields(raw)

	for _, class := range b.initialClasses {
		b.toggle(class, true)
	}

	b.rawSpec.ForEachState(func(name string, enabled bool) {
		b.toggle(name, enabled)
	})

	b.logger.Debug("initial classes replaced",
		"hid", b.hid, "count", len(b.initialClasses))
	return nil
}

// UpdateSpec replaces the dynamic class spec. Every class implied by the
// old spec is turned off, the active differ is discarded, a differ matching
// the new spec's shape is selected, and one check pass runs immediately so
// every class the new spec implies is applied as an addition.
//
// An absent spec tears down the differ without creating a new one. A spec
// whose shape no registered differ supports returns an E301 error; this is
// a configuration error, not a per-pass failure.
func (b *Binding) UpdateSpec(spec classspec.Spec) error {
	if b.state == StateTornDown {
		return errors.New(errors.CodeBindingTornDown)
	}
	b.state = StateActive

	// Cleanup is driven by the previous raw value, not by the differ.
	b.rawSpec.ForEachPresent(func(name string) {
		b.toggle(name, false)
	})

	b.discardDiffer()
	b.rawSpec = spec

	collection := spec.Normalize()
	if collection.IsAbsent() {
		b.logger.Debug("spec cleared", "hid", b.hid)
		return nil
	}

	if err := b.selectDiffer(collection.Shape); err != nil {
		return err
	}

	b.logger.Debug("spec replaced",
		"hid", b.hid, "kind", spec.Kind().String(), "mode", b.mode.String())

	// Fresh differ, no prior snapshot: this pass reports everything added.
	return b.Check()
}

// Check runs one reconciliation pass. With no active differ it is a no-op.
// Otherwise the active differ compares the current canonical value against
// its previous snapshot and the resulting delta, if any, is translated into
// toggles. Two consecutive checks with an unchanged spec emit nothing on
// the second pass.
func (b *Binding) Check() error {
	if b.state == StateTornDown {
		return errors.New(errors.CodeBindingTornDown)
	}

	switch b.mode {
	case differs.ModeIterable:
		if delta := b.iterable.Diff(b.rawSpec.Normalize().Items); delta != nil {
			b.applyIterableDelta(delta)
		}
	case differs.ModeKeyValue:
		if delta := b.keyValue.Diff(b.rawSpec.Normalize().Entries); delta != nil {
			b.applyKeyValueDelta(delta)
		}
	}
	return nil
}

// Teardown turns off every class implied by the current dynamic spec, then
// every static class, and marks the binding terminal. Calling it again is a
// no-op.
func (b *Binding) Teardown() {
	if b.state == StateTornDown {
		return
	}

	b.rawSpec.ForEachPresent(func(name string) {
		b.toggle(name, false)
	})
	for _, class := range b.initialClasses {
		b.toggle(class, false)
	}

	b.discardDiffer()
	b.rawSpec = classspec.None()
	b.initialClasses = nil
	b.state = StateTornDown

	b.logger.Debug("binding torn down", "hid", b.hid)
}

// selectDiffer binds a differ for the given shape. An already-active differ
// of the matching mode is kept; otherwise the old differ is discarded (with
// no toggles) and a fresh one is created with no prior snapshot.
func (b *Binding) selectDiffer(shape classspec.Shape) error {
	switch {
	case shape == classspec.ShapeIterable && b.mode == differs.ModeIterable:
		return nil
	case shape == classspec.ShapeKeyValue && b.mode == differs.ModeKeyValue:
		return nil
	}

	b.discardDiffer()

	factory, err := b.registry.Resolve(shape)
	if err != nil {
		return err
	}

	d := factory.Create()
	switch d.Mode() {
	case differs.ModeIterable:
		b.iterable = d.(differs.IterableDiffer)
	case differs.ModeKeyValue:
		b.keyValue = d.(differs.KeyValueDiffer)
	}
	b.mode = d.Mode()
	return nil
}

// discardDiffer drops the active differ without emitting any toggles.
func (b *Binding) discardDiffer() {
	b.iterable = nil
	b.keyValue = nil
	b.mode = differs.ModeNone
}

// applyIterableDelta translates a membership delta into toggles:
// added on, removed off.
func (b *Binding) applyIterableDelta(delta *differs.IterableDelta) {
	delta.ForEachAddedItem(func(r differs.IterableRecord) {
		b.toggle(r.Item, true)
	})
	delta.ForEachRemovedItem(func(r differs.IterableRecord) {
		b.toggle(r.Item, false)
	})
}

// applyKeyValueDelta translates a keyed delta into toggles. Added and
// changed records toggle to their current value. Removed records toggle off
// only when the previous value was truthy, so a key that was already off
// produces no redundant command.
func (b *Binding) applyKeyValueDelta(delta *differs.KeyValueDelta) {
	delta.ForEachAddedItem(func(r differs.KeyValueRecord) {
		b.toggle(r.Key, r.CurrentValue)
	})
	delta.ForEachChangedItem(func(r differs.KeyValueRecord) {
		b.toggle(r.Key, r.CurrentValue)
	})
	delta.ForEachRemovedItem(func(r differs.KeyValueRecord) {
		if r.PreviousValue {
			b.toggle(r.Key, false)
		}
	})
}

// toggle emits presence commands for one logical class name. The name is
// trimmed; an empty result is silently dropped (this absorbs the empty
// tokens a multi-space Text spec produces). A name with internal whitespace
// expands into one command per token.
func (b *Binding) toggle(name string, enabled bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	for _, token := range strings.Fields(trimmed) {
		b.target.SetClassPresence(b.hid, token, enabled)
		b.toggles.Add(1)
	}
}
