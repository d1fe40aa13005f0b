package differs

import (
	"github.com/vango-dev/classbind/internal/errors"
	"github.com/vango-dev/classbind/pkg/classspec"
)

// Factory creates differs for the shapes it supports.
type Factory interface {
	// Supports reports whether this factory can track the given shape.
	Supports(shape classspec.Shape) bool

	// Create returns a fresh differ with no prior snapshot.
	Create() Differ
}

// Registry resolves a canonical spec shape to a differ factory. Resolution
// happens once per shape change, not per check pass.
type Registry struct {
	factories []Factory
}

// NewRegistry creates a registry with the given factories. Resolution order
// follows registration order.
func NewRegistry(factories ...Factory) *Registry {
	return &Registry{factories: factories}
}

// DefaultRegistry returns a registry with the built-in iterable and
// key-value factories.
func DefaultRegistry() *Registry {
	return NewRegistry(IterableFactory{}, KeyValueFactory{})
}

// Resolve returns the first factory supporting the shape. A shape no
// factory supports is a configuration error (E301), not a per-pass failure.
func (r *Registry) Resolve(shape classspec.Shape) (Factory, error) {
	for _, f := range r.factories {
		if f.Supports(shape) {
			return f, nil
		}
	}
	return nil, errors.New(errors.CodeUnsupportedShape).
		WithDetail("No differ factory is registered for shape " + shape.String() + ".").
		WithSuggestion("Register a factory for this shape or supply an iterable or mapping spec")
}

// IterableFactory creates the built-in membership differ.
type IterableFactory struct{}

// Supports implements Factory.
func (IterableFactory) Supports(shape classspec.Shape) bool {
	return shape == classspec.ShapeIterable
}

// Create implements Factory.
func (IterableFactory) Create() Differ {
	return NewIterableDiffer()
}

// KeyValueFactory creates the built-in keyed differ.
type KeyValueFactory struct{}

// Supports implements Factory.
func (KeyValueFactory) Supports(shape classspec.Shape) bool {
	return shape == classspec.ShapeKeyValue
}

// Create implements Factory.
func (KeyValueFactory) Create() Differ {
	return NewKeyValueDiffer()
}
