package classspec

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vango-dev/classbind/internal/errors"
)

// Kind is the spec variant discriminator.
type Kind uint8

const (
	KindNone     Kind = iota // No spec supplied
	KindText                 // Space-delimited string
	KindSequence             // Ordered list of names
	KindSet                  // Unordered set of names
	KindMapping              // Name -> enabled mapping
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindText:
		return "Text"
	case KindSequence:
		return "Sequence"
	case KindSet:
		return "Set"
	case KindMapping:
		return "Mapping"
	default:
		return "Unknown"
	}
}

// Shape is the canonical collection category a spec normalizes to.
// Differs are selected by shape, not by kind.
type Shape uint8

const (
	ShapeNone     Shape = iota // Absent spec, no differ
	ShapeIterable              // Membership-only collection of names
	ShapeKeyValue              // Name -> enabled mapping
)

// String returns the string representation of the Shape.
func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "None"
	case ShapeIterable:
		return "Iterable"
	case ShapeKeyValue:
		return "KeyValue"
	default:
		return "Unknown"
	}
}

// Spec is the tagged class specification value. The variant is decided once
// at construction; downstream code switches on Kind instead of probing
// runtime types.
type Spec struct {
	kind    Kind
	text    string
	seq     []string
	set     mapset.Set[string]
	mapping map[string]bool
}

// None returns the absent spec.
func None() Spec {
	return Spec{kind: KindNone}
}

// Text creates a spec from a space-delimited class string.
func Text(s string) Spec {
	return Spec{kind: KindText, text: s}
}

// Sequence creates a spec from an ordered list of class names.
func Sequence(names ...string) Spec {
	return Spec{kind: KindSequence, seq: names}
}

// Set creates a spec from an unordered set of class names.
func Set(names ...string) Spec {
	return Spec{kind: KindSet, set: mapset.NewThreadUnsafeSet(names...)}
}

// FromSet creates a spec from an existing set.
func FromSet(s mapset.Set[string]) Spec {
	if s == nil {
		return None()
	}
	return Spec{kind: KindSet, set: s}
}

// Mapping creates a spec from a name -> enabled mapping.
func Mapping(m map[string]bool) Spec {
	return Spec{kind: KindMapping, mapping: m}
}

// From coerces an arbitrary host-supplied value into a Spec.
// Supported: nil, string, []string, mapset.Set[string], map[string]bool.
// Any other value is an unsupported spec shape (E301).
func From(v any) (Spec, error) {
	switch val := v.(type) {
	case nil:
		return None(), nil
	case string:
		return Text(val), nil
	case []string:
		return Sequence(val...), nil
	case mapset.Set[string]:
		return FromSet(val), nil
	case map[string]bool:
		return Mapping(val), nil
	case Spec:
		return val, nil
	default:
		return None(), errors.New(errors.CodeUnsupportedShape).
			WithDetail("Class specs must be a string, []string, mapset.Set[string], or map[string]bool.")
	}
}

// Kind returns the spec variant.
func (s Spec) Kind() Kind {
	return s.kind
}

// IsNone reports whether the spec is absent.
func (s Spec) IsNone() bool {
	return s.kind == KindNone
}

// Shape returns the canonical collection category for differ selection.
func (s Spec) Shape() Shape {
	switch s.kind {
	case KindText, KindSequence, KindSet:
		return ShapeIterable
	case KindMapping:
		return ShapeKeyValue
	default:
		return ShapeNone
	}
}

// names returns the raw name list for iterable variants.
// Text splits on a literal single space: consecutive spaces produce empty
// tokens, which the toggle layer drops. Set order is sorted so that deltas
// are deterministic.
func (s Spec) names() []string {
	switch s.kind {
	case KindText:
		return strings.Split(s.text, " ")
	case KindSequence:
		return s.seq
	case KindSet:
		names := s.set.ToSlice()
		sort.Strings(names)
		return names
	default:
		return nil
	}
}

// sortedMappingKeys returns the mapping keys in sorted order.
func (s Spec) sortedMappingKeys() []string {
	keys := make([]string, 0, len(s.mapping))
	for k := range s.mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ForEachPresent visits every class the spec currently implies as present:
// each element of an iterable spec, each truthy-valued key of a mapping.
// Used for reconfiguration cleanup and teardown.
func (s Spec) ForEachPresent(fn func(name string)) {
	switch s.kind {
	case KindText, KindSequence, KindSet:
		for _, name := range s.names() {
			fn(name)
		}
	case KindMapping:
		for _, k := range s.sortedMappingKeys() {
			if s.mapping[k] {
				fn(k)
			}
		}
	}
}

// ForEachState visits every class the spec mentions together with its
// desired presence: iterable entries are always true, mapping entries carry
// their value. Used for the full (non-diffed) re-apply after an
// initial-classes reconfiguration.
func (s Spec) ForEachState(fn func(name string, enabled bool)) {
	switch s.kind {
	case KindText, KindSequence, KindSet:
		for _, name := range s.names() {
			fn(name, true)
		}
	case KindMapping:
		for _, k := range s.sortedMappingKeys() {
			fn(k, s.mapping[k])
		}
	}
}
