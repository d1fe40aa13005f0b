package classspec

// Collection is the canonical shape fed to differ selection. Exactly one of
// Items or Entries is populated, matching Shape.
type Collection struct {
	Shape   Shape
	Items   []string        // ShapeIterable
	Entries map[string]bool // ShapeKeyValue
}

// IsAbsent reports whether the collection represents a missing spec.
func (c Collection) IsAbsent() bool {
	return c.Shape == ShapeNone
}

// Normalize coerces the spec into its canonical collection. Text specs split
// on a literal single space (not a whitespace run): "a  b" yields
// ["a", "", "b"], and the empty token is absorbed later by the toggle
// primitive. An absent spec normalizes to an absent collection, which tears
// down the active differ without creating a new one.
func (s Spec) Normalize() Collection {
	switch s.kind {
	case KindText, KindSequence, KindSet:
		return Collection{Shape: ShapeIterable, Items: s.names()}
	case KindMapping:
		entries := make(map[string]bool, len(s.mapping))
		for k, v := range s.mapping {
			entries[k] = v
		}
		return Collection{Shape: ShapeKeyValue, Entries: entries}
	default:
		return Collection{Shape: ShapeNone}
	}
}
