package differs

// Mode identifies which diff engine family a differ belongs to.
type Mode uint8

const (
	ModeNone     Mode = iota // No differ bound
	ModeIterable             // Membership-only collection differ
	ModeKeyValue             // Keyed name -> bool differ
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeIterable:
		return "Iterable"
	case ModeKeyValue:
		return "KeyValue"
	default:
		return "Unknown"
	}
}

// Differ is the common surface of all diff engines. Concrete engines are
// reached by asserting to IterableDiffer or KeyValueDiffer after checking
// the mode.
type Differ interface {
	Mode() Mode
}

// IterableDiffer tracks a membership-only collection of class names.
// Diff returns nil when the collection is unchanged since the previous
// snapshot. A freshly created differ has no snapshot, so its first Diff
// reports every present name as added.
type IterableDiffer interface {
	Differ
	Diff(items []string) *IterableDelta
}

// KeyValueDiffer tracks a name -> enabled mapping. Diff returns nil when
// the mapping is unchanged since the previous snapshot.
type KeyValueDiffer interface {
	Differ
	Diff(entries map[string]bool) *KeyValueDelta
}

// IterableRecord is one membership change in an iterable delta.
type IterableRecord struct {
	Item string
}

// IterableDelta is the added/removed record sets for one comparison.
// There is no changed set: iterable tracking is membership-only.
type IterableDelta struct {
	added   []IterableRecord
	removed []IterableRecord
}

// ForEachAddedItem visits added records in collection order.
func (d *IterableDelta) ForEachAddedItem(fn func(IterableRecord)) {
	for _, r := range d.added {
		fn(r)
	}
}

// ForEachRemovedItem visits removed records in previous-snapshot order.
func (d *IterableDelta) ForEachRemovedItem(fn func(IterableRecord)) {
	for _, r := range d.removed {
		fn(r)
	}
}

// Empty reports whether the delta carries no records.
func (d *IterableDelta) Empty() bool {
	return len(d.added) == 0 && len(d.removed) == 0
}

// KeyValueRecord is one entry change in a key-value delta. PreviousValue is
// false for added records; CurrentValue is false for removed records.
type KeyValueRecord struct {
	Key           string
	CurrentValue  bool
	PreviousValue bool
}

// KeyValueDelta is the added/changed/removed record sets for one comparison.
type KeyValueDelta struct {
	added   []KeyValueRecord
	changed []KeyValueRecord
	removed []KeyValueRecord
}

// ForEachAddedItem visits added records in sorted key order.
func (d *KeyValueDelta) ForEachAddedItem(fn func(KeyValueRecord)) {
	for _, r := range d.added {
		fn(r)
	}
}

// ForEachChangedItem visits changed records in sorted key order.
func (d *KeyValueDelta) ForEachChangedItem(fn func(KeyValueRecord)) {
	for _, r := range d.changed {
		fn(r)
	}
}

// ForEachRemovedItem visits removed records in sorted key order.
func (d *KeyValueDelta) ForEachRemovedItem(fn func(KeyValueRecord)) {
	for _, r := range d.removed {
		fn(r)
	}
}

// Empty reports whether the delta carries no records.
func (d *KeyValueDelta) Empty() bool {
	return len(d.added) == 0 && len(d.changed) == 0 && len(d.removed) == 0
}
