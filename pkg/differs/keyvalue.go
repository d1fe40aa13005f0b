package differs

import "sort"

// defaultKeyValueDiffer is the built-in keyed differ. It keeps a copy of
// the previous mapping and reports entry-level changes.
type defaultKeyValueDiffer struct {
	prev map[string]bool
}

// NewKeyValueDiffer creates a key-value differ with no prior snapshot.
func NewKeyValueDiffer() KeyValueDiffer {
	return &defaultKeyValueDiffer{prev: map[string]bool{}}
}

// Mode implements Differ.
func (d *defaultKeyValueDiffer) Mode() Mode {
	return ModeKeyValue
}

// Diff compares entries against the previous snapshot. Record sets are
// sorted by key so delta order is deterministic regardless of map iteration
// order. Returns nil when nothing changed.
func (d *defaultKeyValueDiffer) Diff(entries map[string]bool) *KeyValueDelta {
	delta := &KeyValueDelta{}

	for _, key := range sortedKeys(entries) {
		cur := entries[key]
		prev, existed := d.prev[key]
		switch {
		case !existed:
			delta.added = append(delta.added, KeyValueRecord{
				Key:          key,
				CurrentValue: cur,
			})
		case prev != cur:
			delta.changed = append(delta.changed, KeyValueRecord{
				Key:           key,
				CurrentValue:  cur,
				PreviousValue: prev,
			})
		}
	}

	for _, key := range sortedKeys(d.prev) {
		if _, exists := entries[key]; !exists {
			delta.removed = append(delta.removed, KeyValueRecord{
				Key:           key,
				PreviousValue: d.prev[key],
			})
		}
	}

	next := make(map[string]bool, len(entries))
	for k, v := range entries {
		next[k] = v
	}
	d.prev = next

	if delta.Empty() {
		return nil
	}
	return delta
}

// sortedKeys returns the map keys in sorted order.
func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
