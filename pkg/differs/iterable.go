package differs

import mapset "github.com/deckarep/golang-set/v2"

// defaultIterableDiffer is the built-in membership differ. It keeps the
// previous snapshot as both an ordered slice (for deterministic removal
// order) and a set (for O(1) membership checks).
type defaultIterableDiffer struct {
	prev    []string
	prevSet mapset.Set[string]
}

// NewIterableDiffer creates an iterable differ with no prior snapshot.
func NewIterableDiffer() IterableDiffer {
	return &defaultIterableDiffer{
		prevSet: mapset.NewThreadUnsafeSet[string](),
	}
}

// Mode implements Differ.
func (d *defaultIterableDiffer) Mode() Mode {
	return ModeIterable
}

// Diff compares items against the previous snapshot. Added records follow
// the order of items, removed records follow the order of the previous
// snapshot. Duplicate names collapse to a single record. Returns nil when
// nothing changed.
func (d *defaultIterableDiffer) Diff(items []string) *IterableDelta {
	curSet := mapset.NewThreadUnsafeSetWithSize[string](len(items))
	for _, item := range items {
		curSet.Add(item)
	}

	delta := &IterableDelta{}

	seen := mapset.NewThreadUnsafeSetWithSize[string](len(items))
	for _, item := range items {
		if !seen.Add(item) {
			continue
		}
		if !d.prevSet.Contains(item) {
			delta.added = append(delta.added, IterableRecord{Item: item})
		}
	}

	seen.Clear()
	for _, item := range d.prev {
		if !seen.Add(item) {
			continue
		}
		if !curSet.Contains(item) {
			delta.removed = append(delta.removed, IterableRecord{Item: item})
		}
	}

	// Advance the snapshot even when empty: order changes without
	// membership changes still update prev for future removals.
	d.prev = append(d.prev[:0:0], items...)
	d.prevSet = curSet

	if delta.Empty() {
		return nil
	}
	return delta
}
