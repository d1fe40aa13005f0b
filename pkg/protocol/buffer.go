package protocol

// Buffer collects class toggles into patches and flushes them as frames.
// It implements classbind.RenderTarget, so a binding can write straight
// into it. Not safe for concurrent use; the scheduler serializes access.
type Buffer struct {
	seq     uint64
	pending []Patch
}

// NewBuffer creates an empty patch buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// SetClassPresence implements classbind.RenderTarget by queueing a patch.
func (b *Buffer) SetClassPresence(hid, class string, present bool) {
	b.pending = append(b.pending, ForPresence(hid, class, present))
}

// Len returns the number of pending patches.
func (b *Buffer) Len() int {
	return len(b.pending)
}

// Flush returns the pending patches as a sequenced frame and clears the
// buffer. Flushing an empty buffer returns nil.
func (b *Buffer) Flush() *Frame {
	if len(b.pending) == 0 {
		return nil
	}
	b.seq++
	f := &Frame{Seq: b.seq, Patches: b.pending}
	b.pending = nil
	return f
}
