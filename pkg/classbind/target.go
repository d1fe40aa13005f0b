package classbind

// RenderTarget is the single point of contact with the element whose class
// set is being reconciled. Implementations must be idempotent: setting a
// class to a presence it already has is a no-op.
//
// The binding is the sole mutator of the class names it manages, but it
// must not assume ownership of the element's other attributes.
type RenderTarget interface {
	SetClassPresence(hid, class string, present bool)
}

// TargetFunc adapts a function to the RenderTarget interface.
type TargetFunc func(hid, class string, present bool)

// SetClassPresence implements RenderTarget.
func (f TargetFunc) SetClassPresence(hid, class string, present bool) {
	f(hid, class, present)
}
