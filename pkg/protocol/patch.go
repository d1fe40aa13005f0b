package protocol

// PatchOp is the type of class patch operation.
type PatchOp uint8

// Patch operation constants. Values match the class range of the original
// Vango patch protocol so thin clients can share a dispatch table.
const (
	PatchAddClass    PatchOp = 0x10 // Add CSS class
	PatchRemoveClass PatchOp = 0x11 // Remove CSS class
	PatchToggleClass PatchOp = 0x12 // Flip CSS class presence
)

// String returns the string representation of the patch operation.
func (op PatchOp) String() string {
	switch op {
	case PatchAddClass:
		return "AddClass"
	case PatchRemoveClass:
		return "RemoveClass"
	case PatchToggleClass:
		return "ToggleClass"
	default:
		return "Unknown"
	}
}

// Valid reports whether the op is a known class operation.
func (op PatchOp) Valid() bool {
	switch op {
	case PatchAddClass, PatchRemoveClass, PatchToggleClass:
		return true
	}
	return false
}

// Patch represents a single class operation to apply on the client.
type Patch struct {
	Op    PatchOp `msgpack:"o"`
	HID   string  `msgpack:"h"` // Target element ID
	Class string  `msgpack:"c"` // Class token (no whitespace)
}

// AddClass creates an add patch.
func AddClass(hid, class string) Patch {
	return Patch{Op: PatchAddClass, HID: hid, Class: class}
}

// RemoveClass creates a remove patch.
func RemoveClass(hid, class string) Patch {
	return Patch{Op: PatchRemoveClass, HID: hid, Class: class}
}

// ForPresence creates the patch that sets a class to the given presence.
func ForPresence(hid, class string, present bool) Patch {
	if present {
		return AddClass(hid, class)
	}
	return RemoveClass(hid, class)
}
