package classtest

import (
	"sort"
	"strings"
	"testing"
)

// ToggleOp is one recorded SetClassPresence call.
type ToggleOp struct {
	HID     string
	Class   string
	Present bool
}

// String returns a compact form like "h1 +active" or "h1 -disabled".
func (op ToggleOp) String() string {
	sign := "+"
	if !op.Present {
		sign = "-"
	}
	return op.HID + " " + sign + op.Class
}

// FakeTarget is an in-memory render target that records every toggle and
// tracks resulting class presence per element.
type FakeTarget struct {
	classes map[string]map[string]bool
	ops     []ToggleOp
}

// NewTarget creates an empty fake render target.
func NewTarget() *FakeTarget {
	return &FakeTarget{classes: map[string]map[string]bool{}}
}

// SetClassPresence implements classbind.RenderTarget.
func (ft *FakeTarget) SetClassPresence(hid, class string, present bool) {
	ft.ops = append(ft.ops, ToggleOp{HID: hid, Class: class, Present: present})

	el := ft.classes[hid]
	if el == nil {
		el = map[string]bool{}
		ft.classes[hid] = el
	}
	if present {
		el[class] = true
	} else {
		delete(el, class)
	}
}

// Has reports whether the class is currently present on the element.
func (ft *FakeTarget) Has(hid, class string) bool {
	return ft.classes[hid][class]
}

// Classes returns the element's present classes in sorted order.
func (ft *FakeTarget) Classes(hid string) []string {
	var out []string
	for class := range ft.classes[hid] {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}

// Ops returns every toggle recorded since creation or the last ResetOps.
func (ft *FakeTarget) Ops() []ToggleOp {
	return ft.ops
}

// OpStrings returns the recorded toggles in compact string form.
func (ft *FakeTarget) OpStrings() []string {
	out := make([]string, len(ft.ops))
	for i, op := range ft.ops {
		out[i] = op.String()
	}
	return out
}

// ResetOps clears the recorded toggle log without touching class state.
func (ft *FakeTarget) ResetOps() {
	ft.ops = nil
}

// ExpectClasses asserts the element's present classes are exactly want.
func ExpectClasses(t *testing.T, ft *FakeTarget, hid string, want ...string) {
	t.Helper()
	got := ft.Classes(hid)
	sort.Strings(want)
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("classes on %s = %q, want %q", hid, got, want)
	}
}

// ExpectClean asserts the element has no classes present.
func ExpectClean(t *testing.T, ft *FakeTarget, hid string) {
	t.Helper()
	if got := ft.Classes(hid); len(got) != 0 {
		t.Errorf("expected no classes on %s, got %q", hid, got)
	}
}

// ExpectOps asserts the recorded toggle log matches want exactly, in order.
// Entries use the compact "hid +class" / "hid -class" form.
func ExpectOps(t *testing.T, ft *FakeTarget, want ...string) {
	t.Helper()
	got := ft.OpStrings()
	if len(got) != len(want) {
		t.Errorf("recorded %d toggles %q, want %d %q", len(got), got, len(want), want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("toggle[%d] = %q, want %q (full log %q)", i, got[i], want[i], got)
			return
		}
	}
}

// ExpectNoOps asserts no toggles were recorded since the last ResetOps.
func ExpectNoOps(t *testing.T, ft *FakeTarget) {
	t.Helper()
	if len(ft.ops) != 0 {
		t.Errorf("expected no toggles, got %q", ft.OpStrings())
	}
}
