package classspec

import (
	"reflect"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vango-dev/classbind/internal/errors"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindNone:     "None",
		KindText:     "Text",
		KindSequence: "Sequence",
		KindSet:      "Set",
		KindMapping:  "Mapping",
		Kind(99):     "Unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestShapeByKind(t *testing.T) {
	if got := Text("a").Shape(); got != ShapeIterable {
		t.Errorf("Text shape = %v, want Iterable", got)
	}
	if got := Sequence("a").Shape(); got != ShapeIterable {
		t.Errorf("Sequence shape = %v, want Iterable", got)
	}
	if got := Set("a").Shape(); got != ShapeIterable {
		t.Errorf("Set shape = %v, want Iterable", got)
	}
	if got := Mapping(map[string]bool{"a": true}).Shape(); got != ShapeKeyValue {
		t.Errorf("Mapping shape = %v, want KeyValue", got)
	}
	if got := None().Shape(); got != ShapeNone {
		t.Errorf("None shape = %v, want None", got)
	}
}

func TestFrom(t *testing.T) {
	spec, err := From("foo bar")
	if err != nil {
		t.Fatalf("From(string) error: %v", err)
	}
	if spec.Kind() != KindText {
		t.Errorf("Kind = %v, want Text", spec.Kind())
	}

	spec, err = From([]string{"x", "y"})
	if err != nil {
		t.Fatalf("From([]string) error: %v", err)
	}
	if spec.Kind() != KindSequence {
		t.Errorf("Kind = %v, want Sequence", spec.Kind())
	}

	spec, err = From(mapset.NewThreadUnsafeSet("a"))
	if err != nil {
		t.Fatalf("From(set) error: %v", err)
	}
	if spec.Kind() != KindSet {
		t.Errorf("Kind = %v, want Set", spec.Kind())
	}

	spec, err = From(map[string]bool{"a": true})
	if err != nil {
		t.Fatalf("From(map) error: %v", err)
	}
	if spec.Kind() != KindMapping {
		t.Errorf("Kind = %v, want Mapping", spec.Kind())
	}

	spec, err = From(nil)
	if err != nil {
		t.Fatalf("From(nil) error: %v", err)
	}
	if !spec.IsNone() {
		t.Error("From(nil) should be absent")
	}
}

func TestFromUnsupported(t *testing.T) {
	_, err := From(42)
	if err == nil {
		t.Fatal("Expected error for unsupported shape")
	}
	if !errors.IsCode(err, errors.CodeUnsupportedShape) {
		t.Errorf("Expected %s, got %v", errors.CodeUnsupportedShape, err)
	}
}

func TestNormalizeTextSingleSpaceSplit(t *testing.T) {
	// Literal single-space split: runs of spaces yield empty tokens.
	col := Text("  multi   space  ").Normalize()

	if col.Shape != ShapeIterable {
		t.Fatalf("Shape = %v, want Iterable", col.Shape)
	}
	want := []string{"", "", "multi", "", "", "space", "", ""}
	if !reflect.DeepEqual(col.Items, want) {
		t.Errorf("Items = %q, want %q", col.Items, want)
	}
}

func TestNormalizeSequence(t *testing.T) {
	col := Sequence("a", "b").Normalize()
	if !reflect.DeepEqual(col.Items, []string{"a", "b"}) {
		t.Errorf("Items = %q, want [a b]", col.Items)
	}
}

func TestNormalizeSetSorted(t *testing.T) {
	col := Set("z", "a", "m").Normalize()
	if !reflect.DeepEqual(col.Items, []string{"a", "m", "z"}) {
		t.Errorf("Items = %q, want sorted [a m z]", col.Items)
	}
}

func TestNormalizeMappingCopies(t *testing.T) {
	src := map[string]bool{"a": true, "b": false}
	col := Mapping(src).Normalize()

	if col.Shape != ShapeKeyValue {
		t.Fatalf("Shape = %v, want KeyValue", col.Shape)
	}
	col.Entries["a"] = false
	if !src["a"] {
		t.Error("Normalize should copy the mapping, not alias it")
	}
}

func TestNormalizeNone(t *testing.T) {
	col := None().Normalize()
	if !col.IsAbsent() {
		t.Error("None should normalize to an absent collection")
	}
}

func TestForEachPresent(t *testing.T) {
	var got []string
	Sequence("a", "b").ForEachPresent(func(name string) {
		got = append(got, name)
	})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Sequence visit = %q, want [a b]", got)
	}

	got = nil
	Mapping(map[string]bool{"on": true, "off": false, "also": true}).
		ForEachPresent(func(name string) { got = append(got, name) })
	if !reflect.DeepEqual(got, []string{"also", "on"}) {
		t.Errorf("Mapping visit = %q, want truthy keys [also on]", got)
	}
}

func TestForEachState(t *testing.T) {
	state := map[string]bool{}
	Mapping(map[string]bool{"on": true, "off": false}).
		ForEachState(func(name string, enabled bool) { state[name] = enabled })

	if !state["on"] || state["off"] {
		t.Errorf("State = %v, want on=true off=false", state)
	}

	state = map[string]bool{}
	Set("x").ForEachState(func(name string, enabled bool) { state[name] = enabled })
	if !state["x"] {
		t.Error("Iterable entries should always be enabled")
	}
}

func TestFromSetNil(t *testing.T) {
	if !FromSet(nil).IsNone() {
		t.Error("FromSet(nil) should be absent")
	}
}
