// Package classspec models the polymorphic class specification driving a
// class binding.
//
// A Spec is a tagged variant with four populated forms plus an absent form:
//
//	classspec.Text("btn btn-primary")
//	classspec.Sequence("btn", "btn-primary")
//	classspec.Set("btn", "btn-primary")
//	classspec.Mapping(map[string]bool{"active": true, "disabled": false})
//	classspec.None()
//
// The variant is decided once, either by calling a constructor directly or
// by coercing an arbitrary host value with From. All downstream code
// switches on the tag.
//
// Normalize reduces a spec to one of two canonical shapes: an iterable list
// of names or a name-to-bool mapping. Differs are selected per shape, so a
// Text -> Sequence swap reuses the active differ while a Sequence -> Mapping
// swap rebuilds it.
package classspec
