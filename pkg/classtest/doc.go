// Package classtest provides test helpers for class bindings.
//
// FakeTarget is an in-memory render target that records every
// SetClassPresence call and tracks the resulting class set per element:
//
//	target := classtest.NewTarget()
//	b := classbind.New(target, "h1")
//	b.UpdateSpec(classspec.Text("foo bar"))
//	classtest.ExpectClasses(t, target, "h1", "foo", "bar")
//	classtest.ExpectOps(t, target, "h1 +foo", "h1 +bar")
package classtest
