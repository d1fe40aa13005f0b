// Package classbind reconciles an element's class set against a dynamic
// class spec and an independent static class list.
//
// A Binding is driven by an external scheduler through four entry points:
// UpdateSpec and UpdateInitialClasses on reconfiguration, Check once per
// change-detection cycle, and Teardown exactly once at end of life. All
// calls are sequential; the binding holds no locks and performs no I/O.
//
// Per check cycle the active differ (see package differs) compares the
// current spec against its previous snapshot and the binding translates the
// delta into SetClassPresence calls on the render target. Added and changed
// entries toggle to their current value; removed entries toggle off, except
// mapping keys whose previous value was already false.
//
// Static classes are replaced wholesale, never diffed. After a static
// reconfiguration the dynamic spec is re-applied in full by iterating the
// raw value directly, so dynamic classes win over static ones. This
// re-apply deliberately bypasses the active differ and therefore does not
// touch its snapshot: the next Check may see a stale snapshot and either
// recompute additions or report no delta, depending on what the differ last
// saw. Hosts that need the differ resynchronized should replace the spec
// via UpdateSpec instead.
package classbind
