// Package differs provides the pluggable diff engines consumed by class
// bindings.
//
// Two engine families exist. IterableDiffer tracks membership of an ordered
// name collection and reports added/removed records. KeyValueDiffer tracks
// a name -> enabled mapping and reports added/changed/removed records with
// previous and current values.
//
// Both are stateful: each Diff call compares against the snapshot taken by
// the previous call and then advances it. A nil delta means nothing
// changed. Discarding a differ and creating a fresh one (via a Factory) is
// how snapshots are reset; differs expose no explicit reset.
//
// The Registry maps a canonical spec shape to a Factory. Bindings resolve a
// factory once per shape change and keep at most one live differ.
package differs
