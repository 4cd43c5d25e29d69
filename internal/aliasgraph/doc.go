// Package aliasgraph orders and resolves alias declarations.
//
// Aliases form a directed graph: an edge runs from an alias to every target
// that is itself an alias. Everything else (elementary flags and the reserved
// all/none entries) is a leaf whose mask is already known when resolution
// starts.
//
// # Ordering
//
// [Graph.Order] is a depth-first topological sort with white/gray/black marks.
// Reaching a gray node reports [ErrCycle] before any mask is computed. A direct
// self reference is not treated as a cycle; it surfaces from [Graph.Resolve] as
// [ErrUnknownTarget] because the alias is not known while it is being resolved.
//
// # What this package must NOT do
//
//   - Allocate bits or know about widths.
//   - Be imported outside the flagset module.
package aliasgraph
