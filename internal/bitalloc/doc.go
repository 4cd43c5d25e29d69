// Package bitalloc hands out bit positions for elementary flags while a schema
// is being declared.
//
// # Allocation rules
//
// Explicit masks may span several bits; only overlap with bits already claimed
// is rejected. Automatic claims always return the lowest free single bit, so
// automatic and explicit placements never collide regardless of declaration
// order.
//
// # What this package must NOT do
//
//   - Track flag names (duplicate detection belongs to the builder).
//   - Be imported outside the flagset module.
package bitalloc
