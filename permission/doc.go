// Package permission provides a role-based permission registry on top of
// flagset: permissions are elementary flags, roles are aliases over
// permissions and other roles, and granted sets are flagset values.
//
// # Root permission
//
// When root reservation is enabled the highest bit of the width is placed on
// the reserved "root" permission before any other registration. A granted set
// containing root satisfies every check.
//
// # Lifecycle
//
// Permissions and roles are registered during initialization, then
// [Registry.Freeze] compiles the schema. Checks are only available after
// Freeze; registrations are rejected after it.
//
// # What this package must NOT do
//
//   - Access Redis, databases, or the network.
//   - Encode or persist granted sets.
package permission
