package aliasgraph

import "github.com/cockroachdb/errors"

var (
	// ErrCycle reports aliases that reference each other.
	ErrCycle = errors.New("cyclic alias")
	// ErrUnknownTarget reports an alias target that resolves to nothing.
	ErrUnknownTarget = errors.New("unknown alias target")
	// ErrDuplicate reports an alias declared twice.
	ErrDuplicate = errors.New("alias already declared")
	// ErrNoTargets reports an alias declared without targets.
	ErrNoTargets = errors.New("alias has no targets")
)
