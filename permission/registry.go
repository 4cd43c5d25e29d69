package permission

import (
	"sync"

	"github.com/MrEthical07/flagset"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// RootPermission is the name of the reserved super-admin permission.
const RootPermission = "root"

var (
	// ErrFrozen reports a registration after Freeze.
	ErrFrozen = errors.New("registry frozen")
	// ErrNotFrozen reports a lookup before Freeze.
	ErrNotFrozen = errors.New("registry not frozen")
)

// Registry maps permission and role names onto a flagset schema.
//
// Registration methods are safe for concurrent use; the compiled schema is
// immutable once [Registry.Freeze] returns.
type Registry struct {
	maxBits      int
	rootReserved bool

	mu      sync.RWMutex
	builder *flagset.Builder
	perms   []string
	roles   []string
	schema  *flagset.Schema
	frozen  bool
}

// NewRegistry creates a permission [Registry]. maxBits selects the mask width
// (8/16/32/64); rootReserved reserves the highest bit for [RootPermission].
func NewRegistry(maxBits int, rootReserved bool, logger *zap.Logger) (*Registry, error) {
	b := flagset.NewBuilder(
		flagset.WithConfig(flagset.Config{Name: "permission", Width: maxBits}),
		flagset.WithLogger(logger),
	)
	if err := b.Err(); err != nil {
		return nil, err
	}
	if rootReserved {
		b.FlagBits(RootPermission, uint64(1)<<(maxBits-1))
	}

	return &Registry{
		maxBits:      maxBits,
		rootReserved: rootReserved,
		builder:      b,
	}, nil
}

// Register assigns the next available bit to each named permission.
// Must be called before [Registry.Freeze]. A failed registration poisons the
// registry: later registrations and Freeze return the same error.
func (r *Registry) Register(names ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrFrozen
	}
	if err := r.builder.Flag(names...).Err(); err != nil {
		return err
	}
	r.perms = append(r.perms, names...)
	return nil
}

// Freeze compiles every registration into the schema and prevents further
// registrations. It returns the first registration or role resolution error.
func (r *Registry) Freeze() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrFrozen
	}
	r.frozen = true

	s, err := r.builder.Build()
	if err != nil {
		return err
	}
	r.schema = s
	return nil
}

// Schema returns the compiled schema, or nil before [Registry.Freeze].
func (r *Registry) Schema() *flagset.Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schema
}

// Grant builds a granted set from permission and role names.
func (r *Registry) Grant(names ...string) (flagset.Value, error) {
	s, err := r.compiled()
	if err != nil {
		return flagset.Value{}, err
	}
	return s.New(names)
}

// Has reports whether granted includes perm, or the root permission when it
// is reserved.
func (r *Registry) Has(granted flagset.Value, perm string) bool {
	if r.rootReserved && granted.Matches(RootPermission) {
		return true
	}
	ok, err := granted.Is(perm)
	return err == nil && ok
}

// HasAll reports whether granted includes every permission in perms, or the
// root permission when it is reserved.
func (r *Registry) HasAll(granted flagset.Value, perms ...string) bool {
	if r.rootReserved && granted.Matches(RootPermission) {
		return true
	}
	ok, err := granted.HasAllOf(perms)
	return err == nil && ok
}

// Count returns the number of registered permissions, excluding root.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.perms)
}

// RootBit returns the reserved root mask, or false if root reservation is
// disabled.
func (r *Registry) RootBit() (uint64, bool) {
	if !r.rootReserved {
		return 0, false
	}
	return uint64(1) << (r.maxBits - 1), true
}

func (r *Registry) compiled() (*flagset.Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.schema == nil {
		return nil, ErrNotFrozen
	}
	return r.schema, nil
}
