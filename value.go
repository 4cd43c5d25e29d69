package flagset

import (
	"fmt"
)

// Value is an immutable set of flags of one [Schema].
//
// Operations never modify the receiver; they return a new Value. Operation
// arguments are normalized like [Schema.New]: names, values of the same
// schema, raw integers or slices of those, combined with OR. Values are
// comparable; == and [Value.Equal] agree.
//
// The zero Value has no schema. It compares equal only to itself and every
// operation on it fails with [ErrTypeMismatch].
type Value struct {
	schema *Schema
	bits   uint64
}

// Must returns v, or panics if err is non-nil. It wraps calls returning
// (Value, error) in declarations and tests:
//
//	rw := flagset.Must(perms.New("read", "write"))
func Must(v Value, err error) Value {
	if err != nil {
		panic(fmt.Sprintf("flagset: %v", err))
	}
	return v
}

// Schema returns the schema v belongs to, or nil for the zero Value.
func (v Value) Schema() *Schema {
	return v.schema
}

// Uint64 returns the underlying bits.
func (v Value) Uint64() uint64 {
	return v.bits
}

// Equal reports whether v and other belong to the same schema and hold the
// same bits.
func (v Value) Equal(other Value) bool {
	return v.schema == other.schema && v.bits == other.bits
}

/*
====================================
SET OPERATIONS
====================================
*/

// Union returns the flags set in v or in args.
func (v Value) Union(args ...any) (Value, error) {
	x, err := v.operand(args)
	if err != nil {
		return Value{}, err
	}
	return v.with(v.bits | x), nil
}

// Add is an alias of [Value.Union].
func (v Value) Add(args ...any) (Value, error) {
	return v.Union(args...)
}

// Intersect returns the flags set in both v and args.
func (v Value) Intersect(args ...any) (Value, error) {
	x, err := v.operand(args)
	if err != nil {
		return Value{}, err
	}
	return v.with(v.bits & x), nil
}

// Difference returns the flags of v that are not in args.
func (v Value) Difference(args ...any) (Value, error) {
	x, err := v.operand(args)
	if err != nil {
		return Value{}, err
	}
	return v.with(v.bits &^ x), nil
}

// SymmetricDifference returns the flags set in exactly one of v and args.
func (v Value) SymmetricDifference(args ...any) (Value, error) {
	x, err := v.operand(args)
	if err != nil {
		return Value{}, err
	}
	return v.with(v.bits ^ x), nil
}

// Complement returns every flag of the schema that is not in v. The zero
// Value complements to itself.
func (v Value) Complement() Value {
	if v.schema == nil {
		return v
	}
	return v.with(v.schema.all &^ v.bits)
}

/*
====================================
PREDICATES
====================================
*/

// IsSubset reports whether every flag of v is in args.
func (v Value) IsSubset(args ...any) (bool, error) {
	x, err := v.operand(args)
	if err != nil {
		return false, err
	}
	return v.bits&^x == 0, nil
}

// IsProperSubset reports whether v is a subset of args and not equal to it.
func (v Value) IsProperSubset(args ...any) (bool, error) {
	x, err := v.operand(args)
	if err != nil {
		return false, err
	}
	return v.bits&^x == 0 && v.bits != x, nil
}

// IsSuperset reports whether every flag of args is in v.
func (v Value) IsSuperset(args ...any) (bool, error) {
	x, err := v.operand(args)
	if err != nil {
		return false, err
	}
	return x&^v.bits == 0, nil
}

// HasAllOf is an alias of [Value.IsSuperset].
func (v Value) HasAllOf(args ...any) (bool, error) {
	return v.IsSuperset(args...)
}

// IsProperSuperset reports whether v is a superset of args and not equal to it.
func (v Value) IsProperSuperset(args ...any) (bool, error) {
	x, err := v.operand(args)
	if err != nil {
		return false, err
	}
	return x&^v.bits == 0 && v.bits != x, nil
}

// Intersects reports whether v and args share at least one flag.
func (v Value) Intersects(args ...any) (bool, error) {
	x, err := v.operand(args)
	if err != nil {
		return false, err
	}
	return v.bits&x != 0, nil
}

// HasAnyOf is an alias of [Value.Intersects].
func (v Value) HasAnyOf(args ...any) (bool, error) {
	return v.Intersects(args...)
}

// Matches reports whether v shares a flag with arg. Any error counts as no
// match, which makes it usable in switch statements:
//
//	switch {
//	case mode.Matches("read"):
//	}
func (v Value) Matches(arg any) bool {
	ok, err := v.Intersects(arg)
	return err == nil && ok
}

// Is reports whether v has any bit of the named elementary flag or alias set.
// The reserved names all and none are rejected.
func (v Value) Is(name string) (bool, error) {
	if v.schema == nil {
		return false, errNoSchema()
	}
	if name == NameAll || name == NameNone {
		return false, markf(ErrArgument, "%q has no query", name)
	}
	mask, ok := v.schema.masks[name]
	if !ok {
		return false, v.schema.unknownName(name)
	}
	return v.bits&mask != 0, nil
}

// IsAll reports whether every elementary flag is set.
func (v Value) IsAll() bool {
	return v.schema != nil && v.bits == v.schema.all
}

// IsAny reports whether at least one flag is set.
func (v Value) IsAny() bool {
	return v.bits != 0
}

// IsNone reports whether no flag is set.
func (v Value) IsNone() bool {
	return v.bits == 0
}

// Names returns the elementary flags fully set in v, in declaration order.
// Aliases and the reserved names are never returned.
func (v Value) Names() []string {
	if v.schema == nil {
		return nil
	}
	names := make([]string, 0, len(v.schema.elementary))
	for _, name := range v.schema.elementary {
		mask := v.schema.masks[name]
		if v.bits&mask == mask {
			names = append(names, name)
		}
	}
	return names
}

func (v Value) with(bits uint64) Value {
	return Value{schema: v.schema, bits: bits}
}

func (v Value) operand(args []any) (uint64, error) {
	if v.schema == nil {
		return 0, errNoSchema()
	}
	return v.schema.fold(args)
}

func (v Value) schemaLabel() string {
	if v.schema == nil {
		return "no schema"
	}
	return v.schema.label()
}

func errNoSchema() error {
	return markf(ErrTypeMismatch, "zero Value has no schema")
}
