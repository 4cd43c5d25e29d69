package flagset

import (
	"github.com/google/uuid"
)

// Schema is the compiled, immutable table of a flag set: elementary flags in
// declaration order, resolved aliases, and the reserved all and none entries.
//
// A Schema is safe for concurrent use. Values keep a pointer to the schema
// they were built from; the schema never changes after [Builder.Build].
type Schema struct {
	id    uuid.UUID
	name  string
	width int

	elementary []string
	aliases    []string
	masks      map[string]uint64
	all        uint64
}

// ID returns the identity assigned when the schema was built.
func (s *Schema) ID() uuid.UUID {
	return s.id
}

// Name returns the configured schema name, or "" when unnamed.
func (s *Schema) Name() string {
	return s.name
}

// Width returns the number of addressable bits.
func (s *Schema) Width() int {
	return s.width
}

// ElementaryNames returns the elementary flag names in declaration order.
func (s *Schema) ElementaryNames() []string {
	return append([]string(nil), s.elementary...)
}

// Aliases returns the alias names in resolution order.
func (s *Schema) Aliases() []string {
	return append([]string(nil), s.aliases...)
}

// Names returns every declared name: elementary flags in declaration order
// followed by aliases in resolution order. The reserved names are not included.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.elementary)+len(s.aliases))
	names = append(names, s.elementary...)
	return append(names, s.aliases...)
}

// Mask returns the mask of any known name, including all and none.
func (s *Schema) Mask(name string) (uint64, bool) {
	mask, ok := s.masks[name]
	return mask, ok
}

// AllMask returns the union of every elementary mask.
func (s *Schema) AllMask() uint64 {
	return s.all
}

// Get returns the value of a declared or reserved name.
func (s *Schema) Get(name string) (Value, error) {
	mask, ok := s.masks[name]
	if !ok {
		return Value{}, s.unknownName(name)
	}
	return Value{schema: s, bits: mask}, nil
}

// MustGet is like [Schema.Get] but panics on error.
func (s *Schema) MustGet(name string) Value {
	return Must(s.Get(name))
}

// All returns the value with every elementary flag set.
func (s *Schema) All() Value {
	return Value{schema: s, bits: s.all}
}

// None returns the empty value.
func (s *Schema) None() Value {
	return Value{schema: s}
}

// New builds a value from names, values of this schema and raw integers, or
// slices of those, combined with bitwise OR. Raw integers must be consistent
// (see [Schema.Validate]). New with no arguments returns the empty value.
func (s *Schema) New(args ...any) (Value, error) {
	bits, err := s.fold(args)
	if err != nil {
		return Value{}, err
	}
	return Value{schema: s, bits: bits}, nil
}

// MustNew is like [Schema.New] but panics on error.
func (s *Schema) MustNew(args ...any) Value {
	return Must(s.New(args...))
}

// Validate reports whether raw can be used as a value of this schema: it must
// not set bits outside [Schema.AllMask] and must set every multi-bit flag
// either fully or not at all.
func (s *Schema) Validate(raw uint64) error {
	if raw&^s.all != 0 || !s.consistent(raw) {
		return markf(ErrInconsistentValue, "0x%x is a flag value inconsistent with %s", raw, s.label())
	}
	return nil
}

func (s *Schema) consistent(raw uint64) bool {
	for _, name := range s.elementary {
		mask := s.masks[name]
		if m := raw & mask; m != 0 && m != mask {
			return false
		}
	}
	return true
}

func (s *Schema) unknownName(name string) error {
	return markf(ErrUnknownName, "%q is not defined in %s", name, s.label())
}

func (s *Schema) label() string {
	if s.name != "" {
		return s.name
	}
	return "schema " + s.id.String()
}
