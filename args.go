package flagset

// fold normalizes every argument to its bits and combines them with OR.
func (s *Schema) fold(args []any) (uint64, error) {
	var bits uint64
	for _, arg := range args {
		v, err := s.bitsOf(arg)
		if err != nil {
			return 0, err
		}
		bits |= v
	}
	return bits, nil
}

// bitsOf accepts a name, a value of this schema, a Go integer, or a slice of
// those.
func (s *Schema) bitsOf(arg any) (uint64, error) {
	switch a := arg.(type) {
	case string:
		mask, ok := s.masks[a]
		if !ok {
			return 0, s.unknownName(a)
		}
		return mask, nil
	case Value:
		if a.schema != s {
			return 0, markf(ErrTypeMismatch, "cannot use a value of %s as %s", a.schemaLabel(), s.label())
		}
		return a.bits, nil
	case uint64:
		return s.raw(a)
	case uint:
		return s.raw(uint64(a))
	case uint32:
		return s.raw(uint64(a))
	case uint16:
		return s.raw(uint64(a))
	case uint8:
		return s.raw(uint64(a))
	case int:
		return s.signed(int64(a))
	case int64:
		return s.signed(a)
	case int32:
		return s.signed(int64(a))
	case int16:
		return s.signed(int64(a))
	case int8:
		return s.signed(int64(a))
	case []string:
		return foldSlice(s, a)
	case []Value:
		return foldSlice(s, a)
	case []uint64:
		return foldSlice(s, a)
	case []int:
		return foldSlice(s, a)
	case []any:
		return s.fold(a)
	default:
		return 0, markf(ErrTypeMismatch, "cannot convert %T to a value of %s", arg, s.label())
	}
}

func foldSlice[T any](s *Schema, items []T) (uint64, error) {
	var bits uint64
	for _, item := range items {
		v, err := s.bitsOf(item)
		if err != nil {
			return 0, err
		}
		bits |= v
	}
	return bits, nil
}

func (s *Schema) raw(v uint64) (uint64, error) {
	if err := s.Validate(v); err != nil {
		return 0, err
	}
	return v, nil
}

func (s *Schema) signed(v int64) (uint64, error) {
	if v < 0 {
		return 0, markf(ErrInconsistentValue, "%d is a flag value inconsistent with %s", v, s.label())
	}
	return s.raw(uint64(v))
}
