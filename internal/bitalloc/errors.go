package bitalloc

import "github.com/cockroachdb/errors"

var (
	// ErrConflict reports an explicit mask overlapping bits already claimed.
	ErrConflict = errors.New("conflicting bits")
	// ErrExhausted reports that every bit within the width is claimed.
	ErrExhausted = errors.New("no free bit left")
	// ErrOutOfRange reports a mask with bits at or above the width.
	ErrOutOfRange = errors.New("mask exceeds width")
	// ErrEmptyMask reports an explicit claim of zero bits.
	ErrEmptyMask = errors.New("mask must have at least one bit set")
)
