package bitalloc

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

// Allocator tracks the union of bits claimed by elementary flags.
// It is not safe for concurrent use.
type Allocator struct {
	width   int
	current uint64
}

// New returns an allocator addressing the low width bits of a uint64.
// width must be between 1 and 64.
func New(width int) (*Allocator, error) {
	if width < 1 || width > 64 {
		return nil, errors.Newf("invalid width %d", width)
	}
	return &Allocator{width: width}, nil
}

// ClaimExplicit claims every bit of mask and returns mask unchanged.
func (a *Allocator) ClaimExplicit(mask uint64) (uint64, error) {
	if mask == 0 {
		return 0, ErrEmptyMask
	}
	if mask&^a.limit() != 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "0x%x does not fit in %d bits", mask, a.width)
	}
	if overlap := mask & a.current; overlap != 0 {
		return 0, errors.Wrapf(ErrConflict, "0x%x overlaps claimed bits 0x%x", mask, overlap)
	}
	a.current |= mask
	return mask, nil
}

// ClaimAuto claims and returns the lowest single bit not yet claimed.
func (a *Allocator) ClaimAuto() (uint64, error) {
	for bit := uint64(1); bit != 0 && bit&a.limit() != 0; bit <<= 1 {
		if a.current&bit == 0 {
			a.current |= bit
			return bit, nil
		}
	}
	return 0, errors.Wrapf(ErrExhausted, "all %d bits claimed", a.width)
}

// Mask returns the union of every claimed bit.
func (a *Allocator) Mask() uint64 {
	return a.current
}

// Free returns the number of bits still available.
func (a *Allocator) Free() int {
	return a.width - bits.OnesCount64(a.current)
}

// Width returns the number of addressable bits.
func (a *Allocator) Width() int {
	return a.width
}

func (a *Allocator) limit() uint64 {
	if a.width == 64 {
		return ^uint64(0)
	}
	return uint64(1)<<a.width - 1
}
