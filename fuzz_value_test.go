package flagset

import (
	"testing"

	"github.com/cockroachdb/errors"
)

// FuzzNewRaw exercises raw-integer construction against a schema with
// multi-bit flags.
// Goal: no panics; accepted integers must round-trip through Names.
func FuzzNewRaw(f *testing.F) {
	s := MustDefine(nil, func(b *Builder) {
		b.FlagBits("hi", 0xf000)
		b.Flag("a", "b")
		b.FlagBits("mid", 0x30)
		b.Flag("c")
	})

	f.Add(uint64(0))
	f.Add(uint64(0xf037))
	f.Add(uint64(0x10))
	f.Add(uint64(0x8000))
	f.Add(^uint64(0))

	f.Fuzz(func(t *testing.T, raw uint64) {
		v, err := s.New(raw)
		if err != nil {
			if !errors.Is(err, ErrInconsistentValue) {
				t.Fatalf("unexpected error class for 0x%x: %v", raw, err)
			}
			return
		}

		back, err := s.New(v.Names())
		if err != nil {
			t.Fatalf("names of 0x%x rejected: %v", raw, err)
		}
		if back.Uint64() != raw {
			t.Fatalf("round trip mismatch: 0x%x vs 0x%x", raw, back.Uint64())
		}
		if c := v.Complement().Uint64(); c|raw != s.AllMask() || c&raw != 0 {
			t.Fatalf("complement of 0x%x is 0x%x", raw, c)
		}
	})
}
