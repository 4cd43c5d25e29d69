package flagset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// consistentValues enumerates every value of s by taking each subset of its
// elementary flags.
func consistentValues(t *testing.T, s *Schema) []Value {
	t.Helper()
	names := s.ElementaryNames()
	require.LessOrEqual(t, len(names), 10, "schema too large to enumerate")

	values := make([]Value, 0, 1<<len(names))
	for subset := 0; subset < 1<<len(names); subset++ {
		var picked []string
		for i, name := range names {
			if subset&(1<<i) != 0 {
				picked = append(picked, name)
			}
		}
		values = append(values, s.MustNew(picked))
	}
	return values
}

func propertySchemas(t *testing.T) map[string]*Schema {
	t.Helper()
	wide, err := Define(nil, func(b *Builder) {
		b.FlagBits("hi", 0xf0)
		b.Flag("lo")
		b.FlagBits("pair", 0x6)
		b.Flag("top")
		b.Alias("edges", "lo", "top")
	})
	require.NoError(t, err)
	return map[string]*Schema{
		"single bits": fiveFlags,
		"multi bits":  wide,
	}
}

func TestAlgebraLaws(t *testing.T) {
	for name, s := range propertySchemas(t) {
		t.Run(name, func(t *testing.T) {
			values := consistentValues(t, s)
			all, none := s.All(), s.None()

			for _, x := range values {
				require.NoError(t, s.Validate(x.Uint64()))

				assert.Equal(t, x, Must(x.Union(x)), "x|x")
				assert.Equal(t, x, Must(x.Intersect(x)), "x&x")
				assert.Equal(t, x, x.Complement().Complement(), "~~x")
				assert.Equal(t, all, Must(x.Union(x.Complement())), "x|~x")
				assert.Equal(t, none, Must(x.Intersect(x.Complement())), "x&~x")
				assert.Zero(t, x.Complement().Uint64()&^s.AllMask())

				roundTrip, err := s.New(x.Names())
				require.NoError(t, err)
				assert.Equal(t, x, roundTrip, "names round trip of %s", x)

				for _, y := range values {
					lhs := Must(x.Intersect(y)).Complement()
					rhs := Must(x.Complement().Union(y.Complement()))
					assert.Equal(t, lhs, rhs, "De Morgan for %s, %s", x, y)

					sub, err := x.IsSubset(y)
					require.NoError(t, err)
					sup, err := y.IsSuperset(x)
					require.NoError(t, err)
					assert.Equal(t, sub, sup)

					for _, v := range []Value{
						Must(x.Difference(y)),
						Must(x.SymmetricDifference(y)),
					} {
						assert.NoError(t, s.Validate(v.Uint64()))
					}
				}
			}
		})
	}
}

func TestAliasMasksAreSubsetsOfAll(t *testing.T) {
	for name, s := range propertySchemas(t) {
		for _, alias := range s.Aliases() {
			m, ok := s.Mask(alias)
			require.True(t, ok)
			assert.Zero(t, m&^s.AllMask(), "%s: %s", name, alias)
		}
	}
}
