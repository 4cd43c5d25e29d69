// Package flagset declares closed sets of named boolean flags packed into a
// uint64 and provides set algebra over them.
//
// A declaration lists elementary flags, placed on automatically allocated or
// explicit bits, and aliases defined as unions of other names. [Builder.Build]
// compiles it into an immutable [Schema]; [Value]s are constructed against a
// schema and combine with union, intersection, difference, symmetric
// difference and complement.
//
//	perms := flagset.MustDefine(nil, func(b *flagset.Builder) {
//		b.Alias("write_all", "write", "update")
//		b.Flag("read", "write", "update")
//		b.FlagBits("admin", 0x80)
//	})
//	v := perms.MustNew("read", "update")
//	ok, _ := v.HasAnyOf("write_all") // true
//
// # Consistency
//
// Elementary flags may span several bits. A raw integer used to build a value
// must set each of them fully or not at all, and must not set bits outside the
// schema; otherwise construction fails with [ErrInconsistentValue].
//
// # Architecture boundaries
//
// flagset is the public surface. Bit allocation lives in internal/bitalloc and
// alias ordering in internal/aliasgraph; neither is exported.
//
// # What this package must NOT do
//
//   - Persist, encode or transmit values.
//   - Mutate a Schema after Build or a Value after construction.
//   - Keep a global registry of schemas.
//
// # Concurrency
//
// A [Builder] belongs to one goroutine. A built [Schema] and every [Value] are
// safe for concurrent use without locking.
package flagset
