package flagset

import (
	"fmt"

	"github.com/MrEthical07/flagset/internal/aliasgraph"
	"github.com/MrEthical07/flagset/internal/bitalloc"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// NameAll is the reserved name of the union of every elementary flag.
	NameAll = "all"
	// NameNone is the reserved name of the empty value.
	NameNone = "none"
)

// Option configures a [Builder].
type Option func(*Builder)

// WithConfig replaces the builder configuration. The config is validated by
// [NewBuilder].
func WithConfig(cfg Config) Option {
	return func(b *Builder) {
		b.config = cfg
	}
}

// WithLogger sets the logger used for build diagnostics. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// FlagOption configures an explicit bit placement for [Builder.Declare].
type FlagOption func(*flagOptions)

type flagOptions struct {
	bit     uint64
	bits    uint64
	hasBit  bool
	hasBits bool
}

// Bit places a flag on an explicit mask. It is a synonym of [Bits]; giving
// both is an error.
func Bit(mask uint64) FlagOption {
	return func(o *flagOptions) {
		o.bit = mask
		o.hasBit = true
	}
}

// Bits places a flag on an explicit mask, which may span several bits.
func Bits(mask uint64) FlagOption {
	return func(o *flagOptions) {
		o.bits = mask
		o.hasBits = true
	}
}

// Builder collects flag and alias declarations and compiles them into a
// [Schema].
//
// Declaration methods return the builder for chaining. The first failure is
// kept; later declarations are ignored and [Builder.Build] returns it. A
// builder is used by a single goroutine and builds at most one schema.
type Builder struct {
	config Config
	logger *zap.Logger

	alloc   *bitalloc.Allocator
	aliases *aliasgraph.Graph

	elementary []string
	masks      map[string]uint64

	err   error
	built bool
}

// NewBuilder returns an empty builder. An invalid configuration is reported by
// [Builder.Err] and [Builder.Build].
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		config:  DefaultConfig(),
		logger:  zap.NewNop(),
		aliases: aliasgraph.New(),
		masks:   make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.config.Validate(); err != nil {
		b.err = err
		return b
	}

	alloc, err := bitalloc.New(b.config.Width)
	if err != nil {
		b.err = markf(ErrInvalidConfig, "%v", err)
		return b
	}
	b.alloc = alloc

	return b
}

// Define compiles a schema from either a flat list of flag names or a
// declaration func. Giving both is an error; giving neither yields an empty
// schema.
func Define(names []string, declare func(*Builder), opts ...Option) (*Schema, error) {
	if len(names) > 0 && declare != nil {
		return nil, markf(ErrArgument, "flag names and a declaration func cannot be given at once")
	}

	b := NewBuilder(opts...)
	if declare != nil {
		declare(b)
	} else if len(names) > 0 {
		b.Flag(names...)
	}
	return b.Build()
}

// MustDefine is like [Define] but panics on error. It is meant for
// package-level schema variables.
func MustDefine(names []string, declare func(*Builder), opts ...Option) *Schema {
	s, err := Define(names, declare, opts...)
	if err != nil {
		panic(fmt.Sprintf("flagset: %v", err))
	}
	return s
}

// Flag declares elementary flags on automatically allocated bits, in order.
func (b *Builder) Flag(names ...string) *Builder {
	return b.Declare(names)
}

// FlagBits declares one elementary flag on an explicit mask.
func (b *Builder) FlagBits(name string, mask uint64) *Builder {
	return b.Declare([]string{name}, Bits(mask))
}

// Declare declares elementary flags. Without options every name gets the
// lowest free bit. With [Bit] or [Bits] exactly one name is allowed and it
// claims the given mask.
func (b *Builder) Declare(names []string, opts ...FlagOption) *Builder {
	if !b.usable() {
		return b
	}

	var o flagOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.hasBit && o.hasBits {
		return b.fail(markf(ErrArgument, "bit and bits cannot be specified at once"))
	}
	if len(names) == 0 {
		return b.fail(markf(ErrArgument, "at least one flag name is required"))
	}

	explicit := o.hasBit || o.hasBits
	if explicit && len(names) != 1 {
		return b.fail(markf(ErrArgument, "only one name can be specified with explicit bits (got %d)", len(names)))
	}

	for _, name := range names {
		if err := b.checkName(name); err != nil {
			return b.fail(err)
		}

		var (
			mask uint64
			err  error
		)
		if explicit {
			requested := o.bits
			if o.hasBit {
				requested = o.bit
			}
			mask, err = b.alloc.ClaimExplicit(requested)
		} else {
			mask, err = b.alloc.ClaimAuto()
		}
		if err != nil {
			return b.fail(translate(errors.Wrapf(err, "flag %q", name)))
		}

		b.elementary = append(b.elementary, name)
		b.masks[name] = mask
	}

	return b
}

// Alias declares name as the union of targets. Targets may be elementary
// flags, other aliases declared before or after this one, or the reserved
// names all and none. Targets are checked when the schema is built.
func (b *Builder) Alias(name string, targets ...string) *Builder {
	if !b.usable() {
		return b
	}
	if err := b.checkName(name); err != nil {
		return b.fail(err)
	}
	if err := b.aliases.Add(name, targets); err != nil {
		return b.fail(translate(err))
	}
	return b
}

// Err returns the first declaration error, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build resolves aliases and returns the compiled schema. It may be called
// once; any declaration error is returned instead of a schema.
func (b *Builder) Build() (*Schema, error) {
	if b.built {
		return nil, markf(ErrBuilderUsed, "build already called")
	}
	b.built = true

	if b.err != nil {
		b.logger.Warn("flagset: schema declaration failed",
			zap.String("schema", b.config.Name),
			zap.Error(b.err))
		return nil, b.err
	}

	all := b.alloc.Mask()
	table := make(map[string]uint64, len(b.masks)+b.aliases.Len()+2)
	for name, mask := range b.masks {
		table[name] = mask
	}
	table[NameAll] = all
	table[NameNone] = 0

	order, err := b.aliases.Resolve(table)
	if err != nil {
		err = translate(err)
		b.logger.Warn("flagset: alias resolution failed",
			zap.String("schema", b.config.Name),
			zap.Error(err))
		return nil, err
	}

	s := &Schema{
		id:         uuid.New(),
		name:       b.config.Name,
		width:      b.config.Width,
		elementary: append([]string(nil), b.elementary...),
		aliases:    order,
		masks:      table,
		all:        all,
	}

	b.logger.Debug("flagset: schema built",
		zap.String("schema", s.name),
		zap.Stringer("id", s.id),
		zap.Int("flags", len(s.elementary)),
		zap.Int("aliases", len(s.aliases)),
		zap.Strings("alias_order", s.aliases),
		zap.String("all", fmt.Sprintf("0x%x", all)),
		zap.Int("free_bits", b.alloc.Free()))

	return s, nil
}

func (b *Builder) usable() bool {
	if b.built {
		if b.err == nil {
			b.err = markf(ErrBuilderUsed, "declaration after build")
		}
		return false
	}
	return b.err == nil
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *Builder) checkName(name string) error {
	if name == "" {
		return markf(ErrArgument, "flag name cannot be empty")
	}
	if name == NameAll || name == NameNone {
		return markf(ErrDuplicateName, "flag name %q is reserved", name)
	}
	if _, exists := b.masks[name]; exists || b.aliases.Has(name) {
		return markf(ErrDuplicateName, "flag name %q is already in use", name)
	}
	return nil
}
