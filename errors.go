package flagset

import (
	"github.com/MrEthical07/flagset/internal/aliasgraph"
	"github.com/MrEthical07/flagset/internal/bitalloc"
	"github.com/cockroachdb/errors"
)

var (
	// ErrArgument reports conflicting declaration options or malformed call arguments.
	ErrArgument = errors.New("invalid argument")
	// ErrDuplicateName reports a flag or alias name that is already in use or reserved.
	ErrDuplicateName = errors.New("flag name already in use")
	// ErrConflict reports explicit bits that overlap bits already claimed.
	ErrConflict = errors.New("conflicting bits")
	// ErrUnknownName reports a name that is not declared in the schema.
	ErrUnknownName = errors.New("unknown flag name")
	// ErrCyclicAlias reports aliases that reference each other.
	ErrCyclicAlias = errors.New("cyclic alias")
	// ErrInconsistentValue reports a raw integer that partially sets a multi-bit
	// flag or sets bits outside the schema.
	ErrInconsistentValue = errors.New("inconsistent flag value")
	// ErrTypeMismatch reports a value of another schema or an unsupported argument type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrBitsExhausted reports that no free bit is left within the configured width.
	ErrBitsExhausted = errors.New("flag bits exhausted")
	// ErrBuilderUsed reports a second call to Build.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrInvalidConfig reports a Config that fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// markf formats a message and tags it with a public sentinel.
func markf(sentinel error, format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), sentinel)
}

// translate re-marks errors of the internal packages with the public sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bitalloc.ErrConflict):
		return errors.Mark(err, ErrConflict)
	case errors.Is(err, bitalloc.ErrExhausted):
		return errors.WithHint(errors.Mark(err, ErrBitsExhausted),
			"raise Config.Width or place flags with explicit bits")
	case errors.Is(err, bitalloc.ErrOutOfRange), errors.Is(err, bitalloc.ErrEmptyMask):
		return errors.Mark(err, ErrArgument)
	case errors.Is(err, aliasgraph.ErrCycle):
		return errors.Mark(err, ErrCyclicAlias)
	case errors.Is(err, aliasgraph.ErrUnknownTarget):
		return errors.Mark(err, ErrUnknownName)
	case errors.Is(err, aliasgraph.ErrDuplicate):
		return errors.Mark(err, ErrDuplicateName)
	case errors.Is(err, aliasgraph.ErrNoTargets):
		return errors.Mark(err, ErrArgument)
	default:
		return err
	}
}
