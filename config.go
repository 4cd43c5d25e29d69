package flagset

import (
	"strings"
)

/*
====================================
SCHEMA CONFIG
====================================
*/

// Config controls how a [Builder] compiles a declaration.
//
// Config values are copied into the builder; later changes to the caller's
// copy have no effect.
type Config struct {
	// Name labels the schema in String output and build logs. Optional.
	Name string
	// Width is the number of addressable bits: 8, 16, 32 or 64.
	Width int
}

// DefaultConfig returns an unnamed 64-bit configuration.
func DefaultConfig() Config {
	return Config{
		Width: 64,
	}
}

// Validate reports whether the configuration can be used to build a schema.
func (c Config) Validate() error {
	switch c.Width {
	case 8, 16, 32, 64:
	default:
		return markf(ErrInvalidConfig, "width must be one of 8, 16, 32, 64 (got %d)", c.Width)
	}

	if c.Name != "" && strings.TrimSpace(c.Name) == "" {
		return markf(ErrInvalidConfig, "name must not be blank")
	}

	return nil
}
