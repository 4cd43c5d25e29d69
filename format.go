package flagset

import (
	"fmt"
	"strings"
)

// String renders v as its schema name followed by its elementary flags, for
// example "perm[read|update]". Unnamed schemas omit the prefix.
func (v Value) String() string {
	var b strings.Builder
	if v.schema != nil {
		b.WriteString(v.schema.name)
	}
	b.WriteByte('[')
	b.WriteString(strings.Join(v.Names(), "|"))
	b.WriteByte(']')
	return b.String()
}

// String renders the elementary flags and their masks, for example
// "perm{read=0x1 write=0x2}".
func (s *Schema) String() string {
	var b strings.Builder
	if s.name != "" {
		b.WriteString(s.name)
	} else {
		b.WriteString("flagset")
	}
	b.WriteByte('{')
	for i, name := range s.elementary {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=0x%x", name, s.masks[name])
	}
	b.WriteByte('}')
	return b.String()
}
