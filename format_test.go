package flagset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	s, err := Define([]string{"read", "write", "update"}, nil, WithConfig(Config{Name: "perm", Width: 8}))
	require.NoError(t, err)

	assert.Equal(t, "perm[read|update]", s.MustNew("update", "read").String())
	assert.Equal(t, "perm[]", s.None().String())
	assert.Equal(t, "perm[read|write|update]", fmt.Sprint(s.All()))

	assert.Equal(t, "[A|B]", fs("A", "B").String())
	assert.Equal(t, "[]", Value{}.String())
}

func TestSchemaString(t *testing.T) {
	s, err := Define(nil, func(b *Builder) {
		b.Flag("read")
		b.FlagBits("wide", 0x30)
		b.Alias("any", "all")
	}, WithConfig(Config{Name: "perm", Width: 64}))
	require.NoError(t, err)
	assert.Equal(t, "perm{read=0x1 wide=0x30}", s.String())

	assert.Equal(t, "flagset{x=0x1}", MustDefine([]string{"x"}, nil).String())
}

func TestErrorsNameUnnamedSchemaByID(t *testing.T) {
	s := MustDefine([]string{"x"}, nil)
	_, err := s.New("y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), s.ID().String())
}
