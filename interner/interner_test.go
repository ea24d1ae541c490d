package interner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservedSymbols(t *testing.T) {
	in := New()
	assert.Equal(t, "true", in.Resolve(True))
	assert.Equal(t, "false", in.Resolve(False))
	assert.Equal(t, "null", in.Resolve(Null))
	assert.Equal(t, "", in.Resolve(Empty))

	sym, ok := in.Get("null")
	require.True(t, ok)
	assert.Equal(t, Null, sym)
	assert.Equal(t, True, in.Intern("true"))
}

func TestInternIsStable(t *testing.T) {
	in := New()
	a := in.Intern("foo")
	b := in.Intern("bar")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, in.Intern("foo"))
	assert.Equal(t, "bar", in.Resolve(b))
	assert.Equal(t, 6, in.Len())

	_, ok := in.Get("baz")
	assert.False(t, ok)
	assert.Equal(t, 6, in.Len())
}

func TestResolveUnknownPanics(t *testing.T) {
	in := New()
	assert.Panics(t, func() { in.Resolve(Sym(1000)) })
}
