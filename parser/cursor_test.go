package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

func TestCursorPeekAndNext(t *testing.T) {
	syms := interner.New()
	c := NewCursor("a . b", syms, Options{})

	second, err := c.Peek(1)
	require.NoError(t, err)
	assert.True(t, second.Is(token.Dot))
	assert.Equal(t, 0, c.Consumed())

	first, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", syms.Resolve(first.Sym))
	assert.Equal(t, first, c.Last())

	_, err = c.Expect(token.Dot, "member expression")
	require.NoError(t, err)
	_, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Consumed())

	end, err := c.Peek(0)
	require.NoError(t, err)
	assert.Equal(t, token.EOF, end.Kind)

	_, err = c.Next()
	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, AbruptEnd, perr.Kind)
	assert.Equal(t, 3, c.Consumed())
}

func TestCursorExpect(t *testing.T) {
	syms := interner.New()
	c := NewCursor("a", syms, Options{})

	_, err := c.Expect(token.RightBracket, "member expression")
	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, Unexpected, perr.Kind)
	assert.Equal(t, []string{"]"}, perr.Expected)
	assert.Equal(t, "a", perr.Found)
	assert.Equal(t, 0, c.Consumed())
}

func TestCursorSurfacesLexicalErrors(t *testing.T) {
	c := NewCursor("a \"open", interner.New(), Options{})
	_, err := c.Next()
	require.NoError(t, err)

	_, err = c.Peek(0)
	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, General, perr.Kind)
	assert.Equal(t, token.Position{Line: 1, Column: 3}, perr.Position)
}

func TestCursorPrivateEnvironments(t *testing.T) {
	syms := interner.New()
	c := NewCursor("", syms, Options{})
	x, y := syms.Intern("x"), syms.Intern("y")
	at := func(col int) token.Position { return token.Position{Line: 1, Column: col} }

	assert.Nil(t, c.PopPrivateEnvironment())

	c.PushPrivateEnvironment()
	require.NoError(t, c.PushUsedPrivateIdentifier(x, at(1)))
	require.NoError(t, c.PushUsedPrivateIdentifier(x, at(9)))

	c.PushPrivateEnvironment()
	require.NoError(t, c.PushUsedPrivateIdentifier(y, at(4)))
	assert.Equal(t, map[interner.Sym]token.Position{y: at(4)}, c.UsedPrivateIdentifiers())

	assert.Equal(t, map[interner.Sym]token.Position{y: at(4)}, c.PopPrivateEnvironment())
	assert.Equal(t, map[interner.Sym]token.Position{x: at(1)}, c.PopPrivateEnvironment())
	assert.Empty(t, c.UsedPrivateIdentifiers())
}

func TestCursorRequireClassScope(t *testing.T) {
	syms := interner.New()
	c := NewCursor("", syms, Options{RequireClassScope: true})
	x := syms.Intern("x")

	err := c.PushUsedPrivateIdentifier(x, token.Position{Line: 2, Column: 3})
	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "parse error at 2:3: found private identifier outside of class", perr.Error())

	c.PushPrivateEnvironment()
	assert.NoError(t, c.PushUsedPrivateIdentifier(x, token.Position{Line: 2, Column: 3}))
}
