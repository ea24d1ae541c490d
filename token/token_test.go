package token

import (
	"testing"

	"github.com/example/jsfront/interner"
	"github.com/stretchr/testify/assert"
)

func TestKeywordLookup(t *testing.T) {
	tests := []struct {
		ident string
		kw    KeywordType
		ok    bool
	}{
		{"new", New, true},
		{"super", Super, true},
		{"instanceof", Instanceof, true},
		{"yield", Yield, true},
		{"true", 0, false},
		{"null", 0, false},
		{"undefined", 0, false},
		{"async", 0, false},
	}
	for _, tt := range tests {
		kw, ok := LookupKeyword(tt.ident)
		assert.Equal(t, tt.ok, ok, tt.ident)
		if tt.ok {
			assert.Equal(t, tt.kw, kw, tt.ident)
			assert.Equal(t, tt.ident, kw.String())
		}
	}
}

func TestAssignmentPunctuators(t *testing.T) {
	for _, p := range []PunctuatorType{Assign, PlusAssign, ExponentAssign, NullishAssign, OrAssign} {
		assert.True(t, p.IsAssignment(), p.String())
	}
	for _, p := range []PunctuatorType{Equal, Arrow, Plus, OptionalChain} {
		assert.False(t, p.IsAssignment(), p.String())
	}
}

func TestRender(t *testing.T) {
	syms := interner.New()
	foo := syms.Intern("foo")
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: EOF}, "end of input"},
		{Token{Kind: Identifier, Sym: foo}, "foo"},
		{Token{Kind: PrivateIdentifier, Sym: foo}, "#foo"},
		{Token{Kind: Keyword, Keyword: Super}, "super"},
		{Token{Kind: Punctuator, Punct: OptionalChain}, "?."},
		{Token{Kind: BooleanLiteral, Bool: true}, "true"},
		{Token{Kind: NullLiteral}, "null"},
		{Token{Kind: StringLiteral, Literal: "a\"b"}, `"a\"b"`},
		{Token{Kind: NumericLiteral, Literal: "0x1F"}, "0x1F"},
		{Token{Kind: TemplateHead, Raw: "a"}, "`a${"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok.Render(syms))
	}
}

func TestSpanString(t *testing.T) {
	s := Span{Start: Position{Line: 1, Column: 3}, End: Position{Line: 1, Column: 6}}
	assert.Equal(t, "1:3-1:6", s.String())
}
